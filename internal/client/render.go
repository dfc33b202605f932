package client

import (
	"strings"

	"github.com/MKhiriev/go-kph-client/models"
)

// renderEntry formats e on one line as
// "Name: .. || Login: .. || Password: .. || UUID: ..". The password is
// masked unless showPassword is set.
func renderEntry(e models.Entry, showPassword bool) string {
	password := passwordMask
	if showPassword {
		password = secretStyle.Render(e.Password)
	}

	return strings.Join([]string{
		labelStyle.Render("Name:") + " " + nameStyle.Render(e.Name),
		labelStyle.Render("Login:") + " " + e.Login,
		labelStyle.Render("Password:") + " " + password,
		labelStyle.Render("UUID:") + " " + e.UUID,
	}, fieldSeparator)
}
