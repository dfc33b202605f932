package client

import (
	"errors"

	"github.com/MKhiriev/go-kph-client/internal/app"
)

var (
	// ErrUsage is returned for a missing or unknown command.
	ErrUsage = errors.New(app.MsgUsage)

	// ErrNotAssociated is returned when a command needs a stored
	// association and there is none.
	ErrNotAssociated = errors.New(app.MsgNotAssociated)

	errMissingURL = errors.New(app.MsgMissingURL)
)
