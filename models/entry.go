package models

import "fmt"

// RawEntry is a credential record as it arrives on the wire. Each field is
// independently encrypted and base64 encoded.
type RawEntry struct {
	Login    string `json:"Login"`
	Name     string `json:"Name"`
	Password string `json:"Password"`
	UUID     string `json:"Uuid"`
}

// Entry is a decrypted credential record.
type Entry struct {
	Login    string `json:"login"`
	Name     string `json:"name"`
	Password string `json:"-"`
	UUID     string `json:"uuid"`
}

// String renders the entry with its password masked, so entries are safe
// to pass to loggers and %v formatting.
func (e Entry) String() string {
	return fmt.Sprintf("Name: %s || Login: %s || Password: ******** || UUID: %s", e.Name, e.Login, e.UUID)
}
