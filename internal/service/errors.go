package service

import (
	"errors"
	"fmt"
)

var (
	// ErrAssociationDeclined is returned when the service answers an
	// associate request with Success=false, typically because the user
	// cancelled the prompt in KeePass.
	ErrAssociationDeclined = errors.New("association request did not succeed, user canceled or protocol error")

	// ErrMalformedResponse is returned when the service reply cannot be
	// decoded or lacks a field the protocol requires.
	ErrMalformedResponse = errors.New("malformed response from KeePassHttp")

	// ErrInvalidSession is returned before any request is sent when the
	// supplied session config is incomplete or its key is not a valid
	// 256-bit base64 key.
	ErrInvalidSession = errors.New("invalid session config")
)

// LookupError is returned by GetLogins when the service reports failure.
// Message carries the service's error text verbatim.
type LookupError struct {
	Message string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("couldn't get logins, server said: '%s'", e.Message)
}
