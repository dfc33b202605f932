package adapter

import (
	"errors"
	"fmt"
)

const serviceHint = "make sure KeePass is running and the database is unlocked"

var (
	// ErrTransport is the root of every transport failure.
	ErrTransport = errors.New("error while trying to contact KeePassHttp")

	// ErrServiceUnreachable is returned when the request could not be
	// delivered at all (connection refused, timeout, DNS).
	ErrServiceUnreachable = fmt.Errorf("%w: service unreachable (%s)", ErrTransport, serviceHint)

	// ErrServiceStatus is returned when the service answered with a status
	// other than 200 OK.
	ErrServiceStatus = fmt.Errorf("%w: service returned a non-OK status (%s)", ErrTransport, serviceHint)
)
