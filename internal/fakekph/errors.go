package fakekph

import "errors"

var (
	errUnknownClient      = errors.New("unknown client id")
	errVerificationFailed = errors.New("verification failed")
	errUnknownRequestType = errors.New("unknown request type")
)
