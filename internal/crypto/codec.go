package crypto

import (
	"encoding/base64"
	"fmt"
)

// Encode encodes data as standard base64 with padding, the form every
// binary field takes on the wire.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Decode decodes standard base64 text. Malformed input yields an error
// wrapping [ErrDecode].
func Decode(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return data, nil
}
