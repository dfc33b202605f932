package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns every status except 200 OK into [ErrServiceStatus].
// KeePassHTTP reports protocol failures in the JSON body with a 200, so
// any other status means the service itself is unhealthy.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrServiceStatus, resp.StatusCode(), body)
}
