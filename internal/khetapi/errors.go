package khetapi

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrUnauthenticated means a privileged call was attempted without an access
// token. The client fails fast: no request is issued.
var ErrUnauthenticated = errors.New("no access token for privileged request")

// HTTPError is a reachable server rejecting the request: non-2xx status or an
// envelope with success=false. Message is the server-provided one when present.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// MalformedResponseError is a 2xx reply whose body does not parse into the
// expected shape. It is surfaced instead of letting a half-decoded record
// reach the pages.
type MalformedResponseError struct {
	Path string
	Err  error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %v", e.Path, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// IsNetwork reports whether err is a transport failure (offline, DNS, timeout)
// rather than a server rejection.
func IsNetwork(err error) bool {
	var ue *url.Error
	return errors.As(err, &ue)
}
