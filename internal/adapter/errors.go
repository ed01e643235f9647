package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-rest-facade/internal/app"
	"github.com/MKhiriev/go-rest-facade/models"
)

var (
	ErrNetwork  = errors.New("network error")
	ErrHTTP     = errors.New("http error")
	ErrBusiness = errors.New("business error")
)

// User-facing messages.
const (
	NetworkErrorMessage = app.MsgNetworkUnreachable
	RateLimitMessage    = app.MsgRateLimited
)

// NetworkError reports that no response was received. Error returns a
// fixed diagnostic; the transport error is only reachable through Unwrap.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return NetworkErrorMessage
}

func (e *NetworkError) Unwrap() []error {
	return []error{ErrNetwork, e.Err}
}

// HTTPError reports a response whose status is outside 2xx.
type HTTPError struct {
	Status  int
	Message string
	Payload models.Payload
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return ErrHTTP
}

// BusinessError reports an envelope whose code is present and not zero.
type BusinessError struct {
	Code    string
	Message string
	Payload models.Payload
}

func (e *BusinessError) Error() string {
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return ErrBusiness
}

func businessFallbackMessage(code string) string {
	return fmt.Sprintf(app.MsgBusinessErrorFormat, code)
}
