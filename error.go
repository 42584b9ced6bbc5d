package kitsu

import "fmt"

// Error is a general error for kitsu operations.
type Error string

func (e Error) Error() string {
	return "kitsu: " + string(e)
}

// BadRequestError is returned when the API answers with HTTP 400.
//
// Body carries the raw response body for caller inspection.
type BadRequestError struct {
	Body []byte
}

func (e *BadRequestError) Error() string {
	return "kitsu: bad request"
}

// UnauthorizedError is returned when the API answers with HTTP 401.
type UnauthorizedError struct{}

func (e *UnauthorizedError) Error() string {
	return "kitsu: unauthorized"
}

// InvalidResponseError is returned for any other non-200 status.
type InvalidResponseError struct {
	Status int
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("kitsu: invalid response: status %d", e.Status)
}

// DecodeError is returned when a response body does not match the
// expected JSON shape, including unrecognized enumeration tags.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "kitsu: decode: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// URLError is returned when query or path construction produced an
// unparsable URL.
type URLError struct {
	Err error
}

func (e *URLError) Error() string {
	return "kitsu: url: " + e.Err.Error()
}

func (e *URLError) Unwrap() error {
	return e.Err
}

// TransportError wraps a failure of the underlying http client (DNS,
// TLS, connection, timeout). The cause is passed through opaquely.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "kitsu: transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
