package validation

import "errors"

var (
	ErrEmptyURL            = errors.New("url is required")
	ErrInvalidURLFormat    = errors.New("invalid url format")
	ErrUnsafeProtocol      = errors.New("url protocol not allowed")
	ErrPrivateIPNotAllowed = errors.New("private ip addresses not allowed")
	ErrURLHasQuery         = errors.New("base url must not carry a query or fragment")

	ErrPathTooLong    = errors.New("path exceeds maximum length")
	ErrEmptyCapture   = errors.New("path segment is required")
	ErrCaptureTooLong = errors.New("path segment exceeds maximum length")
	ErrPathTraversal  = errors.New("path segment must not be . or ..")
	ErrUnsafeCapture  = errors.New("path segment contains unsafe characters")
)

// EndpointError names the upstream whose base URL failed validation.
type EndpointError struct {
	Name string
	Err  error
}

func (e *EndpointError) Error() string {
	return "upstream " + e.Name + ": " + e.Err.Error()
}

func (e *EndpointError) Unwrap() error {
	return e.Err
}
