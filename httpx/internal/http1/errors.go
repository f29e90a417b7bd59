package http1

import "errors"

var (
	ErrMalformedRequestLine = errors.New("http1: malformed request line")
	ErrInvalidHTTPVersion   = errors.New("http1: invalid HTTP version")
	ErrMalformedHeader      = errors.New("http1: malformed header")
	ErrInvalidContentLength = errors.New("http1: invalid content length")
	ErrHeaderTooLarge       = errors.New("http1: header line too large")
)
