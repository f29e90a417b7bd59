package httpx

import (
	"errors"

	"dqx0.com/go/poolhttp/httpx/internal/http1"
	"dqx0.com/go/poolhttp/internal/workpool"
)

// Parse errors returned by ReadRequest. A version mismatch matches both
// ErrInvalidHTTPVersion and ErrMalformedRequestLine.
var (
	ErrMalformedRequestLine = http1.ErrMalformedRequestLine
	ErrInvalidHTTPVersion   = http1.ErrInvalidHTTPVersion
	ErrMalformedHeader      = http1.ErrMalformedHeader
	ErrInvalidContentLength = http1.ErrInvalidContentLength
	ErrHeaderTooLarge       = http1.ErrHeaderTooLarge
)

// Response mutation errors.
var (
	ErrInvalidStatusCode = errors.New("httpx: invalid status code")
	ErrAlreadyFlushed    = errors.New("httpx: status and headers already flushed")
)

var (
	ErrServerClosed = errors.New("httpx: server closed")
	// ErrPoolClosed is the panic value when work is scheduled on a
	// worker pool after its shutdown.
	ErrPoolClosed = workpool.ErrClosed
)
