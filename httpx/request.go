package httpx

import (
	"bufio"
	"io"

	"dqx0.com/go/poolhttp/httpx/internal/http1"
)

// Request is a parsed HTTP/1.1 request. It is fully built before any
// handler sees it and is read-only afterwards.
type Request struct {
	method   Method
	location string
	header   Header
	body     []byte
}

// NewRequest builds a Request directly, mainly for exercising handlers.
// A nil body means the request has no body.
func NewRequest(method Method, location string, header Header, body []byte) *Request {
	return &Request{method: method, location: location, header: header.Clone(), body: body}
}

// ReadRequest parses one request from r. Bytes after the declared body
// are left unread only when r is a *bufio.Reader; otherwise the internal
// buffer may hold some of them.
func ReadRequest(r io.Reader) (*Request, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	pr, err := (&http1.Reader{BR: br}).ReadRequest()
	if err != nil {
		return nil, err
	}
	return &Request{
		method:   Method(pr.Method),
		location: pr.Target,
		header:   Header(pr.Header),
		body:     pr.Body,
	}, nil
}

func (r *Request) Method() Method { return r.method }

// Location is the raw request-target as it appeared on the request line.
func (r *Request) Location() string { return r.location }

// Header returns the value sent under exactly key.
func (r *Request) Header(key string) (string, bool) {
	return r.header.Lookup(key)
}

// Headers returns a copy of all request headers.
func (r *Request) Headers() Header { return r.header.Clone() }

// HasBody reports whether a positive Content-Length was declared.
func (r *Request) HasBody() bool { return r.body != nil }

// Body returns the body bytes, or nil if there is none. Callers must not
// modify the returned slice.
func (r *Request) Body() []byte { return r.body }

// BodyString returns the body as a string; invalid UTF-8 is kept as-is.
func (r *Request) BodyString() (string, bool) {
	if r.body == nil {
		return "", false
	}
	return string(r.body), true
}
