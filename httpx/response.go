package httpx

import (
	"fmt"
	"io"

	"dqx0.com/go/poolhttp/httpx/internal/http1"
)

// Response writes one HTTP/1.1 response to a sink. Status and headers
// are held back until the first body write, which emits them once and
// freezes them. A Response that is never written to sends nothing at
// all, not even its status line; write an empty body to send a bare
// status.
//
// A Response belongs to a single goroutine.
type Response struct {
	status int
	header Header
	dirty  bool
	w      io.Writer
}

// NewResponse returns a 200 response with "Content-Type: text/plain"
// that writes to w.
func NewResponse(w io.Writer) *Response {
	return &Response{
		status: 200,
		header: Header{"Content-Type": "text/plain"},
		w:      w,
	}
}

// SetStatus sets the status code. Codes outside 100..599 are rejected
// with ErrInvalidStatusCode; any change after the first write fails with
// ErrAlreadyFlushed. A failed call leaves the status unchanged.
func (r *Response) SetStatus(code int) error {
	if r.dirty {
		return ErrAlreadyFlushed
	}
	if code < 100 || code >= 600 {
		return fmt.Errorf("%w: %d", ErrInvalidStatusCode, code)
	}
	r.status = code
	return nil
}

// SetHeader sets key to value, replacing any previous value.
func (r *Response) SetHeader(key, value string) error {
	if r.dirty {
		return ErrAlreadyFlushed
	}
	r.header.Set(key, value)
	return nil
}

// DelHeader removes key, including the default Content-Type.
func (r *Response) DelHeader(key string) error {
	if r.dirty {
		return ErrAlreadyFlushed
	}
	r.header.Del(key)
	return nil
}

func (r *Response) Status() int { return r.status }

func (r *Response) Header(key string) (string, bool) {
	return r.header.Lookup(key)
}

// Flushed reports whether the status line and headers have been sent.
func (r *Response) Flushed() bool { return r.dirty }

// WriteBody writes p, preceded on the first call by the status line and
// header block. It returns every byte written to the sink in this call,
// head included, so the count can exceed len(p). Use Write where an
// io.Writer is expected.
func (r *Response) WriteBody(p []byte) (int, error) {
	head, body, err := r.write(p)
	return head + body, err
}

// Write implements io.Writer: like WriteBody, but only body bytes are
// counted.
func (r *Response) Write(p []byte) (int, error) {
	_, body, err := r.write(p)
	return body, err
}

// Flush flushes the sink if it buffers. It never emits the head.
func (r *Response) Flush() error {
	if f, ok := r.w.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

func (r *Response) write(p []byte) (head, body int, err error) {
	if !r.dirty {
		head, err = http1.WriteHead(r.w, r.status, r.header)
		if err != nil {
			return head, 0, err
		}
		r.dirty = true
	}
	if len(p) == 0 {
		return head, 0, nil
	}
	body, err = r.w.Write(p)
	return head, body, err
}

// StatusText returns the reason phrase sent with code.
func StatusText(code int) string {
	return http1.StatusText(code)
}
