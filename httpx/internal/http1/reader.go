package http1

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Version is the only protocol version accepted on the request line and
// the one written on every status line.
const Version = "HTTP/1.1"

// DefaultMaxLineBytes bounds a single request or header line.
const DefaultMaxLineBytes = 8 << 10

// ParsedRequest is a minimal representation parsed from the wire.
// Header keys are stored exactly as received.
type ParsedRequest struct {
	Method string
	Target string
	Header map[string]string
	// Body is nil when Content-Length is absent or zero.
	Body []byte
}

type Reader struct {
	BR *bufio.Reader
	// MaxLineBytes <= 0 means DefaultMaxLineBytes.
	MaxLineBytes int
}

// ReadRequest reads one request: the request line, the header block and
// a body framed by Content-Length. Nothing past the body is consumed.
func (r *Reader) ReadRequest() (*ParsedRequest, error) {
	line, err := r.readRequestLine()
	if err != nil {
		return nil, err
	}
	method, target, err := parseRequestLine(line)
	if err != nil {
		return nil, err
	}
	hdr, err := r.readHeaders()
	if err != nil {
		return nil, err
	}
	pr := &ParsedRequest{Method: method, Target: target, Header: hdr}
	if v, ok := hdr["Content-Length"]; ok {
		n, err := strconv.ParseUint(v, 10, 63)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidContentLength, v)
		}
		if n > 0 {
			if pr.Body, err = r.readBody(int64(n)); err != nil {
				return nil, err
			}
		}
	}
	return pr, nil
}

// readRequestLine skips blank lines preceding the request line.
func (r *Reader) readRequestLine() (string, error) {
	for {
		line, err := r.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%w: %w", ErrMalformedRequestLine, io.ErrUnexpectedEOF)
			}
			return "", err
		}
		if line != "" {
			return line, nil
		}
	}
}

func parseRequestLine(line string) (method, target string, err error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedRequestLine, line)
	}
	if parts[2] != Version {
		return "", "", fmt.Errorf("%w: %w: %q", ErrMalformedRequestLine, ErrInvalidHTTPVersion, parts[2])
	}
	return parts[0], parts[1], nil
}

func (r *Reader) readHeaders() (map[string]string, error) {
	h := make(map[string]string)
	for {
		line, err := r.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: %w", ErrMalformedHeader, io.ErrUnexpectedEOF)
			}
			return nil, err
		}
		if line == "" {
			return h, nil
		}
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
		}
		h[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
}

// readBody reads up to n bytes. A stream that ends early yields the
// bytes that did arrive.
func (r *Reader) readBody(n int64) ([]byte, error) {
	var buf bytes.Buffer
	if n < 64<<10 {
		buf.Grow(int(n))
	}
	if _, err := io.CopyN(&buf, r.BR, n); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if buf.Len() == 0 {
		return []byte{}, nil
	}
	return buf.Bytes(), nil
}

// readLine returns one line without its LF or CRLF terminator. A final
// unterminated line is returned as-is; io.EOF is only reported when no
// bytes were left.
func (r *Reader) readLine() (string, error) {
	limit := r.MaxLineBytes
	if limit <= 0 {
		limit = DefaultMaxLineBytes
	}
	var line []byte
	for {
		chunk, more, err := r.BR.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && line != nil {
				return string(line), nil
			}
			return "", err
		}
		line = append(line, chunk...)
		if len(line) > limit {
			return "", ErrHeaderTooLarge
		}
		if !more {
			return string(line), nil
		}
	}
}
