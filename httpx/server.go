package httpx

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"dqx0.com/go/poolhttp/internal/obs"
	"dqx0.com/go/poolhttp/internal/workpool"
)

const (
	DefaultAddr    = ":8000"
	DefaultWorkers = 8
)

// Handler responds to one parsed request. It is called exactly once per
// request, on a pool worker, with no time limit. A returned error is
// logged and otherwise ignored.
type Handler interface {
	ServeHTTP(*Request, *Response) error
}

type HandlerFunc func(*Request, *Response) error

func (f HandlerFunc) ServeHTTP(r *Request, w *Response) error {
	return f(r, w)
}

// Server accepts connections on one goroutine and serves each of them,
// one request per connection, on a fixed pool of workers. Accepted
// connections queue without bound while all workers are busy.
type Server struct {
	Addr    string
	Handler Handler
	// Workers is the pool size; <= 0 means DefaultWorkers.
	Workers int

	Logger obs.Logger
	Meter  obs.Meter

	mu     sync.Mutex
	ln     net.Listener
	closed bool
}

func (s *Server) ListenAndServe() error {
	addr := s.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve runs the accept loop on l until l fails or Close is called. On
// the way out it shuts the worker pool down, so every connection already
// accepted is served before Serve returns. After Close the error is
// ErrServerClosed.
func (s *Server) Serve(l net.Listener) error {
	defer l.Close()
	if !s.track(l) {
		return ErrServerClosed
	}
	lg := obs.LoggerOrNop(s.Logger)
	m := obs.MeterOrNop(s.Meter)

	pool := workpool.New(s.workers())
	// Runs after the loop below has stopped scheduling.
	defer pool.Shutdown()

	lg.Logf(obs.Info, "serving on %s with %d workers", l.Addr(), pool.Size())
	for {
		c, err := l.Accept()
		if err != nil {
			if s.isClosed() {
				lg.Logf(obs.Info, "server closed, draining %d queued connections", pool.Pending())
				return ErrServerClosed
			}
			lg.Logf(obs.Error, "accept failed: %v", err)
			return err
		}
		m.Counter("poolhttp_connections_total", 1)
		m.Histogram("poolhttp_queue_depth", float64(pool.Pending()))
		pool.Schedule(func() { s.serveConn(c) })
	}
}

// Close stops the accept loop. Queued and in-flight connections are
// still served; Serve returns once they are done.
func (s *Server) Close() error {
	s.mu.Lock()
	s.closed = true
	ln := s.ln
	s.mu.Unlock()
	if ln != nil {
		return ln.Close()
	}
	return nil
}

func (s *Server) track(l net.Listener) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.ln = l
	return true
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Server) workers() int {
	if s.Workers <= 0 {
		return DefaultWorkers
	}
	return s.Workers
}

// serveConn is the job run for each accepted connection.
func (s *Server) serveConn(c net.Conn) {
	defer closeWriteAndWait(c)
	lg := obs.With(s.Logger, "conn "+newConnID()+": ")
	m := obs.MeterOrNop(s.Meter)

	res := NewResponse(c)
	req, err := ReadRequest(c)
	if err != nil {
		lg.Logf(obs.Warn, "invalid request from %s: %v", c.RemoteAddr(), err)
		m.Counter("poolhttp_requests_rejected_total", 1, obs.Label{Key: "reason", Value: rejectReason(err)})
		_ = res.SetStatus(400)
		if _, err := res.Write(nil); err != nil {
			lg.Logf(obs.Error, "sending 400 failed: %v", err)
		}
		return
	}

	m.Counter("poolhttp_requests_total", 1, obs.Label{Key: "method", Value: methodLabel(req.Method())})
	start := time.Now()
	err = s.invoke(req, res)
	m.Histogram("poolhttp_handler_seconds", time.Since(start).Seconds())
	if err != nil {
		lg.Logf(obs.Error, "handling %s %s: %v", req.Method(), req.Location(), err)
		m.Counter("poolhttp_handler_errors_total", 1)
	}
}

// invoke runs the handler and reports a panic as an error.
func (s *Server) invoke(req *Request, res *Response) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("handler panic: %v", p)
		}
	}()
	h := s.Handler
	if h == nil {
		h = HandlerFunc(notFound)
	}
	return h.ServeHTTP(req, res)
}

func notFound(_ *Request, w *Response) error {
	if err := w.SetStatus(404); err != nil {
		return err
	}
	_, err := w.Write([]byte("not found"))
	return err
}

// closeWriteAndWait half-closes c and reads until the peer closes or a
// short grace period passes before fully closing. Closing with unread
// request bytes pending would otherwise make the kernel send a reset
// that can destroy the response in flight.
func closeWriteAndWait(c net.Conn) {
	defer c.Close()
	cw, ok := c.(interface{ CloseWrite() error })
	if !ok {
		return
	}
	if err := cw.CloseWrite(); err != nil {
		return
	}
	_ = c.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	_, _ = io.Copy(io.Discard, c)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidHTTPVersion):
		return "version"
	case errors.Is(err, ErrMalformedRequestLine):
		return "request_line"
	case errors.Is(err, ErrMalformedHeader):
		return "header"
	case errors.Is(err, ErrInvalidContentLength):
		return "content_length"
	case errors.Is(err, ErrHeaderTooLarge):
		return "too_large"
	default:
		return "io"
	}
}

// methodLabel keeps metric cardinality bounded for arbitrary verbs.
func methodLabel(m Method) string {
	if m.Known() {
		return m.String()
	}
	return "OTHER"
}
