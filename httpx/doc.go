// Package httpx is a small HTTP/1.1 server that serves exactly one
// request per TCP connection on a fixed pool of worker goroutines.
//
// Overview
//   - Server: a single accept loop hands every connection to a worker
//     pool of Server.Workers goroutines. The pool queue is unbounded;
//     there is no backpressure, so a burst of connections queues in
//     memory until a worker is free. A slow handler holds its worker
//     for as long as it runs.
//   - Request: method, raw request-target, headers and an optional body
//     framed only by Content-Length. Header keys are case-sensitive and
//     duplicate keys keep the last value.
//   - Response: status and headers are sent lazily on the first Write
//     and are frozen afterwards. A handler that never writes sends
//     nothing, so call Write(nil) to send a bare status.
//
// Not supported: keep-alive, pipelining, chunked transfer coding, TLS,
// routing and compression.
//
// Quick start:
//
//	s := &httpx.Server{Addr: ":8000", Workers: 8}
//	s.Handler = httpx.HandlerFunc(func(r *httpx.Request, w *httpx.Response) error {
//	    if err := w.SetHeader("Content-Type", "text/html"); err != nil {
//	        return err
//	    }
//	    _, err := w.Write([]byte("<h1>Hello World!</h1>"))
//	    return err
//	})
//	if err := s.ListenAndServe(); err != nil { log.Fatal(err) }
package httpx
