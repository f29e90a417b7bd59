package httpx

// Flusher is implemented by sinks that buffer output, such as
// *bufio.Writer. Response.Flush forwards to it.
type Flusher interface {
	Flush() error
}
