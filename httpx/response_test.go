package httpx

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestResponse_NoWriteEmitsNothing(t *testing.T) {
	var buf bytes.Buffer
	w := NewResponse(&buf)
	if err := w.SetStatus(500); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if err := w.SetHeader("X-A", "1"); err != nil {
		t.Fatalf("SetHeader: %v", err)
	}
	if buf.Len() != 0 || w.Flushed() {
		t.Fatalf("output = %q, want nothing before the first write", buf.String())
	}
}

func TestResponse_NotFound(t *testing.T) {
	var buf bytes.Buffer
	w := NewResponse(&buf)
	if err := w.SetStatus(404); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if _, err := w.Write([]byte("not found")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "HTTP/1.1 404 Not Found\r\nContent-Type: text/plain\r\n\r\nnot found"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

func TestResponse_HeadOnceThenBodiesInOrder(t *testing.T) {
	var buf bytes.Buffer
	w := NewResponse(&buf)
	for _, p := range []string{"a", "", "bc", "def"} {
		if _, err := w.Write([]byte(p)); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	want := "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\n\r\nabcdef"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

func TestResponse_EmptyWriteFlushesStatus(t *testing.T) {
	var buf bytes.Buffer
	w := NewResponse(&buf)
	_ = w.SetStatus(400)
	if _, err := w.Write(nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "HTTP/1.1 400 Bad Request\r\nContent-Type: text/plain\r\n\r\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

func TestResponse_WriteBodyCountsHead(t *testing.T) {
	var buf bytes.Buffer
	w := NewResponse(&buf)
	n, err := w.WriteBody([]byte("hi"))
	if err != nil {
		t.Fatalf("WriteBody: %v", err)
	}
	if n != buf.Len() {
		t.Fatalf("first WriteBody n = %d, want %d", n, buf.Len())
	}
	n, err = w.WriteBody([]byte("there"))
	if err != nil || n != 5 {
		t.Fatalf("second WriteBody n = %d err = %v, want 5", n, err)
	}
}

func TestResponse_WriteIsAnIOWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewResponse(&buf)
	n, err := io.Copy(w, bytes.NewReader([]byte("streamed body")))
	if err != nil {
		t.Fatalf("io.Copy: %v", err)
	}
	if n != int64(len("streamed body")) {
		t.Fatalf("copied %d bytes", n)
	}
}

func TestResponse_FrozenAfterWrite(t *testing.T) {
	var buf bytes.Buffer
	w := NewResponse(&buf)
	_ = w.SetStatus(201)
	_ = w.SetHeader("X-A", "1")
	if _, err := w.Write([]byte("x")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	for _, code := range []int{200, 404, 700, 0} {
		if err := w.SetStatus(code); !errors.Is(err, ErrAlreadyFlushed) {
			t.Fatalf("SetStatus(%d) err = %v, want ErrAlreadyFlushed", code, err)
		}
	}
	if err := w.SetHeader("X-A", "2"); !errors.Is(err, ErrAlreadyFlushed) {
		t.Fatalf("SetHeader err = %v, want ErrAlreadyFlushed", err)
	}
	if err := w.DelHeader("X-A"); !errors.Is(err, ErrAlreadyFlushed) {
		t.Fatalf("DelHeader err = %v, want ErrAlreadyFlushed", err)
	}
	if w.Status() != 201 {
		t.Fatalf("status = %d, want 201", w.Status())
	}
	if v, _ := w.Header("X-A"); v != "1" {
		t.Fatalf("X-A = %q, want 1", v)
	}
}

func TestResponse_StatusRange(t *testing.T) {
	w := NewResponse(io.Discard)
	for _, code := range []int{600, 999, 99, 0, -1} {
		if err := w.SetStatus(code); !errors.Is(err, ErrInvalidStatusCode) {
			t.Fatalf("SetStatus(%d) err = %v, want ErrInvalidStatusCode", code, err)
		}
	}
	if w.Status() != 200 {
		t.Fatalf("status = %d after rejected codes, want 200", w.Status())
	}
	for _, code := range []int{100, 599} {
		if err := w.SetStatus(code); err != nil {
			t.Fatalf("SetStatus(%d): %v", code, err)
		}
	}
}

func TestResponse_UnknownStatusReason(t *testing.T) {
	var buf bytes.Buffer
	w := NewResponse(&buf)
	_ = w.SetStatus(599)
	_ = w.DelHeader("Content-Type")
	_, _ = w.Write(nil)
	if buf.String() != "HTTP/1.1 599 Unknown Status\r\n\r\n" {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestResponse_Headers(t *testing.T) {
	var buf bytes.Buffer
	w := NewResponse(&buf)
	if v, ok := w.Header("Content-Type"); !ok || v != "text/plain" {
		t.Fatalf("default Content-Type = %q", v)
	}
	_ = w.SetHeader("Content-Type", "text/html")
	_ = w.SetHeader("X-Req", "7")
	_, _ = w.Write([]byte("<p>"))
	want := "HTTP/1.1 200 OK\r\nContent-Type: text/html\r\nX-Req: 7\r\n\r\n<p>"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestResponse_HeadWriteFailureKeepsOpen(t *testing.T) {
	boom := errors.New("boom")
	w := NewResponse(failWriter{boom})
	if _, err := w.Write([]byte("x")); !errors.Is(err, boom) {
		t.Fatalf("Write err = %v", err)
	}
	if w.Flushed() {
		t.Fatal("Flushed after a failed head write")
	}
	if err := w.SetStatus(500); err != nil {
		t.Fatalf("SetStatus after failed write: %v", err)
	}
}

func TestResponse_Flush(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	w := NewResponse(bw)
	_, _ = w.Write([]byte("x"))
	if buf.Len() != 0 {
		t.Fatal("bufio.Writer flushed early")
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("Flush did not reach the sink")
	}
	if err := NewResponse(io.Discard).Flush(); err != nil {
		t.Fatalf("Flush on plain writer: %v", err)
	}
}
