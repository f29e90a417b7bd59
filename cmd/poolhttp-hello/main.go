package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dqx0.com/go/poolhttp/httpx"
	"dqx0.com/go/poolhttp/internal/obs"
)

var (
	addr    = flag.String("addr", "127.0.0.1:8000", "listen address")
	workers = flag.Int("workers", httpx.DefaultWorkers, "number of worker goroutines")
)

func hello(r *httpx.Request, w *httpx.Response) error {
	if err := w.SetHeader("Content-Type", "text/html"); err != nil {
		return err
	}
	_, err := w.Write([]byte("<h1>Hello World!</h1><p>It works :)</p>"))
	return err
}

func main() {
	flag.Parse()
	logger := obs.StdLogger{L: log.New(os.Stderr, "", log.LstdFlags), Min: obs.Info, Pref: "poolhttp "}
	s := &httpx.Server{
		Addr:    *addr,
		Handler: httpx.HandlerFunc(hello),
		Workers: *workers,
		Logger:  logger,
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		logger.Logf(obs.Info, "shutting down")
		_ = s.Close()
	}()

	if err := s.ListenAndServe(); err != nil && !errors.Is(err, httpx.ErrServerClosed) {
		log.Fatal(err)
	}
}
