package middleware

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"jyotish-backend/pkg/api"
)

// timeoutWriter buffers the handler's response so a timed-out request can be
// answered with a 408 without racing the handler goroutine on the real
// ResponseWriter. Writes after the deadline are discarded.
type timeoutWriter struct {
	mu       sync.Mutex
	header   http.Header
	body     bytes.Buffer
	status   int
	timedOut bool
}

func newTimeoutWriter() *timeoutWriter {
	return &timeoutWriter{header: make(http.Header)}
}

func (tw *timeoutWriter) Header() http.Header {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.header
}

func (tw *timeoutWriter) WriteHeader(status int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut || tw.status != 0 {
		return
	}
	tw.status = status
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut {
		return len(b), nil
	}
	if tw.status == 0 {
		tw.status = http.StatusOK
	}
	return tw.body.Write(b)
}

// markTimedOut flips the writer into discard mode.
func (tw *timeoutWriter) markTimedOut() {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	tw.timedOut = true
}

// flush copies the buffered response onto the real writer. Only the
// middleware goroutine calls it, after the handler goroutine has finished.
func (tw *timeoutWriter) flush(w http.ResponseWriter) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	for key, values := range tw.header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	if tw.status == 0 {
		tw.status = http.StatusOK
	}
	w.WriteHeader(tw.status)
	_, _ = w.Write(tw.body.Bytes())
}

// Timeout bounds each request with a deadline. Handlers see the deadline
// through the request context and write into a buffer; a request that
// overruns gets a 408 and any late handler output is discarded.
func Timeout(timeout time.Duration, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			r = r.WithContext(ctx)

			tw := newTimeoutWriter()
			done := make(chan struct{})
			go func() {
				defer func() {
					if err := recover(); err != nil {
						logger.Error("panic inside timeout goroutine",
							zap.String("request_id", GetRequestID(r.Context())),
							zap.Any("panic", err))
					}
					close(done)
				}()
				next.ServeHTTP(tw, r)
			}()

			select {
			case <-done:
				tw.flush(w)
			case <-ctx.Done():
				tw.markTimedOut()
				logger.Warn("request timed out",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.String("path", r.URL.Path),
					zap.Duration("timeout", timeout))
				api.Error(w, http.StatusRequestTimeout, "request timeout")
			}
		})
	}
}
