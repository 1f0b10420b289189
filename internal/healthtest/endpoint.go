// Package healthtest serves a fake health endpoint at the fixed health URL
// for tests.
package healthtest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// Endpoint is an httptest server reachable through the fixed health URL.
type Endpoint struct {
	Server *httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

// NewEndpoint starts a server running h. Requests made with Client() for
// any URL are dialed to it, so callers keep using the real health URL.
func NewEndpoint(t *testing.T, h http.HandlerFunc) *Endpoint {
	t.Helper()

	e := &Endpoint{}
	e.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e.mu.Lock()
		e.requests = append(e.requests, r.Clone(context.Background()))
		e.mu.Unlock()
		h(w, r)
	}))
	t.Cleanup(e.Server.Close)
	return e
}

// JSON returns an endpoint answering every request with status and body.
func JSON(t *testing.T, status int, body string) *Endpoint {
	t.Helper()

	return NewEndpoint(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func (e *Endpoint) Client() *http.Client {
	addr := e.Server.Listener.Addr().String()
	dialer := &net.Dialer{Timeout: 2 * time.Second}

	return &http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, network, _ string) (net.Conn, error) {
				return dialer.DialContext(ctx, network, addr)
			},
		},
	}
}

// Requests returns a copy of every request received so far.
func (e *Endpoint) Requests() []*http.Request {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*http.Request, len(e.requests))
	copy(out, e.requests)
	return out
}

var ErrRefused = errors.New("connection refused")

// RefusingClient returns a client whose every dial fails.
func RefusingClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return nil, &net.OpError{Op: "dial", Net: network, Err: ErrRefused}
			},
		},
	}
}

// WaitForShutdown fails the test when errCh does not yield nil in time.
func WaitForShutdown(t *testing.T, errCh chan error) {
	t.Helper()

	select {
	case <-time.After(5 * time.Second):
		t.Fatalf("run(ctx) did not exit after cancel")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("run(ctx) returned error: %v", err)
		}
	}
}
