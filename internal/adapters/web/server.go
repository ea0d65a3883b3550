// Package web serves the operator control page and the start/stop endpoints.
//
// POST /start and POST /stop hold the response open until the operator
// command settles, then end it with an empty 200 regardless of outcome.
// Results only ever reach the server log.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/corey/operator-gui/internal/adapters/metrics"
	"github.com/corey/operator-gui/internal/ports"
)

// Options carries the optional collaborators of a Server.
type Options struct {
	Metrics     *metrics.Metrics // nil = no /metrics route, no instrumentation
	Command     string           // reported by /api/health
	CommandPath func() string    // PATH lookup reported by /api/health
}

// HealthResult is the /api/health response body.
type HealthResult struct {
	Status      string `json:"status"`
	Uptime      string `json:"uptime"`
	Inflight    int64  `json:"inflight"`
	Command     string `json:"command"`
	CommandPath string `json:"command_path"`
}

// Server serves the control page and invocation endpoints over HTTP.
type Server struct {
	invoker  ports.Invoker
	page     http.Handler
	opts     Options
	listener net.Listener
	httpSrv  *http.Server
	port     int
	started  time.Time
	inflight atomic.Int64
	stopOnce sync.Once
}

// NewServer creates a server. page answers GET /.
func NewServer(invoker ports.Invoker, page http.Handler, opts Options) *Server {
	return &Server{
		invoker: invoker,
		page:    page,
		opts:    opts,
		started: time.Now(),
	}
}

// Handler returns the routed (and, with metrics, instrumented) handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /{$}", s.page)
	mux.HandleFunc("POST /start", s.handleInvoke(ports.ActionStart))
	mux.HandleFunc("POST /stop", s.handleInvoke(ports.ActionStop))
	mux.HandleFunc("GET /api/health", s.handleHealth)

	if s.opts.Metrics == nil {
		return mux
	}
	mux.Handle("GET /metrics", s.opts.Metrics.Handler())
	return s.opts.Metrics.Instrument(mux)
}

// Start begins listening on port on all interfaces and serves in the background.
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf(":%d", port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.listener = ln
	s.port = ln.Addr().(*net.TCPAddr).Port
	s.started = time.Now()

	// No WriteTimeout: a hung operator command holds its response open.
	s.httpSrv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.httpSrv.Serve(ln)
	return nil
}

// Stop gracefully shuts down the HTTP server. Idempotent.
// In-flight invocations that outlive the deadline keep running; only their
// responses are cut.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		if s.httpSrv != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			s.httpSrv.Shutdown(ctx)
		}
	})
}

// Port returns the bound port number.
func (s *Server) Port() int {
	return s.port
}

// URL returns the page URL.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d", s.port)
}

// Inflight returns the number of invocations started by this server that
// have not settled yet.
func (s *Server) Inflight() int64 {
	return s.inflight.Load()
}

// handleInvoke runs the operator command once per request and ends the
// response after it settles. The status is never changed by the outcome.
// If the caller goes away first the handler returns; the child keeps running.
func (s *Server) handleInvoke(action ports.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.inflight.Add(1)
		done := s.invoker.Invoke(action)

		select {
		case <-done:
			s.inflight.Add(-1)
		case <-r.Context().Done():
			go func() {
				<-done
				s.inflight.Add(-1)
			}()
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	result := HealthResult{
		Status:   "ok",
		Uptime:   time.Since(s.started).Round(time.Second).String(),
		Inflight: s.inflight.Load(),
		Command:  s.opts.Command,
	}
	if s.opts.CommandPath != nil {
		result.CommandPath = s.opts.CommandPath()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
