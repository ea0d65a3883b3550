package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/corey/operator-gui/internal/ports"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInvocationCounters(t *testing.T) {
	m := New()

	m.InvocationStarted(ports.ActionStart)
	m.InvocationStarted(ports.ActionStop)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.invocationInFlight))

	m.InvocationFinished(ports.Invocation{Action: ports.ActionStart, Outcome: ports.OutcomeOK, Duration: 20 * time.Millisecond})
	m.InvocationFinished(ports.Invocation{Action: ports.ActionStop, Err: errors.New("exec: not found"), ExitCode: -1, Outcome: ports.OutcomeLaunchError})

	assert.Equal(t, 0.0, testutil.ToFloat64(m.invocationInFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.invocations.WithLabelValues("start", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.invocations.WithLabelValues("stop", "launch_error")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.invocationDuration))
}

func TestInvocationCounters_ExitError(t *testing.T) {
	m := New()
	m.InvocationStarted(ports.ActionStop)
	m.InvocationFinished(ports.Invocation{
		Action:   ports.ActionStop,
		Err:      errors.New("exit status 2"),
		ExitCode: 2,
		Outcome:  ports.OutcomeExitError,
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.invocations.WithLabelValues("stop", "exit_error")))
}

func TestInstrument(t *testing.T) {
	m := New()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /start", func(w http.ResponseWriter, r *http.Request) {})
	mux.Handle("GET /metrics", m.Handler())
	h := m.Instrument(mux)

	for _, path := range []string{"/start", "/start", "/nope/deeper"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/start", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "other", "404")))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "operator_gui_http_requests_total"))
}

func TestCanonicalPath(t *testing.T) {
	assert.Equal(t, "/", canonicalPath(""))
	assert.Equal(t, "/", canonicalPath("/"))
	assert.Equal(t, "/stop", canonicalPath("/stop"))
	assert.Equal(t, "/api/health", canonicalPath("/api/health"))
	assert.Equal(t, "other", canonicalPath("/favicon.ico"))
}
