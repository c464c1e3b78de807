package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/toyz/axonscan/internal/scanner"
	"github.com/toyz/axonscan/pkg/web"
	"github.com/toyz/axonscan/pkg/web/adapters"
)

func TestObserveScan(t *testing.T) {
	m := New()

	m.ObserveScan("web::controller", scanner.OutcomeOK, 3, 20*time.Millisecond)
	m.ObserveScan("web::controller", scanner.OutcomeOK, 0, 10*time.Millisecond)
	m.ObserveScan("whatever the user typed", scanner.OutcomeNotFound, 0, time.Millisecond)
	m.ObserveScan("web::controller", scanner.OutcomeError, 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.scans.WithLabelValues("web::controller", scanner.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.scans.WithLabelValues(unknownAnnotation, scanner.OutcomeNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.scans.WithLabelValues("web::controller", scanner.OutcomeError)))
	assert.Equal(t, 3, testutil.CollectAndCount(m.scans))
	assert.Equal(t, 1, testutil.CollectAndCount(m.matched))
}

func TestMiddleware(t *testing.T) {
	m := New()

	adapter := adapters.NewDefaultEchoAdapter()
	adapter.Use(m.Middleware())
	adapter.RegisterRoute(http.MethodGet, "/", func(ctx web.RequestContext) error {
		return ctx.Response().String(http.StatusBadRequest, "nope")
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		adapter.GetEngine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "400")))
}

func TestServer(t *testing.T) {
	m := New()
	m.ObserveScan("web::controller", scanner.OutcomeOK, 1, time.Millisecond)

	srv, err := StartServer("127.0.0.1:0", m.Handler(), zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, srv.Shutdown(context.Background()))
	})

	resp, err := http.Get("http://" + srv.Addr() + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `axonscan_scans_total{annotation="web::controller",outcome="ok"} 1`))
	assert.Contains(t, string(body), "go_goroutines")
}

func TestStartServer_BadAddress(t *testing.T) {
	_, err := StartServer("not-an-address", New().Handler(), zaptest.NewLogger(t))
	assert.Error(t, err)
}
