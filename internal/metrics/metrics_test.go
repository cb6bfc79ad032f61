package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-hotwallet/internal/metrics"
)

func TestMetrics(t *testing.T) {
	m := metrics.New()

	m.SyncedHeight.Set(150)
	m.DepositsIngested.Add(3)
	m.Notifications.WithLabelValues("delivered").Inc()

	assert.Equal(t, float64(150), testutil.ToFloat64(m.SyncedHeight))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.DepositsIngested))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Notifications.WithLabelValues("delivered")))

	server := httptest.NewServer(m.Handler())
	defer server.Close()

	resp, err := server.Client().Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "hotwallet_scanner_synced_height 150")
	assert.Contains(t, string(body), `hotwallet_notifier_deliveries_total{outcome="delivered"} 1`)
}
