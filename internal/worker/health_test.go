package worker

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aescanero/dago-bank-assistant/internal/agent"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedStats agent.Snapshot

func (f fixedStats) Stats() agent.Snapshot {
	return agent.Snapshot(f)
}

func setupHealth(t *testing.T, stats StatsProvider) (*httptest.Server, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	hs := NewHealthServer(0, client, stats, zap.NewNop())
	srv := httptest.NewServer(hs.Handler())
	t.Cleanup(srv.Close)
	return srv, mr
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestHealth_Healthy(t *testing.T) {
	srv, _ := setupHealth(t, nil)

	var body HealthResponse
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/health", &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "healthy", body.Checks["redis"])

	var ready HealthResponse
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/ready", &ready))
	assert.Equal(t, "ready", ready.Status)
}

func TestHealth_RedisDown(t *testing.T) {
	srv, mr := setupHealth(t, nil)
	mr.Close()

	var body HealthResponse
	assert.Equal(t, http.StatusServiceUnavailable, getJSON(t, srv.URL+"/health", &body))
	assert.Equal(t, "unhealthy", body.Status)

	var ready HealthResponse
	assert.Equal(t, http.StatusServiceUnavailable, getJSON(t, srv.URL+"/ready", &ready))
	assert.Equal(t, "not ready", ready.Status)
}

func TestStatsEndpoint(t *testing.T) {
	srv, _ := setupHealth(t, fixedStats{TotalQueries: 4, BalanceQueries: 2, Errors: 1, SuccessRate: 75})

	var snap agent.Snapshot
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/stats", &snap))
	assert.Equal(t, int64(4), snap.TotalQueries)
	assert.Equal(t, int64(2), snap.BalanceQueries)
	assert.Equal(t, 75.0, snap.SuccessRate)
}

func TestStatsEndpoint_Unavailable(t *testing.T) {
	srv, _ := setupHealth(t, nil)

	var body HealthResponse
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/stats", &body))
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := setupHealth(t, nil)
	MalformedMessages.Add(0)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "assistant_malformed_messages_total")
}
