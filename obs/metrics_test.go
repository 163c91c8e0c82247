package obs

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetrics_Counters(t *testing.T) {
	m := NewTestMetrics()

	m.IncSearches()
	m.IncSearches()
	m.IncEmptyResults()
	m.ObserveCatalogRefresh("ok", 9)
	m.ObserveCatalogRefresh("error", 0)

	body := scrape(t, m)
	assert.Contains(t, body, "rental_searches_total 2")
	assert.Contains(t, body, "rental_search_empty_results_total 1")
	assert.Contains(t, body, "rental_catalog_listings 9")
	assert.Contains(t, body, `rental_catalog_refresh_total{outcome="error"} 1`)
}

func TestMetrics_HTTPRequests(t *testing.T) {
	m := NewTestMetrics()
	m.IncHTTPRequestsTotal("GET", "/v1/listings/search", "200")
	m.ObserveHTTPRequestDuration("GET", "/v1/listings/search", "200", 0.01)

	body := scrape(t, m)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/v1/listings/search",status="200"} 1`)
	assert.Contains(t, body, `http_request_duration_seconds_count{method="GET",path="/v1/listings/search",status="200"} 1`)
}
