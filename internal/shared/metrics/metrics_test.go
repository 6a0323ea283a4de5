package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersAndExposition(t *testing.T) {
	gin.SetMode(gin.TestMode)

	before := testutil.ToFloat64(summariesResolved.WithLabelValues("idea", "api"))
	IncSummaryResolved("idea", "api")
	IncSummaryResolved("idea", "api")
	if got := testutil.ToFloat64(summariesResolved.WithLabelValues("idea", "api")); got != before+2 {
		t.Fatalf("expected %v, got %v", before+2, got)
	}

	IncPageRender()
	ObserveRequest(http.MethodGet, "/", "200", -1)

	r := gin.New()
	r.GET("/metrics", Handler())
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, name := range []string{
		"roadmap_summaries_resolved_total",
		"roadmap_page_renders_total",
		"http_request_duration_seconds_bucket",
	} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in exposition", name)
		}
	}
}
