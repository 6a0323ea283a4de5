package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-roadmap/internal/content"
	"ai-roadmap/internal/shared/config"
)

func testConfig() config.Config {
	return config.Config{
		Port:            "8080",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		RateLimitRPS:    1,
		RateLimitBurst:  3,
		SiteTitle:       "Roadmap",
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	page, err := content.Load()
	require.NoError(t, err)
	return NewRouter(testConfig(), page)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.EqualValues(t, 9, body["contentSections"])
	assert.NotEmpty(t, resp.Header().Get("X-Request-Id"))
}

func TestPageAndMetrics(t *testing.T) {
	r := newTestRouter(t)

	page := httptest.NewRecorder()
	r.ServeHTTP(page, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), `id="planner"`)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.True(t, strings.Contains(body, `roadmap_summaries_resolved_total{channel="page",stage="idea"}`))
	assert.Contains(t, body, "roadmap_page_renders_total")
}

func TestRateLimitAppliesToAPIButNotHealth(t *testing.T) {
	r := newTestRouter(t)

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/roadmap/options", nil))
		codes = append(codes, resp.Code)
	}
	assert.Equal(t, []int{200, 200, 200, 429}, codes)

	for i := 0; i < 5; i++ {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
		assert.Equal(t, http.StatusOK, resp.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/roadmap/summary", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, "http://localhost:5173", resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestAddr(t *testing.T) {
	cases := map[string]string{"": ":8080", "9000": ":9000", ":7000": ":7000"}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
