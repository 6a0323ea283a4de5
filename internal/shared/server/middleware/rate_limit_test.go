package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitPagesHigherThanDefault(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })

	groupFor := func(c *gin.Context) string {
		if c.Request.Method == http.MethodGet && c.FullPath() == "/api/v1/roadmap/options" {
			return "OPTIONS"
		}
		return "DEFAULT"
	}

	r := gin.New()
	r.Use(RateLimit(RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor:     groupFor,
		Limiter:      limiter,
		Rules: map[string]RateLimitRule{
			"DEFAULT": {Rate: 1, Burst: 2},
			"OPTIONS": {Rate: 5, Burst: 10},
		},
	}))

	r.GET("/api/v1/roadmap/options", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.POST("/api/v1/roadmap/summary", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/roadmap/options", nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("options request %d expected 200, got %d", i+1, resp.Code)
		}
	}

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/roadmap/summary", nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("default request %d expected 200, got %d", i+1, resp.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/roadmap/summary", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("default request 3 expected 429, got %d", resp.Code)
	}
}

func TestRateLimit429IncludesRetryAfter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })

	r := gin.New()
	r.Use(RateLimit(RateLimitConfig{
		Limiter: limiter,
		Rules: map[string]RateLimitRule{
			"DEFAULT": {Rate: 1, Burst: 1},
		},
	}))
	r.GET("/api/v1/limited", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req1 := httptest.NewRequest(http.MethodGet, "/api/v1/limited", nil)
	resp1 := httptest.NewRecorder()
	r.ServeHTTP(resp1, req1)
	if resp1.Code != http.StatusOK {
		t.Fatalf("expected first request 200, got %d", resp1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/api/v1/limited", nil)
	resp2 := httptest.NewRecorder()
	r.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp2.Code)
	}
	if got := resp2.Header().Get("Retry-After"); got != "1" {
		t.Fatalf("expected Retry-After 1, got %q", got)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp2.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["error"] != "rate_limited" {
		t.Fatalf("expected error=rate_limited")
	}
	if _, ok := payload["retryAfterMs"]; !ok {
		t.Fatalf("expected retryAfterMs in response")
	}
}

func TestRateLimiterRefillsOverTime(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 2, Burst: 1}

	if ok, _ := limiter.Allow("client|DEFAULT", rule); !ok {
		t.Fatalf("expected first call allowed")
	}
	ok, wait := limiter.Allow("client|DEFAULT", rule)
	if ok {
		t.Fatalf("expected second call denied")
	}
	if wait != 500*time.Millisecond {
		t.Fatalf("expected 500ms wait, got %v", wait)
	}

	now = now.Add(500 * time.Millisecond)
	if ok, _ := limiter.Allow("client|DEFAULT", rule); !ok {
		t.Fatalf("expected call allowed after refill")
	}
	if ok, _ := limiter.Allow("other|DEFAULT", rule); !ok {
		t.Fatalf("expected independent bucket per key")
	}
}

func TestRateLimiterDropsIdleBuckets(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 5}

	for _, key := range []string{"10.0.0.1|DEFAULT", "10.0.0.2|DEFAULT", "10.0.0.3|DEFAULT"} {
		if ok, _ := limiter.Allow(key, rule); !ok {
			t.Fatalf("expected %s allowed", key)
		}
	}
	if got := limiter.Len(); got != 3 {
		t.Fatalf("expected 3 buckets, got %d", got)
	}

	now = now.Add(30 * time.Second)
	limiter.Allow("10.0.0.1|DEFAULT", rule)
	if got := limiter.Len(); got != 3 {
		t.Fatalf("expected no sweep before the interval, got %d buckets", got)
	}

	now = now.Add(rateLimitSweepEvery)
	if ok, _ := limiter.Allow("10.0.0.4|DEFAULT", rule); !ok {
		t.Fatalf("expected new client allowed")
	}
	if got := limiter.Len(); got != 1 {
		t.Fatalf("expected idle buckets dropped, got %d", got)
	}
}

func TestRateLimiterKeepsDrainedBuckets(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 0.01, Burst: 1}

	if ok, _ := limiter.Allow("client|DEFAULT", rule); !ok {
		t.Fatalf("expected first call allowed")
	}
	// Past the sweep interval but short of the 100s refill.
	now = now.Add(90 * time.Second)
	if ok, _ := limiter.Allow("client|DEFAULT", rule); ok {
		t.Fatalf("expected bucket still drained after sweep")
	}
	if got := limiter.Len(); got != 1 {
		t.Fatalf("expected bucket kept, got %d", got)
	}
}
