package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestGlobalRateLimiterAllowsWithinBudget(t *testing.T) {
	rl := NewGlobalRateLimiter(100, 5)
	handler := rl.Middleware()(okHandler())

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: code = %d, want 200", i, rec.Code)
		}
	}
}

func TestGlobalRateLimiterBlocksBurstOverflow(t *testing.T) {
	rl := NewGlobalRateLimiter(0.001, 2)
	handler := rl.Middleware()(okHandler())

	codes := make([]int, 3)
	for i := range codes {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		handler.ServeHTTP(rec, req)
		codes[i] = rec.Code
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("burst requests = %v, want first two allowed", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request code = %d, want 429", codes[2])
	}
}

func TestGlobalRateLimiterIsolatesClients(t *testing.T) {
	rl := NewGlobalRateLimiter(0.001, 1)
	handler := rl.Middleware()(okHandler())

	first := httptest.NewRecorder()
	req1 := httptest.NewRequest(http.MethodGet, "/", nil)
	req1.RemoteAddr = "10.0.0.3:1111"
	handler.ServeHTTP(first, req1)

	blocked := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.RemoteAddr = "10.0.0.3:1111"
	handler.ServeHTTP(blocked, req2)

	other := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodGet, "/", nil)
	req3.Header.Set("X-Real-IP", "203.0.113.9")
	handler.ServeHTTP(other, req3)

	if first.Code != http.StatusOK {
		t.Errorf("first request code = %d, want 200", first.Code)
	}
	if blocked.Code != http.StatusTooManyRequests {
		t.Errorf("repeat request code = %d, want 429", blocked.Code)
	}
	if other.Code != http.StatusOK {
		t.Errorf("other client code = %d, want 200", other.Code)
	}
}

func TestLimiterCachePrune(t *testing.T) {
	rl := NewGlobalRateLimiter(1, 1)
	handler := rl.Middleware()(okHandler())

	for _, ip := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", ip)
		handler.ServeHTTP(rec, req)
	}

	if rl.Prune(10) {
		t.Error("Prune(10) cleared a cache of 3 entries")
	}
	if !rl.Prune(2) {
		t.Error("Prune(2) did not clear a cache of 3 entries")
	}
}

func TestGetClientIPPrefersProxyHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:9999"
	if ip := getClientIP(req); ip != "127.0.0.1:9999" {
		t.Errorf("getClientIP() = %q, want RemoteAddr fallback", ip)
	}

	req.Header.Set("X-Forwarded-For", "198.51.100.5")
	if ip := getClientIP(req); ip != "198.51.100.5" {
		t.Errorf("getClientIP() = %q, want X-Forwarded-For", ip)
	}

	req.Header.Set("X-Real-IP", "198.51.100.7")
	if ip := getClientIP(req); ip != "198.51.100.7" {
		t.Errorf("getClientIP() = %q, want X-Real-IP to win", ip)
	}
}
