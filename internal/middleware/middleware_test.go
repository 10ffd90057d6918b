package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"todo-tracker/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw Middleware) *gin.Engine {
	r := gin.New()
	r.Use(mw.Metrics())
	r.GET("/whoami", mw.Auth(), mw.RateLimit(), func(c *gin.Context) {
		sc, _ := model.GetScopeFromContext(c.Request.Context())
		c.String(http.StatusOK, sc.UserID)
	})
	return r
}

func do(r http.Handler, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if userID != "" {
		req.Header.Set(UserIDHeader, userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	r := newRouter(New(&mockLogger{}, Config{}))

	tests := []struct {
		name     string
		userID   string
		wantCode int
		wantBody string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"blank header", "   ", http.StatusUnauthorized, ""},
		{"valid", "alice", http.StatusOK, "alice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.userID)
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantCode)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of 1 and a refill far slower than the test.
	r := newRouter(New(&mockLogger{}, Config{RateLimitEnabled: true, RequestsPerMin: 10}))

	if w := do(r, "alice"); w.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", w.Code)
	}
	if w := do(r, "alice"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", w.Code)
	}
	if w := do(r, "bob"); w.Code != http.StatusOK {
		t.Errorf("other user status = %d, want 200", w.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newRouter(New(&mockLogger{}, Config{RateLimitEnabled: false, RequestsPerMin: 1}))
	for i := 0; i < 5; i++ {
		if w := do(r, "alice"); w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, w.Code)
		}
	}
}

func TestRateLimiter_MinimumBurst(t *testing.T) {
	rl := newRateLimiter(1)
	if !rl.Allow("k") {
		t.Error("first request must be allowed even at very low rates")
	}
}

func TestMetrics(t *testing.T) {
	r := newRouter(New(&mockLogger{}, Config{}))
	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/whoami", "401"))

	do(r, "")

	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/whoami", "401"))
	if after != before+1 {
		t.Errorf("counter moved by %v, want 1", after-before)
	}
}
