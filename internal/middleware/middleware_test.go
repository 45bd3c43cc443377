package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"note-task-planner/internal/model"
	"note-task-planner/pkg/log"
)

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/t", handlers...)
	return r
}

func TestAuth(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata not available")
	}
	m := New(log.NewNop(), berlin, 0)

	var got model.Scope
	r := newTestRouter(m.Auth(), func(c *gin.Context) {
		got, _ = model.GetScopeFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name     string
		header   map[string]string
		query    string
		wantCode int
		wantTZ   string
	}{
		{name: "missing user", wantCode: http.StatusUnauthorized},
		{name: "default timezone", header: map[string]string{HeaderUserID: "alice"}, wantCode: http.StatusOK, wantTZ: "Europe/Berlin"},
		{name: "header timezone", header: map[string]string{HeaderUserID: "alice", HeaderTimezone: "UTC"}, wantCode: http.StatusOK, wantTZ: "UTC"},
		{name: "query wins over header", header: map[string]string{HeaderUserID: "alice", HeaderTimezone: "UTC"}, query: "?tz=Europe/Berlin", wantCode: http.StatusOK, wantTZ: "Europe/Berlin"},
		{name: "bad timezone", header: map[string]string{HeaderUserID: "alice"}, query: "?tz=Mars/Olympus", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = model.Scope{}
			req := httptest.NewRequest(http.MethodGet, "/t"+tt.query, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantCode)
			}
			if tt.wantCode != http.StatusOK {
				return
			}
			if got.UserID != "alice" {
				t.Errorf("user = %q", got.UserID)
			}
			if got.Location().String() != tt.wantTZ {
				t.Errorf("tz = %s, want %s", got.Location(), tt.wantTZ)
			}
		})
	}
}

func TestRateLimitExtraction(t *testing.T) {
	m := New(log.NewNop(), nil, 6) // burst 1
	r := newTestRouter(m.Auth(), m.RateLimitExtraction(), func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/t", nil)
		req.Header.Set(HeaderUserID, user)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := call("alice"); code != http.StatusOK {
		t.Fatalf("first call = %d", code)
	}
	if code := call("alice"); code != http.StatusTooManyRequests {
		t.Errorf("second call = %d, want 429", code)
	}
	if code := call("bob"); code != http.StatusOK {
		t.Errorf("other owner should have its own bucket, got %d", code)
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	rl := newRateLimiter(0)
	for i := 0; i < 100; i++ {
		if !rl.Allow("x") {
			t.Fatal("disabled limiter must allow")
		}
	}
}

func TestRequestID(t *testing.T) {
	m := New(log.NewNop(), nil, 0)
	var seen string
	r := newTestRouter(m.RequestID(), func(c *gin.Context) {
		seen = log.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if seen != "req-42" || w.Header().Get(HeaderRequestID) != "req-42" {
		t.Errorf("request id not propagated: ctx=%q header=%q", seen, w.Header().Get(HeaderRequestID))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))
	if w.Header().Get(HeaderRequestID) == "" {
		t.Error("expected a generated request id")
	}
}
