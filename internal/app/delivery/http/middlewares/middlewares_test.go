package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"clinic-portal/internal/app/config"
	"clinic-portal/internal/app/services/core/session"
	"clinic-portal/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestMiddlewares(t *testing.T) (*Middlewares, *session.Manager) {
	t.Helper()
	sealer, err := utils.NewTokenSealer(testSecret)
	require.NoError(t, err)
	manager := session.NewManager(zap.NewNop(), session.NewMemorySessionStore(0), sealer, testSecret, 1, false)

	internalConfig := &config.InternalConfig{
		App: config.App{MaxRequests: 100, RequestBodyLimitInMegabyte: 1},
	}
	limiter := NewLoginAttemptLimiter(2, time.Minute, time.Minute)
	return NewMiddlewares(zap.NewNop(), manager, limiter, internalConfig), manager
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestEvaluate(t *testing.T) {
	t.Run("Authenticated session is allowed", func(t *testing.T) {
		decision := Evaluate("/dashboard", true)
		assert.True(t, decision.Allow)
		assert.Empty(t, decision.Redirect)
	})

	t.Run("Anonymous session is sent to login with the return URL", func(t *testing.T) {
		decision := Evaluate("/patient/123", false)
		assert.False(t, decision.Allow)
		assert.Equal(t, "/login?returnUrl=%2Fpatient%2F123", decision.Redirect)
	})
}

func TestRequireAuthentication(t *testing.T) {
	m, manager := newTestMiddlewares(t)
	handler := m.LoadSession(m.RequireAuthentication(okHandler))

	t.Run("Anonymous request is redirected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login?returnUrl=%2Fdashboard", rec.Header().Get("Location"))
	})

	t.Run("Authenticated request passes", func(t *testing.T) {
		holder, _, err := manager.Load(context.Background(), "")
		require.NoError(t, err)
		require.NoError(t, holder.MarkAuthenticated(context.Background(), "user", "dXNlcjp1c2Vy"))
		cookie, err := manager.Cookie(holder)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLoadSession(t *testing.T) {
	m, _ := newTestMiddlewares(t)

	t.Run("New browser receives a session cookie", func(t *testing.T) {
		var sessionID string
		handler := m.LoadSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			holder, found := session.FromContext(r.Context())
			require.True(t, found)
			sessionID = holder.ID()
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "portal_session", cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)
		assert.NotEmpty(t, sessionID)
	})

	t.Run("Known browser keeps its session", func(t *testing.T) {
		first := httptest.NewRecorder()
		m.LoadSession(okHandler).ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
		cookie := first.Result().Cookies()[0]

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookie)
		second := httptest.NewRecorder()
		m.LoadSession(okHandler).ServeHTTP(second, req)

		assert.Empty(t, second.Result().Cookies())
	})
}

func TestLoginAttemptLimiter(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewLoginAttemptLimiter(3, time.Minute, 5*time.Minute)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("user")
		assert.True(t, allowed, "attempt %d", i+1)
	}

	allowed, retryAfter := limiter.Allow("User")
	assert.False(t, allowed)
	assert.Equal(t, 5*time.Minute, retryAfter)

	allowed, _ = limiter.Allow("other")
	assert.True(t, allowed)

	now = now.Add(time.Minute)
	allowed, retryAfter = limiter.Allow("user")
	assert.False(t, allowed)
	assert.Equal(t, 4*time.Minute, retryAfter)

	now = now.Add(5 * time.Minute)
	allowed, _ = limiter.Allow("user")
	assert.True(t, allowed)

	limiter.Reset("user")
	allowed, _ = limiter.Allow("")
	assert.True(t, allowed)
}

func TestLoginAttemptLimiterForgetsIdleUsernames(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewLoginAttemptLimiter(3, time.Minute, 5*time.Minute)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 1000; i++ {
		limiter.Allow(fmt.Sprintf("guess-%d", i))
		now = now.Add(time.Second)
	}
	assert.Less(t, limiter.Len(), 1000)

	for i := 0; i < 4; i++ {
		limiter.Allow("blocked")
	}
	allowed, _ := limiter.Allow("blocked")
	require.False(t, allowed)

	now = now.Add(7 * time.Minute)
	allowed, _ = limiter.Allow("fresh")
	assert.True(t, allowed)
	assert.Equal(t, 1, limiter.Len(), "only the latest username stays tracked")

	allowed, _ = limiter.Allow("blocked")
	assert.True(t, allowed, "an expired block is not restored by the sweep")
}

func TestLimitLoginAttempts(t *testing.T) {
	m, _ := newTestMiddlewares(t)
	handler := m.LimitLoginAttempts(okHandler)

	post := func() *httptest.ResponseRecorder {
		form := url.Values{"username": {"user"}, "password": {"wrong"}}
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, post().Code)
	assert.Equal(t, http.StatusOK, post().Code)

	rec := post()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	get := httptest.NewRecorder()
	handler.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/login", nil))
	assert.Equal(t, http.StatusOK, get.Code)
}

func TestSecurityHeaders(t *testing.T) {
	m, _ := newTestMiddlewares(t)
	rec := httptest.NewRecorder()
	m.SecurityHeaders(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestErrorHandler(t *testing.T) {
	m, _ := newTestMiddlewares(t)
	core, logs := observer.New(zapcore.ErrorLevel)
	m.Log = zap.New(core)

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := m.RequestIDMiddleware(m.ErrorHandler(panicking))

	serve := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("X-Request-ID", "req-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Page gets a plain error and the panic is logged with the request id", func(t *testing.T) {
		rec := serve("/dashboard")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
		assert.NotContains(t, rec.Body.String(), "boom")

		entries := logs.FilterMessage("Middlewares.ErrorHandler recovered from panic").TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
		assert.Equal(t, "/dashboard", entries[0].ContextMap()["endpoint"])
	})

	t.Run("API endpoint gets the JSON envelope", func(t *testing.T) {
		rec := serve("/api/session")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m, _ := newTestMiddlewares(t)

	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "client-id", seen)
	assert.Equal(t, "client-id", rec.Header().Get("X-Request-ID"))
}
