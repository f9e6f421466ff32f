package middlewares

import (
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

// LoginIPRateLimit limits login requests per client IP per minute.
func (m *Middlewares) LoginIPRateLimit() func(next http.Handler) http.Handler {
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Minute)
}

// LimitLoginAttempts applies the per-username limiter to login submissions.
func (m *Middlewares) LimitLoginAttempts(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || m.LoginLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		err := r.ParseForm()
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrCannotParseForm(err))
			return
		}

		username := r.PostFormValue("username")
		allowed, retryAfter := m.LoginLimiter.Allow(username)
		if !allowed {
			m.Log.Warn("Middlewares.LimitLoginAttempts too many attempts",
				utils.RequestIDField(r.Context()),
				zap.String(constvars.LoggingUsernameKey, username),
				zap.Duration(constvars.LoggingDurationKey, retryAfter),
				zap.Error(exceptions.ErrTooManyLoginAttempts(username)),
			)
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			http.Error(w, constvars.ErrClientTooManyLoginAttempts, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
