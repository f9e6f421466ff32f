package middlewares

import (
	"clinic-portal/internal/app/services/core/session"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// LoadSession attaches the browser session holder to the request context and
// issues the session cookie to browsers that have none.
func (m *Middlewares) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		cookieValue := ""
		if cookie, err := r.Cookie(constvars.SessionCookieName); err == nil {
			cookieValue = cookie.Value
		}

		holder, isNew, err := m.SessionManager.Load(ctx, cookieValue)
		if err != nil {
			m.Log.Error("Middlewares.LoadSession error loading session, continuing unauthenticated",
				utils.RequestIDField(ctx),
				zap.Error(err),
			)
		}

		if isNew {
			cookie, err := m.SessionManager.Cookie(holder)
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}
			http.SetCookie(w, cookie)
		}

		next.ServeHTTP(w, r.WithContext(session.WithHolder(ctx, holder)))
	})
}
