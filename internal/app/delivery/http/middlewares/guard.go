package middlewares

import (
	"clinic-portal/internal/app/services/core/session"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// Decision is the outcome of the route guard. Redirect is empty when access
// is allowed.
type Decision struct {
	Allow    bool
	Redirect string
}

// Evaluate allows authenticated sessions and sends everyone else to the login
// page with target as the return URL.
func Evaluate(target string, authenticated bool) Decision {
	if authenticated {
		return Decision{Allow: true}
	}
	return Decision{Redirect: utils.BuildLoginRedirectURL(target)}
}

func (m *Middlewares) RequireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authenticated := false
		if holder, found := session.FromContext(r.Context()); found {
			authenticated = holder.IsAuthenticated()
		}

		decision := Evaluate(r.URL.RequestURI(), authenticated)
		if !decision.Allow {
			m.Log.Info("Middlewares.RequireAuthentication redirecting to login",
				utils.RequestIDField(r.Context()),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingReturnURLKey, decision.Redirect),
			)
			http.Redirect(w, r, decision.Redirect, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
