package middlewares

import (
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// ErrorHandler turns a panic into a 500. Pages get a plain error text and
// JSON endpoints get the usual error envelope.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			var err error
			switch x := rec.(type) {
			case string:
				err = errors.New(x)
			case error:
				err = x
			default:
				err = fmt.Errorf("unknown panic: %v", x)
			}

			m.Log.Error("Middlewares.ErrorHandler recovered from panic",
				utils.RequestIDField(r.Context()),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Error(err),
				zap.Stack("stacktrace"),
			)

			if strings.HasPrefix(r.URL.Path, constvars.RouteAPIPrefix) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
				return
			}
			http.Error(w, constvars.ErrClientSomethingWrongWithApplication, http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}
