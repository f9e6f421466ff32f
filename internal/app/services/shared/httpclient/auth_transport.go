package httpclient

import (
	"clinic-portal/internal/app/services/core/session"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// AuthTransport attaches the basic token of the session found in the request
// context to outgoing requests. A 401 answer ends that session.
type AuthTransport struct {
	Base http.RoundTripper
	Log  *zap.Logger
}

func NewAuthTransport(base http.RoundTripper, logger *zap.Logger) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &AuthTransport{
		Base: base,
		Log:  logger,
	}
}

// NewClient returns an http.Client whose requests go through AuthTransport.
func NewClient(base http.RoundTripper, logger *zap.Logger) *http.Client {
	return &http.Client{Transport: NewAuthTransport(base, logger)}
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	holder, found := session.FromContext(ctx)
	if !found || !holder.IsAuthenticated() {
		return t.Base.RoundTrip(req)
	}

	decorated := req.Clone(ctx)
	decorated.Header.Set(constvars.HeaderAuthorization, utils.BuildBasicAuthHeader(holder.BasicToken()))

	resp, err := t.Base.RoundTrip(decorated)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == constvars.StatusUnauthorized {
		t.Log.Warn("AuthTransport.RoundTrip authorization denied, ending session",
			utils.RequestIDField(ctx),
			zap.String(constvars.LoggingSessionIDKey, holder.ID()),
			zap.String(constvars.LoggingURLKey, req.URL.String()),
		)
		err = holder.MarkUnauthenticated(ctx)
		if err != nil {
			t.Log.Error("AuthTransport.RoundTrip error clearing session",
				utils.RequestIDField(ctx),
				zap.Error(err),
			)
		}
	}
	return resp, nil
}
