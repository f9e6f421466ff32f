package session

import (
	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Manager rebuilds the session holder of a browser from its cookie at the
// start of every request and issues the cookie for new sessions.
type Manager struct {
	Log          *zap.Logger
	Store        contracts.SessionStore
	Sealer       *utils.TokenSealer
	Secret       string
	ExpiryHours  int
	SecureCookie bool
}

func NewManager(
	logger *zap.Logger,
	store contracts.SessionStore,
	sealer *utils.TokenSealer,
	secret string,
	expiryHours int,
	secureCookie bool,
) *Manager {
	return &Manager{
		Log:          logger,
		Store:        store,
		Sealer:       sealer,
		Secret:       secret,
		ExpiryHours:  expiryHours,
		SecureCookie: secureCookie,
	}
}

func (m *Manager) ttl() time.Duration {
	return time.Duration(m.ExpiryHours) * time.Hour
}

// Load answers isNew=true when the browser needs a fresh cookie. A store
// failure yields an unauthenticated holder together with the error.
func (m *Manager) Load(ctx context.Context, cookieValue string) (holder *Holder, isNew bool, err error) {
	if cookieValue == "" {
		return m.newSession(), true, nil
	}

	sessionID, err := utils.ParseSessionJWT(cookieValue, m.Secret)
	if err != nil {
		m.Log.Debug("session.Manager.Load discarding invalid session cookie",
			utils.RequestIDField(ctx),
			zap.Error(err),
		)
		return m.newSession(), true, nil
	}

	holder = newHolder(sessionID, m.Store, m.Sealer, m.ttl())

	record, err := m.Store.Find(ctx, sessionID)
	if err != nil {
		return holder, false, err
	}
	if record == nil {
		return holder, false, nil
	}

	token, err := m.Sealer.Open(record.SealedToken)
	if err != nil {
		m.Log.Warn("session.Manager.Load dropping session with unreadable token",
			utils.RequestIDField(ctx),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return holder, false, m.Store.Delete(ctx, sessionID)
	}

	holder.authenticated = true
	holder.username = record.Username
	holder.token = token
	return holder, false, nil
}

func (m *Manager) newSession() *Holder {
	return newHolder(utils.GenerateSessionID(), m.Store, m.Sealer, m.ttl())
}

// Cookie has no Max-Age, so it ends with the browser session.
func (m *Manager) Cookie(holder contracts.SessionState) (*http.Cookie, error) {
	value, err := utils.GenerateSessionJWT(holder.ID(), m.Secret, m.ExpiryHours)
	if err != nil {
		return nil, err
	}

	return &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.SecureCookie,
		SameSite: http.SameSiteStrictMode,
	}, nil
}
