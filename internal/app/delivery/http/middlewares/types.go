package middlewares

import (
	"clinic-portal/internal/app/config"
	"clinic-portal/internal/app/services/core/session"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionManager *session.Manager
	LoginLimiter   *LoginAttemptLimiter
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	sessionManager *session.Manager,
	loginLimiter *LoginAttemptLimiter,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionManager: sessionManager,
		LoginLimiter:   loginLimiter,
		InternalConfig: internalConfig,
	}
}
