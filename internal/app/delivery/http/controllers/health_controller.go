package controllers

import (
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/dto/responses"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HealthController struct {
	Log                *zap.Logger
	Version            string
	SessionStoreDriver string
	// Ping checks the session store; nil means there is nothing to check.
	Ping func(ctx context.Context) error
}

func NewHealthController(logger *zap.Logger, version, sessionStoreDriver string, ping func(ctx context.Context) error) *HealthController {
	return &HealthController{
		Log:                logger,
		Version:            version,
		SessionStoreDriver: sessionStoreDriver,
		Ping:               ping,
	}
}

func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if ctrl.Ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		err := ctrl.Ping(ctx)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionStoreUnavailable(err))
			return
		}
	}

	health := responses.Health{
		Status:       "ok",
		Version:      ctrl.Version,
		SessionStore: ctrl.SessionStoreDriver,
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthySuccessMessage, health)
}
