package utils

import (
	"context"

	"clinic-portal/internal/pkg/constvars"

	"go.uber.org/zap"
)

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// RequestIDField is the zap field every component log line carries.
func RequestIDField(ctx context.Context) zap.Field {
	return zap.String(constvars.LoggingRequestIDKey, RequestIDFromContext(ctx))
}
