package session

import (
	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/pkg/constvars"
	"context"
)

func WithHolder(ctx context.Context, state contracts.SessionState) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_HOLDER_KEY, state)
}

func FromContext(ctx context.Context) (contracts.SessionState, bool) {
	state, ok := ctx.Value(constvars.CONTEXT_SESSION_HOLDER_KEY).(contracts.SessionState)
	return state, ok && state != nil
}
