package contracts

import (
	"clinic-portal/internal/app/models"
	"context"
)

type AuthClient interface {
	// Login answers false with a nil error when the credentials are refused.
	Login(ctx context.Context, session SessionState, credentials models.Credentials) (bool, error)
	Logout(ctx context.Context, session SessionState) error
}
