package models

import "time"

// Session is the stored record behind an authenticated browser session.
// Its presence in the store is what makes the session authenticated.
type Session struct {
	SessionID       string    `json:"session_id"`
	Username        string    `json:"username"`
	SealedToken     string    `json:"sealed_token"`
	AuthenticatedAt time.Time `json:"authenticated_at"`
}
