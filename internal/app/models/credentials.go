package models

// Credentials live for a single login attempt and are never stored.
type Credentials struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}
