package config

import (
	"clinic-portal/internal/pkg/constvars"
	"errors"
)

var ErrUnsafeSessionSecret = errors.New("SESSION_SECRET and SESSION_SEALING_SECRET must be set to at least 32 bytes in production")

type InternalConfig struct {
	App        App        `mapstructure:"app"`
	AuthAPI    AuthAPI    `mapstructure:"auth_api"`
	PatientAPI PatientAPI `mapstructure:"patient_api"`
	Session    Session    `mapstructure:"session"`
}

type App struct {
	Env                        string   `mapstructure:"env"`
	Port                       string   `mapstructure:"port"`
	Version                    string   `mapstructure:"version"`
	Address                    string   `mapstructure:"address"`
	Timezone                   string   `mapstructure:"timezone"`
	AllowedOrigins             []string `mapstructure:"allowed_origins"`
	SecureCookie               bool     `mapstructure:"secure_cookie"`
	MaxRequests                int      `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int      `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int      `mapstructure:"request_body_limit_in_megabyte"`
}

type AuthAPI struct {
	BaseUrl   string `mapstructure:"base_url"`
	CheckPath string `mapstructure:"check_path"`
}

type PatientAPI struct {
	BaseUrl string `mapstructure:"base_url"`
}

// Session holds the cookie signing secret and the secret the stored basic
// tokens are sealed with. Both must be at least 32 bytes long.
type Session struct {
	Secret                      string `mapstructure:"secret"`
	SealingSecret               string `mapstructure:"sealing_secret"`
	ExpiredTimeInHours          int    `mapstructure:"expired_time_in_hours"`
	MaxLoginAttempts            int    `mapstructure:"max_login_attempts"`
	LoginAttemptWindowInMinutes int    `mapstructure:"login_attempt_window_in_minutes"`
	LoginBlockTimeInMinutes     int    `mapstructure:"login_block_time_in_minutes"`
}

// Validate refuses the published default secrets in production.
func (c *InternalConfig) Validate() error {
	if c.App.Env != constvars.AppEnvProduction {
		return nil
	}
	for _, secret := range []string{c.Session.Secret, c.Session.SealingSecret} {
		if secret == constvars.DefaultSessionSecret || len(secret) < constvars.MinSessionSecretLength {
			return ErrUnsafeSessionSecret
		}
	}
	return nil
}
