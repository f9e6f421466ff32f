package config

import (
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
			AccessLogFileName:   utils.GetEnvString("LOGGER_ACCESS_LOG_FILENAME", "access.log"),
		},
		SessionStore: SessionStore{
			Driver:                   utils.GetEnvString("SESSION_STORE_DRIVER", constvars.SessionStoreDriverRedis),
			CleanupIntervalInMinutes: utils.GetEnvInt("SESSION_STORE_CLEANUP_INTERVAL_IN_MINUTES", 5),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	sessionSecret := utils.GetEnvString("SESSION_SECRET", constvars.DefaultSessionSecret)

	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			AllowedOrigins:             utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"http://localhost:8080"}),
			SecureCookie:               utils.GetEnvBool("APP_SECURE_COOKIE", false),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
		},
		AuthAPI: AuthAPI{
			BaseUrl:   utils.GetEnvString("AUTH_BASE_URL", "http://localhost:8081"),
			CheckPath: utils.GetEnvString("AUTH_CHECK_PATH", constvars.DefaultAuthCheck),
		},
		PatientAPI: PatientAPI{
			BaseUrl: utils.GetEnvString("PATIENT_API_BASE_URL", "http://localhost:8081"),
		},
		Session: Session{
			Secret:                      sessionSecret,
			SealingSecret:               utils.GetEnvString("SESSION_SEALING_SECRET", sessionSecret),
			ExpiredTimeInHours:          utils.GetEnvInt("SESSION_EXPIRED_TIME_IN_HOURS", 8),
			MaxLoginAttempts:            utils.GetEnvInt("SESSION_MAX_LOGIN_ATTEMPTS", 5),
			LoginAttemptWindowInMinutes: utils.GetEnvInt("SESSION_LOGIN_ATTEMPT_WINDOW_IN_MINUTES", 1),
			LoginBlockTimeInMinutes:     utils.GetEnvInt("SESSION_LOGIN_BLOCK_TIME_IN_MINUTES", 5),
		},
	}
}
