package config

type (
	DriverConfig struct {
		Redis        Redis
		Logger       Logger
		SessionStore SessionStore
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
		AccessLogFileName   string
	}
	SessionStore struct {
		Driver                   string
		CleanupIntervalInMinutes int
	}
)
