package constvars

const (
	SessionStatusSuccessMessage = "session status retrieved"
	HealthySuccessMessage       = "service is healthy"
)
