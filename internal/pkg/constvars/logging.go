package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingSessionIDKey  = "session_id"
	LoggingUsernameKey   = "username"
	LoggingPatientIDKey  = "patient_id"
	LoggingPatientsKey   = "patients_count"
	LoggingStatusCodeKey = "status_code"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingURLKey        = "url"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingViewKey       = "view"
	LoggingReturnURLKey  = "return_url"
	LoggingServiceKey    = "service"
	LoggingVersionKey    = "version"
)
