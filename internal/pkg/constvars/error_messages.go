package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"datetime": "must be a date formatted as %s",
	"phone":    "must contain only digits, spaces, dashes, dots, parentheses or a leading +",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"len":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "Username and/or password are incorrect"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientTooManyLoginAttempts          = "too many login attempts, please wait a moment"
	ErrClientPatientNotFound               = "The patient with ID %s could not be found."
	ErrClientPatientServiceUnavailable     = "the patient service is not available right now"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseForm        = "cannot parse form body"
	ErrDevCannotMarshalJSON      = "cannot convert struct or other data types to JSON"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevValidationFailed       = "validation failed"
	ErrDevServerProcess          = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded = "deadline exceeded"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired session token"
	ErrDevAuthGenerateToken         = "failed to generate session token"
	ErrDevAuthCheckUnexpectedStatus = "auth check endpoint answered with unexpected status %d"
	ErrDevAuthPrincipalMismatch     = "auth check endpoint answered for principal %q instead of %q"
	ErrDevAuthSealToken             = "failed to seal basic auth token"
	ErrDevAuthOpenToken             = "failed to open sealed basic auth token"

	// Patient API messages
	ErrDevPatientAPIStatus   = "patient API answered %s with unexpected status %d"
	ErrDevPatientAPINotFound = "patient API has no %s with ID %s"
	ErrDevPatientAPIDecode   = "failed to decode %s response from patient API"

	// Redis messages
	ErrDevRedisSetData     = "failed to SET data into redis"
	ErrDevRedisGetData     = "failed to GET data from redis"
	ErrDevRedisDeleteData  = "failed to DELETE data from redis"
	ErrDevSessionStorePing = "session store did not answer the health check"

	// Rate limit
	ErrDevRequestLimitExceeded = "request limit exceeded"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
