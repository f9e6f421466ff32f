package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_HOLDER_KEY       ContextKey = "session_holder"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	SessionStoreDriverRedis  = "redis"
	SessionStoreDriverMemory = "memory"
)

const (
	SessionCookieName      = "portal_session"
	SessionRedisKeyPrefix  = "portal:session:"
	SessionJWTClaimID      = "session_id"
	SessionJWTIssuer       = "clinic-portal"
	SessionTokenKeyContext = "clinic-portal session token"
)

const (
	// DefaultSessionSecret is only acceptable outside production.
	DefaultSessionSecret   = "change-me-session-secret-of-32-bytes!"
	MinSessionSecretLength = 32
)
