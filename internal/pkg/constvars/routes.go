package constvars

const (
	RouteHome        = "/"
	RouteLogin       = "/login"
	RouteLogout      = "/logout"
	RouteDashboard   = "/dashboard"
	RoutePatient     = "/patient"
	RoutePatientByID = "/patient/{id}"
	RouteAPIPrefix   = "/api/"
	RouteAPISession  = "/api/session"
	RouteHealth      = "/healthz"

	QueryParamReturnURL = "returnUrl"
	URLParamPatientID   = "id"
)

const (
	ResourcePatients = "/api/patients"
	ResourcePatient  = "patient"
	DefaultAuthCheck = "/auth/check"
)
