package constvars

// Diagnostics logged by the patient API client, one per operation.
const (
	DiagnosticListPatients   = "Error fetching patients"
	DiagnosticGetPatientByID = "Error fetching patient by ID"
	DiagnosticUpdatePatient  = "Error updating patient"
	DiagnosticCreatePatient  = "Error creating patient"
)

// Diagnostics logged by the portal views.
const (
	DiagnosticPatientListFetch    = "Error fetching patient data"
	DiagnosticPatientUpdateFailed = "Patient update failed."
	DiagnosticPatientCreateFailed = "Patient creation failed."
	DiagnosticPatientIDMissing    = "Patient ID is missing in route parameters"
	DiagnosticPatientFetchFailed  = "Patient fetch failed."
	DiagnosticLoginFailed         = "Login failed."
	DiagnosticLogoutFailed        = "Logout failed."
)
