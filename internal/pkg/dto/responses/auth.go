package responses

// Principal is the body answered by the auth check endpoint on success.
type Principal struct {
	Username string `json:"username"`
}

type SessionStatus struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}
