package models

// MessageResponse is the uniform envelope for errors and simple
// confirmations. The original service mixed plain-text and JSON bodies;
// every response here is JSON.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthenticatedResponse reports whether the caller's session is
// authenticated.
type AuthenticatedResponse struct {
	Authenticated bool `json:"authenticated"`
}

// RoleResponse carries the caller's resolved role. Anonymous sessions
// resolve to "public".
type RoleResponse struct {
	Role string `json:"role"`
}

// CSRFTokenResponse carries the per-session CSRF token clients must echo
// back on mutating requests.
type CSRFTokenResponse struct {
	CSRFToken string `json:"csrf_token"`
}
