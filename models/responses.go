package models

// LoginResponse is the body of a successful POST /auth/login: the signed
// bearer token plus the account record it was issued for. The admin client
// persists both together.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ErrorResponse is the uniform error body returned by the API. Clients that
// fail to decode it substitute a generic message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse acknowledges a write that returns no entity
// (e.g. DELETE /projects/{id}, POST /contact).
type StatusResponse struct {
	Status string `json:"status"`
}
