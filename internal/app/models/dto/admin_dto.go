package dto

// LoginRequest represents admin login credentials
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// SessionResponse reports whether the presented session cookie is valid
type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
}
