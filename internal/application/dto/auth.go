package dto

// RegisterRequest creates an admin account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest exchanges credentials for a token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the signed access token.
type AuthResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}
