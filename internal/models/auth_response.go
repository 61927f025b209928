package models

// RegisterResponse represents the response after user registration
type RegisterResponse struct {
	Message string `json:"message"`
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}
