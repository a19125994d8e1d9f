package authres

import (
	"agentsync/server/internal/domain/user"
	"agentsync/server/internal/interfaces/httpserver/responses/profileres"
)

// OTPSentResponse acknowledges that a verification code was dispatched
type OTPSentResponse struct {
	Object string `json:"object"`
	Email  string `json:"email"`
	Sent   bool   `json:"sent"`
}

// OTPVerifiedResponse acknowledges a successful code confirmation
type OTPVerifiedResponse struct {
	Object   string `json:"object"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

// RegisterResponse carries the created account and its session token
type RegisterResponse struct {
	Object string                     `json:"object"`
	User   profileres.ProfileResponse `json:"user"`
	Token  string                     `json:"token"`
}

// NewRegisterResponse creates a response from the created user
func NewRegisterResponse(u *user.User, token string) *RegisterResponse {
	return &RegisterResponse{
		Object: "auth.registration",
		User:   *profileres.NewProfileResponse(u),
		Token:  token,
	}
}
