package profilereq

// UpdateProfileRequest represents the request to update account details
type UpdateProfileRequest struct {
	Name  string  `json:"name" binding:"required"`
	Email string  `json:"email" binding:"required,email"`
	Image *string `json:"image,omitempty"`
}
