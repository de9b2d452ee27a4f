package dto

// SignUpRequest represents the API request for creating an account
type SignUpRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"displayName" binding:"required"`
}

// SignInRequest represents the API request for authenticating
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the API response after signup or signin
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents a user account in API responses
type UserResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	Role         string `json:"role"`
	TotalDonated string `json:"totalDonated"`
	CreatedAt    string `json:"createdAt"`
}

// UpdateProfileRequest represents the API request for editing a profile
type UpdateProfileRequest struct {
	Email       string `json:"email" binding:"omitempty,email"`
	DisplayName string `json:"displayName"`
}
