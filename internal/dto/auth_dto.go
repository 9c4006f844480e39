package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// LoginRequest is bound from the form-encoded /auth/token body
// (OAuth2 password flow shape: username + password fields).
type LoginRequest struct {
	Username string `form:"username" validate:"required,min=1"`
	Password string `form:"password" validate:"required,min=1"`
}

type CreateUserRequest struct {
	Username string  `json:"username"  validate:"required,min=1,max=150"`
	Email    string  `json:"email"     validate:"required,email"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Password string  `json:"password"  validate:"required,min=8"`
	Role     string  `json:"role"      validate:"required,oneof=admin manager user"`
}

type UpdateUserRequest struct {
	Username string  `json:"username"  validate:"omitempty,min=1,max=150"`
	Email    string  `json:"email"     validate:"omitempty,email"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Password string  `json:"password"  validate:"omitempty,min=8"`
	Role     string  `json:"role"      validate:"omitempty,oneof=admin manager user"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UserResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	Role     string  `json:"role"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
