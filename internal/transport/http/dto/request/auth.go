package request

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries the refresh token when it does not travel in the
// Authorization header.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LogoutRequest names the tokens to revoke. Token falls back to the
// Authorization header when empty; RefreshToken is optional.
type LogoutRequest struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}
