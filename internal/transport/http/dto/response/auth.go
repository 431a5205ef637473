package response

import "tirage/internal/domain/models"

type AdminCreated struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Admin   models.Admin `json:"admin"`
}

// LoginResult carries both tokens. Token is the access token under its
// historical wire name.
type LoginResult struct {
	Success      bool         `json:"success"`
	Message      string       `json:"message"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	Admin        models.Admin `json:"admin"`
}

type TokenRefreshed struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}
