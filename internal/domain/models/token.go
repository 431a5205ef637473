package models

import "github.com/google/uuid"

type TokenPair struct {
	AdminID      uuid.UUID `json:"admin_id"`
	Username     string    `json:"username"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}
