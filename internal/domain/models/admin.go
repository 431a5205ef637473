package models

import (
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	PassHash  []byte    `db:"pass_hash" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
