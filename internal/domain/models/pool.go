package models

import (
	"time"

	"github.com/google/uuid"
)

// Participant is one side of the pairing pool. The identifier is an opaque
// string ("H1", "Alice"); uniqueness is enforced among non-archived rows only.
type Participant struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Name       string    `db:"name" json:"participant"`
	IsArchived bool      `db:"is_archived" json:"is_archived"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

type Gift struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Number     int64     `db:"number" json:"gift"`
	IsArchived bool      `db:"is_archived" json:"is_archived"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// GiftView is the listing shape: the gift number plus whether it is taken
// by an active association.
type GiftView struct {
	Gift       int64     `db:"number" json:"gift"`
	Associated bool      `db:"associated" json:"associated"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// BulkResult splits a bulk insert into accepted and already-present items.
type BulkResult struct {
	Added   []string `json:"added"`
	Ignored []string `json:"ignored"`
}

type GiftBulkResult struct {
	Added   []int64 `json:"added"`
	Ignored []int64 `json:"ignored"`
}
