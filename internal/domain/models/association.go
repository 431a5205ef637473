package models

import (
	"time"

	"tirage/internal/domain/pairing"

	"github.com/google/uuid"
)

// PairKindGift tags participant-gift pairings, the only kind the store
// accepts today. Person-person draw kinds (H-F, F-F, H-H) never persist.
const PairKindGift = "P-G"

type Association struct {
	ID            uuid.UUID `db:"id" json:"id"`
	ParticipantID uuid.UUID `db:"participant_id" json:"participant_id"`
	GiftID        uuid.UUID `db:"gift_id" json:"gift_id"`
	Kind          string    `db:"kind" json:"kind"`
	IsArchived    bool      `db:"is_archived" json:"is_archived"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// AssociationDetail is the denormalized row handed to listings and exports.
type AssociationDetail struct {
	Participant string    `db:"participant" json:"participant"`
	Gift        int64     `db:"gift" json:"gift"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// AssociateStats summarizes one draw over the stored pools. All counts
// refer to the pools as they stood when the draw ran.
type AssociateStats struct {
	TotalParticipants int `json:"total_participants"`
	TotalGifts        int `json:"total_gifts"`
	NewAssociations   int `json:"new_associations"`
	RemainingGifts    int `json:"remaining_gifts"`
}

type AssociateResult struct {
	Associations []pairing.Assignment `json:"associations"`
	Stats        AssociateStats       `json:"statistiques"`
	Timestamp    time.Time            `json:"timestamp"`
}

type PoolStatus struct {
	Total int      `json:"total"`
	List  []string `json:"list"`
}

type GiftPoolStatus struct {
	Total int     `json:"total"`
	List  []int64 `json:"list"`
}

type AssociationStatus struct {
	Total   int                 `json:"total"`
	ByKind  map[string]int64    `json:"by_kind"`
	Details []AssociationDetail `json:"details"`
}

type SystemStatus struct {
	Participants PoolStatus        `json:"participants"`
	Gifts        GiftPoolStatus    `json:"gifts"`
	Associations AssociationStatus `json:"associations"`
}

// ResetReport carries the counts wiped by a reset.
type ResetReport struct {
	Participants int `json:"participants"`
	Gifts        int `json:"gifts"`
	Associations int `json:"associations"`
}
