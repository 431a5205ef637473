package repository

import (
	"context"
	"time"

	"tirage/internal/domain/models"

	"github.com/google/uuid"
)

type AdminRepository interface {
	SaveAdmin(ctx context.Context, username string, passHash []byte) (uuid.UUID, error)
	AdminByUsername(ctx context.Context, username string) (models.Admin, error)
	AdminByID(ctx context.Context, id uuid.UUID) (models.Admin, error)
	UpdatePassword(ctx context.Context, username string, passHash []byte) error
	DeleteAdmin(ctx context.Context, username string) error
	ListAdmins(ctx context.Context) ([]models.Admin, error)
}

type ParticipantRepository interface {
	SaveParticipant(ctx context.Context, name string) (uuid.UUID, error)
	SaveParticipants(ctx context.Context, names []string) ([]string, error)
	ParticipantByName(ctx context.Context, name string) (models.Participant, error)
	ListActive(ctx context.Context) ([]models.Participant, error)
	ListUnassociated(ctx context.Context) ([]models.Participant, error)
	ArchiveByName(ctx context.Context, name string) (uuid.UUID, error)
	CountActive(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type GiftRepository interface {
	SaveGift(ctx context.Context, number int64) (uuid.UUID, error)
	SaveGifts(ctx context.Context, numbers []int64) ([]int64, error)
	ListViews(ctx context.Context) ([]models.GiftView, error)
	ListUnassociated(ctx context.Context) ([]models.Gift, error)
	ArchiveByNumber(ctx context.Context, number int64) (uuid.UUID, error)
	CountActive(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type AssociationRepository interface {
	SaveBatch(ctx context.Context, assocs []models.Association) error
	ListDetails(ctx context.Context) ([]models.AssociationDetail, error)
	ArchiveByParticipantName(ctx context.Context, name string) error
	ArchiveByParticipantID(ctx context.Context, participantID uuid.UUID) error
	ArchiveByGiftID(ctx context.Context, giftID uuid.UUID) error
	CountActive(ctx context.Context) (int64, error)
	CountByKind(ctx context.Context) (map[string]int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// RevocationStore remembers revoked token identifiers until the tokens
// themselves would have expired.
type RevocationStore interface {
	Insert(ctx context.Context, tokenID, kind, subjectID string, ttl time.Duration) error
	Contains(ctx context.Context, tokenID string) (bool, error)
}
