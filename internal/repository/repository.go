package repository

import (
	"context"
	"fmt"

	"tirage/internal/storage/postgresql"
)

type Repository struct {
	db           *postgresql.Storage
	Admins       AdminRepository
	Participants ParticipantRepository
	Gifts        GiftRepository
	Associations AssociationRepository
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	db, err := postgresql.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	pool := db.Pool()

	return &Repository{
		db:           db,
		Admins:       NewAdminRepository(pool),
		Participants: NewParticipantRepository(pool),
		Gifts:        NewGiftRepository(pool),
		Associations: NewAssociationRepository(pool),
	}, nil
}

func (r *Repository) HealthCheck(ctx context.Context) error {
	return r.db.HealthCheck(ctx)
}

func (r *Repository) Close() {
	r.db.Stop()
}
