package repository

import (
	"context"
	"fmt"

	"tirage/internal/domain/models"
	"tirage/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

type AssociationRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewAssociationRepository(db *pgxpool.Pool) *AssociationRepo {
	return &AssociationRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveBatch inserts every pair in one statement, so a draw is either stored
// completely or not at all.
func (r *AssociationRepo) SaveBatch(ctx context.Context, assocs []models.Association) error {
	const op = "repository.association_repository.SaveBatch"

	if len(assocs) == 0 {
		return nil
	}

	builder := r.sb.Insert("associations").Columns("participant_id", "gift_id", "kind")
	for _, a := range assocs {
		builder = builder.Values(a.ParticipantID, a.GiftID, a.Kind)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListDetails returns active associations joined with their participant name
// and gift number, oldest first.
func (r *AssociationRepo) ListDetails(ctx context.Context) ([]models.AssociationDetail, error) {
	const op = "repository.association_repository.ListDetails"

	query, args, err := r.sb.Select("p.name", "g.number", "a.created_at").
		From("associations a").
		Join("participants p ON p.id = a.participant_id").
		Join("gifts g ON g.id = a.gift_id").
		Where(sq.Eq{"a.is_archived": false}).
		OrderBy("a.created_at", "p.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var details []models.AssociationDetail
	for rows.Next() {
		var d models.AssociationDetail
		if err := rows.Scan(&d.Participant, &d.Gift, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: failed to scan row: %w", op, err)
		}
		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return details, nil
}

func (r *AssociationRepo) ArchiveByParticipantName(ctx context.Context, name string) error {
	const op = "repository.association_repository.ArchiveByParticipantName"

	query, args, err := r.sb.Update("associations").
		Set("is_archived", true).
		Set("updated_at", sq.Expr("now()")).
		Where("NOT is_archived").
		Where(sq.Expr("participant_id = (SELECT id FROM participants WHERE name = ? AND NOT is_archived)", name)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrAssociationNotFound)
	}

	return nil
}

// ArchiveByParticipantID retires associations of a removed participant. No
// active association is not an error here.
func (r *AssociationRepo) ArchiveByParticipantID(ctx context.Context, participantID uuid.UUID) error {
	const op = "repository.association_repository.ArchiveByParticipantID"

	return r.archiveBy(ctx, op, sq.Eq{"participant_id": participantID})
}

func (r *AssociationRepo) ArchiveByGiftID(ctx context.Context, giftID uuid.UUID) error {
	const op = "repository.association_repository.ArchiveByGiftID"

	return r.archiveBy(ctx, op, sq.Eq{"gift_id": giftID})
}

func (r *AssociationRepo) archiveBy(ctx context.Context, op string, cond sq.Eq) error {
	query, args, err := r.sb.Update("associations").
		Set("is_archived", true).
		Set("updated_at", sq.Expr("now()")).
		Where("NOT is_archived").
		Where(cond).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *AssociationRepo) CountActive(ctx context.Context) (int64, error) {
	const op = "repository.association_repository.CountActive"

	query, args, err := r.sb.Select("COUNT(*)").
		From("associations").
		Where(sq.Eq{"is_archived": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func (r *AssociationRepo) CountByKind(ctx context.Context) (map[string]int64, error) {
	const op = "repository.association_repository.CountByKind"

	query, args, err := r.sb.Select("kind", "COUNT(*)").
		From("associations").
		Where(sq.Eq{"is_archived": false}).
		GroupBy("kind").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			kind  string
			count int64
		)
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("%s: failed to scan row: %w", op, err)
		}
		counts[kind] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return counts, nil
}

func (r *AssociationRepo) DeleteAll(ctx context.Context) (int64, error) {
	const op = "repository.association_repository.DeleteAll"

	query, _, err := r.sb.Delete("associations").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected(), nil
}
