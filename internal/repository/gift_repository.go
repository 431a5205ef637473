package repository

import (
	"context"
	"errors"
	"fmt"

	"tirage/internal/domain/models"
	"tirage/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type GiftRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewGiftRepository(db *pgxpool.Pool) *GiftRepo {
	return &GiftRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *GiftRepo) SaveGift(ctx context.Context, number int64) (uuid.UUID, error) {
	const op = "repository.gift_repository.SaveGift"

	query, args, err := r.sb.Insert("gifts").
		Columns("number").
		Values(number).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrGiftExists)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// SaveGifts inserts every number in one statement and returns the numbers
// actually added. Numbers already present in the active pool are skipped.
func (r *GiftRepo) SaveGifts(ctx context.Context, numbers []int64) ([]int64, error) {
	const op = "repository.gift_repository.SaveGifts"

	if len(numbers) == 0 {
		return nil, nil
	}

	builder := r.sb.Insert("gifts").Columns("number")
	for _, number := range numbers {
		builder = builder.Values(number)
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (number) WHERE NOT is_archived DO NOTHING RETURNING number").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var added []int64
	for rows.Next() {
		var number int64
		if err := rows.Scan(&number); err != nil {
			return nil, fmt.Errorf("%s: failed to scan row: %w", op, err)
		}
		added = append(added, number)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return added, nil
}

// ListViews returns active gifts together with their association state.
func (r *GiftRepo) ListViews(ctx context.Context) ([]models.GiftView, error) {
	const op = "repository.gift_repository.ListViews"

	query, args, err := r.sb.Select(
		"g.number",
		"a.id IS NOT NULL AS associated",
		"g.created_at",
		"g.updated_at",
	).
		From("gifts g").
		LeftJoin("associations a ON a.gift_id = g.id AND NOT a.is_archived").
		Where(sq.Eq{"g.is_archived": false}).
		OrderBy("g.created_at", "g.number").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var views []models.GiftView
	for rows.Next() {
		var v models.GiftView
		if err := rows.Scan(&v.Gift, &v.Associated, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: failed to scan row: %w", op, err)
		}
		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return views, nil
}

// ListUnassociated returns active gifts without an active association.
func (r *GiftRepo) ListUnassociated(ctx context.Context) ([]models.Gift, error) {
	const op = "repository.gift_repository.ListUnassociated"

	query, args, err := r.sb.Select("g.id", "g.number", "g.is_archived", "g.created_at", "g.updated_at").
		From("gifts g").
		LeftJoin("associations a ON a.gift_id = g.id AND NOT a.is_archived").
		Where(sq.Eq{"g.is_archived": false}).
		Where("a.id IS NULL").
		OrderBy("g.created_at", "g.number").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var gifts []models.Gift
	for rows.Next() {
		var g models.Gift
		if err := rows.Scan(&g.ID, &g.Number, &g.IsArchived, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: failed to scan row: %w", op, err)
		}
		gifts = append(gifts, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return gifts, nil
}

// ArchiveByNumber retires the active gift with that number and returns its id
// so callers can retire dependent rows.
func (r *GiftRepo) ArchiveByNumber(ctx context.Context, number int64) (uuid.UUID, error) {
	const op = "repository.gift_repository.ArchiveByNumber"

	query, args, err := r.sb.Update("gifts").
		Set("is_archived", true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"number": number, "is_archived": false}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrGiftNotFound)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *GiftRepo) CountActive(ctx context.Context) (int64, error) {
	const op = "repository.gift_repository.CountActive"

	query, args, err := r.sb.Select("COUNT(*)").
		From("gifts").
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

func (r *GiftRepo) DeleteAll(ctx context.Context) (int64, error) {
	const op = "repository.gift_repository.DeleteAll"

	query, _, err := r.sb.Delete("gifts").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected(), nil
}
