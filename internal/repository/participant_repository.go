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

type ParticipantRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewParticipantRepository(db *pgxpool.Pool) *ParticipantRepo {
	return &ParticipantRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ParticipantRepo) SaveParticipant(ctx context.Context, name string) (uuid.UUID, error) {
	const op = "repository.participant_repository.SaveParticipant"

	query, args, err := r.sb.Insert("participants").
		Columns("name").
		Values(name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrParticipantExists)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// SaveParticipants inserts every name in one statement and returns the names
// actually added. Names already present in the active pool are skipped.
func (r *ParticipantRepo) SaveParticipants(ctx context.Context, names []string) ([]string, error) {
	const op = "repository.participant_repository.SaveParticipants"

	if len(names) == 0 {
		return nil, nil
	}

	builder := r.sb.Insert("participants").Columns("name")
	for _, name := range names {
		builder = builder.Values(name)
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (name) WHERE NOT is_archived DO NOTHING RETURNING name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var added []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%s: failed to scan row: %w", op, err)
		}
		added = append(added, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return added, nil
}

// ParticipantByName fetches the active participant with that name.
func (r *ParticipantRepo) ParticipantByName(ctx context.Context, name string) (models.Participant, error) {
	const op = "repository.participant_repository.ParticipantByName"

	query, args, err := r.sb.Select("id", "name", "is_archived", "created_at", "updated_at").
		From("participants").
		Where(sq.Eq{"name": name, "is_archived": false}).
		ToSql()
	if err != nil {
		return models.Participant{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var p models.Participant
	err = r.db.QueryRow(ctx, query, args...).Scan(&p.ID, &p.Name, &p.IsArchived, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Participant{}, fmt.Errorf("%s: %w", op, storage.ErrParticipantNotFound)
		}
		return models.Participant{}, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (r *ParticipantRepo) ListActive(ctx context.Context) ([]models.Participant, error) {
	const op = "repository.participant_repository.ListActive"

	query, args, err := r.sb.Select("id", "name", "is_archived", "created_at", "updated_at").
		From("participants").
		Where(sq.Eq{"is_archived": false}).
		OrderBy("created_at", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	return r.queryParticipants(ctx, op, query, args)
}

// ListUnassociated returns active participants without an active association.
func (r *ParticipantRepo) ListUnassociated(ctx context.Context) ([]models.Participant, error) {
	const op = "repository.participant_repository.ListUnassociated"

	query, args, err := r.sb.Select("p.id", "p.name", "p.is_archived", "p.created_at", "p.updated_at").
		From("participants p").
		LeftJoin("associations a ON a.participant_id = p.id AND NOT a.is_archived").
		Where(sq.Eq{"p.is_archived": false}).
		Where("a.id IS NULL").
		OrderBy("p.created_at", "p.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	return r.queryParticipants(ctx, op, query, args)
}

// ArchiveByName retires the active participant with that name and returns its
// id so callers can retire dependent rows.
func (r *ParticipantRepo) ArchiveByName(ctx context.Context, name string) (uuid.UUID, error) {
	const op = "repository.participant_repository.ArchiveByName"

	query, args, err := r.sb.Update("participants").
		Set("is_archived", true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"name": name, "is_archived": false}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrParticipantNotFound)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *ParticipantRepo) CountActive(ctx context.Context) (int64, error) {
	const op = "repository.participant_repository.CountActive"

	query, args, err := r.sb.Select("COUNT(*)").
		From("participants").
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

func (r *ParticipantRepo) DeleteAll(ctx context.Context) (int64, error) {
	const op = "repository.participant_repository.DeleteAll"

	query, _, err := r.sb.Delete("participants").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected(), nil
}

func (r *ParticipantRepo) queryParticipants(ctx context.Context, op, query string, args []interface{}) ([]models.Participant, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.IsArchived, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: failed to scan row: %w", op, err)
		}
		participants = append(participants, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return participants, nil
}
