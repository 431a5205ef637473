package repository

import (
	"context"
	"errors"
	"fmt"

	"tirage/internal/domain/models"
	"tirage/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	pgx "github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const uniqueViolationCode = "23505"

type AdminRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *AdminRepo) SaveAdmin(ctx context.Context, username string, passHash []byte) (uuid.UUID, error) {
	const op = "repository.admin_repository.SaveAdmin"

	query, args, err := r.sb.Insert("admins").
		Columns("username", "pass_hash").
		Values(username, passHash).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrAdminExists)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *AdminRepo) AdminByUsername(ctx context.Context, username string) (models.Admin, error) {
	const op = "repository.admin_repository.AdminByUsername"

	query, args, err := r.sb.Select("id", "username", "pass_hash", "created_at").
		From("admins").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return models.Admin{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var admin models.Admin
	err = r.db.QueryRow(ctx, query, args...).
		Scan(&admin.ID, &admin.Username, &admin.PassHash, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Admin{}, fmt.Errorf("%s: %w", op, storage.ErrAdminNotFound)
		}
		return models.Admin{}, fmt.Errorf("%s: %w", op, err)
	}

	return admin, nil
}

func (r *AdminRepo) AdminByID(ctx context.Context, id uuid.UUID) (models.Admin, error) {
	const op = "repository.admin_repository.AdminByID"

	query, args, err := r.sb.Select("id", "username", "pass_hash", "created_at").
		From("admins").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Admin{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var admin models.Admin
	err = r.db.QueryRow(ctx, query, args...).
		Scan(&admin.ID, &admin.Username, &admin.PassHash, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Admin{}, fmt.Errorf("%s: %w", op, storage.ErrAdminNotFound)
		}
		return models.Admin{}, fmt.Errorf("%s: %w", op, err)
	}

	return admin, nil
}

func (r *AdminRepo) UpdatePassword(ctx context.Context, username string, passHash []byte) error {
	const op = "repository.admin_repository.UpdatePassword"

	query, args, err := r.sb.Update("admins").
		Set("pass_hash", passHash).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrAdminNotFound)
	}

	return nil
}

func (r *AdminRepo) DeleteAdmin(ctx context.Context, username string) error {
	const op = "repository.admin_repository.DeleteAdmin"

	query, args, err := r.sb.Delete("admins").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrAdminNotFound)
	}

	return nil
}

func (r *AdminRepo) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	const op = "repository.admin_repository.ListAdmins"

	query, args, err := r.sb.Select("id", "username", "pass_hash", "created_at").
		From("admins").
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var admins []models.Admin
	for rows.Next() {
		var admin models.Admin
		if err := rows.Scan(&admin.ID, &admin.Username, &admin.PassHash, &admin.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: failed to scan row: %w", op, err)
		}
		admins = append(admins, admin)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows error: %w", op, err)
	}

	return admins, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
