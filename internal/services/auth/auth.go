package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tirage/internal/domain/models"
	jwtlib "tirage/internal/lib/jwt"
	"tirage/internal/lib/logger/sl"
	"tirage/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminExists        = errors.New("admin already exists")
	ErrAdminNotFound      = errors.New("admin not found")
)

type Auth struct {
	log         *slog.Logger
	admSaver    AdminSaver
	admProvider AdminProvider
	tokens      TokenIssuer
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.3 --all
type AdminSaver interface {
	SaveAdmin(ctx context.Context, username string, passHash []byte) (uuid.UUID, error)
}

type AdminProvider interface {
	AdminByUsername(ctx context.Context, username string) (models.Admin, error)
	AdminByID(ctx context.Context, id uuid.UUID) (models.Admin, error)
}

type TokenIssuer interface {
	IssuePair(adminID uuid.UUID, username string) (*models.TokenPair, error)
	IssueAccessToken(adminID uuid.UUID, username string) (string, error)
	Verify(ctx context.Context, raw string, kind jwtlib.TokenKind) (*jwtlib.Claims, error)
	Revoke(ctx context.Context, raw string) error
}

func New(log *slog.Logger, adminSaver AdminSaver, adminProvider AdminProvider, tokens TokenIssuer) *Auth {
	return &Auth{
		log:         log,
		admSaver:    adminSaver,
		admProvider: adminProvider,
		tokens:      tokens,
	}
}

func (a *Auth) Register(ctx context.Context, username, password string) (uuid.UUID, error) {
	const op = "auth.Register"

	log := a.log.With(
		slog.String("op", op),
		slog.String("username", username),
	)

	log.Info("registering admin")

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to generate password hash", sl.Err(err))

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := a.admSaver.SaveAdmin(ctx, username, passHash)
	if err != nil {
		if errors.Is(err, storage.ErrAdminExists) {
			log.Warn("admin already exists", sl.Err(err))

			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrAdminExists)
		}

		log.Error("failed to save admin", sl.Err(err))

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("admin registered")

	return id, nil
}

func (a *Auth) Login(ctx context.Context, username, password string) (*models.TokenPair, error) {
	const op = "auth.Login"

	log := a.log.With(
		slog.String("op", op),
		slog.String("username", username),
	)

	log.Info("attempting to login admin")

	admin, err := a.admProvider.AdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrAdminNotFound) {
			log.Warn("admin not found", sl.Err(err))

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		log.Error("failed to get admin", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(admin.PassHash, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	pair, err := a.tokens.IssuePair(admin.ID, admin.Username)
	if err != nil {
		log.Error("failed to generate tokens", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("admin logged in successfully")

	return pair, nil
}

// Admin returns the stored row for the username.
func (a *Auth) Admin(ctx context.Context, username string) (models.Admin, error) {
	const op = "auth.Admin"

	admin, err := a.admProvider.AdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrAdminNotFound) {
			return models.Admin{}, fmt.Errorf("%s: %w", op, ErrAdminNotFound)
		}

		return models.Admin{}, fmt.Errorf("%s: %w", op, err)
	}

	return admin, nil
}

// Refresh exchanges a live refresh token for a fresh access token. The
// refresh token itself stays valid until it expires or is revoked.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (string, error) {
	const op = "auth.Refresh"

	log := a.log.With(slog.String("op", op))

	claims, err := a.tokens.Verify(ctx, refreshToken, jwtlib.KindRefresh)
	if err != nil {
		log.Warn("refresh token rejected", sl.Err(err))

		return "", fmt.Errorf("%s: %w", op, err)
	}

	adminID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	admin, err := a.admProvider.AdminByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, storage.ErrAdminNotFound) {
			log.Warn("admin behind refresh token is gone", slog.String("admin_id", claims.Subject))

			return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	access, err := a.tokens.IssueAccessToken(admin.ID, admin.Username)
	if err != nil {
		log.Error("failed to issue access token", sl.Err(err))

		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("access token refreshed", slog.String("username", admin.Username))

	return access, nil
}

// Logout revokes the presented tokens. The refresh token argument may be
// empty when the client only sends its access token.
func (a *Auth) Logout(ctx context.Context, accessToken, refreshToken string) error {
	const op = "auth.Logout"

	log := a.log.With(slog.String("op", op))

	if err := a.tokens.Revoke(ctx, accessToken); err != nil {
		log.Warn("failed to revoke access token", sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	if refreshToken != "" {
		if err := a.tokens.Revoke(ctx, refreshToken); err != nil {
			log.Warn("failed to revoke refresh token", sl.Err(err))

			return fmt.Errorf("%s: %w", op, err)
		}
	}

	log.Info("admin logged out")

	return nil
}
