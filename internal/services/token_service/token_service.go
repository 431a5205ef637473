package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tirage/internal/domain/models"
	jwtlib "tirage/internal/lib/jwt"
	"tirage/internal/lib/logger/sl"
	"tirage/internal/metrics"
	"tirage/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrWrongTokenKind = errors.New("wrong token kind")
	ErrTokenRevoked   = errors.New("token revoked")
	ErrMissingToken   = errors.New("missing token")
)

type TokenService struct {
	log    *slog.Logger
	tokens *jwtlib.Manager
	store  repository.RevocationStore
}

func NewTokenService(log *slog.Logger, tokens *jwtlib.Manager, store repository.RevocationStore) *TokenService {
	return &TokenService{
		log:    log,
		tokens: tokens,
		store:  store,
	}
}

func (s *TokenService) IssueAccessToken(adminID uuid.UUID, username string) (string, error) {
	const op = "token_service.IssueAccessToken"

	token, err := s.tokens.NewAccessToken(adminID, username)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return token, nil
}

func (s *TokenService) IssueRefreshToken(adminID uuid.UUID) (string, error) {
	const op = "token_service.IssueRefreshToken"

	token, err := s.tokens.NewRefreshToken(adminID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return token, nil
}

func (s *TokenService) IssuePair(adminID uuid.UUID, username string) (*models.TokenPair, error) {
	const op = "token_service.IssuePair"

	access, err := s.tokens.NewAccessToken(adminID, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refresh, err := s.tokens.NewRefreshToken(adminID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AdminID:      adminID,
		Username:     username,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// Verify checks the token and reports the first failure in a fixed order:
// malformed, then expired, then wrong kind, then revoked.
func (s *TokenService) Verify(ctx context.Context, raw string, kind jwtlib.TokenKind) (*jwtlib.Claims, error) {
	const op = "token_service.Verify"

	claims, err := s.tokens.Parse(raw)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}
		return nil, fmt.Errorf("%s: %w", op, ErrTokenMalformed)
	}

	if claims.Kind != string(kind) {
		return nil, fmt.Errorf("%s: %w", op, ErrWrongTokenKind)
	}

	revoked, err := s.store.Contains(ctx, claims.ID)
	if err != nil {
		s.log.Error("revocation store lookup failed", slog.String("op", op), sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if revoked {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
	}

	return claims, nil
}

// Revoke invalidates the token for the rest of its lifetime. Expired tokens
// are fine to revoke and leave no trace, revoking twice is a no-op.
func (s *TokenService) Revoke(ctx context.Context, raw string) error {
	const op = "token_service.Revoke"

	log := s.log.With(slog.String("op", op))

	claims, err := s.tokens.ParseExpired(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", op, ErrTokenMalformed)
	}

	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
		if ttl <= 0 {
			log.Info("token already expired, nothing to revoke", slog.String("jti", claims.ID))

			return nil
		}
	}

	if err := s.store.Insert(ctx, claims.ID, claims.Kind, claims.Subject, ttl); err != nil {
		log.Error("failed to store revocation", sl.Err(err))

		return fmt.Errorf("%s: %w", op, err)
	}

	metrics.TokensRevokedTotal.Inc()

	log.Info("token revoked",
		slog.String("jti", claims.ID),
		slog.String("kind", claims.Kind),
	)

	return nil
}
