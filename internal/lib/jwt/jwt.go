package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenKind string

const (
	KindAccess  TokenKind = "access"
	KindRefresh TokenKind = "refresh"
)

// Claims is the signed credential payload. Username travels only in access
// tokens; refresh tokens carry the subject alone. The jti (RegisteredClaims.ID)
// is a fresh UUIDv4 per issued token and keys the revocation store.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
	Kind     string `json:"kind"`
}

// Manager issues and parses HS256 credentials with a shared secret.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (m *Manager) NewAccessToken(adminID uuid.UUID, username string) (string, error) {
	return m.sign(adminID, username, KindAccess, m.accessTTL)
}

func (m *Manager) NewRefreshToken(adminID uuid.UUID) (string, error) {
	return m.sign(adminID, "", KindRefresh, m.refreshTTL)
}

func (m *Manager) sign(adminID uuid.UUID, username string, kind TokenKind, ttl time.Duration) (string, error) {
	const op = "jwt.Manager.sign"

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username: username,
		Kind:     string(kind),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// Parse verifies the signature and the time claims. Expired tokens come back
// as an error wrapping jwt.ErrTokenExpired so callers can tell expiry apart
// from a broken token.
func (m *Manager) Parse(raw string) (*Claims, error) {
	const op = "jwt.Manager.Parse"

	claims := &Claims{}
	if _, err := jwt.ParseWithClaims(raw, claims, m.keyFunc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return claims, nil
}

// ParseExpired verifies the signature but skips claim validation, so a token
// past its expiry still decodes. Revocation needs this: logging out with an
// expired token must not fail.
func (m *Manager) ParseExpired(raw string) (*Claims, error) {
	const op = "jwt.Manager.ParseExpired"

	claims := &Claims{}
	if _, err := jwt.ParseWithClaims(raw, claims, m.keyFunc, jwt.WithoutClaimsValidation()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return claims, nil
}

func (m *Manager) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
	}
	return m.secret, nil
}
