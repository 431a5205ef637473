package suite

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"tirage/internal/domain/models"
	jwtlib "tirage/internal/lib/jwt"
	"tirage/internal/repository"
	"tirage/internal/services/auth"
	tokens "tirage/internal/services/token_service"
	"tirage/internal/storage"

	"github.com/google/uuid"
)

const (
	Secret     = "test-secret"
	AccessTTL  = time.Hour
	RefreshTTL = 7 * 24 * time.Hour
)

// Suite wires the full auth stack over an in-memory admin store and the
// in-memory revocation store, so functional tests run without Postgres.
type Suite struct {
	*testing.T
	Auth   *auth.Auth
	Tokens *tokens.TokenService
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()
	t.Parallel()

	ctx, cancelCtx := context.WithTimeout(context.Background(), time.Hour)

	t.Cleanup(func() {
		t.Helper()
		cancelCtx()
	})

	manager := jwtlib.NewManager(Secret, AccessTTL, RefreshTTL)
	tokenService := tokens.NewTokenService(slog.Default(), manager, repository.NewMemoryRevocationRepo())

	store := newAdminStore()

	return ctx, &Suite{
		T:      t,
		Auth:   auth.New(slog.Default(), store, store, tokenService),
		Tokens: tokenService,
	}
}

// adminStore keeps admins in maps, mirroring just enough of the real
// repository for the auth flows.
type adminStore struct {
	mu     sync.Mutex
	byID   map[uuid.UUID]models.Admin
	byName map[string]models.Admin
}

func newAdminStore() *adminStore {
	return &adminStore{
		byID:   make(map[uuid.UUID]models.Admin),
		byName: make(map[string]models.Admin),
	}
}

func (s *adminStore) SaveAdmin(_ context.Context, username string, passHash []byte) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[username]; ok {
		return uuid.Nil, storage.ErrAdminExists
	}

	admin := models.Admin{
		ID:        uuid.New(),
		Username:  username,
		PassHash:  passHash,
		CreatedAt: time.Now(),
	}
	s.byID[admin.ID] = admin
	s.byName[username] = admin

	return admin.ID, nil
}

func (s *adminStore) AdminByUsername(_ context.Context, username string) (models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin, ok := s.byName[username]
	if !ok {
		return models.Admin{}, storage.ErrAdminNotFound
	}

	return admin, nil
}

func (s *adminStore) AdminByID(_ context.Context, id uuid.UUID) (models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin, ok := s.byID[id]
	if !ok {
		return models.Admin{}, storage.ErrAdminNotFound
	}

	return admin, nil
}
