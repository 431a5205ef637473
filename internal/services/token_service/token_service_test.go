package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	jwtlib "tirage/internal/lib/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRevocationStore struct {
	mock.Mock
}

func (m *MockRevocationStore) Insert(ctx context.Context, tokenID, kind, subjectID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, kind, subjectID, ttl)
	return args.Error(0)
}

func (m *MockRevocationStore) Contains(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

var (
	testAdminID = uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	testCtx     = context.Background()
)

func newManager() *jwtlib.Manager {
	return jwtlib.NewManager("test-secret", time.Hour, 7*24*time.Hour)
}

func newExpiredManager() *jwtlib.Manager {
	return jwtlib.NewManager("test-secret", -time.Minute, -time.Minute)
}

func newService(manager *jwtlib.Manager) (*TokenService, *MockRevocationStore) {
	store := new(MockRevocationStore)
	return NewTokenService(slog.Default(), manager, store), store
}

func TestIssuePair_Success(t *testing.T) {
	service, _ := newService(newManager())

	pair, err := service.IssuePair(testAdminID, "admin")

	require.NoError(t, err)
	assert.Equal(t, testAdminID, pair.AdminID)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
}

func TestVerify_Success(t *testing.T) {
	service, store := newService(newManager())

	token, err := service.IssueAccessToken(testAdminID, "admin")
	require.NoError(t, err)

	store.On("Contains", testCtx, mock.AnythingOfType("string")).Return(false, nil)

	claims, err := service.Verify(testCtx, token, jwtlib.KindAccess)

	require.NoError(t, err)
	assert.Equal(t, testAdminID.String(), claims.Subject)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, string(jwtlib.KindAccess), claims.Kind)
	store.AssertExpectations(t)
}

func TestVerify_Malformed(t *testing.T) {
	service, store := newService(newManager())

	_, err := service.Verify(testCtx, "not.a.token", jwtlib.KindAccess)

	assert.ErrorIs(t, err, ErrTokenMalformed)
	store.AssertNotCalled(t, "Contains", mock.Anything, mock.Anything)
}

func TestVerify_WrongSignature(t *testing.T) {
	service, store := newService(newManager())

	foreign := jwtlib.NewManager("other-secret", time.Hour, time.Hour)
	token, err := foreign.NewAccessToken(testAdminID, "admin")
	require.NoError(t, err)

	_, err = service.Verify(testCtx, token, jwtlib.KindAccess)

	assert.ErrorIs(t, err, ErrTokenMalformed)
	store.AssertNotCalled(t, "Contains", mock.Anything, mock.Anything)
}

func TestVerify_Expired(t *testing.T) {
	expired := newExpiredManager()
	service, store := newService(expired)

	token, err := expired.NewAccessToken(testAdminID, "admin")
	require.NoError(t, err)

	_, err = service.Verify(testCtx, token, jwtlib.KindAccess)

	assert.ErrorIs(t, err, ErrTokenExpired)
	store.AssertNotCalled(t, "Contains", mock.Anything, mock.Anything)
}

func TestVerify_WrongKind(t *testing.T) {
	service, store := newService(newManager())

	refresh, err := service.IssueRefreshToken(testAdminID)
	require.NoError(t, err)
	access, err := service.IssueAccessToken(testAdminID, "admin")
	require.NoError(t, err)

	_, err = service.Verify(testCtx, refresh, jwtlib.KindAccess)
	assert.ErrorIs(t, err, ErrWrongTokenKind)

	_, err = service.Verify(testCtx, access, jwtlib.KindRefresh)
	assert.ErrorIs(t, err, ErrWrongTokenKind)

	store.AssertNotCalled(t, "Contains", mock.Anything, mock.Anything)
}

func TestVerify_Revoked(t *testing.T) {
	service, store := newService(newManager())

	token, err := service.IssueAccessToken(testAdminID, "admin")
	require.NoError(t, err)

	store.On("Contains", testCtx, mock.AnythingOfType("string")).Return(true, nil)

	_, err = service.Verify(testCtx, token, jwtlib.KindAccess)

	assert.ErrorIs(t, err, ErrTokenRevoked)
	store.AssertExpectations(t)
}

func TestVerify_StoreError(t *testing.T) {
	service, store := newService(newManager())

	token, err := service.IssueAccessToken(testAdminID, "admin")
	require.NoError(t, err)

	expectedErr := errors.New("store down")
	store.On("Contains", testCtx, mock.AnythingOfType("string")).Return(false, expectedErr)

	_, err = service.Verify(testCtx, token, jwtlib.KindAccess)

	assert.ErrorIs(t, err, expectedErr)
	store.AssertExpectations(t)
}

func TestRevoke_Success(t *testing.T) {
	service, store := newService(newManager())

	token, err := service.IssueAccessToken(testAdminID, "admin")
	require.NoError(t, err)

	store.On("Insert",
		testCtx,
		mock.AnythingOfType("string"),
		string(jwtlib.KindAccess),
		testAdminID.String(),
		mock.MatchedBy(func(ttl time.Duration) bool {
			return ttl > 0 && ttl <= time.Hour
		}),
	).Return(nil)

	require.NoError(t, service.Revoke(testCtx, token))
	store.AssertExpectations(t)
}

func TestRevoke_ExpiredIsNoop(t *testing.T) {
	service, store := newService(newManager())

	expired, err := newExpiredManager().NewAccessToken(testAdminID, "admin")
	require.NoError(t, err)

	require.NoError(t, service.Revoke(testCtx, expired))
	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRevoke_Malformed(t *testing.T) {
	service, store := newService(newManager())

	err := service.Revoke(testCtx, "garbage")

	assert.ErrorIs(t, err, ErrTokenMalformed)
	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRevoke_Idempotent(t *testing.T) {
	service, store := newService(newManager())

	token, err := service.IssueRefreshToken(testAdminID)
	require.NoError(t, err)

	store.On("Insert", testCtx, mock.Anything, string(jwtlib.KindRefresh), testAdminID.String(), mock.Anything).
		Return(nil).Twice()

	require.NoError(t, service.Revoke(testCtx, token))
	require.NoError(t, service.Revoke(testCtx, token))
	store.AssertExpectations(t)
}

func TestRevoke_StoreError(t *testing.T) {
	service, store := newService(newManager())

	token, err := service.IssueAccessToken(testAdminID, "admin")
	require.NoError(t, err)

	expectedErr := errors.New("store down")
	store.On("Insert", testCtx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(expectedErr)

	err = service.Revoke(testCtx, token)

	assert.ErrorIs(t, err, expectedErr)
	store.AssertExpectations(t)
}
