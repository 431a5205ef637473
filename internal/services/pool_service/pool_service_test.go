package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"tirage/internal/domain/models"
	"tirage/internal/lib/ingest"
	"tirage/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParticipantRepo struct {
	mock.Mock
}

func (m *MockParticipantRepo) SaveParticipant(ctx context.Context, name string) (uuid.UUID, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockParticipantRepo) SaveParticipants(ctx context.Context, names []string) ([]string, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockParticipantRepo) ParticipantByName(ctx context.Context, name string) (models.Participant, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(models.Participant), args.Error(1)
}

func (m *MockParticipantRepo) ListActive(ctx context.Context) ([]models.Participant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Participant), args.Error(1)
}

func (m *MockParticipantRepo) ListUnassociated(ctx context.Context) ([]models.Participant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Participant), args.Error(1)
}

func (m *MockParticipantRepo) ArchiveByName(ctx context.Context, name string) (uuid.UUID, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockParticipantRepo) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockParticipantRepo) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockGiftRepo struct {
	mock.Mock
}

func (m *MockGiftRepo) SaveGift(ctx context.Context, number int64) (uuid.UUID, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockGiftRepo) SaveGifts(ctx context.Context, numbers []int64) ([]int64, error) {
	args := m.Called(ctx, numbers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockGiftRepo) ListViews(ctx context.Context) ([]models.GiftView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GiftView), args.Error(1)
}

func (m *MockGiftRepo) ListUnassociated(ctx context.Context) ([]models.Gift, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Gift), args.Error(1)
}

func (m *MockGiftRepo) ArchiveByNumber(ctx context.Context, number int64) (uuid.UUID, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockGiftRepo) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGiftRepo) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockAssociationRepo struct {
	mock.Mock
}

func (m *MockAssociationRepo) SaveBatch(ctx context.Context, assocs []models.Association) error {
	args := m.Called(ctx, assocs)
	return args.Error(0)
}

func (m *MockAssociationRepo) ListDetails(ctx context.Context) ([]models.AssociationDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AssociationDetail), args.Error(1)
}

func (m *MockAssociationRepo) ArchiveByParticipantName(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockAssociationRepo) ArchiveByParticipantID(ctx context.Context, participantID uuid.UUID) error {
	args := m.Called(ctx, participantID)
	return args.Error(0)
}

func (m *MockAssociationRepo) ArchiveByGiftID(ctx context.Context, giftID uuid.UUID) error {
	args := m.Called(ctx, giftID)
	return args.Error(0)
}

func (m *MockAssociationRepo) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssociationRepo) CountByKind(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockAssociationRepo) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func setupPool() (*PoolService, *MockParticipantRepo, *MockGiftRepo, *MockAssociationRepo) {
	participants := new(MockParticipantRepo)
	gifts := new(MockGiftRepo)
	associations := new(MockAssociationRepo)
	return NewPoolService(slog.Default(), participants, gifts, associations, nil), participants, gifts, associations
}

func TestAddParticipant(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		service, participants, _, _ := setupPool()

		participants.On("SaveParticipant", ctx, "Alice").Return(uuid.New(), nil).Once()

		err := service.AddParticipant(ctx, "Alice")
		require.NoError(t, err)
		participants.AssertExpectations(t)
	})

	t.Run("already exists", func(t *testing.T) {
		service, participants, _, _ := setupPool()

		participants.On("SaveParticipant", ctx, "Alice").
			Return(uuid.Nil, storage.ErrParticipantExists).Once()

		err := service.AddParticipant(ctx, "Alice")
		assert.ErrorIs(t, err, ErrParticipantExists)
	})

	t.Run("repository error", func(t *testing.T) {
		service, participants, _, _ := setupPool()

		participants.On("SaveParticipant", ctx, "Alice").
			Return(uuid.Nil, errors.New("db error")).Once()

		err := service.AddParticipant(ctx, "Alice")
		assert.ErrorContains(t, err, "db error")
	})
}

func TestAddParticipants(t *testing.T) {
	ctx := context.Background()

	t.Run("splits added and ignored in input order", func(t *testing.T) {
		service, participants, _, _ := setupPool()

		// "Bob" already lives in the pool, "Alice" repeats within the batch.
		participants.On("SaveParticipants", ctx, []string{"Alice", "Bob", "Chloé"}).
			Return([]string{"Alice", "Chloé"}, nil).Once()

		res, err := service.AddParticipants(ctx, []string{"Alice", "Bob", "Alice", "Chloé"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Alice", "Chloé"}, res.Added)
		assert.Equal(t, []string{"Bob", "Alice"}, res.Ignored)
		participants.AssertExpectations(t)
	})

	t.Run("all new", func(t *testing.T) {
		service, participants, _, _ := setupPool()

		participants.On("SaveParticipants", ctx, []string{"Alice", "Bob"}).
			Return([]string{"Alice", "Bob"}, nil).Once()

		res, err := service.AddParticipants(ctx, []string{"Alice", "Bob"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Alice", "Bob"}, res.Added)
		assert.Empty(t, res.Ignored)
	})

	t.Run("empty batch", func(t *testing.T) {
		service, participants, _, _ := setupPool()

		participants.On("SaveParticipants", ctx, []string{}).Return(nil, nil).Once()

		res, err := service.AddParticipants(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, res.Added)
		assert.Empty(t, res.Ignored)
	})

	t.Run("repository error", func(t *testing.T) {
		service, participants, _, _ := setupPool()

		participants.On("SaveParticipants", ctx, []string{"Alice"}).
			Return(nil, errors.New("db error")).Once()

		_, err := service.AddParticipants(ctx, []string{"Alice"})
		assert.ErrorContains(t, err, "db error")
	})
}

func TestIngestParticipantFile(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the matching column", func(t *testing.T) {
		service, participants, _, _ := setupPool()

		participants.On("SaveParticipants", ctx, []string{"Alice", "Bob"}).
			Return([]string{"Alice", "Bob"}, nil).Once()

		file := strings.NewReader("numero\nAlice\nBob\n")
		res, err := service.IngestParticipantFile(ctx, "pool.csv", file)
		require.NoError(t, err)
		assert.Equal(t, []string{"Alice", "Bob"}, res.Added)
		assert.Empty(t, res.Ignored)
		participants.AssertExpectations(t)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		service, participants, _, _ := setupPool()

		_, err := service.IngestParticipantFile(ctx, "pool.txt", strings.NewReader("numero\nAlice\n"))
		assert.ErrorIs(t, err, ingest.ErrUnsupportedExt)
		participants.AssertNotCalled(t, "SaveParticipants", mock.Anything, mock.Anything)
	})

	t.Run("no alias column", func(t *testing.T) {
		service, _, _, _ := setupPool()

		_, err := service.IngestParticipantFile(ctx, "pool.csv", strings.NewReader("foo\nAlice\n"))
		assert.ErrorIs(t, err, ingest.ErrNoAliasColumn)
	})
}

func TestListParticipants(t *testing.T) {
	ctx := context.Background()

	t.Run("returns names in listing order", func(t *testing.T) {
		service, participants, _, _ := setupPool()

		participants.On("ListActive", ctx).Return([]models.Participant{
			{ID: uuid.New(), Name: "Alice", CreatedAt: time.Now()},
			{ID: uuid.New(), Name: "Bob", CreatedAt: time.Now()},
		}, nil).Once()

		names, err := service.ListParticipants(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Alice", "Bob"}, names)
	})

	t.Run("empty pool", func(t *testing.T) {
		service, participants, _, _ := setupPool()

		participants.On("ListActive", ctx).Return([]models.Participant{}, nil).Once()

		names, err := service.ListParticipants(ctx)
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("repository error", func(t *testing.T) {
		service, participants, _, _ := setupPool()

		participants.On("ListActive", ctx).Return(nil, errors.New("db error")).Once()

		_, err := service.ListParticipants(ctx)
		assert.ErrorContains(t, err, "db error")
	})
}

func TestRemoveParticipant(t *testing.T) {
	ctx := context.Background()

	t.Run("archives participant and its association", func(t *testing.T) {
		service, participants, _, associations := setupPool()
		id := uuid.New()

		participants.On("ArchiveByName", ctx, "Alice").Return(id, nil).Once()
		associations.On("ArchiveByParticipantID", ctx, id).Return(nil).Once()

		err := service.RemoveParticipant(ctx, "Alice")
		require.NoError(t, err)
		participants.AssertExpectations(t)
		associations.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		service, participants, _, associations := setupPool()

		participants.On("ArchiveByName", ctx, "Ghost").
			Return(uuid.Nil, storage.ErrParticipantNotFound).Once()

		err := service.RemoveParticipant(ctx, "Ghost")
		assert.ErrorIs(t, err, ErrParticipantNotFound)
		associations.AssertNotCalled(t, "ArchiveByParticipantID", mock.Anything, mock.Anything)
	})

	t.Run("association archive error", func(t *testing.T) {
		service, participants, _, associations := setupPool()
		id := uuid.New()

		participants.On("ArchiveByName", ctx, "Alice").Return(id, nil).Once()
		associations.On("ArchiveByParticipantID", ctx, id).
			Return(errors.New("db error")).Once()

		err := service.RemoveParticipant(ctx, "Alice")
		assert.ErrorContains(t, err, "db error")
	})
}

func TestAddGift(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		service, _, gifts, _ := setupPool()

		gifts.On("SaveGift", ctx, int64(42)).Return(uuid.New(), nil).Once()

		err := service.AddGift(ctx, 42)
		require.NoError(t, err)
		gifts.AssertExpectations(t)
	})

	t.Run("already exists", func(t *testing.T) {
		service, _, gifts, _ := setupPool()

		gifts.On("SaveGift", ctx, int64(42)).
			Return(uuid.Nil, storage.ErrGiftExists).Once()

		err := service.AddGift(ctx, 42)
		assert.ErrorIs(t, err, ErrGiftExists)
	})
}

func TestAddGifts(t *testing.T) {
	ctx := context.Background()

	t.Run("splits added and ignored", func(t *testing.T) {
		service, _, gifts, _ := setupPool()

		gifts.On("SaveGifts", ctx, []int64{10, 20, 30}).
			Return([]int64{10, 30}, nil).Once()

		res, err := service.AddGifts(ctx, []int64{10, 20, 10, 30})
		require.NoError(t, err)
		assert.Equal(t, []int64{10, 30}, res.Added)
		assert.Equal(t, []int64{20, 10}, res.Ignored)
	})

	t.Run("repository error", func(t *testing.T) {
		service, _, gifts, _ := setupPool()

		gifts.On("SaveGifts", ctx, []int64{10}).
			Return(nil, errors.New("db error")).Once()

		_, err := service.AddGifts(ctx, []int64{10})
		assert.ErrorContains(t, err, "db error")
	})
}

func TestListGifts(t *testing.T) {
	ctx := context.Background()

	t.Run("returns views", func(t *testing.T) {
		service, _, gifts, _ := setupPool()
		views := []models.GiftView{
			{Gift: 10, Associated: true},
			{Gift: 20, Associated: false},
		}

		gifts.On("ListViews", ctx).Return(views, nil).Once()

		got, err := service.ListGifts(ctx)
		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("repository error", func(t *testing.T) {
		service, _, gifts, _ := setupPool()

		gifts.On("ListViews", ctx).Return(nil, errors.New("db error")).Once()

		_, err := service.ListGifts(ctx)
		assert.ErrorContains(t, err, "db error")
	})
}

func TestRemoveGift(t *testing.T) {
	ctx := context.Background()

	t.Run("archives gift and its association", func(t *testing.T) {
		service, _, gifts, associations := setupPool()
		id := uuid.New()

		gifts.On("ArchiveByNumber", ctx, int64(42)).Return(id, nil).Once()
		associations.On("ArchiveByGiftID", ctx, id).Return(nil).Once()

		err := service.RemoveGift(ctx, 42)
		require.NoError(t, err)
		gifts.AssertExpectations(t)
		associations.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		service, _, gifts, associations := setupPool()

		gifts.On("ArchiveByNumber", ctx, int64(999)).
			Return(uuid.Nil, storage.ErrGiftNotFound).Once()

		err := service.RemoveGift(ctx, 999)
		assert.ErrorIs(t, err, ErrGiftNotFound)
		associations.AssertNotCalled(t, "ArchiveByGiftID", mock.Anything, mock.Anything)
	})
}
