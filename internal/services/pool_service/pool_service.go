package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"tirage/internal/domain/models"
	"tirage/internal/lib/ingest"
	"tirage/internal/lib/logger/sl"
	"tirage/internal/repository"
	"tirage/internal/storage"
)

var (
	ErrParticipantExists   = errors.New("participant already exists")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrGiftExists          = errors.New("gift already exists")
	ErrGiftNotFound        = errors.New("gift not found")
)

// PoolService manages the two pools a draw feeds on: named participants and
// numbered gifts. Removing a pool member also archives its association, so
// the freed counterpart returns to the next draw.
type PoolService struct {
	log          *slog.Logger
	participants repository.ParticipantRepository
	gifts        repository.GiftRepository
	associations repository.AssociationRepository
	fileAliases  []string
}

// NewPoolService wires the pool repositories. fileAliases names the upload
// columns accepted by IngestParticipantFile; nil selects the default list.
func NewPoolService(
	log *slog.Logger,
	participants repository.ParticipantRepository,
	gifts repository.GiftRepository,
	associations repository.AssociationRepository,
	fileAliases []string,
) *PoolService {
	if len(fileAliases) == 0 {
		fileAliases = ingest.DefaultParticipantAliases
	}

	return &PoolService{
		log:          log,
		participants: participants,
		gifts:        gifts,
		associations: associations,
		fileAliases:  fileAliases,
	}
}

func (s *PoolService) AddParticipant(ctx context.Context, name string) error {
	const op = "service.PoolService.AddParticipant"
	log := s.log.With(slog.String("op", op), slog.String("name", name))

	if _, err := s.participants.SaveParticipant(ctx, name); err != nil {
		if errors.Is(err, storage.ErrParticipantExists) {
			log.Warn("participant already exists")
			return fmt.Errorf("%s: %w", op, ErrParticipantExists)
		}

		log.Error("failed to save participant", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("participant added")
	return nil
}

// AddParticipants stores a batch of names in one shot. Each name lands in
// Added or Ignored in input order: repeats within the batch and names already
// in the pool are ignored, never an error.
func (s *PoolService) AddParticipants(ctx context.Context, names []string) (models.BulkResult, error) {
	const op = "service.PoolService.AddParticipants"
	log := s.log.With(slog.String("op", op), slog.Int("count", len(names)))

	added, err := s.participants.SaveParticipants(ctx, dedupe(names))
	if err != nil {
		log.Error("failed to save participants", sl.Err(err))
		return models.BulkResult{}, fmt.Errorf("%s: %w", op, err)
	}

	res := splitBulk(names, added)

	log.Info("participants added",
		slog.Int("added", len(res.Added)),
		slog.Int("ignored", len(res.Ignored)),
	)

	return res, nil
}

// IngestParticipantFile reads a CSV or XLSX upload, takes the first column
// whose header matches a configured alias and stores its values as
// participants. Unreadable files surface as ingest sentinel errors.
func (s *PoolService) IngestParticipantFile(ctx context.Context, filename string, r io.Reader) (models.BulkResult, error) {
	const op = "service.PoolService.IngestParticipantFile"
	log := s.log.With(slog.String("op", op), slog.String("filename", filename))

	values, err := ingest.Column(filename, r, s.fileAliases)
	if err != nil {
		log.Warn("upload rejected", sl.Err(err))
		return models.BulkResult{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.AddParticipants(ctx, values)
}

// ListParticipants returns the names of every active participant.
func (s *PoolService) ListParticipants(ctx context.Context) ([]string, error) {
	const op = "service.PoolService.ListParticipants"

	participants, err := s.participants.ListActive(ctx)
	if err != nil {
		s.log.Error("failed to list participants", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	names := make([]string, 0, len(participants))
	for _, p := range participants {
		names = append(names, p.Name)
	}

	return names, nil
}

// RemoveParticipant archives a participant together with its association,
// if any. The gift that was attached becomes available again.
func (s *PoolService) RemoveParticipant(ctx context.Context, name string) error {
	const op = "service.PoolService.RemoveParticipant"
	log := s.log.With(slog.String("op", op), slog.String("name", name))

	id, err := s.participants.ArchiveByName(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrParticipantNotFound) {
			log.Warn("participant not found")
			return fmt.Errorf("%s: %w", op, ErrParticipantNotFound)
		}

		log.Error("failed to archive participant", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.associations.ArchiveByParticipantID(ctx, id); err != nil {
		log.Error("failed to archive association", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("participant removed")
	return nil
}

func (s *PoolService) AddGift(ctx context.Context, number int64) error {
	const op = "service.PoolService.AddGift"
	log := s.log.With(slog.String("op", op), slog.Int64("gift", number))

	if _, err := s.gifts.SaveGift(ctx, number); err != nil {
		if errors.Is(err, storage.ErrGiftExists) {
			log.Warn("gift already exists")
			return fmt.Errorf("%s: %w", op, ErrGiftExists)
		}

		log.Error("failed to save gift", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gift added")
	return nil
}

func (s *PoolService) AddGifts(ctx context.Context, numbers []int64) (models.GiftBulkResult, error) {
	const op = "service.PoolService.AddGifts"
	log := s.log.With(slog.String("op", op), slog.Int("count", len(numbers)))

	added, err := s.gifts.SaveGifts(ctx, dedupe(numbers))
	if err != nil {
		log.Error("failed to save gifts", sl.Err(err))
		return models.GiftBulkResult{}, fmt.Errorf("%s: %w", op, err)
	}

	res := splitGiftBulk(numbers, added)

	log.Info("gifts added",
		slog.Int("added", len(res.Added)),
		slog.Int("ignored", len(res.Ignored)),
	)

	return res, nil
}

// ListGifts returns every active gift along with its association flag.
func (s *PoolService) ListGifts(ctx context.Context) ([]models.GiftView, error) {
	const op = "service.PoolService.ListGifts"

	views, err := s.gifts.ListViews(ctx)
	if err != nil {
		s.log.Error("failed to list gifts", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if views == nil {
		views = []models.GiftView{}
	}

	return views, nil
}

// RemoveGift archives a gift together with its association, if any.
func (s *PoolService) RemoveGift(ctx context.Context, number int64) error {
	const op = "service.PoolService.RemoveGift"
	log := s.log.With(slog.String("op", op), slog.Int64("gift", number))

	id, err := s.gifts.ArchiveByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, storage.ErrGiftNotFound) {
			log.Warn("gift not found")
			return fmt.Errorf("%s: %w", op, ErrGiftNotFound)
		}

		log.Error("failed to archive gift", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.associations.ArchiveByGiftID(ctx, id); err != nil {
		log.Error("failed to archive association", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("gift removed")
	return nil
}

// dedupe keeps the first occurrence of each value, preserving input order.
func dedupe[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	out := make([]T, 0, len(values))

	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

func splitBulk(input, added []string) models.BulkResult {
	res := models.BulkResult{Added: []string{}, Ignored: []string{}}

	inserted := make(map[string]bool, len(added))
	for _, v := range added {
		inserted[v] = true
	}

	// The first occurrence of an inserted name counts as added, every other
	// occurrence and every pre-existing name counts as ignored.
	for _, v := range input {
		if inserted[v] {
			inserted[v] = false
			res.Added = append(res.Added, v)
			continue
		}
		res.Ignored = append(res.Ignored, v)
	}

	return res
}

func splitGiftBulk(input, added []int64) models.GiftBulkResult {
	res := models.GiftBulkResult{Added: []int64{}, Ignored: []int64{}}

	inserted := make(map[int64]bool, len(added))
	for _, v := range added {
		inserted[v] = true
	}

	for _, v := range input {
		if inserted[v] {
			inserted[v] = false
			res.Added = append(res.Added, v)
			continue
		}
		res.Ignored = append(res.Ignored, v)
	}

	return res
}
