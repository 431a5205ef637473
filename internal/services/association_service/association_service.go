package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"tirage/internal/domain/models"
	"tirage/internal/domain/pairing"
	"tirage/internal/lib/logger/sl"
	"tirage/internal/metrics"
	"tirage/internal/repository"
	"tirage/internal/storage"

	"github.com/google/uuid"
)

var (
	// ErrNothingToPair reports a draw with no free participant. It is a
	// no-op outcome, not a failure.
	ErrNothingToPair       = errors.New("nothing to pair")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrNoAssociation       = errors.New("participant has no association")
)

// AssociationService runs draws over the stored pools and manages the
// resulting associations. Existing associations are never reshuffled: a
// draw only touches participants and gifts that are still free.
type AssociationService struct {
	log          *slog.Logger
	participants repository.ParticipantRepository
	gifts        repository.GiftRepository
	associations repository.AssociationRepository

	// rand.Rand is not safe for concurrent use.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewAssociationService(
	log *slog.Logger,
	participants repository.ParticipantRepository,
	gifts repository.GiftRepository,
	associations repository.AssociationRepository,
	rng *rand.Rand,
) *AssociationService {
	return &AssociationService{
		log:          log,
		participants: participants,
		gifts:        gifts,
		associations: associations,
		rng:          rng,
	}
}

// Associate assigns one random free gift to every free participant and
// persists the new associations in one batch. Participants that already
// hold a gift keep it. Returns ErrNothingToPair when no participant is
// free, and pairing.ErrInsufficientPool when the free gifts cannot cover
// the free participants; neither case stores anything.
func (s *AssociationService) Associate(ctx context.Context) (models.AssociateResult, error) {
	const op = "service.AssociationService.Associate"
	log := s.log.With(slog.String("op", op))

	freeParticipants, err := s.participants.ListUnassociated(ctx)
	if err != nil {
		log.Error("failed to list free participants", sl.Err(err))
		return models.AssociateResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if len(freeParticipants) == 0 {
		log.Info("no free participant, nothing to pair")
		return models.AssociateResult{}, fmt.Errorf("%s: %w", op, ErrNothingToPair)
	}

	freeGifts, err := s.gifts.ListUnassociated(ctx)
	if err != nil {
		log.Error("failed to list free gifts", sl.Err(err))
		return models.AssociateResult{}, fmt.Errorf("%s: %w", op, err)
	}

	names := make([]string, 0, len(freeParticipants))
	participantIDs := make(map[string]uuid.UUID, len(freeParticipants))
	for _, p := range freeParticipants {
		names = append(names, p.Name)
		participantIDs[p.Name] = p.ID
	}

	numbers := make([]int64, 0, len(freeGifts))
	giftIDs := make(map[int64]uuid.UUID, len(freeGifts))
	for _, g := range freeGifts {
		numbers = append(numbers, g.Number)
		giftIDs[g.Number] = g.ID
	}

	s.mu.Lock()
	assignments, err := pairing.Assign(s.rng, names, numbers)
	s.mu.Unlock()
	if err != nil {
		log.Warn("draw rejected",
			slog.Int("participants", len(names)),
			slog.Int("gifts", len(numbers)),
			sl.Err(err),
		)
		return models.AssociateResult{}, fmt.Errorf("%s: %w", op, err)
	}

	batch := make([]models.Association, 0, len(assignments))
	for _, a := range assignments {
		batch = append(batch, models.Association{
			ParticipantID: participantIDs[a.Participant],
			GiftID:        giftIDs[a.Gift],
			Kind:          models.PairKindGift,
		})
	}

	if err := s.associations.SaveBatch(ctx, batch); err != nil {
		log.Error("failed to save associations", sl.Err(err))
		return models.AssociateResult{}, fmt.Errorf("%s: %w", op, err)
	}

	metrics.AssociationsCreatedTotal.Add(float64(len(assignments)))

	log.Info("associations created",
		slog.Int("count", len(assignments)),
		slog.Int("remaining_gifts", len(freeGifts)-len(assignments)),
	)

	return models.AssociateResult{
		Associations: assignments,
		Stats: models.AssociateStats{
			TotalParticipants: len(freeParticipants),
			TotalGifts:        len(freeGifts),
			NewAssociations:   len(assignments),
			RemainingGifts:    len(freeGifts) - len(assignments),
		},
		Timestamp: time.Now(),
	}, nil
}

// List returns every active association with its participant and gift.
func (s *AssociationService) List(ctx context.Context) ([]models.AssociationDetail, error) {
	const op = "service.AssociationService.List"

	details, err := s.associations.ListDetails(ctx)
	if err != nil {
		s.log.Error("failed to list associations", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if details == nil {
		details = []models.AssociationDetail{}
	}

	return details, nil
}

// Dissociate archives the association of one participant, freeing its
// gift for the next draw. The participant itself stays in the pool.
func (s *AssociationService) Dissociate(ctx context.Context, name string) error {
	const op = "service.AssociationService.Dissociate"
	log := s.log.With(slog.String("op", op), slog.String("name", name))

	if _, err := s.participants.ParticipantByName(ctx, name); err != nil {
		if errors.Is(err, storage.ErrParticipantNotFound) {
			log.Warn("participant not found")
			return fmt.Errorf("%s: %w", op, ErrParticipantNotFound)
		}

		log.Error("failed to fetch participant", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.associations.ArchiveByParticipantName(ctx, name); err != nil {
		if errors.Is(err, storage.ErrAssociationNotFound) {
			log.Warn("participant has no association")
			return fmt.Errorf("%s: %w", op, ErrNoAssociation)
		}

		log.Error("failed to archive association", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("association removed")
	return nil
}

// Status assembles the full system snapshot: both pools, association
// totals by kind and the association details.
func (s *AssociationService) Status(ctx context.Context) (models.SystemStatus, error) {
	const op = "service.AssociationService.Status"
	log := s.log.With(slog.String("op", op))

	participants, err := s.participants.ListActive(ctx)
	if err != nil {
		log.Error("failed to list participants", sl.Err(err))
		return models.SystemStatus{}, fmt.Errorf("%s: %w", op, err)
	}

	gifts, err := s.gifts.ListViews(ctx)
	if err != nil {
		log.Error("failed to list gifts", sl.Err(err))
		return models.SystemStatus{}, fmt.Errorf("%s: %w", op, err)
	}

	details, err := s.associations.ListDetails(ctx)
	if err != nil {
		log.Error("failed to list associations", sl.Err(err))
		return models.SystemStatus{}, fmt.Errorf("%s: %w", op, err)
	}

	byKind, err := s.associations.CountByKind(ctx)
	if err != nil {
		log.Error("failed to count associations", sl.Err(err))
		return models.SystemStatus{}, fmt.Errorf("%s: %w", op, err)
	}

	names := make([]string, 0, len(participants))
	for _, p := range participants {
		names = append(names, p.Name)
	}

	numbers := make([]int64, 0, len(gifts))
	for _, g := range gifts {
		numbers = append(numbers, g.Gift)
	}

	if details == nil {
		details = []models.AssociationDetail{}
	}
	if byKind == nil {
		byKind = map[string]int64{}
	}

	return models.SystemStatus{
		Participants: models.PoolStatus{Total: len(names), List: names},
		Gifts:        models.GiftPoolStatus{Total: len(numbers), List: numbers},
		Associations: models.AssociationStatus{
			Total:   len(details),
			ByKind:  byKind,
			Details: details,
		},
	}, nil
}

// Reset wipes associations, gifts and participants, in that order, and
// reports how many rows each table held.
func (s *AssociationService) Reset(ctx context.Context) (models.ResetReport, error) {
	const op = "service.AssociationService.Reset"
	log := s.log.With(slog.String("op", op))

	associations, err := s.associations.DeleteAll(ctx)
	if err != nil {
		log.Error("failed to delete associations", sl.Err(err))
		return models.ResetReport{}, fmt.Errorf("%s: %w", op, err)
	}

	gifts, err := s.gifts.DeleteAll(ctx)
	if err != nil {
		log.Error("failed to delete gifts", sl.Err(err))
		return models.ResetReport{}, fmt.Errorf("%s: %w", op, err)
	}

	participants, err := s.participants.DeleteAll(ctx)
	if err != nil {
		log.Error("failed to delete participants", sl.Err(err))
		return models.ResetReport{}, fmt.Errorf("%s: %w", op, err)
	}

	report := models.ResetReport{
		Participants: int(participants),
		Gifts:        int(gifts),
		Associations: int(associations),
	}

	log.Info("system reset",
		slog.Int("participants", report.Participants),
		slog.Int("gifts", report.Gifts),
		slog.Int("associations", report.Associations),
	)

	return report, nil
}
