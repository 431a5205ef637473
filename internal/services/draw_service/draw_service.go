package services

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"tirage/internal/domain/pairing"
)

var (
	ErrEmptyPools       = errors.New("at least one pool must contain numbers")
	ErrDuplicateNumbers = errors.New("pool contains duplicate numbers")
	ErrOverlappingPools = errors.New("pools share numbers")
)

// PoolError ties a validation sentinel to the pool it concerns.
type PoolError struct {
	Pool string
	Err  error
}

func (e *PoolError) Error() string { return e.Pool + ": " + e.Err.Error() }

func (e *PoolError) Unwrap() error { return e.Err }

// OverlapError lists the numbers found in both pools.
type OverlapError struct {
	Numbers []int64
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("numbers present in both pools: %v", e.Numbers)
}

func (e *OverlapError) Unwrap() error { return ErrOverlappingPools }

type DrawInput struct {
	Hommes []int64
	Femmes []int64
}

type DrawOutput struct {
	Couples   []pairing.Couple
	Single    *int64
	Stats     pairing.DrawStats
	Timestamp time.Time
}

// DrawService runs one-shot draws over pools supplied by the caller.
// Nothing is persisted; every call stands alone.
type DrawService struct {
	log *slog.Logger

	// rand.Rand is not safe for concurrent use.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewDrawService(log *slog.Logger, rng *rand.Rand) *DrawService {
	return &DrawService{
		log: log,
		rng: rng,
	}
}

// Draw validates both pools and pairs them, cross-kind first. Each number
// must be unique within its pool and absent from the other one, and at
// least one pool must be non-empty.
func (s *DrawService) Draw(input DrawInput) (DrawOutput, error) {
	const op = "service.DrawService.Draw"
	log := s.log.With(
		slog.String("op", op),
		slog.Int("hommes", len(input.Hommes)),
		slog.Int("femmes", len(input.Femmes)),
	)

	if err := validateDraw(input); err != nil {
		log.Warn("draw rejected", slog.String("reason", err.Error()))
		return DrawOutput{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	res := pairing.Draw(s.rng, input.Hommes, input.Femmes)
	s.mu.Unlock()

	couples := res.Couples
	if couples == nil {
		couples = []pairing.Couple{}
	}

	stats := res.Stats()

	log.Info("draw complete",
		slog.Int("couples", stats.TotalCouples),
		slog.Int("non_associees", stats.NonAssociees),
	)

	return DrawOutput{
		Couples:   couples,
		Single:    res.Single,
		Stats:     stats,
		Timestamp: time.Now(),
	}, nil
}

func validateDraw(input DrawInput) error {
	if len(input.Hommes) == 0 && len(input.Femmes) == 0 {
		return ErrEmptyPools
	}

	if duplicated(input.Femmes) {
		return &PoolError{Pool: "femmes", Err: ErrDuplicateNumbers}
	}
	if duplicated(input.Hommes) {
		return &PoolError{Pool: "hommes", Err: ErrDuplicateNumbers}
	}

	if common := intersect(input.Hommes, input.Femmes); len(common) > 0 {
		return &OverlapError{Numbers: common}
	}

	return nil
}

func duplicated(values []int64) bool {
	seen := make(map[int64]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}

// intersect returns the values of a that also appear in b, in a's order.
func intersect(a, b []int64) []int64 {
	inB := make(map[int64]struct{}, len(b))
	for _, v := range b {
		inB[v] = struct{}{}
	}

	var common []int64
	for _, v := range a {
		if _, ok := inB[v]; ok {
			common = append(common, v)
		}
	}

	return common
}
