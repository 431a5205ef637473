package services

import (
	"log/slog"
	"math/rand"
	"testing"

	"tirage/internal/domain/pairing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDrawService(seed int64) *DrawService {
	return NewDrawService(slog.Default(), rand.New(rand.NewSource(seed)))
}

func drawMembers(t *testing.T, out DrawOutput) map[int64]int {
	t.Helper()

	members := make(map[int64]int)
	for _, c := range out.Couples {
		members[c.Personne1]++
		members[c.Personne2]++
	}
	if out.Single != nil {
		members[*out.Single]++
	}
	return members
}

func TestDraw_CrossPairsFirst(t *testing.T) {
	service := newDrawService(1)

	out, err := service.Draw(DrawInput{
		Hommes: []int64{10, 11},
		Femmes: []int64{1, 2, 3, 4},
	})
	require.NoError(t, err)

	assert.Equal(t, pairing.DrawStats{
		TotalPersonnes: 6,
		TotalCouples:   3,
		CouplesHF:      2,
		CouplesFF:      1,
		CouplesHH:      0,
		NonAssociees:   0,
	}, out.Stats)
	assert.Nil(t, out.Single)
	assert.False(t, out.Timestamp.IsZero())

	// Every number appears exactly once across all couples.
	members := drawMembers(t, out)
	require.Len(t, members, 6)
	for n, count := range members {
		assert.Equal(t, 1, count, "number %d paired %d times", n, count)
	}
}

func TestDraw_OneSidedPool(t *testing.T) {
	service := newDrawService(7)

	out, err := service.Draw(DrawInput{
		Hommes: nil,
		Femmes: []int64{5, 6, 7},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Stats.CouplesFF)
	assert.Equal(t, 1, out.Stats.NonAssociees)
	require.NotNil(t, out.Single)
	assert.Contains(t, []int64{5, 6, 7}, *out.Single)

	members := drawMembers(t, out)
	assert.Len(t, members, 3)
}

func TestDraw_Validation(t *testing.T) {
	service := newDrawService(1)

	t.Run("both pools empty", func(t *testing.T) {
		_, err := service.Draw(DrawInput{})
		assert.ErrorIs(t, err, ErrEmptyPools)
	})

	t.Run("duplicates in hommes", func(t *testing.T) {
		_, err := service.Draw(DrawInput{Hommes: []int64{1, 1}, Femmes: []int64{2}})
		require.ErrorIs(t, err, ErrDuplicateNumbers)

		var poolErr *PoolError
		require.ErrorAs(t, err, &poolErr)
		assert.Equal(t, "hommes", poolErr.Pool)
	})

	t.Run("duplicates in femmes", func(t *testing.T) {
		_, err := service.Draw(DrawInput{Hommes: []int64{1}, Femmes: []int64{2, 2}})
		require.ErrorIs(t, err, ErrDuplicateNumbers)

		var poolErr *PoolError
		require.ErrorAs(t, err, &poolErr)
		assert.Equal(t, "femmes", poolErr.Pool)
	})

	t.Run("overlapping pools", func(t *testing.T) {
		_, err := service.Draw(DrawInput{Hommes: []int64{1, 2}, Femmes: []int64{2, 3}})
		require.ErrorIs(t, err, ErrOverlappingPools)

		var overlap *OverlapError
		require.ErrorAs(t, err, &overlap)
		assert.Equal(t, []int64{2}, overlap.Numbers)
	})
}

func TestDraw_EmptyCouplesNeverNil(t *testing.T) {
	service := newDrawService(3)

	out, err := service.Draw(DrawInput{Hommes: []int64{42}})
	require.NoError(t, err)
	require.NotNil(t, out.Couples)
	assert.Empty(t, out.Couples)
	require.NotNil(t, out.Single)
	assert.EqualValues(t, 42, *out.Single)
}
