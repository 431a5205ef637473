package pairing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRng(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func collectIDs(t *testing.T, res DrawResult) map[int64]int {
	t.Helper()

	seen := make(map[int64]int)
	for _, c := range res.Couples {
		seen[c.Personne1]++
		seen[c.Personne2]++
	}
	if res.Single != nil {
		seen[*res.Single]++
	}
	return seen
}

func TestDraw(t *testing.T) {
	t.Run("two hommes four femmes", func(t *testing.T) {
		hommes := []int64{10, 11}
		femmes := []int64{1, 2, 3, 4}

		res := Draw(newRng(1), hommes, femmes)
		stats := res.Stats()

		assert.Equal(t, 2, stats.CouplesHF)
		assert.Equal(t, 1, stats.CouplesFF)
		assert.Equal(t, 0, stats.CouplesHH)
		assert.Equal(t, 3, stats.TotalCouples)
		assert.Equal(t, 6, stats.TotalPersonnes)
		assert.Equal(t, 0, stats.NonAssociees)
		assert.Nil(t, res.Single)

		seen := collectIDs(t, res)
		require.Len(t, seen, 6)
		for id, n := range seen {
			assert.Equalf(t, 1, n, "identifier %d used %d times", id, n)
		}
	})

	t.Run("hommes on cross side", func(t *testing.T) {
		res := Draw(newRng(7), []int64{10, 11}, []int64{1, 2, 3, 4})

		hommes := map[int64]bool{10: true, 11: true}
		for _, c := range res.Couples {
			if c.Type != KindCross {
				continue
			}
			assert.True(t, hommes[c.Personne1], "personne1 of an H-F couple must be an homme")
			assert.False(t, hommes[c.Personne2])
		}
	})

	t.Run("no hommes leaves one femme single", func(t *testing.T) {
		res := Draw(newRng(2), nil, []int64{5, 6, 7})
		stats := res.Stats()

		assert.Equal(t, 1, stats.CouplesFF)
		assert.Equal(t, 0, stats.CouplesHF)
		assert.Equal(t, 0, stats.CouplesHH)
		require.NotNil(t, res.Single)
		assert.Contains(t, []int64{5, 6, 7}, *res.Single)
		assert.Equal(t, 1, stats.NonAssociees)
		assert.Equal(t, 3, stats.TotalPersonnes)
	})

	t.Run("only hommes pair among themselves", func(t *testing.T) {
		res := Draw(newRng(3), []int64{1, 2, 3, 4}, nil)
		stats := res.Stats()

		assert.Equal(t, 2, stats.CouplesHH)
		assert.Equal(t, 0, stats.CouplesHF)
		assert.Nil(t, res.Single)
	})

	t.Run("single identifier is reported not paired", func(t *testing.T) {
		res := Draw(newRng(4), []int64{42}, nil)

		assert.Empty(t, res.Couples)
		require.NotNil(t, res.Single)
		assert.Equal(t, int64(42), *res.Single)
		assert.False(t, res.Empty())
	})

	t.Run("empty pools give empty result", func(t *testing.T) {
		res := Draw(newRng(5), nil, nil)

		assert.True(t, res.Empty())
		assert.Equal(t, DrawStats{}, res.Stats())
	})

	t.Run("every identifier used exactly once", func(t *testing.T) {
		var hommes, femmes []int64
		for i := int64(0); i < 51; i++ {
			hommes = append(hommes, 1000+i)
		}
		for i := int64(0); i < 30; i++ {
			femmes = append(femmes, 2000+i)
		}

		res := Draw(newRng(6), hommes, femmes)
		stats := res.Stats()

		assert.Equal(t, 30, stats.CouplesHF)
		assert.Equal(t, 10, stats.CouplesHH)
		assert.Equal(t, 0, stats.CouplesFF)
		assert.Equal(t, 1, stats.NonAssociees)
		assert.Equal(t, 81, stats.TotalPersonnes)

		seen := collectIDs(t, res)
		require.Len(t, seen, 81)
		for id, n := range seen {
			require.Equalf(t, 1, n, "identifier %d used %d times", id, n)
		}
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		hommes := []int64{10, 11, 12}
		femmes := []int64{1, 2}

		Draw(newRng(8), hommes, femmes)

		assert.Equal(t, []int64{10, 11, 12}, hommes)
		assert.Equal(t, []int64{1, 2}, femmes)
	})

	t.Run("same seed same result", func(t *testing.T) {
		hommes := []int64{1, 2, 3}
		femmes := []int64{4, 5, 6, 7}

		first := Draw(newRng(99), hommes, femmes)
		second := Draw(newRng(99), hommes, femmes)

		assert.Equal(t, first, second)
	})
}

func TestAssign(t *testing.T) {
	t.Run("two participants three gifts", func(t *testing.T) {
		got, err := Assign(newRng(1), []string{"Alice", "Bob"}, []int64{10, 20, 30})
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, "Alice", got[0].Participant)
		assert.Equal(t, "Bob", got[1].Participant)

		used := map[int64]bool{}
		for _, a := range got {
			assert.Contains(t, []int64{10, 20, 30}, a.Gift)
			assert.False(t, used[a.Gift], "gift assigned twice")
			used[a.Gift] = true
		}
		assert.Len(t, used, 2)
	})

	t.Run("more participants than gifts", func(t *testing.T) {
		got, err := Assign(newRng(2), []string{"Alice", "Bob", "Carl"}, []int64{10})

		require.ErrorIs(t, err, ErrInsufficientPool)
		assert.Nil(t, got)
	})

	t.Run("equal pools consume every gift", func(t *testing.T) {
		gifts := []int64{1, 2, 3, 4}
		got, err := Assign(newRng(3), []string{"a", "b", "c", "d"}, gifts)
		require.NoError(t, err)

		used := map[int64]bool{}
		for _, a := range got {
			used[a.Gift] = true
		}
		assert.Len(t, used, 4)
	})

	t.Run("no participants no assignments", func(t *testing.T) {
		got, err := Assign(newRng(4), nil, []int64{10, 20})

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("gift pool not mutated", func(t *testing.T) {
		gifts := []int64{10, 20, 30}
		_, err := Assign(newRng(5), []string{"x"}, gifts)
		require.NoError(t, err)

		assert.Equal(t, []int64{10, 20, 30}, gifts)
	})

	t.Run("same seed same result", func(t *testing.T) {
		parts := []string{"a", "b", "c"}
		gifts := []int64{7, 8, 9, 10}

		first, err := Assign(newRng(42), parts, gifts)
		require.NoError(t, err)
		second, err := Assign(newRng(42), parts, gifts)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
