// Package pairing holds the two matching algorithms the product runs on.
// Both are pure: pools come in as slices, randomness comes in as *rand.Rand,
// and persistence is the caller's problem.
package pairing

import (
	"errors"
	"math/rand"
)

const (
	KindCross  = "H-F"
	KindFemmes = "F-F"
	KindHommes = "H-H"
)

// ErrInsufficientPool is returned by Assign when there are more
// participants than gifts. Nothing is assigned in that case.
var ErrInsufficientPool = errors.New("not enough gifts for all participants")

// Couple pairs two numeric identifiers. For H-F couples Personne1 is always
// the homme.
type Couple struct {
	Type      string `json:"type"`
	Personne1 int64  `json:"personne1"`
	Personne2 int64  `json:"personne2"`
}

// DrawResult is the outcome of one cross-then-same draw. Single reports the
// leftover identifier when the total headcount is odd; it is nil otherwise.
type DrawResult struct {
	Couples []Couple
	Single  *int64
}

type DrawStats struct {
	TotalPersonnes int
	TotalCouples   int
	CouplesHF      int
	CouplesFF      int
	CouplesHH      int
	NonAssociees   int
}

// Stats derives the summary counts from the couples themselves, so it is
// always consistent with the result it is called on.
func (r DrawResult) Stats() DrawStats {
	s := DrawStats{TotalCouples: len(r.Couples)}

	for _, c := range r.Couples {
		switch c.Type {
		case KindCross:
			s.CouplesHF++
		case KindFemmes:
			s.CouplesFF++
		case KindHommes:
			s.CouplesHH++
		}
	}

	if r.Single != nil {
		s.NonAssociees = 1
	}
	s.TotalPersonnes = 2*s.TotalCouples + s.NonAssociees

	return s
}

// Empty reports whether the draw had nothing to work with.
func (r DrawResult) Empty() bool {
	return len(r.Couples) == 0 && r.Single == nil
}

// Draw shuffles both pools and pairs them: one homme with one femme while
// both pools last, then the remaining pool against itself two at a time.
// At most one identifier is left over and it is reported, never dropped.
// Inputs are not mutated.
func Draw(rng *rand.Rand, hommes, femmes []int64) DrawResult {
	hs := append([]int64(nil), hommes...)
	fs := append([]int64(nil), femmes...)

	rng.Shuffle(len(hs), func(i, j int) { hs[i], hs[j] = hs[j], hs[i] })
	rng.Shuffle(len(fs), func(i, j int) { fs[i], fs[j] = fs[j], fs[i] })

	var res DrawResult

	for len(hs) > 0 && len(fs) > 0 {
		h := hs[len(hs)-1]
		f := fs[len(fs)-1]
		hs = hs[:len(hs)-1]
		fs = fs[:len(fs)-1]
		res.Couples = append(res.Couples, Couple{Type: KindCross, Personne1: h, Personne2: f})
	}

	for len(fs) >= 2 {
		f1 := fs[len(fs)-1]
		f2 := fs[len(fs)-2]
		fs = fs[:len(fs)-2]
		res.Couples = append(res.Couples, Couple{Type: KindFemmes, Personne1: f1, Personne2: f2})
	}

	for len(hs) >= 2 {
		h1 := hs[len(hs)-1]
		h2 := hs[len(hs)-2]
		hs = hs[:len(hs)-2]
		res.Couples = append(res.Couples, Couple{Type: KindHommes, Personne1: h1, Personne2: h2})
	}

	switch {
	case len(fs) == 1:
		v := fs[0]
		res.Single = &v
	case len(hs) == 1:
		v := hs[0]
		res.Single = &v
	}

	return res
}

// Assignment maps one participant to one gift.
type Assignment struct {
	Participant string `json:"participant"`
	Gift        int64  `json:"gift"`
}

// Assign gives every participant one gift from a shuffled copy of the gift
// pool. It requires len(participants) <= len(gifts); leftover gifts are
// simply not consumed. Inputs are not mutated.
func Assign(rng *rand.Rand, participants []string, gifts []int64) ([]Assignment, error) {
	if len(participants) > len(gifts) {
		return nil, ErrInsufficientPool
	}

	gs := append([]int64(nil), gifts...)
	rng.Shuffle(len(gs), func(i, j int) { gs[i], gs[j] = gs[j], gs[i] })

	out := make([]Assignment, 0, len(participants))
	for i, p := range participants {
		out = append(out, Assignment{Participant: p, Gift: gs[i]})
	}

	return out, nil
}
