// Package raffle draws winners from a fixed set of participants, uniformly
// and without replacement.
package raffle

import (
	"fmt"
)

// Selector runs draws against a RandomSource.
type Selector struct {
	source RandomSource
}

// NewSelector returns a Selector over source. A nil source falls back to
// CryptoSource.
func NewSelector(source RandomSource) *Selector {
	if source == nil {
		source = CryptoSource{}
	}
	return &Selector{source: source}
}

// Select returns min(winnerCount, len(participants)) distinct participants in
// draw order. The input slice is never modified.
//
// An empty pool with winnerCount > 0 is an error rather than an empty result,
// so a misconfigured draw cannot pass as "no winners".
func (s *Selector) Select(participants []string, winnerCount int) ([]string, error) {
	if winnerCount < 0 {
		return nil, fmt.Errorf("%w: winner count %d is negative", ErrInvalidArgument, winnerCount)
	}
	if err := checkUnique(participants); err != nil {
		return nil, err
	}
	if winnerCount == 0 {
		return []string{}, nil
	}
	if len(participants) == 0 {
		return nil, fmt.Errorf("%w: %d winners requested", ErrInsufficientParticipants, winnerCount)
	}

	pool := make([]string, len(participants))
	copy(pool, participants)

	n := min(winnerCount, len(pool))
	// Partial Fisher-Yates: position i takes a uniform pick from pool[i:].
	for i := 0; i < n; i++ {
		j, err := s.source.Intn(len(pool) - i)
		if err != nil {
			return nil, fmt.Errorf("draw %d of %d: %w", i+1, n, err)
		}
		if j < 0 || j >= len(pool)-i {
			return nil, fmt.Errorf("draw %d of %d: random index %d out of range", i+1, n, j)
		}
		j += i
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n:n], nil
}

// Select draws with a fresh CryptoSource.
func Select(participants []string, winnerCount int) ([]string, error) {
	return NewSelector(CryptoSource{}).Select(participants, winnerCount)
}

// SelectSeeded draws with a SeededSource keyed by seed.
func SelectSeeded(participants []string, winnerCount int, seed string) ([]string, error) {
	src, err := NewSeededSource(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return NewSelector(src).Select(participants, winnerCount)
}

func checkUnique(participants []string) error {
	seen := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		if _, ok := seen[p]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateInput, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}
