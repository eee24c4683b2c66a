package sortition

import (
	"fmt"
	"math"

	sorterrors "github.com/tamirms/sortition/errors"
)

// maxDrawRange is the largest supported max. The range mapping consumes four
// digest bytes, so the bound must stay well inside uint32; capping at int32
// also keeps the API identical on 32-bit platforms.
const maxDrawRange = 1<<31 - 1

// Rng draws uniformly distributed indices seeded by caller intentions.
//
// Configuration is fixed at construction and immutable for the lifetime of
// the instance. An Rng holds no per-draw state, so it is safe for concurrent
// use as long as its entropy source is (the bundled sources are).
type Rng struct {
	cfg rngConfig
}

// New returns an Rng. By default every draw mixes the call timestamp and
// fresh system entropy into the seed; see the Without* options for
// deterministic operation.
func New(opts ...Option) *Rng {
	cfg := defaultRngConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Rng{cfg: *cfg}
}

// Draw maps intention onto an index in [0, max).
//
// The result timestamp reflects the call time even when the timestamp is
// excluded from the seed. Draw never retries; any failure is immediate.
func (r *Rng) Draw(intention string, max int) (DrawResult, error) {
	if intention == "" {
		return DrawResult{}, sorterrors.ErrInvalidIntention
	}
	if max <= 0 || max > maxDrawRange {
		return DrawResult{}, fmt.Errorf("%w: got %d", sorterrors.ErrInvalidMax, max)
	}

	now := r.cfg.now()
	seed, err := r.buildSeed(intention, now)
	if err != nil {
		return DrawResult{}, err
	}
	digest := digestSeed(seed)
	return DrawResult{
		Index:     mapToRange(digest, max),
		Timestamp: formatTimestamp(now),
	}, nil
}

// DrawMultiple draws count indices in [0, max), duplicates allowed. Each
// position i derives its own sub-intention "{intention}::draw{i}" so that
// positions stay decorrelated even in deterministic configuration.
//
// The result timestamp is captured once at the start of the call.
func (r *Rng) DrawMultiple(intention string, max, count int) (MultiDrawResult, error) {
	if err := r.validateMulti(intention, max, count); err != nil {
		return MultiDrawResult{}, err
	}

	started := formatTimestamp(r.cfg.now())
	indices := make([]int, count)
	for i := range indices {
		res, err := r.Draw(positionIntention(intention, i), max)
		if err != nil {
			return MultiDrawResult{}, err
		}
		indices[i] = res.Index
	}
	return MultiDrawResult{Indices: indices, Timestamp: started}, nil
}

// DrawUnique draws count distinct indices in [0, max). Impossible requests
// (count > max) fail with ErrDomainExhausted before any draw executes.
//
// Collisions with already-drawn indices are retried with further-derived
// sub-seeds, bounded by max*2 retries per position. If the budget runs out
// the call fails with ErrDuplicateExhausted rather than returning a
// duplicate.
func (r *Rng) DrawUnique(intention string, max, count int) (MultiDrawResult, error) {
	if err := r.validateMulti(intention, max, count); err != nil {
		return MultiDrawResult{}, err
	}
	if count > max {
		return MultiDrawResult{}, fmt.Errorf("%w: count %d exceeds range %d",
			sorterrors.ErrDomainExhausted, count, max)
	}

	started := formatTimestamp(r.cfg.now())
	indices := make([]int, count)
	used := make(map[int]struct{}, count)
	for i := range indices {
		idx, err := r.drawDistinct(intention, i, max, used)
		if err != nil {
			return MultiDrawResult{}, err
		}
		used[idx] = struct{}{}
		indices[i] = idx
	}
	return MultiDrawResult{Indices: indices, Timestamp: started}, nil
}

// drawDistinct draws for position i, rerolling with derived retry seeds
// until the index avoids used or the retry budget is exhausted. The error
// path reports the position, never the intention itself.
func (r *Rng) drawDistinct(intention string, i, max int, used map[int]struct{}) (int, error) {
	sub := positionIntention(intention, i)
	res, err := r.Draw(sub, max)
	if err != nil {
		return 0, err
	}
	idx := res.Index
	budget := max * 2
	if budget < 0 {
		budget = math.MaxInt
	}
	for attempt := 1; ; attempt++ {
		if _, collision := used[idx]; !collision {
			return idx, nil
		}
		if attempt > budget {
			return 0, fmt.Errorf("%w: position %d after %d retries",
				sorterrors.ErrDuplicateExhausted, i, budget)
		}
		res, err = r.Draw(fmt.Sprintf("%s%sretry%d", sub, seedDelimiter, attempt), max)
		if err != nil {
			return 0, err
		}
		idx = res.Index
	}
}

// validateMulti runs the shared multi-draw validation. All checks happen
// before any draw so a failing call never produces partial work.
func (r *Rng) validateMulti(intention string, max, count int) error {
	if intention == "" {
		return sorterrors.ErrInvalidIntention
	}
	if max <= 0 || max > maxDrawRange {
		return fmt.Errorf("%w: got %d", sorterrors.ErrInvalidMax, max)
	}
	if count <= 0 {
		return fmt.Errorf("%w: got %d", sorterrors.ErrInvalidCount, count)
	}
	return nil
}

func positionIntention(intention string, i int) string {
	return fmt.Sprintf("%s%sdraw%d", intention, seedDelimiter, i)
}
