package dice

import (
	"fmt"
	"strings"
)

// State tracks where a pool is in its roll lifecycle.
type State int

const (
	// StateEmpty means no dice have been added.
	StateEmpty State = iota
	// StateComposed means the pool holds dice that have not been rolled
	// since the last change.
	StateComposed
	// StateRolled means every group holds faces from the latest roll.
	StateRolled
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateComposed:
		return "Composed"
	case StateRolled:
		return "Rolled"
	default:
		return "Unknown"
	}
}

// Pool aggregates at most one die group per size.
type Pool struct {
	groups  [sizeCount]*Die
	state   State
	src     Source
	maxDice int
}

// Option configures a Pool.
type Option func(*Pool)

// WithSource sets the randomness used by Roll.
func WithSource(src Source) Option {
	return func(p *Pool) {
		if src != nil {
			p.src = src
		}
	}
}

// WithMaxDice caps the total number of dice the pool accepts. Zero, a
// negative value or anything above MaxQuantity leaves the pool at
// MaxQuantity.
func WithMaxDice(n int) Option {
	return func(p *Pool) {
		p.maxDice = n
	}
}

// NewPool returns an empty pool. Without WithSource the pool gets its own
// crypto-seeded source.
func NewPool(opts ...Option) *Pool {
	p := &Pool{}
	for _, opt := range opts {
		opt(p)
	}
	if p.src == nil {
		p.src = defaultSource()
	}
	return p
}

// Composition describes a pool after an Add.
type Composition struct {
	Groups []Die
	Added  []Die
}

// String renders the composition as "D6, 2D8 (added D6)".
func (c Composition) String() string {
	return fmt.Sprintf("%s (added %s)", listDice(c.Groups), listDice(c.Added))
}

// Add merges dice into the pool, growing the quantity of an existing group
// of the same size instead of adding a second one.
//
// Add rejects invalid groups and returns ErrExcessiveQuantity when the pool
// would exceed its dice cap; in both cases the pool is left unchanged. A
// successful Add discards any previous roll.
func (p *Pool) Add(dice ...Die) (Composition, error) {
	limit := p.limit()
	incoming := 0
	for _, die := range dice {
		if _, err := NewDie(die.Size, die.Qty); err != nil {
			return Composition{}, err
		}
		// Count and incoming never exceed limit, so this cannot overflow.
		if die.Qty > limit-p.Count()-incoming {
			return Composition{}, fmt.Errorf("%w: %d more dice exceed the limit of %d", ErrExcessiveQuantity, incoming+die.Qty, limit)
		}
		incoming += die.Qty
	}

	added := make([]Die, 0, len(dice))
	for _, die := range dice {
		slot := die.Size.index()
		if existing := p.groups[slot]; existing != nil {
			existing.Qty += die.Qty
		} else {
			p.groups[slot] = &Die{Size: die.Size, Qty: die.Qty}
		}
		added = append(added, Die{Size: die.Size, Qty: die.Qty})
	}

	if len(added) > 0 {
		for _, group := range p.groups {
			if group != nil {
				group.Values = nil
			}
		}
		p.state = StateComposed
	}

	return Composition{Groups: p.Groups(), Added: added}, nil
}

func (p *Pool) limit() int {
	if p.maxDice > 0 && p.maxDice < MaxQuantity {
		return p.maxDice
	}
	return MaxQuantity
}

// State returns the pool's lifecycle state.
func (p *Pool) State() State {
	return p.state
}

// IsEmpty reports whether the pool holds no dice.
func (p *Pool) IsEmpty() bool {
	return p.state == StateEmpty
}

// Count returns the total number of dice across all groups.
func (p *Pool) Count() int {
	total := 0
	for _, group := range p.groups {
		if group != nil {
			total += group.Qty
		}
	}
	return total
}

// Groups returns copies of the pool's groups in ascending size order.
func (p *Pool) Groups() []Die {
	out := make([]Die, 0, sizeCount)
	for _, group := range p.groups {
		if group != nil {
			out = append(out, group.clone())
		}
	}
	return out
}

// Roll re-rolls every group, discarding the previous faces.
func (p *Pool) Roll() {
	if p.IsEmpty() {
		return
	}
	for _, group := range p.groups {
		if group != nil {
			group.Roll(p.src)
		}
	}
	p.state = StateRolled
}

// HitchCount returns how many faces are at or below threshold.
func (p *Pool) HitchCount(threshold int) int {
	count := 0
	for _, group := range p.groups {
		if group == nil {
			continue
		}
		for _, face := range group.Values {
			if IsHitch(face, threshold) {
				count++
			}
		}
	}
	return count
}

// IsBotch reports whether every rolled group came up all natural 1s.
func (p *Pool) IsBotch() bool {
	if p.state != StateRolled {
		return false
	}
	for _, group := range p.groups {
		if group != nil && !group.IsBotch() {
			return false
		}
	}
	return true
}

// EligibleResults returns the non-hitch faces, smallest die size first and
// roll order within a size.
func (p *Pool) EligibleResults(threshold int) []Result {
	var results []Result
	for _, group := range p.groups {
		if group != nil {
			results = append(results, group.EligibleResults(threshold)...)
		}
	}
	return results
}

// String renders the pool as "D6, 2D8, D12", or "empty".
func (p *Pool) String() string {
	return listDice(p.Groups())
}

func listDice(dice []Die) string {
	if len(dice) == 0 {
		return "empty"
	}
	names := make([]string, 0, len(dice))
	for _, die := range dice {
		names = append(names, die.String())
	}
	return strings.Join(names, ", ")
}
