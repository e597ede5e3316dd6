// Package technique implements human-style solving rules over a candidate
// grid. Every rule is a stateless evaluator: it either performs the first
// applicable instance of its pattern, reports that nothing applies, or
// reports a contradiction. Ordering across techniques is owned by the
// solver, not by this package.
package technique

import (
	"github.com/gifnksm/numelace/internal/board"
	"github.com/gifnksm/numelace/internal/domain"
)

// Technique is a stateless rule evaluator. Implementations hold no data
// and are safe to share across calls and goroutines.
type Technique interface {
	// Name identifies the technique for stats and hints.
	Name() string
	// Tier places the technique on the difficulty ladder.
	Tier() domain.StrategyTier
	// Apply performs the first applicable instance of the pattern.
	// It returns true when the grid changed, false when no instance of the
	// pattern is currently applicable, and an error (a
	// board.ContradictionError) when the grid is or becomes inconsistent.
	Apply(g *board.Grid) (bool, error)
	// Find returns the step the next Apply would perform, without mutating
	// the grid. A nil step means the pattern does not apply.
	Find(g *board.Grid) (*Step, error)
}

// Step describes one technique application: the cells that justify the
// pattern and the concrete change it makes (a placement or a set of
// candidate eliminations, never both).
type Step struct {
	Technique    string
	Tier         domain.StrategyTier
	Cells        []board.Position
	Place        *Placement
	Eliminations []Elimination
}

// Placement puts a digit into an open cell.
type Placement struct {
	Pos   board.Position
	Digit board.Digit
}

// Elimination removes one candidate digit from one open cell.
type Elimination struct {
	Pos   board.Position
	Digit board.Digit
}

// apply executes a found step against the grid. Eliminations that no
// longer change anything are skipped; the step counts as progress only if
// the grid actually changed.
func (s *Step) apply(g *board.Grid) (bool, error) {
	if s == nil {
		return false, nil
	}
	if s.Place != nil {
		if err := g.Place(s.Place.Pos, s.Place.Digit); err != nil {
			return true, err
		}
		return true, nil
	}
	changed := false
	for _, e := range s.Eliminations {
		ch, err := g.Eliminate(e.Pos, e.Digit)
		changed = changed || ch
		if err != nil {
			return changed, err
		}
	}
	return changed, nil
}

// All returns one instance of every technique, ordered from easiest to
// hardest. The ordering is a correctness property: the solver relies on it
// to always report the simplest sufficient technique.
func All() []Technique {
	return []Technique{
		NakedSingle{},
		HiddenSingle{},
		NakedPair{},
		HiddenPair{},
		LockedCandidates{},
		NakedTriple{},
		HiddenTriple{},
		XWing{},
	}
}

// Fundamental returns only the singles techniques. This set stays stable
// as harder techniques get added and is the default for backtracking,
// where anything beyond singles costs more than it prunes.
func Fundamental() []Technique {
	return []Technique{NakedSingle{}, HiddenSingle{}}
}

// UpToTier filters All to techniques at or below max.
// StrategyNone yields the full list.
func UpToTier(max domain.StrategyTier) []Technique {
	if max == domain.StrategyNone {
		return All()
	}
	var out []Technique
	for _, t := range All() {
		if t.Tier() <= max {
			out = append(out, t)
		}
	}
	return out
}
