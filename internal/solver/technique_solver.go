// Package solver drives techniques to a fixed point and falls back to
// guided backtracking search when logic alone stalls.
package solver

import (
	"errors"

	"github.com/gifnksm/numelace/internal/board"
	"github.com/gifnksm/numelace/internal/domain"
	"github.com/gifnksm/numelace/internal/technique"
)

// Status classifies the outcome of a solving run.
type Status int

const (
	// StatusSolved means the grid is complete and valid.
	StatusSolved Status = iota
	// StatusStalled means no configured technique applies and the grid is
	// incomplete. A stall is expected and meaningful, not an error.
	StatusStalled
	// StatusUnsolvable means exhaustive search found no completion.
	StatusUnsolvable
	// StatusContradiction means the grid violates its invariants.
	StatusContradiction
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusStalled:
		return "stalled"
	case StatusUnsolvable:
		return "unsolvable"
	default:
		return "contradiction"
	}
}

// Result reports a technique-solving run: the terminal status, how often
// each technique fired (aligned with Techniques()), and the contradiction
// cell when there is one.
type Result struct {
	Status        Status
	Steps         int
	Applications  []int
	LastTechnique string
	Contradiction *board.Position
}

// TechniqueSolver applies an ordered technique list to a fixed point.
// Ordering encodes difficulty: after every unit of progress the solver
// restarts from the first technique, so a harder technique only ever runs
// when no simpler one applies.
type TechniqueSolver struct {
	techniques []technique.Technique
}

// NewTechniqueSolver builds a solver over the given techniques, applied in
// the given order.
func NewTechniqueSolver(ts ...technique.Technique) *TechniqueSolver {
	return &TechniqueSolver{techniques: ts}
}

// Fundamental returns a solver with only the singles techniques.
func Fundamental() *TechniqueSolver {
	return NewTechniqueSolver(technique.Fundamental()...)
}

// WithAllTechniques returns a solver with every available technique,
// easiest first.
func WithAllTechniques() *TechniqueSolver {
	return NewTechniqueSolver(technique.All()...)
}

// ForTier returns a solver restricted to techniques at or below max.
func ForTier(max domain.StrategyTier) *TechniqueSolver {
	return NewTechniqueSolver(technique.UpToTier(max)...)
}

// Techniques returns the configured techniques in application order. The
// slice defines the index mapping of Result.Applications.
func (s *TechniqueSolver) Techniques() []technique.Technique { return s.techniques }

// NewResult returns a Result aligned with this solver's technique order.
func (s *TechniqueSolver) NewResult() Result {
	return Result{Applications: make([]int, len(s.techniques))}
}

// Step tries each technique in order and applies the first that makes
// progress. It returns false when no technique applies (the solver is
// stalled) and an error when a technique detects a contradiction.
func (s *TechniqueSolver) Step(g *board.Grid, r *Result) (bool, error) {
	for i, t := range s.techniques {
		changed, err := t.Apply(g)
		if err != nil {
			return false, err
		}
		if changed {
			r.Applications[i]++
			r.Steps++
			r.LastTechnique = t.Name()
			return true, nil
		}
	}
	return false, nil
}

// Solve drives Step until the grid is complete, no technique applies, or a
// contradiction surfaces. A contradiction halts immediately; the solver
// never keeps applying techniques to an inconsistent board.
func (s *TechniqueSolver) Solve(g *board.Grid) Result {
	r := s.NewResult()
	for {
		if g.IsComplete() {
			r.Status = StatusSolved
			return r
		}
		progress, err := s.Step(g, &r)
		if err != nil {
			r.Status = StatusContradiction
			var ce *board.ContradictionError
			if errors.As(err, &ce) {
				pos := ce.Pos
				r.Contradiction = &pos
			}
			return r
		}
		if !progress {
			r.Status = StatusStalled
			return r
		}
	}
}

// FindStep returns the step the next Solve iteration would perform,
// without mutating the grid. A nil step means the solver is stalled.
func (s *TechniqueSolver) FindStep(g *board.Grid) (*technique.Step, error) {
	for _, t := range s.techniques {
		step, err := t.Find(g)
		if err != nil {
			return nil, err
		}
		if step != nil {
			return step, nil
		}
	}
	return nil, nil
}
