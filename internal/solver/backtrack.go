package solver

import (
	"github.com/gifnksm/numelace/internal/board"
)

// BacktrackSolver wraps a TechniqueSolver with depth-first search. Each
// branch runs techniques to a fixed point first, then guesses on the open
// cell with the fewest candidates. Branching clones the grid, so a dead
// branch is discarded by simply returning; there is no undo log. Recursion
// depth is bounded by the 81 cells.
type BacktrackSolver struct {
	techniques *TechniqueSolver
}

// NewBacktrackSolver builds a search solver over ts. A nil ts defaults to
// the fundamental singles solver, which propagates cheaply without the
// scan cost of the harder techniques.
func NewBacktrackSolver(ts *TechniqueSolver) *BacktrackSolver {
	if ts == nil {
		ts = Fundamental()
	}
	return &BacktrackSolver{techniques: ts}
}

// Solve returns the first full solution found by depth-first search,
// together with StatusSolved, or StatusUnsolvable when the search space is
// exhausted without one. The input grid is not mutated.
func (s *BacktrackSolver) Solve(g board.Grid) (board.Grid, Status) {
	var out board.Grid
	found := 0
	var nodes int
	s.search(g, 1, &found, &out, &nodes)
	if found == 0 {
		return board.Grid{}, StatusUnsolvable
	}
	return out, StatusSolved
}

// CountSolutions explores until limit distinct solutions are found or the
// space is exhausted, and returns the number found. The generator calls it
// with limit 2: "more than one" is all it needs to know.
func (s *BacktrackSolver) CountSolutions(g board.Grid, limit int) int {
	if limit <= 0 {
		return 0
	}
	found := 0
	var nodes int
	s.search(g, limit, &found, nil, &nodes)
	return found
}

// SolveStats is Solve plus the number of placements tried, for callers
// that report search effort.
func (s *BacktrackSolver) SolveStats(g board.Grid) (board.Grid, Status, int) {
	var out board.Grid
	found := 0
	var nodes int
	s.search(g, 1, &found, &out, &nodes)
	if found == 0 {
		return board.Grid{}, StatusUnsolvable, nodes
	}
	return out, StatusSolved, nodes
}

// search owns one cloned grid per invocation. It returns true when the
// solution quota is met and the whole search should unwind.
func (s *BacktrackSolver) search(g board.Grid, limit int, found *int, out *board.Grid, nodes *int) bool {
	res := s.techniques.Solve(&g)
	switch res.Status {
	case StatusContradiction:
		// Dead branch; the parent clone is untouched.
		return false
	case StatusSolved:
		*found++
		if *found == 1 && out != nil {
			*out = g
		}
		return *found >= limit
	}

	// Stalled: guess on the most constrained open cell to keep the
	// branching factor low. Ties break by position order, candidates are
	// tried ascending, so the search is fully deterministic.
	p, cands, ok := mostConstrainedCell(&g)
	if !ok {
		return false
	}
	for _, d := range cands.Digits() {
		child := g.Clone()
		*nodes++
		if err := child.Place(p, d); err != nil {
			continue
		}
		if s.search(child, limit, found, out, nodes) {
			return true
		}
	}
	return false
}

// mostConstrainedCell returns the open cell with the fewest candidates.
// ok is false when the grid has no usable open cell.
func mostConstrainedCell(g *board.Grid) (board.Position, board.NumberSet, bool) {
	var best board.Position
	var bestSet board.NumberSet
	bestCount := 10
	for i := 0; i < board.CellCount; i++ {
		p := board.PositionOf(i)
		if _, placed := g.DigitAt(p); placed {
			continue
		}
		cands := g.CandidatesAt(p)
		if n := cands.Count(); n > 0 && n < bestCount {
			best, bestSet, bestCount = p, cands, n
			if n == 2 {
				// A stalled grid has no singletons left; 2 is minimal.
				break
			}
		}
	}
	return best, bestSet, bestCount < 10
}
