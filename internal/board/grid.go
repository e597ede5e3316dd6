package board

import "fmt"

// Cell is either a placed digit or an open set of candidate digits.
// An open cell's candidates are exactly the digits not yet excluded by a
// placed peer; the grid maintains this incrementally.
type Cell struct {
	digit Digit     // 0 while open
	cands NumberSet // empty once placed
}

// Placed returns the cell's digit when it has been placed.
func (c Cell) Placed() (Digit, bool) { return c.digit, c.digit != 0 }

// Candidates returns the cell's candidate set. Placed cells report the
// empty set.
func (c Cell) Candidates() NumberSet { return c.cands }

// Grid is the 81-cell candidate board. It is a plain value: cloning is a
// bulk copy with no heap indirection, which is what lets the backtracking
// solver branch by copying instead of keeping an undo log.
type Grid struct {
	cells  [CellCount]Cell
	placed int
}

// New returns an empty grid with every digit open in every cell.
func New() Grid {
	var g Grid
	for i := range g.cells {
		g.cells[i].cands = FullSet
	}
	return g
}

// FromGivens builds a grid from 81 row-major cells (0 = empty),
// propagating each given against its peers. It fails with a
// ContradictionError when two givens collide in a shared house or when
// propagation empties an open cell's candidate set.
func FromGivens(givens [CellCount]Digit) (Grid, error) {
	g := New()
	for i, d := range givens {
		if d == 0 {
			continue
		}
		if !d.Valid() {
			return g, fmt.Errorf("%w: got %d at %s", ErrInvalidDigit, d, PositionOf(i))
		}
		if err := g.Place(PositionOf(i), d); err != nil {
			return g, err
		}
	}
	return g, nil
}

// Cell returns the cell at p.
func (g *Grid) Cell(p Position) Cell { return g.cells[p.Index()] }

// DigitAt returns the placed digit at p, if any.
func (g *Grid) DigitAt(p Position) (Digit, bool) { return g.cells[p.Index()].Placed() }

// CandidatesAt returns the candidate set of the cell at p.
// Placed cells report the empty set.
func (g *Grid) CandidatesAt(p Position) NumberSet { return g.cells[p.Index()].cands }

// Place puts d at p and removes d from the candidate sets of all open
// peers. The cell must be open and d must still be one of its candidates;
// anything else is a contradiction, never a silent correction. If
// propagation empties a peer's candidate set, the mutation stays applied
// and a ContradictionError for that peer is returned.
func (g *Grid) Place(p Position, d Digit) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidPosition, p)
	}
	if !d.Valid() {
		return fmt.Errorf("%w: got %d", ErrInvalidDigit, d)
	}
	c := &g.cells[p.Index()]
	if c.digit != 0 {
		return &ContradictionError{Pos: p}
	}
	if !c.cands.Contains(d) {
		return &ContradictionError{Pos: p}
	}
	c.digit = d
	c.cands = 0
	g.placed++

	var emptied *Position
	for _, q := range Peers(p) {
		pc := &g.cells[q.Index()]
		if pc.digit != 0 || !pc.cands.Contains(d) {
			continue
		}
		pc.cands.Remove(d)
		if pc.cands.IsEmpty() && emptied == nil {
			q := q
			emptied = &q
		}
	}
	if emptied != nil {
		return &ContradictionError{Pos: *emptied}
	}
	return nil
}

// Eliminate removes d from the candidate set of the open cell at p.
// It returns true when the set changed, false when d was already absent or
// the cell is placed (both no-ops, not errors). Emptying the set returns a
// ContradictionError with the removal still applied.
func (g *Grid) Eliminate(p Position, d Digit) (bool, error) {
	if !p.Valid() {
		return false, fmt.Errorf("%w: %v", ErrInvalidPosition, p)
	}
	c := &g.cells[p.Index()]
	if c.digit != 0 || !c.cands.Contains(d) {
		return false, nil
	}
	c.cands.Remove(d)
	if c.cands.IsEmpty() {
		return true, &ContradictionError{Pos: p}
	}
	return true, nil
}

// IsConsistent reports whether every open cell still has at least one
// candidate. Callers must check it (or the error of the last mutation)
// before trusting the grid after speculative work.
func (g *Grid) IsConsistent() bool {
	for i := range g.cells {
		if g.cells[i].digit == 0 && g.cells[i].cands.IsEmpty() {
			return false
		}
	}
	return true
}

// IsComplete reports whether all 81 cells are placed.
func (g *Grid) IsComplete() bool { return g.placed == CellCount }

// PlacedCount returns the number of placed cells.
func (g *Grid) PlacedCount() int { return g.placed }

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() Grid { return *g }

// Digits returns the 81 placed digits in row-major order, 0 for open cells.
func (g *Grid) Digits() [CellCount]Digit {
	var out [CellCount]Digit
	for i := range g.cells {
		out[i] = g.cells[i].digit
	}
	return out
}

// FromBytes builds a grid from raw boundary cells (0 = empty), with the
// same semantics as FromGivens.
func FromBytes(cells [CellCount]uint8) (Grid, error) {
	var givens [CellCount]Digit
	for i, v := range cells {
		givens[i] = Digit(v)
	}
	return FromGivens(givens)
}

// Bytes returns the placed digits as raw boundary cells, 0 for open cells.
func (g *Grid) Bytes() [CellCount]uint8 {
	var out [CellCount]uint8
	for i := range g.cells {
		out[i] = uint8(g.cells[i].digit)
	}
	return out
}
