package technique

import (
	"github.com/gifnksm/numelace/internal/board"
	"github.com/gifnksm/numelace/internal/domain"
)

// LockedCandidates covers both directions of the box/line interaction:
//
//   - pointing: within a box, all candidates for a digit sit on one row or
//     column, so the digit cannot appear elsewhere on that line;
//   - claiming: within a row or column, all candidates for a digit sit in
//     one box, so the digit cannot appear elsewhere in that box.
//
// Boxes are scanned first (pointing), then rows and columns (claiming).
type LockedCandidates struct{}

func (LockedCandidates) Name() string              { return "Locked Candidates" }
func (LockedCandidates) Tier() domain.StrategyTier { return domain.StrategyAdvanced }

func (t LockedCandidates) Find(g *board.Grid) (*Step, error) {
	if s := t.findPointing(g); s != nil {
		return s, nil
	}
	return t.findClaiming(g), nil
}

func (t LockedCandidates) findPointing(g *board.Grid) *Step {
	for _, h := range board.Houses {
		if h.Kind != board.HouseBox {
			continue
		}
		for d := board.Digit(1); d <= 9; d++ {
			m := digitHouseMask(g, h, d)
			if n := countBits(m); n < 2 || n > 3 {
				continue
			}
			cells := maskPositions(h, m)
			if row, ok := sameRow(cells); ok {
				if s := t.lineStep(g, cells, d, board.Houses[row], h.Index); s != nil {
					return s
				}
			}
			if col, ok := sameCol(cells); ok {
				if s := t.lineStep(g, cells, d, board.Houses[board.GridSize+col], h.Index); s != nil {
					return s
				}
			}
		}
	}
	return nil
}

func (t LockedCandidates) findClaiming(g *board.Grid) *Step {
	for _, h := range board.Houses {
		if h.Kind == board.HouseBox {
			continue
		}
		for d := board.Digit(1); d <= 9; d++ {
			m := digitHouseMask(g, h, d)
			if n := countBits(m); n < 2 || n > 3 {
				continue
			}
			cells := maskPositions(h, m)
			box, ok := sameBox(cells)
			if !ok {
				continue
			}
			var elims []Elimination
			for _, p := range board.Houses[2*board.GridSize+box].Cells {
				if onLine(p, h) || !g.CandidatesAt(p).Contains(d) {
					continue
				}
				elims = append(elims, Elimination{Pos: p, Digit: d})
			}
			if len(elims) == 0 {
				continue
			}
			return &Step{
				Technique:    t.Name(),
				Tier:         t.Tier(),
				Cells:        cells,
				Eliminations: elims,
			}
		}
	}
	return nil
}

// lineStep eliminates d from the line outside the given box.
func (t LockedCandidates) lineStep(g *board.Grid, cells []board.Position, d board.Digit, line board.House, box int) *Step {
	var elims []Elimination
	for _, p := range line.Cells {
		if p.Box() == box || !g.CandidatesAt(p).Contains(d) {
			continue
		}
		elims = append(elims, Elimination{Pos: p, Digit: d})
	}
	if len(elims) == 0 {
		return nil
	}
	return &Step{
		Technique:    t.Name(),
		Tier:         t.Tier(),
		Cells:        cells,
		Eliminations: elims,
	}
}

func (t LockedCandidates) Apply(g *board.Grid) (bool, error) {
	s, err := t.Find(g)
	if err != nil {
		return false, err
	}
	return s.apply(g)
}

func sameRow(cells []board.Position) (int, bool) {
	for _, p := range cells[1:] {
		if p.Row != cells[0].Row {
			return 0, false
		}
	}
	return cells[0].Row, true
}

func sameCol(cells []board.Position) (int, bool) {
	for _, p := range cells[1:] {
		if p.Col != cells[0].Col {
			return 0, false
		}
	}
	return cells[0].Col, true
}

func sameBox(cells []board.Position) (int, bool) {
	for _, p := range cells[1:] {
		if p.Box() != cells[0].Box() {
			return 0, false
		}
	}
	return cells[0].Box(), true
}

func onLine(p board.Position, line board.House) bool {
	if line.Kind == board.HouseRow {
		return p.Row == line.Index
	}
	return p.Col == line.Index
}
