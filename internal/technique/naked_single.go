package technique

import (
	"github.com/gifnksm/numelace/internal/board"
	"github.com/gifnksm/numelace/internal/domain"
)

// NakedSingle places the digit of the first open cell whose candidate set
// is a singleton. Cells are scanned in fixed index order and only the
// first find is applied per call.
//
// This is also where empty candidate sets surface: a cell with no
// candidates left is reported as a contradiction instead of being skipped.
type NakedSingle struct{}

func (NakedSingle) Name() string              { return "Naked Single" }
func (NakedSingle) Tier() domain.StrategyTier { return domain.StrategySingles }

func (t NakedSingle) Find(g *board.Grid) (*Step, error) {
	for i := 0; i < board.CellCount; i++ {
		p := board.PositionOf(i)
		if _, ok := g.DigitAt(p); ok {
			continue
		}
		cands := g.CandidatesAt(p)
		if cands.IsEmpty() {
			return nil, &board.ContradictionError{Pos: p}
		}
		if d, ok := cands.Single(); ok {
			return &Step{
				Technique: t.Name(),
				Tier:      t.Tier(),
				Cells:     []board.Position{p},
				Place:     &Placement{Pos: p, Digit: d},
			}, nil
		}
	}
	return nil, nil
}

func (t NakedSingle) Apply(g *board.Grid) (bool, error) {
	s, err := t.Find(g)
	if err != nil {
		return false, err
	}
	return s.apply(g)
}
