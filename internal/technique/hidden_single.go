package technique

import (
	"github.com/gifnksm/numelace/internal/board"
	"github.com/gifnksm/numelace/internal/domain"
)

// HiddenSingle places a digit that appears in the candidate set of exactly
// one cell within a house. Houses are scanned in fixed order (rows, then
// columns, then boxes), digits ascending; only the first find is applied
// per call.
type HiddenSingle struct{}

func (HiddenSingle) Name() string              { return "Hidden Single" }
func (HiddenSingle) Tier() domain.StrategyTier { return domain.StrategySingles }

func (t HiddenSingle) Find(g *board.Grid) (*Step, error) {
	for _, h := range board.Houses {
		var placed board.NumberSet
		for _, p := range h.Cells {
			if d, ok := g.DigitAt(p); ok {
				placed.Insert(d)
			}
		}
		for d := board.Digit(1); d <= 9; d++ {
			if placed.Contains(d) {
				continue
			}
			var only board.Position
			count := 0
			for _, p := range h.Cells {
				if g.CandidatesAt(p).Contains(d) {
					only = p
					count++
					if count > 1 {
						break
					}
				}
			}
			if count != 1 {
				continue
			}
			return &Step{
				Technique: t.Name(),
				Tier:      t.Tier(),
				Cells:     housePositions(h),
				Place:     &Placement{Pos: only, Digit: d},
			}, nil
		}
	}
	return nil, nil
}

func (t HiddenSingle) Apply(g *board.Grid) (bool, error) {
	s, err := t.Find(g)
	if err != nil {
		return false, err
	}
	return s.apply(g)
}

func housePositions(h board.House) []board.Position {
	out := make([]board.Position, board.HouseSize)
	copy(out, h.Cells[:])
	return out
}
