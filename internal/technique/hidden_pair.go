package technique

import (
	"github.com/gifnksm/numelace/internal/board"
	"github.com/gifnksm/numelace/internal/domain"
)

// HiddenPair finds two digits that, within one house, are candidates in
// exactly the same two cells. Those two cells can hold nothing else, so
// every other candidate is eliminated from them.
type HiddenPair struct{}

func (HiddenPair) Name() string              { return "Hidden Pair" }
func (HiddenPair) Tier() domain.StrategyTier { return domain.StrategyPairs }

func (t HiddenPair) Find(g *board.Grid) (*Step, error) {
	for _, h := range board.Houses {
		// cellMask[d-1] has bit i set when house cell i holds candidate d.
		var cellMask [9]uint16
		for i, p := range h.Cells {
			for _, d := range g.CandidatesAt(p).Digits() {
				cellMask[d-1] |= 1 << i
			}
		}
		for d1 := board.Digit(1); d1 <= 8; d1++ {
			m1 := cellMask[d1-1]
			if countBits(m1) != 2 {
				continue
			}
			for d2 := d1 + 1; d2 <= 9; d2++ {
				if cellMask[d2-1] != m1 {
					continue
				}
				pair := board.SetOf(d1, d2)
				cells := maskPositions(h, m1)
				var elims []Elimination
				for _, p := range cells {
					for _, d := range g.CandidatesAt(p).Difference(pair).Digits() {
						elims = append(elims, Elimination{Pos: p, Digit: d})
					}
				}
				if len(elims) == 0 {
					continue
				}
				return &Step{
					Technique:    t.Name(),
					Tier:         t.Tier(),
					Cells:        cells,
					Eliminations: elims,
				}, nil
			}
		}
	}
	return nil, nil
}

func (t HiddenPair) Apply(g *board.Grid) (bool, error) {
	s, err := t.Find(g)
	if err != nil {
		return false, err
	}
	return s.apply(g)
}
