package technique

import (
	"github.com/gifnksm/numelace/internal/board"
	"github.com/gifnksm/numelace/internal/domain"
)

// HiddenTriple finds three digits that, within one house, are candidates
// in the same three cells only. Those cells can hold nothing but the
// triple, so every other candidate is eliminated from them. A digit of
// the triple may be missing from some of the three cells.
type HiddenTriple struct{}

func (HiddenTriple) Name() string              { return "Hidden Triple" }
func (HiddenTriple) Tier() domain.StrategyTier { return domain.StrategyAdvanced }

func (t HiddenTriple) Find(g *board.Grid) (*Step, error) {
	for _, h := range board.Houses {
		// cellMask[d-1] has bit i set when house cell i holds candidate d.
		var cellMask [9]uint16
		for i, p := range h.Cells {
			for _, d := range g.CandidatesAt(p).Digits() {
				cellMask[d-1] |= 1 << i
			}
		}
		for d1 := board.Digit(1); d1 <= 7; d1++ {
			m1 := cellMask[d1-1]
			if m1 == 0 || countBits(m1) > 3 {
				continue
			}
			for d2 := d1 + 1; d2 <= 8; d2++ {
				m2 := cellMask[d2-1]
				if m2 == 0 {
					continue
				}
				m12 := m1 | m2
				if countBits(m12) > 3 {
					continue
				}
				for d3 := d2 + 1; d3 <= 9; d3++ {
					m3 := cellMask[d3-1]
					if m3 == 0 {
						continue
					}
					m := m12 | m3
					if countBits(m) != 3 {
						continue
					}
					triple := board.SetOf(d1, d2, d3)
					cells := maskPositions(h, m)
					var elims []Elimination
					for _, p := range cells {
						for _, d := range g.CandidatesAt(p).Difference(triple).Digits() {
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
	}
	return nil, nil
}

func (t HiddenTriple) Apply(g *board.Grid) (bool, error) {
	s, err := t.Find(g)
	if err != nil {
		return false, err
	}
	return s.apply(g)
}
