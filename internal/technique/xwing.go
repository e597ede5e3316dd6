package technique

import (
	"github.com/gifnksm/numelace/internal/board"
	"github.com/gifnksm/numelace/internal/domain"
)

// XWing finds a digit confined to the same two columns in exactly two
// rows (or the transpose). The digit must occupy one corner per line, so
// it is eliminated from the rest of the two crossing lines. Rows are
// scanned before columns.
type XWing struct{}

func (XWing) Name() string              { return "X-Wing" }
func (XWing) Tier() domain.StrategyTier { return domain.StrategyXWing }

func (t XWing) Find(g *board.Grid) (*Step, error) {
	if s := t.find(g, true); s != nil {
		return s, nil
	}
	return t.find(g, false), nil
}

// find scans base lines (rows when baseRows, else columns) for the
// pattern and eliminates along the cover lines.
func (t XWing) find(g *board.Grid, baseRows bool) *Step {
	base := board.Houses[:board.GridSize]
	cover := board.Houses[board.GridSize : 2*board.GridSize]
	if !baseRows {
		base, cover = cover, base
	}

	for d := board.Digit(1); d <= 9; d++ {
		// Base lines where the digit has exactly two candidate cells.
		var masks [board.GridSize]uint16
		for i, h := range base {
			masks[i] = digitHouseMask(g, h, d)
		}
		for i := 0; i < board.GridSize; i++ {
			if countBits(masks[i]) != 2 {
				continue
			}
			for j := i + 1; j < board.GridSize; j++ {
				if masks[j] != masks[i] {
					continue
				}
				m := masks[i]
				c1, c2 := lowBit(m), lowBit(m&(m-1))
				corners := []board.Position{
					base[i].Cells[c1], base[i].Cells[c2],
					base[j].Cells[c1], base[j].Cells[c2],
				}
				var elims []Elimination
				for _, ci := range []int{c1, c2} {
					for k, p := range cover[ci].Cells {
						// Skip the corners themselves.
						if k == i || k == j {
							continue
						}
						if g.CandidatesAt(p).Contains(d) {
							elims = append(elims, Elimination{Pos: p, Digit: d})
						}
					}
				}
				if len(elims) == 0 {
					continue
				}
				return &Step{
					Technique:    t.Name(),
					Tier:         t.Tier(),
					Cells:        corners,
					Eliminations: elims,
				}
			}
		}
	}
	return nil
}

func (t XWing) Apply(g *board.Grid) (bool, error) {
	s, err := t.Find(g)
	if err != nil {
		return false, err
	}
	return s.apply(g)
}
