package technique

import (
	"github.com/gifnksm/numelace/internal/board"
	"github.com/gifnksm/numelace/internal/domain"
)

// NakedPair finds two cells in a house whose candidate sets are the same
// two digits, and eliminates those digits from every other open cell in
// the house. Only pairs that actually eliminate something count as
// applicable.
type NakedPair struct{}

func (NakedPair) Name() string              { return "Naked Pair" }
func (NakedPair) Tier() domain.StrategyTier { return domain.StrategyPairs }

func (t NakedPair) Find(g *board.Grid) (*Step, error) {
	for _, h := range board.Houses {
		for i := 0; i < board.HouseSize; i++ {
			pi := h.Cells[i]
			si := g.CandidatesAt(pi)
			if si.Count() != 2 {
				continue
			}
			for j := i + 1; j < board.HouseSize; j++ {
				pj := h.Cells[j]
				if g.CandidatesAt(pj) != si {
					continue
				}
				var elims []Elimination
				for _, p := range h.Cells {
					if p == pi || p == pj {
						continue
					}
					for _, d := range g.CandidatesAt(p).Intersect(si).Digits() {
						elims = append(elims, Elimination{Pos: p, Digit: d})
					}
				}
				if len(elims) == 0 {
					continue
				}
				return &Step{
					Technique:    t.Name(),
					Tier:         t.Tier(),
					Cells:        []board.Position{pi, pj},
					Eliminations: elims,
				}, nil
			}
		}
	}
	return nil, nil
}

func (t NakedPair) Apply(g *board.Grid) (bool, error) {
	s, err := t.Find(g)
	if err != nil {
		return false, err
	}
	return s.apply(g)
}
