package technique

import (
	"github.com/gifnksm/numelace/internal/board"
	"github.com/gifnksm/numelace/internal/domain"
)

// NakedTriple finds three cells in a house whose candidates together span
// only three digits, and eliminates those digits from every other open
// cell in the house. Each of the three cells holds two or three of the
// digits; all three digits need not appear in every cell.
type NakedTriple struct{}

func (NakedTriple) Name() string              { return "Naked Triple" }
func (NakedTriple) Tier() domain.StrategyTier { return domain.StrategyAdvanced }

func (t NakedTriple) Find(g *board.Grid) (*Step, error) {
	for _, h := range board.Houses {
		for i := 0; i < board.HouseSize; i++ {
			pi := h.Cells[i]
			si := g.CandidatesAt(pi)
			if c := si.Count(); c < 2 || c > 3 {
				continue
			}
			for j := i + 1; j < board.HouseSize; j++ {
				pj := h.Cells[j]
				sj := g.CandidatesAt(pj)
				if c := sj.Count(); c < 2 || c > 3 {
					continue
				}
				sij := si.Union(sj)
				if sij.Count() > 3 {
					continue
				}
				for k := j + 1; k < board.HouseSize; k++ {
					pk := h.Cells[k]
					sk := g.CandidatesAt(pk)
					if c := sk.Count(); c < 2 || c > 3 {
						continue
					}
					triple := sij.Union(sk)
					if triple.Count() != 3 {
						continue
					}
					var elims []Elimination
					for _, p := range h.Cells {
						if p == pi || p == pj || p == pk {
							continue
						}
						for _, d := range g.CandidatesAt(p).Intersect(triple).Digits() {
							elims = append(elims, Elimination{Pos: p, Digit: d})
						}
					}
					if len(elims) == 0 {
						continue
					}
					return &Step{
						Technique:    t.Name(),
						Tier:         t.Tier(),
						Cells:        []board.Position{pi, pj, pk},
						Eliminations: elims,
					}, nil
				}
			}
		}
	}
	return nil, nil
}

func (t NakedTriple) Apply(g *board.Grid) (bool, error) {
	s, err := t.Find(g)
	if err != nil {
		return false, err
	}
	return s.apply(g)
}
