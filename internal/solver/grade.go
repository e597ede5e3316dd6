package solver

import (
	"github.com/gifnksm/numelace/internal/board"
	"github.com/gifnksm/numelace/internal/domain"
)

// Grade rates a puzzle by the hardest technique tier needed to finish it
// without guessing. Puzzles that stall even with every technique grade as
// Expert. The input grid is not mutated.
func Grade(g board.Grid) domain.Difficulty {
	tiers := []struct {
		max  domain.StrategyTier
		diff domain.Difficulty
	}{
		{domain.StrategySingles, domain.Easy},
		{domain.StrategyPairs, domain.Medium},
		{domain.StrategyAdvanced, domain.Hard},
		{domain.StrategyXWing, domain.Expert},
	}
	for _, tier := range tiers {
		work := g.Clone()
		if ForTier(tier.max).Solve(&work).Status == StatusSolved {
			return tier.diff
		}
	}
	return domain.Expert
}
