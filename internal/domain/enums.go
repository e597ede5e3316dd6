package domain

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "expert"
	}
}

// StrategyTier limits hinting/logic complexity used.
// Tiers order techniques from simplest to hardest; the solver always
// prefers the lowest tier that applies.
type StrategyTier int

const (
	// StrategyNone disables any tier cap. It is the zero value, so
	// zero-value requests are uncapped.
	StrategyNone StrategyTier = iota

	StrategySingles  // naked/hidden singles
	StrategyPairs    // naked/hidden pairs
	StrategyAdvanced // locked candidates and naked/hidden triples
	StrategyXWing    // basic fish
)

func (t StrategyTier) String() string {
	switch t {
	case StrategySingles:
		return "singles"
	case StrategyPairs:
		return "pairs"
	case StrategyAdvanced:
		return "advanced"
	case StrategyXWing:
		return "xwing"
	default:
		return "none"
	}
}

// SolveStatus tags the outcome of a solve request.
type SolveStatus int

const (
	// SolveSolved means a full valid grid was produced.
	SolveSolved SolveStatus = iota
	// SolveStalled means no available technique can progress; the grid may
	// still be consistent and solvable by search.
	SolveStalled
	// SolveUnsolvable means exhaustive search found no completion.
	SolveUnsolvable
	// SolveContradiction means the input already violates the rules.
	SolveContradiction
)

func (s SolveStatus) String() string {
	switch s {
	case SolveSolved:
		return "solved"
	case SolveStalled:
		return "stalled"
	case SolveUnsolvable:
		return "unsolvable"
	default:
		return "contradiction"
	}
}
