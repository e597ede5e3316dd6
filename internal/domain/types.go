package domain

// CellCount is the number of cells on a standard board.
const CellCount = 81

// Board carries 81 row-major cell values, 0 for empty. This is the wire
// shape shared by the HTTP adapter, the CLI, and storage; the engine's
// candidate grid is built from it on demand.
type Board struct {
	Cells [CellCount]uint8 `json:"cells"`
}

// CellCoord identifies a cell by zero-based row and column.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Placement is a concrete "put digit here" instruction.
type Placement struct {
	Cell  CellCoord `json:"cell"`
	Digit uint8     `json:"digit"`
}

// Elimination removes one candidate digit from one cell.
type Elimination struct {
	Cell  CellCoord `json:"cell"`
	Digit uint8     `json:"digit"`
}

// Hint describes the next logical step for the UI: which technique fires,
// the cells that justify it, and the concrete change it makes.
type Hint struct {
	Technique    string        `json:"technique"`
	Strategy     StrategyTier  `json:"strategy"`
	Message      string        `json:"message,omitempty"`
	Cells        []CellCoord   `json:"cells,omitempty"`
	Placement    *Placement    `json:"placement,omitempty"`
	Eliminations []Elimination `json:"eliminations,omitempty"`
}

// SolveResult is the boundary outcome of a solve request.
type SolveResult struct {
	Status SolveStatus `json:"status"`
	// Grid is the full solution when solved, or the partial progress when
	// stalled.
	Grid Board `json:"grid"`
	// Techniques counts how often each technique fired, by name.
	Techniques map[string]int `json:"techniques,omitempty"`
	// Contradiction is set when Status is SolveContradiction.
	Contradiction *CellCoord `json:"contradiction,omitempty"`
}

// GenerateRequest parameterizes puzzle generation. The same seed and
// parameters always reproduce the same puzzle.
type GenerateRequest struct {
	Seed        int64 `json:"seed"`
	TargetClues int   `json:"targetClues"`
	// MaxTier, when not StrategyNone (the zero value), requires the
	// generated puzzle to be solvable by techniques up to that tier
	// without guessing.
	MaxTier StrategyTier `json:"maxTier"`
	// MaxRemovalAttempts caps the reduce phase; 0 means one pass over all
	// cells.
	MaxRemovalAttempts int `json:"maxRemovalAttempts,omitempty"`
}

// Puzzle is an immutable generated puzzle: the givens shown to the player
// and their unique solution.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Name       string     `json:"name,omitempty"`
	Seed       int64      `json:"seed"`
	Difficulty Difficulty `json:"difficulty"`
	Clues      int        `json:"clues"`
	Givens     Board      `json:"givens"`
	Solution   Board      `json:"solution"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Clues      int        `json:"clues"`
	CreatedAt  int64      `json:"createdAt"`
}
