package ports

import (
	"context"
	"time"

	"github.com/gifnksm/numelace/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver solves a board and can count solutions for uniqueness checks.
// Solve finishes with search when logic stalls; SolveWithTechniques stops
// at the stall instead and reports it, which is what hint-style callers
// want.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.SolveResult, Stats, error)
	SolveWithTechniques(ctx context.Context, b *domain.Board, max domain.StrategyTier) (*domain.SolveResult, Stats, error)
	CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, Stats, error)
}

// Generator creates new puzzles from an explicit seed and target clue count.
type Generator interface {
	Generate(ctx context.Context, req domain.GenerateRequest) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box duplicates).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error)
}

// Grader rates how hard a puzzle is to solve without guessing.
type Grader interface {
	Grade(ctx context.Context, b *domain.Board) (domain.Difficulty, error)
}

// Storage persists and retrieves generated puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
