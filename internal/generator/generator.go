// Package generator creates puzzles by filling a full solution from a
// seeded source of randomness and then carving givens back out while the
// remainder keeps exactly one solution. Identical requests produce
// identical puzzles.
package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/gifnksm/numelace/internal/board"
	"github.com/gifnksm/numelace/internal/domain"
	"github.com/gifnksm/numelace/internal/ports"
	"github.com/gifnksm/numelace/internal/solver"
)

// UniqueGenerator implements ports.Generator. Uniqueness is re-checked
// after every tentative removal, so the result is uniquely solvable by
// construction.
type UniqueGenerator struct {
	backtrack *solver.BacktrackSolver
}

// NewUniqueGenerator wires a generator with its own search solver.
func NewUniqueGenerator() *UniqueGenerator {
	return &UniqueGenerator{backtrack: solver.NewBacktrackSolver(nil)}
}

// Generate builds a puzzle for req. The returned puzzle has no ID or
// creation time; those belong to storage. Stats.Nodes counts the removal
// attempts of the reduce phase.
func (g *UniqueGenerator) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	req, err := normalize(req)
	if err != nil {
		return nil, ports.Stats{}, err
	}

	rng := rand.New(rand.NewSource(req.Seed))
	solution, ok := fill(ctx, rng, board.New())
	if !ok {
		return nil, ports.Stats{Duration: time.Since(start)}, ctx.Err()
	}

	givens := solution.Digits()
	attempts, err := g.reduce(ctx, rng, &givens, req)
	if err != nil {
		return nil, ports.Stats{Nodes: attempts, Duration: time.Since(start)}, err
	}

	grid, err := board.FromGivens(givens)
	if err != nil {
		return nil, ports.Stats{Nodes: attempts, Duration: time.Since(start)}, err
	}
	p := &domain.Puzzle{
		Seed:       req.Seed,
		Difficulty: solver.Grade(grid),
		Clues:      grid.PlacedCount(),
		Givens:     domain.Board{Cells: grid.Bytes()},
		Solution:   domain.Board{Cells: solution.Bytes()},
	}
	return p, ports.Stats{Nodes: attempts, Duration: time.Since(start)}, nil
}

// reduce clears givens in a seeded random order, keeping each removal only
// when the puzzle still has exactly one solution and, when a tier cap is
// set, still solves without guessing at that tier. It returns the number
// of removal attempts made.
func (g *UniqueGenerator) reduce(ctx context.Context, rng *rand.Rand, givens *[board.CellCount]board.Digit, req domain.GenerateRequest) (int, error) {
	clues := board.CellCount
	attempts := 0
	for _, i := range rng.Perm(board.CellCount) {
		if clues <= req.TargetClues || attempts >= req.MaxRemovalAttempts {
			break
		}
		if err := ctx.Err(); err != nil {
			return attempts, err
		}
		attempts++

		kept := givens[i]
		givens[i] = 0
		if g.removable(*givens, req.MaxTier) {
			clues--
			continue
		}
		givens[i] = kept
	}
	return attempts, nil
}

// removable reports whether the puzzle defined by givens is still uniquely
// solvable, and solvable without guessing at maxTier when one is set.
func (g *UniqueGenerator) removable(givens [board.CellCount]board.Digit, maxTier domain.StrategyTier) bool {
	grid, err := board.FromGivens(givens)
	if err != nil {
		return false
	}
	if g.backtrack.CountSolutions(grid, 2) != 1 {
		return false
	}
	if maxTier != domain.StrategyNone {
		if solver.ForTier(maxTier).Solve(&grid).Status != solver.StatusSolved {
			return false
		}
	}
	return true
}

// fill completes the grid by depth-first search over the first open cell,
// trying its candidates in seeded random order. Branches clone the grid,
// matching how the search solver backtracks.
func fill(ctx context.Context, rng *rand.Rand, g board.Grid) (board.Grid, bool) {
	if ctx.Err() != nil {
		return board.Grid{}, false
	}
	if g.IsComplete() {
		return g, true
	}
	var p board.Position
	found := false
	for i := 0; i < board.CellCount && !found; i++ {
		p = board.PositionOf(i)
		_, placed := g.DigitAt(p)
		found = !placed
	}
	if !found {
		return board.Grid{}, false
	}

	digits := g.CandidatesAt(p).Digits()
	rng.Shuffle(len(digits), func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })
	for _, d := range digits {
		child := g.Clone()
		if err := child.Place(p, d); err != nil {
			continue
		}
		if full, ok := fill(ctx, rng, child); ok {
			return full, true
		}
	}
	return board.Grid{}, false
}
