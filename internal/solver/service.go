package solver

import (
	"context"
	"errors"
	"time"

	"github.com/gifnksm/numelace/internal/board"
	"github.com/gifnksm/numelace/internal/domain"
	"github.com/gifnksm/numelace/internal/ports"
)

// Service adapts the engine solvers to the boundary types of ports.Solver
// and ports.Grader. It holds no board state between calls.
type Service struct {
	backtrack *BacktrackSolver
}

// NewService wires a boundary solver service.
func NewService() *Service {
	return &Service{backtrack: NewBacktrackSolver(nil)}
}

// Solve runs techniques to a fixed point and finishes with search. The
// outcome is Solved, Unsolvable, or Contradiction; a mere stall is not
// terminal here because search takes over.
func (s *Service) Solve(ctx context.Context, b *domain.Board) (*domain.SolveResult, ports.Stats, error) {
	start := time.Now()
	grid, err := board.FromBytes(b.Cells)
	if err != nil {
		return contradictionResult(b, err), ports.Stats{Duration: time.Since(start)}, nil
	}

	ts := WithAllTechniques()
	work := grid.Clone()
	res := ts.Solve(&work)
	out := &domain.SolveResult{
		Grid:       domain.Board{Cells: work.Bytes()},
		Techniques: applicationsByName(ts, res),
	}
	switch res.Status {
	case StatusSolved:
		out.Status = domain.SolveSolved
		return out, ports.Stats{Duration: time.Since(start)}, nil
	case StatusContradiction:
		out.Status = domain.SolveContradiction
		out.Contradiction = coordOf(res.Contradiction)
		return out, ports.Stats{Duration: time.Since(start)}, nil
	}

	solved, status, nodes := s.backtrack.SolveStats(work)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if status != StatusSolved {
		out.Status = domain.SolveUnsolvable
		return out, st, ctx.Err()
	}
	out.Status = domain.SolveSolved
	out.Grid = domain.Board{Cells: solved.Bytes()}
	return out, st, ctx.Err()
}

// SolveWithTechniques runs only techniques up to max and stops at a stall,
// reporting the partial grid and which techniques fired.
func (s *Service) SolveWithTechniques(ctx context.Context, b *domain.Board, max domain.StrategyTier) (*domain.SolveResult, ports.Stats, error) {
	start := time.Now()
	grid, err := board.FromBytes(b.Cells)
	if err != nil {
		return contradictionResult(b, err), ports.Stats{Duration: time.Since(start)}, nil
	}

	ts := ForTier(max)
	res := ts.Solve(&grid)
	out := &domain.SolveResult{
		Grid:       domain.Board{Cells: grid.Bytes()},
		Techniques: applicationsByName(ts, res),
	}
	switch res.Status {
	case StatusSolved:
		out.Status = domain.SolveSolved
	case StatusStalled:
		out.Status = domain.SolveStalled
	default:
		out.Status = domain.SolveContradiction
		out.Contradiction = coordOf(res.Contradiction)
	}
	return out, ports.Stats{Duration: time.Since(start)}, ctx.Err()
}

// CountSolutions counts completions of b up to limit.
func (s *Service) CountSolutions(ctx context.Context, b *domain.Board, limit int) (int, ports.Stats, error) {
	start := time.Now()
	grid, err := board.FromBytes(b.Cells)
	if err != nil {
		// An inconsistent grid has no solutions; that is an answer, not an
		// error, and must stay distinct from "rule violation" reporting
		// done by the validator.
		if errors.Is(err, board.ErrContradiction) {
			return 0, ports.Stats{Duration: time.Since(start)}, nil
		}
		return 0, ports.Stats{Duration: time.Since(start)}, err
	}
	n := s.backtrack.CountSolutions(grid, limit)
	return n, ports.Stats{Duration: time.Since(start)}, ctx.Err()
}

// Grade implements ports.Grader.
func (s *Service) Grade(ctx context.Context, b *domain.Board) (domain.Difficulty, error) {
	grid, err := board.FromBytes(b.Cells)
	if err != nil {
		return 0, err
	}
	return Grade(grid), ctx.Err()
}

func contradictionResult(b *domain.Board, err error) *domain.SolveResult {
	out := &domain.SolveResult{Status: domain.SolveContradiction, Grid: *b}
	var ce *board.ContradictionError
	if errors.As(err, &ce) {
		pos := ce.Pos
		out.Contradiction = &domain.CellCoord{Row: pos.Row, Col: pos.Col}
	}
	return out
}

func coordOf(p *board.Position) *domain.CellCoord {
	if p == nil {
		return nil
	}
	return &domain.CellCoord{Row: p.Row, Col: p.Col}
}

func applicationsByName(ts *TechniqueSolver, res Result) map[string]int {
	out := make(map[string]int)
	for i, t := range ts.Techniques() {
		if res.Applications[i] > 0 {
			out[t.Name()] = res.Applications[i]
		}
	}
	return out
}
