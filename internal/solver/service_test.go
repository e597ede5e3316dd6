package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gifnksm/numelace/internal/domain"
)

func boardOf(t *testing.T, s string) *domain.Board {
	t.Helper()
	require.Len(t, s, domain.CellCount)
	var b domain.Board
	for i, ch := range s {
		if ch == '.' || ch == '0' {
			continue
		}
		require.True(t, ch >= '1' && ch <= '9', "bad cell %q", ch)
		b.Cells[i] = uint8(ch - '0')
	}
	return &b
}

func TestService_Solve(t *testing.T) {
	svc := NewService()
	res, stats, err := svc.Solve(context.Background(), boardOf(t, samplePuzzle))
	require.NoError(t, err)

	assert.Equal(t, domain.SolveSolved, res.Status)
	assert.Equal(t, boardOf(t, sampleSolution).Cells, res.Grid.Cells)
	assert.NotEmpty(t, res.Techniques)
	assert.GreaterOrEqual(t, stats.Duration, time.Duration(0))
}

func TestService_Solve_SearchTakesOver(t *testing.T) {
	svc := NewService()
	res, stats, err := svc.Solve(context.Background(), boardOf(t, expertPuzzle))
	require.NoError(t, err)

	assert.Equal(t, domain.SolveSolved, res.Status)
	assert.Equal(t, boardOf(t, expertSolution).Cells, res.Grid.Cells)
	assert.Greater(t, stats.Nodes, 0)
}

func TestService_Solve_Contradiction(t *testing.T) {
	b := boardOf(t, samplePuzzle)
	b.Cells[1] = 5 // duplicate of the 5 at r1c1

	res, _, err := NewService().Solve(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, domain.SolveContradiction, res.Status)
	require.NotNil(t, res.Contradiction)
}

func TestService_SolveWithTechniques(t *testing.T) {
	svc := NewService()
	b := boardOf(t, mediumPuzzle)

	res, _, err := svc.SolveWithTechniques(context.Background(), b, domain.StrategySingles)
	require.NoError(t, err)
	assert.Equal(t, domain.SolveStalled, res.Status)

	res, _, err = svc.SolveWithTechniques(context.Background(), b, domain.StrategyPairs)
	require.NoError(t, err)
	assert.Equal(t, domain.SolveSolved, res.Status)
	assert.Contains(t, res.Techniques, "Naked Single")
}

func TestService_CountSolutions(t *testing.T) {
	svc := NewService()

	n, _, err := svc.CountSolutions(context.Background(), boardOf(t, samplePuzzle), 2)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// A rule-breaking board has zero solutions; that is a count, not an
	// error.
	b := boardOf(t, samplePuzzle)
	b.Cells[1] = 5
	n, _, err = svc.CountSolutions(context.Background(), b, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestService_Grade(t *testing.T) {
	svc := NewService()
	d, err := svc.Grade(context.Background(), boardOf(t, samplePuzzle))
	require.NoError(t, err)
	assert.Equal(t, domain.Easy, d)
}
