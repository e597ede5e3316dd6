package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gifnksm/numelace/internal/board"
	"github.com/gifnksm/numelace/internal/domain"
)

func TestBacktrackSolver_SolvesSample(t *testing.T) {
	g := mustParse(t, samplePuzzle)
	solved, status := NewBacktrackSolver(nil).Solve(g)

	require.Equal(t, StatusSolved, status)
	assert.Equal(t, sampleSolution, solved.String())
	// The input grid is untouched.
	assert.False(t, g.IsComplete())
}

func TestBacktrackSolver_FinishesWhereLogicStalls(t *testing.T) {
	g := mustParse(t, expertPuzzle)

	res := WithAllTechniques().Solve(&g)
	require.Equal(t, StatusStalled, res.Status)

	solved, status := NewBacktrackSolver(nil).Solve(g)
	require.Equal(t, StatusSolved, status)
	assert.Equal(t, expertSolution, solved.String())
}

func TestBacktrackSolver_Unsolvable(t *testing.T) {
	g := mustParse(t, samplePuzzle)
	// The puzzle's only solution has 4 at r1c3; removing that candidate
	// leaves nothing to find.
	_, err := g.Eliminate(board.Position{Row: 0, Col: 2}, 4)
	require.NoError(t, err)

	s := NewBacktrackSolver(nil)
	_, status := s.Solve(g)
	assert.Equal(t, StatusUnsolvable, status)
	assert.Equal(t, 0, s.CountSolutions(g, 2))
}

func TestBacktrackSolver_CountSolutions(t *testing.T) {
	s := NewBacktrackSolver(nil)

	g := mustParse(t, samplePuzzle)
	assert.Equal(t, 1, s.CountSolutions(g, 2))

	// An empty grid has a vast number of completions; the limit caps the
	// search rather than exhausting them.
	assert.Equal(t, 2, s.CountSolutions(board.New(), 2))
	assert.Equal(t, 0, s.CountSolutions(board.New(), 0))
}

func TestBacktrackSolver_SolveStats(t *testing.T) {
	g := mustParse(t, expertPuzzle)
	solved, status, nodes := NewBacktrackSolver(nil).SolveStats(g)

	require.Equal(t, StatusSolved, status)
	assert.Equal(t, expertSolution, solved.String())
	assert.Greater(t, nodes, 0)
}

// Stalls with the pair techniques, yields to locked candidates.
const hardPuzzle = "" +
	"..5......" +
	".6.5..83." +
	".4......7" +
	".2.9.3.7." +
	"8...45..." +
	"......9.." +
	"9..27.5.." +
	"......12." +
	"5....9..4"

func TestGrade(t *testing.T) {
	cases := []struct {
		name   string
		puzzle string
		want   domain.Difficulty
	}{
		{"singles only", samplePuzzle, domain.Easy},
		{"needs pairs", mediumPuzzle, domain.Medium},
		{"needs locked candidates", hardPuzzle, domain.Hard},
		{"needs triples", triplesPuzzle, domain.Hard},
		{"stalls all techniques", expertPuzzle, domain.Expert},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.puzzle)
			assert.Equal(t, tc.want, Grade(g))
			// Grading works on clones.
			assert.False(t, g.IsComplete())
		})
	}
}

func TestGrade_EmptyGridIsExpert(t *testing.T) {
	assert.Equal(t, domain.Expert, Grade(board.New()))
}
