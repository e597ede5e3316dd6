package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gifnksm/numelace/internal/board"
	"github.com/gifnksm/numelace/internal/domain"
)

// Solvable by singles alone.
const samplePuzzle = "" +
	"53..7...." +
	"6..195..." +
	".98....6." +
	"8...6...3" +
	"4..8.3..1" +
	"7...2...6" +
	".6....28." +
	"...419..5" +
	"....8..79"

const sampleSolution = "" +
	"534678912" +
	"672195348" +
	"198342567" +
	"859761423" +
	"426853791" +
	"713924856" +
	"961537284" +
	"287419635" +
	"345286179"

// Stalls with singles only, yields to the pair techniques.
const mediumPuzzle = "" +
	".81..59.." +
	"42..1...8" +
	".....8.3." +
	"749......" +
	".539.6.8." +
	"......5.." +
	"....84.2." +
	"..8.....7" +
	"9........"

// Stalls with pairs and locked candidates; the triple techniques finish it.
const triplesPuzzle = "" +
	".9.2316.." +
	".....9..3" +
	"........." +
	".2..5...." +
	"..7...134" +
	".6.1...8." +
	".1.3.5.6." +
	"6....4.7." +
	"....12..."

const triplesSolution = "" +
	"598231647" +
	"176549823" +
	"342768915" +
	"821453796" +
	"957826134" +
	"463197582" +
	"219375468" +
	"635984271" +
	"784612359"

// Stalls even with every technique; only search finishes it.
const expertPuzzle = "" +
	"1...3.78." +
	"....9..6." +
	"..3.7...." +
	"..1...9.4" +
	"79...4..." +
	".2.....1." +
	"...8..6.." +
	".4...2..." +
	".7..6...3"

const expertSolution = "" +
	"152436789" +
	"487291365" +
	"963578421" +
	"831627954" +
	"795184236" +
	"624359817" +
	"519843672" +
	"346712598" +
	"278965143"

func mustParse(t *testing.T, s string) board.Grid {
	t.Helper()
	g, err := board.Parse(s)
	require.NoError(t, err)
	return g
}

func TestTechniqueSolver_SolvesWithSingles(t *testing.T) {
	g := mustParse(t, samplePuzzle)
	res := Fundamental().Solve(&g)

	assert.Equal(t, StatusSolved, res.Status)
	assert.True(t, g.IsComplete())
	assert.Equal(t, sampleSolution, g.String())
	assert.Greater(t, res.Steps, 0)
}

func TestTechniqueSolver_RestartsFromEasiest(t *testing.T) {
	// Row 0 holds a hidden single: 7 fits only at r0c0. Applying it
	// propagates into the box and leaves r1c1 with a lone 3, so the next
	// unit of progress must come from the simpler technique again.
	g := board.New()
	for col := 1; col < board.GridSize; col++ {
		_, err := g.Eliminate(board.Position{Row: 0, Col: col}, 7)
		require.NoError(t, err)
	}
	inner := board.Position{Row: 1, Col: 1}
	for d := board.Digit(1); d <= 9; d++ {
		if d == 3 || d == 7 {
			continue
		}
		_, err := g.Eliminate(inner, d)
		require.NoError(t, err)
	}

	ts := WithAllTechniques()
	r := ts.NewResult()

	step, err := ts.FindStep(&g)
	require.NoError(t, err)
	require.NotNil(t, step)
	assert.Equal(t, "Hidden Single", step.Technique)

	progress, err := ts.Step(&g, &r)
	require.NoError(t, err)
	require.True(t, progress)
	assert.Equal(t, "Hidden Single", r.LastTechnique)
	d, ok := g.DigitAt(board.Position{Row: 0, Col: 0})
	require.True(t, ok)
	assert.Equal(t, board.Digit(7), d)

	// The placement stripped 7 from r1c1, exposing a naked single.
	progress, err = ts.Step(&g, &r)
	require.NoError(t, err)
	require.True(t, progress)
	assert.Equal(t, "Naked Single", r.LastTechnique)
	d, ok = g.DigitAt(inner)
	require.True(t, ok)
	assert.Equal(t, board.Digit(3), d)
}

func TestTechniqueSolver_Stalled(t *testing.T) {
	g := board.New()
	res := WithAllTechniques().Solve(&g)

	assert.Equal(t, StatusStalled, res.Status)
	assert.Equal(t, 0, res.Steps)
	assert.Equal(t, 0, g.PlacedCount())
}

func TestTechniqueSolver_StallsAboveTier(t *testing.T) {
	g := mustParse(t, mediumPuzzle)
	res := ForTier(domain.StrategySingles).Solve(&g)

	assert.Equal(t, StatusStalled, res.Status)
	assert.False(t, g.IsComplete())
}

func TestTechniqueSolver_SolvesAtTier(t *testing.T) {
	g := mustParse(t, mediumPuzzle)
	res := ForTier(domain.StrategyPairs).Solve(&g)

	assert.Equal(t, StatusSolved, res.Status)
	assert.True(t, g.IsComplete())
}

func TestTechniqueSolver_SolvesWithTriples(t *testing.T) {
	g := mustParse(t, triplesPuzzle)
	res := ForTier(domain.StrategyPairs).Solve(&g)
	assert.Equal(t, StatusStalled, res.Status)

	ts := ForTier(domain.StrategyAdvanced)
	g = mustParse(t, triplesPuzzle)
	res = ts.Solve(&g)
	require.Equal(t, StatusSolved, res.Status)
	assert.Equal(t, triplesSolution, g.String())

	triples := 0
	for i, tech := range ts.Techniques() {
		switch tech.Name() {
		case "Naked Triple", "Hidden Triple":
			triples += res.Applications[i]
		}
	}
	assert.Greater(t, triples, 0)
}

func TestTechniqueSolver_Contradiction(t *testing.T) {
	g := board.New()
	p := board.Position{Row: 0, Col: 0}
	for d := board.Digit(1); d <= 8; d++ {
		_, err := g.Eliminate(p, d)
		require.NoError(t, err)
	}
	_, err := g.Eliminate(p, 9)
	require.Error(t, err)

	res := WithAllTechniques().Solve(&g)
	assert.Equal(t, StatusContradiction, res.Status)
	require.NotNil(t, res.Contradiction)
	assert.Equal(t, p, *res.Contradiction)
}

func TestTechniqueSolver_FindStepDoesNotMutate(t *testing.T) {
	g := mustParse(t, samplePuzzle)
	before := g.Digits()

	ts := WithAllTechniques()
	step, err := ts.FindStep(&g)
	require.NoError(t, err)
	require.NotNil(t, step)

	assert.Equal(t, before, g.Digits())
}

func TestTechniqueSolver_FindStepNilWhenStalled(t *testing.T) {
	g := board.New()
	step, err := WithAllTechniques().FindStep(&g)
	require.NoError(t, err)
	assert.Nil(t, step)
}

func TestResult_ApplicationsAlignWithTechniques(t *testing.T) {
	g := mustParse(t, samplePuzzle)
	ts := WithAllTechniques()
	res := ts.Solve(&g)

	require.Equal(t, StatusSolved, res.Status)
	require.Len(t, res.Applications, len(ts.Techniques()))

	total := 0
	for _, n := range res.Applications {
		total += n
	}
	assert.Equal(t, res.Steps, total)
	// Singles alone finish this puzzle, so nothing harder ever fires.
	for i, tech := range ts.Techniques() {
		if tech.Tier() > domain.StrategySingles {
			assert.Zero(t, res.Applications[i], "%s fired", tech.Name())
		}
	}
}
