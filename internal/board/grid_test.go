package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A classic, solvable Sudoku (. = empty).
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

func TestNew_AllOpen(t *testing.T) {
	g := New()
	assert.Equal(t, 0, g.PlacedCount())
	assert.True(t, g.IsConsistent())
	assert.False(t, g.IsComplete())
	for i := 0; i < CellCount; i++ {
		assert.Equal(t, FullSet, g.CandidatesAt(PositionOf(i)))
	}
}

func TestPlace_Propagates(t *testing.T) {
	g := New()
	p := Position{Row: 4, Col: 4}
	require.NoError(t, g.Place(p, 5))

	d, ok := g.DigitAt(p)
	require.True(t, ok)
	assert.Equal(t, Digit(5), d)
	assert.True(t, g.CandidatesAt(p).IsEmpty())

	for _, q := range Peers(p) {
		assert.False(t, g.CandidatesAt(q).Contains(5), "peer %v still has 5", q)
	}
	// Unrelated cell keeps all candidates.
	assert.Equal(t, FullSet, g.CandidatesAt(Position{Row: 0, Col: 8}))
}

func TestPlace_RejectsExcludedDigit(t *testing.T) {
	g := New()
	require.NoError(t, g.Place(Position{Row: 0, Col: 0}, 5))

	// 5 was eliminated from the whole row; placing it again there is a
	// contradiction, never a silent correction.
	err := g.Place(Position{Row: 0, Col: 8}, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrContradiction)

	var ce *ContradictionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, Position{Row: 0, Col: 8}, ce.Pos)
}

func TestPlace_RejectsPlacedCell(t *testing.T) {
	g := New()
	p := Position{Row: 2, Col: 3}
	require.NoError(t, g.Place(p, 1))
	assert.ErrorIs(t, g.Place(p, 2), ErrContradiction)
}

func TestPlace_PeerEmptiedReportsContradiction(t *testing.T) {
	g := New()
	p := Position{Row: 0, Col: 0}
	// Strip the cell at (0,1) down to the single candidate 3, then place 3
	// next to it: propagation empties the peer and must say so.
	q := Position{Row: 0, Col: 1}
	for d := Digit(1); d <= 9; d++ {
		if d == 3 {
			continue
		}
		_, err := g.Eliminate(q, d)
		require.NoError(t, err)
	}

	err := g.Place(p, 3)
	require.Error(t, err)
	var ce *ContradictionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, q, ce.Pos)

	// The mutation stays applied: the placement is visible and the peer's
	// set is empty.
	d, ok := g.DigitAt(p)
	require.True(t, ok)
	assert.Equal(t, Digit(3), d)
	assert.False(t, g.IsConsistent())
}

func TestEliminate_Idempotent(t *testing.T) {
	g := New()
	p := Position{Row: 3, Col: 3}

	changed, err := g.Eliminate(p, 7)
	require.NoError(t, err)
	assert.True(t, changed)

	before := g.Clone()
	changed, err = g.Eliminate(p, 7)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, before, g.Clone())
}

func TestEliminate_PlacedCellIsNoop(t *testing.T) {
	g := New()
	p := Position{Row: 1, Col: 1}
	require.NoError(t, g.Place(p, 4))

	changed, err := g.Eliminate(p, 4)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestEliminate_EmptyingSetIsContradiction(t *testing.T) {
	g := New()
	p := Position{Row: 6, Col: 2}
	for d := Digit(1); d <= 8; d++ {
		_, err := g.Eliminate(p, d)
		require.NoError(t, err)
	}
	changed, err := g.Eliminate(p, 9)
	assert.True(t, changed)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrContradiction)
	assert.False(t, g.IsConsistent())
}

func TestFromGivens_CollidingGivens(t *testing.T) {
	var givens [CellCount]Digit
	givens[0] = 5 // r0c0
	givens[8] = 5 // r0c8, same row
	_, err := FromGivens(givens)
	assert.ErrorIs(t, err, ErrContradiction)
}

func TestParse_RoundTrip(t *testing.T) {
	g, err := Parse(samplePuzzle)
	require.NoError(t, err)
	assert.Equal(t, samplePuzzle, g.String())
	assert.Equal(t, 30, g.PlacedCount())
	assert.True(t, g.IsConsistent())
}

func TestParse_Rejects(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"too short", "123"},
		{"bad rune", samplePuzzle[:80] + "x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.in)
			assert.Error(t, err)
		})
	}
}

func TestClone_Independent(t *testing.T) {
	g, err := Parse(samplePuzzle)
	require.NoError(t, err)

	clone := g.Clone()
	require.NoError(t, clone.Place(Position{Row: 0, Col: 2}, 4))

	_, placedInClone := clone.DigitAt(Position{Row: 0, Col: 2})
	_, placedInOrig := g.DigitAt(Position{Row: 0, Col: 2})
	assert.True(t, placedInClone)
	assert.False(t, placedInOrig)
}

func TestContradictionError_Matching(t *testing.T) {
	err := error(&ContradictionError{Pos: Position{Row: 1, Col: 2}})
	assert.True(t, errors.Is(err, ErrContradiction))
	var ce *ContradictionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, Position{Row: 1, Col: 2}, ce.Pos)
}
