package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gifnksm/numelace/internal/domain"
)

func TestValidate_EmptyBoard(t *testing.T) {
	ok, conflicts, err := New().Validate(context.Background(), &domain.Board{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}

func TestValidate_RowConflict(t *testing.T) {
	var b domain.Board
	b.Cells[0] = 5
	b.Cells[8] = 5

	ok, conflicts, err := New().Validate(context.Background(), &b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []domain.CellCoord{{Row: 0, Col: 8}}, conflicts)
}

func TestValidate_ColumnConflict(t *testing.T) {
	var b domain.Board
	b.Cells[4] = 7     // r0c4
	b.Cells[8*9+4] = 7 // r8c4

	ok, conflicts, err := New().Validate(context.Background(), &b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []domain.CellCoord{{Row: 8, Col: 4}}, conflicts)
}

func TestValidate_BoxConflict(t *testing.T) {
	var b domain.Board
	b.Cells[0] = 3   // r0c0
	b.Cells[9+1] = 3 // r1c1, same box, different row and column

	ok, conflicts, err := New().Validate(context.Background(), &b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []domain.CellCoord{{Row: 1, Col: 1}}, conflicts)
}

func TestValidate_ConflictReportedOnce(t *testing.T) {
	// r0c1 repeats 5 in both its row and its box; one report, not two.
	var b domain.Board
	b.Cells[0] = 5
	b.Cells[1] = 5

	ok, conflicts, err := New().Validate(context.Background(), &b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []domain.CellCoord{{Row: 0, Col: 1}}, conflicts)
}

func TestValidate_IgnoresOutOfRangeValues(t *testing.T) {
	var b domain.Board
	b.Cells[0] = 12
	b.Cells[1] = 12

	ok, conflicts, err := New().Validate(context.Background(), &b)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}
