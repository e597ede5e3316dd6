// Package validator checks a board against the one-per-house rule without
// building a candidate grid. It flags rule violations; solvability is the
// solver's question, not this package's.
package validator

import (
	"context"

	"github.com/gifnksm/numelace/internal/board"
	"github.com/gifnksm/numelace/internal/domain"
)

// FastValidator implements ports.Validator with a bitmask sweep over all
// 27 houses.
type FastValidator struct{}

// New returns a stateless validator.
func New() *FastValidator { return &FastValidator{} }

// Validate reports whether b breaks no row, column, or box rule. Each cell
// that repeats an earlier digit in the same house is reported once per
// house; empty cells and out-of-range values never conflict, out-of-range
// values being a concern for parsing, not play.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conflicts := make([]domain.CellCoord, 0, 8)
	seen := make(map[domain.CellCoord]bool)
	for _, h := range board.Houses {
		var m board.NumberSet
		for _, p := range h.Cells {
			val := b.Cells[p.Index()]
			if val == 0 || val > 9 {
				continue
			}
			d := board.Digit(val)
			coord := domain.CellCoord{Row: p.Row, Col: p.Col}
			if m.Contains(d) && !seen[coord] {
				seen[coord] = true
				conflicts = append(conflicts, coord)
			}
			m.Insert(d)
		}
	}
	return len(conflicts) == 0, conflicts, ctx.Err()
}
