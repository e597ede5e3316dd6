// Package hint turns the solver's next logical step into a boundary Hint.
package hint

import (
	"context"
	"fmt"
	"strings"

	"github.com/gifnksm/numelace/internal/board"
	"github.com/gifnksm/numelace/internal/domain"
	"github.com/gifnksm/numelace/internal/solver"
	"github.com/gifnksm/numelace/internal/technique"
)

// StepHinter implements ports.Hinter on top of the technique solver. The
// hint is always the simplest applicable step, never a guess.
type StepHinter struct{}

// New returns a stateless hinter.
func New() *StepHinter { return &StepHinter{} }

// Hint returns the next step solvable by techniques up to max. ok is false
// when no technique at or below max applies. A board that already breaks
// the rules yields an error rather than a misleading hint.
func (h *StepHinter) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	grid, err := board.FromBytes(b.Cells)
	if err != nil {
		return domain.Hint{}, false, err
	}
	step, err := solver.ForTier(max).FindStep(&grid)
	if err != nil {
		return domain.Hint{}, false, err
	}
	if step == nil {
		return domain.Hint{}, false, ctx.Err()
	}
	return toHint(step), true, ctx.Err()
}

func toHint(step *technique.Step) domain.Hint {
	out := domain.Hint{
		Technique: step.Technique,
		Strategy:  step.Tier,
		Cells:     coords(step.Cells),
	}
	if step.Place != nil {
		out.Placement = &domain.Placement{
			Cell:  coordOf(step.Place.Pos),
			Digit: uint8(step.Place.Digit),
		}
		out.Message = fmt.Sprintf("%s: %d goes in %s", step.Technique, step.Place.Digit, step.Place.Pos)
		return out
	}
	out.Eliminations = make([]domain.Elimination, len(step.Eliminations))
	for i, e := range step.Eliminations {
		out.Eliminations[i] = domain.Elimination{Cell: coordOf(e.Pos), Digit: uint8(e.Digit)}
	}
	out.Message = fmt.Sprintf("%s on %s rules out %s", step.Technique, posList(step.Cells), elimList(step.Eliminations))
	return out
}

func coordOf(p board.Position) domain.CellCoord {
	return domain.CellCoord{Row: p.Row, Col: p.Col}
}

func coords(ps []board.Position) []domain.CellCoord {
	if len(ps) == 0 {
		return nil
	}
	out := make([]domain.CellCoord, len(ps))
	for i, p := range ps {
		out[i] = coordOf(p)
	}
	return out
}

func posList(ps []board.Position) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func elimList(es []technique.Elimination) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = fmt.Sprintf("%d in %s", e.Digit, e.Pos)
	}
	return strings.Join(parts, ", ")
}
