package board

import (
	"fmt"
	"strings"
)

// Parse builds a grid from an 81-character string.
// Use '.' or '0' for empty cells, '1'-'9' for givens.
func Parse(s string) (Grid, error) {
	var givens [CellCount]Digit
	if len(s) != CellCount {
		return Grid{}, fmt.Errorf("grid string must be exactly %d characters, got %d", CellCount, len(s))
	}
	for i := 0; i < CellCount; i++ {
		switch ch := s[i]; {
		case ch == '.' || ch == '0':
			// empty
		case ch >= '1' && ch <= '9':
			givens[i] = Digit(ch - '0')
		default:
			return Grid{}, fmt.Errorf("invalid character %q at position %d", ch, i)
		}
	}
	return FromGivens(givens)
}

// String returns the grid as an 81-character line, '.' for open cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)
	for i := range g.cells {
		if d := g.cells[i].digit; d != 0 {
			sb.WriteByte('0' + byte(d))
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// Format returns a human-readable rendering with box frames.
func (g *Grid) Format() string {
	var sb strings.Builder
	line := "+-------+-------+-------+\n"
	sb.WriteString(line)
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if col%3 == 0 {
				sb.WriteString("| ")
			}
			if d, ok := g.DigitAt(Position{Row: row, Col: col}); ok {
				sb.WriteByte('0' + byte(d))
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
		if (row+1)%3 == 0 {
			sb.WriteString(line)
		}
	}
	return sb.String()
}
