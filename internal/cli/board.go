package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gifnksm/numelace/internal/domain"
)

// readBoard parses a board argument: 81 cells in row-major order with '.'
// or '0' for empty, whitespace ignored, or "-" to read the same from
// stdin. It does not reject rule-breaking boards; the validate and solve
// paths report those properly.
func readBoard(arg string) (*domain.Board, error) {
	text := arg
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}
	var compact strings.Builder
	for _, ch := range text {
		switch {
		case ch == '.' || (ch >= '0' && ch <= '9'):
			compact.WriteRune(ch)
		case ch == ' ' || ch == '\n' || ch == '\r' || ch == '\t' || ch == '|' || ch == '+' || ch == '-':
			// Framed output from this tool pastes back in cleanly.
		default:
			return nil, fmt.Errorf("invalid board character %q", ch)
		}
	}
	s := compact.String()
	if len(s) != domain.CellCount {
		return nil, fmt.Errorf("board has %d cells, want %d", len(s), domain.CellCount)
	}
	var b domain.Board
	for i := 0; i < len(s); i++ {
		if s[i] != '.' && s[i] != '0' {
			b.Cells[i] = s[i] - '0'
		}
	}
	return &b, nil
}
