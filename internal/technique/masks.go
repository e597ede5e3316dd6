package technique

import (
	"math/bits"

	"github.com/gifnksm/numelace/internal/board"
)

// Small bitmask helpers over the 9 cells of a house. Bit i corresponds to
// h.Cells[i].

func countBits(m uint16) int { return bits.OnesCount16(m) }

func lowBit(m uint16) int { return bits.TrailingZeros16(m) }

// maskPositions expands a house-cell bitmask into positions.
func maskPositions(h board.House, m uint16) []board.Position {
	out := make([]board.Position, 0, countBits(m))
	for i := 0; i < board.HouseSize; i++ {
		if m&(1<<i) != 0 {
			out = append(out, h.Cells[i])
		}
	}
	return out
}

// digitHouseMask returns the bitmask of house cells whose candidate set
// contains d.
func digitHouseMask(g *board.Grid, h board.House, d board.Digit) uint16 {
	var m uint16
	for i, p := range h.Cells {
		if g.CandidatesAt(p).Contains(d) {
			m |= 1 << i
		}
	}
	return m
}
