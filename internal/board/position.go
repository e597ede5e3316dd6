package board

import "fmt"

// Board geometry constants.
const (
	GridSize   = 9
	CellCount  = GridSize * GridSize
	HouseSize  = 9
	HouseCount = 27
	PeerCount  = 20
)

// Position identifies a cell by zero-based row and column.
// Positions are ordered by (row, column), matching index order.
type Position struct {
	Row, Col int
}

// PositionOf returns the position for a row-major cell index.
func PositionOf(index int) Position {
	return Position{Row: index / GridSize, Col: index % GridSize}
}

// Index returns the row-major cell index in [0, 81).
func (p Position) Index() int { return p.Row*GridSize + p.Col }

// Box returns the index of the 3x3 box containing p.
func (p Position) Box() int { return (p.Row/3)*3 + p.Col/3 }

// Valid reports whether the position is on the board.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < GridSize && p.Col >= 0 && p.Col < GridSize
}

func (p Position) String() string { return fmt.Sprintf("r%dc%d", p.Row, p.Col) }

// HouseKind distinguishes the three house shapes.
type HouseKind int

const (
	HouseRow HouseKind = iota
	HouseCol
	HouseBox
)

func (k HouseKind) String() string {
	switch k {
	case HouseRow:
		return "row"
	case HouseCol:
		return "column"
	default:
		return "box"
	}
}

// House is one of the 27 fixed groups of 9 cells that must each contain
// every digit exactly once: 9 rows, 9 columns, 9 boxes.
type House struct {
	Kind  HouseKind
	Index int
	Cells [HouseSize]Position
}

func (h House) String() string { return fmt.Sprintf("%s %d", h.Kind, h.Index) }

// Houses lists all 27 houses in fixed scan order: rows 0-8, columns 0-8,
// boxes 0-8. Built once at init and treated as read-only.
var Houses [HouseCount]House

// peersOf holds, for each cell, the 20 distinct cells sharing a house with
// it. Built once at init and treated as read-only.
var peersOf [CellCount][PeerCount]Position

// Peers returns the 20 cells sharing a row, column, or box with p.
func Peers(p Position) [PeerCount]Position {
	return peersOf[p.Index()]
}

func init() {
	for i := 0; i < GridSize; i++ {
		row := House{Kind: HouseRow, Index: i}
		col := House{Kind: HouseCol, Index: i}
		box := House{Kind: HouseBox, Index: i}
		for j := 0; j < HouseSize; j++ {
			row.Cells[j] = Position{Row: i, Col: j}
			col.Cells[j] = Position{Row: j, Col: i}
			box.Cells[j] = Position{Row: (i/3)*3 + j/3, Col: (i%3)*3 + j%3}
		}
		Houses[i] = row
		Houses[GridSize+i] = col
		Houses[2*GridSize+i] = box
	}

	for idx := 0; idx < CellCount; idx++ {
		p := PositionOf(idx)
		seen := map[Position]bool{p: true}
		n := 0
		for _, h := range Houses {
			if !houseContains(h, p) {
				continue
			}
			for _, q := range h.Cells {
				if !seen[q] {
					seen[q] = true
					peersOf[idx][n] = q
					n++
				}
			}
		}
	}
}

func houseContains(h House, p Position) bool {
	switch h.Kind {
	case HouseRow:
		return h.Index == p.Row
	case HouseCol:
		return h.Index == p.Col
	default:
		return h.Index == p.Box()
	}
}
