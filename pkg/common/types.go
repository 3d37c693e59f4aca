package common

import "time"

// Cell is the content of one square of the 10x10 board array.
// Black and White double as the side-to-move tag; Outer marks the
// sentinel border so ray walks terminate without bounds checks.
type Cell int8

const (
	Empty Cell = iota
	Black
	White
	Outer
)

// Opponent is defined for Black and White only.
func (c Cell) Opponent() Cell {
	if c == Black {
		return White
	}
	return Black
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	case Empty:
		return "Empty"
	}
	return "Outer"
}

// Squares are linear indexes into the 10x10 array: row*10+col with
// rows and cols 1-8 playable. Index 0 is a border square, which makes
// it a safe "no move" sentinel.
const MoveNone = 0

var AllDirections = [8]int{-11, -10, -9, -1, 1, 9, 10, 11}

var Corners = [4]int{11, 18, 81, 88}

// CornerNeighbors lists the three squares adjacent to each corner.
var CornerNeighbors = map[int][3]int{
	11: {12, 21, 22},
	18: {17, 27, 28},
	81: {71, 82, 72},
	88: {78, 87, 77},
}

// SquareWeights is the static positional table used as a move-ordering
// tie-break. Zero on the border, 120 on corners, negative beside them.
var SquareWeights = [100]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 120, -20, 20, 5, 5, 20, -20, 120, 0,
	0, -20, -40, -5, -5, -5, -5, -40, -20, 0,
	0, 20, -5, 15, 3, 3, 15, -5, 20, 0,
	0, 5, -5, 3, 3, 3, 3, -5, 5, 0,
	0, 5, -5, 3, 3, 3, 3, -5, 5, 0,
	0, 20, -5, 15, 3, 3, 15, -5, 20, 0,
	0, -20, -40, -5, -5, -5, -5, -40, -20, 0,
	0, 120, -20, 20, 5, 5, 20, -20, 120, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

func MakeSquare(row, col int) int {
	return row*10 + col
}

func Row(sq int) int {
	return sq / 10
}

func Col(sq int) int {
	return sq % 10
}

func IsPlayable(sq int) bool {
	var row, col = Row(sq), Col(sq)
	return row >= 1 && row <= 8 && col >= 1 && col <= 8
}

func IsCorner(sq int) bool {
	return sq == 11 || sq == 18 || sq == 81 || sq == 88
}

// Phase of the game, determined by the number of occupied interior
// squares.
type Phase int

const (
	Opening Phase = iota
	Midgame
	Endgame
)

func GamePhase(occupied int) Phase {
	if occupied <= 20 {
		return Opening
	}
	if occupied <= 50 {
		return Midgame
	}
	return Endgame
}

type LimitsType struct {
	// MoveTime bounds one decision; zero means no time limit.
	MoveTime time.Duration
	// Depth bounds iterative deepening; zero means the engine maximum.
	Depth int
}

type SearchParams struct {
	Position Position
	Side     Cell
	Limits   LimitsType
	Progress func(si SearchInfo)
}

type SearchInfo struct {
	Depth      int
	Score      int
	Move       int
	Nodes      int64
	Time       time.Duration
	ReSearches int
}
