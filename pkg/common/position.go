package common

import "strings"

// Position is the single mutable board shared by a whole search tree.
// Moves are made and unmade in place; copying happens only when a
// hashable snapshot is needed.
type Position struct {
	squares [100]Cell
}

func NewPosition() Position {
	var p Position
	for i := range p.squares {
		if !IsPlayable(i) {
			p.squares[i] = Outer
		}
	}
	p.squares[44] = Black
	p.squares[45] = White
	p.squares[54] = White
	p.squares[55] = Black
	return p
}

func (p *Position) Get(sq int) Cell {
	return p.squares[sq]
}

// Snapshot returns a comparable copy of the squares, suitable as part
// of a transposition-table key.
func (p *Position) Snapshot() [100]Cell {
	return p.squares
}

// findBracket walks from sq along dir over opponent discs and returns
// the square of the first disc of side's color, or 0 when the run ends
// on an empty square or the border.
func (p *Position) findBracket(sq int, side Cell, dir int) int {
	var opp = side.Opponent()
	if p.squares[sq] != opp {
		return 0
	}
	for sq += dir; p.squares[sq] == opp; sq += dir {
	}
	if p.squares[sq] == side {
		return sq
	}
	return 0
}

func (p *Position) IsLegal(sq int, side Cell) bool {
	if sq < 0 || sq >= 100 || p.squares[sq] != Empty {
		return false
	}
	for _, dir := range AllDirections {
		if p.findBracket(sq+dir, side, dir) != 0 {
			return true
		}
	}
	return false
}

func (p *Position) LegalMoves(side Cell) []int {
	var result []int
	for row := 1; row <= 8; row++ {
		for col := 1; col <= 8; col++ {
			var sq = row*10 + col
			if p.squares[sq] == Empty && p.IsLegal(sq, side) {
				result = append(result, sq)
			}
		}
	}
	return result
}

func (p *Position) CountLegalMoves(side Cell) int {
	var count = 0
	for row := 1; row <= 8; row++ {
		for col := 1; col <= 8; col++ {
			var sq = row*10 + col
			if p.squares[sq] == Empty && p.IsLegal(sq, side) {
				count++
			}
		}
	}
	return count
}

// HasLegalMove short-circuits on the first legal square, cheaper than
// enumerating the full move list.
func (p *Position) HasLegalMove(side Cell) bool {
	for row := 1; row <= 8; row++ {
		for col := 1; col <= 8; col++ {
			var sq = row*10 + col
			if p.squares[sq] == Empty && p.IsLegal(sq, side) {
				return true
			}
		}
	}
	return false
}

// A move flips at most 18 discs (six per ray on three maximal rays).
const maxFlips = 19

// Undo records one move's square and flip list. It is owned by the
// search frame that made the move and consumed exactly once by the
// matching UnmakeMove.
type Undo struct {
	Square    int
	flips     [maxFlips]int8
	flipCount int
}

func (u *Undo) Flips() []int {
	var result = make([]int, u.flipCount)
	for i := 0; i < u.flipCount; i++ {
		result[i] = int(u.flips[i])
	}
	return result
}

// MakeMove plays sq for side, flipping every bracketed run, and fills
// undo with what changed. It reports false and leaves the position
// untouched when the move is illegal.
func (p *Position) MakeMove(sq int, side Cell, undo *Undo) bool {
	if sq < 0 || sq >= 100 || p.squares[sq] != Empty {
		return false
	}
	undo.Square = sq
	undo.flipCount = 0
	for _, dir := range AllDirections {
		var bracket = p.findBracket(sq+dir, side, dir)
		if bracket == 0 {
			continue
		}
		for pos := sq + dir; pos != bracket; pos += dir {
			p.squares[pos] = side
			undo.flips[undo.flipCount] = int8(pos)
			undo.flipCount++
		}
	}
	if undo.flipCount == 0 {
		return false
	}
	p.squares[sq] = side
	return true
}

// UnmakeMove restores the exact position from before the matching
// MakeMove: the move square becomes empty again and every flipped disc
// goes back to the opponent.
func (p *Position) UnmakeMove(undo *Undo, side Cell) {
	var opp = side.Opponent()
	p.squares[undo.Square] = Empty
	for i := 0; i < undo.flipCount; i++ {
		p.squares[undo.flips[i]] = opp
	}
}

// FlipCount reports how many discs playing sq would flip, without
// mutating the position.
func (p *Position) FlipCount(sq int, side Cell) int {
	if p.squares[sq] != Empty {
		return 0
	}
	var count = 0
	for _, dir := range AllDirections {
		var bracket = p.findBracket(sq+dir, side, dir)
		if bracket == 0 {
			continue
		}
		for pos := sq + dir; pos != bracket; pos += dir {
			count++
		}
	}
	return count
}

func (p *Position) Count(side Cell) int {
	var count = 0
	for _, c := range p.squares {
		if c == side {
			count++
		}
	}
	return count
}

// Occupied counts the discs on the interior; it determines the game
// phase.
func (p *Position) Occupied() int {
	return p.Count(Black) + p.Count(White)
}

func (p *Position) EmptyCount() int {
	return 64 - p.Occupied()
}

func (p *Position) GameOver() bool {
	return !p.HasLegalMove(Black) && !p.HasLegalMove(White)
}

func (p *Position) String() string {
	var sb = &strings.Builder{}
	for row := 1; row <= 8; row++ {
		for col := 1; col <= 8; col++ {
			switch p.squares[row*10+col] {
			case Black:
				sb.WriteString("X")
			case White:
				sb.WriteString("O")
			default:
				sb.WriteString(".")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
