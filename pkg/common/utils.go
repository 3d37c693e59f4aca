package common

import (
	"fmt"
	"strings"
)

func Min(l, r int) int {
	if l < r {
		return l
	}
	return r
}

func Max(l, r int) int {
	if l > r {
		return l
	}
	return r
}

// NewPositionFromString parses the diagram format produced by
// Position.String: eight lines of eight runes, X for black, O for
// white, . for empty.
func NewPositionFromString(s string) (Position, error) {
	var p Position
	for i := range p.squares {
		if !IsPlayable(i) {
			p.squares[i] = Outer
		}
	}
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) != 8 {
		return Position{}, fmt.Errorf("bad diagram: %d lines", len(lines))
	}
	for row, line := range lines {
		if len(line) != 8 {
			return Position{}, fmt.Errorf("bad diagram line %q", line)
		}
		for col := 0; col < 8; col++ {
			var sq = (row+1)*10 + col + 1
			switch line[col] {
			case 'X', 'x':
				p.squares[sq] = Black
			case 'O', 'o':
				p.squares[sq] = White
			case '.':
				p.squares[sq] = Empty
			default:
				return Position{}, fmt.Errorf("bad cell %q", line[col])
			}
		}
	}
	return p, nil
}
