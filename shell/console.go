package shell

import (
	"fmt"
	"strings"

	"othello/pkg/common"
)

const (
	blackDisc = "●"
	whiteDisc = "○"
)

func discSymbol(c common.Cell) string {
	switch c {
	case common.Black:
		return blackDisc
	case common.White:
		return whiteDisc
	}
	return "·"
}

func PrintPosition(p *common.Position) {
	fmt.Println("  a b c d e f g h")
	for row := 1; row <= 8; row++ {
		fmt.Printf("%d ", row)
		for col := 1; col <= 8; col++ {
			fmt.Print(discSymbol(p.Get(common.MakeSquare(row, col))))
			fmt.Print(" ")
		}
		fmt.Println()
	}
	fmt.Printf("%v %d : %d %v\n",
		blackDisc, p.Count(common.Black), p.Count(common.White), whiteDisc)
}

// ParseMove reads algebraic input like "d3": file a-h, rank 1-8.
func ParseMove(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return common.MoveNone, false
	}
	var col = int(s[0]-'a') + 1
	var row = int(s[1]-'1') + 1
	if col < 1 || col > 8 || row < 1 || row > 8 {
		return common.MoveNone, false
	}
	return common.MakeSquare(row, col), true
}

func FormatMove(sq int) string {
	if !common.IsPlayable(sq) {
		return "--"
	}
	return fmt.Sprintf("%c%d", 'a'+common.Col(sq)-1, common.Row(sq))
}
