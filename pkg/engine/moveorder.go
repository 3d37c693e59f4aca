package engine

import (
	"golang.org/x/exp/slices"

	"othello/pkg/common"
)

type orderedMove struct {
	square  int
	hash    bool
	corner  bool
	history int
	flips   int
	weight  int
}

// orderMoves sorts moves in place: the transposition hint first, then
// corners, then by descending history counter, flip count and static
// square weight as successive tie-breaks.
func (e *Engine) orderMoves(p *common.Position, side common.Cell, moves []int, hashMove int) {
	var items = make([]orderedMove, len(moves))
	for i, sq := range moves {
		items[i] = orderedMove{
			square:  sq,
			hash:    sq == hashMove,
			corner:  common.IsCorner(sq),
			history: e.history.Score(sq),
			flips:   p.FlipCount(sq, side),
			weight:  common.SquareWeights[sq],
		}
	}
	slices.SortStableFunc(items, compareMoves)
	for i := range items {
		moves[i] = items[i].square
	}
}

func compareMoves(a, b orderedMove) int {
	if a.hash != b.hash {
		return rank(b.hash) - rank(a.hash)
	}
	if a.corner != b.corner {
		return rank(b.corner) - rank(a.corner)
	}
	if a.history != b.history {
		return b.history - a.history
	}
	if a.flips != b.flips {
		return b.flips - a.flips
	}
	return b.weight - a.weight
}

func rank(b bool) int {
	if b {
		return 1
	}
	return 0
}
