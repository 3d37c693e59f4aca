package eval

import (
	"othello/pkg/common"
)

// Weights holds the multipliers for one game phase. Every sub-score is
// computed as mover minus opponent, so a positive weight favors the
// side being evaluated.
type Weights struct {
	Mobility  int
	Corner    int
	Edge      int
	Stability int
	Dangerous int
	Disc      int
	Parity    int
}

// The per-phase weight sets are the main tuning surface. Opening play
// is about mobility and not handing over corners; the midgame blends
// everything; the endgame is decided by discs, corners and parity.
var (
	openingWeights = Weights{Mobility: 12, Corner: 90, Dangerous: 25}
	midgameWeights = Weights{Mobility: 6, Corner: 70, Edge: 8, Stability: 12, Dangerous: 15}
	endgameWeights = Weights{Mobility: 2, Corner: 90, Stability: 18, Disc: 10, Parity: 8}
)

type EvaluationService struct {
	opening Weights
	midgame Weights
	endgame Weights
}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{
		opening: openingWeights,
		midgame: midgameWeights,
		endgame: endgameWeights,
	}
}

// Evaluate statically scores the position from side's perspective. It
// is the search horizon's only judgment of position quality: fast,
// side-effect free, no recursion.
func (e *EvaluationService) Evaluate(p *common.Position, side common.Cell) int {
	var w Weights
	switch common.GamePhase(p.Occupied()) {
	case common.Opening:
		w = e.opening
	case common.Midgame:
		w = e.midgame
	default:
		w = e.endgame
	}

	var opp = side.Opponent()
	var score = 0
	if w.Mobility != 0 {
		score += w.Mobility * (p.CountLegalMoves(side) - p.CountLegalMoves(opp))
	}
	if w.Corner != 0 {
		score += w.Corner * cornerBalance(p, side)
	}
	if w.Edge != 0 {
		score += w.Edge * edgeBalance(p, side)
	}
	if w.Stability != 0 {
		score += w.Stability * stabilityBalance(p, side)
	}
	if w.Dangerous != 0 {
		score += w.Dangerous * dangerBalance(p, side)
	}
	if w.Disc != 0 {
		score += w.Disc * (p.Count(side) - p.Count(opp))
	}
	if w.Parity != 0 {
		// with an odd number of empties the side to move tends to get
		// the last move
		if p.EmptyCount()%2 == 1 {
			score += w.Parity
		} else {
			score -= w.Parity
		}
	}
	return score
}

func cornerBalance(p *common.Position, side common.Cell) int {
	var opp = side.Opponent()
	var balance = 0
	for _, corner := range common.Corners {
		switch p.Get(corner) {
		case side:
			balance++
		case opp:
			balance--
		}
	}
	return balance
}

// Non-corner edge squares, excluding the squares next to a corner
// (those are covered by the dangerous-square term).
var edgeSquares = []int{
	13, 14, 15, 16,
	31, 41, 51, 61,
	38, 48, 58, 68,
	83, 84, 85, 86,
}

func edgeBalance(p *common.Position, side common.Cell) int {
	var opp = side.Opponent()
	var balance = 0
	for _, sq := range edgeSquares {
		switch p.Get(sq) {
		case side:
			balance++
		case opp:
			balance--
		}
	}
	return balance
}

// The four axis direction pairs: horizontal, vertical and the two
// diagonals.
var axes = [4]int{1, 10, 9, 11}

func stabilityBalance(p *common.Position, side common.Cell) int {
	var opp = side.Opponent()
	var balance = 0
	for row := 1; row <= 8; row++ {
		for col := 1; col <= 8; col++ {
			var sq = row*10 + col
			switch p.Get(sq) {
			case side:
				if isStable(p, sq) {
					balance++
				}
			case opp:
				if isStable(p, sq) {
					balance--
				}
			}
		}
	}
	return balance
}

// isStable approximates: a disc is stable if it is a corner, or if
// along each of the four axes it is backed by an unbroken run of its
// own color to the board edge in at least one direction. A disc can
// still be flippable along another line; this looseness is a deliberate
// tuning choice.
func isStable(p *common.Position, sq int) bool {
	if common.IsCorner(sq) {
		return true
	}
	var owner = p.Get(sq)
	for _, axis := range axes {
		if !runsToEdge(p, sq, owner, axis) && !runsToEdge(p, sq, owner, -axis) {
			return false
		}
	}
	return true
}

func runsToEdge(p *common.Position, sq int, owner common.Cell, dir int) bool {
	for pos := sq + dir; ; pos += dir {
		switch p.Get(pos) {
		case owner:
			continue
		case common.Outer:
			return true
		default:
			return false
		}
	}
}

// dangerBalance penalizes occupying a square next to a corner the
// occupant does not control, and credits the opponent doing the same.
// This is a heuristic exposure measure, not a capture guarantee.
func dangerBalance(p *common.Position, side common.Cell) int {
	var opp = side.Opponent()
	var balance = 0
	for _, corner := range common.Corners {
		for _, sq := range common.CornerNeighbors[corner] {
			switch p.Get(sq) {
			case side:
				if p.Get(corner) != side {
					balance--
				}
			case opp:
				if p.Get(corner) != opp {
					balance++
				}
			}
		}
	}
	return balance
}
