package engine

import (
	"time"

	"othello/pkg/common"
)

func (e *Engine) iterateSearch(p *common.Position, side common.Cell,
	rootMoves []int, maxDepth int, result common.SearchInfo) common.SearchInfo {

	var prevScore = 0
	for depth := 1; depth <= maxDepth; depth++ {
		if !e.tm.CanStartIteration() {
			break
		}
		var score, move, completed = e.searchRoot(p, side, rootMoves, depth, prevScore)
		if !completed {
			break
		}
		prevScore = score
		result.Depth = depth
		result.Score = score
		result.Move = move
		result.Nodes = e.nodes
		result.ReSearches = e.reSearches
		result.Time = time.Since(e.start)
		if e.progress != nil {
			e.progress(result)
		}
		moveToBegin(rootMoves, move)
		if score >= valueWin || score <= valueLoss {
			break
		}
	}
	return result
}

// searchRoot runs one full-depth search inside an aspiration window
// around the previous iteration's score. A fail-low or fail-high
// doubles the half-width, re-centers the failing bound on the result
// and re-searches the same depth until the score lands strictly inside
// the window or time runs out.
func (e *Engine) searchRoot(p *common.Position, side common.Cell,
	moves []int, depth, prevScore int) (score, bestMove int, completed bool) {

	var alpha = -valueInfinity
	var beta = valueInfinity
	var window = aspirationWindow
	if depth > 1 {
		alpha = common.Max(-valueInfinity, prevScore-window)
		beta = common.Min(valueInfinity, prevScore+window)
	}
	for {
		score, bestMove, completed = e.rootAlphaBeta(p, side, moves, alpha, beta, depth)
		if !completed {
			return
		}
		if score <= alpha {
			window *= 2
			alpha = common.Max(-valueInfinity, score-window)
			e.reSearches++
			continue
		}
		if score >= beta {
			window *= 2
			beta = common.Min(valueInfinity, score+window)
			e.reSearches++
			continue
		}
		return
	}
}

func (e *Engine) rootAlphaBeta(p *common.Position, side common.Cell,
	moves []int, alpha, beta, depth int) (int, int, bool) {

	var best = -valueInfinity
	var bestMove = moves[0]
	var undo common.Undo
	for _, move := range moves {
		p.MakeMove(move, side, &undo)
		e.nodes++
		var score = -e.alphaBeta(p, side.Opponent(), -beta, -alpha, depth-1)
		p.UnmakeMove(&undo, side)
		if e.tm.IsExpired() {
			// the in-flight depth is abandoned; keep the previous
			// iteration's answer
			return 0, common.MoveNone, false
		}
		if score > best {
			best = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
			if alpha >= beta {
				break
			}
		}
	}
	return best, bestMove, true
}

// alphaBeta is the negamax recursion: bounds are negated and swapped on
// every call, so one code path evaluates both sides.
func (e *Engine) alphaBeta(p *common.Position, side common.Cell, alpha, beta, depth int) int {
	if e.tm.IsExpired() {
		// best effort; the caller discards time-aborted branches
		return alpha
	}

	var oldAlpha = alpha
	var hashMove = common.MoveNone
	if e.transTable != nil {
		var ttDepth, ttScore, ttBound, ttMove, found = e.transTable.Read(p, side)
		if found {
			hashMove = ttMove
			if ttDepth >= depth {
				if ttBound == boundExact {
					return ttScore
				}
				if (ttBound&boundLower) != 0 && ttScore >= beta {
					return ttScore
				}
				if (ttBound&boundUpper) != 0 && ttScore <= alpha {
					return ttScore
				}
			}
		}
	}

	if depth <= 0 {
		var eval = e.evaluator.Evaluate(p, side)
		if e.transTable != nil {
			e.transTable.Update(p, side, 0, eval, common.MoveNone, boundExact)
		}
		return eval
	}

	var moves = p.LegalMoves(side)
	if len(moves) == 0 {
		if p.HasLegalMove(side.Opponent()) {
			// pass: same position, other side to move
			e.nodes++
			return -e.alphaBeta(p, side.Opponent(), -beta, -alpha, depth-1)
		}
		return terminalValue(p.Count(side) - p.Count(side.Opponent()))
	}

	e.orderMoves(p, side, moves, hashMove)

	var best = -valueInfinity
	var bestMove = common.MoveNone
	var undo common.Undo
	for _, move := range moves {
		p.MakeMove(move, side, &undo)
		e.nodes++
		var score = -e.alphaBeta(p, side.Opponent(), -beta, -alpha, depth-1)
		p.UnmakeMove(&undo, side)
		if score > best {
			best = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
			if alpha >= beta {
				e.history.Update(move, depth)
				break
			}
		}
	}

	if e.transTable != nil && !e.tm.IsExpired() {
		var bound uint8
		switch {
		case best >= beta:
			bound = boundLower
		case best <= oldAlpha:
			bound = boundUpper
		default:
			bound = boundExact
		}
		e.transTable.Update(p, side, depth, best, bestMove, bound)
	}
	return best
}

func moveToBegin(moves []int, move int) {
	var index = -1
	for i, m := range moves {
		if m == move {
			index = i
			break
		}
	}
	if index <= 0 {
		return
	}
	for i := index; i > 0; i-- {
		moves[i] = moves[i-1]
	}
	moves[0] = move
}
