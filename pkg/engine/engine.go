package engine

import (
	"time"

	"othello/pkg/common"
)

type Evaluator interface {
	Evaluate(p *common.Position, side common.Cell) int
}

// Engine owns one game's search state: the transposition table, the
// history counters and the evaluator. It is not safe for concurrent
// use; one engine serves one game.
type Engine struct {
	evaluator  Evaluator
	transTable *transTable
	history    historyTable
	tm         timeManager
	nodes      int64
	reSearches int
	progress   func(common.SearchInfo)
	start      time.Time
}

func NewEngine(evaluator Evaluator) *Engine {
	return &Engine{
		evaluator:  evaluator,
		transTable: newTransTable(),
	}
}

// Clear resets per-game state for a fresh game.
func (e *Engine) Clear() {
	if e.transTable != nil {
		e.transTable.Clear()
	}
	e.history.Clear()
}

// Search blocks for up to the time budget and returns the best move
// found for the side to move. Move is MoveNone when the side has no
// legal move; passing and game end are the caller's concern. When at
// least one legal move exists a legal move is always returned, however
// small the budget.
func (e *Engine) Search(params common.SearchParams) common.SearchInfo {
	e.start = time.Now()
	e.tm = newTimeManager(e.start, params.Limits.MoveTime)
	if e.transTable != nil {
		e.transTable.Clear()
	}
	e.nodes = 0
	e.reSearches = 0
	e.progress = params.Progress

	var p = params.Position
	var result = common.SearchInfo{Move: common.MoveNone}
	var rootMoves = p.LegalMoves(params.Side)
	if len(rootMoves) == 0 {
		result.Time = time.Since(e.start)
		return result
	}
	e.orderMoves(&p, params.Side, rootMoves, common.MoveNone)
	result.Move = rootMoves[0]

	var maxDepth = params.Limits.Depth
	if maxDepth <= 0 || maxDepth > maxHeight {
		maxDepth = maxHeight
	}

	result = e.iterateSearch(&p, params.Side, rootMoves, maxDepth, result)
	result.Nodes = e.nodes
	result.ReSearches = e.reSearches
	result.Time = time.Since(e.start)
	return result
}
