package main

import (
	"fmt"
	"math/rand"

	"othello/pkg/common"
	"othello/pkg/engine"
)

const (
	gameResultDraw = iota
	gameResultAWins
	gameResultBWins
)

type gameInfo struct {
	gameNumber     int
	openingSeed    int64
	engineAIsBlack bool
}

type gameResult struct {
	gameInfo gameInfo
	result   int
	discDiff int
}

// playGame runs one game to the double-pass end. Both games of a pair
// start from the same randomized opening with colors swapped.
func playGame(engineA, engineB *engine.Engine, config Config, info gameInfo) (gameResult, error) {
	var p, side = openingPosition(info.openingSeed, config.OpeningPly)
	engineA.Clear()
	engineB.Clear()
	for {
		if p.GameOver() {
			break
		}
		if !p.HasLegalMove(side) {
			side = side.Opponent()
			continue
		}
		var eng = engineB
		if info.engineAIsBlack == (side == common.Black) {
			eng = engineA
		}
		var searchResult = eng.Search(common.SearchParams{
			Position: p,
			Side:     side,
			Limits: common.LimitsType{
				MoveTime: moveTime(),
				Depth:    config.Depth,
			},
		})
		if searchResult.Move == common.MoveNone {
			return gameResult{}, fmt.Errorf("game %d: engine found no move with moves available",
				info.gameNumber)
		}
		var undo common.Undo
		if !p.MakeMove(searchResult.Move, side, &undo) {
			return gameResult{}, fmt.Errorf("game %d: engine illegal move %d",
				info.gameNumber, searchResult.Move)
		}
		side = side.Opponent()
	}

	var diffForA = p.Count(common.Black) - p.Count(common.White)
	if !info.engineAIsBlack {
		diffForA = -diffForA
	}
	var res = gameResultDraw
	if diffForA > 0 {
		res = gameResultAWins
	} else if diffForA < 0 {
		res = gameResultBWins
	}
	return gameResult{gameInfo: info, result: res, discDiff: diffForA}, nil
}

// openingPosition plays ply random legal moves from the start so that
// deterministic engines do not repeat one game forever.
func openingPosition(seed int64, ply int) (common.Position, common.Cell) {
	var rnd = rand.New(rand.NewSource(seed))
	var p = common.NewPosition()
	var side = common.Black
	for i := 0; i < ply; i++ {
		if p.GameOver() {
			break
		}
		var moves = p.LegalMoves(side)
		if len(moves) == 0 {
			side = side.Opponent()
			continue
		}
		var undo common.Undo
		p.MakeMove(moves[rnd.Intn(len(moves))], side, &undo)
		side = side.Opponent()
	}
	return p, side
}
