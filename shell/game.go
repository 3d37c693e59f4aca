package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"othello/internal/config"
	"othello/pkg/common"
	"othello/pkg/engine"
	"othello/pkg/eval"
)

var errQuit = errors.New("quit")

// Game alternates human and engine turns on one position. It owns the
// pass and game-end logic; the engine only ever answers "best move for
// this side within this budget".
type Game struct {
	position common.Position
	side     common.Cell
	human    common.Cell
	engine   *engine.Engine
	cfg      *config.Config
	reader   *bufio.Reader
}

func NewGame(cfg *config.Config) *Game {
	var human = common.White
	if cfg.HumanBlack {
		human = common.Black
	}
	return &Game{
		position: common.NewPosition(),
		side:     common.Black,
		human:    human,
		engine:   engine.NewEngine(eval.NewEvaluationService()),
		cfg:      cfg,
		reader:   bufio.NewReader(os.Stdin),
	}
}

func (g *Game) Run() error {
	fmt.Printf("You play %v. Enter moves like d3, or quit.\n", g.human)
	for {
		PrintPosition(&g.position)
		if g.position.GameOver() {
			g.printResult()
			return nil
		}
		if !g.position.HasLegalMove(g.side) {
			fmt.Printf("%v has no move and passes.\n", g.side)
			g.side = g.side.Opponent()
			continue
		}
		var err error
		if g.side == g.human {
			err = g.humanTurn()
		} else {
			err = g.engineTurn()
		}
		if err == errQuit {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (g *Game) humanTurn() error {
	for {
		fmt.Printf("%v> ", g.side)
		var line, err = g.reader.ReadString('\n')
		if err == io.EOF {
			return errQuit
		}
		if err != nil {
			return err
		}
		if line == "quit\n" || line == "quit\r\n" {
			return errQuit
		}
		var sq, ok = ParseMove(line)
		if !ok {
			fmt.Println("cannot parse move; use file+rank, like d3")
			continue
		}
		if g.applyHumanMove(sq) {
			g.side = g.side.Opponent()
			return nil
		}
		fmt.Printf("illegal move %v\n", FormatMove(sq))
	}
}

// applyHumanMove plays sq for the human if legal. On failure the
// position is unchanged.
func (g *Game) applyHumanMove(sq int) bool {
	var undo common.Undo
	return g.position.MakeMove(sq, g.side, &undo)
}

func (g *Game) engineTurn() error {
	var result = g.engine.Search(common.SearchParams{
		Position: g.position,
		Side:     g.side,
		Limits: common.LimitsType{
			MoveTime: thinkTime(&g.position, g.cfg.MoveTime),
			Depth:    g.cfg.MaxDepth,
		},
	})
	if result.Move == common.MoveNone {
		// no legal move; the pass branch above handles it next loop
		return nil
	}
	var undo common.Undo
	if !g.position.MakeMove(result.Move, g.side, &undo) {
		return fmt.Errorf("engine produced illegal move %v", result.Move)
	}
	fmt.Printf("%v plays %v\n", g.side, FormatMove(result.Move))
	if g.cfg.LogSearch {
		fmt.Printf("depth %d score %d nodes %d time %v researches %d\n",
			result.Depth, result.Score, result.Nodes,
			result.Time.Round(time.Millisecond), result.ReSearches)
	}
	g.side = g.side.Opponent()
	return nil
}

func (g *Game) printResult() {
	var black = g.position.Count(common.Black)
	var white = g.position.Count(common.White)
	fmt.Printf("Game over. %v %d : %d %v. ", blackDisc, black, white, whiteDisc)
	switch {
	case black > white:
		fmt.Println("Black wins.")
	case white > black:
		fmt.Println("White wins.")
	default:
		fmt.Println("Draw.")
	}
}

// thinkTime picks the per-decision budget from the game phase: short
// in the opening, longest in the endgame where exact lines pay off.
func thinkTime(p *common.Position, base time.Duration) time.Duration {
	switch common.GamePhase(p.Occupied()) {
	case common.Opening:
		return base / 2
	case common.Midgame:
		return base
	default:
		return base * 2
	}
}
