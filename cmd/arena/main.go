// Command arena plays paired self-play matches between the phase-aware
// evaluator and the static-weights baseline, with colors swapped within
// each pair.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"othello/pkg/engine"
	"othello/pkg/eval"
)

type Config struct {
	Games       int
	Concurrency int
	MoveTimeMs  int
	Depth       int
	OpeningPly  int
}

var config Config

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	flag.IntVar(&config.Games, "games", 40, "Number of games (paired)")
	flag.IntVar(&config.Concurrency, "concurrency", 4, "Number of concurrent games")
	flag.IntVar(&config.MoveTimeMs, "movetime", 100, "Milliseconds per decision")
	flag.IntVar(&config.Depth, "depth", 8, "Maximum search depth")
	flag.IntVar(&config.OpeningPly, "opening", 4, "Random opening plies per pair")
	flag.Parse()

	log.Printf("%+v", config)

	var err = run(context.Background(), config)
	if err != nil {
		log.Println(err)
	}
}

func newEngineA() *engine.Engine {
	return engine.NewEngine(eval.NewEvaluationService())
}

func newEngineB() *engine.Engine {
	return engine.NewEngine(eval.NewWeightedEvaluationService())
}

func moveTime() time.Duration {
	return time.Duration(config.MoveTimeMs) * time.Millisecond
}
