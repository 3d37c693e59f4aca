package main

import (
	"context"
	"fmt"
	"math"
)

func showResults(ctx context.Context, gameResults <-chan gameResult) error {
	var wins, losses, draws int
	for res := range gameResults {
		switch res.result {
		case gameResultAWins:
			wins++
		case gameResultBWins:
			losses++
		default:
			draws++
		}
		fmt.Printf("game %d: %s (disc diff %+d) | A %d B %d draws %d\n",
			res.gameInfo.gameNumber, resultName(res.result),
			res.discDiff, wins, losses, draws)
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
	computeStat(wins, losses, draws)
	return nil
}

func resultName(result int) string {
	switch result {
	case gameResultAWins:
		return "A wins"
	case gameResultBWins:
		return "B wins"
	}
	return "draw"
}

// https://www.chessprogramming.org/Match_Statistics
func computeStat(wins, losses, draws int) {
	var games = wins + losses + draws
	if games == 0 || wins+losses == 0 {
		fmt.Println("not enough decisive games")
		return
	}
	var winningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	var eloDifference = -math.Log(1/winningFraction-1) * 400 / math.Ln10
	var los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	fmt.Printf("Winning fraction: %.1f%%\n", winningFraction*100)
	fmt.Printf("Elo difference: %.f\n", eloDifference)
	fmt.Printf("LOS: %.1f%%\n", los*100)
}
