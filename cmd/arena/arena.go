package main

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"
)

func run(ctx context.Context, config Config) error {
	log.Println("arena started")
	defer log.Println("arena finished")

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)

	g.Go(func() error {
		defer close(gameInfos)
		return generateGames(ctx, config, gameInfos)
	})

	g.Go(func() error {
		return showResults(ctx, gameResults)
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < config.Concurrency; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, config, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	return g.Wait()
}

func playGames(
	ctx context.Context,
	config Config,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	var engineA = newEngineA()
	var engineB = newEngineB()
	for info := range gameInfos {
		var res, err = playGame(engineA, engineB, config, info)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}

func generateGames(ctx context.Context, config Config, gameInfos chan<- gameInfo) error {
	for i := 0; i < config.Games; i++ {
		var info = gameInfo{
			gameNumber:     i,
			openingSeed:    int64(i / 2),
			engineAIsBlack: i%2 == 0,
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- info:
		}
	}
	return nil
}
