package main

import (
	"log"

	"othello/internal/config"
	"othello/shell"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var game = shell.NewGame(config.Load())
	if err := game.Run(); err != nil {
		log.Println(err)
	}
}
