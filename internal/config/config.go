package config

import (
	"os"
	"strconv"
	"time"

	// this will automatically load your .env file:
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	// MaxDepth caps iterative deepening per decision.
	MaxDepth int
	// MoveTime is the midgame budget per engine decision; the shell
	// scales it down for the opening and up for the endgame.
	MoveTime time.Duration
	// HumanBlack selects which color the human plays.
	HumanBlack bool
	// LogSearch prints a search summary line after each engine move.
	LogSearch bool
}

func Load() *Config {
	return &Config{
		MaxDepth:   intEnv("OTHELLO_MAX_DEPTH", 16),
		MoveTime:   time.Duration(intEnv("OTHELLO_MOVE_TIME_MS", 2000)) * time.Millisecond,
		HumanBlack: boolEnv("OTHELLO_HUMAN_BLACK", true),
		LogSearch:  boolEnv("OTHELLO_LOG_SEARCH", false),
	}
}

func intEnv(name string, def int) int {
	var s = os.Getenv(name)
	if s == "" {
		return def
	}
	var v, err = strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func boolEnv(name string, def bool) bool {
	var s = os.Getenv(name)
	if s == "" {
		return def
	}
	var v, err = strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return v
}
