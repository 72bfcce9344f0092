package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/Sankalpingle/ChessGame/board"
)

const (
	exitOK = iota
	exitErr
)

var (
	movegenRun = flag.Bool("movegen", false, "run movegen mode")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepDelay = flag.Int("step.delay", 10, "per-move delay in milliseconds in step mode")

	perftRun   = flag.Bool("perft", false, "run perft mode")
	perftDepth = flag.Int("perft.depth", 4, "walk depth in perft mode")

	playRun = flag.Bool("play", false, "run interactive play mode")
)

func main() {
	flag.Parse()

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	if *movegenRun {
		return movegen(fen)
	}
	if *stepRun {
		return step(fen, *stepDelay)
	}
	if *perftRun {
		return perft(*perftDepth, fen)
	}
	if *playRun {
		return play()
	}
	flag.Usage()
	return nil
}
