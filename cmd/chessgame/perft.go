package main

import (
	"fmt"
	"log"

	"github.com/Sankalpingle/ChessGame/bench"
)

func perft(depth int, fen string) error {
	log.Printf("============ perft(%d)\n", depth)
	out := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for line := range out {
			fmt.Println(line)
		}
	}()
	_, err := bench.Perft(depth, fen, true, out)
	close(out)
	<-done
	return err
}
