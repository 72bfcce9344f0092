package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/Sankalpingle/ChessGame/board"
)

func step(fen string, delayMS int) error {
	log.Println("============ step")
	var (
		timesGenerateMoves []time.Duration
		timesApply         []time.Duration
		timesState         []time.Duration
	)
	b, _, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	r := rand.New(rand.NewSource(1))
stepLoop:
	for step := 0; step < 5000; step++ {
		t1 := time.Now()
		mvs := b.GenerateMoves(b.Turn())
		t2 := time.Now()
		timesGenerateMoves = append(timesGenerateMoves, t2.Sub(t1))
		if len(mvs) == 0 {
			break stepLoop
		}
		mv := mvs[r.Intn(len(mvs))]

		t1 = time.Now()
		b.Apply(mv)
		t2 = time.Now()
		timesApply = append(timesApply, t2.Sub(t1))

		t1 = time.Now()
		st := b.State()
		t2 = time.Now()
		timesState = append(timesState, t2.Sub(t1))

		fmt.Printf("\n===== [#%d] %s: %s\n", step/2+1, mv.IsTurn, mv)
		fmt.Println(b.Draw())
		fmt.Println(b.FEN())
		fmt.Println(b.DebugString())
		if !st.IsRunning() {
			break stepLoop
		}
		<-time.Tick(time.Duration(delayMS) * time.Millisecond)
	}

	avg := func(ds []time.Duration) time.Duration {
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return time.Duration(s.Seconds() / float64(len(ds)) * float64(time.Second))
	}

	fmt.Println()
	fmt.Println(b.State())
	fmt.Println("genmv:", avg(timesGenerateMoves))
	fmt.Println("apply:", avg(timesApply))
	fmt.Println("state:", avg(timesState))
	return nil
}
