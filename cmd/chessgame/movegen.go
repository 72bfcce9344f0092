package main

import (
	"fmt"
	"log"
	"strconv"

	"golang.org/x/exp/slices"

	"github.com/Sankalpingle/ChessGame/board"
)

func movegen(fen string) error {
	log.Println("============ movegen")
	b, _, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Dump())
	fmt.Println(b.Draw())
	fmt.Println(b.State())
	dumpMoves(b)
	return nil
}

func dumpMoves(b *board.Board) {
	mvs := b.GenerateMoves(b.Turn())
	// display order only; consumers must not rely on generation order
	slices.SortFunc(mvs, func(a, b board.Move) bool {
		return a.UCI() < b.UCI()
	})
	for i, mv := range mvs {
		fmt.Printf("option %*d: [%s] [%s] %s %s %s => %s (cap=%v) (enp=%v) (cas=%s) (pro=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), mv.Algebra(), mv.IsTurn, mv.Piece, mv.From, mv.To, mv.IsCapture, mv.IsEnPassant, mv.IsCastle, mv.IsPromote)
	}
}
