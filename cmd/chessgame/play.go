package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/Sankalpingle/ChessGame/board"
	"github.com/Sankalpingle/ChessGame/game"
	"github.com/Sankalpingle/ChessGame/position"
)

var statusText = color.New(color.Bold)

// play runs a two-seat hotseat loop on stdin: select a square, pick
// one of its highlighted destinations, repeat. After checkmate or
// stalemate only "reset" and "quit" are accepted.
func play() error {
	log.Println("============ play")
	g := game.New()
	reader := bufio.NewReader(os.Stdin)

	render(g, nil)
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		input := strings.TrimSpace(line)
		switch input {
		case "quit", "exit":
			return nil
		case "reset":
			g.Reset()
			render(g, nil)
			continue
		case "":
			continue
		}

		if g.State().Phase.IsTerminal() {
			fmt.Println("game over, type reset to start again")
			continue
		}

		sq, err := position.NewPosFromNotation(input)
		if err != nil {
			fmt.Println("enter a square like e2, or reset/quit")
			continue
		}
		mvs, err := g.LegalMoves(sq)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if len(mvs) == 0 {
			fmt.Printf("no moves from %s\n", sq)
			continue
		}

		marks := make([]position.Pos, 0, len(mvs))
		for _, mv := range mvs {
			marks = append(marks, mv.To)
		}
		render(g, marks)

		mv, ok, err := pickDestination(reader, mvs)
		if err != nil {
			return err
		}
		if !ok {
			render(g, nil)
			continue
		}

		st := g.ApplyMove(mv)
		render(g, nil)
		if st.Phase.IsTerminal() {
			fmt.Println("type reset to start again")
		}
	}
}

func pickDestination(reader *bufio.Reader, mvs []board.Move) (board.Move, bool, error) {
	for {
		fmt.Print("to> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return board.Move{}, false, nil
			}
			return board.Move{}, false, err
		}
		input := strings.TrimSpace(line)
		if input == "" {
			return board.Move{}, false, nil
		}
		to, err := position.NewPosFromNotation(input)
		if err != nil {
			fmt.Println("enter a highlighted square, or an empty line to cancel")
			continue
		}
		for _, mv := range mvs {
			if mv.To == to {
				return mv, true, nil
			}
		}
		fmt.Printf("%s is not reachable\n", to)
	}
}

func render(g *game.Game, marks []position.Pos) {
	fmt.Println(g.Draw(marks...))
	st := g.State()
	switch st.Phase {
	case game.PhaseCheckmate:
		statusText.Printf("%s is in checkmate. %s wins!\n", st.SideToMove, st.Winner)
	case game.PhaseStalemate:
		statusText.Println("Stalemate. Draw.")
	default:
		if st.InCheck {
			statusText.Printf("%s to move (Check)\n", st.SideToMove)
		} else {
			statusText.Printf("%s to move\n", st.SideToMove)
		}
	}
}
