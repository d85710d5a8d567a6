// Command woodpusher plays a terminal game against the engine. It is the
// external collaborator of the core: it only reads position snapshots and
// submits moves through the game package.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"woodpusher/internal/board"
	"woodpusher/internal/game"
)

var (
	depth    = flag.Int("depth", 3, "engine search depth in plies")
	engineVs = flag.Bool("selfplay", false, "let the engine play both sides")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	g := game.New()
	in := bufio.NewScanner(os.Stdin)

	fmt.Println(g)
	fmt.Println("enter moves like e2e4; commands: undo, reset, quit")

	for {
		if done := printStatus(g); done {
			return
		}

		if *engineVs || g.SideToMove() == board.Black {
			m, ok := g.EngineMove(*depth)
			if !ok {
				return
			}
			fmt.Printf("%s plays %s\n\n%s\n", g.SideToMove().Other(), m, g)
			continue
		}

		fmt.Printf("%s> ", g.SideToMove())
		if !in.Scan() {
			return
		}
		line := strings.TrimSpace(strings.ToLower(in.Text()))
		switch line {
		case "":
			continue
		case "quit", "exit":
			return
		case "undo":
			// Take back the engine reply and the player's move together.
			g.Undo()
			g.Undo()
			fmt.Println(g)
			continue
		case "reset":
			g.Reset()
			fmt.Println(g)
			continue
		}

		from, to, err := parseCoordinates(line)
		if err != nil {
			log.Printf("bad input %q: %v", line, err)
			continue
		}
		if !g.Submit(from, to) {
			log.Printf("illegal move %q", line)
			continue
		}
		fmt.Println(g)
	}
}

// printStatus reports check and terminal states, returning true when the
// game is over.
func printStatus(g *game.Game) bool {
	switch g.Status() {
	case board.Checkmate:
		fmt.Printf("checkmate, %s wins\n", g.SideToMove().Other())
		return true
	case board.Stalemate:
		fmt.Println("stalemate")
		return true
	}
	if g.InCheck() {
		fmt.Printf("%s is in check\n", g.SideToMove())
	}
	return false
}

// parseCoordinates splits coordinate input ("e2e4") into two squares. A
// trailing promotion letter is tolerated and ignored: promotion resolves to
// a queen.
func parseCoordinates(s string) (board.Square, board.Square, error) {
	if len(s) != 4 && len(s) != 5 {
		return board.NoSquare, board.NoSquare, fmt.Errorf("want four characters")
	}
	from, err := board.ParseSquare(s[0:2])
	if err != nil {
		return board.NoSquare, board.NoSquare, err
	}
	to, err := board.ParseSquare(s[2:4])
	if err != nil {
		return board.NoSquare, board.NoSquare, err
	}
	return from, to, nil
}
