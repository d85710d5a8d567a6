// Package game exposes the narrow session interface consumed by frontends:
// a read-only snapshot of the position plus commands to submit a move,
// undo, reset, and request an engine move.
package game

import (
	"golang.org/x/exp/slices"

	"woodpusher/internal/board"
	"woodpusher/internal/engine"
)

// Game owns one Position for a single in-memory session and keeps the legal
// moves for the current side cached, refreshing them after every mutation.
type Game struct {
	pos   *board.Position
	legal []board.Move
}

// New starts a session from the standard starting arrangement.
func New() *Game {
	g := &Game{pos: board.NewPosition()}
	g.refresh()
	return g
}

func (g *Game) refresh() {
	g.legal = g.pos.GenerateLegalMoves()
}

// Board returns a copy of the board contents, indexed by board.Square.
func (g *Game) Board() [64]board.Piece {
	return g.pos.Squares()
}

// SideToMove returns whose turn it is.
func (g *Game) SideToMove() board.Color {
	return g.pos.SideToMove
}

// Status returns the derived result for the current position.
func (g *Game) Status() board.Status {
	return g.pos.Status()
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return g.pos.InCheck()
}

// LegalMoves returns the cached legal moves for the side to move.
func (g *Game) LegalMoves() []board.Move {
	return slices.Clone(g.legal)
}

// String renders the current board.
func (g *Game) String() string {
	return g.pos.String()
}

// Submit applies the externally constructed move described by two board
// coordinates if it matches a currently legal move, and reports whether it
// was accepted. Matching is structural, by from/to square, so callers need
// not synthesize castling or en passant flags; anything else is silently
// discarded with no state change.
func (g *Game) Submit(from, to board.Square) bool {
	i := slices.IndexFunc(g.legal, func(m board.Move) bool {
		return m.From == from && m.To == to
	})
	if i < 0 {
		return false
	}
	g.pos.MakeMove(g.legal[i])
	g.refresh()
	return true
}

// Undo takes back the last applied move. A no-op when nothing has been
// played.
func (g *Game) Undo() {
	g.pos.UndoMove()
	g.refresh()
}

// Reset discards the session and recreates the starting position.
func (g *Game) Reset() {
	g.pos.Reset()
	g.refresh()
}

// EngineMove searches the current legal moves to the given depth, applies
// the chosen move and returns it. Falls back to a uniformly random move if
// the search yields no candidate. Returns false, without state change, at a
// terminal position.
func (g *Game) EngineMove(depth int) (board.Move, bool) {
	if len(g.legal) == 0 {
		return board.Move{}, false
	}
	m := engine.FindBestMove(g.pos, g.legal, depth).Move
	if m.IsNull() {
		m = engine.FindRandomMove(g.legal)
	}
	g.pos.MakeMove(m)
	g.refresh()
	return m, true
}
