// Package engine implements the material evaluator and the negamax
// alpha-beta search over the board package's make/undo protocol.
package engine

import "woodpusher/internal/board"

// CheckmateScore is the mate sentinel: larger in magnitude than any
// achievable material sum (9 queens and assorted rooks fall well short of
// it), so a forced mate always outweighs material.
const CheckmateScore = 1000

// pieceScore holds the material value per piece type. The king scores zero:
// both sides always have exactly one, and mate is scored by sentinel.
var pieceScore = [board.NoPieceType]int{
	board.Pawn:   1,
	board.Knight: 3,
	board.Bishop: 3,
	board.Rook:   5,
	board.Queen:  10,
	board.King:   0,
}

// ScoreBoard evaluates the position from White's point of view: positive
// favors White. Checkmate and stalemate take precedence over material and
// rely on the status derived by the most recent legal-move generation.
func ScoreBoard(p *board.Position) int {
	switch p.Status() {
	case board.Checkmate:
		if p.SideToMove == board.White {
			return -CheckmateScore
		}
		return CheckmateScore
	case board.Stalemate:
		return 0
	}

	score := 0
	for _, piece := range p.Squares() {
		if piece == board.NoPiece {
			continue
		}
		if piece.Color() == board.White {
			score += pieceScore[piece.Type()]
		} else {
			score -= pieceScore[piece.Type()]
		}
	}
	return score
}
