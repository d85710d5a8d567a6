package board

// Piece movement tables as {rank, file} deltas.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	rookDirs      = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopDirs    = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// shift offsets a square by rank/file deltas, reporting whether the result
// is still on the board.
func shift(sq Square, dRank, dFile int) (Square, bool) {
	r := sq.Rank() + dRank
	f := sq.File() + dFile
	if r < 0 || r > 7 || f < 0 || f > 7 {
		return NoSquare, false
	}
	return NewSquare(f, r), true
}

// GenerateLegalMoves returns every legal move for the side to move, and
// derives the position status: an empty result means Checkmate when the
// mover is in check and Stalemate otherwise.
//
// Legality is decided by the natural recursive definition: apply each
// pseudo-legal move, test whether the mover's king is attacked, take the
// move back.
func (p *Position) GenerateLegalMoves() []Move {
	pseudo := p.GeneratePseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	us := p.SideToMove
	for _, m := range pseudo {
		p.MakeMove(m)
		if !p.IsSquareAttacked(p.KingSquare[us], us.Other()) {
			legal = append(legal, m)
		}
		p.UndoMove()
	}

	if len(legal) == 0 {
		if p.InCheck() {
			p.status = Checkmate
		} else {
			p.status = Stalemate
		}
	} else {
		p.status = Ongoing
	}
	return legal
}

// GeneratePseudoLegalMoves enumerates every move of every piece belonging
// to the side to move, ignoring whether the mover's own king ends up in
// check. Castling is generated separately and appended.
func (p *Position) GeneratePseudoLegalMoves() []Move {
	moves := p.generatePieceMoves(make([]Move, 0, 48))
	return p.generateCastlingMoves(moves)
}

// generatePieceMoves produces all non-castling pseudo-legal moves.
func (p *Position) generatePieceMoves(moves []Move) []Move {
	us := p.SideToMove
	for sq := A1; sq <= H8; sq++ {
		piece := p.squares[sq]
		if piece == NoPiece || piece.Color() != us {
			continue
		}
		switch piece.Type() {
		case Pawn:
			moves = p.pawnMoves(moves, sq)
		case Knight:
			moves = p.leaperMoves(moves, sq, knightOffsets[:])
		case Bishop:
			moves = p.sliderMoves(moves, sq, bishopDirs[:])
		case Rook:
			moves = p.sliderMoves(moves, sq, rookDirs[:])
		case Queen:
			moves = p.sliderMoves(moves, sq, rookDirs[:])
			moves = p.sliderMoves(moves, sq, bishopDirs[:])
		case King:
			moves = p.leaperMoves(moves, sq, kingOffsets[:])
		}
	}
	return moves
}

// pawnMoves generates advances, captures and en passant captures for the
// pawn on from. Moves landing on the farthest rank come back flagged as
// promotions by the Move constructor.
func (p *Position) pawnMoves(moves []Move, from Square) []Move {
	us := p.squares[from].Color()
	dir := 1
	if us == Black {
		dir = -1
	}

	if to, ok := shift(from, dir, 0); ok && p.IsEmpty(to) {
		moves = append(moves, NewMove(p, from, to))
		if from.RelativeRank(us) == 1 {
			if two, ok := shift(from, 2*dir, 0); ok && p.IsEmpty(two) {
				moves = append(moves, NewMove(p, from, two))
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to, ok := shift(from, dir, df)
		if !ok {
			continue
		}
		if target := p.squares[to]; target != NoPiece && target.Color() != us {
			moves = append(moves, NewMove(p, from, to))
		} else if to == p.EnPassant {
			moves = append(moves, NewEnPassantMove(p, from, to))
		}
	}
	return moves
}

// leaperMoves generates fixed-offset moves (knight, king): any on-board
// destination not occupied by an ally.
func (p *Position) leaperMoves(moves []Move, from Square, offsets [][2]int) []Move {
	us := p.squares[from].Color()
	for _, off := range offsets {
		to, ok := shift(from, off[0], off[1])
		if !ok {
			continue
		}
		if target := p.squares[to]; target == NoPiece || target.Color() != us {
			moves = append(moves, NewMove(p, from, to))
		}
	}
	return moves
}

// sliderMoves casts rays (bishop, rook, queen): the ray stops at the first
// occupied square, which is included as a capture when it holds an enemy.
func (p *Position) sliderMoves(moves []Move, from Square, dirs [][2]int) []Move {
	us := p.squares[from].Color()
	for _, d := range dirs {
		for step := 1; step < 8; step++ {
			to, ok := shift(from, d[0]*step, d[1]*step)
			if !ok {
				break
			}
			target := p.squares[to]
			if target == NoPiece {
				moves = append(moves, NewMove(p, from, to))
				continue
			}
			if target.Color() != us {
				moves = append(moves, NewMove(p, from, to))
			}
			break
		}
	}
	return moves
}

// generateCastlingMoves appends the castling moves still available to the
// side to move: the right must be held, the squares between king and rook
// empty, and the king's start square plus the square it passes through not
// attacked. The landing square is vetted by the legality filter like any
// other destination.
func (p *Position) generateCastlingMoves(moves []Move) []Move {
	us := p.SideToMove
	them := us.Other()
	if p.IsSquareAttacked(p.KingSquare[us], them) {
		return moves // no castling out of check
	}

	if us == White {
		if p.CastlingRights.CanCastle(White, true) &&
			p.IsEmpty(F1) && p.IsEmpty(G1) && !p.IsSquareAttacked(F1, them) {
			moves = append(moves, NewCastleMove(p, E1, G1))
		}
		if p.CastlingRights.CanCastle(White, false) &&
			p.IsEmpty(D1) && p.IsEmpty(C1) && p.IsEmpty(B1) && !p.IsSquareAttacked(D1, them) {
			moves = append(moves, NewCastleMove(p, E1, C1))
		}
		return moves
	}

	if p.CastlingRights.CanCastle(Black, true) &&
		p.IsEmpty(F8) && p.IsEmpty(G8) && !p.IsSquareAttacked(F8, them) {
		moves = append(moves, NewCastleMove(p, E8, G8))
	}
	if p.CastlingRights.CanCastle(Black, false) &&
		p.IsEmpty(D8) && p.IsEmpty(C8) && p.IsEmpty(B8) && !p.IsSquareAttacked(D8, them) {
		moves = append(moves, NewCastleMove(p, E8, C8))
	}
	return moves
}

// IsSquareAttacked reports whether the given color attacks the square,
// probing outward from it: pawn capture pattern, knight and king offsets,
// then sliding rays for rooks, bishops and queens.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	// A pawn of color by attacks sq from one rank back on adjacent files.
	dr := -1
	if by == Black {
		dr = 1
	}
	pawn := NewPiece(Pawn, by)
	for _, df := range [2]int{-1, 1} {
		if from, ok := shift(sq, dr, df); ok && p.squares[from] == pawn {
			return true
		}
	}

	knight := NewPiece(Knight, by)
	for _, off := range knightOffsets {
		if from, ok := shift(sq, off[0], off[1]); ok && p.squares[from] == knight {
			return true
		}
	}

	king := NewPiece(King, by)
	for _, off := range kingOffsets {
		if from, ok := shift(sq, off[0], off[1]); ok && p.squares[from] == king {
			return true
		}
	}

	rook := NewPiece(Rook, by)
	queen := NewPiece(Queen, by)
	for _, d := range rookDirs {
		for step := 1; step < 8; step++ {
			from, ok := shift(sq, d[0]*step, d[1]*step)
			if !ok {
				break
			}
			if piece := p.squares[from]; piece != NoPiece {
				if piece == rook || piece == queen {
					return true
				}
				break
			}
		}
	}

	bishop := NewPiece(Bishop, by)
	for _, d := range bishopDirs {
		for step := 1; step < 8; step++ {
			from, ok := shift(sq, d[0]*step, d[1]*step)
			if !ok {
				break
			}
			if piece := p.squares[from]; piece != NoPiece {
				if piece == bishop || piece == queen {
					return true
				}
				break
			}
		}
	}

	return false
}

// InCheck reports whether the side to move is currently in check.
func (p *Position) InCheck() bool {
	return p.IsSquareAttacked(p.KingSquare[p.SideToMove], p.SideToMove.Other())
}
