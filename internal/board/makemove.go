package board

// rightsRevokedBy maps a square to the castling rights lost when a move
// touches it. Keyed by square rather than piece identity, so a rook moving
// off its home square and a rook captured on it revoke the same right.
var rightsRevokedBy = [64]CastlingRights{
	E1: WhiteKingSideCastle | WhiteQueenSideCastle,
	H1: WhiteKingSideCastle,
	A1: WhiteQueenSideCastle,
	E8: BlackKingSideCastle | BlackQueenSideCastle,
	H8: BlackKingSideCastle,
	A8: BlackQueenSideCastle,
}

// behind returns the square one rank behind sq from the mover's point of
// view: the square an en-passant-captured pawn actually occupies.
func behind(sq Square, mover Color) Square {
	if mover == White {
		return sq - 8
	}
	return sq + 8
}

// castleRookSquares returns the rook's origin and destination for a castling
// move described by the king's from/to squares.
func castleRookSquares(from, to Square) (rookFrom, rookTo Square) {
	if to > from { // king side
		return from + 3, from + 1
	}
	return from - 4, from - 1
}

// MakeMove applies a move to the position: it relocates the moved piece,
// appends the move to the log, flips the side to move, and resolves the
// special-move bookkeeping (promotion, en passant, castling, rights
// revocation, en passant target). Every make can be exactly reversed by
// UndoMove.
func (p *Position) MakeMove(m Move) {
	p.history = append(p.history, undoState{p.CastlingRights, p.EnPassant})

	us := m.Moved.Color()
	p.squares[m.From] = NoPiece
	p.squares[m.To] = m.Moved

	if m.Moved.Type() == King {
		p.KingSquare[us] = m.To
	}

	if m.IsPromotion() {
		p.squares[m.To] = NewPiece(m.Promotion, us)
	}

	if m.EnPassant {
		p.squares[behind(m.To, us)] = NoPiece
	}

	if m.Castle {
		rookFrom, rookTo := castleRookSquares(m.From, m.To)
		p.squares[rookTo] = p.squares[rookFrom]
		p.squares[rookFrom] = NoPiece
	}

	// The en passant target exists only immediately after a double pawn push.
	if m.Moved.Type() == Pawn && (m.To-m.From == 16 || m.From-m.To == 16) {
		p.EnPassant = (m.From + m.To) / 2
	} else {
		p.EnPassant = NoSquare
	}

	p.CastlingRights &^= rightsRevokedBy[m.From] | rightsRevokedBy[m.To]

	p.moveLog = append(p.moveLog, m)
	p.SideToMove = p.SideToMove.Other()
	p.status = Ongoing
}

// UndoMove reverses the most recently made move. Moves form a strict stack:
// only the last not-yet-undone move can be taken back. A no-op when the log
// is empty.
func (p *Position) UndoMove() {
	if len(p.moveLog) == 0 {
		return
	}
	m := p.moveLog[len(p.moveLog)-1]
	p.moveLog = p.moveLog[:len(p.moveLog)-1]
	st := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	us := m.Moved.Color()
	p.squares[m.From] = m.Moved
	p.squares[m.To] = m.Captured

	if m.EnPassant {
		// The captured pawn never stood on the destination square.
		p.squares[m.To] = NoPiece
		p.squares[behind(m.To, us)] = m.Captured
	}

	if m.Moved.Type() == King {
		p.KingSquare[us] = m.From
	}

	if m.Castle {
		rookFrom, rookTo := castleRookSquares(m.From, m.To)
		p.squares[rookFrom] = p.squares[rookTo]
		p.squares[rookTo] = NoPiece
	}

	p.CastlingRights = st.rights
	p.EnPassant = st.enPassant
	p.SideToMove = p.SideToMove.Other()
	p.status = Ongoing
}
