package board

// Move describes one state transition. It is immutable once constructed and
// compares structurally: two moves built from the same position with the
// same from/to squares are equal regardless of where they were built.
//
// The zero Move is the null move; IsNull reports it.
type Move struct {
	From      Square
	To        Square
	Moved     Piece
	Captured  Piece     // NoPiece for quiet moves; the enemy pawn for en passant
	Promotion PieceType // target piece when a pawn reaches the last rank, else NoPieceType
	Castle    bool
	EnPassant bool
}

// NewMove builds a move from two squares, reading the moved and captured
// pieces off the position. A pawn landing on the farthest rank is flagged as
// a promotion and auto-resolves to a queen; the Promotion field carries the
// target piece so a promotion chooser can be added without changing Move.
func NewMove(p *Position, from, to Square) Move {
	m := Move{
		From:      from,
		To:        to,
		Moved:     p.PieceAt(from),
		Captured:  p.PieceAt(to),
		Promotion: NoPieceType,
	}
	if m.Moved.Type() == Pawn && to.RelativeRank(m.Moved.Color()) == 7 {
		m.Promotion = Queen
	}
	return m
}

// NewEnPassantMove builds a pawn capture onto the en passant target square.
// The captured pawn sits one rank behind the destination, so it is
// synthesized here rather than read from the (empty) destination.
func NewEnPassantMove(p *Position, from, to Square) Move {
	return Move{
		From:      from,
		To:        to,
		Moved:     p.PieceAt(from),
		Captured:  NewPiece(Pawn, p.PieceAt(from).Color().Other()),
		Promotion: NoPieceType,
		EnPassant: true,
	}
}

// NewCastleMove builds a castling move described by the king's two-square
// hop. The rook relocation happens on make, not as a second move.
func NewCastleMove(p *Position, from, to Square) Move {
	return Move{
		From:      from,
		To:        to,
		Moved:     p.PieceAt(from),
		Promotion: NoPieceType,
		Castle:    true,
	}
}

// IsNull reports whether this is the zero move, used as the "no move"
// sentinel by the search.
func (m Move) IsNull() bool {
	return m.Moved == NoPiece
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return !m.IsNull() && m.Promotion != NoPieceType
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece
}

// String returns the move in coordinate notation ("e2e4", "e7e8q").
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string("pnbrqk"[m.Promotion])
	}
	return s
}
