package board

// Color identifies a side.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType is the kind of a chess piece, independent of color.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Piece packs a PieceType and a Color into one byte. NoPiece is the zero
// value, so an empty mailbox cell and the zero Move are both recognizably
// blank. Encoded as 1 + pieceType + color*6.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1 + Piece(Pawn)
	WhiteKnight Piece = 1 + Piece(Knight)
	WhiteBishop Piece = 1 + Piece(Bishop)
	WhiteRook   Piece = 1 + Piece(Rook)
	WhiteQueen  Piece = 1 + Piece(Queen)
	WhiteKing   Piece = 1 + Piece(King)
	BlackPawn   Piece = 7 + Piece(Pawn)
	BlackKnight Piece = 7 + Piece(Knight)
	BlackBishop Piece = 7 + Piece(Bishop)
	BlackRook   Piece = 7 + Piece(Rook)
	BlackQueen  Piece = 7 + Piece(Queen)
	BlackKing   Piece = 7 + Piece(King)
)

// NewPiece creates a Piece from a type and a color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return 1 + Piece(pt) + Piece(c)*6
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	if p == NoPiece || p > BlackKing {
		return NoPieceType
	}
	return PieceType((p - 1) % 6)
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	if p == NoPiece || p > BlackKing {
		return NoColor
	}
	return Color((p - 1) / 6)
}

// String returns the FEN-style letter for the piece, uppercase for White.
func (p Piece) String() string {
	if p == NoPiece || p > BlackKing {
		return "."
	}
	return string("PNBRQKpnbrqk"[p-1])
}
