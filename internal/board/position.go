package board

import "strings"

// CastlingRights is a bitmask of the four castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// CanCastle reports whether the given side still holds the right for the
// given wing.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// String renders the rights in the conventional KQkq form.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	var b strings.Builder
	if cr&WhiteKingSideCastle != 0 {
		b.WriteByte('K')
	}
	if cr&WhiteQueenSideCastle != 0 {
		b.WriteByte('Q')
	}
	if cr&BlackKingSideCastle != 0 {
		b.WriteByte('k')
	}
	if cr&BlackQueenSideCastle != 0 {
		b.WriteByte('q')
	}
	return b.String()
}

// Status is the derived game result, recomputed whenever legal moves are
// requested and never persisted across make/undo.
type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// undoState snapshots the irreversible parts of the position before a move
// is made: castling rights and the en passant target. One entry is pushed
// per make and popped per undo, restoring the exact prior values.
type undoState struct {
	rights    CastlingRights
	enPassant Square
}

// Position is a complete chess position: an 8x8 mailbox plus side to move,
// castling rights, en passant target and the move log that powers undo.
type Position struct {
	squares [64]Piece

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // target square for en passant, NoSquare if none

	// King locations, kept in sync on every make/undo.
	KingSquare [2]Square

	moveLog []Move
	history []undoState
	status  Status
}

// NewPosition creates the standard starting position.
func NewPosition() *Position {
	p := &Position{}
	p.Reset()
	return p
}

// Reset discards all state and rebuilds the initial arrangement: pieces on
// their home ranks, White to move, full castling rights, no en passant
// target, empty move log.
func (p *Position) Reset() {
	*p = Position{
		CastlingRights: AllCastling,
		EnPassant:      NoSquare,
	}
	backRank := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		p.put(NewPiece(backRank[file], White), NewSquare(file, 0))
		p.put(NewPiece(Pawn, White), NewSquare(file, 1))
		p.put(NewPiece(Pawn, Black), NewSquare(file, 6))
		p.put(NewPiece(backRank[file], Black), NewSquare(file, 7))
	}
}

// put places a piece on a square, keeping the king cache in sync.
func (p *Position) put(piece Piece, sq Square) {
	p.squares[sq] = piece
	if piece.Type() == King {
		p.KingSquare[piece.Color()] = sq
	}
}

// PieceAt returns the piece on the given square, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece {
	return p.squares[sq]
}

// IsEmpty reports whether the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.squares[sq] == NoPiece
}

// Squares returns a copy of the board contents, indexed by Square.
func (p *Position) Squares() [64]Piece {
	return p.squares
}

// Status returns the result derived by the most recent legal-move
// generation: Ongoing, Checkmate or Stalemate.
func (p *Position) Status() Status {
	return p.status
}

// MoveCount returns the number of moves currently on the log.
func (p *Position) MoveCount() int {
	return len(p.moveLog)
}

// LastMove returns the most recently made move, or the null move if the log
// is empty.
func (p *Position) LastMove() Move {
	if len(p.moveLog) == 0 {
		return Move{}
	}
	return p.moveLog[len(p.moveLog)-1]
}

// String renders the board from White's perspective with rank and file
// labels.
func (p *Position) String() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte('1' + rank))
		b.WriteString("  ")
		for file := 0; file < 8; file++ {
			b.WriteString(p.squares[NewSquare(file, rank)].String())
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteString("\n   a b c d e f g h\n")
	return b.String()
}
