package board

import "testing"

// playMoves applies a sequence of coordinate moves ("e2e4"), resolving each
// against the legal-move list so special-move flags come along.
func playMoves(t *testing.T, p *Position, moves ...string) {
	t.Helper()
	for _, s := range moves {
		p.MakeMove(findMove(t, p, s))
	}
}

func findMove(t *testing.T, p *Position, s string) Move {
	t.Helper()
	from, err := ParseSquare(s[0:2])
	if err != nil {
		t.Fatalf("bad square in %q: %v", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		t.Fatalf("bad square in %q: %v", s, err)
	}
	for _, m := range p.GenerateLegalMoves() {
		if m.From == from && m.To == to {
			return m
		}
	}
	t.Fatalf("no legal move %s in\n%s", s, p)
	return Move{}
}

// perft counts leaf nodes of the legal-move tree, the canonical move
// generator smoke test.
func perft(p *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves := p.GenerateLegalMoves()
	if depth == 1 {
		return int64(len(moves))
	}
	var nodes int64
	for _, m := range moves {
		p.MakeMove(m)
		nodes += perft(p, depth-1)
		p.UndoMove()
	}
	return nodes
}

func TestPerftStartingPosition(t *testing.T) {
	pos := NewPosition()

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		// Deeper depths are correct but slow with make/undo legality
		// filtering; enable for thorough runs:
		// {4, 197281},
	}

	for _, tc := range tests {
		got := perft(pos, tc.depth)
		if got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

func TestFoolsMate(t *testing.T) {
	pos := NewPosition()
	playMoves(t, pos, "f2f3", "e7e5", "g2g4", "d8h4")

	moves := pos.GenerateLegalMoves()
	if len(moves) != 0 {
		t.Fatalf("expected no legal moves, got %d: %v", len(moves), moves)
	}
	if !pos.InCheck() {
		t.Error("white should be in check")
	}
	if pos.Status() != Checkmate {
		t.Errorf("status = %v, want checkmate", pos.Status())
	}
}

func TestStalemate(t *testing.T) {
	// Black king cornered on a8 by the white queen and king, not in check.
	p := &Position{EnPassant: NoSquare, SideToMove: Black}
	p.put(NewPiece(King, White), B6)
	p.put(NewPiece(Queen, White), C7)
	p.put(NewPiece(King, Black), A8)

	moves := p.GenerateLegalMoves()
	if len(moves) != 0 {
		t.Fatalf("expected no legal moves, got %v", moves)
	}
	if p.InCheck() {
		t.Error("black should not be in check")
	}
	if p.Status() != Stalemate {
		t.Errorf("status = %v, want stalemate", p.Status())
	}
}

func TestEnPassantWindow(t *testing.T) {
	pos := NewPosition()
	playMoves(t, pos, "e2e4", "a7a6", "e4e5", "d7d5")

	if pos.EnPassant != D6 {
		t.Fatalf("en passant target = %v, want d6", pos.EnPassant)
	}

	var captures []Move
	for _, m := range pos.GenerateLegalMoves() {
		if m.EnPassant {
			captures = append(captures, m)
		}
	}
	if len(captures) != 1 {
		t.Fatalf("expected exactly one en passant capture, got %v", captures)
	}
	ep := captures[0]
	if ep.From != E5 || ep.To != D6 {
		t.Errorf("en passant move = %v, want e5d6", ep)
	}
	if ep.Captured != NewPiece(Pawn, Black) {
		t.Errorf("captured = %v, want black pawn", ep.Captured)
	}

	// Declining closes the window: after any other move the capture is gone.
	playMoves(t, pos, "b1c3", "a6a5")
	for _, m := range pos.GenerateLegalMoves() {
		if m.EnPassant {
			t.Errorf("en passant capture still available: %v", m)
		}
	}
}

func TestEnPassantMakeUndo(t *testing.T) {
	pos := NewPosition()
	playMoves(t, pos, "e2e4", "a7a6", "e4e5", "d7d5")

	before := snapshot(pos)
	m := findMove(t, pos, "e5d6")
	pos.MakeMove(m)

	if pos.PieceAt(D6) != NewPiece(Pawn, White) {
		t.Errorf("d6 = %v, want white pawn", pos.PieceAt(D6))
	}
	if pos.PieceAt(D5) != NoPiece {
		t.Errorf("d5 = %v, want empty after en passant capture", pos.PieceAt(D5))
	}

	pos.UndoMove()
	if got := snapshot(pos); got != before {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, before)
	}
}

func TestCastlingKingSide(t *testing.T) {
	pos := NewPosition()
	playMoves(t, pos, "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5")

	m := findMove(t, pos, "e1g1")
	if !m.Castle {
		t.Fatalf("e1g1 not flagged as castle: %+v", m)
	}

	before := snapshot(pos)
	pos.MakeMove(m)
	if pos.PieceAt(G1) != NewPiece(King, White) || pos.PieceAt(F1) != NewPiece(Rook, White) {
		t.Errorf("after castling: g1=%v f1=%v", pos.PieceAt(G1), pos.PieceAt(F1))
	}
	if pos.PieceAt(E1) != NoPiece || pos.PieceAt(H1) != NoPiece {
		t.Errorf("after castling: e1=%v h1=%v", pos.PieceAt(E1), pos.PieceAt(H1))
	}
	if pos.KingSquare[White] != G1 {
		t.Errorf("king cache = %v, want g1", pos.KingSquare[White])
	}
	if pos.CastlingRights.CanCastle(White, true) || pos.CastlingRights.CanCastle(White, false) {
		t.Errorf("white rights not revoked: %v", pos.CastlingRights)
	}

	pos.UndoMove()
	if got := snapshot(pos); got != before {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, before)
	}
}

func TestCastlingBlockedByAttack(t *testing.T) {
	// Black rook on f8 covers f1, the square the white king passes through.
	p := &Position{EnPassant: NoSquare, CastlingRights: WhiteKingSideCastle}
	p.put(NewPiece(King, White), E1)
	p.put(NewPiece(Rook, White), H1)
	p.put(NewPiece(King, Black), E8)
	p.put(NewPiece(Rook, Black), F8)

	for _, m := range p.GenerateLegalMoves() {
		if m.Castle {
			t.Errorf("castling generated through attacked square: %v", m)
		}
	}

	// The same setup with the rook on a8 leaves the path clear.
	p2 := &Position{EnPassant: NoSquare, CastlingRights: WhiteKingSideCastle}
	p2.put(NewPiece(King, White), E1)
	p2.put(NewPiece(Rook, White), H1)
	p2.put(NewPiece(King, Black), E8)
	p2.put(NewPiece(Rook, Black), A8)

	found := false
	for _, m := range p2.GenerateLegalMoves() {
		if m.Castle && m.To == G1 {
			found = true
		}
	}
	if !found {
		t.Error("expected king-side castle to be available")
	}
}

func TestCastlingRightsRevocation(t *testing.T) {
	pos := NewPosition()
	playMoves(t, pos, "g1f3", "g8f6", "h1g1", "h8g8")

	if pos.CastlingRights.CanCastle(White, true) {
		t.Error("white king-side right should be gone after h1g1")
	}
	if pos.CastlingRights.CanCastle(Black, true) {
		t.Error("black king-side right should be gone after h8g8")
	}
	if !pos.CastlingRights.CanCastle(White, false) || !pos.CastlingRights.CanCastle(Black, false) {
		t.Error("queen-side rights should be untouched")
	}

	// Returning home does not restore the right, and undoing unrelated
	// moves must not resurrect it either.
	playMoves(t, pos, "g1h1", "g8h8", "b1c3", "b8c6")
	pos.UndoMove()
	pos.UndoMove()
	if pos.CastlingRights.CanCastle(White, true) || pos.CastlingRights.CanCastle(Black, true) {
		t.Errorf("king-side rights resurrected: %v", pos.CastlingRights)
	}
}

func TestRookCaptureRevokesRights(t *testing.T) {
	// Black rook takes the h1 rook down the open h-file: white loses the
	// king-side right even though the white king never moved.
	p := &Position{EnPassant: NoSquare, CastlingRights: AllCastling, SideToMove: Black}
	p.put(NewPiece(King, White), E1)
	p.put(NewPiece(Rook, White), A1)
	p.put(NewPiece(Rook, White), H1)
	p.put(NewPiece(King, Black), E8)
	p.put(NewPiece(Rook, Black), A8)
	p.put(NewPiece(Rook, Black), H8)

	before := p.CastlingRights
	p.MakeMove(findMove(t, p, "h8h1"))

	if p.CastlingRights.CanCastle(White, true) {
		t.Error("white king-side right should be revoked by rook capture on h1")
	}
	if p.CastlingRights.CanCastle(Black, true) {
		t.Error("black king-side right should be revoked by the rook leaving h8")
	}
	if !p.CastlingRights.CanCastle(White, false) {
		t.Error("white queen-side right should survive")
	}

	p.UndoMove()
	if p.CastlingRights != before {
		t.Errorf("rights after undo = %v, want %v", p.CastlingRights, before)
	}
}

func TestPromotionAutoQueens(t *testing.T) {
	// March the a-pawn through b7xa8 territory: set up a minimal race.
	p := &Position{EnPassant: NoSquare, SideToMove: White}
	p.put(NewPiece(King, White), E1)
	p.put(NewPiece(Pawn, White), B7)
	p.put(NewPiece(King, Black), E8)
	p.put(NewPiece(Rook, Black), A8)

	capture := findMove(t, p, "b7a8")
	if !capture.IsPromotion() || capture.Promotion != Queen {
		t.Fatalf("b7a8 should promote to queen: %+v", capture)
	}

	before := snapshot(p)
	p.MakeMove(capture)
	if p.PieceAt(A8) != NewPiece(Queen, White) {
		t.Errorf("a8 = %v, want white queen", p.PieceAt(A8))
	}
	p.UndoMove()
	if got := snapshot(p); got != before {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, before)
	}
	if p.PieceAt(B7) != NewPiece(Pawn, White) {
		t.Errorf("b7 = %v, want the pawn back", p.PieceAt(B7))
	}
}

func TestPinnedPieceMayNotMove(t *testing.T) {
	pos := NewPosition()
	// 1.e4 d5 2.exd5 Nf6 3.Bb5+ Nc6 leaves the c6 knight in an absolute
	// pin; after a white waiting move it still may not budge.
	playMoves(t, pos, "e2e4", "d7d5", "e4d5", "g8f6", "f1b5", "b8c6", "c2c3")

	for _, m := range pos.GenerateLegalMoves() {
		if m.From == C6 {
			t.Errorf("pinned knight allowed to move: %v", m)
		}
	}
}
