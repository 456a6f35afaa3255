package quickmg_test

import (
	"testing"

	mg "quick-chess/quickmg"
)

func TestCheckmateFoolsMate(t *testing.T) {
	b := mustFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if !b.InCheck(mg.White) {
		t.Fatalf("expected White to be in check")
	}
	if b.HasLegalMoves() || len(b.LegalMoves()) != 0 {
		t.Fatalf("expected no legal moves for White in mate")
	}
	if !b.InCheckmate() || b.InStalemate() {
		t.Fatalf("expected checkmate, not stalemate")
	}
}

func TestStalemate(t *testing.T) {
	b := mustFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if b.InCheck(mg.Black) {
		t.Fatalf("expected Black not in check")
	}
	if !b.InStalemate() || b.InCheckmate() {
		t.Fatalf("expected stalemate")
	}
	if len(b.PseudoLegalMoves()) == 0 {
		t.Fatalf("the king still has pseudo-legal steps")
	}
}

func TestSquareAttacks(t *testing.T) {
	b := mg.Initial()
	cases := []struct {
		sq   mg.Square
		by   mg.Color
		want bool
	}{
		{mg.NewSquare(5, 2), mg.White, true},  // f3: pawns e2/g2 and knight g1
		{mg.NewSquare(4, 3), mg.White, false}, // e4
		{mg.NewSquare(4, 5), mg.Black, true},  // e6
		{mg.NewSquare(4, 5), mg.White, false},
		{mg.E1, mg.Black, false},
		{mg.NoSquare, mg.White, false},
	}
	for _, tc := range cases {
		if got := b.IsSquareAttacked(tc.sq, tc.by); got != tc.want {
			t.Errorf("IsSquareAttacked(%s, %v) = %v", tc.sq, tc.by, got)
		}
	}
}

func TestCastlingLegality(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		move string
		want bool
	}{
		{"path clear", "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", "e1g1", true},
		{"transit square attacked", "4k3/8/8/8/8/8/5r2/R3K2R w KQ - 0 1", "e1g1", false},
		{"other side unaffected", "4k3/8/8/8/8/8/5r2/R3K2R w KQ - 0 1", "e1c1", true},
		{"king in check", "4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1", "e1c1", false},
		{"landing square attacked", "4k3/8/8/8/8/8/6r1/R3K2R w KQ - 0 1", "e1g1", false},
		{"b1 attacked does not matter", "4k3/8/8/8/8/8/1r6/R3K2R w KQ - 0 1", "e1c1", true},
	}
	for _, tc := range cases {
		b := mustFEN(t, tc.fen)
		m := findMove(t, b, tc.move)
		if got := b.IsLegal(m); got != tc.want {
			t.Errorf("%s: IsLegal(%s) = %v want %v", tc.name, tc.move, got, tc.want)
		}
	}
}

func TestPinnedPieceAndEnPassantDiscovery(t *testing.T) {
	// Knight on e2 is pinned against the king by the rook on e8.
	pinned := mustFEN(t, "4r1k1/8/8/8/8/8/4N3/4K3 w - - 0 1")
	for _, m := range pinned.LegalMoves() {
		if m.Piece() == mg.Knight {
			t.Fatalf("pinned knight moved: %s", m)
		}
	}
	// Taking en passant would expose the king on a5 to the rook on h5.
	ep := mustFEN(t, "8/8/8/KPp4r/8/8/8/7k w - c6 0 1")
	m := findMove(t, ep, "b5c6")
	if ep.IsLegal(m) {
		t.Fatalf("en passant exposing the king was accepted")
	}
}

func TestDrawQueries(t *testing.T) {
	if !mustFEN(t, "4k3/8/8/8/8/8/8/4K2R w - - 100 80").IsDrawBy50() {
		t.Fatalf("expected a 50-move draw at halfmove 100")
	}
	if mustFEN(t, "4k3/8/8/8/8/8/8/4K2R w - - 99 80").IsDrawBy50() {
		t.Fatalf("no 50-move draw at halfmove 99")
	}
	cases := []struct {
		fen  string
		want bool
	}{
		{"8/8/8/4k3/8/8/8/4K3 w - - 0 1", true},
		{"8/8/8/4k3/8/8/8/3NK3 w - - 0 1", true},
		{"8/8/8/4k3/8/8/2b5/4K3 w - - 0 1", true},
		{"8/8/8/4k3/8/8/8/2NNK3 w - - 0 1", false},
		{"8/8/8/4k3/8/8/8/3RK3 w - - 0 1", false},
		{"8/8/8/4k3/8/8/4P3/4K3 w - - 0 1", false},
	}
	for _, tc := range cases {
		if got := mustFEN(t, tc.fen).IsInsufficientMaterial(); got != tc.want {
			t.Errorf("IsInsufficientMaterial(%s) = %v", tc.fen, got)
		}
	}
}

func TestMateInOne(t *testing.T) {
	b := mustFEN(t, "7k/6pp/6Q1/8/8/2B5/8/6K1 w - - 0 1")
	if b.InCheckmate() {
		t.Fatalf("not mate before the move")
	}
	after := b.Apply(findMove(t, b, "g6g7"))
	if !after.InCheck(mg.Black) || !after.InCheckmate() {
		t.Fatalf("Qxg7 should mate:\n%s", after)
	}
}
