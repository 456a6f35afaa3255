package quickmg_test

import (
	"errors"
	"testing"

	mg "quick-chess/quickmg"
)

func TestMoveFields(t *testing.T) {
	from, to := mg.NewSquare(0, 6), mg.NewSquare(1, 7)
	m := mg.NewMove(from, to, mg.Pawn, mg.Knight, mg.Queen, mg.FlagNone)
	if m.From() != from || m.To() != to || m.Piece() != mg.Pawn {
		t.Fatalf("squares/piece: %v %v %v", m.From(), m.To(), m.Piece())
	}
	if pt, ok := m.Captured(); !ok || pt != mg.Knight {
		t.Fatalf("captured: %v %v", pt, ok)
	}
	if pt, ok := m.Promotion(); !ok || pt != mg.Queen {
		t.Fatalf("promotion: %v %v", pt, ok)
	}
	if m.String() != "a7b8q" {
		t.Fatalf("string: got %q", m.String())
	}
	if m.IsEnPassant() || m.Castle() != mg.CastleNone {
		t.Fatalf("unexpected flags %d", m.Flags())
	}

	castle := mg.NewMove(mg.E8, mg.C8, mg.King, mg.PieceTypeNone, mg.PieceTypeNone, mg.FlagCastleQueen)
	if castle.Castle() != mg.CastleQueenside || castle.IsCapture() || castle.String() != "e8c8" {
		t.Fatalf("castle move: %s side %d", castle, castle.Castle())
	}
	if mg.NullMove.String() != "0000" {
		t.Fatalf("null move string: %q", mg.NullMove.String())
	}
}

func TestParseMoveErrors(t *testing.T) {
	b := mg.Initial()
	cases := []struct {
		text string
		want error
	}{
		{"", mg.ErrMalformedAlgebraic},
		{"e2", mg.ErrMalformedAlgebraic},
		{"e2e4qq", mg.ErrMalformedAlgebraic},
		{"e2e9", mg.ErrMalformedAlgebraic},
		{"z2e4", mg.ErrMalformedAlgebraic},
		{"e7e8k", mg.ErrMalformedAlgebraic},
		{"e2e5", mg.ErrIllegalMove},
		{"e7e5", mg.ErrIllegalMove},
		{"e2e4q", mg.ErrIllegalMove},
		{"e1g1", mg.ErrIllegalMove},
	}
	for _, tc := range cases {
		_, err := mg.ParseMove(tc.text, b)
		if !errors.Is(err, tc.want) {
			t.Errorf("ParseMove(%q): got %v want %v", tc.text, err, tc.want)
		}
	}
}

func TestParseMoveAccepts(t *testing.T) {
	b := mg.Initial()
	for _, text := range []string{"e2e4", "E2E4", " e2e4 "} {
		m, err := mg.ParseMove(text, b)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", text, err)
		}
		if m.String() != "e2e4" {
			t.Fatalf("ParseMove(%q) = %s", text, m)
		}
	}

	// Promotion choice selects among the four generated moves.
	promo := mustFEN(t, "1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	for _, text := range []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n", "a7b8n"} {
		m := findMove(t, promo, text)
		if m.String() != text {
			t.Fatalf("ParseMove(%q) = %s", text, m)
		}
	}
	if _, err := mg.ParseMove("a7a8", promo); !errors.Is(err, mg.ErrIllegalMove) {
		t.Fatalf("promotion without a piece letter: got %v", err)
	}
}
