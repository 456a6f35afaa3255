package quickmg_test

import (
	"errors"
	"testing"

	mg "quick-chess/quickmg"
)

func TestFENRoundTrip(t *testing.T) {
	for _, fen := range testFENs {
		b := mustFEN(t, fen)
		if got := b.FEN(); got != fen {
			t.Errorf("round trip:\n got %s\nwant %s", got, fen)
		}
		if err := b.Validate(); err != nil {
			t.Errorf("%s: %v", fen, err)
		}
	}
}

func TestFENDefaultsClocks(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 b - -")
	if b.HalfmoveClock() != 0 || b.FullmoveNumber() != 1 || b.SideToMove() != mg.Black {
		t.Fatalf("defaults: %s", b.FEN())
	}
}

func TestFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkx - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 extra",
		"4k3/8/8/8/8/8/3PN3/4K3 w - e3 0 1",
		"4k3/8/8/4p3/8/8/8/4K3 b - e6 0 1",
		"4k3/8/8/8/8/8/8/4K3 w - e6 0 1",
		"4k3/8/4n3/4p3/8/8/8/4K3 w - e6 0 1",
		"P3k3/8/8/8/8/8/8/4K3 w - - 0 1",
		"4k3/8/8/8/8/8/8/p3K3 w - - 0 1",
		"8/8/8/8/8/8/8/4K3 w - - 0 1",
		"4k3/8/8/8/8/8/8/3KK3 w - - 0 1",
	}
	for _, fen := range bad {
		if _, err := mg.ParseFEN(fen); !errors.Is(err, mg.ErrMalformedFEN) {
			t.Errorf("ParseFEN(%q): got %v want ErrMalformedFEN", fen, err)
		}
	}
}
