package quickmg_test

import (
	"math/rand"
	"testing"

	mg "quick-chess/quickmg"
)

// Positions used across the movegen, apply and oracle tests.
var testFENs = []string{
	mg.FENStartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10",
	"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
}

func mustFEN(t testing.TB, fen string) mg.Board {
	t.Helper()
	b, err := mg.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

// playouts plays random legal games from every test position and calls visit
// on each position reached, the root included.
func playouts(t *testing.T, seed int64, games, plies int, visit func(b mg.Board)) {
	t.Helper()
	if testing.Short() {
		games = 2
	}
	rnd := rand.New(rand.NewSource(seed))
	for _, fen := range testFENs {
		for g := 0; g < games; g++ {
			b := mustFEN(t, fen)
			visit(b)
			for ply := 0; ply < plies; ply++ {
				moves := b.LegalMoves()
				if len(moves) == 0 {
					break
				}
				b = b.Apply(moves[rnd.Intn(len(moves))])
				visit(b)
			}
		}
	}
}

func moveStrings(moves []mg.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out
}

func findMove(t testing.TB, b mg.Board, text string) mg.Move {
	t.Helper()
	m, err := mg.ParseMove(text, b)
	if err != nil {
		t.Fatalf("ParseMove(%q) in %s: %v", text, b.FEN(), err)
	}
	return m
}
