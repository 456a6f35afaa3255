// Command benchrun runs the benchmark suite and a fixed set of perft counts
// from the module root: go run ./cmd/benchrun
package main

import (
	"fmt"
	"os"
	"os/exec"
)

// perftRuns are the throughput checks, one result line each.
var perftRuns = []struct {
	label string
	fen   string
	depth string
}{
	{"startpos", "", "3"},
	{"startpos", "", "4"},
	{"startpos", "", "5"},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", "3"},
	{"endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", "5"},
}

// goTool runs the go command with the given arguments, streaming its output.
func goTool(args ...string) error {
	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func main() {
	fmt.Println("== benchmarks ==")
	if err := goTool("test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s"); err != nil {
		fmt.Fprintf(os.Stderr, "benchrun: benchmarks: %v\n", err)
		if ee, ok := err.(*exec.ExitError); ok {
			os.Exit(ee.ExitCode())
		}
		os.Exit(1)
	}

	fmt.Println("\n== perft ==")
	failed := false
	for _, r := range perftRuns {
		args := []string{"run", "./cmd/perft", "-depth", r.depth, "-label", r.label}
		if r.fen != "" {
			args = append(args, "-fen", r.fen)
		}
		if err := goTool(args...); err != nil {
			fmt.Fprintf(os.Stderr, "benchrun: %s depth %s: %v\n", r.label, r.depth, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
