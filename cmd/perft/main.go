package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"quick-chess/quickmg"
)

func main() {
	fen := flag.String("fen", quickmg.FENStartPos, "position to count from")
	depth := flag.Int("depth", 0, "plies to count, at least 1")
	divide := flag.Bool("divide", false, "list the node count under each root move")
	repeat := flag.Int("repeat", 1, "number of timed passes")
	label := flag.String("label", "", "name printed at the start of the result line")
	cpuProf := flag.String("cpuprofile", "", "file to receive a CPU profile of the timed passes")
	memProf := flag.String("memprofile", "", "file to receive a heap profile after the timed passes")
	flag.Parse()

	if *depth < 1 || *repeat < 1 {
		fail("depth and repeat must be at least 1")
	}
	board, err := quickmg.ParseFEN(*fen)
	if err != nil {
		fail("bad -fen: %v", err)
	}

	if *divide {
		printDivide(board, *depth)
		return
	}

	if *cpuProf != "" {
		f := create(*cpuProf)
		if err := pprof.StartCPUProfile(f); err != nil {
			fail("cpu profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var nodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		nodes += quickmg.Perft(board, *depth)
	}
	elapsed := time.Since(start)

	name := *label
	if name == "" {
		name = "perft"
	}
	fmt.Printf("%-10s depth %d  nodes %-12d %-14s %.0f nps\n",
		name, *depth, nodes, elapsed.Round(time.Microsecond), float64(nodes)/elapsed.Seconds())

	if *memProf != "" {
		f := create(*memProf)
		if err := pprof.WriteHeapProfile(f); err != nil {
			fail("heap profile: %v", err)
		}
		_ = f.Close()
	}
}

func create(path string) *os.File {
	f, err := os.Create(path)
	if err != nil {
		fail("%v", err)
	}
	return f
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "perft: "+format+"\n", args...)
	os.Exit(2)
}

// printDivide prints per-root-move counts sorted by move text, then the total.
func printDivide(board quickmg.Board, depth int) {
	div := quickmg.PerftDivide(board, depth)
	byText := make(map[string]uint64, len(div))
	var sum uint64
	for m, n := range div {
		byText[m.String()] = n
		sum += n
	}
	keys := maps.Keys(byText)
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Printf("%-6s %d\n", k, byText[k])
	}
	fmt.Printf("\n%d moves, %d nodes\n", len(keys), sum)
}
