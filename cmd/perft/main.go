package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	gm "minimax-chess/gridmg"
)

func main() {
	fen := flag.String("fen", gm.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	noSelfCapture := flag.Bool("no-self-capture", false, "Forbid pawns, knights and kings from landing on their own pieces")
	slidingCaptures := flag.Bool("sliding-captures", false, "Let sliders capture on the first blocking square")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, side, err := gm.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}
	board.SetRules(gm.Rules{NoSelfCapture: *noSelfCapture, SlidingCaptures: *slidingCaptures})

	if *divide {
		div := gm.PerftDivide(board, side, *depth)
		counts := make(map[string]uint64, len(div))
		for m, n := range div {
			counts[m.String()] = n
		}
		// Sort moves for stable output
		names := maps.Keys(counts)
		slices.Sort(names)
		var sum uint64
		for _, name := range names {
			fmt.Printf("%s: %d\n", name, counts[name])
			sum += counts[name]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += gm.Perft(board, side, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
}
