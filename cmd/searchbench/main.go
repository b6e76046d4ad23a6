package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"

	"minimax-chess/engine"
	gm "minimax-chess/gridmg"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", engine.DefaultDepth, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", gm.FENStartPos, "FEN to search")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	verbose := flag.Bool("v", false, "log every root move")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if *depthFlag <= 0 {
		log.Fatal().Int("depth", *depthFlag).Msg("depth must be positive")
	}

	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d\n", *fenFlag, *depthFlag, *repeatFlag)

	searcher := engine.NewSearcher(engine.Options{Depth: *depthFlag, Logger: log})
	var totalNodes uint64
	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		// Fresh position for each run
		board, side, err := gm.ParseFEN(*fenFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("bad -fen")
		}

		res := searcher.Search(board, side)
		totalNodes += res.Nodes
		fmt.Printf("iteration %d: bestmove %v score=%d nodes=%d time=%v\n", i+1, res.Move, res.Score, res.Nodes, res.Elapsed)
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v nodes: %d nps: %.0f\n", totalElapsed, totalNodes, float64(totalNodes)/totalElapsed.Seconds())
}
