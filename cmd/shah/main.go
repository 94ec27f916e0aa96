package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/daystram/shah/board"
	"github.com/daystram/shah/uci"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw every legal child in movegen mode")

	perftRun      = flag.Bool("perft", false, "run perft mode")
	perftDepth    = flag.Int("perft.depth", 5, "perft depth in perft mode")
	perftParallel = flag.Bool("perft.parallel", true, "search root moves in parallel in perft mode")
	perftHash     = flag.Uint64("perft.hash", 0, "count with a cache of this many entries in perft mode, 0 to disable")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepPlies = flag.Int("step.plies", 200, "maximum plies in step mode")
	stepSeed  = flag.Uint64("step.seed", 1, "random walk seed in step mode")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	if *movegenRun {
		return movegen(fen, *movegenDraw)
	}
	if *perftRun {
		if *perftHash > 0 {
			return perftCached(*perftDepth, fen, *perftHash)
		}
		return perft(*perftDepth, fen, *perftParallel)
	}
	if *stepRun {
		return step(fen, *stepPlies, *stepSeed)
	}

	return uci.NewInterface(os.Stdin, os.Stdout).Run()
}
