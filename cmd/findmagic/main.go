package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/daystram/shah/board"
	"github.com/daystram/shah/magic"
	"github.com/daystram/shah/position"
)

const (
	exitOK = iota
	exitErr
)

var (
	slider   = flag.String("slider", "bishop", "slider to search magics for: rook or bishop")
	workers  = flag.Int("workers", runtime.NumCPU(), "number of search workers")
	attempts = flag.Int("attempts", magic.DefaultAttempts, "candidates tried per square pick")
	seed     = flag.Uint64("seed", 0, "worker seed, 0 for time based")
	timeout  = flag.Duration("timeout", 0, "stop after this long, 0 to run until interrupted")
)

func main() {
	flag.Parse()

	err := realMain()
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain() error {
	var s board.Slider
	switch *slider {
	case "rook":
		s = board.SliderRook
	case "bishop":
		s = board.SliderBishop
	default:
		return fmt.Errorf("unknown slider: %s", *slider)
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	var searcher *magic.Searcher
	searcher = magic.NewSearcher(s,
		magic.WithAttempts(*attempts),
		magic.WithSeed(*seed),
		magic.WithOnImprove(func(pos position.Pos, prev, next magic.Candidate) {
			log.Printf("----- %s: %d (-%d) -----\n", pos, next.Size, prev.Size-next.Size)
			fmt.Println(searcher.Table())
		}),
	)

	log.Printf("searching %s magics with %d workers, table size %d\n", s, *workers, searcher.Table().TotalSize())
	err := searcher.Run(ctx, *workers)
	fmt.Println(searcher.Table())
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
