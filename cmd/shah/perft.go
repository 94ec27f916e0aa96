package main

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/shah/bench"
	"github.com/daystram/shah/board"
)

func perft(depth int, fen string, parallel bool) error {
	name := "dfs"
	if parallel {
		name = "parallel dfs"
	}
	log.Printf("============ perft(%d): %s\n", depth, name)

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			fmt.Println(s)
		}
	}()

	err := bench.Perft(depth, fen, parallel, true, out)
	close(out)
	<-done
	return err
}

func perftCached(depth int, fen string, size uint64) error {
	log.Printf("============ perft(%d): cached dfs\n", depth)
	p, err := board.ParsePosition(fen)
	if err != nil {
		return err
	}
	c, err := bench.NewCache(size)
	if err != nil {
		return err
	}

	start := time.Now()
	nodes := bench.CountCached(board.NewNodeFromPosition(p), depth, c)
	elapsed := time.Since(start)

	hits, misses, writes := c.Stats()
	fmt.Println(message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s hits=%d misses=%d writes=%d (%.3fs elapsed)",
			depth, nodes, bench.Rate(nodes, elapsed), hits, misses, writes, elapsed.Seconds()))
	return nil
}
