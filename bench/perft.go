package bench

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/shah/board"
)

var ErrInvalidDepth = errors.New("invalid perft depth")

// Stats holds the perft node count and the flags of the moves made on the
// last ply.
type Stats struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

func (s *Stats) leaf(mv board.Move, child *board.Node) {
	s.Nodes++
	if mv.IsCapture {
		s.Captures++
	}
	if mv.IsEnPassant {
		s.EnPassants++
	}
	if mv.IsCastle {
		s.Castles++
	}
	if mv.IsPromote {
		s.Promotions++
	}
	if child.KingAttacked(child.Turn()) {
		s.Checks++
	}
}

func (s *Stats) merge(o *Stats) {
	atomic.AddUint64(&s.Nodes, o.Nodes)
	atomic.AddUint64(&s.Captures, o.Captures)
	atomic.AddUint64(&s.EnPassants, o.EnPassants)
	atomic.AddUint64(&s.Castles, o.Castles)
	atomic.AddUint64(&s.Promotions, o.Promotions)
	atomic.AddUint64(&s.Checks, o.Checks)
}

// Perft runs perft on fen and sends the per root move counts (when verbose)
// and a summary line to out.
func Perft(depth int, fen string, parallel, verbose bool, out chan<- string) error {
	if depth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	p, err := board.ParsePosition(fen)
	if err != nil {
		return err
	}

	start := time.Now()
	stats := PerftNode(board.NewNodeFromPosition(p), depth, parallel, verbose, out)
	elapsed := time.Since(start)

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
			depth, stats.Nodes, Rate(stats.Nodes, elapsed), stats.Captures, stats.EnPassants,
			stats.Castles, stats.Promotions, stats.Checks, elapsed.Seconds())
	return nil
}

// PerftNode walks the legal move tree of n to depth. With parallel set, each
// root move is searched in its own goroutine. Root move counts are sent to out
// when verbose is set.
func PerftNode(n board.Node, depth int, parallel, verbose bool, out chan<- string) Stats {
	var stats Stats
	if depth <= 0 {
		stats.Nodes = 1
		return stats
	}

	report := func(mv board.Move, sub *Stats) {
		if verbose && out != nil {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), sub.Nodes)
		}
	}

	if !parallel {
		for mv, child := range n.LegalChildren() {
			var sub Stats
			divide(mv, &child, depth, &sub)
			report(mv, &sub)
			stats.merge(&sub)
		}
		return stats
	}

	var wg sync.WaitGroup
	for mv, child := range n.LegalChildren() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var sub Stats
			divide(mv, &child, depth, &sub)
			report(mv, &sub)
			stats.merge(&sub)
		}()
	}
	wg.Wait()
	return stats
}

// divide accounts for the subtree below mv, which led to child.
func divide(mv board.Move, child *board.Node, depth int, stats *Stats) {
	if depth == 1 {
		stats.leaf(mv, child)
		return
	}
	perft(child, depth-1, stats)
}

func perft(n *board.Node, depth int, stats *Stats) {
	for mv, child := range n.LegalChildren() {
		divide(mv, &child, depth, stats)
	}
}

// Count returns the number of leaf nodes at depth without collecting move
// statistics.
func Count(n board.Node, depth int) uint64 {
	switch {
	case depth <= 0:
		return 1
	case depth == 1:
		return uint64(n.CountMoves(n.Turn()))
	}
	var sum uint64
	for _, child := range n.LegalChildren() {
		sum += Count(child, depth-1)
	}
	return sum
}

// Rate returns count per second of elapsed, or 0 when no time elapsed.
func Rate[T constraints.Integer | constraints.Float](count T, elapsed time.Duration) int64 {
	if elapsed <= 0 {
		return 0
	}
	return int64(float64(count) / elapsed.Seconds())
}
