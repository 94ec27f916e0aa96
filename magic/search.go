package magic

import (
	"context"
	"errors"
	"math/bits"
	"sync"

	"github.com/daystram/shah/board"
	"github.com/daystram/shah/position"
)

const (
	DefaultAttempts = 0xFFFF
	maxWorkers      = 1024
)

var ErrNoWorkers = errors.New("no workers")

// RandomNumber returns a random number with at most maxBits bits set. Draws
// are ANDed together until the popcount fits.
func RandomNumber(r *board.PseudoRand, maxBits uint8) uint64 {
	n := r.Uint64()
	for bits.OnesCount64(n) > int(maxBits) {
		n &= r.Uint64()
	}
	return n
}

type searchConfig struct {
	attempts  int
	seed      uint64
	onImprove func(pos position.Pos, prev, next Candidate)
}

type SearchOption func(*searchConfig)

// WithAttempts bounds the candidates tried per square pick.
func WithAttempts(n int) SearchOption {
	return func(cfg *searchConfig) {
		cfg.attempts = n
	}
}

// WithSeed seeds the workers' generators. Worker i uses seed+i.
func WithSeed(seed uint64) SearchOption {
	return func(cfg *searchConfig) {
		cfg.seed = seed
	}
}

// WithOnImprove registers f to be called after a smaller candidate is
// installed. Calls may come from several workers at once.
func WithOnImprove(f func(pos position.Pos, prev, next Candidate)) SearchOption {
	return func(cfg *searchConfig) {
		cfg.onImprove = f
	}
}

// Searcher looks for magic numbers needing smaller table spans than the ones
// in its table.
type Searcher struct {
	table *Table
	cfg   searchConfig
}

func NewSearcher(s board.Slider, opts ...SearchOption) *Searcher {
	cfg := searchConfig{
		attempts: DefaultAttempts,
		seed:     1,
	}
	for _, f := range opts {
		f(&cfg)
	}
	cfg.attempts = min(max(cfg.attempts, 1), DefaultAttempts)
	return &Searcher{
		table: NewTable(s),
		cfg:   cfg,
	}
}

func (s *Searcher) Table() *Table {
	return s.table
}

// Run searches with the given number of workers until ctx is done, and
// returns the context's error.
func (s *Searcher) Run(ctx context.Context, workers int) error {
	if workers < 1 {
		return ErrNoWorkers
	}
	workers = min(workers, maxWorkers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		r := board.NewPseudoRand(s.cfg.seed + uint64(i))
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				s.step(ctx, r)
			}
		}()
	}
	wg.Wait()
	return ctx.Err()
}

// step searches a random square.
func (s *Searcher) step(ctx context.Context, r *board.PseudoRand) {
	s.searchSquare(ctx, r, position.Pos(r.Uint64()%uint64(board.TotalCells)))
}

// searchSquare samples candidates for pos until one fits within its current
// best span, and reports whether that candidate was installed.
func (s *Searcher) searchSquare(ctx context.Context, r *board.PseudoRand, pos position.Pos) bool {
	slider := s.table.Slider()
	best := s.table.Get(pos).Size
	for attempt := 0; attempt < s.cfg.attempts; attempt++ {
		if ctx.Err() != nil {
			return false
		}
		number := RandomNumber(r, slider.IndexBits())
		size, ok := board.MagicLUTSize(slider, pos, number, best)
		if !ok {
			continue
		}
		next := Candidate{Size: size, Number: number}
		prev, improved := s.table.Improve(pos, next)
		if improved && s.cfg.onImprove != nil {
			s.cfg.onImprove(pos, prev, next)
		}
		return improved
	}
	return false
}
