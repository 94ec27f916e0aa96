package magic

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/shah/board"
	"github.com/daystram/shah/position"
)

// Candidate is a magic number and the table span it needs on its square.
type Candidate struct {
	Size   int
	Number uint64
}

// Table holds the best known candidate of every square of one slider.
type Table struct {
	mu      sync.Mutex
	slider  board.Slider
	entries [board.TotalCells]Candidate
}

// NewTable returns a table seeded with the numbers currently in use by board.
func NewTable(s board.Slider) *Table {
	t := &Table{slider: s}
	maxSize := 1 << s.IndexBits()
	for pos, number := range board.MagicNumbers(s) {
		size, _ := board.MagicLUTSize(s, position.Pos(pos), number, maxSize)
		t.entries[pos] = Candidate{Size: size, Number: number}
	}
	return t
}

func (t *Table) Slider() board.Slider {
	return t.slider
}

func (t *Table) Get(pos position.Pos) Candidate {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.entries[pos]
}

// Improve installs c on pos if it is strictly smaller than the current entry.
// It returns the entry it replaced.
func (t *Table) Improve(pos position.Pos, c Candidate) (Candidate, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	prev := t.entries[pos]
	if c.Size >= prev.Size {
		return prev, false
	}
	t.entries[pos] = c
	return prev, true
}

// Entries returns a snapshot of the table.
func (t *Table) Entries() [board.TotalCells]Candidate {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.entries
}

// TotalSize returns the number of attack table entries the table needs.
func (t *Table) TotalSize() int {
	var total int
	for _, c := range t.Entries() {
		total += c.Size
	}
	return total
}

// String renders the numbers as a Go array literal, one rank per line, with
// the span of each square and the total table size in bytes.
func (t *Table) String() string {
	entries := t.Entries()
	p := message.NewPrinter(language.English)

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "[board.TotalCells]uint64{ // %s\n", t.slider)
	for y := position.Pos(0); y < board.Height; y++ {
		_, _ = fmt.Fprintf(&b, "\t/* %d */", y+1)
		for x := position.Pos(0); x < board.Width; x++ {
			_, _ = fmt.Fprintf(&b, " %#016x,", entries[y*board.Width+x].Number)
		}
		_, _ = b.WriteString("\n")
	}
	_, _ = b.WriteString("}\n")
	for y := position.Pos(0); y < board.Height; y++ {
		_, _ = fmt.Fprintf(&b, "// %d:", y+1)
		for x := position.Pos(0); x < board.Width; x++ {
			_, _ = fmt.Fprintf(&b, " %4d", entries[y*board.Width+x].Size)
		}
		_, _ = b.WriteString("\n")
	}
	_, _ = b.WriteString(p.Sprintf("// %d B", t.TotalSize()*8))
	return b.String()
}
