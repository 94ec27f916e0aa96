package bench

import (
	"fmt"

	"github.com/daystram/shah/board"
)

const DefaultCacheSize = 1 << 20 // number of entries

// Cache maps a Zobrist key and a remaining depth to a subtree node count. It
// is not safe for concurrent use.
type Cache struct {
	table    []cacheEntry
	maskHash uint64

	// stats
	hits   int
	misses int
	writes int
}

type cacheEntry struct {
	hash  uint64
	nodes uint64
	depth uint8
}

// NewCache returns a cache with size entries, rounded down to a power of two.
func NewCache(size uint64) (*Cache, error) {
	if size == 0 {
		return nil, fmt.Errorf("invalid cache size: %d", size)
	}
	for size&(size-1) != 0 {
		size &= size - 1
	}
	return &Cache{
		table:    make([]cacheEntry, size),
		maskHash: size - 1,
	}, nil
}

// Set stores nodes for hash at depth. Entries for deeper subtrees are kept.
func (c *Cache) Set(hash uint64, depth uint8, nodes uint64) {
	e := &c.table[hash&c.maskHash]
	if e.depth > depth {
		return
	}
	c.writes++
	*e = cacheEntry{hash: hash, nodes: nodes, depth: depth}
}

func (c *Cache) Get(hash uint64, depth uint8) (uint64, bool) {
	e := &c.table[hash&c.maskHash]
	if e.depth == 0 || e.depth != depth || e.hash != hash {
		c.misses++
		return 0, false
	}
	c.hits++
	return e.nodes, true
}

func (c *Cache) ResetStats() {
	c.hits = 0
	c.misses = 0
	c.writes = 0
}

func (c *Cache) Stats() (hits, misses, writes int) {
	return c.hits, c.misses, c.writes
}

// CountCached is Count with subtree counts memoized in c.
func CountCached(n board.Node, depth int, c *Cache) uint64 {
	if depth <= 1 {
		return Count(n, depth)
	}
	hash := n.Hash()
	if nodes, ok := c.Get(hash, uint8(depth)); ok {
		return nodes
	}
	var sum uint64
	for _, child := range n.LegalChildren() {
		sum += CountCached(child, depth-1, c)
	}
	c.Set(hash, uint8(depth), sum)
	return sum
}
