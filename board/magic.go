package board

import (
	"github.com/daystram/shah/position"
)

const (
	rookIndexBits   = 12
	bishopIndexBits = 9

	// magicFallbackSeed seeds the search for a replacement when an embedded
	// number turns out not to be injective.
	magicFallbackSeed = 0x3a61c5eed
)

// Magic locates the attack table slice of one square.
type Magic struct {
	Offset uint32
	Mask   Bitmap
	Number uint64
	Shift  uint8
}

func (m *Magic) GetIndex(occupancy Bitmap) uint32 {
	return m.Offset + uint32((uint64(occupancy&m.Mask)*m.Number)>>m.Shift)
}

var (
	rookMagics   [TotalCells]Magic
	bishopMagics [TotalCells]Magic
	rookTable    []Bitmap
	bishopTable  []Bitmap
)

// Embedded magic numbers, a1 to h8. Each is injective for its square with the
// slider's index bits; table spans are derived at init.
var (
	rookMagicNumbers = [TotalCells]uint64{
		0x80800292a0804000, 0x0020001000080020, 0x0040080010004005, 0x0040080004004002, 0x0040020004004001, 0x0020008020010202, 0x0040004000800100, 0x0900014126810012,
		0x8480081020410400, 0x0100100008040010, 0x8080080402010008, 0x0000200400200200, 0x0000200100020020, 0x2400200100200080, 0x0000400080004001, 0x0200200020004081,
		0x7c40002000100024, 0xa104001000080014, 0x3004000801020008, 0x0004002020020004, 0x0002002020010002, 0x1101002020008001, 0x0404004040008001, 0x1004802000400020,
		0x4840200010080010, 0x0000080010040012, 0x0484010008020008, 0x0020020020040020, 0x0020020020200100, 0x6010010020200080, 0x0030400040008001, 0x0822200020004081,
		0x8040001000200020, 0x4004000800100010, 0x0084020100080008, 0x0800200200200400, 0x0000200200200100, 0x0300200100200080, 0x0140008000404001, 0x8808802000200040,
		0x0040201004000802, 0x0810080201000400, 0x2000084040804200, 0x0000020004002020, 0x9902002001002002, 0xc000008001002020, 0x0208004000802020, 0x0082420088004204,
		0x0240001000200020, 0x0000080010040010, 0x8004010008020008, 0x0200200200040020, 0x9002001001008010, 0x2008200080010020, 0x0004200040008020, 0x0000802000400020,
		0x000041048000e131, 0x0000800900102041, 0x00a8088010200442, 0x6030080420401002, 0x4004042008100102, 0x3480040802048001, 0xa024024002040081, 0x2020008908e40042,
	}
	bishopMagicNumbers = [TotalCells]uint64{
		0x0002020202020200, 0x0002020202020000, 0x0004010202000000, 0x0004040080000000, 0x0001104000000000, 0x0000821040000000, 0x0000410410400000, 0x0000104104104000,
		0x0000040404040400, 0x0000020202020200, 0x0000040102020000, 0x0000040400800000, 0x0000011040000000, 0x0000008210400000, 0x0000004104104000, 0x0000002082082000,
		0x0004000808080800, 0x0002000404040400, 0x0001000202020200, 0x0000800802004000, 0x0000800400a00000, 0x0000200100884000, 0x0000400082082000, 0x0000200041041000,
		0x0002080010101000, 0x0001040008080800, 0x0000208004010400, 0x0000404004010200, 0x0000840000802000, 0x0000404002011000, 0x0000808001041000, 0x0000404000820800,
		0x0001041000202000, 0x0000820800101000, 0x0000104400080800, 0x0000020080080080, 0x0000404040040100, 0x0000808100020100, 0x0001010100020800, 0x0000808080010400,
		0x0000820820004000, 0x0000410410002000, 0x0000082088001000, 0x0000002011000800, 0x0000080100400400, 0x0001010101000200, 0x0002020202000400, 0x0001010101000200,
		0x0000410410400000, 0x0000208208200000, 0x0000002084100000, 0x0000000020880000, 0x0000001002020000, 0x0000040408020000, 0x0004040404040000, 0x0002020202020000,
		0x0000104104104000, 0x0000002082082000, 0x0000000020841000, 0x0000000000208800, 0x0000000010020200, 0x0000000404080200, 0x0000040404040400, 0x0002020202020200,
	}
)

func initMagic() {
	r := NewPseudoRand(magicFallbackSeed)
	rookTable = initSliderMagic(SliderRook, &rookMagics, &rookMagicNumbers, r)
	bishopTable = initSliderMagic(SliderBishop, &bishopMagics, &bishopMagicNumbers, r)
}

func initSliderMagic(s Slider, magics *[TotalCells]Magic, numbers *[TotalCells]uint64, r *PseudoRand) []Bitmap {
	maxSize := 1 << s.IndexBits()
	var offset uint32
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		size, ok := MagicLUTSize(s, pos, numbers[pos], maxSize)
		for !ok {
			numbers[pos] = r.SparseUint64()
			size, ok = MagicLUTSize(s, pos, numbers[pos], maxSize)
		}
		magics[pos] = Magic{
			Offset: offset,
			Mask:   s.BlockerMask(pos),
			Number: numbers[pos],
			Shift:  64 - s.IndexBits(),
		}
		offset += uint32(size)
	}

	table := make([]Bitmap, offset)
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		m := &magics[pos]
		for blockers := range m.Mask.Powerset() {
			table[m.GetIndex(blockers)] = s.ReferenceAttacks(pos, blockers)
		}
	}
	return table
}

// MagicLUTSize returns the table span number needs on pos: the highest index
// any blocker subset hashes to, plus one. It reports false if two subsets with
// different attacks collide or an index reaches maxSize.
func MagicLUTSize(s Slider, pos position.Pos, number uint64, maxSize int) (int, bool) {
	shift := 64 - s.IndexBits()
	attacks := make([]Bitmap, maxSize)
	used := make([]bool, maxSize)
	var size int
	for blockers := range s.BlockerMask(pos).Powerset() {
		idx := int((uint64(blockers) * number) >> shift)
		if idx >= maxSize {
			return 0, false
		}
		a := s.ReferenceAttacks(pos, blockers)
		if used[idx] && attacks[idx] != a {
			return 0, false
		}
		attacks[idx], used[idx] = a, true
		size = max(size, idx+1)
	}
	return size, true
}

// MagicTableSize reports the number of entries in the rook and bishop tables.
func MagicTableSize() (rook, bishop int) {
	return len(rookTable), len(bishopTable)
}

// RookAttacks returns rook attacks from pos given the occupied squares.
func RookAttacks(pos position.Pos, occupied Bitmap) Bitmap {
	return rookTable[rookMagics[pos].GetIndex(occupied)]
}

// BishopAttacks returns bishop attacks from pos given the occupied squares.
func BishopAttacks(pos position.Pos, occupied Bitmap) Bitmap {
	return bishopTable[bishopMagics[pos].GetIndex(occupied)]
}

// QueenAttacks returns the union of rook and bishop attacks from pos.
func QueenAttacks(pos position.Pos, occupied Bitmap) Bitmap {
	return RookAttacks(pos, occupied) | BishopAttacks(pos, occupied)
}

// SliderAttacks dispatches to RookAttacks or BishopAttacks.
func SliderAttacks(s Slider, pos position.Pos, occupied Bitmap) Bitmap {
	if s == SliderBishop {
		return BishopAttacks(pos, occupied)
	}
	return RookAttacks(pos, occupied)
}

// MagicNumbers returns the numbers in use for s, a1 to h8.
func MagicNumbers(s Slider) [TotalCells]uint64 {
	magics := &rookMagics
	if s == SliderBishop {
		magics = &bishopMagics
	}
	var numbers [TotalCells]uint64
	for pos := range numbers {
		numbers[pos] = magics[pos].Number
	}
	return numbers
}
