package board

import (
	"iter"
	"math/bits"

	"github.com/daystram/shah/position"
)

// Bitmap is a set of squares, bit i being square i in little-endian rank-file order.
type Bitmap uint64

const (
	Empty Bitmap = 0
	Full  Bitmap = ^Empty

	// Rim holds every square on rank 1, rank 8, file a and file h.
	Rim Bitmap = 0x_FF_81_81_81_81_81_81_FF
)

var (
	maskCol = [Width]Bitmap{
		position.FileA: 0x_01_01_01_01_01_01_01_01,
		position.FileB: 0x_02_02_02_02_02_02_02_02,
		position.FileC: 0x_04_04_04_04_04_04_04_04,
		position.FileD: 0x_08_08_08_08_08_08_08_08,
		position.FileE: 0x_10_10_10_10_10_10_10_10,
		position.FileF: 0x_20_20_20_20_20_20_20_20,
		position.FileG: 0x_40_40_40_40_40_40_40_40,
		position.FileH: 0x_80_80_80_80_80_80_80_80,
	}
	maskRow = [Height]Bitmap{
		position.Rank1: 0x_00_00_00_00_00_00_00_FF,
		position.Rank2: 0x_00_00_00_00_00_00_FF_00,
		position.Rank3: 0x_00_00_00_00_00_FF_00_00,
		position.Rank4: 0x_00_00_00_00_FF_00_00_00,
		position.Rank5: 0x_00_00_00_FF_00_00_00_00,
		position.Rank6: 0x_00_00_FF_00_00_00_00_00,
		position.Rank7: 0x_00_FF_00_00_00_00_00_00,
		position.Rank8: 0x_FF_00_00_00_00_00_00_00,
	}
)

// NewBitmap returns the set holding exactly the given squares.
func NewBitmap(ps ...position.Pos) Bitmap {
	var bm Bitmap
	for _, p := range ps {
		bm.Set(p)
	}
	return bm
}

// Cell returns the singleton set of p.
func Cell(p position.Pos) Bitmap {
	return 1 << uint(p)
}

func FileMask(x position.Pos) Bitmap {
	return maskCol[x]
}

func RankMask(y position.Pos) Bitmap {
	return maskRow[y]
}

func (bm Bitmap) Contains(p position.Pos) bool {
	return bm&Cell(p) != 0
}

func (bm *Bitmap) Set(p position.Pos) {
	*bm |= Cell(p)
}

func (bm *Bitmap) Unset(p position.Pos) {
	*bm &^= Cell(p)
}

// SetTo sets or clears p depending on value.
func (bm *Bitmap) SetTo(p position.Pos, value bool) {
	if value {
		bm.Set(p)
	} else {
		bm.Unset(p)
	}
}

func (bm Bitmap) Union(o Bitmap) Bitmap {
	return bm | o
}

func (bm Bitmap) Intersect(o Bitmap) Bitmap {
	return bm & o
}

func (bm Bitmap) Complement() Bitmap {
	return ^bm
}

func (bm Bitmap) Difference(o Bitmap) Bitmap {
	return bm &^ o
}

func (bm Bitmap) SymmetricDifference(o Bitmap) Bitmap {
	return bm ^ o
}

func (bm Bitmap) Intersects(o Bitmap) bool {
	return bm&o != 0
}

func (bm Bitmap) IsSubsetOf(o Bitmap) bool {
	return bm&^o == 0
}

func (bm Bitmap) IsEmpty() bool {
	return bm == 0
}

// LS1B returns the lowest member. The result is 64 for the empty set.
func (bm Bitmap) LS1B() position.Pos {
	return position.Pos(bits.TrailingZeros64(uint64(bm)))
}

func (bm Bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

// Squares yields the members in ascending order.
func (bm Bitmap) Squares() iter.Seq[position.Pos] {
	return func(yield func(position.Pos) bool) {
		for ; bm != 0; bm &= bm - 1 {
			if !yield(bm.LS1B()) {
				return
			}
		}
	}
}

// Singletons yields each member together with its singleton set, ascending.
func (bm Bitmap) Singletons() iter.Seq2[position.Pos, Bitmap] {
	return func(yield func(position.Pos, Bitmap) bool) {
		for ; bm != 0; bm &= bm - 1 {
			if !yield(bm.LS1B(), bm&-bm) {
				return
			}
		}
	}
}

// Powerset yields every subset of bm, from bm itself down to the empty set.
func (bm Bitmap) Powerset() iter.Seq[Bitmap] {
	return func(yield func(Bitmap) bool) {
		sub := bm
		for {
			if !yield(sub) || sub == 0 {
				return
			}
			sub = (sub - 1) & bm
		}
	}
}

// PowersetLen is the number of subsets Powerset yields.
func (bm Bitmap) PowersetLen() uint64 {
	return 1 << bm.BitCount()
}

// HFlip mirrors the set across the line between files d and e.
func (bm Bitmap) HFlip() Bitmap {
	const (
		k1 = 0x_55_55_55_55_55_55_55_55
		k2 = 0x_33_33_33_33_33_33_33_33
		k4 = 0x_0F_0F_0F_0F_0F_0F_0F_0F
	)
	bm = ((bm >> 1) & k1) | ((bm & k1) << 1)
	bm = ((bm >> 2) & k2) | ((bm & k2) << 2)
	bm = ((bm >> 4) & k4) | ((bm & k4) << 4)
	return bm
}

// VFlip mirrors the set across the line between ranks 4 and 5.
func (bm Bitmap) VFlip() Bitmap {
	return Bitmap(bits.ReverseBytes64(uint64(bm)))
}

// Reverse rotates the set by 180 degrees.
func (bm Bitmap) Reverse() Bitmap {
	return Bitmap(bits.Reverse64(uint64(bm)))
}

// Shifts move every member one step. Members that would leave the board or
// wrap to the opposite file must be masked out by the caller.

func ShiftN(bm Bitmap) Bitmap {
	if debug {
		assert(bm&maskRow[position.Rank8] == 0, "ShiftN: member on rank 8: %#x", uint64(bm))
	}
	return bm << 8
}

func ShiftNE(bm Bitmap) Bitmap {
	if debug {
		assert(bm&(maskRow[position.Rank8]|maskCol[position.FileH]) == 0, "ShiftNE: member on rank 8 or file h: %#x", uint64(bm))
	}
	return bm << 9
}

func ShiftE(bm Bitmap) Bitmap {
	if debug {
		assert(bm&maskCol[position.FileH] == 0, "ShiftE: member on file h: %#x", uint64(bm))
	}
	return bm << 1
}

func ShiftSE(bm Bitmap) Bitmap {
	if debug {
		assert(bm&(maskRow[position.Rank1]|maskCol[position.FileH]) == 0, "ShiftSE: member on rank 1 or file h: %#x", uint64(bm))
	}
	return bm >> 7
}

func ShiftS(bm Bitmap) Bitmap {
	if debug {
		assert(bm&maskRow[position.Rank1] == 0, "ShiftS: member on rank 1: %#x", uint64(bm))
	}
	return bm >> 8
}

func ShiftSW(bm Bitmap) Bitmap {
	if debug {
		assert(bm&(maskRow[position.Rank1]|maskCol[position.FileA]) == 0, "ShiftSW: member on rank 1 or file a: %#x", uint64(bm))
	}
	return bm >> 9
}

func ShiftW(bm Bitmap) Bitmap {
	if debug {
		assert(bm&maskCol[position.FileA] == 0, "ShiftW: member on file a: %#x", uint64(bm))
	}
	return bm >> 1
}

func ShiftNW(bm Bitmap) Bitmap {
	if debug {
		assert(bm&(maskRow[position.Rank8]|maskCol[position.FileA]) == 0, "ShiftNW: member on rank 8 or file a: %#x", uint64(bm))
	}
	return bm << 7
}

// Union folds any number of sets.
func Union(bms ...Bitmap) Bitmap {
	var u Bitmap
	for _, bm := range bms {
		u |= bm
	}
	return u
}
