package board

import (
	"github.com/daystram/shah/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalCells

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

var (
	maskKnight [TotalCells]Bitmap
	maskKing   [TotalCells]Bitmap

	knightOffsets = [8][2]position.Pos{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [8][2]position.Pos{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
)

func init() {
	initMask()
	initMagic()
	initZobrist()
}

func initMask() {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		cell := Cell(pos)
		mask := Bitmap(0)
		mask |= ShiftN(ShiftN(ShiftE(cell &^ maskRow[7] &^ maskRow[6] &^ maskCol[7])))
		mask |= ShiftN(ShiftN(ShiftW(cell &^ maskRow[7] &^ maskRow[6] &^ maskCol[0])))
		mask |= ShiftS(ShiftS(ShiftE(cell &^ maskRow[0] &^ maskRow[1] &^ maskCol[7])))
		mask |= ShiftS(ShiftS(ShiftW(cell &^ maskRow[0] &^ maskRow[1] &^ maskCol[0])))
		mask |= ShiftE(ShiftE(ShiftN(cell &^ maskCol[7] &^ maskCol[6] &^ maskRow[7])))
		mask |= ShiftE(ShiftE(ShiftS(cell &^ maskCol[7] &^ maskCol[6] &^ maskRow[0])))
		mask |= ShiftW(ShiftW(ShiftN(cell &^ maskCol[0] &^ maskCol[1] &^ maskRow[7])))
		mask |= ShiftW(ShiftW(ShiftS(cell &^ maskCol[0] &^ maskCol[1] &^ maskRow[0])))
		maskKnight[pos] = mask
	}

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		cell := Cell(pos)
		mask := Bitmap(0)
		mask |= ShiftN(cell &^ maskRow[7])
		mask |= ShiftNE(cell &^ maskRow[7] &^ maskCol[7])
		mask |= ShiftE(cell &^ maskCol[7])
		mask |= ShiftSE(cell &^ maskRow[0] &^ maskCol[7])
		mask |= ShiftS(cell &^ maskRow[0])
		mask |= ShiftSW(cell &^ maskRow[0] &^ maskCol[0])
		mask |= ShiftW(cell &^ maskCol[0])
		mask |= ShiftNW(cell &^ maskRow[7] &^ maskCol[0])
		maskKing[pos] = mask
	}
}

// KnightAttacks returns the squares a knight on pos reaches.
func KnightAttacks(pos position.Pos) Bitmap {
	return maskKnight[pos]
}

// KingAttacks returns the squares a king on pos reaches.
func KingAttacks(pos position.Pos) Bitmap {
	return maskKing[pos]
}

// KnightAttacksReference computes KnightAttacks from jump offsets, discarding
// jumps that leave the board.
func KnightAttacksReference(pos position.Pos) Bitmap {
	return jumpAttacks(pos, knightOffsets)
}

// KingAttacksReference computes KingAttacks from step offsets, discarding
// steps that leave the board.
func KingAttacksReference(pos position.Pos) Bitmap {
	return jumpAttacks(pos, kingOffsets)
}

func jumpAttacks(pos position.Pos, offsets [8][2]position.Pos) Bitmap {
	var bm Bitmap
	for _, o := range offsets {
		if to, ok := pos.Offset(o[0], o[1]); ok {
			bm.Set(to)
		}
	}
	return bm
}
