package board

import "github.com/daystram/shah/position"

// Slider selects a sliding piece movement.
type Slider uint8

const (
	SliderRook Slider = iota
	SliderBishop
)

func (s Slider) String() string {
	switch s {
	case SliderRook:
		return "rook"
	case SliderBishop:
		return "bishop"
	default:
		return ""
	}
}

func (s Slider) directions() [4]position.Direction {
	if s == SliderBishop {
		return position.DiagonalDirections
	}
	return position.OrthogonalDirections
}

// IndexBits is the number of magic index bits used for s.
func (s Slider) IndexBits() uint8 {
	if s == SliderBishop {
		return bishopIndexBits
	}
	return rookIndexBits
}

// ReferenceAttacks walks every ray from pos until the board edge or the first
// blocker, which is included.
func (s Slider) ReferenceAttacks(pos position.Pos, blockers Bitmap) Bitmap {
	var attacks Bitmap
	for _, d := range s.directions() {
		for to, ok := pos.Step(d); ok; to, ok = to.Step(d) {
			attacks.Set(to)
			if blockers.Contains(to) {
				break
			}
		}
	}
	return attacks
}

// BlockerMask returns the squares whose occupancy can change the attacks from
// pos: every ray square except pos and the last square before the edge.
func (s Slider) BlockerMask(pos position.Pos) Bitmap {
	var mask Bitmap
	for _, d := range s.directions() {
		for to, ok := pos.Step(d); ok; to, ok = to.Step(d) {
			if _, inner := to.Step(d); !inner {
				break
			}
			mask.Set(to)
		}
	}
	return mask
}

func RookAttacksReference(pos position.Pos, blockers Bitmap) Bitmap {
	return SliderRook.ReferenceAttacks(pos, blockers)
}

func BishopAttacksReference(pos position.Pos, blockers Bitmap) Bitmap {
	return SliderBishop.ReferenceAttacks(pos, blockers)
}

func RookBlockerMask(pos position.Pos) Bitmap {
	return SliderRook.BlockerMask(pos)
}

func BishopBlockerMask(pos position.Pos) Bitmap {
	return SliderBishop.BlockerMask(pos)
}
