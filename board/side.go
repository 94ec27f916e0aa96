package board

type Side uint8

const (
	SideWhite Side = iota
	SideBlack
)

// Sides lists both sides in index order.
var Sides = [2]Side{SideWhite, SideBlack}

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	return s ^ 1
}

// symbolFEN is the side to move field of a FEN record.
func (s Side) symbolFEN() string {
	if s == SideBlack {
		return "b"
	}
	return "w"
}
