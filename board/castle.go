package board

import (
	"fmt"

	"github.com/daystram/shah/position"
)

// CastleDirection is a side and wing packed as side*2 + wing, kingside first.
type CastleDirection uint8

const (
	CastleDirectionWhiteRight CastleDirection = iota
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

var CastleDirections = [4]CastleDirection{
	CastleDirectionWhiteRight,
	CastleDirectionWhiteLeft,
	CastleDirectionBlackRight,
	CastleDirectionBlackLeft,
}

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) Side() Side {
	return Side(d >> 1)
}

func (d CastleDirection) IsRight() bool {
	return d&1 == 0
}

func (d CastleDirection) symbolFEN() byte {
	return "KQkq"[d]
}

// castle describes the squares one castling move touches.
type castle struct {
	kingFrom, kingTo position.Pos
	rookFrom, rookTo position.Pos
	// empty must hold no piece, safe must not be attacked.
	empty, safe Bitmap
}

var castles = [4]castle{
	CastleDirectionWhiteRight: {
		kingFrom: position.E1, kingTo: position.G1,
		rookFrom: position.H1, rookTo: position.F1,
		empty: NewBitmap(position.F1, position.G1),
		safe:  NewBitmap(position.E1, position.F1, position.G1),
	},
	CastleDirectionWhiteLeft: {
		kingFrom: position.E1, kingTo: position.C1,
		rookFrom: position.A1, rookTo: position.D1,
		empty: NewBitmap(position.B1, position.C1, position.D1),
		safe:  NewBitmap(position.E1, position.D1, position.C1),
	},
	CastleDirectionBlackRight: {
		kingFrom: position.E8, kingTo: position.G8,
		rookFrom: position.H8, rookTo: position.F8,
		empty: NewBitmap(position.F8, position.G8),
		safe:  NewBitmap(position.E8, position.F8, position.G8),
	},
	CastleDirectionBlackLeft: {
		kingFrom: position.E8, kingTo: position.C8,
		rookFrom: position.A8, rookTo: position.D8,
		empty: NewBitmap(position.B8, position.C8, position.D8),
		safe:  NewBitmap(position.E8, position.D8, position.C8),
	},
}

// CastleRights is a 4-bit set of CastleDirection.
type CastleRights uint8

const (
	CastleRightsNone CastleRights = 0
	CastleRightsAll  CastleRights = 0b1111
)

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= 1 << d
	} else {
		*c &^= 1 << d
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&(1<<d) != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	return c&(0b11<<(s*2)) != 0
}

// String renders the rights as a FEN castling field.
func (c CastleRights) String() string {
	if c == CastleRightsNone {
		return "-"
	}
	var b []byte
	for _, d := range CastleDirections {
		if c.IsAllowed(d) {
			b = append(b, d.symbolFEN())
		}
	}
	return string(b)
}

func parseCastleRights(field string) (CastleRights, error) {
	var c CastleRights
	if field == "-" {
		return c, nil
	}
	if field == "" || len(field) > 4 {
		return c, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
	for i := 0; i < len(field); i++ {
		d, ok := castleDirectionFromSymbolFEN(field[i])
		if !ok || c.IsAllowed(d) {
			return c, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
		}
		c.Set(d, true)
	}
	return c, nil
}

func castleDirectionFromSymbolFEN(sym byte) (CastleDirection, bool) {
	for _, d := range CastleDirections {
		if d.symbolFEN() == sym {
			return d, true
		}
	}
	return 0, false
}

// castleRightsRevoke lists the rights lost when a move starts or ends on a square.
var castleRightsRevoke = func() [TotalCells]CastleRights {
	var r [TotalCells]CastleRights
	for _, d := range CastleDirections {
		c := castles[d]
		r[c.kingFrom] |= 1 << d
		r[c.rookFrom] |= 1 << d
	}
	return r
}()
