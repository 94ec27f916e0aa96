package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// TotalCells is the number of squares on the board.
	TotalCells = MaxComponentScalar * MaxComponentScalar
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a square index in little-endian rank-file order: index = rank*8 + file.
type Pos int8

// NewPos returns the square on file x and rank y.
func NewPos(x, y Pos) (Pos, bool) {
	if !inRange(x) || !inRange(y) {
		return 0, false
	}
	return MaxComponentScalar*y + x, true
}

// NewPosFromIndex returns the square with the given 0-63 index.
func NewPosFromIndex(i int) (Pos, bool) {
	if i < 0 || i >= int(TotalCells) {
		return 0, false
	}
	return Pos(i), true
}

// NewPosFromNotation parses algebraic notation such as "e4". The file letter is
// case-insensitive.
func NewPosFromNotation(n string) (Pos, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return 0, err
	}
	return MaxComponentScalar*y + x, nil
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.IsValid() {
		return ""
	}
	return string(rune('a'+p.X())) + string(rune('1'+p.Y()))
}

func (p Pos) IsValid() bool {
	return 0 <= p && p < TotalCells
}

func (p Pos) Index() int {
	return int(p)
}

func (p Pos) X() Pos {
	return p % MaxComponentScalar
}

func (p Pos) Y() Pos {
	return p / MaxComponentScalar
}

// Offset moves the square by dx files and dy ranks. Steps leaving the board
// report false instead of wrapping.
func (p Pos) Offset(dx, dy Pos) (Pos, bool) {
	return NewPos(p.X()+dx, p.Y()+dy)
}

// Step moves the square one step in direction d.
func (p Pos) Step(d Direction) (Pos, bool) {
	return p.Offset(d.DX, d.DY)
}

// HFlip mirrors the square across the line between files d and e.
func (p Pos) HFlip() Pos {
	return p ^ 0b000_111
}

// VFlip mirrors the square across the line between ranks 4 and 5.
func (p Pos) VFlip() Pos {
	return p ^ 0b111_000
}

// Reverse rotates the square by 180 degrees.
func (p Pos) Reverse() Pos {
	return p ^ 0b111_111
}

func (p Pos) IsLight() bool {
	return (p.X()+p.Y())%2 == 1
}

func (p Pos) IsDark() bool {
	return !p.IsLight()
}

func inRange(c Pos) bool {
	return 0 <= c && c < MaxComponentScalar
}

func notationToXY(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	pY, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return pX, pY, nil
}

func notationToX(x byte) (Pos, error) {
	if 'A' <= x && x <= 'Z' {
		x |= 0x20 // lowercase is +32 uppercase
	}
	if x < 'a' || 'h' < x {
		return 0, ErrInvalidNotation
	}
	return Pos(x - 'a'), nil
}

func notationToY(y byte) (Pos, error) {
	if y < '1' || '8' < y {
		return 0, ErrInvalidNotation
	}
	return Pos(y - '1'), nil
}

func (p Pos) NotationComponentX() string {
	if !inRange(p) {
		return ""
	}
	return string(rune('a' + p))
}

func (p Pos) NotationComponentY() string {
	if !inRange(p) {
		return ""
	}
	return string(rune('1' + p))
}
