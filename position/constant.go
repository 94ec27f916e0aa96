package position

// Direction is a single-step displacement in files (DX) and ranks (DY).
type Direction struct {
	DX, DY Pos
}

var (
	North     = Direction{DX: 0, DY: 1}
	NorthEast = Direction{DX: 1, DY: 1}
	East      = Direction{DX: 1, DY: 0}
	SouthEast = Direction{DX: 1, DY: -1}
	South     = Direction{DX: 0, DY: -1}
	SouthWest = Direction{DX: -1, DY: -1}
	West      = Direction{DX: -1, DY: 0}
	NorthWest = Direction{DX: -1, DY: 1}

	OrthogonalDirections = [4]Direction{North, East, South, West}
	DiagonalDirections   = [4]Direction{NorthEast, SouthEast, SouthWest, NorthWest}
)

const (
	FileA Pos = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Pos = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const (
	A1 Pos = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)
