package board

// Kind is a piece type regardless of side.
type Kind uint8

const (
	KindPawn Kind = iota
	KindKnight
	KindBishop
	KindRook
	KindQueen
	KindKing

	KindCount = 6
)

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = [4]Kind{KindKnight, KindBishop, KindRook, KindQueen}

func (k Kind) String() string {
	return k.Name()
}

func (k Kind) Name() string {
	switch k {
	case KindPawn:
		return "Pawn"
	case KindKnight:
		return "Knight"
	case KindBishop:
		return "Bishop"
	case KindRook:
		return "Rook"
	case KindQueen:
		return "Queen"
	case KindKing:
		return "King"
	default:
		return ""
	}
}

// Piece is a side and kind packed as kind*2 + side.
type Piece uint8

const (
	PieceWhitePawn Piece = iota
	PieceBlackPawn
	PieceWhiteKnight
	PieceBlackKnight
	PieceWhiteBishop
	PieceBlackBishop
	PieceWhiteRook
	PieceBlackRook
	PieceWhiteQueen
	PieceBlackQueen
	PieceWhiteKing
	PieceBlackKing

	PieceCount = 12

	// PieceNone marks an empty square.
	PieceNone Piece = 0xFF
)

func NewPiece(s Side, k Kind) Piece {
	return Piece(k)<<1 | Piece(s)
}

// NewPieceFromSymbolFEN parses one of PNBRQK (white) or pnbrqk (black).
func NewPieceFromSymbolFEN(sym byte) (Piece, bool) {
	s := SideWhite
	if 'a' <= sym && sym <= 'z' {
		s = SideBlack
		sym &^= 0x20 // lowercase is +32 uppercase
	}
	var k Kind
	switch sym {
	case 'P':
		k = KindPawn
	case 'N':
		k = KindKnight
	case 'B':
		k = KindBishop
	case 'R':
		k = KindRook
	case 'Q':
		k = KindQueen
	case 'K':
		k = KindKing
	default:
		return PieceNone, false
	}
	return NewPiece(s, k), true
}

func (p Piece) Side() Side {
	return Side(p & 1)
}

func (p Piece) Kind() Kind {
	return Kind(p >> 1)
}

// FlipSide returns the same kind for the other side.
func (p Piece) FlipSide() Piece {
	return p ^ 1
}

func (p Piece) IsValid() bool {
	return p < PieceCount
}

func (p Piece) String() string {
	if !p.IsValid() {
		return ""
	}
	return p.Side().String() + " " + p.Kind().Name()
}

func (p Piece) SymbolFEN() string {
	var sym byte
	switch p.Kind() {
	case KindPawn:
		sym = 'P'
	case KindKnight:
		sym = 'N'
	case KindBishop:
		sym = 'B'
	case KindRook:
		sym = 'R'
	case KindQueen:
		sym = 'Q'
	case KindKing:
		sym = 'K'
	default:
		return ""
	}
	if p.Side() == SideBlack {
		sym |= 0x20
	}
	return string(sym)
}

func (p Piece) SymbolUnicode() string {
	if !p.IsValid() {
		return ""
	}
	return symbolsUnicode[p]
}

var symbolsUnicode = [PieceCount]string{
	PieceWhitePawn:   "♙",
	PieceBlackPawn:   "♟",
	PieceWhiteKnight: "♘",
	PieceBlackKnight: "♞",
	PieceWhiteBishop: "♗",
	PieceBlackBishop: "♝",
	PieceWhiteRook:   "♖",
	PieceBlackRook:   "♜",
	PieceWhiteQueen:  "♕",
	PieceBlackQueen:  "♛",
	PieceWhiteKing:   "♔",
	PieceBlackKing:   "♚",
}
