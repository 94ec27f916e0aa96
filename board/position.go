package board

import (
	"errors"
	"fmt"

	"github.com/daystram/shah/position"
)

var (
	ErrInvalidFEN        = errors.New("invalid fen")
	ErrInvalidPieceCount = errors.New("invalid piece count")
)

const (
	maxPawnsPerSide  = 8
	maxPiecesPerSide = 16
)

// Position is the authoritative board state. It is never mutated after
// construction; Node is the form used for move generation.
type Position struct {
	cells         [TotalCells]Piece
	turn          Side
	castleRights  CastleRights
	enPassant     position.Pos
	hasEnPassant  bool
	halfMoveClock uint16
	fullMoveClock uint16
}

type positionConfig struct {
	fen string
}

type PositionOption func(*positionConfig)

func WithFEN(fen string) PositionOption {
	return func(cfg *positionConfig) {
		cfg.fen = fen
	}
}

// NewPosition builds a position, the standard starting position by default.
func NewPosition(opts ...PositionOption) (*Position, error) {
	cfg := &positionConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}
	p := &Position{}
	if err := UnmarshalFEN(cfg.fen, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ParsePosition parses untrusted FEN input.
func ParsePosition(fen string) (*Position, error) {
	return NewPosition(WithFEN(fen))
}

// MustParsePosition parses a FEN known to be valid and panics otherwise.
func MustParsePosition(fen string) *Position {
	p, err := ParsePosition(fen)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Position) Turn() Side {
	return p.turn
}

func (p *Position) CastleRights() CastleRights {
	return p.castleRights
}

func (p *Position) EnPassant() (position.Pos, bool) {
	return p.enPassant, p.hasEnPassant
}

func (p *Position) HalfMoveClock() uint16 {
	return p.halfMoveClock
}

func (p *Position) FullMoveClock() uint16 {
	return p.fullMoveClock
}

// PieceAt returns the piece on pos, if any.
func (p *Position) PieceAt(pos position.Pos) (Piece, bool) {
	pc := p.cells[pos]
	return pc, pc != PieceNone
}

func (p *Position) FEN() string {
	return MarshalFEN(p)
}

func (p *Position) String() string {
	return p.FEN()
}

// PieceCountRule names a piece count constraint.
type PieceCountRule uint8

const (
	RuleOneKing PieceCountRule = iota
	RuleMaxPawns
	RuleMaxPieces
)

func (r PieceCountRule) String() string {
	switch r {
	case RuleOneKing:
		return "must have exactly one king"
	case RuleMaxPawns:
		return fmt.Sprintf("must have at most %d pawns", maxPawnsPerSide)
	case RuleMaxPieces:
		return fmt.Sprintf("must have at most %d pieces", maxPiecesPerSide)
	default:
		return ""
	}
}

// PieceCountError reports the side and rule a position violates.
type PieceCountError struct {
	Side  Side
	Rule  PieceCountRule
	Count int
}

func (e *PieceCountError) Error() string {
	return fmt.Sprintf("%v: %s %s, found %d", ErrInvalidPieceCount, e.Side, e.Rule, e.Count)
}

func (e *PieceCountError) Unwrap() error {
	return ErrInvalidPieceCount
}

// Validate checks piece counts per side. Every violation is reported as a
// *PieceCountError joined into the returned error.
func (p *Position) Validate() error {
	var kings, pawns, pieces [2]int
	for _, pc := range p.cells {
		if pc == PieceNone {
			continue
		}
		s := pc.Side()
		pieces[s]++
		switch pc.Kind() {
		case KindKing:
			kings[s]++
		case KindPawn:
			pawns[s]++
		}
	}

	var errs []error
	for _, s := range Sides {
		if kings[s] != 1 {
			errs = append(errs, &PieceCountError{Side: s, Rule: RuleOneKing, Count: kings[s]})
		}
		if pawns[s] > maxPawnsPerSide {
			errs = append(errs, &PieceCountError{Side: s, Rule: RuleMaxPawns, Count: pawns[s]})
		}
		if pieces[s] > maxPiecesPerSide {
			errs = append(errs, &PieceCountError{Side: s, Rule: RuleMaxPieces, Count: pieces[s]})
		}
	}
	return errors.Join(errs...)
}
