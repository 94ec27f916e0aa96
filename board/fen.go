package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/shah/position"
)

// UnmarshalFEN parses a six-field FEN record into p. Piece counts are not
// checked here; see Position.Validate.
func UnmarshalFEN(fen string, p *Position) error {
	if p == nil {
		return fmt.Errorf("invalid position")
	}
	segments := strings.Fields(fen)
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for i := range p.cells {
		p.cells[i] = PieceNone
	}
	for y := position.Pos(0); y < Height; y++ {
		row := rows[Height-y-1]
		x := position.Pos(0)
		for i := 0; i < len(row); i++ {
			cell := row[i]
			if '1' <= cell && cell <= '8' {
				x += position.Pos(cell - '0')
				if x > Width {
					return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				continue
			}
			pc, ok := NewPieceFromSymbolFEN(cell)
			if !ok {
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			if x >= Width {
				return fmt.Errorf("%w: too many cells on rank %d", ErrInvalidFEN, y+1)
			}
			p.cells[y*Width+x] = pc
			x++
		}
		if x != Width {
			return fmt.Errorf("%w: missing cells on rank %d", ErrInvalidFEN, y+1)
		}
	}

	switch segments[1] {
	case "w":
		p.turn = SideWhite
	case "b":
		p.turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	castleRights, err := parseCastleRights(segments[2])
	if err != nil {
		return err
	}
	p.castleRights = castleRights

	p.hasEnPassant = false
	if segments[3] != "-" {
		pos, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid enpassant position: %v", ErrInvalidFEN, err)
		}
		if pos.Y() != enPassantRank[p.turn] {
			return fmt.Errorf("%w: invalid enpassant position: %s", ErrInvalidFEN, pos)
		}
		p.enPassant, p.hasEnPassant = pos, true
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 16)
	if err != nil {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	p.halfMoveClock = uint16(halfMoveClock)

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 16)
	if err != nil {
		return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}
	p.fullMoveClock = uint16(fullMoveClock)

	return nil
}

func MarshalFEN(p *Position) string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		var skip uint8
		for x := position.Pos(0); x < Width; x++ {
			pc, ok := p.PieceAt(y*Width + x)
			if !ok {
				skip++
				continue
			}
			if skip != 0 {
				_ = builder.WriteByte('0' + skip)
				skip = 0
			}
			_, _ = builder.WriteString(pc.SymbolFEN())
		}
		if skip != 0 {
			_ = builder.WriteByte('0' + skip)
		}
		if y > 0 {
			_ = builder.WriteByte('/')
		}
	}

	_, _ = builder.WriteString(" " + p.turn.symbolFEN() + " ")
	_, _ = builder.WriteString(p.castleRights.String())
	_ = builder.WriteByte(' ')

	if ep, ok := p.EnPassant(); ok {
		_, _ = builder.WriteString(ep.Notation())
	} else {
		_ = builder.WriteByte('-')
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", p.halfMoveClock, p.fullMoveClock))

	return builder.String()
}
