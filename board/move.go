package board

import "github.com/daystram/shah/position"

type Move struct {
	From, To position.Pos
	Piece    Piece

	IsCapture   bool
	IsEnPassant bool
	IsCastle    bool
	Castle      CastleDirection
	IsPromote   bool
	Promote     Kind
}

func (m Move) String() string {
	return m.Algebra()
}

// Algebra renders the move in a long algebraic form, e.g. "Nb1c3", "e5xd6 e.p.".
func (m Move) Algebra() string {
	if m.IsCastle {
		if m.Castle.IsRight() {
			return "0-0"
		}
		return "0-0-0"
	}
	var nt string
	if m.Piece.Kind() != KindPawn {
		nt = NewPiece(SideWhite, m.Piece.Kind()).SymbolFEN() // white for capital symbols
	}
	nt += m.From.Notation()
	if m.IsCapture {
		nt += "x"
	}
	nt += m.To.Notation()
	if m.IsPromote {
		nt += "=" + NewPiece(SideWhite, m.Promote).SymbolFEN()
	}
	if m.IsEnPassant {
		nt += " e.p."
	}
	return nt
}

// UCI renders the move in coordinate notation, e.g. "e7e8q".
func (m Move) UCI() string {
	nt := m.From.Notation() + m.To.Notation()
	if m.IsPromote {
		nt += NewPiece(SideBlack, m.Promote).SymbolFEN() // black for lowercase symbols
	}
	return nt
}
