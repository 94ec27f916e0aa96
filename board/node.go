package board

import (
	"errors"
	"fmt"

	"github.com/daystram/shah/position"
)

var ErrOccupancyMismatch = errors.New("occupancy mismatch")

// Node is the bitboard form of a position used for move generation. It is a
// plain value: assigning it clones it.
//
// Little-endian rank-file (LERF) mapping.
type Node struct {
	// grid data
	pieces   [PieceCount]Bitmap
	sides    [2]Bitmap
	occupied Bitmap

	// meta
	turn         Side
	castleRights CastleRights
	enPassant    Bitmap // empty when no en passant capture is possible
}

func NewNodeFromPosition(p *Position) Node {
	var n Node
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		pc, ok := p.PieceAt(pos)
		if !ok {
			continue
		}
		cell := Cell(pos)
		n.pieces[pc] |= cell
		n.sides[pc.Side()] |= cell
		n.occupied |= cell
	}
	n.turn = p.turn
	n.castleRights = p.castleRights
	if ep, ok := p.EnPassant(); ok {
		n.enPassant = Cell(ep)
	}
	return n
}

func (n *Node) Turn() Side {
	return n.turn
}

func (n *Node) CastleRights() CastleRights {
	return n.castleRights
}

func (n *Node) EnPassant() (position.Pos, bool) {
	if n.enPassant == 0 {
		return 0, false
	}
	return n.enPassant.LS1B(), true
}

// Pieces returns the squares holding p.
func (n *Node) Pieces(p Piece) Bitmap {
	return n.pieces[p]
}

// Occupied returns the squares held by s.
func (n *Node) Occupied(s Side) Bitmap {
	return n.sides[s]
}

// Total returns every occupied square.
func (n *Node) Total() Bitmap {
	return n.occupied
}

// PieceAt returns the piece on pos, if any.
func (n *Node) PieceAt(pos position.Pos) (Piece, bool) {
	cell := Cell(pos)
	if n.occupied&cell == 0 {
		return PieceNone, false
	}
	for p := Piece(0); p < PieceCount; p++ {
		if n.pieces[p]&cell != 0 {
			return p, true
		}
	}
	return PieceNone, false
}

// Position converts the node back into a position with the given clocks.
func (n *Node) Position(halfMoveClock, fullMoveClock uint16) *Position {
	p := &Position{
		turn:          n.turn,
		castleRights:  n.castleRights,
		halfMoveClock: halfMoveClock,
		fullMoveClock: fullMoveClock,
	}
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		p.cells[pos], _ = n.PieceAt(pos)
	}
	p.enPassant, p.hasEnPassant = n.EnPassant()
	return p
}

// ApplyMove moves piece p along mv, a two-square mask holding the origin and
// the empty destination.
func (n *Node) ApplyMove(p Piece, mv Bitmap) {
	if debug {
		assert(mv.BitCount() == 2, "ApplyMove: move mask %#x must have 2 bits", uint64(mv))
		assert((n.pieces[p]&mv).BitCount() == 1, "ApplyMove: %s must occupy exactly one of %#x", p, uint64(mv))
	}
	n.pieces[p] ^= mv
	n.sides[p.Side()] ^= mv
	n.occupied ^= mv
	n.assertOccupancy()
}

// ApplyCapture moves piece p from from to to, clearing whatever the other
// side holds on to.
func (n *Node) ApplyCapture(p Piece, from, to Bitmap) {
	n.clear(p.Side().Opposite(), to)
	n.ApplyMove(p, from|to)
}

// ApplyEnPassant moves pawn p from from to to and removes the pawn directly
// behind to.
func (n *Node) ApplyEnPassant(p Piece, from, to Bitmap) {
	s := p.Side()
	captured := pawnBehind(s, to)
	if debug {
		assert(n.pieces[p.FlipSide()]&captured != 0, "ApplyEnPassant: no pawn behind %#x", uint64(to))
	}
	n.clear(s.Opposite(), captured)
	n.ApplyMove(p, from|to)
}

// ApplyPromotion removes pawn p from from and places promoted on to, capturing
// whatever the other side holds there.
func (n *Node) ApplyPromotion(p, promoted Piece, from, to Bitmap) {
	if debug {
		assert(n.pieces[p]&from != 0, "ApplyPromotion: %s not on %#x", p, uint64(from))
		assert(p.Side() == promoted.Side(), "ApplyPromotion: %s cannot promote to %s", p, promoted)
	}
	s := p.Side()
	n.clear(s.Opposite(), to)
	n.pieces[p] &^= from
	n.pieces[promoted] |= to
	n.sides[s] = n.sides[s]&^from | to
	n.occupied = n.occupied&^from | to
	n.assertOccupancy()
}

// clear runs a capture scan: bm is removed from every piece of side s.
func (n *Node) clear(s Side, bm Bitmap) {
	if n.sides[s]&bm == 0 {
		return
	}
	for k := Kind(0); k < KindCount; k++ {
		n.pieces[NewPiece(s, k)] &^= bm
	}
	n.sides[s] &^= bm
	n.occupied &^= bm
}

// ValidateOccupancy checks that each side's occupancy is the union of its
// pieces, that sides and pieces never overlap, and that the total is the union
// of both sides.
func (n *Node) ValidateOccupancy() error {
	var seen Bitmap
	var sides [2]Bitmap
	for p := Piece(0); p < PieceCount; p++ {
		if seen&n.pieces[p] != 0 {
			return fmt.Errorf("%w: %s overlaps another piece at %#x", ErrOccupancyMismatch, p, uint64(seen&n.pieces[p]))
		}
		seen |= n.pieces[p]
		sides[p.Side()] |= n.pieces[p]
	}
	for _, s := range Sides {
		if sides[s] != n.sides[s] {
			return fmt.Errorf("%w: %s pieces %#x, occupancy %#x", ErrOccupancyMismatch, s, uint64(sides[s]), uint64(n.sides[s]))
		}
	}
	if n.sides[SideWhite]&n.sides[SideBlack] != 0 {
		return fmt.Errorf("%w: sides intersect at %#x", ErrOccupancyMismatch, uint64(n.sides[SideWhite]&n.sides[SideBlack]))
	}
	if n.sides[SideWhite]|n.sides[SideBlack] != n.occupied {
		return fmt.Errorf("%w: total %#x", ErrOccupancyMismatch, uint64(n.occupied))
	}
	return nil
}

func (n *Node) assertOccupancy() {
	if debug {
		err := n.ValidateOccupancy()
		assert(err == nil, "%v", err)
	}
}

// SquareAttackedBy reports whether any piece of s attacks pos.
func (n *Node) SquareAttackedBy(s Side, pos position.Pos) bool {
	switch {
	case KnightAttacks(pos)&n.pieces[NewPiece(s, KindKnight)] != 0:
		return true
	case PawnAttacks(s.Opposite(), Cell(pos))&n.pieces[NewPiece(s, KindPawn)] != 0:
		return true
	case KingAttacks(pos)&n.pieces[NewPiece(s, KindKing)] != 0:
		return true
	}
	queens := n.pieces[NewPiece(s, KindQueen)]
	if BishopAttacks(pos, n.occupied)&(n.pieces[NewPiece(s, KindBishop)]|queens) != 0 {
		return true
	}
	return RookAttacks(pos, n.occupied)&(n.pieces[NewPiece(s, KindRook)]|queens) != 0
}

// AttackedBy returns every square attacked by s.
func (n *Node) AttackedBy(s Side) Bitmap {
	attacks := PawnAttacks(s, n.pieces[NewPiece(s, KindPawn)])
	for pos := range n.pieces[NewPiece(s, KindKnight)].Squares() {
		attacks |= KnightAttacks(pos)
	}
	for pos := range n.pieces[NewPiece(s, KindBishop)].Squares() {
		attacks |= BishopAttacks(pos, n.occupied)
	}
	for pos := range n.pieces[NewPiece(s, KindRook)].Squares() {
		attacks |= RookAttacks(pos, n.occupied)
	}
	for pos := range n.pieces[NewPiece(s, KindQueen)].Squares() {
		attacks |= QueenAttacks(pos, n.occupied)
	}
	for pos := range n.pieces[NewPiece(s, KindKing)].Squares() {
		attacks |= KingAttacks(pos)
	}
	return attacks
}

// KingAttacked reports whether the king of s is attacked by the other side.
// A side without a king is never in check.
func (n *Node) KingAttacked(s Side) bool {
	king := n.pieces[NewPiece(s, KindKing)]
	if king == 0 {
		return false
	}
	return n.SquareAttackedBy(s.Opposite(), king.LS1B())
}

func (n *Node) WhiteKingAttacked() bool {
	return n.KingAttacked(SideWhite)
}

func (n *Node) BlackKingAttacked() bool {
	return n.KingAttacked(SideBlack)
}
