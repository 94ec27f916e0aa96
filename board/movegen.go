package board

import (
	"errors"
	"fmt"
	"iter"

	"github.com/daystram/shah/position"
)

var ErrIllegalMove = errors.New("illegal move")

// Children yields every pseudo-legal move of the side to move together with
// the node it leads to. Castling is only generated when it is legal.
func (n *Node) Children() iter.Seq2[Move, Node] {
	return n.children(n.turn, false)
}

// LegalChildren is Children without moves leaving the mover's king attacked.
func (n *Node) LegalChildren() iter.Seq2[Move, Node] {
	return n.children(n.turn, true)
}

func (n *Node) children(s Side, legal bool) iter.Seq2[Move, Node] {
	return func(yield func(Move, Node) bool) {
		g := generator{n: n, s: s, legal: legal, yield: yield}
		g.run()
	}
}

// CountMoves returns the number of legal moves of s. En passant is only
// considered for the side to move.
func (n *Node) CountMoves(s Side) int {
	var count int
	for range n.children(s, true) {
		count++
	}
	return count
}

func (n *Node) CountWhiteMoves() int {
	return n.CountMoves(SideWhite)
}

func (n *Node) CountBlackMoves() int {
	return n.CountMoves(SideBlack)
}

// CountPseudoLegalMoves counts the pseudo-legal moves of s without building
// them: destination popcounts per piece, promotions weighted by the four
// candidates. Castling is not counted.
func (n *Node) CountPseudoLegalMoves(s Side) int {
	own, enemy := n.sides[s], n.sides[s.Opposite()]
	promote := pawnPromoteRow[s]
	pawns := n.pieces[NewPiece(s, KindPawn)]

	single, double := PawnPushes(s, pawns, n.occupied)
	count := popCount(single&^promote) + 4*popCount(single&promote) + popCount(double)
	ep := n.enPassantTarget(s)
	for _, attacks := range [2]Bitmap{PawnAttacksEast(s, pawns), PawnAttacksWest(s, pawns)} {
		targets := attacks & enemy
		count += popCount(targets&^promote) + 4*popCount(targets&promote) + popCount(attacks&ep)
	}

	for pos := range n.pieces[NewPiece(s, KindKnight)].Squares() {
		count += popCount(KnightAttacks(pos) &^ own)
	}
	for pos := range n.pieces[NewPiece(s, KindBishop)].Squares() {
		count += popCount(BishopAttacks(pos, n.occupied) &^ own)
	}
	for pos := range n.pieces[NewPiece(s, KindRook)].Squares() {
		count += popCount(RookAttacks(pos, n.occupied) &^ own)
	}
	for pos := range n.pieces[NewPiece(s, KindQueen)].Squares() {
		count += popCount(QueenAttacks(pos, n.occupied) &^ own)
	}
	for pos := range n.pieces[NewPiece(s, KindKing)].Squares() {
		count += popCount(KingAttacks(pos) &^ own)
	}
	return count
}

// ApplyUCI plays a legal move given in coordinate notation.
func (n *Node) ApplyUCI(uci string) (Move, Node, error) {
	for mv, child := range n.LegalChildren() {
		if mv.UCI() == uci {
			return mv, child, nil
		}
	}
	return Move{}, Node{}, fmt.Errorf("%w: %s", ErrIllegalMove, uci)
}

// enPassantTarget returns the en passant square if s is to move and a pawn of
// the other side stands behind it.
func (n *Node) enPassantTarget(s Side) Bitmap {
	if s != n.turn || n.enPassant == 0 {
		return 0
	}
	if pawnBehind(s, n.enPassant)&n.pieces[NewPiece(s.Opposite(), KindPawn)] == 0 {
		return 0
	}
	return n.enPassant
}

func popCount(bm Bitmap) int {
	return int(bm.BitCount())
}

type generator struct {
	n     *Node
	s     Side
	legal bool
	yield func(Move, Node) bool
}

// run emits every move of the side to move and reports false when the
// consumer stopped early.
func (g *generator) run() bool {
	return g.pawnSimplePushes() &&
		g.pawnDoublePushes() &&
		g.pawnPromotionPushes() &&
		g.pawnSimpleAttacks(PawnAttacksEast, pawnEastDelta[g.s]) &&
		g.pawnSimpleAttacks(PawnAttacksWest, pawnWestDelta[g.s]) &&
		g.pawnPromotionAttacks(PawnAttacksEast, pawnEastDelta[g.s]) &&
		g.pawnPromotionAttacks(PawnAttacksWest, pawnWestDelta[g.s]) &&
		g.pawnEnPassant() &&
		g.jumper(KindKnight, KnightAttacks) &&
		g.slider(KindBishop, BishopAttacks) &&
		g.slider(KindRook, RookAttacks) &&
		g.slider(KindQueen, QueenAttacks) &&
		g.jumper(KindKing, KingAttacks) &&
		g.castles()
}

// child returns a copy of the node with the other side to move and no en
// passant target.
func (g *generator) child() Node {
	c := *g.n
	c.turn = g.s.Opposite()
	c.enPassant = 0
	return c
}

func (g *generator) emit(mv Move, c *Node) bool {
	c.castleRights &^= castleRightsRevoke[mv.From] | castleRightsRevoke[mv.To]
	if g.legal && c.KingAttacked(g.s) {
		return true
	}
	return g.yield(mv, *c)
}

func (g *generator) pawns() (Piece, Bitmap) {
	p := NewPiece(g.s, KindPawn)
	return p, g.n.pieces[p]
}

func (g *generator) pawnSimplePushes() bool {
	p, pawns := g.pawns()
	delta := pawnPushDelta[g.s]
	for to, toBM := range (PawnSinglePushes(g.s, pawns, g.n.occupied) &^ pawnPromoteRow[g.s]).Singletons() {
		from := to - delta
		c := g.child()
		c.ApplyMove(p, Cell(from)|toBM)
		if !g.emit(Move{From: from, To: to, Piece: p}, &c) {
			return false
		}
	}
	return true
}

func (g *generator) pawnDoublePushes() bool {
	p, pawns := g.pawns()
	delta := pawnPushDelta[g.s]
	for to, toBM := range PawnDoublePushes(g.s, pawns, g.n.occupied).Singletons() {
		from := to - 2*delta
		c := g.child()
		c.ApplyMove(p, Cell(from)|toBM)
		c.enPassant = Cell(from + delta)
		if !g.emit(Move{From: from, To: to, Piece: p}, &c) {
			return false
		}
	}
	return true
}

func (g *generator) pawnPromotionPushes() bool {
	p, pawns := g.pawns()
	delta := pawnPushDelta[g.s]
	for to, toBM := range (PawnSinglePushes(g.s, pawns, g.n.occupied) & pawnPromoteRow[g.s]).Singletons() {
		from := to - delta
		for _, k := range PawnPromoteCandidates {
			c := g.child()
			c.ApplyPromotion(p, NewPiece(g.s, k), Cell(from), toBM)
			if !g.emit(Move{From: from, To: to, Piece: p, IsPromote: true, Promote: k}, &c) {
				return false
			}
		}
	}
	return true
}

func (g *generator) pawnSimpleAttacks(attacks func(Side, Bitmap) Bitmap, delta position.Pos) bool {
	p, pawns := g.pawns()
	targets := attacks(g.s, pawns) & g.n.sides[g.s.Opposite()] &^ pawnPromoteRow[g.s]
	for to, toBM := range targets.Singletons() {
		from := to - delta
		c := g.child()
		c.ApplyCapture(p, Cell(from), toBM)
		if !g.emit(Move{From: from, To: to, Piece: p, IsCapture: true}, &c) {
			return false
		}
	}
	return true
}

func (g *generator) pawnPromotionAttacks(attacks func(Side, Bitmap) Bitmap, delta position.Pos) bool {
	p, pawns := g.pawns()
	targets := attacks(g.s, pawns) & g.n.sides[g.s.Opposite()] & pawnPromoteRow[g.s]
	for to, toBM := range targets.Singletons() {
		from := to - delta
		for _, k := range PawnPromoteCandidates {
			c := g.child()
			c.ApplyPromotion(p, NewPiece(g.s, k), Cell(from), toBM)
			if !g.emit(Move{From: from, To: to, Piece: p, IsCapture: true, IsPromote: true, Promote: k}, &c) {
				return false
			}
		}
	}
	return true
}

func (g *generator) pawnEnPassant() bool {
	ep := g.n.enPassantTarget(g.s)
	if ep == 0 {
		return true
	}
	p, pawns := g.pawns()
	to := ep.LS1B()
	for _, a := range [2]struct {
		attacks func(Side, Bitmap) Bitmap
		delta   position.Pos
	}{
		{PawnAttacksEast, pawnEastDelta[g.s]},
		{PawnAttacksWest, pawnWestDelta[g.s]},
	} {
		if a.attacks(g.s, pawns)&ep == 0 {
			continue
		}
		from := to - a.delta
		c := g.child()
		c.ApplyEnPassant(p, Cell(from), ep)
		if !g.emit(Move{From: from, To: to, Piece: p, IsCapture: true, IsEnPassant: true}, &c) {
			return false
		}
	}
	return true
}

func (g *generator) jumper(k Kind, attacks func(position.Pos) Bitmap) bool {
	return g.pieceMoves(k, func(from position.Pos) Bitmap {
		return attacks(from)
	})
}

func (g *generator) slider(k Kind, attacks func(position.Pos, Bitmap) Bitmap) bool {
	occupied := g.n.occupied
	return g.pieceMoves(k, func(from position.Pos) Bitmap {
		return attacks(from, occupied)
	})
}

func (g *generator) pieceMoves(k Kind, attacks func(position.Pos) Bitmap) bool {
	p := NewPiece(g.s, k)
	own, enemy := g.n.sides[g.s], g.n.sides[g.s.Opposite()]
	for from, fromBM := range g.n.pieces[p].Singletons() {
		for to, toBM := range (attacks(from) &^ own).Singletons() {
			c := g.child()
			mv := Move{From: from, To: to, Piece: p}
			if enemy&toBM != 0 {
				mv.IsCapture = true
				c.ApplyCapture(p, fromBM, toBM)
			} else {
				c.ApplyMove(p, fromBM|toBM)
			}
			if !g.emit(mv, &c) {
				return false
			}
		}
	}
	return true
}

func (g *generator) castles() bool {
	if !g.n.castleRights.IsSideAllowed(g.s) {
		return true
	}
	king, rook := NewPiece(g.s, KindKing), NewPiece(g.s, KindRook)
	for _, d := range [2]CastleDirection{CastleDirection(g.s * 2), CastleDirection(g.s*2 + 1)} {
		cs := castles[d]
		if !g.n.castleRights.IsAllowed(d) ||
			g.n.occupied&cs.empty != 0 ||
			!g.n.pieces[king].Contains(cs.kingFrom) ||
			!g.n.pieces[rook].Contains(cs.rookFrom) ||
			g.anyAttacked(cs.safe) {
			continue
		}
		c := g.child()
		c.ApplyMove(king, NewBitmap(cs.kingFrom, cs.kingTo))
		c.ApplyMove(rook, NewBitmap(cs.rookFrom, cs.rookTo))
		if !g.emit(Move{From: cs.kingFrom, To: cs.kingTo, Piece: king, IsCastle: true, Castle: d}, &c) {
			return false
		}
	}
	return true
}

func (g *generator) anyAttacked(bm Bitmap) bool {
	for pos := range bm.Squares() {
		if g.n.SquareAttackedBy(g.s.Opposite(), pos) {
			return true
		}
	}
	return false
}
