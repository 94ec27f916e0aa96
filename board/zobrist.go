package board

import "github.com/daystram/shah/position"

const zobristSeed = 0x9999

var (
	zobristConstantPiece        [PieceCount][TotalCells]uint64
	zobristConstantEnPassant    [TotalCells]uint64
	zobristConstantCastleRights [CastleRightsAll + 1]uint64
	zobristConstantSide         [2]uint64
)

func initZobrist() {
	r := NewPseudoRand(zobristSeed)
	for p := Piece(0); p < PieceCount; p++ {
		for pos := position.Pos(0); pos < TotalCells; pos++ {
			zobristConstantPiece[p][pos] = r.Uint64()
		}
	}
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		zobristConstantEnPassant[pos] = r.Uint64()
	}
	for c := range zobristConstantCastleRights {
		zobristConstantCastleRights[c] = r.Uint64()
	}
	for s := range zobristConstantSide {
		zobristConstantSide[s] = r.Uint64()
	}
}

// Hash returns the Zobrist key of the node: piece placement, castling rights,
// en passant target and side to move.
func (n *Node) Hash() uint64 {
	var h uint64
	for p := Piece(0); p < PieceCount; p++ {
		for pos := range n.pieces[p].Squares() {
			h ^= zobristConstantPiece[p][pos]
		}
	}
	if ep, ok := n.EnPassant(); ok {
		h ^= zobristConstantEnPassant[ep]
	}
	h ^= zobristConstantCastleRights[n.castleRights]
	h ^= zobristConstantSide[n.turn]
	return h
}

// Hash returns the Zobrist key of the position. It equals the key of the node
// built from it.
func (p *Position) Hash() uint64 {
	n := NewNodeFromPosition(p)
	return n.Hash()
}
