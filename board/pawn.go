package board

import "github.com/daystram/shah/position"

var (
	pawnStartRow   = [2]Bitmap{SideWhite: maskRow[position.Rank2], SideBlack: maskRow[position.Rank7]}
	pawnPromoteRow = [2]Bitmap{SideWhite: maskRow[position.Rank8], SideBlack: maskRow[position.Rank1]}
	enPassantRank  = [2]position.Pos{SideWhite: position.Rank6, SideBlack: position.Rank3}

	// Square index deltas of a pawn push and of its east and west captures.
	pawnPushDelta = [2]position.Pos{SideWhite: 8, SideBlack: -8}
	pawnEastDelta = [2]position.Pos{SideWhite: 9, SideBlack: -7}
	pawnWestDelta = [2]position.Pos{SideWhite: 7, SideBlack: -9}
)

// pawnForward shifts pawns one rank towards the opponent. Pawns already on the
// promotion rank are dropped.
func pawnForward(s Side, pawns Bitmap) Bitmap {
	if s == SideWhite {
		return ShiftN(pawns &^ maskRow[position.Rank8])
	}
	return ShiftS(pawns &^ maskRow[position.Rank1])
}

// pawnBehind returns the squares directly behind bm from the point of view of s.
func pawnBehind(s Side, bm Bitmap) Bitmap {
	return pawnForward(s.Opposite(), bm)
}

// PawnSinglePushes returns the targets of one-rank pushes onto empty squares.
func PawnSinglePushes(s Side, pawns, occupied Bitmap) Bitmap {
	return pawnForward(s, pawns) &^ occupied
}

// PawnDoublePushes returns the targets of two-rank pushes from the start rank.
// Both the skipped square and the target must be empty.
func PawnDoublePushes(s Side, pawns, occupied Bitmap) Bitmap {
	return pawnForward(s, PawnSinglePushes(s, pawns&pawnStartRow[s], occupied)) &^ occupied
}

// PawnPushes returns single and double push targets.
func PawnPushes(s Side, pawns, occupied Bitmap) (single, double Bitmap) {
	return PawnSinglePushes(s, pawns, occupied), PawnDoublePushes(s, pawns, occupied)
}

// PawnAttacksEast returns the squares pawns attack towards file h.
func PawnAttacksEast(s Side, pawns Bitmap) Bitmap {
	if s == SideWhite {
		return ShiftNE(pawns &^ (maskRow[position.Rank8] | maskCol[position.FileH]))
	}
	return ShiftSE(pawns &^ (maskRow[position.Rank1] | maskCol[position.FileH]))
}

// PawnAttacksWest returns the squares pawns attack towards file a.
func PawnAttacksWest(s Side, pawns Bitmap) Bitmap {
	if s == SideWhite {
		return ShiftNW(pawns &^ (maskRow[position.Rank8] | maskCol[position.FileA]))
	}
	return ShiftSW(pawns &^ (maskRow[position.Rank1] | maskCol[position.FileA]))
}

// PawnAttacks returns every square the pawns attack.
func PawnAttacks(s Side, pawns Bitmap) Bitmap {
	return PawnAttacksEast(s, pawns) | PawnAttacksWest(s, pawns)
}

// PawnPromoteRow is the rank where pawns of s promote.
func PawnPromoteRow(s Side) Bitmap {
	return pawnPromoteRow[s]
}
