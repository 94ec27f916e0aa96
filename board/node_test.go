package board

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/daystram/shah/position"
)

type fataler interface {
	Helper()
	Fatal(args ...any)
}

func mustNode(t fataler, fen string) Node {
	t.Helper()
	p, err := ParsePosition(fen)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return NewNodeFromPosition(p)
}

func TestNodePositionRoundTrip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		fen string
	}{
		{fen: DefaultStartingPositionFEN},
		{fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"},
		{fen: "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2"},
		{fen: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 12 40"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.fen, func(t *testing.T) {
			t.Parallel()
			p := MustParsePosition(tt.fen)
			n := NewNodeFromPosition(p)
			if err := n.ValidateOccupancy(); err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got := n.Position(p.HalfMoveClock(), p.FullMoveClock()).FEN(); got != tt.fen {
				t.Errorf("unexpected fen: got=%s want=%s", got, tt.fen)
			}
		})
	}
}

func TestNodeApply(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		fen   string
		apply func(n *Node)
		want  string
	}{
		{
			name: "quiet",
			fen:  DefaultStartingPositionFEN,
			apply: func(n *Node) {
				n.ApplyMove(PieceWhiteKnight, NewBitmap(position.G1, position.F3))
			},
			want: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R",
		},
		{
			name: "capture",
			fen:  "k7/8/3p4/8/4N3/8/8/K7 w - - 0 1",
			apply: func(n *Node) {
				n.ApplyCapture(PieceWhiteKnight, Cell(position.E4), Cell(position.D6))
			},
			want: "k7/8/3N4/8/8/8/8/K7",
		},
		{
			name: "en passant",
			fen:  "k7/8/8/3pP3/8/8/8/K7 w - d6 0 1",
			apply: func(n *Node) {
				n.ApplyEnPassant(PieceWhitePawn, Cell(position.E5), Cell(position.D6))
			},
			want: "k7/8/3P4/8/8/8/8/K7",
		},
		{
			name: "promotion",
			fen:  "7k/P7/8/8/8/8/8/K7 w - - 0 1",
			apply: func(n *Node) {
				n.ApplyPromotion(PieceWhitePawn, PieceWhiteQueen, Cell(position.A7), Cell(position.A8))
			},
			want: "Q6k/8/8/8/8/8/8/K7",
		},
		{
			name: "promotion capture",
			fen:  "1r5k/P7/8/8/8/8/8/K7 w - - 0 1",
			apply: func(n *Node) {
				n.ApplyPromotion(PieceWhitePawn, PieceWhiteKnight, Cell(position.A7), Cell(position.B8))
			},
			want: "1N5k/8/8/8/8/8/8/K7",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n := mustNode(t, tt.fen)
			tt.apply(&n)
			if err := n.ValidateOccupancy(); err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got := MarshalFEN(n.Position(0, 1)); got[:len(tt.want)] != tt.want || got[len(tt.want)] != ' ' {
				t.Errorf("unexpected placement: got=%s want=%s", got, tt.want)
			}
		})
	}
}

func TestNodeCloneIsIndependent(t *testing.T) {
	t.Parallel()
	n := mustNode(t, DefaultStartingPositionFEN)
	c := n
	c.ApplyMove(PieceWhitePawn, NewBitmap(position.E2, position.E4))
	if n.Pieces(PieceWhitePawn).Contains(position.E4) || !n.Pieces(PieceWhitePawn).Contains(position.E2) {
		t.Error("clone mutated its source")
	}
}

func TestValidateOccupancy(t *testing.T) {
	t.Parallel()
	n := mustNode(t, DefaultStartingPositionFEN)
	n.sides[SideWhite] |= Cell(position.E4)
	if err := n.ValidateOccupancy(); err == nil {
		t.Error("error expected: got=nil")
	}

	n = mustNode(t, DefaultStartingPositionFEN)
	n.pieces[PieceBlackQueen] |= Cell(position.E1)
	if err := n.ValidateOccupancy(); err == nil {
		t.Error("error expected: got=nil")
	}
}

func TestSquareAttackedBy(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		side Side
		pos  position.Pos
		want bool
	}{
		{name: "pawn", fen: DefaultStartingPositionFEN, side: SideWhite, pos: position.E3, want: true},
		{name: "out of reach", fen: DefaultStartingPositionFEN, side: SideWhite, pos: position.E4, want: false},
		{name: "black knight", fen: DefaultStartingPositionFEN, side: SideBlack, pos: position.F6, want: true},
		{name: "black pawn", fen: DefaultStartingPositionFEN, side: SideBlack, pos: position.D6, want: true},
		{name: "blocked rook", fen: "k7/8/8/8/R2p3K/8/8/8 w - - 0 1", side: SideWhite, pos: position.E4, want: false},
		{name: "rook up to blocker", fen: "k7/8/8/8/R2p3K/8/8/8 w - - 0 1", side: SideWhite, pos: position.D4, want: true},
		{name: "queen diagonal", fen: "k7/8/8/8/8/8/8/Q6K w - - 0 1", side: SideWhite, pos: position.H8, want: true},
		{name: "king", fen: "k7/8/8/8/8/8/8/7K w - - 0 1", side: SideBlack, pos: position.B7, want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n := mustNode(t, tt.fen)
			if got := n.SquareAttackedBy(tt.side, tt.pos); got != tt.want {
				t.Errorf("unexpected attack: got=%v want=%v", got, tt.want)
			}
			if got := n.AttackedBy(tt.side).Contains(tt.pos); got != tt.want {
				t.Errorf("unexpected attack map: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestKingAttacked(t *testing.T) {
	t.Parallel()
	n := mustNode(t, "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	if !n.WhiteKingAttacked() {
		t.Error("white king must be attacked")
	}
	if n.BlackKingAttacked() {
		t.Error("black king must not be attacked")
	}
	inCheck := n.CountWhiteMoves()
	if inCheck != 6 {
		t.Errorf("unexpected move count in check: got=%d want=%d", inCheck, 6)
	}

	// same position without the checking bishop on b6
	n = mustNode(t, "r3k2r/Pppp1ppp/5nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1")
	if n.WhiteKingAttacked() {
		t.Error("white king must not be attacked")
	}
	if got := n.CountWhiteMoves(); got <= inCheck {
		t.Errorf("check must restrict moves: got=%d in check=%d", got, inCheck)
	}

	n = mustNode(t, "8/8/8/8/8/8/8/r7 w - - 0 1")
	if n.WhiteKingAttacked() {
		t.Error("missing king must not be attacked")
	}
}

func TestLegalWalkKeepsOccupancy(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		n := mustNode(t, DefaultStartingPositionFEN)
		plies := rapid.IntRange(1, 40).Draw(t, "plies")
		for ply := 0; ply < plies; ply++ {
			var children []Node
			for mv, child := range n.LegalChildren() {
				if err := child.ValidateOccupancy(); err != nil {
					t.Fatalf("after %v: %v", mv, err)
				}
				if child.KingAttacked(n.Turn()) {
					t.Fatalf("after %v: mover left in check", mv)
				}
				if child.Turn() != n.Turn().Opposite() {
					t.Fatalf("after %v: turn not passed", mv)
				}
				children = append(children, child)
			}
			if len(children) == 0 {
				return
			}
			n = children[rapid.IntRange(0, len(children)-1).Draw(t, "move")]
		}
	})
}
