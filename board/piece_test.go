package board

import "testing"

func TestPieceIndex(t *testing.T) {
	t.Parallel()
	seen := make(map[Piece]bool)
	for _, s := range Sides {
		for k := Kind(0); k < KindCount; k++ {
			p := NewPiece(s, k)
			if !p.IsValid() || seen[p] {
				t.Fatalf("unexpected piece index %d for %v %v", p, s, k)
			}
			seen[p] = true
			if p.Side() != s || p.Kind() != k {
				t.Errorf("unexpected roundtrip: got=%v,%v want=%v,%v", p.Side(), p.Kind(), s, k)
			}
			if got := p.FlipSide(); got != NewPiece(s.Opposite(), k) {
				t.Errorf("unexpected flip of %v: got=%v", p, got)
			}
			if int(p) != int(k)*2+int(s) {
				t.Errorf("unexpected index of %v: got=%d want=%d", p, p, int(k)*2+int(s))
			}
		}
	}
	if len(seen) != PieceCount {
		t.Errorf("unexpected piece count: got=%d want=%d", len(seen), PieceCount)
	}
}

func TestPieceSymbolFEN(t *testing.T) {
	t.Parallel()
	tests := []struct {
		sym  byte
		want Piece
	}{
		{sym: 'P', want: PieceWhitePawn},
		{sym: 'n', want: PieceBlackKnight},
		{sym: 'B', want: PieceWhiteBishop},
		{sym: 'r', want: PieceBlackRook},
		{sym: 'Q', want: PieceWhiteQueen},
		{sym: 'k', want: PieceBlackKing},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.sym), func(t *testing.T) {
			t.Parallel()
			got, ok := NewPieceFromSymbolFEN(tt.sym)
			if !ok || got != tt.want {
				t.Fatalf("unexpected piece: got=%v want=%v", got, tt.want)
			}
			if sym := got.SymbolFEN(); sym != string(tt.sym) {
				t.Errorf("unexpected symbol: got=%s want=%s", sym, string(tt.sym))
			}
		})
	}

	for p := Piece(0); p < PieceCount; p++ {
		got, ok := NewPieceFromSymbolFEN(p.SymbolFEN()[0])
		if !ok || got != p {
			t.Errorf("unexpected roundtrip of %v: got=%v", p, got)
		}
	}
	for _, sym := range []byte{'x', '1', ' ', 'Z'} {
		if _, ok := NewPieceFromSymbolFEN(sym); ok {
			t.Errorf("unexpected piece for %q", sym)
		}
	}
}

func TestCastleRights(t *testing.T) {
	t.Parallel()
	tests := []struct {
		field   string
		want    CastleRights
		wantErr bool
	}{
		{field: "KQkq", want: CastleRightsAll},
		{field: "-", want: CastleRightsNone},
		{field: "Qk", want: 0b0110},
		{field: "kqKQ", want: CastleRightsAll},
		{field: "", wantErr: true},
		{field: "KK", wantErr: true},
		{field: "KQkqK", wantErr: true},
		{field: "X", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.field, func(t *testing.T) {
			t.Parallel()
			got, err := parseCastleRights(tt.field)
			if tt.wantErr {
				if err == nil {
					t.Error("error expected: got=nil")
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got != tt.want {
				t.Errorf("unexpected rights: got=%04b want=%04b", got, tt.want)
			}
		})
	}

	c := CastleRightsAll
	c.Set(CastleDirectionWhiteLeft, false)
	c.Set(CastleDirectionWhiteRight, false)
	if c.IsSideAllowed(SideWhite) || !c.IsSideAllowed(SideBlack) {
		t.Errorf("unexpected side rights: %s", c)
	}
	if got := c.String(); got != "kq" {
		t.Errorf("unexpected string: got=%s want=%s", got, "kq")
	}
	if CastleDirectionBlackLeft.Side() != SideBlack || CastleDirectionBlackLeft.IsRight() {
		t.Error("unexpected direction attributes")
	}
}
