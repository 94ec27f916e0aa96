package board

import (
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/daystram/shah/position"
)

func drawBitmap(t *rapid.T, label string) Bitmap {
	return Bitmap(rapid.Uint64().Draw(t, label))
}

func drawPos(t *rapid.T, label string) position.Pos {
	return position.Pos(rapid.IntRange(0, int(TotalCells)-1).Draw(t, label))
}

func TestBitmapFlip(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		bm := drawBitmap(t, "bm")
		if got := bm.HFlip().HFlip(); got != bm {
			t.Fatalf("unexpected hflip involution: got=%#x want=%#x", uint64(got), uint64(bm))
		}
		if got := bm.VFlip().VFlip(); got != bm {
			t.Fatalf("unexpected vflip involution: got=%#x want=%#x", uint64(got), uint64(bm))
		}
		if got := bm.Reverse().Reverse(); got != bm {
			t.Fatalf("unexpected reverse involution: got=%#x want=%#x", uint64(got), uint64(bm))
		}
		if bm.HFlip().VFlip() != bm.Reverse() || bm.VFlip().HFlip() != bm.Reverse() {
			t.Fatalf("flips do not commute: %#x", uint64(bm))
		}
	})
}

func TestBitmapFlipCommutesWithPos(t *testing.T) {
	t.Parallel()
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		cell := Cell(pos)
		if got, want := cell.HFlip(), Cell(pos.HFlip()); got != want {
			t.Errorf("unexpected hflip of %v: got=%#x want=%#x", pos, uint64(got), uint64(want))
		}
		if got, want := cell.VFlip(), Cell(pos.VFlip()); got != want {
			t.Errorf("unexpected vflip of %v: got=%#x want=%#x", pos, uint64(got), uint64(want))
		}
		if got, want := cell.Reverse(), Cell(pos.Reverse()); got != want {
			t.Errorf("unexpected reverse of %v: got=%#x want=%#x", pos, uint64(got), uint64(want))
		}
	}
}

func TestBitmapSingletonsRoundTrip(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		bm := drawBitmap(t, "bm")
		var folded Bitmap
		var prev position.Pos = -1
		for pos, single := range bm.Singletons() {
			if pos <= prev {
				t.Fatalf("unexpected order: %v after %v", pos, prev)
			}
			if single != Cell(pos) {
				t.Fatalf("unexpected singleton: got=%#x want=%#x", uint64(single), uint64(Cell(pos)))
			}
			prev = pos
			folded |= single
		}
		if folded != bm {
			t.Fatalf("unexpected fold: got=%#x want=%#x", uint64(folded), uint64(bm))
		}
		if got := NewBitmap(slices.Collect(bm.Squares())...); got != bm {
			t.Fatalf("unexpected squares roundtrip: got=%#x want=%#x", uint64(got), uint64(bm))
		}
	})
}

func TestBitmapAlgebra(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		a, b := drawBitmap(t, "a"), drawBitmap(t, "b")
		if a.Union(b).Complement() != a.Complement().Intersect(b.Complement()) {
			t.Fatal("de morgan does not hold")
		}
		if a.SymmetricDifference(b) != a.Difference(b).Union(b.Difference(a)) {
			t.Fatal("unexpected symmetric difference")
		}
		if a.Intersects(b) != !a.Intersect(b).IsEmpty() {
			t.Fatal("unexpected intersects")
		}
		if !a.Intersect(b).IsSubsetOf(a) || !a.IsSubsetOf(a.Union(b)) {
			t.Fatal("unexpected subset")
		}
		if int(a.BitCount())+int(a.Complement().BitCount()) != int(TotalCells) {
			t.Fatal("unexpected popcount")
		}

		pos := drawPos(t, "pos")
		c := a
		c.Set(pos)
		if !c.Contains(pos) {
			t.Fatalf("set did not add %v", pos)
		}
		c.Unset(pos)
		if c.Contains(pos) || c != a&^Cell(pos) {
			t.Fatalf("unset did not remove %v", pos)
		}
		c.SetTo(pos, a.Contains(pos))
		if c != a {
			t.Fatalf("unexpected restore: got=%#x want=%#x", uint64(c), uint64(a))
		}
	})
}

func TestBitmapPowerset(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		bm   Bitmap
	}{
		{name: "empty", bm: Empty},
		{name: "single", bm: Cell(position.E4)},
		{name: "rook a1 mask", bm: RookBlockerMask(position.A1)},
		{name: "scattered", bm: NewBitmap(position.A1, position.C3, position.H8, position.D7, position.G2)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			seen := make(map[Bitmap]bool)
			for sub := range tt.bm.Powerset() {
				if !sub.IsSubsetOf(tt.bm) {
					t.Fatalf("unexpected non-subset: %#x", uint64(sub))
				}
				if seen[sub] {
					t.Fatalf("unexpected duplicate: %#x", uint64(sub))
				}
				seen[sub] = true
			}
			if got, want := uint64(len(seen)), tt.bm.PowersetLen(); got != want {
				t.Errorf("unexpected subset count: got=%d want=%d", got, want)
			}
			if !seen[Empty] || !seen[tt.bm] {
				t.Error("empty and full subsets must be yielded")
			}
		})
	}
}

func TestBitmapPowersetStop(t *testing.T) {
	t.Parallel()
	var n int
	for range Full.Powerset() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("unexpected yields: got=%d want=%d", n, 3)
	}
}

func TestRim(t *testing.T) {
	t.Parallel()
	want := RankMask(position.Rank1) | RankMask(position.Rank8) | FileMask(position.FileA) | FileMask(position.FileH)
	if Rim != want {
		t.Errorf("unexpected rim: got=%#x want=%#x", uint64(Rim), uint64(want))
	}
	if got := Rim.BitCount(); got != 28 {
		t.Errorf("unexpected rim size: got=%d want=%d", got, 28)
	}
}

func TestShift(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		shift func(Bitmap) Bitmap
		from  position.Pos
		want  position.Pos
	}{
		{name: "north", shift: ShiftN, from: position.E4, want: position.E5},
		{name: "north east", shift: ShiftNE, from: position.E4, want: position.F5},
		{name: "east", shift: ShiftE, from: position.E4, want: position.F4},
		{name: "south east", shift: ShiftSE, from: position.E4, want: position.F3},
		{name: "south", shift: ShiftS, from: position.E4, want: position.E3},
		{name: "south west", shift: ShiftSW, from: position.E4, want: position.D3},
		{name: "west", shift: ShiftW, from: position.E4, want: position.D4},
		{name: "north west", shift: ShiftNW, from: position.E4, want: position.D5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.shift(Cell(tt.from)); got != Cell(tt.want) {
				t.Errorf("unexpected shift: got=%#x want=%#x", uint64(got), uint64(Cell(tt.want)))
			}
		})
	}
}

func TestShiftRimAssertion(t *testing.T) {
	if !debug {
		t.Skip("assertions are only enabled with the debug build tag")
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic when shifting file h east")
		}
	}()
	_ = ShiftE(Cell(position.H4))
}

func TestLS1B(t *testing.T) {
	t.Parallel()
	if got := NewBitmap(position.C2, position.F7).LS1B(); got != position.C2 {
		t.Errorf("unexpected ls1b: got=%v want=%v", got, position.C2)
	}
	if got := Empty.LS1B(); got != TotalCells {
		t.Errorf("unexpected ls1b of empty: got=%d want=%d", got, TotalCells)
	}
}
