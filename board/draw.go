package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/shah/position"
)

var (
	colorCellDark  = color.New(38, 5, 233, 48, 5, 77)
	colorCellLight = color.New(38, 5, 233, 48, 5, 194)
	colorCellMark  = color.New(38, 5, 233, 48, 5, 216)
	colorLabel     = color.New(color.Bold)
)

// Dump renders the set as a grid, members marked with sym (default '#').
func (bm Bitmap) Dump(sym ...rune) string {
	mark := "#"
	if len(sym) == 1 {
		mark = string(sym[0])
	}
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := position.Pos(0); x < Width; x++ {
			if bm.Contains(y*Width + x) {
				_, _ = builder.WriteString(" " + mark + " ")
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(" " + x.NotationComponentX() + " ")
	}
	return builder.String()
}

// Dump renders the node as an ASCII grid.
func (n *Node) Dump() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := position.Pos(0); x < Width; x++ {
			sym := " "
			if p, ok := n.PieceAt(y*Width + x); ok {
				sym = p.SymbolFEN()
			}
			_, _ = builder.WriteString(" " + sym + " |")
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString("  " + x.NotationComponentX() + " ")
	}
	return builder.String()
}

// Draw renders the node with colored squares. Squares in mark are highlighted.
func (n *Node) Draw(mark ...Bitmap) string {
	marked := Union(mark...)
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %d ", y+1))
		for x := position.Pos(0); x < Width; x++ {
			pos := y*Width + x
			sym := " "
			if p, ok := n.PieceAt(pos); ok {
				sym = p.SymbolUnicode()
			}
			cell := colorCellLight
			switch {
			case marked.Contains(pos):
				cell = colorCellMark
			case pos.IsDark():
				cell = colorCellDark
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}

// Draw renders the position with colored squares.
func (p *Position) Draw() string {
	n := NewNodeFromPosition(p)
	return n.Draw()
}

// DebugString summarizes the non-placement state of the node.
func (n *Node) DebugString() string {
	ep := "-"
	if pos, ok := n.EnPassant(); ok {
		ep = pos.Notation()
	}
	return fmt.Sprintf("turn: %s\ncast: %s\nenp:  %s\nhash: %#016x\nstat: %s", n.turn, n.castleRights, ep, n.Hash(), n.State())
}
