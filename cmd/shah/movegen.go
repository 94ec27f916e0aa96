package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/daystram/shah/board"
)

func movegen(fen string, draw bool) error {
	log.Println("============ movegen")
	p, err := board.ParsePosition(fen)
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		log.Println(err)
	}
	n := board.NewNodeFromPosition(p)
	fmt.Println("to move:", n.Turn())
	fmt.Println(n.Dump())
	fmt.Println(n.Draw())
	fmt.Println(n.DebugString())
	fmt.Println("pseudo-legal:", n.CountPseudoLegalMoves(n.Turn()))
	fmt.Println("legal white:", n.CountWhiteMoves(), "legal black:", n.CountBlackMoves())
	dumpMoves(&n)

	if draw {
		for mv, child := range n.LegalChildren() {
			fmt.Println(mv)
			fmt.Println(child.Draw(board.NewBitmap(mv.From, mv.To)))
			fmt.Println(child.Position(p.HalfMoveClock(), p.FullMoveClock()).FEN())
		}
	}
	return nil
}

func dumpMoves(n *board.Node) {
	total := n.CountMoves(n.Turn())
	i := 0
	for mv := range n.LegalChildren() {
		i++
		fmt.Printf("option %*d: [%s] [%s] %s %s %s => %s (cap=%v) (enp=%v) (cas=%v) (pro=%v)\n",
			len(strconv.Itoa(total)), i, mv.UCI(), mv.Algebra(), mv.Piece.Side(), mv.Piece, mv.From, mv.To, mv.IsCapture, mv.IsEnPassant, mv.IsCastle, mv.IsPromote)
	}
}
