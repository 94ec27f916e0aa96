package main

import (
	"fmt"
	"log"
	"time"

	"github.com/daystram/shah/bench"
	"github.com/daystram/shah/board"
)

// step plays a random legal game from fen and reports average generation and
// hashing times.
func step(fen string, plies int, seed uint64) error {
	log.Println("============ step")
	var (
		timesGenerateMoves []time.Duration
		timesHash          []time.Duration
		generated          int
	)
	p, err := board.ParsePosition(fen)
	if err != nil {
		return err
	}
	n := board.NewNodeFromPosition(p)
	r := board.NewPseudoRand(seed)
	halfMove, fullMove := p.HalfMoveClock(), p.FullMoveClock()

	for ply := 0; ply < plies; ply++ {
		t1 := time.Now()
		var moves []board.Move
		var children []board.Node
		for mv, child := range n.LegalChildren() {
			moves = append(moves, mv)
			children = append(children, child)
		}
		timesGenerateMoves = append(timesGenerateMoves, time.Since(t1))
		generated += len(moves)
		if len(children) == 0 {
			break
		}

		i := int(r.Uint64() % uint64(len(children)))
		n = children[i]
		halfMove, fullMove = advanceClocks(halfMove, fullMove, moves[i])

		t1 = time.Now()
		h := n.Hash()
		timesHash = append(timesHash, time.Since(t1))

		fmt.Printf("\n===== [#%d] %s: %s\n", ply/2+1, moves[i].Piece.Side(), moves[i])
		fmt.Println(n.Draw(board.NewBitmap(moves[i].From, moves[i].To)))
		fmt.Println(n.Position(halfMove, fullMove).FEN())
		fmt.Printf("hash: %#016x\n", h)
		if err := n.ValidateOccupancy(); err != nil {
			return err
		}
	}

	sum := func(ds []time.Duration) time.Duration {
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return s
	}
	avg := func(ds []time.Duration) time.Duration {
		if len(ds) == 0 {
			return 0
		}
		return sum(ds) / time.Duration(len(ds))
	}

	fmt.Println()
	fmt.Println(n.Position(halfMove, fullMove).State())
	fmt.Println("genmv:", avg(timesGenerateMoves))
	fmt.Printf("genmv rate: %dmv/s\n", bench.Rate(generated, sum(timesGenerateMoves)))
	fmt.Println("hash: ", avg(timesHash))
	return nil
}

// advanceClocks returns the FEN clocks after mv was played.
func advanceClocks(halfMove, fullMove uint16, mv board.Move) (uint16, uint16) {
	halfMove++
	if mv.IsCapture || mv.Piece.Kind() == board.KindPawn {
		halfMove = 0
	}
	if mv.Piece.Side() == board.SideBlack {
		fullMove++
	}
	return halfMove, fullMove
}
