package main

import (
	"errors"
	"testing"

	"github.com/daystram/shah/board"
	"github.com/daystram/shah/position"
)

func TestModes(t *testing.T) {
	tests := []struct {
		name    string
		run     func(fen string) error
		fen     string
		wantErr error
	}{
		{
			name: "movegen",
			run:  func(fen string) error { return movegen(fen, true) },
			fen:  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		},
		{
			name: "perft",
			run:  func(fen string) error { return perft(2, fen, true) },
			fen:  board.DefaultStartingPositionFEN,
		},
		{
			name: "perft cached",
			run:  func(fen string) error { return perftCached(3, fen, 1<<10) },
			fen:  board.DefaultStartingPositionFEN,
		},
		{
			name: "step",
			run:  func(fen string) error { return step(fen, 20, 3) },
			fen:  board.DefaultStartingPositionFEN,
		},
		{
			name: "step with clocks",
			run:  func(fen string) error { return step(fen, 10, 7) },
			fen:  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 12 40",
		},
		{
			name:    "invalid fen",
			run:     func(fen string) error { return movegen(fen, false) },
			fen:     "8/8/8 w - -",
			wantErr: board.ErrInvalidFEN,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run(tt.fen)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Error("unexpected error:", err)
			}
		})
	}
}

func TestAdvanceClocks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		halfMove     uint16
		fullMove     uint16
		mv           board.Move
		wantHalfMove uint16
		wantFullMove uint16
	}{
		{
			name:         "white quiet",
			halfMove:     12,
			fullMove:     40,
			mv:           board.Move{From: position.G1, To: position.F3, Piece: board.PieceWhiteKnight},
			wantHalfMove: 13,
			wantFullMove: 40,
		},
		{
			name:         "black quiet",
			halfMove:     13,
			fullMove:     40,
			mv:           board.Move{From: position.G8, To: position.F6, Piece: board.PieceBlackKnight},
			wantHalfMove: 14,
			wantFullMove: 41,
		},
		{
			name:         "pawn push",
			halfMove:     9,
			fullMove:     3,
			mv:           board.Move{From: position.E2, To: position.E4, Piece: board.PieceWhitePawn},
			wantHalfMove: 0,
			wantFullMove: 3,
		},
		{
			name:         "capture",
			halfMove:     9,
			fullMove:     3,
			mv:           board.Move{From: position.A8, To: position.A1, Piece: board.PieceBlackRook, IsCapture: true},
			wantHalfMove: 0,
			wantFullMove: 4,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			half, full := advanceClocks(tt.halfMove, tt.fullMove, tt.mv)
			if half != tt.wantHalfMove || full != tt.wantFullMove {
				t.Errorf("unexpected clocks: got=%d,%d want=%d,%d", half, full, tt.wantHalfMove, tt.wantFullMove)
			}
		})
	}
}
