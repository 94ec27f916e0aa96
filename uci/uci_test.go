package uci

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	if err := NewInterface(strings.NewReader(input), &out).Run(); err != nil {
		t.Fatal("unexpected error:", err)
	}
	return out.String()
}

func TestCommands(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		want     []string
		wantNone []string
	}{
		{
			name:  "handshake",
			input: "uci\nisready\nquit\n",
			want:  []string{"id name Shah\n", "uciok\n", "readyok\n"},
		},
		{
			name:  "perft start",
			input: "setoption name ParallelPerft value false\ngo perft 2\n",
			want:  []string{"a2a3: 20\n", "Nodes searched: 400\n"},
		},
		{
			name:  "position moves",
			input: "position startpos moves e2e4 e7e5\ngo perft 1\n",
			want:  []string{"Nodes searched: 29\n", "e1e2: 1\n"},
		},
		{
			name:  "position fen",
			input: "position fen r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1\ngo perft 1\n",
			want:  []string{"e1g1: 1\n", "Nodes searched: 48\n"},
		},
		{
			name:  "illegal move keeps position",
			input: "setoption name Debug value true\nposition startpos moves e2e5\ngo perft 1\n",
			want:  []string{"info string illegal move: e2e5\n", "Nodes searched: 20\n"},
		},
		{
			name:     "stop ends the loop",
			input:    "stop\nisready\n",
			wantNone: []string{"readyok"},
		},
		{
			name:  "draw",
			input: "position fen k7/8/8/3pP3/8/8/8/K7 w - d6 0 1\nd\n",
			want:  []string{"enp:  d6\n"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := run(t, tt.input)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("missing %q in output:\n%s", want, got)
				}
			}
			for _, none := range tt.wantNone {
				if strings.Contains(got, none) {
					t.Errorf("unexpected %q in output:\n%s", none, got)
				}
			}
		})
	}
}
