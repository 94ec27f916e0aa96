package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/daystram/shah/bench"
	"github.com/daystram/shah/board"
)

var (
	EngineName   = "Shah"
	EngineAuthor = "Danny August Ramaputra"

	defaultOptions = options{
		debug:         false,
		parallelPerft: true,
	}
)

type options struct {
	debug         bool
	parallelPerft bool
}

type Interface struct {
	in  io.Reader
	out io.Writer
	mu  sync.Mutex

	node    board.Node
	options options
}

func NewInterface(in io.Reader, out io.Writer) *Interface {
	return &Interface{
		in:      in,
		out:     out,
		options: defaultOptions,
	}
}

// Run reads commands until quit or the end of input.
func (i *Interface) Run() error {
	ctx := context.Background()
	i.reset(ctx)

	scanner := bufio.NewScanner(i.in)
	for scanner.Scan() {
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "uci":
			i.commandUCI(ctx)
		case "ucinewgame":
			i.reset(ctx)
		case "isready":
			i.commandReady(ctx)
		case "setoption":
			i.commandSetOption(ctx, args[1:])
		case "position":
			i.commandPosition(ctx, args[1:])
		case "d":
			i.commandDraw(ctx)
		case "go":
			i.commandGo(ctx, args[1:])
		case "stop", "quit":
			return nil
		default:
			i.debugf("unknown command: %s", args[0])
		}
	}
	return scanner.Err()
}

func (i *Interface) commandUCI(_ context.Context) {
	i.println(fmt.Sprintf("id name %s", EngineName))
	i.println(fmt.Sprintf("id author %s", EngineAuthor))
	i.println(fmt.Sprintf("option name Debug type check default %v", defaultOptions.debug))
	i.println(fmt.Sprintf("option name ParallelPerft type check default %v", defaultOptions.parallelPerft))
	i.println("uciok")
}

func (i *Interface) commandReady(_ context.Context) {
	i.println("readyok")
}

func (i *Interface) commandSetOption(_ context.Context, args []string) {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		return
	}
	value, err := strconv.ParseBool(args[3])
	if err != nil {
		i.debugf("invalid option value: %s", args[3])
		return
	}
	switch strings.ToLower(args[1]) {
	case "debug":
		i.options.debug = value
	case "parallelperft":
		i.options.parallelPerft = value
	}
}

// commandPosition handles "startpos [moves ...]" and "fen <fen> [moves ...]".
// The current position is kept when any part fails.
func (i *Interface) commandPosition(_ context.Context, args []string) {
	if len(args) == 0 {
		return
	}

	var fen string
	var moves []string
	switch args[0] {
	case "startpos":
		fen = board.DefaultStartingPositionFEN
		args = args[1:]
	case "fen":
		end := len(args)
		for idx, arg := range args {
			if arg == "moves" {
				end = idx
				break
			}
		}
		fen = strings.Join(args[1:end], " ")
		args = args[end:]
	default:
		return
	}
	if len(args) > 0 && args[0] == "moves" {
		moves = args[1:]
	}

	p, err := board.ParsePosition(fen)
	if err != nil {
		i.debugf("%v", err)
		return
	}
	n := board.NewNodeFromPosition(p)
	for _, uci := range moves {
		if _, n, err = n.ApplyUCI(uci); err != nil {
			i.debugf("%v", err)
			return
		}
	}
	i.node = n
}

func (i *Interface) commandDraw(_ context.Context) {
	i.println(i.node.Draw())
	i.println(i.node.DebugString())
}

func (i *Interface) commandGo(_ context.Context, args []string) {
	if len(args) != 2 || args[0] != "perft" {
		i.debugf("only go perft <depth> is supported")
		return
	}
	depth, err := strconv.Atoi(args[1])
	if err != nil || depth < 1 {
		i.debugf("invalid perft depth: %s", args[1])
		return
	}

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			i.println(s)
		}
	}()

	stats := bench.PerftNode(i.node, depth, i.options.parallelPerft, true, out)
	close(out)
	<-done
	i.println("")
	i.println(fmt.Sprintf("Nodes searched: %d", stats.Nodes))
}

func (i *Interface) reset(ctx context.Context) {
	i.commandPosition(ctx, []string{"startpos"})
}

func (i *Interface) debugf(format string, a ...any) {
	if i.options.debug {
		i.println("info string " + fmt.Sprintf(format, a...))
	}
}

func (i *Interface) println(a ...any) {
	i.mu.Lock()
	defer i.mu.Unlock()
	_, _ = fmt.Fprintln(i.out, a...)
}
