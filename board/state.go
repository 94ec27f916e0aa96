package board

// State classifies a position by the moves available to the side to move.
type State uint8

const (
	StateUnknown State = iota
	StateRunning
	StateCheckWhite
	StateCheckBlack
	StateCheckmateWhite
	StateCheckmateBlack
	StateStalemate

	// StateFiftyMoveViolated is when 50 moves passed without a capture or
	// pawn move. Only a Position, which carries the clocks, reports it.
	StateFiftyMoveViolated
)

var stateNames = [...]string{
	StateUnknown:           "StateUnknown",
	StateRunning:           "StateRunning",
	StateCheckWhite:        "StateCheckWhite",
	StateCheckBlack:        "StateCheckBlack",
	StateCheckmateWhite:    "StateCheckmateWhite",
	StateCheckmateBlack:    "StateCheckmateBlack",
	StateStalemate:         "StateStalemate",
	StateFiftyMoveViolated: "StateFiftyMoveViolated",
}

func (s State) IsRunning() bool {
	return s == StateRunning || s.IsCheck()
}

func (s State) IsCheck() bool {
	return s == StateCheckWhite || s == StateCheckBlack
}

func (s State) IsCheckmate() bool {
	return s == StateCheckmateWhite || s == StateCheckmateBlack
}

func (s State) IsDraw() bool {
	return s == StateStalemate || s == StateFiftyMoveViolated
}

func (s State) String() string {
	if int(s) >= len(stateNames) {
		return ""
	}
	return stateNames[s]
}

// State reports check, checkmate or stalemate of the side to move.
func (n *Node) State() State {
	hasMoves := false
	for range n.LegalChildren() {
		hasMoves = true
		break
	}
	check := n.KingAttacked(n.turn)
	switch {
	case check && !hasMoves:
		return [2]State{StateCheckmateWhite, StateCheckmateBlack}[n.turn]
	case check:
		return [2]State{StateCheckWhite, StateCheckBlack}[n.turn]
	case !hasMoves:
		return StateStalemate
	}
	return StateRunning
}

// State is Node.State with the fifty-move rule applied. Checkmate takes
// precedence over the rule.
func (p *Position) State() State {
	n := NewNodeFromPosition(p)
	st := n.State()
	if p.halfMoveClock >= 100 && !st.IsCheckmate() {
		return StateFiftyMoveViolated
	}
	return st
}
