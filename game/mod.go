package game

// Action identifies a move an agent can make. Actions are opaque to the
// searcher beyond equality.
type Action string

// NoAction is returned where there is no outgoing choice (terminal or cutoff
// states, or an agent without legal actions).
const NoAction Action = ""

// Agent 0 is always the maximizing agent.
const MaxAgent = 0

// State should be immutable - Successor always returns a new copy
type State interface {
	IsWin() bool
	IsLose() bool
	// LegalActions returns the agent's actions in a fixed order.
	LegalActions(agent int) []Action
	Successor(agent int, action Action) State
	NumAgents() int
	Score() float64
}

// Evaluates a non-terminal state at the search cutoff. Higher is better for
// the maximizing agent.
type Evaluate func(State) float64

// IsTerminal reports whether the state is won, lost, or leaves agent with no
// legal actions.
func IsTerminal(s State, agent int) bool {
	return s.IsWin() || s.IsLose() || len(s.LegalActions(agent)) == 0
}
