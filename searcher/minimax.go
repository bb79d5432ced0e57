package searcher

import (
	"adversarial/game"
	"slices"
)

// Minimax searches every node to the configured depth. The maximizing agent
// takes the highest value and every other agent the lowest; ties are broken
// uniformly at random.
type Minimax struct {
	config
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{config: newConfig(MinimaxName, options)}
}

func (m *Minimax) ChooseAction(state game.State) game.Action {
	return m.Search(state).Action
}

func (m *Minimax) Search(state game.State) Result {
	return m.run(state, func(state game.State) Result {
		return m.recurse(state, m.depth, game.MaxAgent)
	})
}

func (m *Minimax) recurse(state game.State, depth, agent int) Result {
	actions, value, done := m.visit(state, depth, agent)
	if done {
		return Result{Value: value}
	}

	nextDepth, nextAgent := next(state, depth, agent)
	values := make([]float64, len(actions))
	for i, action := range actions {
		values[i] = m.recurse(state.Successor(agent, action), nextDepth, nextAgent).Value
	}

	if agent == game.MaxAgent {
		return m.pick(actions, values, slices.Max(values))
	}
	return m.pick(actions, values, slices.Min(values))
}
