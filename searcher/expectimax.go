package searcher

import (
	"adversarial/game"
	"slices"
)

// Expectimax models every agent but the maximizing one as choosing uniformly
// at random among its legal actions.
type Expectimax struct {
	config
}

func NewExpectimax(options ...Option) *Expectimax {
	return &Expectimax{config: newConfig(ExpectimaxName, options)}
}

func (e *Expectimax) ChooseAction(state game.State) game.Action {
	return e.Search(state).Action
}

func (e *Expectimax) Search(state game.State) Result {
	return e.run(state, func(state game.State) Result {
		return e.recurse(state, e.depth, game.MaxAgent)
	})
}

func (e *Expectimax) recurse(state game.State, depth, agent int) Result {
	actions, value, done := e.visit(state, depth, agent)
	if done {
		return Result{Value: value}
	}

	nextDepth, nextAgent := next(state, depth, agent)
	if agent == game.MaxAgent {
		values := make([]float64, len(actions))
		for i, action := range actions {
			values[i] = e.recurse(state.Successor(agent, action), nextDepth, nextAgent).Value
		}
		return e.pick(actions, values, slices.Max(values))
	}

	// Chance node: the expected value under a uniform policy. The action is
	// drawn uniformly and does not depend on the values.
	probability := 1 / float64(len(actions))
	expected := 0.0
	for _, action := range actions {
		expected += probability * e.recurse(state.Successor(agent, action), nextDepth, nextAgent).Value
	}
	return Result{Value: expected, Action: actions[e.rand.Intn(len(actions))]}
}
