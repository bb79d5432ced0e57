package searcher

import (
	"adversarial/game"
	"math"
)

// AlphaBeta is minimax with alpha-beta pruning. Each child is searched with
// the running best value of its parent as the bound on the parent's side.
type AlphaBeta struct {
	config
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{config: newConfig(AlphaBetaName, options)}
}

func (a *AlphaBeta) ChooseAction(state game.State) game.Action {
	return a.Search(state).Action
}

func (a *AlphaBeta) Search(state game.State) Result {
	return a.run(state, func(state game.State) Result {
		result, _ := a.recurse(state, a.depth, game.MaxAgent, math.Inf(-1), math.Inf(1))
		return result
	})
}

// recurse reports cut when it skipped actions. A cut value is only a bound:
// it is no better for the parent than the parent's running best.
func (a *AlphaBeta) recurse(state game.State, depth, agent int, alpha, beta float64) (best Result, cut bool) {
	actions, value, done := a.visit(state, depth, agent)
	if done {
		return Result{Value: value}, false
	}

	nextDepth, nextAgent := next(state, depth, agent)
	if agent == game.MaxAgent {
		best = Result{Value: math.Inf(-1)}
		for i, action := range actions {
			child, bound := a.recurse(state.Successor(agent, action), nextDepth, nextAgent, best.Value, beta)
			best = a.prefer(best, Result{Value: child.Value, Action: action}, child.Value > best.Value, !bound)
			if best.Value >= beta { // Fail-high
				return best, a.pruned(i, actions)
			}
		}
		return best, false
	}

	best = Result{Value: math.Inf(1)}
	for i, action := range actions {
		child, bound := a.recurse(state.Successor(agent, action), nextDepth, nextAgent, alpha, best.Value)
		best = a.prefer(best, Result{Value: child.Value, Action: action}, child.Value < best.Value, !bound)
		if best.Value <= alpha { // Fail-low
			return best, a.pruned(i, actions)
		}
	}
	return best, false
}

// prefer replaces the incumbent when the challenger is better, and flips a
// fair coin between them when an exact challenger has the same value. A bound
// equal to the incumbent never replaces it.
func (a *AlphaBeta) prefer(incumbent, challenger Result, better, exact bool) Result {
	if better || incumbent.Action == game.NoAction {
		return challenger
	}
	if exact && challenger.Value == incumbent.Value && a.rand.Intn(2) == 1 {
		return challenger
	}
	return incumbent
}

// pruned records a cutoff when it skips at least one action.
func (a *AlphaBeta) pruned(i int, actions []game.Action) bool {
	if i < len(actions)-1 {
		a.metrics.AddPrune()
		return true
	}
	return false
}
