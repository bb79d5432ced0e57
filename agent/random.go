package agent

import (
	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/searcher"
)

const RandomName = "random"

type randomAgent struct {
	rand searcher.Rand
}

// NewRandomAgent picks uniformly among the legal actions. It is the policy
// expectimax assumes for adversaries.
func NewRandomAgent(r searcher.Rand) Agent {
	return randomAgent{rand: r}
}

func (a randomAgent) FindMove(state game.State, agent int) (game.Action, metrics.SearchMetric) {
	if game.IsTerminal(state, agent) {
		return game.NoAction, metrics.SearchMetric{}
	}
	actions := state.LegalActions(agent)
	return actions[a.rand.Intn(len(actions))], metrics.SearchMetric{}
}
