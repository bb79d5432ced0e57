package agent

import (
	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/searcher"
)

type Agent interface {
	// FindMove returns the agent's action at the state and the metrics of the
	// search behind it (if collected). game.NoAction means no move is available.
	FindMove(state game.State, agent int) (game.Action, metrics.SearchMetric)
}

type searchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent plays the maximizing agent with a game-tree searcher.
func NewSearchAgent(s searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(state game.State, agent int) (game.Action, metrics.SearchMetric) {
	if agent != game.MaxAgent {
		panic("search agents only play the maximizing agent")
	}
	move := a.searcher.ChooseAction(state)
	return move, a.searcher.Metrics()
}
