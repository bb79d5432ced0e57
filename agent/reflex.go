package agent

import (
	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/searcher"
	"adversarial/utils"
	"slices"
	"time"
)

const ReflexName = "reflex"

type reflexAgent struct {
	evaluate game.Evaluate
	rand     searcher.Rand
}

// NewReflexAgent picks the action whose successor evaluates best, one ply
// deep, breaking ties uniformly at random.
func NewReflexAgent(evaluate game.Evaluate, r searcher.Rand) Agent {
	if evaluate == nil {
		evaluate = game.EvaluateScore
	}
	return reflexAgent{evaluate: evaluate, rand: r}
}

func (a reflexAgent) FindMove(state game.State, agent int) (game.Action, metrics.SearchMetric) {
	start := time.Now()
	if game.IsTerminal(state, agent) {
		return game.NoAction, metrics.SearchMetric{Searcher: ReflexName, Nodes: 1, Value: state.Score()}
	}
	actions := state.LegalActions(agent)

	scores := make([]float64, len(actions))
	for i, action := range actions {
		scores[i] = a.evaluate(state.Successor(agent, action))
	}
	best := slices.Max(scores)
	ties := utils.FindIndices(scores, best)
	move := actions[ties[a.rand.Intn(len(ties))]]

	return move, metrics.SearchMetric{
		Searcher:    ReflexName,
		Depth:       1,
		Duration:    time.Since(start),
		Nodes:       len(actions) + 1,
		Evaluations: len(actions),
		Value:       best,
	}
}
