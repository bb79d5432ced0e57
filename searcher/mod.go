package searcher

import (
	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/utils"

	"github.com/rs/zerolog/log"
)

const (
	MinimaxName    = "minimax"
	AlphaBetaName  = "alphabeta"
	ExpectimaxName = "expectimax"
)

// Searcher picks the maximizing agent's action at a state. A Searcher is
// configured once and reused across calls; calls must not overlap.
type Searcher interface {
	ChooseAction(state game.State) game.Action
	Search(state game.State) Result
	// Metrics describes the most recent search.
	Metrics() metrics.SearchMetric
}

// Result is the value of a node and the action that achieves it. Action is
// game.NoAction at terminal and cutoff nodes.
type Result struct {
	Value  float64
	Action game.Action
}

// Rand is the source of tie-break randomness. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type config struct {
	name     string
	depth    int
	evaluate game.Evaluate
	rand     Rand
	metrics  metrics.Collector
	last     metrics.SearchMetric
}

func (c *config) Metrics() metrics.SearchMetric {
	return c.last
}

// run wraps a root search with metric collection.
func (c *config) run(state game.State, search func(game.State) Result) Result {
	c.metrics.Start(c.name, c.depth)
	result := search(state)
	c.last = c.metrics.Complete(result.Value)

	if result.Action == game.NoAction {
		log.Warn().Msgf("%s found no action for agent %d (value %.2f)", c.name, game.MaxAgent, result.Value)
	} else {
		log.Debug().Msgf("%s chose %s with value %.2f", c.name, result.Action, result.Value)
	}
	return result
}

// visit counts the node and applies the termination rules. Win, lose and
// no-move states return their raw score ahead of the depth cutoff. When done
// is false, actions holds the agent's legal actions.
func (c *config) visit(state game.State, depth, agent int) (actions []game.Action, value float64, done bool) {
	c.metrics.AddNode()

	if state.IsWin() || state.IsLose() {
		c.metrics.AddTerminal()
		return nil, state.Score(), true
	}
	actions = state.LegalActions(agent)
	if len(actions) == 0 {
		c.metrics.AddTerminal()
		return nil, state.Score(), true
	}

	if depth <= 0 {
		c.metrics.AddEvaluation()
		return nil, c.evaluate(state), true
	}
	return actions, 0, false
}

// pick breaks ties uniformly at random among the actions whose value is
// exactly best.
func (c *config) pick(actions []game.Action, values []float64, best float64) Result {
	ties := utils.FindIndices(values, best)
	i := ties[c.rand.Intn(len(ties))]
	return Result{Value: best, Action: actions[i]}
}

// next returns the depth and agent of the following ply. Depth only drops
// once the last agent has moved and control returns to the maximizing agent.
func next(state game.State, depth, agent int) (int, int) {
	if agent >= state.NumAgents()-1 {
		return depth - 1, game.MaxAgent
	}
	return depth, agent + 1
}
