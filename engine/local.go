package engine

import (
	"adversarial/agent"
	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/meta"
	"time"

	"github.com/rs/zerolog/log"
)

type Local struct {
	State    game.State
	Agents   []agent.Agent
	MaxMoves int
}

// LocalEngine plays agents against each other on a single state. Agents take
// turns in index order.
func LocalEngine(state game.State, agents []agent.Agent, maxMoves int) *Local {
	if len(agents) != state.NumAgents() {
		panic("number of agents does not match the number of agents in the state")
	}
	if maxMoves <= 0 {
		maxMoves = meta.MAX_MOVES
	}
	return &Local{
		State:    state,
		Agents:   agents,
		MaxMoves: maxMoves,
	}
}

func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	log.Debug().Msgf("starting game with %d agents", len(e.Agents))

	var moveMetrics []metrics.MoveMetric
	forfeit := false
	turn := 0
	for !e.State.IsWin() && !e.State.IsLose() && turn < e.MaxMoves {
		index := turn % len(e.Agents)
		turn++

		move, metric := e.Agents[index].FindMove(e.State, index)
		if index == game.MaxAgent {
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         turn,
				Agent:        index,
				SearchMetric: metric,
			})
		}

		if move == game.NoAction {
			if index == game.MaxAgent {
				log.Info().Msgf("agent %d has no move at turn %d, forfeiting", index, turn)
				forfeit = true
				break
			}
			log.Debug().Msgf("agent %d has no move at turn %d, skipping", index, turn)
			continue
		}
		e.State = e.State.Successor(index, move)
	}

	end := time.Now()
	gameMetric := metrics.GameMetric{
		Won:        e.State.IsWin(),
		Lost:       e.State.IsLose(),
		Forfeit:    forfeit,
		Score:      e.State.Score(),
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalMoves: turn,
	}
	log.Debug().Msgf("game over after %d moves: won=%t lost=%t score=%.0f", turn, gameMetric.Won, gameMetric.Lost, gameMetric.Score)
	return gameMetric, moveMetrics
}
