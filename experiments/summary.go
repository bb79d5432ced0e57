package experiments

import (
	"adversarial/agent"
	"adversarial/experiments/metrics"

	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	Agent     int
	Kind      string
	Depth     int
	Games     int
	WinRate   float64
	MeanScore float64
	StdScore  float64
	MeanNodes float64 // Per move of the maximizing agent
}

// Summarize aggregates game and move records per agent, in config order.
func Summarize(agents []agent.Config, games []metrics.GameRecord, moves []metrics.MoveRecord) []Summary {
	agentByGame := map[int]int{}
	scores := map[int][]float64{}
	wins := map[int]int{}
	for _, g := range games {
		agentByGame[g.ID] = g.Agent
		scores[g.Agent] = append(scores[g.Agent], g.Score)
		if g.Won {
			wins[g.Agent]++
		}
	}
	nodes := map[int][]float64{}
	for _, m := range moves {
		a := agentByGame[m.Game]
		nodes[a] = append(nodes[a], float64(m.Nodes))
	}

	summaries := make([]Summary, 0, len(agents))
	for _, a := range agents {
		s := Summary{
			Agent: a.ID,
			Kind:  a.Kind,
			Depth: a.SearchDepth(),
			Games: len(scores[a.ID]),
		}
		if s.Games > 0 {
			s.WinRate = float64(wins[a.ID]) / float64(s.Games)
			s.MeanScore = stat.Mean(scores[a.ID], nil)
		}
		if s.Games > 1 {
			s.StdScore = stat.StdDev(scores[a.ID], nil)
		}
		if len(nodes[a.ID]) > 0 {
			s.MeanNodes = stat.Mean(nodes[a.ID], nil)
		}
		summaries = append(summaries, s)
	}
	return summaries
}
