package experiments

import (
	"adversarial/agent"
	"adversarial/searcher"
)

// SearcherComparison pits every searcher at the same depth against the
// reflex and random baselines.
func SearcherComparison(layout string, depth int) Config {
	return Config{
		Name:   "searcher_comparison",
		Layout: layout,
		Agents: []agent.Config{
			{ID: 1, Kind: agent.RandomName},
			{ID: 2, Kind: agent.ReflexName},
			{ID: 3, Kind: searcher.MinimaxName, Depth: depth},
			{ID: 4, Kind: searcher.AlphaBetaName, Depth: depth},
			{ID: 5, Kind: searcher.ExpectimaxName, Depth: depth},
		},
	}
}

// DepthSweep runs one searcher at increasing depths.
func DepthSweep(layout, kind string, maxDepth int) Config {
	config := Config{
		Name:   "depth_sweep",
		Layout: layout,
	}
	for depth := 1; depth <= maxDepth; depth++ {
		config.Agents = append(config.Agents, agent.Config{ID: depth, Kind: kind, Depth: depth})
	}
	return config
}
