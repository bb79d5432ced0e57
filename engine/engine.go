package engine

import "adversarial/experiments/metrics"

type Engine interface {
	// Run plays a game till it is won or lost, the maximizing agent has no move,
	// or a max number of moves is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
