package searcher

import (
	"adversarial/experiments/metrics"
	"adversarial/game"
	"adversarial/meta"
	"time"

	"golang.org/x/exp/rand"
)

type Option func(c *config)

// WithDepth sets the number of full rounds to search. A depth of zero or less
// evaluates the root immediately.
func WithDepth(depth int) Option {
	return func(c *config) {
		c.depth = depth
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

// WithRand injects the tie-break randomness source.
func WithRand(r Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rand = r
		}
	}
}

func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}

func newConfig(name string, options []Option) config {
	c := config{ // Default values
		name:     name,
		depth:    meta.DEFAULT_DEPTH,
		evaluate: game.EvaluateScore,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	if c.rand == nil {
		c.rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return c
}
