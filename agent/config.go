package agent

import (
	"adversarial/game"
	"adversarial/meta"
	"adversarial/searcher"
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
)

var ErrUnknownAgent = errors.New("unknown agent kind")

// Config describes one agent. Depth 0 selects the default depth and a
// negative depth evaluates the current state without searching.
type Config struct {
	ID         int    `yaml:"id"`
	Kind       string `yaml:"kind"`
	Depth      int    `yaml:"depth"`
	Evaluation string `yaml:"evaluation"`
	Metrics    bool   `yaml:"metrics"`
}

func (c Config) Validate() error {
	switch c.Kind {
	case searcher.MinimaxName, searcher.AlphaBetaName, searcher.ExpectimaxName, ReflexName, RandomName:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAgent, c.Kind)
	}
	if _, err := game.LookupEvaluation(c.Evaluation); err != nil {
		return err
	}
	return nil
}

func (c Config) SearchDepth() int {
	switch c.Kind {
	case ReflexName:
		return 1
	case RandomName:
		return 0
	}
	if c.Depth == 0 {
		return meta.DEFAULT_DEPTH
	}
	return c.Depth
}

// New builds the agent described by the config, with its own randomness
// seeded by seed.
func New(c Config, seed uint64) (Agent, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	evaluate, _ := game.LookupEvaluation(c.Evaluation)
	r := rand.New(rand.NewSource(seed))

	options := []searcher.Option{
		searcher.WithDepth(c.SearchDepth()),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithRand(r),
	}
	if c.Metrics {
		options = append(options, searcher.WithMetrics())
	}

	switch c.Kind {
	case searcher.MinimaxName:
		return NewSearchAgent(searcher.NewMinimax(options...)), nil
	case searcher.AlphaBetaName:
		return NewSearchAgent(searcher.NewAlphaBeta(options...)), nil
	case searcher.ExpectimaxName:
		return NewSearchAgent(searcher.NewExpectimax(options...)), nil
	case ReflexName:
		return NewReflexAgent(evaluate, r), nil
	default:
		return NewRandomAgent(r), nil
	}
}
