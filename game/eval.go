package game

import (
	"errors"
	"fmt"
)

var (
	ErrNotImplemented    = errors.New("evaluation function not implemented")
	ErrUnknownEvaluation = errors.New("unknown evaluation function")
)

// EvaluateScore returns the state's own score. It is the default cutoff
// evaluation.
func EvaluateScore(s State) float64 {
	return s.Score()
}

// EvaluateBetter is reserved for a richer heuristic. It panics with
// ErrNotImplemented rather than fall back to a default score.
func EvaluateBetter(s State) float64 {
	panic(fmt.Errorf("better evaluation: %w", ErrNotImplemented))
}

var evaluations = map[string]Evaluate{
	"score":  EvaluateScore,
	"better": EvaluateBetter,
}

// LookupEvaluation resolves an evaluation function by its configured name.
// An empty name resolves to EvaluateScore.
func LookupEvaluation(name string) (Evaluate, error) {
	if name == "" {
		return EvaluateScore, nil
	}
	evaluate, ok := evaluations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvaluation, name)
	}
	return evaluate, nil
}
