package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateScore(t *testing.T) {
	state := &MazeState{Points: 12.5}

	require.Equal(t, 12.5, EvaluateScore(state))
}

func TestEvaluateBetter(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "Should fail fast")
		err, ok := r.(error)
		require.True(t, ok, "Should panic with an error")
		require.True(t, errors.Is(err, ErrNotImplemented))
	}()

	EvaluateBetter(&MazeState{Points: 1})
}

func TestLookupEvaluation(t *testing.T) {
	t.Run("known names", func(t *testing.T) {
		for _, name := range []string{"", "score", "better"} {
			evaluate, err := LookupEvaluation(name)

			require.NoError(t, err)
			require.NotNil(t, evaluate)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := LookupEvaluation("clever")

		require.ErrorIs(t, err, ErrUnknownEvaluation)
	})
}
