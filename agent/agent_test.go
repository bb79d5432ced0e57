package agent

import (
	"adversarial/game"
	"adversarial/searcher"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const corridor = `
%%%%%%
%.P  %
%%%%%%
`

const chase = `
%%%%%%%
%.P  G%
%%%%%%%
`

// finished is a state reported as won that still offers actions.
type finished struct {
	game.State
}

func (f finished) IsWin() bool { return true }

func mustState(t *testing.T, layout string) *game.MazeState {
	t.Helper()
	m, err := game.ParseLayout(strings.NewReader(layout))
	require.NoError(t, err)
	return game.NewMazeState(m)
}

func TestNew(t *testing.T) {
	t.Run("building every kind", func(t *testing.T) {
		kinds := map[string]any{
			searcher.MinimaxName:    searchAgent{},
			searcher.AlphaBetaName:  searchAgent{},
			searcher.ExpectimaxName: searchAgent{},
			ReflexName:              reflexAgent{},
			RandomName:              randomAgent{},
		}
		for kind, want := range kinds {
			got, err := New(Config{Kind: kind}, 1)

			require.NoError(t, err, "Should build %s", kind)
			require.IsType(t, want, got, "Should build %s", kind)
		}
	})

	t.Run("rejecting an unknown kind", func(t *testing.T) {
		_, err := New(Config{Kind: "negamax"}, 1)

		require.ErrorIs(t, err, ErrUnknownAgent)
	})

	t.Run("rejecting an unknown evaluation", func(t *testing.T) {
		_, err := New(Config{Kind: searcher.MinimaxName, Evaluation: "clever"}, 1)

		require.ErrorIs(t, err, game.ErrUnknownEvaluation)
	})

	t.Run("omitted depth uses the default", func(t *testing.T) {
		require.Equal(t, 2, Config{Kind: searcher.MinimaxName}.SearchDepth())
		require.Equal(t, 3, Config{Kind: searcher.MinimaxName, Depth: 3}.SearchDepth())
		require.Equal(t, 1, Config{Kind: ReflexName, Depth: 3}.SearchDepth(), "Reflex agents look one ply ahead")
		require.Equal(t, 0, Config{Kind: RandomName}.SearchDepth(), "Random agents do not search")
	})
}

func TestSearchAgent(t *testing.T) {
	t.Run("eating the last food", func(t *testing.T) {
		for _, kind := range []string{searcher.MinimaxName, searcher.AlphaBetaName, searcher.ExpectimaxName} {
			a, err := New(Config{Kind: kind, Depth: 1, Metrics: true}, 1)
			require.NoError(t, err)

			move, metric := a.FindMove(mustState(t, corridor), game.MaxAgent)

			require.Equal(t, game.West, move, "%s should eat the food", kind)
			require.Equal(t, kind, metric.Searcher, "%s should report its metrics", kind)
			require.Positive(t, metric.Nodes, "%s should report its metrics", kind)
		}
	})

	t.Run("playing an adversary panics", func(t *testing.T) {
		a := NewSearchAgent(searcher.NewMinimax())

		require.Panics(t, func() { a.FindMove(mustState(t, chase), 1) })
	})
}

func TestReflexAgent(t *testing.T) {
	t.Run("eating adjacent food", func(t *testing.T) {
		a := NewReflexAgent(nil, rand.New(rand.NewSource(1)))

		move, metric := a.FindMove(mustState(t, corridor), game.MaxAgent)

		require.Equal(t, game.West, move)
		require.Equal(t, ReflexName, metric.Searcher)
		require.Equal(t, float64(game.WinReward+game.FoodReward-game.TimePenalty), metric.Value)
		require.Equal(t, 3, metric.Evaluations, "Should evaluate West, East and Stop")
	})

	t.Run("breaking ties among the best actions", func(t *testing.T) {
		// Moving East or stopping both cost the time penalty
		state := mustState(t, "%%%%%\n%P .%\n%%%%%")
		seen := map[game.Action]bool{}
		for seed := uint64(0); seed < 32; seed++ {
			a := NewReflexAgent(game.EvaluateScore, rand.New(rand.NewSource(seed)))
			move, _ := a.FindMove(state, game.MaxAgent)
			seen[move] = true
		}

		require.Equal(t, map[game.Action]bool{game.East: true, game.Stop: true}, seen)
	})

	t.Run("no legal actions", func(t *testing.T) {
		state := mustState(t, corridor).Successor(game.MaxAgent, game.West)
		a := NewReflexAgent(nil, rand.New(rand.NewSource(1)))

		move, _ := a.FindMove(state, game.MaxAgent)

		require.Equal(t, game.NoAction, move, "Finished game should have no move")
	})
}

func TestFinishedGame(t *testing.T) {
	state := finished{mustState(t, corridor)}
	agents := map[string]Agent{
		ReflexName: NewReflexAgent(nil, rand.New(rand.NewSource(1))),
		RandomName: NewRandomAgent(rand.New(rand.NewSource(1))),
	}

	for name, a := range agents {
		move, _ := a.FindMove(state, game.MaxAgent)

		require.Equal(t, game.NoAction, move, "%s should not move in a won game", name)
	}
}

func TestRandomAgent(t *testing.T) {
	t.Run("picking a legal action", func(t *testing.T) {
		state := mustState(t, chase)
		a := NewRandomAgent(rand.New(rand.NewSource(1)))

		for i := 0; i < 10; i++ {
			move, _ := a.FindMove(state, 1)
			require.Contains(t, state.LegalActions(1), move)
		}
	})

	t.Run("no legal actions", func(t *testing.T) {
		state := mustState(t, corridor).Successor(game.MaxAgent, game.West)
		a := NewRandomAgent(rand.New(rand.NewSource(1)))

		move, _ := a.FindMove(state, game.MaxAgent)

		require.Equal(t, game.NoAction, move)
	})
}
