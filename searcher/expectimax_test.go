package searcher

import (
	"adversarial/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestExpectimaxSearch(t *testing.T) {
	t.Run("adversary averages uniformly", func(t *testing.T) {
		state := tree(2, node(node(cutoff(3), cutoff(5))))

		got := NewExpectimax(WithDepth(1)).Search(state)

		require.Equal(t, Result{Value: 4.0, Action: action(0)}, got)
	})

	t.Run("chance node value is the mean of its terminal scores", func(t *testing.T) {
		state := tree(2, node(node(leaf(1), leaf(2), leaf(6))))

		got := NewExpectimax(WithDepth(3)).Search(state)

		require.InDelta(t, 3.0, got.Value, 1e-9)
	})

	t.Run("maximizer prefers the better expectation over the better worst case", func(t *testing.T) {
		state := tree(2, node(
			node(cutoff(3), cutoff(3)),
			node(cutoff(0), cutoff(10)),
		))

		gotMinimax := NewMinimax(WithDepth(1)).Search(state)
		gotExpectimax := NewExpectimax(WithDepth(1)).Search(state)

		require.Equal(t, Result{Value: 3, Action: action(0)}, gotMinimax)
		require.Equal(t, Result{Value: 5, Action: action(1)}, gotExpectimax)
	})

	t.Run("chance node action is drawn from all legal actions", func(t *testing.T) {
		state := tree(2, node(leaf(1), leaf(2), leaf(6)))
		seen := map[game.Action]int{}

		for seed := uint64(0); seed < 64; seed++ {
			e := NewExpectimax(WithSeed(seed))
			got := e.recurse(state, 1, 1)
			require.InDelta(t, 3.0, got.Value, 1e-9)
			seen[got.Action]++
		}

		for i := range state.children {
			require.Contains(t, seen, action(i), "Should be able to draw action %d regardless of its value", i)
		}
	})

	t.Run("chance node action ignores values", func(t *testing.T) {
		r := &fixedRand{}
		state := tree(2, node(leaf(6), leaf(2), leaf(1)))

		got := NewExpectimax(WithRand(r)).recurse(state, 1, 1)

		require.Equal(t, action(2), got.Action, "Should take the drawn action even though it scores lowest")
		require.Equal(t, 1, r.calls)
	})

	t.Run("maximizer ties are broken among the tied actions only", func(t *testing.T) {
		state := tree(1, node(leaf(5), leaf(1), leaf(5)))
		seen := map[game.Action]int{}

		for seed := uint64(0); seed < 64; seed++ {
			got := NewExpectimax(WithDepth(1), WithSeed(seed)).Search(state)
			require.Equal(t, 5.0, got.Value)
			seen[got.Action]++
		}

		require.NotContains(t, seen, action(1), "Should never pick a worse action")
		require.Len(t, seen, 2, "Should be able to pick either tied action")
	})

	t.Run("values match a full tree expectimax", func(t *testing.T) {
		r := rand.New(rand.NewSource(13))
		for i := 0; i < 50; i++ {
			agents, depth := 1+r.Intn(3), 1+r.Intn(2)
			state := randomTree(r, agents, agents*depth)

			got := NewExpectimax(WithDepth(depth), WithSeed(uint64(i))).Search(state)

			require.InDelta(t, referenceValue(state, game.MaxAgent, true), got.Value, 1e-9, "Tree %d value should match", i)
		}
	})
}
