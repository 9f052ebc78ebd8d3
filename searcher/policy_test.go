package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUCT(t *testing.T) {
	t.Run("panics with negative parent visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCT(1.4, -1)
		}, "Should panic when N is negative")
	})

	t.Run("allows an unvisited parent", func(t *testing.T) {
		policy := newUCT(1.4, 0)
		require.Zero(t, policy.numerator, "ln(0+1) should zero the numerator")
	})
}

func TestUCTEvaluate(t *testing.T) {
	t.Run("computing the UCB value", func(t *testing.T) {
		policy := newUCT(1.4, 99)
		got := policy.evaluate(0.5, 10)

		expected := 0.5 + 1.4*math.Sqrt(math.Log(100)/(10+visitEpsilon))
		require.InDelta(t, expected, got, 0.0001,
			"Should compute q + c*sqrt(ln(N+1)/(n+eps))")
	})

	t.Run("unvisited children dominate", func(t *testing.T) {
		policy := newUCT(1.4, 100)

		unvisited := policy.evaluate(-1.0, 0)
		visited := policy.evaluate(1.0, 50)
		require.Greater(t, unvisited, visited,
			"An unvisited child should outscore any visited one")
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		// More parent visits -> higher exploration
		policy1 := newUCT(1.4, 100)
		policy2 := newUCT(1.4, 1000)

		score1 := policy1.evaluate(0.5, 10)
		score2 := policy2.evaluate(0.5, 10)

		require.Greater(t, score2, score1,
			"More parent visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		// More child visits -> lower exploration
		policy := newUCT(1.4, 100)

		score1 := policy.evaluate(0.5, 10)
		score2 := policy.evaluate(0.5, 20)

		require.Greater(t, score1, score2,
			"More child visits should decrease exploration term")
	})

	t.Run("exploitation term increases with value", func(t *testing.T) {
		policy := newUCT(1.4, 100)

		score1 := policy.evaluate(0.2, 10)
		score2 := policy.evaluate(0.8, 10)

		require.Greater(t, score2, score1,
			"A higher mean value should increase the score")
	})

	t.Run("no exploration with zero constant", func(t *testing.T) {
		policy := newUCT(0, 100)
		require.InDelta(t, 0.3, policy.evaluate(0.3, 7), 1e-9,
			"With c=0 the score should reduce to q")
	})
}
