package gridpath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyOptionsDefaults(t *testing.T) {
	options := applyOptions(nil)

	assert.Equal(t, 1.0, options.Weight)
	assert.Equal(t, DefaultTurnPenalty, options.TurnPenalty)
	assert.Equal(t, DiagonalNever, options.DiagonalMovement)
	assert.NotNil(t, options.Logger)
	assert.Equal(t, 7.0, options.Heuristic(3, 4), "manhattan without diagonal movement")

	options = applyOptions([]Option{WithDiagonalMovement(DiagonalAlways)})
	assert.InDelta(t, 3*(math.Sqrt2-1)+4, options.Heuristic(3, 4), 1e-12,
		"octile once diagonal steps exist")
}

func TestApplyOptionsClampsOutOfRangeValues(t *testing.T) {
	options := applyOptions([]Option{WithWeight(0.25)})
	assert.Equal(t, 1.0, options.Weight)

	options = applyOptions([]Option{WithAvoidStaircase(1.5)})
	assert.True(t, options.AvoidStaircase)
	assert.Equal(t, DefaultTurnPenalty, options.TurnPenalty,
		"turn penalty must stay below the unit move cost")

	options = applyOptions([]Option{WithAvoidStaircase(-0.2)})
	assert.Equal(t, DefaultTurnPenalty, options.TurnPenalty)

	options = applyOptions([]Option{WithAvoidStaircase(0.5), WithMomentum(0.5)})
	assert.True(t, options.UseMomentum)
	assert.Equal(t, 0.05, options.Momentum, "momentum must stay below the turn penalty")
}

func TestEpsilonStaysBelowShapingTerms(t *testing.T) {
	options := applyOptions([]Option{WithAvoidStaircase(0.3), WithMomentum(0.01)})

	assert.Less(t, options.epsilon(), options.Momentum)
	assert.Less(t, options.Momentum, options.TurnPenalty)
	assert.Less(t, options.TurnPenalty, 1.0)
}

func TestMaxIterations(t *testing.T) {
	assert.Equal(t, 2, applyOptions(nil).maxIterations())
	assert.Equal(t, 2, applyOptions([]Option{
		WithTieBreaking(Preferences{}, true),
	}).maxIterations())
	assert.Equal(t, 3, applyOptions([]Option{
		WithTieBreaking(Preferences{}, false),
	}).maxIterations())
}
