// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyroute/core"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng, "no randomness unless seeded")

	a := core.Airport{Code: "A"}
	b := core.Airport{Code: "B", Position: core.Position{X: 3, Y: 4}}
	assert.Equal(t, 5.0, cfg.weightFn(a, b))
}

func TestNewBuilderConfig_LastOptionWins(t *testing.T) {
	cfg := newBuilderConfig(
		WithWeightFn(ConstantWeightFn(2)),
		WithWeightFn(ConstantWeightFn(7)),
	)
	assert.Equal(t, 7.0, cfg.weightFn(core.Airport{}, core.Airport{}))
}

func TestWithSeed_Reproducible(t *testing.T) {
	c1 := newBuilderConfig(WithSeed(5))
	c2 := newBuilderConfig(WithSeed(5))
	require.NotNil(t, c1.rng)
	for i := 0; i < 5; i++ {
		assert.Equal(t, c1.rng.Int63(), c2.rng.Int63())
	}
}
