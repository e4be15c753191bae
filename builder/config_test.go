// Package builder contains unit tests for builderConfig and BuilderOption.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", newBuilderConfig().idFn(7))
	assert.Equal(t, "A", newBuilderConfig(WithSymbolIDs()).idFn(0))
	assert.Equal(t, "AB", newBuilderConfig(WithExcelColumnIDs()).idFn(27))

	// last option wins
	cfg := newBuilderConfig(WithSymbolIDs(), WithIDScheme(DefaultIDFn))
	assert.Equal(t, "3", cfg.idFn(3))

	assert.Panics(t, func() { WithIDScheme(nil) })
}

func TestRandOptions(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newBuilderConfig().rng, "no rng by default")

	r := rand.New(rand.NewSource(9))
	cfg := newBuilderConfig(WithRand(r))
	assert.Same(t, r, cfg.rng)

	a := newBuilderConfig(WithSeed(5))
	b := newBuilderConfig(WithSeed(5))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63(), "same seed, same stream")

	assert.Panics(t, func() { WithRand(nil) })
}
