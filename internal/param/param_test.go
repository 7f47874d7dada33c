package param

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameter_AccumulateGrad(t *testing.T) {
	p := New("weight", []float32{1, 2, 3})

	assert.Nil(t, p.Grad())

	require.NoError(t, p.AccumulateGrad([]float32{0.5, 0.5, 0.5}))
	require.NoError(t, p.AccumulateGrad([]float32{1, 0, -0.5}))

	assert.Equal(t, []float32{1.5, 0.5, 0}, p.Grad())

	p.ZeroGrad()
	assert.Nil(t, p.Grad())
}

func TestParameter_AccumulateGradSizeMismatch(t *testing.T) {
	p := New("weight", []float32{1, 2, 3})
	assert.Error(t, p.AccumulateGrad([]float32{1, 2}))
}

func TestStore_SharedGradientAcrossSites(t *testing.T) {
	// Weight tying: two usage sites referencing the one parameter must
	// see their gradient contributions summed in a single buffer.
	s := NewStore()
	embed := New("embed", []float32{0.1, 0.2})
	require.NoError(t, s.Register("embed", embed))
	require.NoError(t, s.Tie("output.weight", "embed"))

	siteA, ok := s.Get("embed")
	require.True(t, ok)
	siteB, ok := s.Get("output.weight")
	require.True(t, ok)
	assert.Same(t, siteA, siteB)

	require.NoError(t, siteA.AccumulateGrad([]float32{1, 1}))
	require.NoError(t, siteB.AccumulateGrad([]float32{2, 3}))

	assert.Equal(t, []float32{3, 4}, embed.Grad())
}

func TestStore_RegisterAndTieValidation(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Register("w", New("w", []float32{1})))

	assert.Error(t, s.Register("", New("", nil)))
	assert.Error(t, s.Register("w", New("w", nil)))
	assert.Error(t, s.Tie("alias", "missing"))
	assert.Error(t, s.Tie("w", "w"))

	require.NoError(t, s.Tie("alias", "w"))
	assert.Error(t, s.Tie("alias", "w"))
	assert.Error(t, s.Register("alias", New("alias", nil)))
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.segf")

	s := NewStore()
	require.NoError(t, s.Register("embed", New("embed", []float32{0.25, -1.5, 3})))
	require.NoError(t, s.Register("bias", New("bias", []float32{0})))
	require.NoError(t, s.Tie("output.weight", "embed"))
	require.NoError(t, s.Save(path))

	loaded, err := LoadStore(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"embed", "bias"}, loaded.Names())

	embed, ok := loaded.Get("embed")
	require.True(t, ok)
	assert.Equal(t, []float32{0.25, -1.5, 3}, embed.Data())

	// The tie survives the round trip and still aliases the same buffer.
	tied, ok := loaded.Get("output.weight")
	require.True(t, ok)
	assert.Same(t, embed, tied)
}

func TestStore_GetMissing(t *testing.T) {
	s := NewStore()
	_, ok := s.Get("nope")
	assert.False(t, ok)
}
