package merch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, []Brand{Harman, Endava}, r.Brands())
	assert.Equal(t, Endava, r.DefaultBrand())

	f, err := r.Default()
	require.NoError(t, err)
	assert.IsType(t, EndavaFactory{}, f)
}

func TestRegistrySetDefault(t *testing.T) {
	r := DefaultRegistry()

	require.NoError(t, r.SetDefault(Harman))
	f, err := r.Default()
	require.NoError(t, err)
	assert.IsType(t, HarmanFactory{}, f)

	assert.ErrorIs(t, r.SetDefault("acme"), ErrUnknownBrand)
	assert.Equal(t, Harman, r.DefaultBrand())
}

func TestRegistryEmpty(t *testing.T) {
	r := NewRegistry(Endava)

	_, err := r.Default()
	assert.ErrorIs(t, err, ErrUnknownBrand)
	assert.Empty(t, r.Brands())
}

func TestRegistryBuildsFreshFactories(t *testing.T) {
	calls := 0
	r := NewRegistry(Harman)
	r.Register(Harman, func() Factory {
		calls++
		return HarmanFactory{}
	})

	for i := 0; i < 3; i++ {
		_, err := r.Factory(Harman)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, calls)
}

func TestInitializeGlobal(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, Initialize(Endava)) })

	require.NoError(t, Initialize(Harman))
	assert.Equal(t, Harman, Global().DefaultBrand())

	assert.ErrorIs(t, Initialize("acme"), ErrUnknownBrand)
	assert.Equal(t, Harman, Global().DefaultBrand())
}
