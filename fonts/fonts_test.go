package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	for _, name := range []FontName{HUD, Title, Small} {
		assert.True(t, Loaded(name), name)
		assert.NotPanics(t, func() { name.Get() })
	}
}

func TestLoadFontWithSize_Invalid(t *testing.T) {
	assert.Error(t, LoadFontWithSize("broken", []byte("not a font"), 10))
	assert.False(t, Loaded("broken"))
	assert.Panics(t, func() { FontName("broken").Get() })
}
