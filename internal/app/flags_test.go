package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValue(t *testing.T) {
	t.Parallel()

	t.Run("valid values", func(t *testing.T) {
		t.Parallel()
		f := formatValue("text")
		assert.Equal(t, "text", f.String())
		assert.Equal(t, "<format>", f.Type())

		for _, v := range []string{"json", "yaml", "text"} {
			require.NoError(t, f.Set(v))
			assert.Equal(t, v, f.String())
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		f := formatValue("text")
		err := f.Set("invalid")
		require.Error(t, err)
		assert.EqualError(t, err, "must be 'text', 'json' or 'yaml'")
		assert.Equal(t, "text", f.String())
	})
}

func TestOptionalString(t *testing.T) {
	t.Parallel()

	o := &optionalString{}
	assert.Nil(t, o.value)
	assert.Empty(t, o.String())
	assert.Equal(t, "<name>", o.Type())

	require.NoError(t, o.Set(""))
	require.NotNil(t, o.value)
	assert.Empty(t, *o.value)

	require.NoError(t, o.Set("bat"))
	assert.Equal(t, "bat", o.String())
}
