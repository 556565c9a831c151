// file: internals/features/forms/engine/options_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionInput(t *testing.T) {
	assert.Equal(t, []string{"S", "M", "L"}, ParseOptionInput("S, M, L"))
	assert.Equal(t, []string{"S", "M", "L"}, ParseOptionInput("S\nM\nL"))
	assert.Equal(t, []string{"S", "M"}, ParseOptionInput("  S ,\n, M ,"))
	assert.Equal(t, []string{"S", "M"}, ParseOptionInput([]interface{}{"S", " M "}))
	assert.Empty(t, ParseOptionInput(nil))
	assert.Empty(t, ParseOptionInput(42))
	assert.Empty(t, ParseOptionInput(" ,\n , "))
}

func TestBuildOptionsJSON_NullWhenEmpty(t *testing.T) {
	assert.Nil(t, BuildOptionsJSON(nil, false))

	// allowOther alone still persists a container
	raw := BuildOptionsJSON(nil, true)
	require.NotNil(t, raw)
	opts := DecodeOptions(raw)
	require.NotNil(t, opts)
	assert.True(t, opts.AllowOther)
	assert.Empty(t, opts.Options)
}

func TestOptionsRoundTrip(t *testing.T) {
	raw := BuildOptionsJSON([]string{"Mon", "Tue"}, true)
	opts := DecodeOptions(raw)
	require.NotNil(t, opts)
	assert.Equal(t, []string{"Mon", "Tue"}, opts.Options)
	assert.True(t, opts.AllowOther)

	assert.Nil(t, DecodeOptions(nil))
}
