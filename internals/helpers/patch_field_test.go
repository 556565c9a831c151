package helper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchFieldTriState(t *testing.T) {
	type payload struct {
		Name  PatchField[string] `json:"name"`
		Count PatchField[int]    `json:"count"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"name":"hello","count":null}`), &p))

	// present with value
	assert.True(t, p.Name.HasValue())
	v, present := p.Name.Get()
	assert.True(t, present)
	require.NotNil(t, v)
	assert.Equal(t, "hello", *v)

	// explicit null
	assert.True(t, p.Count.Present)
	assert.True(t, p.Count.IsNull())

	// absent
	var q payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &q))
	assert.False(t, q.Name.Present)
	assert.False(t, q.Count.Present)
	assert.False(t, q.Name.HasValue())
}
