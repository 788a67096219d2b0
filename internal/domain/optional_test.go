package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// payload mirrors how Optional is used in patch types.
type payload struct {
	Title Optional[string] `json:"title"`
	Count Optional[int]    `json:"count"`
}

func TestOptional_Absent(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

	assert.False(t, p.Title.Set)
	assert.False(t, p.Count.Set)
}

func TestOptional_ExplicitNull(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"title": null}`), &p))

	assert.True(t, p.Title.Set)
	assert.True(t, p.Title.Null)
	assert.False(t, p.Count.Set, "untouched fields stay absent")
}

func TestOptional_Value(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"title": "x", "count": 3}`), &p))

	assert.True(t, p.Title.Set)
	assert.False(t, p.Title.Null)
	assert.Equal(t, "x", p.Title.Value)
	assert.Equal(t, 3, p.Count.Value)
}

func TestOptional_TypeMismatch(t *testing.T) {
	var p payload
	err := json.Unmarshal([]byte(`{"count": "three"}`), &p)
	assert.Error(t, err)
}
