package clampgen

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenMapMergeKeepsFirstPosition(t *testing.T) {
	a := NewTokenMap(2)
	a.Set("clamp-1vh", "a1")
	a.Set("clamp-2vh", "a2")

	b := NewTokenMap(2)
	b.Set("clamp-3vh", "b3")
	b.Set("clamp-1vh", "b1")

	merged, collisions := MergeTokenMaps(a, nil, b)
	assert.Equal(t, 1, collisions)
	assert.Equal(t, []string{"clamp-1vh", "clamp-2vh", "clamp-3vh"}, merged.Keys())

	v, ok := merged.Get("clamp-1vh")
	require.True(t, ok)
	assert.Equal(t, "b1", v, "later value wins")

	// Inputs are untouched
	v, _ = a.Get("clamp-1vh")
	assert.Equal(t, "a1", v)
}

func TestTokenMapKeysIsCopy(t *testing.T) {
	m := NewTokenMap(1)
	m.Set("clamp-1vh", "x")
	keys := m.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"clamp-1vh"}, m.Keys())
}

func TestTokenMapMarshalJSON(t *testing.T) {
	m := NewTokenMap(0)
	m.Set("clamp-2vh", "clamp(0rem, 2vh, 1.01rem)")
	m.Set("clamp-10vh", "clamp(0rem, 10vh, 5.05rem)")

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"clamp-2vh":"clamp(0rem, 2vh, 1.01rem)","clamp-10vh":"clamp(0rem, 10vh, 5.05rem)"}`, string(out))

	out, err = json.Marshal(NewTokenMap(0))
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out))
}

func TestObjectMarshalJSON(t *testing.T) {
	obj := NewObject().
		Set("z", 1).
		Set("a", []string{"x"}).
		Set("nested", NewObject().Set("0%", "on").Set("to", "off"))
	obj.Set("z", 2)

	assert.Equal(t, []string{"z", "a", "nested"}, obj.Keys())

	out, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"z":2,"a":["x"],"nested":{"0%":"on","to":"off"}}`, string(out))

	v, ok := obj.Get("z")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}
