package clampgen

import (
	"bytes"
	"encoding/json"
)

// TokenMap is an insertion-ordered map of spacing tokens to CSS values.
// Overwriting a key keeps its original position, so merged maps serialize
// in the order the keys were first seen.
type TokenMap struct {
	keys   []string
	values map[string]string
}

// NewTokenMap returns an empty map with room for n tokens.
func NewTokenMap(n int) *TokenMap {
	return &TokenMap{
		keys:   make([]string, 0, n),
		values: make(map[string]string, n),
	}
}

// Set stores value under key and reports whether an existing value was replaced.
func (m *TokenMap) Set(key, value string) bool {
	if _, exists := m.values[key]; exists {
		m.values[key] = value
		return true
	}
	m.keys = append(m.keys, key)
	m.values[key] = value
	return false
}

// Get returns the value stored under key.
func (m *TokenMap) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of tokens.
func (m *TokenMap) Len() int {
	return len(m.keys)
}

// Keys returns the tokens in insertion order.
func (m *TokenMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Merge copies every entry of others into m in order. Later values win.
// It returns the number of keys that were overwritten.
func (m *TokenMap) Merge(others ...*TokenMap) int {
	collisions := 0
	for _, other := range others {
		if other == nil {
			continue
		}
		for _, k := range other.keys {
			if m.Set(k, other.values[k]) {
				collisions++
			}
		}
	}
	return collisions
}

// MergeTokenMaps folds maps left to right into a new map.
func MergeTokenMaps(maps ...*TokenMap) (*TokenMap, int) {
	size := 0
	for _, m := range maps {
		if m != nil {
			size += m.Len()
		}
	}
	merged := NewTokenMap(size)
	collisions := merged.Merge(maps...)
	return merged, collisions
}

// MarshalJSON writes the tokens as a JSON object in insertion order.
func (m *TokenMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, k, m.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Object is an insertion-ordered JSON object with arbitrary values.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Set stores value under key, keeping the key's first position.
func (o *Object) Set(key string, value any) *Object {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// MarshalJSON writes the object in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, k, o.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	kb, err := marshalRaw(key)
	if err != nil {
		return err
	}
	vb, err := marshalRaw(value)
	if err != nil {
		return err
	}
	buf.Write(kb)
	buf.WriteByte(':')
	buf.Write(vb)
	return nil
}

// marshalRaw encodes v without HTML escaping and without a trailing newline.
func marshalRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
