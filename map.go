package xmlmap

import (
	"reflect"
	"sort"
)

// Map is an insertion-ordered mapping of tag names to property values.
// It is the value model produced by Parse and consumed by Marshal.
//
// A value held in a Map is one of:
//
//	string  - text content
//	float64 - numeric text content
//	*Map    - a nested element
//	[]any   - repeated sibling elements, in encounter order
//
// Other kinds may be stored and are serialized best-effort, but are
// never produced by Parse.
//
// The zero value is an empty map ready for use.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// Len returns the number of keys in the map.
func (m *Map) Len() int {
	return len(m.keys)
}

// Get returns the value stored under key and whether the key is present.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present in the map.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Set stores value under key. A new key is appended to the key order;
// an existing key keeps its original position.
func (m *Map) Set(key string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Add merges value under key the way the parser merges repeated tags:
// an unseen key is set directly, a second value turns the entry into a
// two-element []any, and further values append to it. Value kinds
// within one array are never normalized.
func (m *Map) Add(key string, value any) {
	existing, ok := m.Get(key)
	if !ok {
		m.Set(key, value)
		return
	}
	if arr, ok := existing.([]any); ok {
		m.Set(key, append(arr, value))
		return
	}
	m.Set(key, []any{existing, value})
}

// Delete removes key and its value. Deleting an absent key is a no-op.
// A key set again after deletion is appended at the end of the order.
func (m *Map) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Equal reports whether m and o hold the same keys in the same order
// with structurally equal values. Nested maps and arrays are compared
// recursively.
func (m *Map) Equal(o *Map) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.keys) != len(o.keys) {
		return false
	}
	for i, k := range m.keys {
		if o.keys[i] != k {
			return false
		}
		if !valueEqual(m.values[k], o.values[k]) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	switch av := a.(type) {
	case *Map:
		bv, ok := b.(*Map)
		return ok && av.Equal(bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valueEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	default:
		return reflect.DeepEqual(a, b)
	}
}

// Plain converts the map and everything below it into ordinary Go
// map[string]any / []any values for use with encoders that do not know
// about Map. Key order is lost.
func (m *Map) Plain() map[string]any {
	out := make(map[string]any, len(m.keys))
	for _, k := range m.keys {
		out[k] = plainValue(m.values[k])
	}
	return out
}

func plainValue(v any) any {
	switch t := v.(type) {
	case *Map:
		return t.Plain()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainValue(e)
		}
		return out
	default:
		return v
	}
}

// FromPlain builds a Map from ordinary Go values. Since native maps
// carry no order, keys are sorted for a deterministic result. Integer
// and float kinds are normalized to float64 to match the values Parse
// produces.
func FromPlain(p map[string]any) *Map {
	m := NewMap()
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		m.Set(k, fromPlainValue(p[k]))
	}
	return m
}

func fromPlainValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return FromPlain(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = fromPlainValue(e)
		}
		return out
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int8:
		return float64(t)
	case int16:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case uint:
		return float64(t)
	case uint8:
		return float64(t)
	case uint16:
		return float64(t)
	case uint32:
		return float64(t)
	case uint64:
		return float64(t)
	default:
		return v
	}
}
