// Package keyed provides an insertion-ordered map from string keys to values.
// The stack uses it both for the live view and for the navigation history,
// where insertion order is the visit order.
package keyed

import (
	"strconv"
	"time"

	"go.uber.org/atomic"
)

// lastStamp is shared by every Map so generated keys never repeat inside a process,
// even when two keys are generated within the same clock reading.
var lastStamp atomic.Int64

// GenerateKey returns a new key derived from the current time in base 36.
// Keys are strictly increasing for the life of the process.
func GenerateKey() string {
	now := time.Now().UnixNano()
	for {
		last := lastStamp.Load()
		next := now
		if next <= last {
			next = last + 1
		}
		if lastStamp.CompareAndSwap(last, next) {
			return strconv.FormatInt(next, 36)
		}
	}
}

// Map is an insertion-ordered mapping from string keys to values.
// The zero value is not usable; create one with New or CreateFrom.
type Map[V any] struct {
	values map[string]V
	order  []string // insertion order of keys
}

// New creates an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{
		values: make(map[string]V),
		order:  make([]string, 0, 2),
	}
}

// CreateFrom creates a Map holding every value of the list, each under a generated key,
// in list order.
func CreateFrom[V any](values []V) *Map[V] {
	m := New[V]()
	for _, v := range values {
		m.Add(v, "")
	}
	return m
}

// Add stores value under key and returns the key used.
// An empty key is replaced with a generated one.
func (m *Map[V]) Add(value V, key string) string {
	if key == "" {
		key = GenerateKey()
	}
	m.Set(key, value)
	return key
}

// Get returns the value stored under key and whether it was present.
func (m *Map[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key. An existing key keeps its position.
func (m *Map[V]) Set(key string, value V) {
	if _, exists := m.values[key]; !exists {
		m.order = append(m.order, key)
	}
	m.values[key] = value
}

// Delete removes key. Deleting a missing key is a no-op.
func (m *Map[V]) Delete(key string) {
	if _, exists := m.values[key]; !exists {
		return
	}
	delete(m.values, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}

// Keys returns a copy of all keys in insertion order.
func (m *Map[V]) Keys() []string {
	keys := make([]string, len(m.order))
	copy(keys, m.order)
	return keys
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.order)
}

// Last returns the most recently inserted key and its value.
func (m *Map[V]) Last() (string, V, bool) {
	return m.fromEnd(1)
}

// Previous returns the key and value inserted just before the last one.
func (m *Map[V]) Previous() (string, V, bool) {
	return m.fromEnd(2)
}

func (m *Map[V]) fromEnd(n int) (string, V, bool) {
	if len(m.order) < n {
		var zero V
		return "", zero, false
	}
	key := m.order[len(m.order)-n]
	return key, m.values[key], true
}

// Clone returns a new Map with the same entries. Values are copied shallowly.
func (m *Map[V]) Clone() *Map[V] {
	c := &Map[V]{
		values: make(map[string]V, len(m.values)),
		order:  make([]string, len(m.order)),
	}
	copy(c.order, m.order)
	for k, v := range m.values {
		c.values[k] = v
	}
	return c
}
