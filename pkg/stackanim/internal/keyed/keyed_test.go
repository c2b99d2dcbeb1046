package keyed

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyIsStrictlyIncreasing(t *testing.T) {
	prev, err := strconv.ParseInt(GenerateKey(), 36, 64)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		next, err := strconv.ParseInt(GenerateKey(), 36, 64)
		require.NoError(t, err)
		require.Greater(t, next, prev)
		prev = next
	}
}

func TestAddGeneratesUniqueKeys(t *testing.T) {
	m := New[string]()
	a := m.Add("a", "")
	b := m.Add("b", "")

	assert.NotEqual(t, a, b)
	assert.Equal(t, []string{a, b}, m.Keys())
}

func TestAddWithExplicitKey(t *testing.T) {
	m := New[int]()
	key := m.Add(7, "seven")

	assert.Equal(t, "seven", key)
	v, ok := m.Get("seven")
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestGetMissing(t *testing.T) {
	m := New[int]()
	v, ok := m.Get("nope")
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestSetKeepsPosition(t *testing.T) {
	m := New[string]()
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("a", "3")

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, _ := m.Get("a")
	assert.Equal(t, "3", v)
}

func TestDelete(t *testing.T) {
	m := New[string]()
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("c", "3")

	m.Delete("b")
	m.Delete("missing")

	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.Equal(t, 2, m.Len())
}

func TestLastAndPrevious(t *testing.T) {
	m := New[string]()
	_, _, ok := m.Last()
	assert.False(t, ok)

	m.Set("a", "A")
	_, _, ok = m.Previous()
	assert.False(t, ok)

	m.Set("b", "B")
	key, v, ok := m.Last()
	assert.True(t, ok)
	assert.Equal(t, "b", key)
	assert.Equal(t, "B", v)

	key, v, ok = m.Previous()
	assert.True(t, ok)
	assert.Equal(t, "a", key)
	assert.Equal(t, "A", v)
}

func TestCloneIsIndependent(t *testing.T) {
	m := New[string]()
	m.Set("a", "1")

	c := m.Clone()
	require.NotSame(t, m, c)
	assert.Equal(t, m.Keys(), c.Keys())

	c.Set("b", "2")
	m.Delete("a")

	assert.Equal(t, []string{"a", "b"}, c.Keys())
	assert.Empty(t, m.Keys())
}

func TestCreateFrom(t *testing.T) {
	m := CreateFrom([]string{"x", "y", "z"})
	require.Equal(t, 3, m.Len())

	var got []string
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		got = append(got, v)
	}
	assert.Equal(t, []string{"x", "y", "z"}, got)
}

func TestKeysReturnsCopy(t *testing.T) {
	m := New[int]()
	m.Set("a", 1)
	keys := m.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"a"}, m.Keys())
}
