package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	t.Run("last write wins", func(t *testing.T) {
		s := New().
			Set("Hello", "world").
			Set("Hello", "nether")

		require.Equal(t, 1, s.Len())
		require.Equal(t, "nether", s.Value("Hello"))
	})

	t.Run("case sensitive", func(t *testing.T) {
		s := New().
			Set("Content-Type", "text/plain").
			Set("content-type", "text/html")

		require.Equal(t, 2, s.Len())
		require.Equal(t, "text/plain", s.Value("Content-Type"))
		require.Equal(t, "text/html", s.Value("content-type"))
		require.False(t, s.Has("CONTENT-TYPE"))
	})

	t.Run("value or", func(t *testing.T) {
		s := New().Set("Empty", "")
		value, found := s.Get("Empty")
		require.True(t, found)
		require.Empty(t, value)
		require.Equal(t, "default", s.ValueOr("Missing", "default"))
	})

	t.Run("delete", func(t *testing.T) {
		s := New().Set("a", "1").Set("b", "2").Set("c", "3")
		s.Delete("b")
		require.Equal(t, []string{"a", "c"}, s.Keys())
		s.Delete("missing")
		require.Equal(t, 2, s.Len())
	})

	t.Run("iter", func(t *testing.T) {
		s := NewFromMap(map[string]string{"a": "1", "b": "2"})
		collected := make(map[string]string)
		for key, value := range s.Iter() {
			collected[key] = value
		}

		require.Equal(t, map[string]string{"a": "1", "b": "2"}, collected)
	})

	t.Run("clone", func(t *testing.T) {
		s := New().Set("a", "1")
		c := s.Clone()
		c.Set("a", "2")
		require.Equal(t, "1", s.Value("a"))
		require.Equal(t, "2", c.Value("a"))
		require.True(t, New().Clone().Empty())
	})

	t.Run("clear", func(t *testing.T) {
		s := New().Set("a", "1")
		require.True(t, s.Clear().Empty())
	})
}
