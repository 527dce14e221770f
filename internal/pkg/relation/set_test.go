package relation_test

import (
	"testing"

	"workshop/internal/pkg/relation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type part struct {
	code  string
	label string
}

func (p *part) Key() string { return p.code }

func TestSet(t *testing.T) {
	t.Run("zero value is an empty set", func(t *testing.T) {
		var s relation.Set[string, *part]

		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.Snapshot())
		assert.False(t, s.Remove(&part{code: "A"}))
	})

	t.Run("keeps one item per key in insertion order", func(t *testing.T) {
		// Given
		var s relation.Set[string, *part]
		first := &part{code: "B", label: "brake pad"}

		// When
		assert.True(t, s.Add(first))
		assert.True(t, s.Add(&part{code: "A", label: "air filter"}))
		assert.False(t, s.Add(&part{code: "B", label: "duplicate"}))

		// Then
		require.Equal(t, 2, s.Len())
		snapshot := s.Snapshot()
		assert.Same(t, first, snapshot[0])
		assert.Equal(t, "A", snapshot[1].code)
	})

	t.Run("remove matches by key and reindexes", func(t *testing.T) {
		// Given
		var s relation.Set[string, *part]
		s.Add(&part{code: "A"})
		s.Add(&part{code: "B"})
		s.Add(&part{code: "C"})

		// When
		removed := s.Remove(&part{code: "A"})

		// Then
		assert.True(t, removed)
		assert.False(t, s.Contains(&part{code: "A"}))
		found, ok := s.Find("C")
		require.True(t, ok)
		assert.Equal(t, "C", found.code)
		assert.True(t, s.RemoveKey("C"))
		assert.Equal(t, []string{"B"}, codes(s.Snapshot()))
	})

	t.Run("snapshot is detached from the set", func(t *testing.T) {
		// Given
		var s relation.Set[string, *part]
		s.Add(&part{code: "A"})

		// When
		snapshot := s.Snapshot()
		snapshot[0] = &part{code: "Z"}
		_ = append(snapshot, &part{code: "Y"})

		// Then
		assert.Equal(t, []string{"A"}, codes(s.Snapshot()))
		assert.Equal(t, 1, s.Len())
	})
}

func codes(parts []*part) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, p.code)
	}
	return out
}
