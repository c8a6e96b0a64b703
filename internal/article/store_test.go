package article

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCollection = `
articles:
  - title: First
    body: "# First\n\nHello."
    tags: [a, b, c, d, e]
  - title: Second
    body: "# Second"
    published: false
    canonical_url: https://example.com/second
    description: The second one
  - title: Third
    body: "# Third"
    tags: [go]
`

func TestDefaultCollection(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)
	require.Equal(t, 7, store.Len())

	titles := store.Titles()
	assert.Equal(t, "Why You Should Start Learning AI Automation Today", titles[0])
	assert.Equal(t, "GitHub Actions 实战：打造你的 CI/CD 自动化流水线", titles[6])

	journey, err := store.Get(2)
	require.NoError(t, err)
	assert.Len(t, journey.Tags, 5, "stored tags are kept in full")
	assert.Contains(t, journey.Body, "## Anxiety to Flow")

	first, err := store.Get(0)
	require.NoError(t, err)
	for _, heading := range []string{"## My Journey", "## The Quiet Revolution", "## A Final Thought"} {
		assert.Contains(t, first.Body, heading)
	}

	for i, title := range store.Titles() {
		rec, err := store.Get(i)
		require.NoError(t, err)
		assert.Equal(t, title, rec.Title)
		assert.NotEmpty(t, rec.Body)
		assert.NotEmpty(t, rec.Tags)
	}
}

func TestLoad(t *testing.T) {
	store, err := Load([]byte(testCollection))
	require.NoError(t, err)

	assert.Equal(t, []string{"First", "Second", "Third"}, store.Titles())

	first, _ := store.Get(0)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, first.Tags, "store keeps all tags; truncation happens at publish time")
	assert.True(t, first.Published)

	second, _ := store.Get(1)
	assert.Equal(t, DefaultTags, second.Tags)
	assert.False(t, second.Published)
	assert.Equal(t, "https://example.com/second", second.CanonicalURL)
	assert.Equal(t, "The second one", second.Description)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty collection", "articles: []"},
		{"missing title", "articles:\n  - body: x"},
		{"blank title", "articles:\n  - title: '  '\n    body: x"},
		{"invalid yaml", "articles: [:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCollection), 0644))

	store, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, store.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGetIsDeterministic(t *testing.T) {
	store, err := Load([]byte(testCollection))
	require.NoError(t, err)

	for i := 0; i < store.Len(); i++ {
		a, err := store.Get(i)
		require.NoError(t, err)
		b, err := store.Get(i)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestGetOutOfRange(t *testing.T) {
	store, err := Load([]byte(testCollection))
	require.NoError(t, err)

	for _, i := range []int{-1, 3, 100} {
		_, err := store.Get(i)
		var idxErr *IndexError
		require.True(t, errors.As(err, &idxErr), "index %d", i)
		assert.Equal(t, i, idxErr.Index)
		assert.Equal(t, 3, idxErr.Count)
	}
}

func TestRecordsAreImmutable(t *testing.T) {
	store, err := Load([]byte(testCollection))
	require.NoError(t, err)

	rec, _ := store.Get(0)
	rec.Tags[0] = "changed"
	rec.Title = "changed"

	again, _ := store.Get(0)
	assert.Equal(t, "First", again.Title)
	assert.Equal(t, "a", again.Tags[0])

	all := store.All()
	all[2].Tags[0] = "changed"
	third, _ := store.Get(2)
	assert.Equal(t, []string{"go"}, third.Tags)
}

func TestRandomIsUniform(t *testing.T) {
	store, err := Load([]byte(testCollection))
	require.NoError(t, err)

	const trials = 6000
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		counts[store.Random().Title]++
	}

	require.Len(t, counts, store.Len())
	expected := trials / store.Len()
	for title, n := range counts {
		assert.InDelta(t, expected, n, float64(expected)*0.2, "title %q drawn %d times", title, n)
	}
}
