package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julienpequegnot/devpub/internal/article"
	"github.com/julienpequegnot/devpub/internal/config"
	"github.com/julienpequegnot/devpub/internal/devto"
)

const testArticles = `
articles:
  - title: One
    body: "First paragraph of one.\n\nMore."
    tags: [a, b, c, d, e]
  - title: Two
    body: "Python automation scripts."
    published: false
`

func testStore(t *testing.T) *article.Store {
	t.Helper()
	store, err := article.Load([]byte(testArticles))
	require.NoError(t, err)
	return store
}

func TestChooseArticle(t *testing.T) {
	store := testStore(t)

	assert.Equal(t, "One", chooseArticle(store, "1\n").Title)
	assert.Equal(t, "Two", chooseArticle(store, " 2 ").Title)

	// anything else is random but always a member of the collection
	for _, answer := range []string{"", "\n", "abc", "0", "3", "-1"} {
		got := chooseArticle(store, answer).Title
		assert.Contains(t, []string{"One", "Two"}, got, "answer %q", answer)
	}
}

func TestToArticle(t *testing.T) {
	cfg = config.Default()
	t.Cleanup(func() {
		cfg = nil
		publishDraft, publishDescribe, publishSuggest, publishCanonical = false, false, false, ""
	})
	store := testStore(t)

	one, _ := store.Get(0)
	a := toArticle(one)
	assert.True(t, a.Published)
	assert.Empty(t, a.Description)
	assert.Len(t, a.Tags, 5, "truncation happens in the client")

	two, _ := store.Get(1)
	assert.False(t, toArticle(two).Published)

	publishDraft = true
	assert.False(t, toArticle(one).Published)
	publishDraft = false

	cfg.Publish.Published = false
	assert.False(t, toArticle(one).Published)
	cfg.Publish.Published = true

	publishDescribe = true
	publishCanonical = "https://example.com/one"
	a = toArticle(one)
	assert.Equal(t, "First paragraph of one.", a.Description)
	assert.Equal(t, "https://example.com/one", a.CanonicalURL)

	publishSuggest = true
	assert.Len(t, toArticle(one).Tags, 5, "explicit tags are kept")
	assert.Equal(t, []string{"automation", "python"}, toArticle(two).Tags)
}

func TestParseFieldValue(t *testing.T) {
	assert.Equal(t, true, parseFieldValue("true"))
	assert.Equal(t, float64(3), parseFieldValue("3"))
	assert.Equal(t, []any{"a", "b"}, parseFieldValue(`["a","b"]`))
	assert.Equal(t, "plain text", parseFieldValue("plain text"))
	assert.Equal(t, "", parseFieldValue(""))
}

func TestFieldString(t *testing.T) {
	a := devto.RawArticle{"id": float64(1234567), "title": "Hi", "flag": true}
	assert.Equal(t, "1234567", fieldString(a, "id"))
	assert.Equal(t, "Hi", fieldString(a, "title"))
	assert.Equal(t, "true", fieldString(a, "flag"))
	assert.Equal(t, "", fieldString(a, "missing"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "héllo w...", truncate("héllo wörld!", 10))
}
