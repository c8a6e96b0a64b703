package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julienpequegnot/devpub/internal/database"
	"github.com/julienpequegnot/devpub/internal/devto"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecord(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	e, err := repo.Record(Entry{Title: "Hello", Status: StatusPublished, ArticleID: 42, URL: "https://dev.to/u/hello", Published: true})
	require.NoError(t, err)

	_, err = ksuid.Parse(e.ID)
	assert.NoError(t, err, "expected a ksuid id")
	assert.False(t, e.CreatedAt.IsZero())
}

func TestListNewestFirst(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	for i, title := range []string{"first", "second", "third"} {
		_, err := repo.Record(Entry{Title: title, Status: StatusPublished, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}

	entries, err := repo.List(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "third", entries[0].Title)
	assert.Equal(t, "second", entries[1].Title)
}

func TestFindPublished(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	found, err := repo.FindPublished("Hello")
	require.NoError(t, err)
	assert.Nil(t, found)

	_, err = repo.Record(Entry{Title: "Hello", Status: StatusFailed, ErrorKind: "platform", ErrorCode: 422, ErrorMessage: "invalid title"})
	require.NoError(t, err)

	found, err = repo.FindPublished("Hello")
	require.NoError(t, err)
	assert.Nil(t, found, "failed attempts don't count")

	_, err = repo.Record(Entry{Title: "Hello", Status: StatusPublished, ArticleID: 7, URL: "https://dev.to/u/hello"})
	require.NoError(t, err)

	found, err = repo.FindPublished("Hello")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, int64(7), found.ArticleID)
	assert.Equal(t, "https://dev.to/u/hello", found.URL)
}

func TestFromResult(t *testing.T) {
	ok := FromResult("A", devto.Result{Title: "A", ID: 1, URL: "https://dev.to/u/a"}, true)
	assert.Equal(t, StatusPublished, ok.Status)
	assert.Equal(t, int64(1), ok.ArticleID)

	failed := FromResult("B", devto.Result{Err: &devto.Error{Kind: devto.KindPlatform, Code: 422, Message: "invalid title"}}, false)
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Equal(t, "B", failed.Title)
	assert.Equal(t, "platform", failed.ErrorKind)
	assert.Equal(t, 422, failed.ErrorCode)
	assert.Equal(t, "invalid title", failed.ErrorMessage)
	assert.False(t, failed.Published)
}

func TestFindPublishedIgnoresDrafts(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	draft := FromResult("T", devto.Result{ID: 5, URL: "https://dev.to/u/t-draft", Title: "T"}, false)
	assert.Equal(t, StatusDrafted, draft.Status)
	_, err := repo.Record(draft)
	require.NoError(t, err)

	found, err := repo.FindPublished("T")
	require.NoError(t, err)
	assert.Nil(t, found, "a draft is not live")

	_, err = repo.Record(FromResult("T", devto.Result{ID: 6, URL: "https://dev.to/u/t", Title: "T"}, true))
	require.NoError(t, err)

	found, err = repo.FindPublished("T")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, int64(6), found.ArticleID)
	assert.True(t, found.Published)
}
