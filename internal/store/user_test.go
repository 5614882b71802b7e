package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := NewUserStore(dir)
	s.AddHighlight(26126, HighlightYellow)
	s.AddHighlight(5, HighlightGreen)
	s.AddHighlight(11, HighlightBlue)
	s.ToggleFavorite(26126)
	s.ToggleFavorite(8)

	reloaded := NewUserStore(dir)

	highlights := reloaded.Highlights()
	require.Len(t, highlights, 3)
	assert.Equal(t, 5, highlights[0].VerseID)
	assert.Equal(t, 11, highlights[1].VerseID)
	assert.Equal(t, 26126, highlights[2].VerseID)
	assert.Equal(t, HighlightGreen, highlights[0].Color)

	assert.Equal(t, []int{8, 26126}, reloaded.Favorites())
	assert.True(t, reloaded.IsFavorite(26126))
	assert.False(t, reloaded.IsFavorite(5))
}

func TestUserStoreHighlightReplaced(t *testing.T) {
	s := NewUserStore(t.TempDir())

	first := s.AddHighlight(7, HighlightYellow)
	second := s.AddHighlight(7, HighlightPink)

	require.Len(t, s.Highlights(), 1, "one highlight per verse")
	got, ok := s.GetHighlight(7)
	require.True(t, ok)
	assert.Equal(t, HighlightPink, got.Color)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestUserStoreRemoveHighlight(t *testing.T) {
	s := NewUserStore(t.TempDir())
	s.AddHighlight(7, HighlightYellow)

	s.RemoveHighlight(7)
	_, ok := s.GetHighlight(7)
	assert.False(t, ok)

	// Removing a verse that has no highlight is fine.
	s.RemoveHighlight(999)
}

func TestToggleFavoriteSelfInverse(t *testing.T) {
	s := NewUserStore(t.TempDir())

	assert.True(t, s.ToggleFavorite(42))
	assert.True(t, s.IsFavorite(42))
	assert.False(t, s.ToggleFavorite(42))
	assert.False(t, s.IsFavorite(42))
	assert.Empty(t, s.Favorites())
}

func TestUserStoreCorruptSnapshot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, userFile), []byte("{not json"), 0644))

	s := NewUserStore(dir)
	assert.Empty(t, s.Highlights())
	assert.Empty(t, s.Favorites())
	assert.Nil(t, s.Quota())
}

func TestUserStoreQuota(t *testing.T) {
	dir := t.TempDir()
	s := NewUserStore(dir)

	// Without a snapshot the accounting calls are no-ops.
	s.DecrementQueries()
	s.AddTokensUsed(100)
	assert.Nil(t, s.Quota())

	s.SetQuota(QuotaStatus{Tier: "free", QueriesUsed: 2, QueriesLimit: 10, TokensLimit: 5000})
	s.DecrementQueries()
	s.AddTokensUsed(150)

	quota := s.Quota()
	require.NotNil(t, quota)
	assert.Equal(t, 3, quota.QueriesUsed)
	assert.Equal(t, 150, quota.TokensUsed)

	reloaded := NewUserStore(dir)
	require.NotNil(t, reloaded.Quota())
	assert.Equal(t, 3, reloaded.Quota().QueriesUsed)
}

func TestUserStoreReset(t *testing.T) {
	dir := t.TempDir()
	s := NewUserStore(dir)
	s.AddHighlight(1, HighlightYellow)
	s.ToggleFavorite(1)
	s.SetQuota(QuotaStatus{Tier: "free"})

	s.Reset()
	assert.Empty(t, s.Highlights())
	assert.Empty(t, s.Favorites())
	assert.Nil(t, s.Quota())

	_, err := os.Stat(filepath.Join(dir, userFile))
	assert.True(t, os.IsNotExist(err))

	reloaded := NewUserStore(dir)
	assert.Empty(t, reloaded.Highlights())
}
