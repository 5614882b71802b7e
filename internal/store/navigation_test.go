package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/versepath/scripture-companion/internal/bible"
)

func testBooks() []bible.Book {
	return []bible.Book{
		{ID: 1, Name: "Genesis", Abbreviation: "Gen", Testament: bible.OldTestament, ChapterCount: 50, SortOrder: 1},
		{ID: 43, Name: "John", Abbreviation: "John", Testament: bible.NewTestament, ChapterCount: 21, SortOrder: 43},
	}
}

func TestNavigationHistoryDedupAndOrder(t *testing.T) {
	s := NewNavigationStore(t.TempDir())

	a := bible.VerseReference{BookID: 43, Chapter: 3, Verse: 16}
	b := bible.VerseReference{BookID: 1, Chapter: 1, Verse: 1}
	c := bible.VerseReference{BookID: 19, Chapter: 23, Verse: 1}

	s.AddToHistory(a)
	s.AddToHistory(b)
	s.AddToHistory(c)
	require.Equal(t, []bible.VerseReference{c, b, a}, s.History())

	// Revisiting moves the entry to the front instead of duplicating it.
	s.AddToHistory(a)
	assert.Equal(t, []bible.VerseReference{a, c, b}, s.History())
}

func TestNavigationHistoryCap(t *testing.T) {
	s := NewNavigationStore(t.TempDir())

	for v := 1; v <= maxHistory+10; v++ {
		s.AddToHistory(bible.VerseReference{BookID: 19, Chapter: 119, Verse: v})
	}

	history := s.History()
	require.Len(t, history, maxHistory)
	assert.Equal(t, maxHistory+10, history[0].Verse, "newest entry first")
	assert.Equal(t, 11, history[maxHistory-1].Verse, "oldest entries dropped")
}

func TestSetCurrentBookResetsPosition(t *testing.T) {
	s := NewNavigationStore(t.TempDir())
	books := testBooks()

	s.SetCurrentBook(&books[1])
	s.SetCurrentChapter(3)
	s.SetCurrentVerse(&bible.Verse{ID: 26126, BookID: 43, Chapter: 3, Verse: 16})
	require.NotNil(t, s.CurrentVerse())

	s.SetCurrentBook(&books[0])
	assert.Equal(t, 1, s.CurrentChapter())
	assert.Nil(t, s.CurrentVerse())
	assert.Equal(t, "Genesis", s.CurrentBook().Name)
}

func TestSetCurrentChapterClearsVerse(t *testing.T) {
	s := NewNavigationStore(t.TempDir())

	s.SetCurrentVerse(&bible.Verse{ID: 1, BookID: 20, Chapter: 3, Verse: 5})
	s.SetCurrentChapter(4)
	assert.Nil(t, s.CurrentVerse())
	assert.Equal(t, 4, s.CurrentChapter())
}

func TestNavigateTo(t *testing.T) {
	s := NewNavigationStore(t.TempDir())
	s.SetBooks(testBooks())

	verse := 16
	s.NavigateTo(43, 3, &verse)
	require.NotNil(t, s.CurrentBook())
	assert.Equal(t, "John", s.CurrentBook().Name)
	assert.Equal(t, 3, s.CurrentChapter())
	require.Len(t, s.History(), 1)
	assert.Equal(t, bible.VerseReference{BookID: 43, Chapter: 3, Verse: 16}, s.History()[0])

	// Unknown book ids leave everything untouched.
	s.NavigateTo(999, 1, nil)
	assert.Equal(t, "John", s.CurrentBook().Name)
	assert.Equal(t, 3, s.CurrentChapter())
}

func TestNavigationPersistence(t *testing.T) {
	dir := t.TempDir()

	s := NewNavigationStore(dir)
	s.SetBooks(testBooks())
	books := s.Books()
	s.SetCurrentBook(&books[1])
	s.SetCurrentChapter(3)
	s.SetCurrentVerse(&bible.Verse{ID: 26126, BookID: 43, Chapter: 3, Verse: 16})

	reloaded := NewNavigationStore(dir)
	require.NotNil(t, reloaded.CurrentBook())
	assert.Equal(t, "John", reloaded.CurrentBook().Name)
	assert.Equal(t, 3, reloaded.CurrentChapter())
	assert.Len(t, reloaded.Books(), 2)
	require.Len(t, reloaded.History(), 1)

	// The selected verse is session state only.
	assert.Nil(t, reloaded.CurrentVerse())
}

func TestNavigationClearHistoryAndReset(t *testing.T) {
	dir := t.TempDir()
	s := NewNavigationStore(dir)
	s.SetBooks(testBooks())
	s.AddToHistory(bible.VerseReference{BookID: 1, Chapter: 1, Verse: 1})

	s.ClearHistory()
	assert.Empty(t, s.History())
	assert.NotEmpty(t, s.Books(), "clearing history keeps the rest")

	s.Reset()
	assert.Empty(t, s.Books())
	assert.Nil(t, s.CurrentBook())
	assert.Equal(t, 1, s.CurrentChapter())

	reloaded := NewNavigationStore(dir)
	assert.Empty(t, reloaded.Books())
}
