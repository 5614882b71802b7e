package bible

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGetBooks(t *testing.T) {
	repo := NewMockRepository()

	books, err := repo.GetBooks(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, books)

	seen := map[int]bool{}
	for i, b := range books {
		assert.False(t, seen[b.ID], "duplicate book id %d", b.ID)
		seen[b.ID] = true
		if i > 0 {
			assert.Less(t, books[i-1].SortOrder, b.SortOrder, "books must be in canonical order")
		}
	}
	assert.Equal(t, "Genesis", books[0].Name)
	assert.Equal(t, "Revelation", books[len(books)-1].Name)
}

func TestMockGetVerses(t *testing.T) {
	repo := NewMockRepository()
	ctx := context.Background()

	verses, err := repo.GetVerses(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, verses, 3)
	for i, v := range verses {
		assert.Equal(t, 1, v.BookID)
		assert.Equal(t, 1, v.Chapter)
		assert.Equal(t, i+1, v.Verse)
	}

	// A known book with no fixture verses for that chapter is an empty
	// list, not an error.
	verses, err = repo.GetVerses(ctx, 1, 2)
	require.NoError(t, err)
	assert.Empty(t, verses)

	_, err = repo.GetVerses(ctx, 999, 1)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMockGetVerse(t *testing.T) {
	repo := NewMockRepository()
	ctx := context.Background()

	verse, err := repo.GetVerse(ctx, 26126)
	require.NoError(t, err)
	assert.Equal(t, "John", verse.BookName)
	assert.Equal(t, 3, verse.Chapter)
	assert.Equal(t, 16, verse.Verse.Verse)

	_, err = repo.GetVerse(ctx, 424242)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMockGetVerseByReference(t *testing.T) {
	repo := NewMockRepository()
	ctx := context.Background()

	byRef, err := repo.GetVerseByReference(ctx, "John 3:16")
	require.NoError(t, err)
	byID, err := repo.GetVerse(ctx, 26126)
	require.NoError(t, err)
	assert.Equal(t, byID, byRef)

	// Abbreviations resolve too.
	byAbbr, err := repo.GetVerseByReference(ctx, "Prov 3:5")
	require.NoError(t, err)
	assert.Equal(t, 1, byAbbr.ID)

	_, err = repo.GetVerseByReference(ctx, "John three sixteen")
	assert.True(t, errors.Is(err, ErrInvalidReference))

	_, err = repo.GetVerseByReference(ctx, "Obadiah 1:1")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = repo.GetVerseByReference(ctx, "John 99:99")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMockGetRandomVerse(t *testing.T) {
	repo := NewMockRepository()
	ctx := context.Background()

	verse, err := repo.GetRandomVerse(ctx, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, verse.Text)

	salvation := 7
	tagged := map[int]bool{26126: true, 17: true, 18: true}
	for i := 0; i < 20; i++ {
		verse, err := repo.GetRandomVerse(ctx, &salvation)
		require.NoError(t, err)
		assert.True(t, tagged[verse.ID], "verse %d is not tagged for topic %d", verse.ID, salvation)
	}

	untagged := 99
	_, err = repo.GetRandomVerse(ctx, &untagged)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMockSearchVerses(t *testing.T) {
	repo := NewMockRepository()
	ctx := context.Background()

	matches, err := repo.SearchVerses(ctx, "God", 0)
	require.NoError(t, err)

	want := map[int]bool{
		3: true, 5: true, 6: true, 7: true, 10: true, 11: true, 12: true,
		13: true, 15: true, 17: true, 18: true, 20: true, 26126: true,
	}
	require.Len(t, matches, len(want))
	for _, v := range matches {
		assert.True(t, want[v.ID], "unexpected match %d", v.ID)
	}

	limited, err := repo.SearchVerses(ctx, "God", 5)
	require.NoError(t, err)
	assert.Len(t, limited, 5)

	none, err := repo.SearchVerses(ctx, "xyzzy", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMockTopics(t *testing.T) {
	repo := NewMockRepository()
	ctx := context.Background()

	topics, err := repo.GetTopics(ctx)
	require.NoError(t, err)
	assert.Len(t, topics, 12)

	topic, err := repo.GetTopicBySlug(ctx, "finances")
	require.NoError(t, err)
	assert.Equal(t, 1, topic.ID)
	assert.Equal(t, "Finances & Wealth", topic.Name)

	_, err = repo.GetTopicBySlug(ctx, "nonexistent-slug")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMockGetVersesByTopic(t *testing.T) {
	repo := NewMockRepository()
	ctx := context.Background()

	verses, err := repo.GetVersesByTopic(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, verses, 4)

	// Descending relevance, equal scores ordered by verse id.
	gotIDs := []int{verses[0].ID, verses[1].ID, verses[2].ID, verses[3].ID}
	assert.Equal(t, []int{2, 5, 14, 15}, gotIDs)
	for i := 1; i < len(verses); i++ {
		assert.GreaterOrEqual(t, verses[i-1].RelevanceScore, verses[i].RelevanceScore)
	}
	for _, v := range verses {
		assert.Equal(t, 1, v.TopicID)
	}

	limited, err := repo.GetVersesByTopic(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, 2, limited[0].ID)
	assert.Equal(t, 5, limited[1].ID)

	empty, err := repo.GetVersesByTopic(ctx, 2, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMockGetVerseApplication(t *testing.T) {
	repo := NewMockRepository()

	app, err := repo.GetVerseApplication(context.Background(), 26126)
	require.NoError(t, err)
	require.Len(t, app.ActionSteps, 3)
	require.Len(t, app.ReflectionQuestions, 4)

	for i, step := range app.ActionSteps {
		assert.Equal(t, 26126, step.VerseID)
		assert.Equal(t, i+1, step.StepNumber)
	}
	assert.Equal(t, DifficultyEasy, app.ActionSteps[0].Difficulty)
	assert.Equal(t, DifficultyChallenging, app.ActionSteps[2].Difficulty)

	categories := map[QuestionCategory]bool{}
	for _, q := range app.ReflectionQuestions {
		assert.Equal(t, 26126, q.VerseID)
		categories[q.Category] = true
	}
	assert.Len(t, categories, 4)
}
