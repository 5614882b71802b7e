package bible

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		input    string
		book     string
		chapter  int
		verse    int
		endVerse int
	}{
		{"John 3:16", "John", 3, 16, 0},
		{"John 3:16-18", "John", 3, 16, 18},
		{"1 Corinthians 13:4", "1 Corinthians", 13, 4, 0},
		{"Song of Solomon 2:1", "Song of Solomon", 2, 1, 0},
		{"Psalms 119:105", "Psalms", 119, 105, 0},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			parsed, err := ParseReference(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.book, parsed.Book)
			assert.Equal(t, tc.chapter, parsed.Chapter)
			assert.Equal(t, tc.verse, parsed.Verse)
			assert.Equal(t, tc.endVerse, parsed.EndVerse)
		})
	}
}

func TestParseReferenceMalformed(t *testing.T) {
	for _, input := range []string{
		"",
		"John",
		"John 3",
		"John 3:",
		"John three:16",
		"3:16",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseReference(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidReference), "expected ErrInvalidReference, got %v", err)
		})
	}
}

func TestFormatReference(t *testing.T) {
	assert.Equal(t, "John 3:16", FormatReference("John", 3, 16, 0))
	assert.Equal(t, "John 3:16-18", FormatReference("John", 3, 16, 18))
	// An end verse equal to the start collapses to a single reference.
	assert.Equal(t, "John 3:16", FormatReference("John", 3, 16, 16))
}

func TestFormatParseRoundTrip(t *testing.T) {
	refs := []struct {
		book    string
		chapter int
		verse   int
	}{
		{"Genesis", 1, 1},
		{"John", 3, 16},
		{"1 Peter", 5, 7},
		{"Song of Solomon", 8, 6},
	}

	for _, ref := range refs {
		formatted := FormatReference(ref.book, ref.chapter, ref.verse, 0)
		parsed, err := ParseReference(formatted)
		require.NoError(t, err, formatted)
		assert.Equal(t, ref.book, parsed.Book)
		assert.Equal(t, ref.chapter, parsed.Chapter)
		assert.Equal(t, ref.verse, parsed.Verse)
	}
}
