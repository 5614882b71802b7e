package bible

import (
	"fmt"
	"regexp"
	"strconv"
)

// ParsedReference is the result of parsing a "Book Chapter:Verse" string.
// EndVerse is 0 when the reference names a single verse.
type ParsedReference struct {
	Book     string
	Chapter  int
	Verse    int
	EndVerse int
}

// Book names may contain spaces ("1 Corinthians", "Song of Solomon"), so
// the book part matches lazily up to the final "chapter:verse" pair.
var referencePattern = regexp.MustCompile(`^(.+?)\s+(\d+):(\d+)(?:-(\d+))?$`)

// ParseReference parses a verse reference like "John 3:16" or
// "John 3:16-18". Malformed input fails with ErrInvalidReference rather
// than panicking mid-parse.
func ParseReference(reference string) (ParsedReference, error) {
	m := referencePattern.FindStringSubmatch(reference)
	if m == nil {
		return ParsedReference{}, fmt.Errorf("%w: %q", ErrInvalidReference, reference)
	}

	chapter, err := strconv.Atoi(m[2])
	if err != nil {
		return ParsedReference{}, fmt.Errorf("%w: %q", ErrInvalidReference, reference)
	}
	verse, err := strconv.Atoi(m[3])
	if err != nil {
		return ParsedReference{}, fmt.Errorf("%w: %q", ErrInvalidReference, reference)
	}

	parsed := ParsedReference{
		Book:    m[1],
		Chapter: chapter,
		Verse:   verse,
	}
	if m[4] != "" {
		endVerse, err := strconv.Atoi(m[4])
		if err != nil {
			return ParsedReference{}, fmt.Errorf("%w: %q", ErrInvalidReference, reference)
		}
		parsed.EndVerse = endVerse
	}
	return parsed, nil
}

// FormatReference renders a reference string for a verse or verse range.
func FormatReference(bookName string, chapter, verse, endVerse int) string {
	if endVerse != 0 && endVerse != verse {
		return fmt.Sprintf("%s %d:%d-%d", bookName, chapter, verse, endVerse)
	}
	return fmt.Sprintf("%s %d:%d", bookName, chapter, verse)
}
