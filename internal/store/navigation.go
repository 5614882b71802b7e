package store

import (
	"sync"

	"github.com/versepath/scripture-companion/internal/bible"
)

const navigationFile = "navigation.json"

// maxHistory bounds the reading history.
const maxHistory = 50

// NavigationStore holds the reading position: cached book list, current
// book/chapter/verse, and a bounded most-recent-first history with no
// duplicate references. The current verse is session state and is not
// persisted.
type NavigationStore struct {
	mu      sync.Mutex
	persist persister

	books          []bible.Book
	currentBook    *bible.Book
	currentChapter int
	currentVerse   *bible.Verse
	history        []bible.VerseReference
}

type navigationSnapshot struct {
	Books          []bible.Book           `json:"books"`
	CurrentBook    *bible.Book            `json:"currentBook"`
	CurrentChapter int                    `json:"currentChapter"`
	History        []bible.VerseReference `json:"history"`
}

func NewNavigationStore(dir string) *NavigationStore {
	s := &NavigationStore{
		persist:        newPersister(dir, navigationFile),
		currentChapter: 1,
		history:        []bible.VerseReference{},
	}

	var snapshot navigationSnapshot
	if s.persist.load(&snapshot) {
		s.books = snapshot.Books
		s.currentBook = snapshot.CurrentBook
		if snapshot.CurrentChapter >= 1 {
			s.currentChapter = snapshot.CurrentChapter
		}
		if snapshot.History != nil {
			s.history = snapshot.History
		}
	}
	return s
}

func (s *NavigationStore) saveLocked() {
	s.persist.save(navigationSnapshot{
		Books:          s.books,
		CurrentBook:    s.currentBook,
		CurrentChapter: s.currentChapter,
		History:        s.history,
	})
}

func (s *NavigationStore) SetBooks(books []bible.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = append([]bible.Book(nil), books...)
	s.saveLocked()
}

func (s *NavigationStore) Books() []bible.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]bible.Book(nil), s.books...)
}

// SetCurrentBook switches books, resetting the chapter to 1 and clearing
// the current verse.
func (s *NavigationStore) SetCurrentBook(book *bible.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentBook = book
	s.currentChapter = 1
	s.currentVerse = nil
	s.saveLocked()
}

func (s *NavigationStore) CurrentBook() *bible.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentBook
}

// SetCurrentChapter moves within the current book, clearing the verse.
func (s *NavigationStore) SetCurrentChapter(chapter int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentChapter = chapter
	s.currentVerse = nil
	s.saveLocked()
}

func (s *NavigationStore) CurrentChapter() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentChapter
}

// SetCurrentVerse selects a verse; a non-nil selection is recorded in
// the history.
func (s *NavigationStore) SetCurrentVerse(verse *bible.Verse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if verse != nil {
		s.addToHistoryLocked(bible.VerseReference{
			BookID:  verse.BookID,
			Chapter: verse.Chapter,
			Verse:   verse.Verse,
		})
	}
	s.currentVerse = verse
	s.saveLocked()
}

func (s *NavigationStore) CurrentVerse() *bible.Verse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentVerse
}

// NavigateTo resolves bookID against the cached book list and jumps
// there. Unknown book ids are a no-op.
func (s *NavigationStore) NavigateTo(bookID, chapter int, verse *int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var book *bible.Book
	for i := range s.books {
		if s.books[i].ID == bookID {
			b := s.books[i]
			book = &b
			break
		}
	}
	if book == nil {
		return
	}

	s.currentBook = book
	s.currentChapter = chapter
	s.currentVerse = nil
	if verse != nil {
		s.addToHistoryLocked(bible.VerseReference{BookID: bookID, Chapter: chapter, Verse: *verse})
	}
	s.saveLocked()
}

func (s *NavigationStore) AddToHistory(ref bible.VerseReference) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addToHistoryLocked(ref)
	s.saveLocked()
}

// addToHistoryLocked prepends ref, removing any existing entry for the
// same (book, chapter, verse) so repeats move to the front instead of
// duplicating, and caps the list.
func (s *NavigationStore) addToHistoryLocked(ref bible.VerseReference) {
	next := make([]bible.VerseReference, 0, len(s.history)+1)
	next = append(next, ref)
	for _, h := range s.history {
		if h == ref {
			continue
		}
		next = append(next, h)
		if len(next) == maxHistory {
			break
		}
	}
	s.history = next
}

func (s *NavigationStore) History() []bible.VerseReference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]bible.VerseReference(nil), s.history...)
}

func (s *NavigationStore) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = []bible.VerseReference{}
	s.saveLocked()
}

// Reset wipes all navigation state and its snapshot.
func (s *NavigationStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = nil
	s.currentBook = nil
	s.currentChapter = 1
	s.currentVerse = nil
	s.history = []bible.VerseReference{}
	s.persist.remove()
}
