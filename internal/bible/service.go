package bible

import (
	"context"
	"errors"

	"github.com/versepath/scripture-companion/internal/host"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidReference = errors.New("invalid verse reference")
)

// BibleAPI is the scripture text facade. The same operation set is served
// by the host engine in live mode and by the fixture mock standalone.
type BibleAPI interface {
	GetBooks(ctx context.Context) ([]Book, error)
	GetVerses(ctx context.Context, bookID, chapter int) ([]Verse, error)
	GetVerse(ctx context.Context, verseID int) (*VerseWithBook, error)
	GetVerseByReference(ctx context.Context, reference string) (*VerseWithBook, error)
	GetRandomVerse(ctx context.Context, topicID *int) (*VerseWithBook, error)
	SearchVerses(ctx context.Context, query string, limit int) ([]VerseWithBook, error)
}

// TopicAPI is the topical collection facade.
type TopicAPI interface {
	GetTopics(ctx context.Context) ([]Topic, error)
	GetTopicBySlug(ctx context.Context, slug string) (*Topic, error)
	GetVersesByTopic(ctx context.Context, topicID, limit int) ([]VerseWithTopic, error)
}

// ApplicationAPI serves per-verse application content.
type ApplicationAPI interface {
	GetVerseApplication(ctx context.Context, verseID int) (*VerseApplication, error)
}

// Detect reports whether the live backend should serve the next call. It
// is consulted fresh on every operation, never cached: a host could
// attach mid-session in a debug scenario.
type Detect func() bool

// BibleService dispatches each call to the live or mock implementation
// based on host availability at call time.
type BibleService struct {
	live   BibleAPI
	mock   BibleAPI
	detect Detect
}

func NewBibleService(live, mock BibleAPI, detect Detect) *BibleService {
	if detect == nil {
		detect = host.Available
	}
	return &BibleService{live: live, mock: mock, detect: detect}
}

func (s *BibleService) backend() BibleAPI {
	if s.detect() && s.live != nil {
		return s.live
	}
	return s.mock
}

func (s *BibleService) GetBooks(ctx context.Context) ([]Book, error) {
	return s.backend().GetBooks(ctx)
}

func (s *BibleService) GetVerses(ctx context.Context, bookID, chapter int) ([]Verse, error) {
	return s.backend().GetVerses(ctx, bookID, chapter)
}

func (s *BibleService) GetVerse(ctx context.Context, verseID int) (*VerseWithBook, error) {
	return s.backend().GetVerse(ctx, verseID)
}

func (s *BibleService) GetVerseByReference(ctx context.Context, reference string) (*VerseWithBook, error) {
	return s.backend().GetVerseByReference(ctx, reference)
}

func (s *BibleService) GetRandomVerse(ctx context.Context, topicID *int) (*VerseWithBook, error) {
	return s.backend().GetRandomVerse(ctx, topicID)
}

func (s *BibleService) SearchVerses(ctx context.Context, query string, limit int) ([]VerseWithBook, error) {
	return s.backend().SearchVerses(ctx, query, limit)
}

// TopicService dispatches topic operations the same way.
type TopicService struct {
	live   TopicAPI
	mock   TopicAPI
	detect Detect
}

func NewTopicService(live, mock TopicAPI, detect Detect) *TopicService {
	if detect == nil {
		detect = host.Available
	}
	return &TopicService{live: live, mock: mock, detect: detect}
}

func (s *TopicService) backend() TopicAPI {
	if s.detect() && s.live != nil {
		return s.live
	}
	return s.mock
}

func (s *TopicService) GetTopics(ctx context.Context) ([]Topic, error) {
	return s.backend().GetTopics(ctx)
}

func (s *TopicService) GetTopicBySlug(ctx context.Context, slug string) (*Topic, error) {
	return s.backend().GetTopicBySlug(ctx, slug)
}

func (s *TopicService) GetVersesByTopic(ctx context.Context, topicID, limit int) ([]VerseWithTopic, error) {
	return s.backend().GetVersesByTopic(ctx, topicID, limit)
}

// ApplicationService dispatches application-content operations.
type ApplicationService struct {
	live   ApplicationAPI
	mock   ApplicationAPI
	detect Detect
}

func NewApplicationService(live, mock ApplicationAPI, detect Detect) *ApplicationService {
	if detect == nil {
		detect = host.Available
	}
	return &ApplicationService{live: live, mock: mock, detect: detect}
}

func (s *ApplicationService) backend() ApplicationAPI {
	if s.detect() && s.live != nil {
		return s.live
	}
	return s.mock
}

func (s *ApplicationService) GetVerseApplication(ctx context.Context, verseID int) (*VerseApplication, error) {
	return s.backend().GetVerseApplication(ctx, verseID)
}
