package bible

import (
	"context"
	"errors"
	"fmt"

	"github.com/versepath/scripture-companion/internal/host"
)

// remoteRepository serves every facade operation over the host
// invocation channel. One named operation per call, typed result decoded
// in place.
type remoteRepository struct {
	channel host.Channel
}

// NewRemoteRepository builds the live implementation of all three
// scripture facades on top of the invocation channel.
func NewRemoteRepository(channel host.Channel) *remoteRepository {
	return &remoteRepository{channel: channel}
}

var (
	_ BibleAPI       = (*remoteRepository)(nil)
	_ TopicAPI       = (*remoteRepository)(nil)
	_ ApplicationAPI = (*remoteRepository)(nil)
)

// mapInvokeError converts host wire codes into the package's sentinel
// errors so callers never need to know about the channel.
func mapInvokeError(err error) error {
	var invokeErr *host.InvokeError
	if errors.As(err, &invokeErr) {
		switch invokeErr.Code {
		case host.CodeNotFound:
			return fmt.Errorf("%w: %s", ErrNotFound, invokeErr.Message)
		case host.CodeInvalidReference:
			return fmt.Errorf("%w: %s", ErrInvalidReference, invokeErr.Message)
		}
	}
	return err
}

func (r *remoteRepository) GetBooks(ctx context.Context) ([]Book, error) {
	var books []Book
	if err := r.channel.Invoke(ctx, "get_books", nil, &books); err != nil {
		return nil, mapInvokeError(err)
	}
	return books, nil
}

func (r *remoteRepository) GetVerses(ctx context.Context, bookID, chapter int) ([]Verse, error) {
	args := map[string]any{"bookId": bookID, "chapter": chapter}
	var verses []Verse
	if err := r.channel.Invoke(ctx, "get_verses", args, &verses); err != nil {
		return nil, mapInvokeError(err)
	}
	if verses == nil {
		verses = []Verse{}
	}
	return verses, nil
}

func (r *remoteRepository) GetVerse(ctx context.Context, verseID int) (*VerseWithBook, error) {
	args := map[string]any{"verseId": verseID}
	var verse VerseWithBook
	if err := r.channel.Invoke(ctx, "get_verse", args, &verse); err != nil {
		return nil, mapInvokeError(err)
	}
	return &verse, nil
}

func (r *remoteRepository) GetVerseByReference(ctx context.Context, reference string) (*VerseWithBook, error) {
	args := map[string]any{"reference": reference}
	var verse VerseWithBook
	if err := r.channel.Invoke(ctx, "get_verse_by_reference", args, &verse); err != nil {
		return nil, mapInvokeError(err)
	}
	return &verse, nil
}

func (r *remoteRepository) GetRandomVerse(ctx context.Context, topicID *int) (*VerseWithBook, error) {
	args := map[string]any{}
	if topicID != nil {
		args["topicId"] = *topicID
	}
	var verse VerseWithBook
	if err := r.channel.Invoke(ctx, "get_random_verse", args, &verse); err != nil {
		return nil, mapInvokeError(err)
	}
	return &verse, nil
}

func (r *remoteRepository) SearchVerses(ctx context.Context, query string, limit int) ([]VerseWithBook, error) {
	args := map[string]any{"query": query}
	if limit > 0 {
		args["limit"] = limit
	}
	var verses []VerseWithBook
	if err := r.channel.Invoke(ctx, "search_verses", args, &verses); err != nil {
		return nil, mapInvokeError(err)
	}
	if verses == nil {
		verses = []VerseWithBook{}
	}
	return verses, nil
}

func (r *remoteRepository) GetTopics(ctx context.Context) ([]Topic, error) {
	var topics []Topic
	if err := r.channel.Invoke(ctx, "get_topics", nil, &topics); err != nil {
		return nil, mapInvokeError(err)
	}
	return topics, nil
}

func (r *remoteRepository) GetTopicBySlug(ctx context.Context, slug string) (*Topic, error) {
	args := map[string]any{"slug": slug}
	var topic Topic
	if err := r.channel.Invoke(ctx, "get_topic_by_slug", args, &topic); err != nil {
		return nil, mapInvokeError(err)
	}
	return &topic, nil
}

func (r *remoteRepository) GetVersesByTopic(ctx context.Context, topicID, limit int) ([]VerseWithTopic, error) {
	args := map[string]any{"topicId": topicID}
	if limit > 0 {
		args["limit"] = limit
	}
	var verses []VerseWithTopic
	if err := r.channel.Invoke(ctx, "get_verses_by_topic", args, &verses); err != nil {
		return nil, mapInvokeError(err)
	}
	if verses == nil {
		verses = []VerseWithTopic{}
	}
	return verses, nil
}

func (r *remoteRepository) GetVerseApplication(ctx context.Context, verseID int) (*VerseApplication, error) {
	args := map[string]any{"verseId": verseID}
	var application VerseApplication
	if err := r.channel.Invoke(ctx, "get_verse_application", args, &application); err != nil {
		return nil, mapInvokeError(err)
	}
	if application.ActionSteps == nil {
		application.ActionSteps = []ActionStep{}
	}
	if application.ReflectionQuestions == nil {
		application.ReflectionQuestions = []ReflectionQuestion{}
	}
	return &application, nil
}
