package bible

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
)

// mockRepository is the standalone backend: a small curated KJV dataset
// good enough to demo every screen without a host engine.
type mockRepository struct{}

// NewMockRepository builds the fixture-backed implementation of all
// three scripture facades.
func NewMockRepository() *mockRepository {
	return &mockRepository{}
}

var (
	_ BibleAPI       = (*mockRepository)(nil)
	_ TopicAPI       = (*mockRepository)(nil)
	_ ApplicationAPI = (*mockRepository)(nil)
)

var mockBooks = []Book{
	// Old Testament
	{ID: 1, Name: "Genesis", Abbreviation: "Gen", Testament: OldTestament, ChapterCount: 50, SortOrder: 1},
	{ID: 2, Name: "Exodus", Abbreviation: "Exod", Testament: OldTestament, ChapterCount: 40, SortOrder: 2},
	{ID: 3, Name: "Leviticus", Abbreviation: "Lev", Testament: OldTestament, ChapterCount: 27, SortOrder: 3},
	{ID: 4, Name: "Numbers", Abbreviation: "Num", Testament: OldTestament, ChapterCount: 36, SortOrder: 4},
	{ID: 5, Name: "Deuteronomy", Abbreviation: "Deut", Testament: OldTestament, ChapterCount: 34, SortOrder: 5},
	{ID: 6, Name: "Joshua", Abbreviation: "Josh", Testament: OldTestament, ChapterCount: 24, SortOrder: 6},
	{ID: 18, Name: "Job", Abbreviation: "Job", Testament: OldTestament, ChapterCount: 42, SortOrder: 18},
	{ID: 19, Name: "Psalms", Abbreviation: "Ps", Testament: OldTestament, ChapterCount: 150, SortOrder: 19},
	{ID: 20, Name: "Proverbs", Abbreviation: "Prov", Testament: OldTestament, ChapterCount: 31, SortOrder: 20},
	{ID: 21, Name: "Ecclesiastes", Abbreviation: "Eccl", Testament: OldTestament, ChapterCount: 12, SortOrder: 21},
	{ID: 22, Name: "Song of Solomon", Abbreviation: "Song", Testament: OldTestament, ChapterCount: 8, SortOrder: 22},
	{ID: 23, Name: "Isaiah", Abbreviation: "Isa", Testament: OldTestament, ChapterCount: 66, SortOrder: 23},
	{ID: 24, Name: "Jeremiah", Abbreviation: "Jer", Testament: OldTestament, ChapterCount: 52, SortOrder: 24},
	{ID: 39, Name: "Malachi", Abbreviation: "Mal", Testament: OldTestament, ChapterCount: 4, SortOrder: 39},
	// New Testament
	{ID: 40, Name: "Matthew", Abbreviation: "Matt", Testament: NewTestament, ChapterCount: 28, SortOrder: 40},
	{ID: 41, Name: "Mark", Abbreviation: "Mark", Testament: NewTestament, ChapterCount: 16, SortOrder: 41},
	{ID: 42, Name: "Luke", Abbreviation: "Luke", Testament: NewTestament, ChapterCount: 24, SortOrder: 42},
	{ID: 43, Name: "John", Abbreviation: "John", Testament: NewTestament, ChapterCount: 21, SortOrder: 43},
	{ID: 44, Name: "Acts", Abbreviation: "Acts", Testament: NewTestament, ChapterCount: 28, SortOrder: 44},
	{ID: 45, Name: "Romans", Abbreviation: "Rom", Testament: NewTestament, ChapterCount: 16, SortOrder: 45},
	{ID: 46, Name: "1 Corinthians", Abbreviation: "1Cor", Testament: NewTestament, ChapterCount: 16, SortOrder: 46},
	{ID: 47, Name: "2 Corinthians", Abbreviation: "2Cor", Testament: NewTestament, ChapterCount: 13, SortOrder: 47},
	{ID: 48, Name: "Galatians", Abbreviation: "Gal", Testament: NewTestament, ChapterCount: 6, SortOrder: 48},
	{ID: 49, Name: "Ephesians", Abbreviation: "Eph", Testament: NewTestament, ChapterCount: 6, SortOrder: 49},
	{ID: 50, Name: "Philippians", Abbreviation: "Phil", Testament: NewTestament, ChapterCount: 4, SortOrder: 50},
	{ID: 51, Name: "Colossians", Abbreviation: "Col", Testament: NewTestament, ChapterCount: 4, SortOrder: 51},
	{ID: 58, Name: "Hebrews", Abbreviation: "Heb", Testament: NewTestament, ChapterCount: 13, SortOrder: 58},
	{ID: 59, Name: "James", Abbreviation: "Jas", Testament: NewTestament, ChapterCount: 5, SortOrder: 59},
	{ID: 60, Name: "1 Peter", Abbreviation: "1Pet", Testament: NewTestament, ChapterCount: 5, SortOrder: 60},
	{ID: 62, Name: "1 John", Abbreviation: "1John", Testament: NewTestament, ChapterCount: 5, SortOrder: 62},
	{ID: 66, Name: "Revelation", Abbreviation: "Rev", Testament: NewTestament, ChapterCount: 22, SortOrder: 66},
}

var mockVerses = []VerseWithBook{
	{Verse: Verse{ID: 1, BookID: 20, Chapter: 3, Verse: 5, Text: "Trust in the LORD with all thine heart; and lean not unto thine own understanding."}, BookName: "Proverbs", BookAbbreviation: "Prov"},
	{Verse: Verse{ID: 2, BookID: 20, Chapter: 3, Verse: 9, Text: "Honour the LORD with thy substance, and with the firstfruits of all thine increase:"}, BookName: "Proverbs", BookAbbreviation: "Prov"},
	{Verse: Verse{ID: 3, BookID: 50, Chapter: 4, Verse: 6, Text: "Be careful for nothing; but in every thing by prayer and supplication with thanksgiving let your requests be made known unto God."}, BookName: "Philippians", BookAbbreviation: "Phil"},
	{Verse: Verse{ID: 4, BookID: 50, Chapter: 4, Verse: 13, Text: "I can do all things through Christ which strengtheneth me."}, BookName: "Philippians", BookAbbreviation: "Phil"},
	{Verse: Verse{ID: 5, BookID: 40, Chapter: 6, Verse: 33, Text: "But seek ye first the kingdom of God, and his righteousness; and all these things shall be added unto you."}, BookName: "Matthew", BookAbbreviation: "Matt"},
	{Verse: Verse{ID: 6, BookID: 23, Chapter: 41, Verse: 10, Text: "Fear thou not; for I am with thee: be not dismayed; for I am thy God: I will strengthen thee; yea, I will help thee; yea, I will uphold thee with the right hand of my righteousness."}, BookName: "Isaiah", BookAbbreviation: "Isa"},
	{Verse: Verse{ID: 7, BookID: 45, Chapter: 8, Verse: 28, Text: "And we know that all things work together for good to them that love God, to them who are the called according to his purpose."}, BookName: "Romans", BookAbbreviation: "Rom"},
	{Verse: Verse{ID: 8, BookID: 19, Chapter: 23, Verse: 1, Text: "The LORD is my shepherd; I shall not want."}, BookName: "Psalms", BookAbbreviation: "Ps"},
	{Verse: Verse{ID: 9, BookID: 24, Chapter: 29, Verse: 11, Text: "For I know the thoughts that I think toward you, saith the LORD, thoughts of peace, and not of evil, to give you an expected end."}, BookName: "Jeremiah", BookAbbreviation: "Jer"},
	{Verse: Verse{ID: 10, BookID: 50, Chapter: 4, Verse: 7, Text: "And the peace of God, which passeth all understanding, shall keep your hearts and minds through Christ Jesus."}, BookName: "Philippians", BookAbbreviation: "Phil"},
	{Verse: Verse{ID: 11, BookID: 1, Chapter: 1, Verse: 1, Text: "In the beginning God created the heaven and the earth."}, BookName: "Genesis", BookAbbreviation: "Gen"},
	{Verse: Verse{ID: 12, BookID: 1, Chapter: 1, Verse: 2, Text: "And the earth was without form, and void; and darkness was upon the face of the deep. And the Spirit of God moved upon the face of the waters."}, BookName: "Genesis", BookAbbreviation: "Gen"},
	{Verse: Verse{ID: 13, BookID: 1, Chapter: 1, Verse: 3, Text: "And God said, Let there be light: and there was light."}, BookName: "Genesis", BookAbbreviation: "Gen"},
	{Verse: Verse{ID: 14, BookID: 39, Chapter: 3, Verse: 10, Text: "Bring ye all the tithes into the storehouse, that there may be meat in mine house, and prove me now herewith, saith the LORD of hosts, if I will not open you the windows of heaven, and pour you out a blessing, that there shall not be room enough to receive it."}, BookName: "Malachi", BookAbbreviation: "Mal"},
	{Verse: Verse{ID: 15, BookID: 50, Chapter: 4, Verse: 19, Text: "But my God shall supply all your need according to his riches in glory by Christ Jesus."}, BookName: "Philippians", BookAbbreviation: "Phil"},
	{Verse: Verse{ID: 16, BookID: 60, Chapter: 5, Verse: 7, Text: "Casting all your care upon him; for he careth for you."}, BookName: "1 Peter", BookAbbreviation: "1Pet"},
	{Verse: Verse{ID: 17, BookID: 45, Chapter: 10, Verse: 9, Text: "That if thou shalt confess with thy mouth the Lord Jesus, and shalt believe in thine heart that God hath raised him from the dead, thou shalt be saved."}, BookName: "Romans", BookAbbreviation: "Rom"},
	{Verse: Verse{ID: 18, BookID: 49, Chapter: 2, Verse: 8, Text: "For by grace are ye saved through faith; and that not of yourselves: it is the gift of God:"}, BookName: "Ephesians", BookAbbreviation: "Eph"},
	{Verse: Verse{ID: 19, BookID: 23, Chapter: 40, Verse: 31, Text: "But they that wait upon the LORD shall renew their strength; they shall mount up with wings as eagles; they shall run, and not be weary; and they shall walk, and not faint."}, BookName: "Isaiah", BookAbbreviation: "Isa"},
	{Verse: Verse{ID: 20, BookID: 19, Chapter: 46, Verse: 1, Text: "God is our refuge and strength, a very present help in trouble."}, BookName: "Psalms", BookAbbreviation: "Ps"},
	{Verse: Verse{ID: 26126, BookID: 43, Chapter: 3, Verse: 16, Text: "For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life."}, BookName: "John", BookAbbreviation: "John"},
}

var mockTopics = []Topic{
	{ID: 1, Name: "Finances & Wealth", Slug: "finances", Description: "Biblical wisdom for money, stewardship, and generosity", Icon: "wallet", Color: "#10B981", VerseCount: 23},
	{ID: 2, Name: "Marriage & Relationships", Slug: "marriage", Description: "Love, unity, and building strong relationships", Icon: "heart", Color: "#EC4899", VerseCount: 27},
	{ID: 3, Name: "Anxiety & Fear", Slug: "anxiety", Description: "Finding peace and overcoming worry", Icon: "shield", Color: "#8B5CF6", VerseCount: 30},
	{ID: 4, Name: "Health & Healing", Slug: "health", Description: "Physical and spiritual wellness", Icon: "activity", Color: "#06B6D4", VerseCount: 21},
	{ID: 5, Name: "Parenting & Family", Slug: "parenting", Description: "Raising children and family dynamics", Icon: "users", Color: "#F59E0B", VerseCount: 20},
	{ID: 6, Name: "Work & Career", Slug: "work", Description: "Excellence, purpose, and integrity in work", Icon: "briefcase", Color: "#3B82F6", VerseCount: 21},
	{ID: 7, Name: "Salvation & Faith", Slug: "salvation", Description: "Coming to Christ and growing in faith", Icon: "sunrise", Color: "#EF4444", VerseCount: 28},
	{ID: 8, Name: "Forgiveness", Slug: "forgiveness", Description: "Giving and receiving forgiveness", Icon: "refresh-cw", Color: "#14B8A6", VerseCount: 18},
	{ID: 9, Name: "Wisdom & Guidance", Slug: "wisdom", Description: "Decision-making and discernment", Icon: "compass", Color: "#6366F1", VerseCount: 23},
	{ID: 10, Name: "Peace & Rest", Slug: "peace", Description: "Finding calm and Sabbath rest", Icon: "cloud", Color: "#A78BFA", VerseCount: 23},
	{ID: 11, Name: "Strength & Courage", Slug: "strength", Description: "Facing challenges with boldness", Icon: "zap", Color: "#F97316", VerseCount: 20},
	{ID: 12, Name: "Prayer", Slug: "prayer", Description: "How to pray and persistence in prayer", Icon: "message-circle", Color: "#84CC16", VerseCount: 27},
}

// topic id -> tagged verse ids with relevance scores
var mockTopicVerses = map[int][]struct {
	verseID   int
	relevance float64
}{
	1:  {{2, 0.95}, {14, 0.92}, {5, 0.92}, {15, 0.88}},
	3:  {{3, 0.97}, {10, 0.94}, {16, 0.90}, {6, 0.86}},
	7:  {{26126, 0.99}, {17, 0.95}, {18, 0.93}},
	11: {{4, 0.96}, {19, 0.91}, {20, 0.91}},
}

func findMockVerse(verseID int) *VerseWithBook {
	for i := range mockVerses {
		if mockVerses[i].ID == verseID {
			v := mockVerses[i]
			return &v
		}
	}
	return nil
}

func findMockBook(bookID int) *Book {
	for i := range mockBooks {
		if mockBooks[i].ID == bookID {
			b := mockBooks[i]
			return &b
		}
	}
	return nil
}

func (m *mockRepository) GetBooks(ctx context.Context) ([]Book, error) {
	books := make([]Book, len(mockBooks))
	copy(books, mockBooks)
	sort.Slice(books, func(i, j int) bool { return books[i].SortOrder < books[j].SortOrder })
	return books, nil
}

func (m *mockRepository) GetVerses(ctx context.Context, bookID, chapter int) ([]Verse, error) {
	if findMockBook(bookID) == nil {
		return nil, fmt.Errorf("%w: book %d", ErrNotFound, bookID)
	}

	verses := []Verse{}
	for _, v := range mockVerses {
		if v.BookID == bookID && v.Chapter == chapter {
			verses = append(verses, v.Verse)
		}
	}
	sort.Slice(verses, func(i, j int) bool { return verses[i].Verse < verses[j].Verse })
	return verses, nil
}

func (m *mockRepository) GetVerse(ctx context.Context, verseID int) (*VerseWithBook, error) {
	verse := findMockVerse(verseID)
	if verse == nil {
		return nil, fmt.Errorf("%w: verse %d", ErrNotFound, verseID)
	}
	return verse, nil
}

func (m *mockRepository) GetVerseByReference(ctx context.Context, reference string) (*VerseWithBook, error) {
	parsed, err := ParseReference(reference)
	if err != nil {
		return nil, err
	}

	var book *Book
	for i := range mockBooks {
		if strings.EqualFold(mockBooks[i].Name, parsed.Book) || strings.EqualFold(mockBooks[i].Abbreviation, parsed.Book) {
			book = &mockBooks[i]
			break
		}
	}
	if book == nil {
		return nil, fmt.Errorf("%w: book %q", ErrNotFound, parsed.Book)
	}

	for _, v := range mockVerses {
		if v.BookID == book.ID && v.Chapter == parsed.Chapter && v.Verse.Verse == parsed.Verse {
			verse := v
			return &verse, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, reference)
}

func (m *mockRepository) GetRandomVerse(ctx context.Context, topicID *int) (*VerseWithBook, error) {
	if topicID == nil {
		v := mockVerses[rand.IntN(len(mockVerses))]
		return &v, nil
	}

	tagged := mockTopicVerses[*topicID]
	if len(tagged) == 0 {
		return nil, fmt.Errorf("%w: no verses for topic %d", ErrNotFound, *topicID)
	}
	pick := tagged[rand.IntN(len(tagged))]
	verse := findMockVerse(pick.verseID)
	if verse == nil {
		return nil, fmt.Errorf("%w: verse %d", ErrNotFound, pick.verseID)
	}
	return verse, nil
}

func (m *mockRepository) SearchVerses(ctx context.Context, query string, limit int) ([]VerseWithBook, error) {
	q := strings.ToLower(query)
	matches := []VerseWithBook{}
	for _, v := range mockVerses {
		if strings.Contains(strings.ToLower(v.Text), q) {
			matches = append(matches, v)
			if limit > 0 && len(matches) >= limit {
				break
			}
		}
	}
	return matches, nil
}

func (m *mockRepository) GetTopics(ctx context.Context) ([]Topic, error) {
	topics := make([]Topic, len(mockTopics))
	copy(topics, mockTopics)
	return topics, nil
}

func (m *mockRepository) GetTopicBySlug(ctx context.Context, slug string) (*Topic, error) {
	for _, t := range mockTopics {
		if t.Slug == slug {
			topic := t
			return &topic, nil
		}
	}
	return nil, fmt.Errorf("%w: topic %q", ErrNotFound, slug)
}

func (m *mockRepository) GetVersesByTopic(ctx context.Context, topicID, limit int) ([]VerseWithTopic, error) {
	verses := []VerseWithTopic{}
	for _, tagged := range mockTopicVerses[topicID] {
		verse := findMockVerse(tagged.verseID)
		if verse == nil {
			continue
		}
		verses = append(verses, VerseWithTopic{
			VerseWithBook:  *verse,
			TopicID:        topicID,
			RelevanceScore: tagged.relevance,
		})
	}

	// Descending relevance, ties by verse id ascending.
	sort.Slice(verses, func(i, j int) bool {
		if verses[i].RelevanceScore != verses[j].RelevanceScore {
			return verses[i].RelevanceScore > verses[j].RelevanceScore
		}
		return verses[i].ID < verses[j].ID
	})

	if limit > 0 && len(verses) > limit {
		verses = verses[:limit]
	}
	return verses, nil
}

func (m *mockRepository) GetVerseApplication(ctx context.Context, verseID int) (*VerseApplication, error) {
	return &VerseApplication{
		ActionSteps: []ActionStep{
			{ID: 1, VerseID: verseID, StepNumber: 1, Content: "Start each day by reading this verse and meditating on its meaning", Difficulty: DifficultyEasy},
			{ID: 2, VerseID: verseID, StepNumber: 2, Content: "Identify one area of your life where you tend to rely on your own understanding", Difficulty: DifficultyMedium},
			{ID: 3, VerseID: verseID, StepNumber: 3, Content: "Practice surrendering a difficult decision to God through prayer", Difficulty: DifficultyChallenging},
		},
		ReflectionQuestions: []ReflectionQuestion{
			{ID: 1, VerseID: verseID, Question: "What areas of your life are you trying to control without trusting God?", Category: CategoryPersonal},
			{ID: 2, VerseID: verseID, Question: "How does trusting God impact your relationships with others?", Category: CategoryRelational},
			{ID: 3, VerseID: verseID, Question: "What would it look like to fully trust God in your current situation?", Category: CategorySpiritual},
			{ID: 4, VerseID: verseID, Question: "What is one practical step you can take today to lean on God instead of your own understanding?", Category: CategoryPractical},
		},
	}, nil
}
