package bible

// Testament classifies a book as Old or New Testament.
type Testament string

const (
	OldTestament Testament = "OT"
	NewTestament Testament = "NT"
)

type Book struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	Testament    Testament `json:"testament"`
	ChapterCount int       `json:"chapterCount"`
	SortOrder    int       `json:"sortOrder"`
}

type Verse struct {
	ID      int    `json:"id"`
	BookID  int    `json:"bookId"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Text    string `json:"text"`
}

// VerseWithBook carries denormalized book fields so callers can render a
// verse without a second lookup.
type VerseWithBook struct {
	Verse
	BookName         string `json:"bookName"`
	BookAbbreviation string `json:"bookAbbreviation"`
}

// VerseReference identifies a reading position.
type VerseReference struct {
	BookID  int `json:"bookId"`
	Chapter int `json:"chapter"`
	Verse   int `json:"verse"`
}

type Topic struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	VerseCount  int    `json:"verseCount,omitempty"`
}

// VerseWithTopic ties a verse to a topic with an association strength in
// [0,1].
type VerseWithTopic struct {
	VerseWithBook
	TopicID        int     `json:"topicId"`
	SubtopicID     *int    `json:"subtopicId,omitempty"`
	RelevanceScore float64 `json:"relevanceScore"`
}

type Difficulty string

const (
	DifficultyEasy        Difficulty = "easy"
	DifficultyMedium      Difficulty = "medium"
	DifficultyChallenging Difficulty = "challenging"
)

type ActionStep struct {
	ID         int        `json:"id"`
	VerseID    int        `json:"verseId"`
	StepNumber int        `json:"stepNumber"`
	Content    string     `json:"content"`
	Difficulty Difficulty `json:"difficulty"`
}

type QuestionCategory string

const (
	CategoryPersonal   QuestionCategory = "personal"
	CategoryRelational QuestionCategory = "relational"
	CategorySpiritual  QuestionCategory = "spiritual"
	CategoryPractical  QuestionCategory = "practical"
)

type ReflectionQuestion struct {
	ID       int              `json:"id"`
	VerseID  int              `json:"verseId"`
	Question string           `json:"question"`
	Category QuestionCategory `json:"category"`
}

// VerseApplication bundles the per-verse application content. Both lists
// may be empty, which means "not yet generated", not an error.
type VerseApplication struct {
	ActionSteps         []ActionStep         `json:"actionSteps"`
	ReflectionQuestions []ReflectionQuestion `json:"reflectionQuestions"`
}
