package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

const userFile = "user.json"

// HighlightColor is the fixed palette for verse highlights.
type HighlightColor string

const (
	HighlightYellow HighlightColor = "yellow"
	HighlightGreen  HighlightColor = "green"
	HighlightBlue   HighlightColor = "blue"
	HighlightPink   HighlightColor = "pink"
	HighlightOrange HighlightColor = "orange"
)

type UserHighlight struct {
	ID        string         `json:"id"`
	VerseID   int            `json:"verseId"`
	Color     HighlightColor `json:"color"`
	CreatedAt string         `json:"createdAt"`
}

type QuotaStatus struct {
	Tier            string `json:"tier"`
	QueriesUsed     int    `json:"queriesUsed"`
	QueriesLimit    int    `json:"queriesLimit"`
	TokensUsed      int    `json:"tokensUsed"`
	TokensLimit     int    `json:"tokensLimit"`
	PurchasedTokens int    `json:"purchasedTokens"`
	ResetsAt        string `json:"resetsAt"`
}

// UserStore holds the user's annotations: one highlight per verse id
// (last write wins), a favorite set, and the AI quota snapshot.
//
// The persisted format cannot hold map/set types natively, so the
// snapshot encodes the highlight map as an ordered list of
// (verseId, highlight) pairs and the favorite set as a sorted id list;
// load rebuilds the native containers. A missing or corrupt payload
// falls back to empty containers.
type UserStore struct {
	mu      sync.Mutex
	persist persister

	highlights map[int]UserHighlight
	favorites  map[int]struct{}
	quota      *QuotaStatus
}

type highlightEntry struct {
	VerseID   int           `json:"verseId"`
	Highlight UserHighlight `json:"highlight"`
}

type userSnapshot struct {
	Highlights       []highlightEntry `json:"highlights"`
	FavoriteVerseIDs []int            `json:"favoriteVerseIds"`
	Quota            *QuotaStatus     `json:"quota,omitempty"`
}

func NewUserStore(dir string) *UserStore {
	s := &UserStore{
		persist:    newPersister(dir, userFile),
		highlights: make(map[int]UserHighlight),
		favorites:  make(map[int]struct{}),
	}

	var snapshot userSnapshot
	if s.persist.load(&snapshot) {
		for _, entry := range snapshot.Highlights {
			s.highlights[entry.VerseID] = entry.Highlight
		}
		for _, id := range snapshot.FavoriteVerseIDs {
			s.favorites[id] = struct{}{}
		}
		s.quota = snapshot.Quota
	}
	return s
}

func (s *UserStore) snapshotLocked() userSnapshot {
	highlights := make([]highlightEntry, 0, len(s.highlights))
	for verseID, h := range s.highlights {
		highlights = append(highlights, highlightEntry{VerseID: verseID, Highlight: h})
	}
	sort.Slice(highlights, func(i, j int) bool { return highlights[i].VerseID < highlights[j].VerseID })

	favorites := make([]int, 0, len(s.favorites))
	for id := range s.favorites {
		favorites = append(favorites, id)
	}
	sort.Ints(favorites)

	return userSnapshot{
		Highlights:       highlights,
		FavoriteVerseIDs: favorites,
		Quota:            s.quota,
	}
}

func (s *UserStore) saveLocked() {
	s.persist.save(s.snapshotLocked())
}

// AddHighlight sets the highlight for a verse, replacing any existing
// one. Exactly one highlight per verse id at any time.
func (s *UserStore) AddHighlight(verseID int, color HighlightColor) UserHighlight {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := UserHighlight{
		ID:        uuid.NewString(),
		VerseID:   verseID,
		Color:     color,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	s.highlights[verseID] = h
	s.saveLocked()
	return h
}

func (s *UserStore) RemoveHighlight(verseID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.highlights, verseID)
	s.saveLocked()
}

func (s *UserStore) GetHighlight(verseID int) (UserHighlight, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.highlights[verseID]
	return h, ok
}

// Highlights returns every highlight ordered by verse id.
func (s *UserStore) Highlights() []UserHighlight {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]UserHighlight, 0, len(s.highlights))
	for _, h := range s.highlights {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VerseID < out[j].VerseID })
	return out
}

// ToggleFavorite flips membership and reports the new state. Calling it
// twice returns the verse to its original status.
func (s *UserStore) ToggleFavorite(verseID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.favorites[verseID]; ok {
		delete(s.favorites, verseID)
		s.saveLocked()
		return false
	}
	s.favorites[verseID] = struct{}{}
	s.saveLocked()
	return true
}

func (s *UserStore) IsFavorite(verseID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.favorites[verseID]
	return ok
}

func (s *UserStore) Favorites() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, 0, len(s.favorites))
	for id := range s.favorites {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// SetQuota replaces the quota snapshot wholesale.
func (s *UserStore) SetQuota(quota QuotaStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := quota
	s.quota = &q
	s.saveLocked()
}

func (s *UserStore) Quota() *QuotaStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quota == nil {
		return nil
	}
	q := *s.quota
	return &q
}

// DecrementQueries consumes one query from the quota. No-op when no
// quota snapshot is held.
func (s *UserStore) DecrementQueries() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quota == nil {
		return
	}
	s.quota.QueriesUsed++
	s.saveLocked()
}

// AddTokensUsed records token consumption. No-op when no quota snapshot
// is held.
func (s *UserStore) AddTokensUsed(tokens int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quota == nil {
		return
	}
	s.quota.TokensUsed += tokens
	s.saveLocked()
}

// Reset wipes all user state and its snapshot.
func (s *UserStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.highlights = make(map[int]UserHighlight)
	s.favorites = make(map[int]struct{})
	s.quota = nil
	s.persist.remove()
}
