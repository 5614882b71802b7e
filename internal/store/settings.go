package store

import (
	"sync"

	"github.com/versepath/scripture-companion/internal/settings"
)

const settingsFile = "settings.json"

// SettingsStore holds display and AI-provider preferences plus the
// derived effective theme. The effective theme is never persisted; it is
// recomputed from the stored theme and the ambient preference, including
// at load time so the right theme is applied before anything renders.
type SettingsStore struct {
	mu      sync.Mutex
	persist persister

	current        settings.Settings
	effectiveTheme settings.Theme

	prefersDark func() bool
	applyTheme  func(settings.Theme)
}

// SettingsStoreOption configures a SettingsStore.
type SettingsStoreOption func(*SettingsStore)

// WithSystemPrefersDark injects the ambient color-scheme probe.
func WithSystemPrefersDark(fn func() bool) SettingsStoreOption {
	return func(s *SettingsStore) { s.prefersDark = fn }
}

// WithThemeApplier registers the hook invoked whenever the effective
// theme may have changed.
func WithThemeApplier(fn func(settings.Theme)) SettingsStoreOption {
	return func(s *SettingsStore) { s.applyTheme = fn }
}

func NewSettingsStore(dir string, opts ...SettingsStoreOption) *SettingsStore {
	s := &SettingsStore{
		persist:     newPersister(dir, settingsFile),
		current:     settings.DefaultSettings(),
		prefersDark: func() bool { return false },
	}
	for _, opt := range opts {
		opt(s)
	}

	var persisted settings.Settings
	if s.persist.load(&persisted) {
		s.current = persisted
	}

	// Apply the derived theme before first use to avoid a flash of the
	// wrong theme after restart.
	s.effectiveTheme = settings.EffectiveTheme(s.current.Theme, s.prefersDark())
	if s.applyTheme != nil {
		s.applyTheme(s.effectiveTheme)
	}
	return s
}

// refreshThemeLocked recomputes the effective theme and returns the hook
// to invoke once the lock is released.
func (s *SettingsStore) refreshThemeLocked() func() {
	s.effectiveTheme = settings.EffectiveTheme(s.current.Theme, s.prefersDark())
	if s.applyTheme == nil {
		return func() {}
	}
	theme := s.effectiveTheme
	apply := s.applyTheme
	return func() { apply(theme) }
}

func (s *SettingsStore) SetTheme(theme settings.Theme) {
	s.mu.Lock()
	s.current.Theme = theme
	apply := s.refreshThemeLocked()
	s.persist.save(s.current)
	s.mu.Unlock()
	apply()
}

func (s *SettingsStore) SetFontSize(size settings.FontSize) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.FontSize = size
	s.persist.save(s.current)
}

// SetLLMProvider switches providers and resets the base URL to that
// provider's default endpoint. The URL stays freely editable afterwards.
func (s *SettingsStore) SetLLMProvider(provider settings.LLMProvider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.LLMProvider = provider
	s.current.LLMBaseURL = settings.DefaultBaseURL(provider)
	s.persist.save(s.current)
}

func (s *SettingsStore) SetLLMBaseURL(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.LLMBaseURL = url
	s.persist.save(s.current)
}

func (s *SettingsStore) SetLLMModel(model string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.LLMModel = model
	s.persist.save(s.current)
}

func (s *SettingsStore) SetLLMAPIKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.LLMAPIKey = key
	s.persist.save(s.current)
}

func (s *SettingsStore) ToggleDailyVerse() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.DailyVerseEnabled = !s.current.DailyVerseEnabled
	s.persist.save(s.current)
	return s.current.DailyVerseEnabled
}

func (s *SettingsStore) SetDailyVerseTime(timeOfDay string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.DailyVerseTime = timeOfDay
	s.persist.save(s.current)
}

// UpdateSettings overlays a partial update and recomputes the derived
// theme synchronously.
func (s *SettingsStore) UpdateSettings(update settings.Update) {
	s.mu.Lock()
	s.current = update.Apply(s.current)
	apply := s.refreshThemeLocked()
	s.persist.save(s.current)
	s.mu.Unlock()
	apply()
}

// Replace installs a full settings snapshot, e.g. the merged result of a
// facade read-merge-write.
func (s *SettingsStore) Replace(next settings.Settings) {
	s.mu.Lock()
	s.current = next
	apply := s.refreshThemeLocked()
	s.persist.save(s.current)
	s.mu.Unlock()
	apply()
}

func (s *SettingsStore) Snapshot() settings.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *SettingsStore) EffectiveTheme() settings.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.effectiveTheme
}

// DailyVerse reports the daily-verse preferences for the scheduler.
func (s *SettingsStore) DailyVerse() (enabled bool, timeOfDay string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.DailyVerseEnabled, s.current.DailyVerseTime
}

// Reset restores defaults and removes the snapshot.
func (s *SettingsStore) Reset() {
	s.mu.Lock()
	s.current = settings.DefaultSettings()
	apply := s.refreshThemeLocked()
	s.persist.remove()
	s.mu.Unlock()
	apply()
}
