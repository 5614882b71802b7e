package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/versepath/scripture-companion/internal/bible"
	"github.com/versepath/scripture-companion/internal/settings"
)

func TestSettingsStoreDefaults(t *testing.T) {
	s := NewSettingsStore(t.TempDir())

	snap := s.Snapshot()
	assert.Equal(t, settings.DefaultSettings(), snap)
	assert.Equal(t, settings.ThemeLight, s.EffectiveTheme(), "system theme resolves light by default")
}

func TestSettingsStoreSystemPrefersDark(t *testing.T) {
	s := NewSettingsStore(t.TempDir(),
		WithSystemPrefersDark(func() bool { return true }))

	assert.Equal(t, settings.ThemeDark, s.EffectiveTheme())

	// An explicit choice overrides the ambient preference.
	s.SetTheme(settings.ThemeLight)
	assert.Equal(t, settings.ThemeLight, s.EffectiveTheme())
}

func TestSettingsStoreAppliesThemeOnLoad(t *testing.T) {
	dir := t.TempDir()
	first := NewSettingsStore(dir)
	first.SetTheme(settings.ThemeDark)

	var applied []settings.Theme
	NewSettingsStore(dir, WithThemeApplier(func(theme settings.Theme) {
		applied = append(applied, theme)
	}))

	require.NotEmpty(t, applied, "theme hook must fire during construction")
	assert.Equal(t, settings.ThemeDark, applied[0])
}

func TestSettingsStoreUpdateLeavesOthersUntouched(t *testing.T) {
	s := NewSettingsStore(t.TempDir(),
		WithSystemPrefersDark(func() bool { return true }))

	dark := settings.ThemeDark
	s.UpdateSettings(settings.Update{Theme: &dark})

	snap := s.Snapshot()
	assert.Equal(t, settings.ThemeDark, snap.Theme)
	assert.Equal(t, settings.ThemeDark, s.EffectiveTheme())

	want := settings.DefaultSettings()
	want.Theme = settings.ThemeDark
	assert.Equal(t, want, snap)
}

func TestSetLLMProviderResetsBaseURL(t *testing.T) {
	s := NewSettingsStore(t.TempDir())
	s.SetLLMBaseURL("http://my-box:9999/v1")

	s.SetLLMProvider(settings.ProviderOllama)
	snap := s.Snapshot()
	assert.Equal(t, settings.ProviderOllama, snap.LLMProvider)
	assert.Equal(t, "http://localhost:11434/v1", snap.LLMBaseURL)

	// A manual URL edit sticks through unrelated changes.
	s.SetLLMBaseURL("http://my-box:9999/v1")
	s.SetFontSize(settings.FontLarge)
	s.SetLLMModel("llama3")
	assert.Equal(t, "http://my-box:9999/v1", s.Snapshot().LLMBaseURL)
}

func TestSettingsStorePersistence(t *testing.T) {
	dir := t.TempDir()

	s := NewSettingsStore(dir)
	s.SetTheme(settings.ThemeDark)
	s.SetLLMProvider(settings.ProviderClaude)
	s.SetLLMAPIKey("sk-ant-test")
	s.SetDailyVerseTime("06:30")

	reloaded := NewSettingsStore(dir)
	snap := reloaded.Snapshot()
	assert.Equal(t, settings.ThemeDark, snap.Theme)
	assert.Equal(t, settings.ProviderClaude, snap.LLMProvider)
	assert.Equal(t, "https://api.anthropic.com", snap.LLMBaseURL)
	assert.Equal(t, "sk-ant-test", snap.LLMAPIKey)
	assert.Equal(t, "06:30", snap.DailyVerseTime)
	assert.Equal(t, settings.ThemeDark, reloaded.EffectiveTheme())
}

func TestSettingsStoreDailyVerse(t *testing.T) {
	s := NewSettingsStore(t.TempDir())

	enabled, timeOfDay := s.DailyVerse()
	assert.True(t, enabled)
	assert.Equal(t, "07:00", timeOfDay)

	assert.False(t, s.ToggleDailyVerse())
	enabled, _ = s.DailyVerse()
	assert.False(t, enabled)
}

func TestSettingsStoreReset(t *testing.T) {
	dir := t.TempDir()
	s := NewSettingsStore(dir)
	s.SetTheme(settings.ThemeDark)

	s.Reset()
	assert.Equal(t, settings.DefaultSettings(), s.Snapshot())
	assert.Equal(t, settings.ThemeLight, s.EffectiveTheme())

	reloaded := NewSettingsStore(dir)
	assert.Equal(t, settings.DefaultSettings(), reloaded.Snapshot())
}

func TestResetAll(t *testing.T) {
	dir := t.TempDir()
	nav := NewNavigationStore(dir)
	user := NewUserStore(dir)
	prefs := NewSettingsStore(dir)

	nav.AddToHistory(bible.VerseReference{BookID: 43, Chapter: 3, Verse: 16})
	user.ToggleFavorite(26126)
	prefs.SetTheme(settings.ThemeDark)

	ResetAll(nav, user, prefs)

	assert.Empty(t, nav.History())
	assert.Empty(t, user.Favorites())
	assert.Equal(t, settings.DefaultSettings(), prefs.Snapshot())
}
