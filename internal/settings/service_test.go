package settings

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func themePtr(t Theme) *Theme            { return &t }
func strPtr(s string) *string            { return &s }
func boolPtr(b bool) *bool               { return &b }
func provPtr(p LLMProvider) *LLMProvider { return &p }

func TestDefaultSettings(t *testing.T) {
	def := DefaultSettings()
	assert.Equal(t, ThemeSystem, def.Theme)
	assert.Equal(t, FontMedium, def.FontSize)
	assert.Equal(t, ProviderLMStudio, def.LLMProvider)
	assert.Equal(t, "http://localhost:1234/v1", def.LLMBaseURL)
	assert.True(t, def.DailyVerseEnabled)
	assert.Equal(t, "07:00", def.DailyVerseTime)
}

func TestDefaultBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:1234/v1", DefaultBaseURL(ProviderLMStudio))
	assert.Equal(t, "http://localhost:11434/v1", DefaultBaseURL(ProviderOllama))
	assert.Equal(t, "https://api.openai.com/v1", DefaultBaseURL(ProviderOpenAI))
	assert.Equal(t, "https://api.anthropic.com", DefaultBaseURL(ProviderClaude))
	assert.Equal(t, "", DefaultBaseURL(LLMProvider("unknown")))
}

func TestEffectiveTheme(t *testing.T) {
	assert.Equal(t, ThemeDark, EffectiveTheme(ThemeDark, false))
	assert.Equal(t, ThemeLight, EffectiveTheme(ThemeLight, true))
	assert.Equal(t, ThemeDark, EffectiveTheme(ThemeSystem, true))
	assert.Equal(t, ThemeLight, EffectiveTheme(ThemeSystem, false))
}

func TestUpdateApply(t *testing.T) {
	base := DefaultSettings()

	merged := Update{Theme: themePtr(ThemeDark)}.Apply(base)
	assert.Equal(t, ThemeDark, merged.Theme)

	// Everything else stays put.
	merged.Theme = base.Theme
	assert.Equal(t, base, merged)
}

func TestUpdateApplyClearsWithEmptyString(t *testing.T) {
	base := DefaultSettings()
	base.LLMAPIKey = "sk-secret"
	base.LLMModel = "llama3"

	merged := Update{LLMAPIKey: strPtr("")}.Apply(base)
	assert.Equal(t, "", merged.LLMAPIKey, "explicit empty string clears the field")
	assert.Equal(t, "llama3", merged.LLMModel, "absent field is untouched")
}

func TestUpdateJSONDistinguishesAbsentFromEmpty(t *testing.T) {
	var absent Update
	require.NoError(t, json.Unmarshal([]byte(`{"theme":"dark"}`), &absent))
	assert.Nil(t, absent.LLMAPIKey)

	var cleared Update
	require.NoError(t, json.Unmarshal([]byte(`{"llmApiKey":""}`), &cleared))
	require.NotNil(t, cleared.LLMAPIKey)
	assert.Equal(t, "", *cleared.LLMAPIKey)
}

func TestMockServiceReadMergeWrite(t *testing.T) {
	svc := NewMockService()
	ctx := context.Background()

	require.NoError(t, svc.UpdateSettings(ctx, Update{
		Theme:       themePtr(ThemeDark),
		LLMProvider: provPtr(ProviderOllama),
	}))
	require.NoError(t, svc.UpdateSettings(ctx, Update{
		DailyVerseEnabled: boolPtr(false),
	}))

	got, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, got.Theme, "earlier update survives a later partial one")
	assert.Equal(t, ProviderOllama, got.LLMProvider)
	assert.False(t, got.DailyVerseEnabled)
	assert.Equal(t, FontMedium, got.FontSize, "untouched fields keep defaults")
}
