// Settings model shared verbatim between the facade, the persisted
// snapshot, and the host engine. All sides agree on camelCase, so there
// is no translation layer.
package settings

// Theme is the stored preference; "system" defers to the ambient
// color-scheme of the machine.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
	FontXLarge FontSize = "xlarge"
)

type LLMProvider string

const (
	ProviderLMStudio LLMProvider = "lmstudio"
	ProviderOllama   LLMProvider = "ollama"
	ProviderClaude   LLMProvider = "claude"
	ProviderOpenAI   LLMProvider = "openai"
)

type Settings struct {
	Theme             Theme       `json:"theme"`
	FontSize          FontSize    `json:"fontSize"`
	LLMProvider       LLMProvider `json:"llmProvider"`
	LLMBaseURL        string      `json:"llmBaseUrl"`
	LLMModel          string      `json:"llmModel"`
	LLMAPIKey         string      `json:"llmApiKey"`
	DailyVerseEnabled bool        `json:"dailyVerseEnabled"`
	DailyVerseTime    string      `json:"dailyVerseTime"`
}

func DefaultSettings() Settings {
	return Settings{
		Theme:             ThemeSystem,
		FontSize:          FontMedium,
		LLMProvider:       ProviderLMStudio,
		LLMBaseURL:        DefaultBaseURL(ProviderLMStudio),
		LLMModel:          "",
		LLMAPIKey:         "",
		DailyVerseEnabled: true,
		DailyVerseTime:    "07:00",
	}
}

// DefaultBaseURL is the documented default endpoint for each provider.
// A convenience default only; the field stays freely editable.
func DefaultBaseURL(provider LLMProvider) string {
	switch provider {
	case ProviderLMStudio:
		return "http://localhost:1234/v1"
	case ProviderOllama:
		return "http://localhost:11434/v1"
	case ProviderOpenAI:
		return "https://api.openai.com/v1"
	case ProviderClaude:
		return "https://api.anthropic.com"
	}
	return ""
}

// EffectiveTheme resolves the stored theme against the ambient
// color-scheme preference. Pure; derived, never the source of truth.
func EffectiveTheme(theme Theme, prefersDark bool) Theme {
	if theme == ThemeSystem {
		if prefersDark {
			return ThemeDark
		}
		return ThemeLight
	}
	return theme
}

// Update is a partial settings change. Nil fields are left untouched; a
// non-nil pointer to an empty string clears that optional field.
type Update struct {
	Theme             *Theme       `json:"theme,omitempty"`
	FontSize          *FontSize    `json:"fontSize,omitempty"`
	LLMProvider       *LLMProvider `json:"llmProvider,omitempty"`
	LLMBaseURL        *string      `json:"llmBaseUrl,omitempty"`
	LLMModel          *string      `json:"llmModel,omitempty"`
	LLMAPIKey         *string      `json:"llmApiKey,omitempty"`
	DailyVerseEnabled *bool        `json:"dailyVerseEnabled,omitempty"`
	DailyVerseTime    *string      `json:"dailyVerseTime,omitempty"`
}

// Apply overlays the update onto a full settings value.
func (u Update) Apply(s Settings) Settings {
	if u.Theme != nil {
		s.Theme = *u.Theme
	}
	if u.FontSize != nil {
		s.FontSize = *u.FontSize
	}
	if u.LLMProvider != nil {
		s.LLMProvider = *u.LLMProvider
	}
	if u.LLMBaseURL != nil {
		s.LLMBaseURL = *u.LLMBaseURL
	}
	if u.LLMModel != nil {
		s.LLMModel = *u.LLMModel
	}
	if u.LLMAPIKey != nil {
		s.LLMAPIKey = *u.LLMAPIKey
	}
	if u.DailyVerseEnabled != nil {
		s.DailyVerseEnabled = *u.DailyVerseEnabled
	}
	if u.DailyVerseTime != nil {
		s.DailyVerseTime = *u.DailyVerseTime
	}
	return s
}
