package settings

type AppSettings struct {
	OpenAIAPIKey string `json:"openaiApiKey,omitempty"`
}

// APIKeyView is the settings screen's view of the stored key.
type APIKeyView struct {
	Configured bool   `json:"configured"`
	APIKey     string `json:"apiKey,omitempty"`
}
