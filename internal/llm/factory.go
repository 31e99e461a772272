package llm

import (
	"fmt"
	"strings"
)

// NewProvider creates a generation provider based on configuration. An
// empty provider name selects the static backend, so drafting always works
// without any remote service configured.
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "", "static":
		return NewStaticProvider(), nil

	case "openai":
		return NewOpenAIProvider(config)

	case "ollama":
		return NewOllamaProvider(config)

	default:
		return nil, fmt.Errorf("unknown generation provider: %s (supported: static, openai, ollama)", config.Provider)
	}
}
