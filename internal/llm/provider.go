package llm

import (
	"context"
	"fmt"

	"github.com/legalmate/legalmate/internal/model"
)

// Provider defines the interface for contract generation backends. The
// static provider assembles documents from the fixed skeletons; remote
// providers draft the same document shape with a language model.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Generate drafts a contract document for the request
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// GenerateRequest contains the input for contract generation
type GenerateRequest struct {
	// Type selects the contract title/template
	Type model.ContractType

	// Details is the structured record extracted from the user's notes
	Details model.ContractDetails

	// Language selects English or Hindi output
	Language model.Language

	// Clauses is the ordered clause selection to include
	Clauses []model.Clause

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// GenerateResponse contains the generated document
type GenerateResponse struct {
	// Document is the full assembled contract text
	Document string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption (0 for the static provider)
	TokensUsed int
}

// Config holds generation provider configuration
type Config struct {
	// Provider name: "static", "openai", "ollama"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "static",
		Timeout:   30,
		MaxTokens: 2000,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	return Config{
		Provider:  modelConfig.Provider,
		Model:     modelConfig.Model,
		APIKey:    modelConfig.APIKey,
		BaseURL:   modelConfig.BaseURL,
		Timeout:   modelConfig.Timeout,
		MaxTokens: modelConfig.MaxTokens,
	}
}

// BuildPrompt constructs the default drafting prompt for a request. The
// document shape is pinned down so the output stays compatible with the
// downstream PDF heading heuristics.
func BuildPrompt(req GenerateRequest) string {
	languageName := "English"
	if req.Language == model.LanguageHindi {
		languageName = "Hindi"
	}

	prompt := fmt.Sprintf(`You are drafting a %s in %s.

STRUCTURE RULES:
1. The first line must be the title in square brackets: [%s]
2. Section headers must be in UPPER CASE (e.g., TERMS AND CONDITIONS).
3. Include "Party A:" and "Party B:" label lines in the header block.
4. End with a signature block and a "Date of Signature:" line.
5. Output plain text only - no markdown, no commentary.

CONTRACT DETAILS:
- Effective date: %s
`, req.Type.Label(), languageName, req.Type.Label(), req.Details.EffectiveDate)

	if req.Details.PartyA != "" {
		prompt += fmt.Sprintf("- Party A: %s\n", req.Details.PartyA)
	}
	if req.Details.PartyB != "" {
		prompt += fmt.Sprintf("- Party B: %s\n", req.Details.PartyB)
	}
	if req.Details.Duration != "" {
		prompt += fmt.Sprintf("- Duration: %s (terminates %s)\n", req.Details.Duration, req.Details.EndDate)
	}
	if req.Details.PaymentTerms != "" {
		prompt += fmt.Sprintf("- Payment terms: %s\n", req.Details.PaymentTerms)
	}

	if len(req.Clauses) > 0 {
		prompt += "\nInclude these clauses as a numbered list, each title in upper case:\n"
		for i, clause := range req.Clauses {
			prompt += fmt.Sprintf("%d. %s: %s\n", i+1, clause.Title, clause.Content)
		}
	}

	prompt += "\nDraft the complete contract now."
	return prompt
}

// ensureTitled guarantees a generated document starts with the bracketed
// title line the document shape requires
func ensureTitled(doc string, contractType model.ContractType) string {
	if len(doc) > 0 && doc[0] == '[' {
		return doc
	}
	return "[" + contractType.Label() + "]\n\n" + doc
}
