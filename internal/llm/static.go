package llm

import (
	"context"

	"github.com/legalmate/legalmate/internal/draft"
)

// StaticProvider assembles documents deterministically from the fixed
// bilingual skeletons. It is the default backend, the fallback when a
// remote provider fails, and the stub tests rely on.
type StaticProvider struct{}

// NewStaticProvider creates the static provider
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// Name returns the provider name
func (p *StaticProvider) Name() string {
	return "static"
}

// IsAvailable always reports true: the static provider has no dependencies
func (p *StaticProvider) IsAvailable(ctx context.Context) bool {
	return true
}

// Generate assembles the document from the request
func (p *StaticProvider) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	return &GenerateResponse{
		Document: draft.Assemble(req.Type, req.Details, req.Language, req.Clauses),
		Model:    "static",
	}, nil
}
