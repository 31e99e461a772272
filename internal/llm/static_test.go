package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/legalmate/legalmate/internal/draft"
	"github.com/legalmate/legalmate/internal/model"
)

func testRequest() GenerateRequest {
	return GenerateRequest{
		Type: model.TypeNDA,
		Details: model.ContractDetails{
			EffectiveDate:  "January 5, 2025",
			PartyA:         "ABC Corp",
			PartyB:         "XYZ Ltd",
			Duration:       "6 months",
			DurationMonths: 6,
			EndDate:        "July 5, 2025",
			PaymentTerms:   "Net 30 days",
		},
		Language: model.LanguageEnglish,
		Clauses: []model.Clause{
			{ID: "confidentiality", Title: "Confidentiality", Content: "Keep it secret."},
		},
	}
}

func TestStaticProvider_Deterministic(t *testing.T) {
	provider := NewStaticProvider()
	req := testRequest()

	first, err := provider.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := provider.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if first.Document != second.Document {
		t.Error("expected identical documents for identical requests")
	}

	want := draft.Assemble(req.Type, req.Details, req.Language, req.Clauses)
	if first.Document != want {
		t.Error("expected static provider output to match document assembly")
	}
}

func TestStaticProvider_Metadata(t *testing.T) {
	provider := NewStaticProvider()

	if provider.Name() != "static" {
		t.Errorf("expected name 'static', got %q", provider.Name())
	}
	if !provider.IsAvailable(context.Background()) {
		t.Error("expected static provider to always be available")
	}

	resp, err := provider.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if resp.Model != "static" {
		t.Errorf("expected model 'static', got %q", resp.Model)
	}
	if resp.TokensUsed != 0 {
		t.Errorf("expected no token usage, got %d", resp.TokensUsed)
	}
}

func TestStaticProvider_DocumentShape(t *testing.T) {
	provider := NewStaticProvider()

	resp, err := provider.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !strings.HasPrefix(resp.Document, "[Non-Disclosure Agreement (NDA)]") {
		t.Error("expected bracketed title as first line")
	}
	if !strings.Contains(resp.Document, "1. CONFIDENTIALITY") {
		t.Error("expected numbered clause block")
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(testRequest())

	for _, want := range []string{
		"[Non-Disclosure Agreement (NDA)]",
		"Party A: ABC Corp",
		"Party B: XYZ Ltd",
		"6 months",
		"Net 30 days",
		"Confidentiality",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to mention %q", want)
		}
	}
}

func TestBuildPrompt_Hindi(t *testing.T) {
	req := testRequest()
	req.Language = model.LanguageHindi

	prompt := BuildPrompt(req)
	if !strings.Contains(prompt, "in Hindi") {
		t.Error("expected Hindi language instruction")
	}
}

func TestEnsureTitled(t *testing.T) {
	doc := ensureTitled("Some body text", model.TypeNDA)
	if !strings.HasPrefix(doc, "[Non-Disclosure Agreement (NDA)]\n\n") {
		t.Errorf("expected title prepended, got %q", doc)
	}

	titled := "[Service Agreement]\nbody"
	if got := ensureTitled(titled, model.TypeService); got != titled {
		t.Errorf("expected already-titled document unchanged, got %q", got)
	}
}
