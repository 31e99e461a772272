package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/legalmate/legalmate/internal/model"
)

func testConfig(t *testing.T) *model.Config {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Dir = filepath.Join(t.TempDir(), "cache")
	cfg.Store.Enabled = true
	cfg.Store.Path = ":memory:"
	return cfg
}

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	p, err := NewPipeline(testConfig(t))
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	t.Cleanup(func() { p.Close() })
	return p
}

const testNotes = "Party A: ABC Corp\nParty B: XYZ Ltd\nDuration: 6 months\nPayment Terms: Net 30 days"

func TestPipeline_Draft(t *testing.T) {
	p := newTestPipeline(t)

	record, err := p.Draft(context.Background(), DraftRequest{
		Type:     model.TypeNDA,
		Language: model.LanguageEnglish,
		Notes:    testNotes,
	})
	if err != nil {
		t.Fatalf("Draft failed: %v", err)
	}

	if record.Details.PartyA != "ABC Corp" {
		t.Errorf("expected PartyA extracted, got %q", record.Details.PartyA)
	}
	if record.Details.Duration != "6 months" {
		t.Errorf("expected duration extracted, got %q", record.Details.Duration)
	}
	if !strings.HasPrefix(record.Document, "[Non-Disclosure Agreement (NDA)]") {
		t.Error("expected titled document")
	}
	if record.Generator != "static" {
		t.Errorf("expected static generator, got %q", record.Generator)
	}
	if record.Summary == "" {
		t.Error("expected a summary")
	}
	if record.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestPipeline_DraftDefaultsToFullClauseLibrary(t *testing.T) {
	p := newTestPipeline(t)

	record, err := p.Draft(context.Background(), DraftRequest{
		Type:     model.TypeService,
		Language: model.LanguageEnglish,
		Notes:    testNotes,
	})
	if err != nil {
		t.Fatalf("Draft failed: %v", err)
	}

	if len(record.Clauses) != 4 {
		t.Errorf("expected all builtin clauses by default, got %d", len(record.Clauses))
	}
	if len(record.Missing) != 0 {
		t.Errorf("expected no missing clauses with full library, got %v", record.Missing)
	}
}

func TestPipeline_DraftReportsMissingClauses(t *testing.T) {
	p := newTestPipeline(t)

	record, err := p.Draft(context.Background(), DraftRequest{
		Type:      model.TypeNDA,
		Language:  model.LanguageEnglish,
		Notes:     testNotes,
		ClauseIDs: []string{"confidentiality"},
	})
	if err != nil {
		t.Fatalf("Draft failed: %v", err)
	}

	want := []string{"Termination", "Governing Law"}
	if len(record.Missing) != len(want) {
		t.Fatalf("expected %d missing clauses, got %v", len(want), record.Missing)
	}
	for i, title := range want {
		if record.Missing[i] != title {
			t.Errorf("missing[%d]: expected %q, got %q", i, title, record.Missing[i])
		}
	}
}

func TestPipeline_DraftFlattensHTML(t *testing.T) {
	p := newTestPipeline(t)

	html := "<div><p>Party A: ABC Corp</p><p>Party B: XYZ Ltd</p></div>"
	record, err := p.Draft(context.Background(), DraftRequest{
		Type:     model.TypeNDA,
		Language: model.LanguageEnglish,
		Notes:    html,
		HTML:     true,
	})
	if err != nil {
		t.Fatalf("Draft failed: %v", err)
	}

	if record.Details.PartyA != "ABC Corp" {
		t.Errorf("expected PartyA from HTML notes, got %q", record.Details.PartyA)
	}
	if record.Details.PartyB != "XYZ Ltd" {
		t.Errorf("expected PartyB from HTML notes, got %q", record.Details.PartyB)
	}
}

func TestPipeline_DraftUsesCache(t *testing.T) {
	p := newTestPipeline(t)
	req := DraftRequest{Type: model.TypeNDA, Language: model.LanguageEnglish, Notes: testNotes}

	first, err := p.Draft(context.Background(), req)
	if err != nil {
		t.Fatalf("Draft failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	second, err := p.Draft(context.Background(), req)
	if err != nil {
		t.Fatalf("Draft failed: %v", err)
	}

	// The cached record keeps the original timestamp
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Error("expected second draft served from cache")
	}
	if second.Document != first.Document {
		t.Error("expected identical documents from cache")
	}
}

func TestPipeline_DraftSaves(t *testing.T) {
	p := newTestPipeline(t)

	_, err := p.Draft(context.Background(), DraftRequest{
		Type:     model.TypeLease,
		Language: model.LanguageHindi,
		Notes:    testNotes,
		Save:     true,
	})
	if err != nil {
		t.Fatalf("Draft failed: %v", err)
	}

	saved, err := p.Store().List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("expected 1 saved contract, got %d", len(saved))
	}
	if saved[0].Type != model.TypeLease {
		t.Errorf("expected lease contract, got %s", saved[0].Type)
	}
	if saved[0].Language != model.LanguageHindi {
		t.Errorf("expected hindi contract, got %s", saved[0].Language)
	}
}

func TestPipeline_Review(t *testing.T) {
	p := newTestPipeline(t)

	result := p.Review("The vendor accepts unlimited liability.", false)
	if len(result.RiskyTerms) == 0 {
		t.Error("expected risky terms flagged")
	}

	htmlResult := p.Review("<p>unlimited liability</p><script>ignored()</script>", true)
	if len(htmlResult.RiskyTerms) == 0 {
		t.Error("expected risky terms flagged in HTML input")
	}
}

func TestPipeline_RenderDraft(t *testing.T) {
	p := newTestPipeline(t)

	record, err := p.Draft(context.Background(), DraftRequest{
		Type:     model.TypeNDA,
		Language: model.LanguageEnglish,
		Notes:    testNotes,
	})
	if err != nil {
		t.Fatalf("Draft failed: %v", err)
	}

	dir := t.TempDir()
	textPath := filepath.Join(dir, "out", "contract.txt")
	jsonPath := filepath.Join(dir, "out", "contract.json")

	if err := p.RenderDraft(record, textPath, jsonPath); err != nil {
		t.Fatalf("RenderDraft failed: %v", err)
	}

	text, err := os.ReadFile(textPath)
	if err != nil {
		t.Fatalf("read text artifact: %v", err)
	}
	if !strings.Contains(string(text), record.Document) {
		t.Error("expected text artifact to contain the document")
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("read JSON artifact: %v", err)
	}
	var decoded model.DraftRecord
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode JSON artifact: %v", err)
	}
	if decoded.Document != record.Document {
		t.Error("expected JSON artifact to round-trip the document")
	}
}
