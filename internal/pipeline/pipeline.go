// Package pipeline orchestrates the complete drafting process: note
// flattening, field extraction, document generation, compliance checks,
// caching, and persistence.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/legalmate/legalmate/internal/cache"
	"github.com/legalmate/legalmate/internal/clauses"
	"github.com/legalmate/legalmate/internal/draft"
	"github.com/legalmate/legalmate/internal/extract"
	"github.com/legalmate/legalmate/internal/llm"
	"github.com/legalmate/legalmate/internal/model"
	"github.com/legalmate/legalmate/internal/review"
	"github.com/legalmate/legalmate/internal/store"
)

// Pipeline orchestrates the complete draft process
type Pipeline struct {
	extractor *extract.DetailsExtractor
	provider  llm.Provider
	reviewer  *review.Reviewer
	renderer  *Renderer
	cache     cache.Cache  // nil when caching is disabled
	store     *store.Store // nil when the store is disabled
	config    *model.Config
}

// NewPipeline creates a pipeline from configuration. An unconfigured or
// failing provider falls back to the static backend so drafting always
// works offline.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize %s provider, using static: %v\n", cfg.LLM.Provider, err)
		provider = llm.NewStaticProvider()
	}

	var resultCache cache.Cache
	if cfg.Cache.Enabled {
		resultCache = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
	}

	var contractStore *store.Store
	if cfg.Store.Enabled {
		contractStore, err = store.Open(cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("open contract store: %w", err)
		}
	}

	return &Pipeline{
		extractor: extract.NewDetailsExtractor(),
		provider:  provider,
		reviewer:  review.NewReviewer(),
		renderer:  NewRenderer(cfg.Output.Verbose),
		cache:     resultCache,
		store:     contractStore,
		config:    cfg,
	}, nil
}

// Close releases pipeline resources
func (p *Pipeline) Close() error {
	if p.store != nil {
		return p.store.Close()
	}
	return nil
}

// Provider returns the active generation provider
func (p *Pipeline) Provider() llm.Provider {
	return p.provider
}

// Store returns the contract store, or nil when persistence is disabled
func (p *Pipeline) Store() *store.Store {
	return p.store
}

// DraftRequest describes one draft run
type DraftRequest struct {
	// Type selects the contract template
	Type model.ContractType

	// Language selects English or Hindi output
	Language model.Language

	// Notes is the free-form input text the fields are extracted from
	Notes string

	// HTML indicates the notes were pasted as HTML and need flattening
	HTML bool

	// ClauseIDs selects clauses by id from the builtin library or Custom
	ClauseIDs []string

	// Custom supplies user-defined clauses referenced by ClauseIDs
	Custom []model.Clause

	// Save persists the result in the contract store
	Save bool
}

// Draft runs the full drafting process and returns the complete record
func (p *Pipeline) Draft(ctx context.Context, req DraftRequest) (*model.DraftRecord, error) {
	notes := req.Notes
	if req.HTML {
		notes = extract.FlattenHTML(notes)
	}

	// 1. Extract structured fields from the notes
	details := p.extractor.Extract(notes)

	// 2. Resolve the clause selection. No selection means the full
	//    builtin library, matching the drafting form's default.
	selected := clauses.Resolve(req.ClauseIDs, req.Custom)
	if len(req.ClauseIDs) == 0 && len(req.Custom) == 0 {
		selected = clauses.Builtin()
	}
	missing := clauses.Check(selected)

	// 3. Serve identical requests from cache
	key := p.cacheKey(req, notes, selected)
	if p.cache != nil {
		if data, found := p.cache.Get(key); found {
			var record model.DraftRecord
			if err := json.Unmarshal(data, &record); err == nil {
				return &record, nil
			}
			_ = p.cache.Delete(key)
		}
	}

	// 4. Generate the document, falling back to the static provider so a
	//    remote outage never blocks drafting
	genReq := llm.GenerateRequest{
		Type:      req.Type,
		Details:   details,
		Language:  req.Language,
		Clauses:   selected,
		Model:     p.config.LLM.Model,
		MaxTokens: p.config.LLM.MaxTokens,
	}

	generator := p.provider.Name()
	resp, err := p.provider.Generate(ctx, genReq)
	if err != nil {
		if generator == "static" {
			return nil, fmt.Errorf("generate document: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Warning: %s generation failed, using static: %v\n", generator, err)
		generator = "static"
		resp, err = llm.NewStaticProvider().Generate(ctx, genReq)
		if err != nil {
			return nil, fmt.Errorf("generate document: %w", err)
		}
	}

	record := &model.DraftRecord{
		Type:      req.Type,
		Language:  req.Language,
		Document:  resp.Document,
		Summary:   draft.Summarize(req.Type, details, req.Language, selected),
		Details:   details,
		Clauses:   selected,
		Missing:   missing,
		Generator: generator,
		Model:     resp.Model,
		CreatedAt: time.Now().UTC(),
	}

	if p.cache != nil {
		if data, err := json.Marshal(record); err == nil {
			_ = p.cache.Set(key, data, 0)
		}
	}

	if req.Save {
		if p.store == nil {
			fmt.Fprintln(os.Stderr, "Warning: store is disabled, draft not saved")
		} else {
			if _, err := p.store.Save(model.SavedContract{
				Type:      record.Type,
				Language:  record.Language,
				Content:   record.Document,
				Summary:   record.Summary,
				CreatedAt: record.CreatedAt,
			}); err != nil {
				return nil, fmt.Errorf("save draft: %w", err)
			}
		}
	}

	return record, nil
}

// Review analyzes contract text for missing clauses and risky terms
func (p *Pipeline) Review(text string, html bool) model.ReviewResult {
	if html {
		text = extract.FlattenHTML(text)
	}
	return p.reviewer.Review(text)
}

// RenderDraft writes the draft artifacts to the configured outputs
func (p *Pipeline) RenderDraft(record *model.DraftRecord, textPath, jsonPath string) error {
	if textPath != "" {
		if err := p.renderer.RenderText(record, textPath); err != nil {
			return fmt.Errorf("render text: %w", err)
		}
	}

	if jsonPath != "" {
		if err := p.renderer.RenderJSON(record, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
	}

	p.renderer.RenderSummary(record)
	return nil
}

func (p *Pipeline) cacheKey(req DraftRequest, notes string, selected []model.Clause) string {
	ids := make([]string, len(selected))
	for i, c := range selected {
		ids[i] = c.ID
	}
	return cache.DraftKey(p.provider.Name(), p.config.LLM.Model, string(req.Type), string(req.Language), notes, ids)
}
