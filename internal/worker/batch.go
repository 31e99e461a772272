package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/legalmate/legalmate/internal/model"
	"github.com/legalmate/legalmate/internal/pipeline"
)

// Drafter defines the interface for drafting one contract
type Drafter interface {
	Draft(ctx context.Context, req pipeline.DraftRequest) (*model.DraftRecord, error)
}

// DraftOptions are the per-batch settings shared by every job
type DraftOptions struct {
	Type      model.ContractType
	Language  model.Language
	ClauseIDs []string
	Custom    []model.Clause
	HTML      bool
	Save      bool
}

// DraftJob drafts one contract from a notes file
type DraftJob struct {
	Path     string
	Options  DraftOptions
	Drafter  Drafter
	Limiter  *Limiter
	Endpoint string // rate-limit key; empty skips throttling
}

// Execute executes the draft job
func (j *DraftJob) Execute(ctx context.Context) Result {
	notes, err := os.ReadFile(j.Path)
	if err != nil {
		return &DraftResult{Path: j.Path, Error: fmt.Errorf("read notes: %w", err)}
	}

	if j.Limiter != nil && j.Endpoint != "" {
		if err := j.Limiter.Wait(ctx, j.Endpoint); err != nil {
			return &DraftResult{Path: j.Path, Error: err}
		}
	}

	html := j.Options.HTML || strings.HasSuffix(j.Path, ".html")

	record, err := j.Drafter.Draft(ctx, pipeline.DraftRequest{
		Type:      j.Options.Type,
		Language:  j.Options.Language,
		Notes:     string(notes),
		HTML:      html,
		ClauseIDs: j.Options.ClauseIDs,
		Custom:    j.Options.Custom,
		Save:      j.Options.Save,
	})
	if err != nil {
		return &DraftResult{Path: j.Path, Error: err}
	}

	return &DraftResult{Path: j.Path, Record: record}
}

// DraftResult represents the result of a draft job
type DraftResult struct {
	Path   string
	Record *model.DraftRecord
	Error  error
}

// GetError returns the error from the draft result
func (r *DraftResult) GetError() error {
	return r.Error
}

// BatchProcessor drafts contracts from multiple note files concurrently
type BatchProcessor struct {
	drafter     Drafter
	limiter     *Limiter
	endpoint    string
	concurrency int
}

// NewBatchProcessor creates a new batch processor. The endpoint names the
// remote generation API for rate limiting; pass "" for local providers.
func NewBatchProcessor(drafter Drafter, limiter *Limiter, endpoint string, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		drafter:     drafter,
		limiter:     limiter,
		endpoint:    endpoint,
		concurrency: concurrency,
	}
}

// ProcessFiles drafts one contract per notes file concurrently
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string, opts DraftOptions) []*DraftResult {
	if len(paths) == 0 {
		return []*DraftResult{}
	}

	pool := NewPoolContext(ctx, b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&DraftJob{
			Path:     path,
			Options:  opts,
			Drafter:  b.drafter,
			Limiter:  b.limiter,
			Endpoint: b.endpoint,
		})
	}

	results := pool.Wait()

	draftResults := make([]*DraftResult, len(results))
	for i, result := range results {
		draftResults[i] = result.(*DraftResult)
	}

	return draftResults
}

// ProcessDir drafts contracts from every notes file in a directory
func (b *BatchProcessor) ProcessDir(ctx context.Context, dir string, opts DraftOptions) ([]*DraftResult, error) {
	paths, err := ListNoteFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return b.ProcessFiles(ctx, paths, opts), nil
}

// ListNoteFiles returns the note files in a directory, sorted by name.
// Recognized extensions are .txt, .md, and .html.
func ListNoteFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".txt", ".md", ".html":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}
