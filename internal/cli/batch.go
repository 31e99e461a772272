package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/legalmate/legalmate/internal/model"
	"github.com/legalmate/legalmate/internal/pipeline"
	"github.com/legalmate/legalmate/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <notes-dir>",
	Short: "Draft contracts from a directory of note files in parallel",
	Long: `Batch drafts one contract per notes file concurrently:
- Read every .txt, .md, and .html file from the input directory
- Draft contracts in parallel with a configurable worker count
- Remote generation endpoints are rate limited across workers
- Write a contract and JSON record per input file

Example:
  legalmate batch ./notes --type nda
  legalmate batch ./notes --type service --concurrency 8 --output-dir ./contracts
  legalmate batch ./notes --type lease --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./legalmate-contracts", "output directory for contracts")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Shared drafting flags
	batchCmd.Flags().StringVarP(&contractType, "type", "t", "nda", "contract type (nda, service, lease)")
	batchCmd.Flags().StringVarP(&language, "language", "l", "english", "output language (english, hindi)")
	batchCmd.Flags().StringSliceVar(&clauseIDs, "clauses", nil, "clause ids to include (default: full builtin library)")
	batchCmd.Flags().BoolVar(&saveDraft, "save", false, "save each draft in the contract store")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the draft cache")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM document generation")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cType, ok := model.ParseContractType(contractType)
	if !ok {
		return fmt.Errorf("unknown contract type: %q (supported: nda, service, lease)", contractType)
	}
	lang, ok := model.ParseLanguage(language)
	if !ok {
		return fmt.Errorf("unknown language: %q (supported: english, hindi)", language)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Store.Enabled = cfg.Store.Enabled || saveDraft
	cfg.Concurrency.Workers = concurrency

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input dir:    %s\n", dir)
	fmt.Fprintf(os.Stderr, "  Type:         %s (%s)\n", cType, lang)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	if llmEnabled {
		fmt.Fprintf(os.Stderr, "  LLM:          %s/%s\n", llmProvider, cfg.LLM.Model)
	}
	fmt.Fprintf(os.Stderr, "\n")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	// Throttle only remote generation endpoints
	var limiter *worker.Limiter
	endpoint := ""
	if name := p.Provider().Name(); name != "static" {
		limiter = worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)
		endpoint = name
	}

	processor := worker.NewBatchProcessor(p, limiter, endpoint, concurrency)

	results, err := processor.ProcessDir(ctx, dir, worker.DraftOptions{
		Type:      cType,
		Language:  lang,
		ClauseIDs: clauseIDs,
		Save:      saveDraft,
	})
	if err != nil {
		return fmt.Errorf("process dir: %w", err)
	}

	renderer := pipeline.NewRenderer(verbose)
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		base := strings.TrimSuffix(filepath.Base(result.Path), filepath.Ext(result.Path))
		textPath := filepath.Join(outputDir, base+".txt")
		jsonPath := filepath.Join(outputDir, base+".json")

		if err := renderer.RenderText(result.Record, textPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write contract: %v\n", result.Path, err)
			continue
		}
		if err := renderer.RenderJSON(result.Record, jsonPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write record: %v\n", result.Path, err)
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "✓ %s → %s\n", result.Path, textPath)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d files\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}
