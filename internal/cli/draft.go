package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/legalmate/legalmate/internal/clauses"
	"github.com/legalmate/legalmate/internal/model"
	"github.com/legalmate/legalmate/internal/pipeline"
)

var (
	contractType string
	language     string
	clauseIDs    []string
	clauseFile   string
	outText      string
	outJSON      string
	saveDraft    bool
	htmlNotes    bool
	noCache      bool
	llmEnabled   bool
	llmProvider  string
	llmModel     string
	draftTimeout time.Duration
)

// draftCmd represents the draft command
var draftCmd = &cobra.Command{
	Use:   "draft <notes-file>",
	Short: "Draft a contract from plain-language notes",
	Long: `Draft reads free-form notes, extracts the contract details
(parties, duration, payment terms), and assembles a complete contract:
- Choose nda, service, or lease with --type
- Choose english or hindi output with --language
- Select clauses by id with --clauses, or load custom ones with --clause-file
- Pass "-" to read notes from stdin

Example:
  legalmate draft notes.txt --type nda
  legalmate draft notes.txt --type service --language hindi --out contract.txt
  legalmate draft notes.txt --type nda --clauses confidentiality,termination --save
  legalmate draft notes.txt --type lease --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runDraft,
}

func init() {
	rootCmd.AddCommand(draftCmd)

	draftCmd.Flags().StringVarP(&contractType, "type", "t", "nda", "contract type (nda, service, lease)")
	draftCmd.Flags().StringVarP(&language, "language", "l", "english", "output language (english, hindi)")
	draftCmd.Flags().StringSliceVar(&clauseIDs, "clauses", nil, "clause ids to include (default: full builtin library)")
	draftCmd.Flags().StringVar(&clauseFile, "clause-file", "", "YAML file with custom clauses")
	draftCmd.Flags().StringVar(&outText, "out", "contract.txt", "output contract path")
	draftCmd.Flags().StringVar(&outJSON, "json", "", "output JSON record path (optional)")
	draftCmd.Flags().BoolVar(&saveDraft, "save", false, "save the draft in the contract store")
	draftCmd.Flags().BoolVar(&htmlNotes, "html", false, "treat the notes file as HTML")
	draftCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the draft cache")
	draftCmd.Flags().DurationVar(&draftTimeout, "timeout", 2*time.Minute, "overall draft timeout")

	// LLM flags
	draftCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM document generation")
	draftCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	draftCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runDraft(cmd *cobra.Command, args []string) error {
	notesPath := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), draftTimeout)
	defer cancel()

	cType, ok := model.ParseContractType(contractType)
	if !ok {
		return fmt.Errorf("unknown contract type: %q (supported: nda, service, lease)", contractType)
	}
	lang, ok := model.ParseLanguage(language)
	if !ok {
		return fmt.Errorf("unknown language: %q (supported: english, hindi)", language)
	}

	notes, err := readNotes(notesPath)
	if err != nil {
		return err
	}

	var custom []model.Clause
	if clauseFile != "" {
		custom, err = clauses.LoadFile(clauseFile)
		if err != nil {
			return fmt.Errorf("load clauses: %w", err)
		}
		// Custom clauses are included by id like builtin ones
		for _, c := range custom {
			clauseIDs = append(clauseIDs, c.ID)
		}
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Store.Enabled = cfg.Store.Enabled || saveDraft

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	if verbose {
		fmt.Fprintf(os.Stderr, "Drafting: %s (%s, %s)\n", notesPath, cType, lang)
		fmt.Fprintf(os.Stderr, "Generator: %s\n", p.Provider().Name())
		fmt.Fprintln(os.Stderr)
	}

	record, err := p.Draft(ctx, pipeline.DraftRequest{
		Type:      cType,
		Language:  lang,
		Notes:     notes,
		HTML:      htmlNotes || strings.HasSuffix(notesPath, ".html"),
		ClauseIDs: clauseIDs,
		Custom:    custom,
		Save:      saveDraft,
	})
	if err != nil {
		return fmt.Errorf("draft failed: %w", err)
	}

	if err := p.RenderDraft(record, outText, outJSON); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// readNotes reads a notes file, or stdin when the path is "-"
func readNotes(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read notes: %w", err)
	}
	return string(data), nil
}

// buildConfig assembles the runtime configuration from defaults, the
// config file, environment variables, and flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache

	// Config file overrides
	if viper.IsSet("cache.dir") {
		cfg.Cache.Dir = viper.GetString("cache.dir")
	}
	if viper.IsSet("store.enabled") {
		cfg.Store.Enabled = viper.GetBool("store.enabled")
	}
	if viper.IsSet("store.path") {
		cfg.Store.Path = viper.GetString("store.path")
	}
	if viper.IsSet("server.addr") {
		cfg.Server.Addr = viper.GetString("server.addr")
	}
	if viper.IsSet("concurrency.workers") {
		cfg.Concurrency.Workers = viper.GetInt("concurrency.workers")
	}
	if viper.IsSet("llm.provider") && !llmEnabled {
		provider := viper.GetString("llm.provider")
		if provider != "" && provider != "static" {
			llmEnabled = true
			llmProvider = provider
			if viper.IsSet("llm.model") {
				llmModel = viper.GetString("llm.model")
			}
		}
	}

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		if llmModel != "" {
			cfg.LLM.Model = llmModel
		}

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}
