package cli

import (
	"github.com/spf13/cobra"

	"github.com/legalmate/legalmate/internal/api"
	"github.com/legalmate/legalmate/internal/pipeline"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the drafting API over HTTP",
	Long: `Serve starts the LegalMate HTTP API:
- POST /api/draft      draft a contract from notes
- POST /api/review     review contract text
- GET  /api/clauses    list the builtin clause library
- GET  /api/contracts  list saved contracts
- GET  /health         health check

The server shuts down gracefully on SIGINT/SIGTERM.

Example:
  legalmate serve
  legalmate serve --addr :9090 --llm openai`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :8080)")
	serveCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the draft cache")

	// LLM flags
	serveCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM document generation")
	serveCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	serveCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	// The API exposes saved contracts, so the server always runs a store
	cfg.Store.Enabled = true
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	return api.NewServer(p, cfg).Run()
}
