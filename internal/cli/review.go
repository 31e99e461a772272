package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/legalmate/legalmate/internal/pipeline"
)

var reviewJSON bool

// reviewCmd represents the review command
var reviewCmd = &cobra.Command{
	Use:   "review <contract-file>",
	Short: "Review a contract for missing clauses and risky terms",
	Long: `Review analyzes an existing contract:
- Detect missing standard clauses (confidentiality, termination, ...)
- Flag risky terms with severity and location
- Suggest improvements

Example:
  legalmate review contract.txt
  legalmate review contract.html --json`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	reviewCmd.Flags().BoolVar(&reviewJSON, "json", false, "print the report as JSON")
}

func runReview(cmd *cobra.Command, args []string) error {
	path := args[0]

	text, err := readNotes(path)
	if err != nil {
		return err
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	result := p.Review(text, strings.HasSuffix(path, ".html"))

	if reviewJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	pipeline.NewRenderer(verbose).RenderReview(result)
	return nil
}
