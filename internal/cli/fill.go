package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/legalmate/legalmate/internal/extract"
	"github.com/legalmate/legalmate/internal/model"
	"github.com/legalmate/legalmate/internal/render"
)

var (
	fillTemplate string
	fillOut      string
)

// fillCmd represents the fill command
var fillCmd = &cobra.Command{
	Use:   "fill <notes-file>",
	Short: "Fill a contract template with fields extracted from notes",
	Long: `Fill extracts the contract details from free-form notes and
substitutes them into a document template:
- Date placeholders are replaced with today's date
- Party label lines and name placeholders take the extracted parties
- A duration block is inserted after the terms header when a duration
  was found
- Extracted payment terms replace the default payment sentence

By default the builtin skeleton for --type/--language is used; pass
--template to fill your own skeleton instead. Unrecognized placeholders
are left untouched.

Example:
  legalmate fill notes.txt --type nda
  legalmate fill notes.txt --type lease --language hindi --out lease.txt
  legalmate fill notes.txt --template skeleton.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runFill,
}

func init() {
	rootCmd.AddCommand(fillCmd)

	fillCmd.Flags().StringVarP(&contractType, "type", "t", "nda", "contract type (nda, service, lease)")
	fillCmd.Flags().StringVarP(&language, "language", "l", "english", "output language (english, hindi)")
	fillCmd.Flags().StringVar(&fillTemplate, "template", "", "custom template file (default: builtin skeleton)")
	fillCmd.Flags().StringVar(&fillOut, "out", "", "output path (default: stdout)")
	fillCmd.Flags().BoolVar(&htmlNotes, "html", false, "treat the notes file as HTML")
}

func runFill(cmd *cobra.Command, args []string) error {
	notesPath := args[0]

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
	if htmlNotes || strings.HasSuffix(notesPath, ".html") {
		notes = extract.FlattenHTML(notes)
	}

	template := render.Template(cType, lang)
	if fillTemplate != "" {
		data, err := os.ReadFile(fillTemplate)
		if err != nil {
			return fmt.Errorf("read template: %w", err)
		}
		template = string(data)
	}

	details := extract.NewDetailsExtractor().Extract(notes)
	document := render.Render(template, details, lang)

	if fillOut == "" {
		fmt.Println(document)
		return nil
	}
	if err := os.WriteFile(fillOut, []byte(document+"\n"), 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Wrote contract: %s\n", fillOut)
	}
	return nil
}
