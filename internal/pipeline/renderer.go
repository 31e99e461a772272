package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/legalmate/legalmate/internal/model"
)

// Renderer writes draft artifacts to disk and a summary to stdout
type Renderer struct {
	verbose bool
}

// NewRenderer creates a new renderer
func NewRenderer(verbose bool) *Renderer {
	return &Renderer{verbose: verbose}
}

// RenderText writes the plain-text contract document
func (r *Renderer) RenderText(record *model.DraftRecord, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(record.Document+"\n"), 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if r.verbose {
		fmt.Printf("✓ Wrote contract: %s\n", path)
	}
	return nil
}

// RenderJSON writes the full draft record as indented JSON
func (r *Renderer) RenderJSON(record *model.DraftRecord, path string) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	if r.verbose {
		fmt.Printf("✓ Wrote record: %s\n", path)
	}
	return nil
}

// RenderSummary prints a short draft summary to stdout
func (r *Renderer) RenderSummary(record *model.DraftRecord) {
	fmt.Printf("\n%s (%s)\n", record.Type.Label(), record.Language)
	fmt.Printf("Generator: %s", record.Generator)
	if record.Model != "" && record.Model != record.Generator {
		fmt.Printf(" (%s)", record.Model)
	}
	fmt.Println()

	fmt.Printf("\n%s\n", record.Summary)

	if len(record.Missing) > 0 {
		fmt.Printf("\n⚠ Missing mandatory clauses: %s\n", strings.Join(record.Missing, ", "))
	}
}

// RenderReview prints a review report to stdout
func (r *Renderer) RenderReview(result model.ReviewResult) {
	fmt.Println(result.Summary)

	printFindings := func(heading string, findings []model.ReviewFinding) {
		if len(findings) == 0 {
			return
		}
		fmt.Printf("\n%s:\n", heading)
		for _, f := range findings {
			line := fmt.Sprintf("  - %s", f.Title)
			if f.Severity != "" {
				line += fmt.Sprintf(" [%s]", f.Severity)
			}
			if f.Location != "" {
				line += fmt.Sprintf(" (%s)", f.Location)
			}
			fmt.Println(line)
			if r.verbose && f.Description != "" {
				fmt.Printf("    %s\n", f.Description)
			}
		}
	}

	printFindings("Missing clauses", result.MissingClauses)
	printFindings("Risky terms", result.RiskyTerms)
	printFindings("Suggestions", result.Suggestions)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}
