package clauses

import (
	"fmt"
	"os"

	"github.com/legalmate/legalmate/internal/model"
	"gopkg.in/yaml.v3"
)

// Builtin returns the predefined clause library in display order
func Builtin() []model.Clause {
	return []model.Clause{
		{
			ID:      "confidentiality",
			Title:   "Confidentiality",
			Content: "Each party agrees to maintain the confidentiality of all proprietary information disclosed during the term of this agreement and shall not disclose such information to any third party without prior written consent.",
		},
		{
			ID:      "payment",
			Title:   "Payment Terms",
			Content: "Payment shall be made within 30 days of invoice date. Late payments will incur a fee of 1.5% per month. All payments shall be made in the agreed currency via bank transfer.",
		},
		{
			ID:      "termination",
			Title:   "Termination",
			Content: "Either party may terminate this agreement with 30 days written notice. Upon termination, all outstanding obligations must be fulfilled and all confidential materials returned.",
		},
		{
			ID:      "governing",
			Title:   "Governing Law",
			Content: "This agreement shall be governed by and construed in accordance with the laws of [Jurisdiction], without regard to its conflict of law provisions.",
		},
	}
}

// Lookup finds a builtin clause by id
func Lookup(id string) (model.Clause, bool) {
	for _, c := range Builtin() {
		if c.ID == id {
			return c, true
		}
	}
	return model.Clause{}, false
}

// clauseFile is the YAML shape of a user clause file
type clauseFile struct {
	Clauses []model.Clause `yaml:"clauses"`
}

// LoadFile reads user-defined clauses from a YAML file. Loaded clauses are
// marked custom; entries without an id or content are rejected.
func LoadFile(path string) ([]model.Clause, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read clause file: %w", err)
	}

	var file clauseFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse clause file: %w", err)
	}

	for i := range file.Clauses {
		c := &file.Clauses[i]
		if c.ID == "" || c.Content == "" {
			return nil, fmt.Errorf("clause %d: id and content are required", i+1)
		}
		if c.Title == "" {
			c.Title = c.ID
		}
		c.Custom = true
	}

	return file.Clauses, nil
}

// Mandatory lists the clause ids a contract is expected to include
func Mandatory() []model.Clause {
	return []model.Clause{
		{ID: "confidentiality", Title: "Confidentiality"},
		{ID: "termination", Title: "Termination"},
		{ID: "governing", Title: "Governing Law"},
	}
}

// Check reports the titles of mandatory clauses missing from the selection.
// Missing clauses are warnings, never errors: drafts still generate.
func Check(selected []model.Clause) []string {
	included := make(map[string]bool, len(selected))
	for _, c := range selected {
		included[c.ID] = true
	}

	var missing []string
	for _, m := range Mandatory() {
		if !included[m.ID] {
			missing = append(missing, m.Title)
		}
	}
	return missing
}

// Resolve maps clause ids to clauses, preferring the builtin library and
// falling back to the supplied custom set. Unknown ids are skipped.
func Resolve(ids []string, custom []model.Clause) []model.Clause {
	byID := make(map[string]model.Clause, len(custom))
	for _, c := range custom {
		byID[c.ID] = c
	}

	var out []model.Clause
	for _, id := range ids {
		if c, ok := Lookup(id); ok {
			out = append(out, c)
			continue
		}
		if c, ok := byID[id]; ok {
			out = append(out, c)
		}
	}
	return out
}
