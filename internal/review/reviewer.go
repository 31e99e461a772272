// Package review inspects contract text and reports missing clauses,
// risky terms, and improvement suggestions. The checks are deterministic
// keyword rules, so the same text always produces the same report.
package review

import (
	"fmt"
	"strings"

	"github.com/legalmate/legalmate/internal/model"
)

// clauseRule detects whether an expected clause is present anywhere in
// the contract. A clause counts as present if any keyword matches.
type clauseRule struct {
	title       string
	description string
	keywords    []string
}

// riskRule flags a term that commonly disadvantages one party.
type riskRule struct {
	title       string
	description string
	severity    model.ReviewSeverity
	keywords    []string
}

// suggestionRule proposes an improvement when its trigger is absent.
type suggestionRule struct {
	title       string
	description string
	keywords    []string
}

var clauseRules = []clauseRule{
	{
		title:       "Confidentiality",
		description: "No confidentiality or non-disclosure language found. Sensitive information shared under this contract is unprotected.",
		keywords:    []string{"confidential", "non-disclosure", "गोपनीय"},
	},
	{
		title:       "Termination",
		description: "No termination clause found. Neither party has a defined way to exit the agreement.",
		keywords:    []string{"terminat", "समाप्ति", "समाप्त"},
	},
	{
		title:       "Governing Law",
		description: "No governing law clause found. Disputes have no agreed jurisdiction.",
		keywords:    []string{"governing law", "governed by", "jurisdiction", "शासी कानून"},
	},
	{
		title:       "Payment Terms",
		description: "No payment terms found. Amounts and due dates are undefined.",
		keywords:    []string{"payment", "invoice", "भुगतान"},
	},
	{
		title:       "Dispute Resolution",
		description: "No dispute resolution clause found. Consider specifying arbitration or mediation before litigation.",
		keywords:    []string{"dispute", "arbitrat", "mediat", "विवाद"},
	},
	{
		title:       "Limitation of Liability",
		description: "No liability cap found. Exposure under this contract is unbounded.",
		keywords:    []string{"liabilit", "दायित्व"},
	},
}

var riskRules = []riskRule{
	{
		title:       "Unlimited liability",
		description: "The contract accepts unlimited or uncapped liability.",
		severity:    model.ReviewSeverityHigh,
		keywords:    []string{"unlimited liability", "without limitation of liability", "uncapped liability"},
	},
	{
		title:       "Penalty provision",
		description: "Penalty language may be unenforceable or expose a party to disproportionate damages.",
		severity:    model.ReviewSeverityHigh,
		keywords:    []string{"penalty", "liquidated damages"},
	},
	{
		title:       "Unilateral discretion",
		description: "One party may act at its sole discretion without an objective standard.",
		severity:    model.ReviewSeverityMedium,
		keywords:    []string{"sole discretion", "absolute discretion"},
	},
	{
		title:       "Automatic renewal",
		description: "The contract renews automatically. Track the renewal window to avoid an unintended extension.",
		severity:    model.ReviewSeverityMedium,
		keywords:    []string{"automatically renew", "auto-renew", "automatic renewal"},
	},
	{
		title:       "Perpetual obligation",
		description: "An obligation survives indefinitely. Confirm that a perpetual term is intended.",
		severity:    model.ReviewSeverityMedium,
		keywords:    []string{"in perpetuity", "perpetual"},
	},
	{
		title:       "Broad indemnification",
		description: "Indemnification appears without a stated cap or carve-outs.",
		severity:    model.ReviewSeverityMedium,
		keywords:    []string{"indemnif"},
	},
	{
		title:       "Waiver of rights",
		description: "A party waives rights or remedies. Verify the waiver is mutual and narrow.",
		severity:    model.ReviewSeverityMedium,
		keywords:    []string{"waives any", "waive all", "irrevocably waive"},
	},
	{
		title:       "Non-compete restriction",
		description: "A non-compete restriction is present. Check its duration and geographic scope for enforceability.",
		severity:    model.ReviewSeverityLow,
		keywords:    []string{"non-compete", "shall not compete"},
	},
}

var suggestionRules = []suggestionRule{
	{
		title:       "Add a notice period",
		description: "Specify how much advance written notice is required for termination or changes.",
		keywords:    []string{"notice"},
	},
	{
		title:       "Add a severability clause",
		description: "State that the rest of the contract survives if one provision is held invalid.",
		keywords:    []string{"severab"},
	},
	{
		title:       "Add a force majeure clause",
		description: "Define what happens when performance is prevented by events outside either party's control.",
		keywords:    []string{"force majeure"},
	},
	{
		title:       "Name a signing date",
		description: "Include an effective date so the term and deadlines can be computed.",
		keywords:    []string{"date", "तारीख", "दिनांक"},
	},
}

// Reviewer runs the rule set against contract text.
type Reviewer struct{}

// NewReviewer creates a reviewer with the built-in rule set.
func NewReviewer() *Reviewer {
	return &Reviewer{}
}

// Review analyzes contract text and returns a structured report. It never
// fails: empty input simply produces a report where everything is missing.
func (r *Reviewer) Review(text string) model.ReviewResult {
	lower := strings.ToLower(text)
	lines := strings.Split(text, "\n")

	result := model.ReviewResult{
		MissingClauses: []model.ReviewFinding{},
		RiskyTerms:     []model.ReviewFinding{},
		Suggestions:    []model.ReviewFinding{},
	}

	for _, rule := range clauseRules {
		if !containsAny(lower, rule.keywords) {
			result.MissingClauses = append(result.MissingClauses, model.ReviewFinding{
				Title:       rule.title,
				Description: rule.description,
			})
		}
	}

	for _, rule := range riskRules {
		keyword, ok := firstMatch(lower, rule.keywords)
		if !ok {
			continue
		}
		result.RiskyTerms = append(result.RiskyTerms, model.ReviewFinding{
			Title:       rule.title,
			Description: rule.description,
			Location:    locate(lines, keyword),
			Severity:    rule.severity,
		})
	}

	for _, rule := range suggestionRules {
		if !containsAny(lower, rule.keywords) {
			result.Suggestions = append(result.Suggestions, model.ReviewFinding{
				Title:       rule.title,
				Description: rule.description,
			})
		}
	}

	result.Summary = summarize(result)
	return result
}

func containsAny(lower string, keywords []string) bool {
	_, ok := firstMatch(lower, keywords)
	return ok
}

func firstMatch(lower string, keywords []string) (string, bool) {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return keyword, true
		}
	}
	return "", false
}

// locate reports the 1-based line number of the first line containing the
// keyword, case-insensitively.
func locate(lines []string, keyword string) string {
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), keyword) {
			return fmt.Sprintf("line %d", i+1)
		}
	}
	return ""
}

func summarize(result model.ReviewResult) string {
	missing := len(result.MissingClauses)
	risky := len(result.RiskyTerms)

	if missing == 0 && risky == 0 {
		return "No missing clauses or risky terms detected. The contract covers the standard protections."
	}

	parts := []string{}
	if missing > 0 {
		parts = append(parts, fmt.Sprintf("%d missing clause%s", missing, plural(missing)))
	}
	if risky > 0 {
		parts = append(parts, fmt.Sprintf("%d risky term%s", risky, plural(risky)))
	}
	return fmt.Sprintf("Found %s. Review the findings below before signing.", strings.Join(parts, " and "))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
