package model

// ReviewSeverity indicates how risky a flagged term is
type ReviewSeverity string

const (
	ReviewSeverityLow    ReviewSeverity = "low"
	ReviewSeverityMedium ReviewSeverity = "medium"
	ReviewSeverityHigh   ReviewSeverity = "high"
)

// ReviewFinding is a single item in a review report: a missing clause,
// a risky term, or an improvement suggestion
type ReviewFinding struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Location    string         `json:"location,omitempty"` // where in the text, if known
	Severity    ReviewSeverity `json:"severity,omitempty"` // risky terms only
}

// ReviewResult is the output shape of a contract review
type ReviewResult struct {
	Summary        string          `json:"summary"`
	MissingClauses []ReviewFinding `json:"missing_clauses"`
	RiskyTerms     []ReviewFinding `json:"risky_terms"`
	Suggestions    []ReviewFinding `json:"suggestions"`
}
