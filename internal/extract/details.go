package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/legalmate/legalmate/internal/model"
)

// Recognition patterns for the extraction rules. Each rule matches
// independently against the full original text; first match wins and
// nothing is consumed for the other rules, so the order of fields in the
// notes does not matter.
var (
	partyAPattern   = regexp.MustCompile(`(?i)party\s*a:?\s*([^\n,]+)`)
	partyBPattern   = regexp.MustCompile(`(?i)party\s*b:?\s*([^\n,]+)`)
	durationPattern = regexp.MustCompile(`(?i)duration:?\s*(\d+)\s*(months?|years?)`)
	paymentPattern  = regexp.MustCompile(`(?i)payment\s*terms?:?\s*([^\n]+)`)
)

// DetailsExtractor extracts structured contract details from free-form notes
type DetailsExtractor struct {
	now func() time.Time
}

// NewDetailsExtractor creates a new details extractor using the wall clock
func NewDetailsExtractor() *DetailsExtractor {
	return &DetailsExtractor{now: time.Now}
}

// NewDetailsExtractorAt creates an extractor with a fixed clock, so tests
// can pin the effective date
func NewDetailsExtractorAt(now func() time.Time) *DetailsExtractor {
	return &DetailsExtractor{now: now}
}

// Extract pulls recognizable fields out of the notes. It is total: for any
// input, including empty or malformed text, it returns a details record
// with at least the effective date set. Unrecognized fields stay unset.
func (e *DetailsExtractor) Extract(text string) model.ContractDetails {
	now := e.now()
	details := model.ContractDetails{
		EffectiveDate: now.Format(model.DateFormat),
	}

	if v := matchLabeledSegment(partyAPattern, text); v != "" {
		details.PartyA = v
	}
	if v := matchLabeledSegment(partyBPattern, text); v != "" {
		details.PartyB = v
	}

	if d, ok := matchDuration(text); ok {
		details.Duration = d.String()
		details.DurationMonths = d.Months()
		// Calendar-month addition: day overflow at month boundaries follows
		// time.AddDate normalization (Jan 31 + 1 month lands in March).
		details.EndDate = now.AddDate(0, d.Months(), 0).Format(model.DateFormat)
	}

	if v := matchPaymentTerms(text); v != "" {
		details.PaymentTerms = v
	}

	return details
}

// matchLabeledSegment applies a label rule: the literal label, an optional
// colon, then everything up to the next line break or comma. Returns the
// trimmed capture, or "" when the label is absent or the capture is empty
// after trimming (an empty capture counts as field absent).
func matchLabeledSegment(pattern *regexp.Regexp, text string) string {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// DurationMatch is the structured value produced by the duration rule
type DurationMatch struct {
	Value int
	Unit  string // "month", "months", "year" or "years", lower-cased
}

// String returns the normalized duration, e.g. "6 months"
func (d DurationMatch) String() string {
	return fmt.Sprintf("%d %s", d.Value, d.Unit)
}

// Months normalizes the duration to months (year units are multiplied by 12)
func (d DurationMatch) Months() int {
	if strings.HasPrefix(d.Unit, "year") {
		return d.Value * 12
	}
	return d.Value
}

// matchDuration applies the duration rule: "duration", an optional colon,
// an integer and a month/year unit word. Any other unit (or none) means no
// match.
func matchDuration(text string) (DurationMatch, bool) {
	m := durationPattern.FindStringSubmatch(text)
	if m == nil {
		return DurationMatch{}, false
	}
	value, err := strconv.Atoi(m[1])
	if err != nil {
		// Digits too long to fit an int: skip rather than fail.
		return DurationMatch{}, false
	}
	return DurationMatch{Value: value, Unit: strings.ToLower(m[2])}, true
}

// matchPaymentTerms applies the payment-terms rule: "payment terms"
// (singular or plural), an optional colon, then the rest of the line.
func matchPaymentTerms(text string) string {
	m := paymentPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
