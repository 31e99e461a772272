package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/legalmate/legalmate/internal/model"
)

// Label-line patterns: any line that begins with a party label is rewritten
// to end with the supplied value. All occurrences are rewritten identically.
var (
	partyALinePattern   = regexp.MustCompile(`Party A: .*`)
	partyBLinePattern   = regexp.MustCompile(`Party B: .*`)
	partyALinePatternHI = regexp.MustCompile(`पक्ष A: .*`)
	partyBLinePatternHI = regexp.MustCompile(`पक्ष B: .*`)

	paymentBoilerplatePattern = regexp.MustCompile(`Payment shall be made.*`)
)

// Render substitutes the recognized details into a document template. It is
// pure and total: patterns the template does not contain silently no-op, and
// a template with no recognized placeholders is returned unchanged. The
// language selects the wording of the inserted duration block; token and
// label substitutions for both scripts are always attempted, since a
// template only ever contains one script's literals.
func Render(template string, details model.ContractDetails, lang model.Language) string {
	out := template

	out = strings.ReplaceAll(out, DatePlaceholderEN, details.EffectiveDate)
	out = strings.ReplaceAll(out, DatePlaceholderHI, details.EffectiveDate)

	if details.PartyA != "" {
		out = strings.ReplaceAll(out, NamePlaceholderEN, details.PartyA)
		out = strings.ReplaceAll(out, NamePlaceholderHI, details.PartyA)
		out = partyALinePattern.ReplaceAllLiteralString(out, "Party A: "+details.PartyA)
		out = partyALinePatternHI.ReplaceAllLiteralString(out, "पक्ष A: "+details.PartyA)
	}

	if details.PartyB != "" {
		out = partyBLinePattern.ReplaceAllLiteralString(out, "Party B: "+details.PartyB)
		out = partyBLinePatternHI.ReplaceAllLiteralString(out, "पक्ष B: "+details.PartyB)
	}

	if details.Duration != "" && details.EndDate != "" {
		block := durationBlock(details, lang)
		// Insertion, not replacement: the header line stays and the block
		// follows it. Only the first occurrence triggers.
		out = strings.Replace(out, TermsHeaderEN, TermsHeaderEN+"\n"+block, 1)
		out = strings.Replace(out, TermsHeaderHI, TermsHeaderHI+"\n"+block, 1)
	}

	if details.PaymentTerms != "" {
		// English boilerplate only; the Hindi path has no substitution rule.
		if loc := paymentBoilerplatePattern.FindStringIndex(out); loc != nil {
			out = out[:loc[0]] + details.PaymentTerms + out[loc[1]:]
		}
	}

	return out
}

func durationBlock(details model.ContractDetails, lang model.Language) string {
	if lang == model.LanguageHindi {
		return fmt.Sprintf("\nअनुबंध अवधि: %s\nसमाप्ति तिथि: %s\n", details.Duration, details.EndDate)
	}
	return fmt.Sprintf("\nContract Duration: %s\nTermination Date: %s\n", details.Duration, details.EndDate)
}
