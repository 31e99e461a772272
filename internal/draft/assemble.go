package draft

import (
	"fmt"
	"strings"

	"github.com/legalmate/legalmate/internal/model"
	"github.com/legalmate/legalmate/internal/render"
)

// The assembled document keeps bracketed titles and ALL-CAPS section
// headers so the downstream PDF exporter recognizes them as headings.
const englishDocument = `[%s]

THIS AGREEMENT is made on %s between:

Party A: %s
Party B: %s

Effective Date: %s
%s
%s

WHEREAS, the parties wish to enter into this agreement...

1. DEFINITIONS
   1.1 "Confidential Information" means...
   1.2 "Effective Date" means %s

2. TERMS AND CONDITIONS
   %s
   2.2 The parties agree to...
   2.3 All obligations under this agreement...
%s

IN WITNESS WHEREOF, the parties have executed this agreement.

_____________________     _____________________
Party A Signature         Party B Signature

Date of Signature: %s`

const hindiDocument = `[%s]

यह समझौता %s को निम्नलिखित पक्षों के बीच किया गया है:

पक्ष A: %s
पक्ष B: %s

प्रभावी तिथि: %s
%s
%s

जबकि, पक्ष इस समझौते में प्रवेश करना चाहते हैं...

परिभाषाएं:
"गोपनीय जानकारी" का अर्थ है...
"प्रभावी तिथि" का अर्थ है %s

नियम और शर्तें:
%s
पक्ष सहमत हैं कि...
इस समझौते के तहत सभी दायित्व...
%s

साक्षी के रूप में, पक्षों ने इस समझौते पर हस्ताक्षर किए हैं।

_____________________     _____________________
पक्ष A हस्ताक्षर          पक्ष B हस्ताक्षर

हस्ताक्षर तिथि: %s`

// Assemble concatenates the full document text: bracketed title line,
// party/date header block, optional duration lines, the fixed boilerplate
// body, the numbered clause block and the signature block. Fields absent
// from the details fall back to placeholder text. Pure and total.
func Assemble(contractType model.ContractType, details model.ContractDetails, lang model.Language, selected []model.Clause) string {
	if lang == model.LanguageHindi {
		return assembleHindi(contractType, details, selected)
	}
	return assembleEnglish(contractType, details, selected)
}

func assembleEnglish(contractType model.ContractType, details model.ContractDetails, selected []model.Clause) string {
	partyA := details.PartyA
	if partyA == "" {
		partyA = render.NamePlaceholderEN
	}
	partyB := details.PartyB
	if partyB == "" {
		partyB = render.NamePlaceholderEN
	}

	durationLine := ""
	if details.Duration != "" {
		durationLine = "Contract Duration: " + details.Duration
	}
	endLine := ""
	if details.EndDate != "" {
		endLine = "Termination Date: " + details.EndDate
	}

	paymentLine := "2.1 " + render.PaymentBoilerplateEN
	if details.PaymentTerms != "" {
		paymentLine = "2.1 Payment Terms: " + details.PaymentTerms
	}

	doc := fmt.Sprintf(englishDocument,
		contractType.Label(),
		details.EffectiveDate,
		partyA,
		partyB,
		details.EffectiveDate,
		durationLine,
		endLine,
		details.EffectiveDate,
		paymentLine,
		ClauseBlock(selected),
		details.EffectiveDate,
	)
	return strings.TrimSpace(doc)
}

func assembleHindi(contractType model.ContractType, details model.ContractDetails, selected []model.Clause) string {
	partyA := details.PartyA
	if partyA == "" {
		partyA = render.NamePlaceholderHI
	}
	partyB := details.PartyB
	if partyB == "" {
		partyB = render.NamePlaceholderHI
	}

	durationLine := ""
	if details.Duration != "" {
		durationLine = "अनुबंध अवधि: " + details.Duration
	}
	endLine := ""
	if details.EndDate != "" {
		endLine = "समाप्ति तिथि: " + details.EndDate
	}

	// The Hindi path always inlines payment terms here; there is no
	// boilerplate substitution rule on the render side.
	paymentLine := "भुगतान चालान तिथि के 30 दिनों के भीतर किया जाएगा।"
	if details.PaymentTerms != "" {
		paymentLine = "भुगतान शर्तें: " + details.PaymentTerms
	}

	doc := fmt.Sprintf(hindiDocument,
		contractType.Label(),
		details.EffectiveDate,
		partyA,
		partyB,
		details.EffectiveDate,
		durationLine,
		endLine,
		details.EffectiveDate,
		paymentLine,
		ClauseBlock(selected),
		details.EffectiveDate,
	)
	return strings.TrimSpace(doc)
}

// ClauseBlock serializes an ordered clause selection into the numbered
// block appended to the document body. Empty selection yields "".
func ClauseBlock(selected []model.Clause) string {
	if len(selected) == 0 {
		return ""
	}

	var b strings.Builder
	for i, clause := range selected {
		b.WriteString(fmt.Sprintf("\n%d. %s\n   %s\n", i+1, strings.ToUpper(clause.Title), clause.Content))
	}
	return b.String()
}
