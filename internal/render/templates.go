package render

import (
	"fmt"

	"github.com/legalmate/legalmate/internal/model"
)

// Placeholder tokens and section headers used by the two skeletons. These
// are fixed literals; the renderer matches them exactly and never derives
// them at runtime.
const (
	DatePlaceholderEN = "[Date]"
	DatePlaceholderHI = "[तारीख]"

	NamePlaceholderEN = "[Company/Individual Name]"
	NamePlaceholderHI = "[कंपनी/व्यक्ति का नाम]"

	TermsHeaderEN = "TERMS AND CONDITIONS"
	TermsHeaderHI = "नियम और शर्तें"

	// PaymentBoilerplateEN is the default payment sentence the renderer
	// replaces when payment terms were extracted. The Hindi skeleton has no
	// equivalent rule: Hindi payment terms are inlined at assembly time.
	PaymentBoilerplateEN = "Payment shall be made within 30 days of invoice date."
)

const englishSkeleton = `[%s]

THIS AGREEMENT is made on [Date] between:

Party A: [Company/Individual Name]
Party B: [Company/Individual Name]

Effective Date: [Date]

WHEREAS, the parties wish to enter into this agreement...

1. DEFINITIONS
   1.1 "Confidential Information" means...
   1.2 "Effective Date" means [Date]

2. TERMS AND CONDITIONS
   2.1 Payment shall be made within 30 days of invoice date.
   2.2 The parties agree to...
   2.3 All obligations under this agreement...

IN WITNESS WHEREOF, the parties have executed this agreement.

_____________________     _____________________
Party A Signature         Party B Signature

Date of Signature: [Date]`

const hindiSkeleton = `[%s]

यह समझौता [तारीख] को निम्नलिखित पक्षों के बीच किया गया है:

पक्ष A: [कंपनी/व्यक्ति का नाम]
पक्ष B: [कंपनी/व्यक्ति का नाम]

प्रभावी तिथि: [तारीख]

जबकि, पक्ष इस समझौते में प्रवेश करना चाहते हैं...

परिभाषाएं:
"गोपनीय जानकारी" का अर्थ है...
"प्रभावी तिथि" का अर्थ है [तारीख]

नियम और शर्तें:
भुगतान चालान तिथि के 30 दिनों के भीतर किया जाएगा।
पक्ष सहमत हैं कि...
इस समझौते के तहत सभी दायित्व...

साक्षी के रूप में, पक्षों ने इस समझौते पर हस्ताक्षर किए हैं।

_____________________     _____________________
पक्ष A हस्ताक्षर          पक्ष B हस्ताक्षर

हस्ताक्षर तिथि: [तारीख]`

// Template returns the hand-authored document skeleton for the given
// contract type and language. The contract type only contributes the
// bracketed title line.
func Template(contractType model.ContractType, lang model.Language) string {
	if lang == model.LanguageHindi {
		return fmt.Sprintf(hindiSkeleton, contractType.Label())
	}
	return fmt.Sprintf(englishSkeleton, contractType.Label())
}
