package draft

import (
	"fmt"
	"strings"

	"github.com/legalmate/legalmate/internal/model"
)

// Summarize produces the short natural-language summary shown alongside a
// generated contract: parties, duration and included clauses, in one of the
// two fixed phrasings. Pure and total.
func Summarize(contractType model.ContractType, details model.ContractDetails, lang model.Language, selected []model.Clause) string {
	if lang == model.LanguageHindi {
		return summarizeHindi(contractType, details, selected)
	}
	return summarizeEnglish(contractType, details, selected)
}

func summarizeEnglish(contractType model.ContractType, details model.ContractDetails, selected []model.Clause) string {
	partyA := details.PartyA
	if partyA == "" {
		partyA = "Party A"
	}
	partyB := details.PartyB
	if partyB == "" {
		partyB = "Party B"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "This %s establishes a legal agreement between %s and %s. ",
		contractType.Label(), partyA, partyB)

	if details.Duration != "" {
		fmt.Fprintf(&b, "The contract duration is %s and will terminate on %s. ",
			details.Duration, details.EndDate)
	}

	if len(selected) > 0 {
		fmt.Fprintf(&b, "It incorporates %s.", joinTitles(selected))
	} else {
		b.WriteString("It includes standard terms.")
	}

	return b.String()
}

func summarizeHindi(contractType model.ContractType, details model.ContractDetails, selected []model.Clause) string {
	partyA := details.PartyA
	if partyA == "" {
		partyA = "पक्ष A"
	}
	partyB := details.PartyB
	if partyB == "" {
		partyB = "पक्ष B"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "यह %s %s और %s के बीच एक कानूनी समझौता स्थापित करता है। ",
		contractType.Label(), partyA, partyB)

	if details.Duration != "" {
		fmt.Fprintf(&b, "अनुबंध की अवधि %s है और यह %s को समाप्त होगा। ",
			details.Duration, details.EndDate)
	}

	if len(selected) > 0 {
		fmt.Fprintf(&b, "इसमें %s शामिल हैं।", joinTitles(selected))
	} else {
		b.WriteString("इसमें मानक शर्तें शामिल हैं।")
	}

	return b.String()
}

func joinTitles(selected []model.Clause) string {
	titles := make([]string, len(selected))
	for i, c := range selected {
		titles[i] = c.Title
	}
	return strings.Join(titles, ", ")
}
