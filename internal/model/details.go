package model

// DateFormat is the human-readable layout used for every contract date
// (effective date, termination date, signature date).
const DateFormat = "January 2, 2006"

// Language selects which of the two document skeletons is used
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageHindi   Language = "hindi"
)

// ParseLanguage normalizes a user-supplied language name
func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case LanguageEnglish, LanguageHindi:
		return Language(s), true
	case "":
		return LanguageEnglish, true
	default:
		return "", false
	}
}

// ContractType identifies which title/template pair is used
type ContractType string

const (
	TypeNDA     ContractType = "nda"
	TypeService ContractType = "service"
	TypeLease   ContractType = "lease"
)

// Label returns the full human-readable contract title
func (t ContractType) Label() string {
	switch t {
	case TypeNDA:
		return "Non-Disclosure Agreement (NDA)"
	case TypeService:
		return "Service Agreement"
	case TypeLease:
		return "Lease Agreement"
	default:
		return "Contract"
	}
}

// Description returns the short explanation shown when picking a type
func (t ContractType) Description() string {
	switch t {
	case TypeNDA:
		return "Protect confidential information between parties"
	case TypeService:
		return "Define terms for service provision"
	case TypeLease:
		return "Rental agreement for property or equipment"
	default:
		return ""
	}
}

// ParseContractType validates a user-supplied contract type
func ParseContractType(s string) (ContractType, bool) {
	switch ContractType(s) {
	case TypeNDA, TypeService, TypeLease:
		return ContractType(s), true
	default:
		return "", false
	}
}

// ContractTypes lists the supported contract types in display order
func ContractTypes() []ContractType {
	return []ContractType{TypeNDA, TypeService, TypeLease}
}

// ContractDetails is the structured record extracted from free-form notes.
// EffectiveDate is always populated; every other field is optional and
// independent of the rest. EndDate is set exactly when DurationMonths is,
// and DurationMonths exactly when Duration is (all three derive from the
// same duration match). A ContractDetails value is built once per
// extraction and never mutated afterwards.
type ContractDetails struct {
	EffectiveDate  string `json:"effective_date"`
	PartyA         string `json:"party_a,omitempty"`
	PartyB         string `json:"party_b,omitempty"`
	Duration       string `json:"duration,omitempty"`        // normalized "<n> <unit>"
	DurationMonths int    `json:"duration_months,omitempty"` // duration in months, 0 when unset
	EndDate        string `json:"end_date,omitempty"`
	PaymentTerms   string `json:"payment_terms,omitempty"`
}
