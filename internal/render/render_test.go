package render

import (
	"strings"
	"testing"

	"github.com/legalmate/legalmate/internal/model"
)

func sampleDetails() model.ContractDetails {
	return model.ContractDetails{
		EffectiveDate:  "January 5, 2025",
		PartyA:         "Acme Corp",
		PartyB:         "XYZ Ltd",
		Duration:       "6 months",
		DurationMonths: 6,
		EndDate:        "July 5, 2025",
		PaymentTerms:   "Net 30 days",
	}
}

func TestRender_IdempotentWithoutPlaceholders(t *testing.T) {
	template := "Some ordinary text.\nNothing recognizable here.\n"

	out := Render(template, sampleDetails(), model.LanguageEnglish)
	if out != template {
		t.Errorf("expected template without placeholders to pass through unchanged, got %q", out)
	}
}

func TestRender_DateToken(t *testing.T) {
	template := "Signed on [Date].\nAlso on [Date]."

	out := Render(template, sampleDetails(), model.LanguageEnglish)
	if out != "Signed on January 5, 2025.\nAlso on January 5, 2025." {
		t.Errorf("expected every date token replaced, got %q", out)
	}
}

func TestRender_PartyLinesIndependent(t *testing.T) {
	details := sampleDetails()

	ab := "Party A: _______\nParty B: _______"
	ba := "Party B: _______\nParty A: _______"

	outAB := Render(ab, details, model.LanguageEnglish)
	outBA := Render(ba, details, model.LanguageEnglish)

	for _, out := range []string{outAB, outBA} {
		if !strings.Contains(out, "Party A: Acme Corp") {
			t.Errorf("expected party A line rewritten, got %q", out)
		}
		if !strings.Contains(out, "Party B: XYZ Ltd") {
			t.Errorf("expected party B line rewritten, got %q", out)
		}
	}
}

func TestRender_PartyLineRewritesAllOccurrences(t *testing.T) {
	template := "Party A: old name\nsome text\nParty A: another old name"

	out := Render(template, sampleDetails(), model.LanguageEnglish)
	if strings.Count(out, "Party A: Acme Corp") != 2 {
		t.Errorf("expected all party A lines rewritten identically, got %q", out)
	}
}

func TestRender_UnsetPartyLeavesLineAlone(t *testing.T) {
	details := sampleDetails()
	details.PartyB = ""

	out := Render("Party A: _______\nParty B: _______", details, model.LanguageEnglish)
	if !strings.Contains(out, "Party B: _______") {
		t.Errorf("expected party B line untouched when unset, got %q", out)
	}
}

func TestRender_NamePlaceholder(t *testing.T) {
	out := Render("Between [Company/Individual Name] and others.", sampleDetails(), model.LanguageEnglish)
	if out != "Between Acme Corp and others." {
		t.Errorf("expected name placeholder replaced with party A, got %q", out)
	}
}

func TestRender_DurationBlockInsertedAfterHeader(t *testing.T) {
	template := "intro\nTERMS AND CONDITIONS\nbody"

	out := Render(template, sampleDetails(), model.LanguageEnglish)

	if !strings.Contains(out, "TERMS AND CONDITIONS") {
		t.Error("expected header preserved (insertion, not replacement)")
	}
	if !strings.Contains(out, "Contract Duration: 6 months") {
		t.Errorf("expected duration line inserted, got %q", out)
	}
	if !strings.Contains(out, "Termination Date: July 5, 2025") {
		t.Errorf("expected termination line inserted, got %q", out)
	}

	headerIdx := strings.Index(out, "TERMS AND CONDITIONS")
	durationIdx := strings.Index(out, "Contract Duration:")
	if durationIdx < headerIdx {
		t.Error("expected duration block after the header")
	}
}

func TestRender_DurationBlockFirstHeaderOnly(t *testing.T) {
	template := "TERMS AND CONDITIONS\nmiddle\nTERMS AND CONDITIONS"

	out := Render(template, sampleDetails(), model.LanguageEnglish)
	if strings.Count(out, "Contract Duration: 6 months") != 1 {
		t.Errorf("expected exactly one inserted block, got %q", out)
	}
}

func TestRender_DurationBlockNeedsBothFields(t *testing.T) {
	details := sampleDetails()
	details.EndDate = ""

	out := Render("TERMS AND CONDITIONS", details, model.LanguageEnglish)
	if strings.Contains(out, "Contract Duration") {
		t.Errorf("expected no block without end date, got %q", out)
	}
}

func TestRender_PaymentBoilerplateReplaced(t *testing.T) {
	template := "2. TERMS\n   Payment shall be made within 30 days of invoice date.\n   more terms"

	out := Render(template, sampleDetails(), model.LanguageEnglish)
	if strings.Contains(out, "Payment shall be made") {
		t.Errorf("expected boilerplate replaced, got %q", out)
	}
	if !strings.Contains(out, "Net 30 days") {
		t.Errorf("expected supplied payment terms, got %q", out)
	}
}

func TestRender_HindiHasNoPaymentRule(t *testing.T) {
	// The Hindi skeleton's payment sentence is not a recognized boilerplate;
	// payment terms reach Hindi documents at assembly time instead.
	template := Template(model.TypeNDA, model.LanguageHindi)

	out := Render(template, sampleDetails(), model.LanguageHindi)
	if !strings.Contains(out, "भुगतान चालान तिथि के 30 दिनों के भीतर किया जाएगा।") {
		t.Error("expected Hindi payment sentence untouched")
	}
	if strings.Contains(out, "Net 30 days") {
		t.Error("expected no payment substitution on the Hindi path")
	}
}

func TestRender_HindiTemplate(t *testing.T) {
	template := Template(model.TypeService, model.LanguageHindi)

	out := Render(template, sampleDetails(), model.LanguageHindi)

	if !strings.Contains(out, "पक्ष A: Acme Corp") {
		t.Errorf("expected Hindi party A line rewritten, got %q", out)
	}
	if !strings.Contains(out, "पक्ष B: XYZ Ltd") {
		t.Error("expected Hindi party B line rewritten")
	}
	if !strings.Contains(out, "अनुबंध अवधि: 6 months") {
		t.Error("expected Hindi duration block inserted")
	}
	if strings.Contains(out, "[तारीख]") {
		t.Error("expected Hindi date tokens replaced")
	}
}

func TestRender_EnglishTemplateEndToEnd(t *testing.T) {
	template := Template(model.TypeNDA, model.LanguageEnglish)

	out := Render(template, sampleDetails(), model.LanguageEnglish)

	for _, want := range []string{
		"[Non-Disclosure Agreement (NDA)]",
		"Party A: Acme Corp",
		"Party B: XYZ Ltd",
		"Contract Duration: 6 months",
		"Termination Date: July 5, 2025",
		"Net 30 days",
		"Date of Signature: January 5, 2025",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected rendered document to contain %q", want)
		}
	}
	if strings.Contains(out, "[Date]") || strings.Contains(out, "[Company/Individual Name]") {
		t.Errorf("expected all placeholders resolved, got %q", out)
	}
}
