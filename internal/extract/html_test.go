package extract

import (
	"strings"
	"testing"
	"time"
)

func TestFlattenHTML_VisibleTextOnly(t *testing.T) {
	input := `
	<html>
	<head>
		<script>var partyA = "Script Corp";</script>
		<style>/* Party A: Style Corp */</style>
	</head>
	<body>
		<p>Party A: Acme Corp</p>
		<noscript>Party B: Hidden Ltd</noscript>
		<p>Duration: 6 months</p>
	</body>
	</html>
	`

	text := FlattenHTML(input)

	if strings.Contains(text, "Script Corp") {
		t.Error("should not include script content")
	}
	if strings.Contains(text, "Style Corp") {
		t.Error("should not include style content")
	}
	if strings.Contains(text, "Hidden Ltd") {
		t.Error("should not include noscript content")
	}
	if !strings.Contains(text, "Party A: Acme Corp") {
		t.Errorf("expected visible text preserved, got %q", text)
	}
}

func TestFlattenHTML_BlockElementsKeepLineBoundaries(t *testing.T) {
	input := `<p>Party A: Acme Corp</p><p>Party B: XYZ Ltd</p><p>Payment Terms: Net 30</p>`

	extractor := NewDetailsExtractorAt(func() time.Time {
		return time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	})
	details := extractor.Extract(FlattenHTML(input))

	if details.PartyA != "Acme Corp" {
		t.Errorf("expected party A 'Acme Corp', got %q", details.PartyA)
	}
	if details.PartyB != "XYZ Ltd" {
		t.Errorf("expected party B 'XYZ Ltd', got %q", details.PartyB)
	}
	if details.PaymentTerms != "Net 30" {
		t.Errorf("expected payment terms 'Net 30', got %q", details.PaymentTerms)
	}
}

func TestFlattenHTML_PlainTextPassesThrough(t *testing.T) {
	// html.Parse accepts anything, so plain notes survive flattening.
	input := "Party A: Acme Corp\nDuration: 6 months"
	text := FlattenHTML(input)

	if !strings.Contains(text, "Party A: Acme Corp") {
		t.Errorf("expected plain text to survive, got %q", text)
	}
}
