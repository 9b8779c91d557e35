package export

import (
	"bytes"
	"testing"

	"github.com/claimpilot/backend/model"
)

func assertPDF(t *testing.T, data []byte, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Generation failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatal("Output does not start with PDF magic bytes")
	}
	if len(data) < 500 {
		t.Errorf("Output suspiciously small: %d bytes", len(data))
	}
}

func TestDemandLetter(t *testing.T) {
	g := newTestGenerator()
	data, err := g.DemandLetter(sampleRecord(), "CA")
	assertPDF(t, data, err)
}

func TestDemandLetterToleratesDegenerateInput(t *testing.T) {
	g := newTestGenerator()

	tests := []struct {
		name   string
		record *model.CaseRecord
		state  string
	}{
		{"empty record", &model.CaseRecord{}, ""},
		{"unknown state", sampleRecord(), "ZZ"},
		{"tier2 state", sampleRecord(), "WA"},
		{"non-ascii claimant", &model.CaseRecord{ClaimantName: "José Martínez", RespondentName: "Łukasz Żółć"}, "NY"},
		{"multiline names", &model.CaseRecord{ClaimantName: "Jane\nDoe", RespondentName: "Acme"}, "CA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := g.DemandLetter(tt.record, tt.state)
			assertPDF(t, data, err)
		})
	}
}

func TestDemandLetterDeterministic(t *testing.T) {
	g := newTestGenerator()
	first, err := g.DemandLetter(sampleRecord(), "CA")
	if err != nil {
		t.Fatalf("DemandLetter failed: %v", err)
	}
	second, err := g.DemandLetter(sampleRecord(), "CA")
	if err != nil {
		t.Fatalf("DemandLetter failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("Letter output should be byte-identical for a fixed clock and input")
	}
}

func TestOrPlaceholder(t *testing.T) {
	if got := orPlaceholder("", "[Your Name]"); got != "[Your Name]" {
		t.Errorf("Expected placeholder, got %q", got)
	}
	if got := orPlaceholder("Jane", "[Your Name]"); got != "Jane" {
		t.Errorf("Expected value, got %q", got)
	}
}
