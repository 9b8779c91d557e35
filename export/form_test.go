package export

import (
	"testing"

	"github.com/claimpilot/backend/model"
)

func TestClaimForm(t *testing.T) {
	g := newTestGenerator()
	data, err := g.ClaimForm(sampleRecord(), "CA")
	assertPDF(t, data, err)
}

func TestClaimFormPerState(t *testing.T) {
	g := newTestGenerator()

	// Verified states get court-specific instructions, guidance-only
	// and unknown states get the generic path. All must render.
	for _, state := range []string{"CA", "NY", "TX", "FL", "OR", "ZZ", ""} {
		t.Run("state "+state, func(t *testing.T) {
			data, err := g.ClaimForm(sampleRecord(), state)
			assertPDF(t, data, err)
		})
	}
}

func TestClaimFormToleratesDegenerateInput(t *testing.T) {
	g := newTestGenerator()

	tests := []struct {
		name   string
		record *model.CaseRecord
	}{
		{"empty record", &model.CaseRecord{}},
		{"missing addresses", &model.CaseRecord{ClaimantName: "Jane", RespondentName: "Acme"}},
		{"amount over ceiling", &model.CaseRecord{AmountClaimed: 99999}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := g.ClaimForm(tt.record, "CA")
			assertPDF(t, data, err)
		})
	}
}

func TestNumCopies(t *testing.T) {
	if got := numCopies("CA"); got == "2-3" {
		t.Errorf("Expected a state-specific copy count for CA, got fallback %q", got)
	}
	if got := numCopies("ZZ"); got != "2-3" {
		t.Errorf("Expected fallback copy count for unknown state, got %q", got)
	}
}
