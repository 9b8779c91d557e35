package export

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/claimpilot/backend/model"
	"github.com/claimpilot/backend/pkg/piiguard"
	"github.com/claimpilot/backend/states"
)

// CaseSummary generates the CaseSummary.json payload. Metadata only:
// no raw file contents, no base64, no binary. The output is sanitized
// and then re-validated; a violation surviving sanitization means a
// generator bug and is the one error this package treats as fatal.
func (g *Generator) CaseSummary(record *model.CaseRecord, items []model.EvidenceItem, stateAbbr string) ([]byte, error) {
	state, known := states.Get(stateAbbr)

	var tier any
	var stateName any
	if known {
		tier = state.Tier
		stateName = state.Name
	}

	evidence := make([]any, 0, len(items))
	for i := range items {
		evidence = append(evidence, items[i].MetadataMap())
	}

	var incident any
	if s := record.IncidentDateString(); s != "" {
		incident = s
	}

	// JSON cannot encode NaN or infinities; fall back to the literal
	// like the currency formatter does instead of failing the export.
	var amount any = record.AmountClaimed
	if math.IsNaN(record.AmountClaimed) || math.IsInf(record.AmountClaimed, 0) {
		amount = fmt.Sprintf("%v", record.AmountClaimed)
	}

	summary := map[string]any{
		"claimpilot_version":       g.app.Version,
		"generated_date":           g.now().Format("2006-01-02"),
		"coverage_status":          states.TierLabel(stateAbbr),
		"coverage_tier":            tier,
		"state":                    stateAbbr,
		"state_name":               stateName,
		"claim_type":               record.ClaimType,
		"incident_date":            incident,
		"amount_claimed":           amount,
		"has_description":          record.Description != "",
		"has_resolution_attempted": record.ResolutionAttempted != "",
		"has_desired_outcome":      record.DesiredOutcome != "",
		"evidence_count":           len(items),
		"evidence_items":           evidence,
	}

	summary = piiguard.Sanitize(summary)
	if violations := piiguard.Validate(summary); len(violations) > 0 {
		return nil, fmt.Errorf("export safety violation: %s", strings.Join(violations, "; "))
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode case summary: %w", err)
	}
	return data, nil
}
