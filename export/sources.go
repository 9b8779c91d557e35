package export

import (
	"encoding/json"
	"fmt"

	"github.com/claimpilot/backend/states"
)

// Sources generates the Sources.json payload: the state's source list
// with quality ratings and review dates, plus coverage tier and label.
// An empty or unknown state code yields a shell record, never an error.
func (g *Generator) Sources(stateAbbr string) ([]byte, error) {
	data := sourcesForExport(stateAbbr)
	data["claimpilot_version"] = g.app.Version
	data["generated_date"] = g.now().Format("2006-01-02")

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode sources: %w", err)
	}
	return out, nil
}

func sourcesForExport(stateAbbr string) map[string]any {
	if stateAbbr == "" {
		return map[string]any{"state": nil, "sources": []any{}, "coverage_tier": nil}
	}

	state, ok := states.Get(stateAbbr)
	if !ok {
		return map[string]any{"state": stateAbbr, "sources": []any{}, "coverage_tier": nil}
	}

	label := fmt.Sprintf("Tier %d - Guidance-only", state.Tier)
	if state.Tier == 1 {
		label = fmt.Sprintf("Tier %d - Supported", state.Tier)
	}

	sources := make([]any, 0, len(state.Sources))
	for _, s := range state.Sources {
		var reviewed any
		if s.LastReviewedISO != "" {
			reviewed = s.LastReviewedISO
		}
		sources = append(sources, map[string]any{
			"url":               s.URL,
			"label":             s.Label,
			"source_quality":    s.SourceQuality,
			"last_reviewed_iso": reviewed,
		})
	}

	return map[string]any{
		"state":          state.Abbreviation,
		"state_name":     state.Name,
		"coverage_tier":  state.Tier,
		"coverage_label": label,
		"sources":        sources,
	}
}
