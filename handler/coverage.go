package handler

import (
	"net/http"
	"strings"

	"github.com/claimpilot/backend/states"
	"github.com/gin-gonic/gin"
)

type CoverageHandler struct{}

func NewCoverageHandler() *CoverageHandler {
	return &CoverageHandler{}
}

// List returns the supported and guidance-only state code lists
func (h *CoverageHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tier1": states.Tier1Codes,
		"tier2": states.Tier2Codes,
	})
}

// Get returns coverage details for one state. Unknown codes are not an
// error; they come back as guidance-only with no metadata so the intake
// flow can continue.
func (h *CoverageHandler) Get(c *gin.Context) {
	code := strings.ToUpper(c.Param("state"))

	state, known := states.Get(code)
	if !known {
		c.JSON(http.StatusOK, gin.H{
			"state":          code,
			"coverage_tier":  nil,
			"coverage_label": states.TierLabel(code),
			"verified":       false,
		})
		return
	}

	resp := gin.H{
		"state":          state.Abbreviation,
		"state_name":     state.Name,
		"coverage_tier":  state.Tier,
		"coverage_label": states.TierLabel(code),
		"verified":       state.Tier == 1,
	}
	if state.Tier == 1 {
		resp["court_name"] = state.CourtName
		resp["court_division"] = state.CourtDivision
		resp["form_number"] = state.FormNumber
		resp["max_claim_amount"] = state.MaxClaimAmount
		resp["filing_fee_range"] = state.FilingFeeRange
		resp["official_form_url"] = state.OfficialFormURL
		resp["notes"] = state.Notes

		sources := make([]gin.H, 0, len(state.Sources))
		for _, s := range state.Sources {
			sources = append(sources, gin.H{
				"url":               s.URL,
				"label":             s.Label,
				"source_quality":    s.SourceQuality,
				"last_reviewed_iso": s.LastReviewedISO,
			})
		}
		resp["sources"] = sources
	}

	c.JSON(http.StatusOK, resp)
}
