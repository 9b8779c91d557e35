package model

import (
	"time"
)

// CaseRecord holds the user-entered intake information for a single
// small-claims case. All fields may be empty; the export pipeline must
// tolerate whatever the intake form produced.
type CaseRecord struct {
	ClaimantName        string     `json:"claimant_name"`
	ClaimantEmail       string     `json:"claimant_email"`
	ClaimantPhone       string     `json:"claimant_phone"`
	ClaimantAddress     string     `json:"claimant_address"`
	RespondentName      string     `json:"respondent_name"`
	RespondentAddress   string     `json:"respondent_address"`
	State               string     `json:"state"`
	ClaimType           string     `json:"claim_type"`
	IncidentDate        *time.Time `json:"incident_date,omitempty"`
	AmountClaimed       float64    `json:"amount_claimed"`
	Description         string     `json:"description"`
	ResolutionAttempted string     `json:"resolution_attempted"`
	DesiredOutcome      string     `json:"desired_outcome"`
}

// DefaultClaimType is used when the intake form did not set one.
const DefaultClaimType = "small_claims"

// IncidentDateString returns the incident date as an ISO-8601 date,
// or an empty string when it was never entered.
func (c *CaseRecord) IncidentDateString() string {
	if c.IncidentDate == nil {
		return ""
	}
	return c.IncidentDate.Format("2006-01-02")
}
