package handler

import (
	"net/http"
	"time"

	"github.com/claimpilot/backend/middleware"
	"github.com/claimpilot/backend/model"
	"github.com/claimpilot/backend/service"
	"github.com/gin-gonic/gin"
)

type CaseHandler struct {
	store *service.CaseStore
}

func NewCaseHandler() *CaseHandler {
	return &CaseHandler{store: service.GetCaseStore()}
}

// CaseRequest is the intake payload. Every field is optional; the
// incident date comes in as an ISO-8601 date string.
type CaseRequest struct {
	ClaimantName        string  `json:"claimant_name"`
	ClaimantEmail       string  `json:"claimant_email"`
	ClaimantPhone       string  `json:"claimant_phone"`
	ClaimantAddress     string  `json:"claimant_address"`
	RespondentName      string  `json:"respondent_name"`
	RespondentAddress   string  `json:"respondent_address"`
	State               string  `json:"state"`
	ClaimType           string  `json:"claim_type"`
	IncidentDate        string  `json:"incident_date"`
	AmountClaimed       float64 `json:"amount_claimed"`
	Description         string  `json:"description"`
	ResolutionAttempted string  `json:"resolution_attempted"`
	DesiredOutcome      string  `json:"desired_outcome"`
}

// Save replaces the tenant's intake record
func (h *CaseHandler) Save(c *gin.Context) {
	tenant := middleware.GetTenant(c)

	var req CaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	record := &model.CaseRecord{
		ClaimantName:        req.ClaimantName,
		ClaimantEmail:       req.ClaimantEmail,
		ClaimantPhone:       req.ClaimantPhone,
		ClaimantAddress:     req.ClaimantAddress,
		RespondentName:      req.RespondentName,
		RespondentAddress:   req.RespondentAddress,
		State:               req.State,
		ClaimType:           req.ClaimType,
		AmountClaimed:       req.AmountClaimed,
		Description:         req.Description,
		ResolutionAttempted: req.ResolutionAttempted,
		DesiredOutcome:      req.DesiredOutcome,
	}
	if record.ClaimType == "" {
		record.ClaimType = model.DefaultClaimType
	}
	if req.IncidentDate != "" {
		parsed, err := time.Parse("2006-01-02", req.IncidentDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "incident_date must be YYYY-MM-DD"})
			return
		}
		record.IncidentDate = &parsed
	}

	h.store.SaveRecord(tenant, record)

	c.JSON(http.StatusOK, gin.H{"message": "Case saved"})
}

// Get returns the tenant's saved intake record
func (h *CaseHandler) Get(c *gin.Context) {
	tenant := middleware.GetTenant(c)

	record := h.store.GetRecord(tenant)
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No case saved"})
		return
	}

	c.JSON(http.StatusOK, record)
}
