package handler

import (
	"net/http"

	"github.com/claimpilot/backend/middleware"
	"github.com/claimpilot/backend/pkg/logger"
	"github.com/claimpilot/backend/service"
	"github.com/gin-gonic/gin"
)

type DataHandler struct {
	minioService *service.MinioService
	store        *service.CaseStore
}

func NewDataHandler(minioSvc *service.MinioService) *DataHandler {
	return &DataHandler{
		minioService: minioSvc,
		store:        service.GetCaseStore(),
	}
}

// Delete wipes everything stored for the tenant: the intake record,
// all evidence metadata, and every stored evidence file.
func (h *DataHandler) Delete(c *gin.Context) {
	tenant := middleware.GetTenant(c)

	removed := h.store.DeleteTenant(tenant)

	if err := h.minioService.DeleteTenantEvidence(c.Request.Context(), tenant); err != nil {
		logger.Error(c.Request.Context(), "evidence file cleanup failed",
			"tenant", tenant,
			"error", logger.SafeError(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Some stored files could not be deleted. Please retry."})
		return
	}

	logger.Info(c.Request.Context(), "tenant data deleted",
		"tenant", tenant,
		"evidence_removed", len(removed),
	)
	c.JSON(http.StatusOK, gin.H{"message": "All data deleted"})
}
