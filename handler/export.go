package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/claimpilot/backend/config"
	"github.com/claimpilot/backend/export"
	"github.com/claimpilot/backend/middleware"
	"github.com/claimpilot/backend/pkg/logger"
	"github.com/claimpilot/backend/service"
	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	generator    *export.Generator
	store        *service.CaseStore
	supportEmail string
}

func NewExportHandler(app config.AppConfig) *ExportHandler {
	config.ApplyAppDefaults(&app)
	return &ExportHandler{
		generator:    export.New(app),
		store:        service.GetCaseStore(),
		supportEmail: app.SupportEmail,
	}
}

// Binder generates and downloads the complete case binder ZIP.
// Incomplete intake data still produces a binder; the only failure is
// an internal safety violation, which the user cannot fix, so the
// response carries the support contact instead of internals.
func (h *ExportHandler) Binder(c *gin.Context) {
	tenant := middleware.GetTenant(c)

	record, items := h.store.Snapshot(tenant)
	stateAbbr := record.State

	binder, err := h.generator.Binder(record, items, stateAbbr)
	if err != nil {
		logger.Error(c.Request.Context(), "binder generation failed",
			"tenant", tenant,
			"error", logger.SafeError(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf(
				"We could not generate your binder. Please try again, and contact %s if the problem persists.",
				h.supportEmail),
		})
		return
	}

	name := "ClaimPilot_Binder"
	if stateAbbr != "" {
		name += "_" + stateAbbr
	}
	name += "_" + time.Now().Format("2006-01-02") + ".zip"

	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/zip", binder)
}
