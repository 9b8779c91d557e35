package handler

import (
	"net/http"
	"time"

	"github.com/claimpilot/backend/middleware"
	"github.com/claimpilot/backend/model"
	"github.com/claimpilot/backend/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EvidenceHandler struct {
	minioService *service.MinioService
	store        *service.CaseStore
}

func NewEvidenceHandler(minioSvc *service.MinioService) *EvidenceHandler {
	return &EvidenceHandler{
		minioService: minioSvc,
		store:        service.GetCaseStore(),
	}
}

// Upload stores an evidence file and records its metadata. The file
// bytes go to object storage only; the session keeps metadata.
func (h *EvidenceHandler) Upload(c *gin.Context) {
	tenant := middleware.GetTenant(c)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	itemID := uuid.New().String()
	objectName := service.EvidenceObjectName(tenant, itemID, header.Filename)

	err = h.minioService.UploadEvidence(c.Request.Context(), objectName, file, header.Size, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file: " + err.Error()})
		return
	}

	item := model.EvidenceItem{
		ItemID:        itemID,
		Label:         c.PostForm("label"),
		FileName:      header.Filename,
		FileType:      contentType,
		FileSizeBytes: header.Size,
		Description:   c.PostForm("description"),
		DateAdded:     time.Now().UTC().Format(time.RFC3339),
	}
	h.store.AddEvidence(tenant, item)

	c.JSON(http.StatusOK, item)
}

// List returns the tenant's evidence metadata in upload order
func (h *EvidenceHandler) List(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	items := h.store.ListEvidence(tenant)
	if items == nil {
		items = []model.EvidenceItem{}
	}

	c.JSON(http.StatusOK, gin.H{"evidence": items})
}

// Download returns a presigned URL for one evidence file
func (h *EvidenceHandler) Download(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	itemID := c.Param("id")

	var found *model.EvidenceItem
	for _, item := range h.store.ListEvidence(tenant) {
		if item.ItemID == itemID {
			found = &item
			break
		}
	}
	if found == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Evidence not found"})
		return
	}

	objectName := service.EvidenceObjectName(tenant, found.ItemID, found.FileName)
	url, err := h.minioService.GetPresignedURL(c.Request.Context(), objectName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate URL: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Delete removes one evidence item and its stored file
func (h *EvidenceHandler) Delete(c *gin.Context) {
	tenant := middleware.GetTenant(c)
	itemID := c.Param("id")

	item, ok := h.store.DeleteEvidence(tenant, itemID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Evidence not found"})
		return
	}

	objectName := service.EvidenceObjectName(tenant, item.ItemID, item.FileName)
	if err := h.minioService.DeleteEvidence(c.Request.Context(), objectName); err != nil {
		// Metadata is already gone; log and report success anyway
		c.JSON(http.StatusOK, gin.H{"message": "Evidence deleted", "warning": "stored file cleanup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Evidence deleted"})
}
