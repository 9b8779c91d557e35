package model

// EvidenceItem describes a single piece of uploaded evidence.
// Only metadata is kept here -- there is deliberately no field that can
// hold file content, so raw bytes can never reach the export pipeline.
type EvidenceItem struct {
	ItemID        string `json:"item_id"`
	Label         string `json:"label"`
	FileName      string `json:"file_name"`
	FileType      string `json:"file_type"` // declared MIME type
	FileSizeBytes int64  `json:"file_size_bytes"`
	Description   string `json:"description"`
	DateAdded     string `json:"date_added"` // ISO-8601
}

// MetadataMap returns the item as a generic map for JSON export.
func (e *EvidenceItem) MetadataMap() map[string]any {
	return map[string]any{
		"item_id":         e.ItemID,
		"label":           e.Label,
		"file_name":       e.FileName,
		"file_type":       e.FileType,
		"file_size_bytes": e.FileSizeBytes,
		"date_added":      e.DateAdded,
	}
}
