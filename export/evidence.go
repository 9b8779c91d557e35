package export

import (
	"fmt"

	"github.com/claimpilot/backend/model"
	"github.com/claimpilot/backend/states"
	"github.com/dustin/go-humanize"
	"github.com/go-pdf/fpdf"
)

// EvidenceIndex generates a PDF listing every evidence item's metadata
// in upload order. An empty list still yields a valid document with a
// "no evidence" notice.
func (g *Generator) EvidenceIndex(items []model.EvidenceItem, stateAbbr string) ([]byte, error) {
	coverage := states.TierLabel(stateAbbr)
	stateName := stateAbbr
	if state, ok := states.Get(stateAbbr); ok {
		stateName = state.Name
	}

	pdf, tr := g.newPDF(20, 20, 20, 25)
	today := g.now()

	// Header
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, "EVIDENCE INDEX", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("State of "+stateName), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "Prepared "+today.Format("January 2, 2006"), "", 1, "C", false, 0, "")
	pageW, _ := pdf.GetPageSize()
	pdf.Line(20, pdf.GetY()+1, pageW-20, pdf.GetY()+1)
	pdf.Ln(5)

	if len(items) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.MultiCell(0, 6, "No evidence items have been added to this case. "+
			"Attach any receipts, photographs, contracts, or correspondence "+
			"before filing.", "", "L", false)
	}

	for i, item := range items {
		pdf.SetFont("Helvetica", "B", 11)
		label := item.Label
		if label == "" {
			label = "(unlabeled)"
		}
		pdf.CellFormat(0, 7, tr(fmt.Sprintf("%d. %s", i+1, label)), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		evidenceField(pdf, tr, "File name", item.FileName)
		evidenceField(pdf, tr, "File type", item.FileType)
		evidenceField(pdf, tr, "Size", humanize.Bytes(uint64(max(item.FileSizeBytes, 0))))
		evidenceField(pdf, tr, "Date added", item.DateAdded)
		if item.Description != "" {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.MultiCell(0, 5, tr("    "+item.Description), "", "L", false)
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.Ln(3)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("Total items: %d", len(items)), "", 1, "L", false, 0, "")

	g.coverageFooter(pdf, tr, coverage, today)

	return pdfBytes(pdf)
}

func evidenceField(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(35, 5, "    "+label+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr(value), "", 1, "L", false, 0, "")
}
