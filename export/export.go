// Package export builds the downloadable case binder: three formatted
// PDF documents, two metadata JSON files, and a ReadMe, packed into a
// single ZIP. Every generator is a pure function of the case record,
// the evidence metadata, and the state code; degenerate input (empty
// fields, unknown states, oversized text) never fails a generation.
package export

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/claimpilot/backend/config"
	"github.com/go-pdf/fpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Generator produces binder artifacts using the app-level texts
// (version, disclaimers, support contact) from configuration.
type Generator struct {
	app config.AppConfig
	now func() time.Time
}

// New creates a Generator. Empty app fields fall back to the fixed
// defaults so a zero AppConfig still yields complete documents.
func New(app config.AppConfig) *Generator {
	config.ApplyAppDefaults(&app)
	return &Generator{app: app, now: time.Now}
}

var (
	currencyPrinter = message.NewPrinter(language.English)
	titleCaser      = cases.Title(language.English)
)

// FormatAmount renders a claim amount as US currency with thousands
// separators. Values outside the normal currency range (NaN, ±Inf)
// fall back to their literal representation instead of failing.
func FormatAmount(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Sprintf("$%v", amount)
	}
	return currencyPrinter.Sprintf("$%.2f", amount)
}

// humanClaimType turns "property_damage" into "Property Damage".
func humanClaimType(claimType string) string {
	if claimType == "" {
		claimType = "small_claims"
	}
	return titleCaser.String(strings.ReplaceAll(claimType, "_", " "))
}

// newPDF returns a letter-format page with a cp1252 translator for
// user-entered text. Core PDF fonts cannot encode arbitrary Unicode;
// untranslatable runes degrade to their closest equivalent rather than
// corrupting the document. The creation date comes from the generator
// clock so identical inputs yield identical bytes.
func (g *Generator) newPDF(left, top, right, breakMargin float64) (*fpdf.Fpdf, func(string) string) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(g.now())
	pdf.SetMargins(left, top, right)
	pdf.SetAutoPageBreak(true, breakMargin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	return pdf, tr
}

// coverageFooter renders the shared coverage / disclaimer footer used
// by every PDF in the binder.
func (g *Generator) coverageFooter(pdf *fpdf.Fpdf, tr func(string) string, coverage string, generated time.Time) {
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(0, 5, tr("Coverage Status: "+coverage), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "I", 7)
	pdf.MultiCell(0, 4, tr(g.app.ExportDisclaimer), "", "L", false)
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(0, 4, "Generated by ClaimPilot on "+generated.Format("2006-01-02"), "", 1, "L", false, 0, "")
}

// pdfBytes flushes the document to a buffer.
func pdfBytes(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
