package export

import (
	"fmt"
	"strings"

	"github.com/claimpilot/backend/model"
	"github.com/claimpilot/backend/states"
	"github.com/go-pdf/fpdf"
)

// recommendedCopies is the per-state recommended number of filing
// copies. Static configuration with a generic fallback.
var recommendedCopies = map[string]string{
	"CA": "2", "FL": "2", "GA": "2", "IL": "3",
	"NJ": "2", "NY": "2", "OH": "2", "PA": "2",
	"TX": "2", "WA": "2",
}

func numCopies(stateAbbr string) string {
	if n, ok := recommendedCopies[strings.ToUpper(stateAbbr)]; ok {
		return n
	}
	return "2-3"
}

// ClaimForm generates the small-claims court filing template PDF:
// court header, plaintiff/defendant blocks, claim details, perjury
// declaration, signature block, and filing instructions.
func (g *Generator) ClaimForm(record *model.CaseRecord, stateAbbr string) ([]byte, error) {
	state, known := states.Get(stateAbbr)
	coverage := states.TierLabel(stateAbbr)
	stateName := stateAbbr
	if known {
		stateName = state.Name
	}

	pdf, tr := g.newPDF(15, 15, 15, 20)
	pageW, _ := pdf.GetPageSize()

	g.renderCourtHeader(pdf, tr, state, known, stateName)
	pdf.Ln(3)

	// Case number field, right-aligned
	pdf.SetFont("Helvetica", "B", 9)
	y := pdf.GetY()
	pdf.CellFormat(0, 6, "", "", 1, "L", false, 0, "")
	pdf.SetXY(pageW-85, y)
	pdf.CellFormat(30, 6, "Case No.: ", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(40, 6, "____________________", "", 1, "L", false, 0, "")
	pdf.SetX(15)
	pdf.Ln(2)

	// Plaintiff
	sectionHeader(pdf, "PLAINTIFF / CLAIMANT (Person filing this claim)")
	pdf.Ln(2)
	labeledField(pdf, tr, "Full Legal Name", record.ClaimantName)
	street, cityLine := splitAddress(record.ClaimantAddress)
	labeledField(pdf, tr, "Street Address", street)
	labeledField(pdf, tr, "City, State, ZIP", cityLine)
	labeledField(pdf, tr, "Telephone", record.ClaimantPhone)
	labeledField(pdf, tr, "Email Address", record.ClaimantEmail)
	pdf.Ln(3)

	// Defendant
	sectionHeader(pdf, "DEFENDANT / RESPONDENT (Person or business you are suing)")
	pdf.Ln(2)
	labeledField(pdf, tr, "Full Legal Name", record.RespondentName)
	street, cityLine = splitAddress(record.RespondentAddress)
	labeledField(pdf, tr, "Street Address", street)
	labeledField(pdf, tr, "City, State, ZIP", cityLine)
	pdf.Ln(3)

	// Claim details
	sectionHeader(pdf, "CLAIM DETAILS")
	pdf.Ln(2)
	labeledField(pdf, tr, "Amount Claimed", FormatAmount(record.AmountClaimed))
	if known && state.MaxClaimAmount > 0 {
		pdf.SetFont("Helvetica", "I", 8)
		note := fmt.Sprintf("  (Maximum for %s small claims: %s)",
			stateName, currencyPrinter.Sprintf("$%d", state.MaxClaimAmount))
		pdf.CellFormat(0, 5, tr(note), "", 1, "L", false, 0, "")
	}
	labeledField(pdf, tr, "Date of Incident", record.IncidentDateString())
	labeledField(pdf, tr, "Type of Claim", humanClaimType(record.ClaimType))
	pdf.Ln(2)

	// Description
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 6, "DESCRIPTION OF CLAIM:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if record.Description != "" {
		pdf.MultiCell(0, 5, tr(record.Description), "", "L", false)
	} else {
		blankLines(pdf, pageW, 5)
	}
	pdf.Ln(2)

	// Prior resolution attempts
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 6, "PRIOR ATTEMPTS TO RESOLVE:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if record.ResolutionAttempted != "" {
		pdf.MultiCell(0, 5, tr(record.ResolutionAttempted), "", "L", false)
	} else {
		blankLines(pdf, pageW, 3)
	}
	pdf.Ln(2)

	// Relief requested, only when filled in
	if record.DesiredOutcome != "" {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(0, 6, "RELIEF REQUESTED:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(record.DesiredOutcome), "", "L", false)
		pdf.Ln(2)
	}

	// Declaration
	if pdf.GetY() > 220 {
		pdf.AddPage()
	}
	sectionHeader(pdf, "DECLARATION")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 9)
	claimantName := orPlaceholder(record.ClaimantName, "the undersigned")
	pdf.MultiCell(0, 5, tr(fmt.Sprintf(
		"I, %s, declare under penalty of perjury that the foregoing "+
			"is true and correct to the best of my knowledge. I understand that filing "+
			"a false claim is a violation of law.", claimantName)),
		"", "L", false)
	pdf.Ln(5)

	// Signature block
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 6, "Signature: ________________________________________     Date: _______________", "", 1, "L", false, 0, "")
	pdf.Ln(3)
	pdf.CellFormat(0, 6, "Printed Name: ______________________________________", "", 1, "L", false, 0, "")
	pdf.Ln(5)

	g.renderFilingInstructions(pdf, tr, state, known, stateAbbr)

	pdf.Ln(5)
	g.coverageFooter(pdf, tr, coverage, g.now())

	return pdfBytes(pdf)
}

// splitAddress parses a two-line address into street and
// city/state/ZIP. A single-line address is all street.
func splitAddress(addr string) (street, cityLine string) {
	if addr == "" {
		return "", ""
	}
	parts := strings.SplitN(addr, "\n", 2)
	street = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		cityLine = strings.TrimSpace(strings.Split(parts[1], "\n")[0])
	}
	return street, cityLine
}

func sectionHeader(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(0, 7, "  "+text, "1", 1, "L", true, 0, "")
	pdf.SetFillColor(255, 255, 255)
}

func labeledField(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(45, 6, label+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
}

// blankLines draws ruled lines for handwriting.
func blankLines(pdf *fpdf.Fpdf, pageW float64, count int) {
	for i := 0; i < count; i++ {
		y := pdf.GetY()
		pdf.Line(15, y+5, pageW-15, y+5)
		pdf.Ln(6)
	}
}

func (g *Generator) renderCourtHeader(pdf *fpdf.Fpdf, tr func(string) string, state states.Coverage, known bool, stateName string) {
	pdf.SetFont("Helvetica", "B", 13)
	if known && state.CourtName != "" {
		pdf.CellFormat(0, 8, tr(strings.ToUpper(state.CourtName)), "", 1, "C", false, 0, "")
	} else {
		pdf.CellFormat(0, 8, tr("SMALL CLAIMS COURT - "+strings.ToUpper(stateName)), "", 1, "C", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	if known && state.CourtDivision != "" {
		pdf.CellFormat(0, 7, tr(state.CourtDivision), "", 1, "C", false, 0, "")
	} else {
		pdf.CellFormat(0, 7, "Small Claims Division", "", 1, "C", false, 0, "")
	}

	pageW, _ := pdf.GetPageSize()
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 14)
	title := "STATEMENT OF CLAIM"
	if known && state.FormNumber != "" {
		title = fmt.Sprintf("STATEMENT OF CLAIM (%s)", state.FormNumber)
	}
	pdf.CellFormat(0, 9, tr(title), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("State of "+stateName), "", 1, "C", false, 0, "")

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)
}

func (g *Generator) renderFilingInstructions(pdf *fpdf.Fpdf, tr func(string) string, state states.Coverage, known bool, stateAbbr string) {
	sectionHeader(pdf, "FILING INSTRUCTIONS")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 9)

	var instructions []string
	if known && state.Tier == 1 {
		courtName := state.CourtName
		if courtName == "" {
			courtName = "appropriate court"
		}
		instructions = append(instructions,
			fmt.Sprintf("1. Complete this form and make %s copies.", numCopies(stateAbbr)),
			fmt.Sprintf("2. File the original with the clerk of the %s.", courtName),
		)
		if state.FilingFeeRange != "" {
			instructions = append(instructions,
				fmt.Sprintf("3. Pay the filing fee (%s). Fee waivers may be available for qualifying individuals.", state.FilingFeeRange))
		} else {
			instructions = append(instructions,
				"3. Pay the applicable filing fee. Fee waivers may be available.")
		}
		instructions = append(instructions,
			"4. Serve the defendant according to your state's rules of service.",
			"5. Attend the scheduled hearing with all evidence and witnesses.",
			"6. Bring copies of all documents listed in your Evidence Index.",
		)
		if state.OfficialFormURL != "" {
			instructions = append(instructions, "\nOfficial forms: "+state.OfficialFormURL)
		}
		if len(state.Sources) > 0 {
			instructions = append(instructions, "More information: "+state.Sources[0].URL)
		}
	} else {
		instructions = []string{
			"1. Verify this form meets your local court's requirements.",
			"2. Complete any additional required local forms.",
			"3. File with the appropriate court clerk and pay the filing fee.",
			"4. Serve the defendant according to your state's rules.",
			"5. Attend the scheduled hearing with all evidence.",
		}
	}

	for _, line := range instructions {
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
		pdf.Ln(1)
	}
}
