package export

import (
	"fmt"
	"strings"

	"github.com/claimpilot/backend/model"
	"github.com/claimpilot/backend/states"
)

// DemandLetter generates the pre-litigation demand letter PDF:
// sender block, certified-mail notice, demand amount with a 30-day
// deadline, statement of facts, and intent to file suit.
func (g *Generator) DemandLetter(record *model.CaseRecord, stateAbbr string) ([]byte, error) {
	state, known := states.Get(stateAbbr)
	coverage := states.TierLabel(stateAbbr)
	stateName := stateAbbr
	if known {
		stateName = state.Name
	}

	pdf, tr := g.newPDF(25, 20, 25, 25)

	claimantName := orPlaceholder(record.ClaimantName, "[Your Name]")
	claimantAddr := orPlaceholder(record.ClaimantAddress, "[Your Address]")
	respondentName := orPlaceholder(record.RespondentName, "[Respondent Name]")
	respondentAddr := orPlaceholder(record.RespondentAddress, "[Respondent Address]")
	description := orPlaceholder(record.Description, "[Description of claim]")
	incidentDate := orPlaceholder(record.IncidentDateString(), "[Date of Incident]")
	amountStr := FormatAmount(record.AmountClaimed)

	today := g.now()
	deadline := today.AddDate(0, 0, 30)

	// Sender's address block (top right)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range strings.Split(claimantName, "\n") {
		pdf.CellFormat(0, 6, tr(strings.TrimSpace(line)), "", 1, "R", false, 0, "")
	}
	for _, line := range strings.Split(claimantAddr, "\n") {
		pdf.CellFormat(0, 6, tr(strings.TrimSpace(line)), "", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// Date
	pdf.CellFormat(0, 7, today.Format("January 2, 2006"), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Delivery method
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "VIA CERTIFIED MAIL, RETURN RECEIPT REQUESTED", "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Recipient address block
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(respondentName), "", 1, "L", false, 0, "")
	for _, line := range strings.Split(respondentAddr, "\n") {
		pdf.CellFormat(0, 6, tr(strings.TrimSpace(line)), "", 1, "L", false, 0, "")
	}
	pdf.Ln(5)

	// Re: line
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, tr("Re: Demand for Payment - "+amountStr), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Salutation
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr("Dear "+respondentName+":"), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Introduction and demand
	pdf.MultiCell(0, 6, tr(fmt.Sprintf(
		"I am writing to formally demand payment in the amount of %s "+
			"for damages arising from the matter described below. This letter serves "+
			"as a final demand before I pursue legal action.", amountStr)),
		"", "L", false)
	pdf.Ln(3)

	// Facts
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Statement of Facts", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(fmt.Sprintf(
		"On or about %s, the following occurred:\n\n%s", incidentDate, description)),
		"", "L", false)
	pdf.Ln(3)

	// Prior resolution attempts, only when the intake mentioned any
	if record.ResolutionAttempted != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, "Prior Attempts to Resolve", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(
			"I have previously attempted to resolve this matter informally: "+record.ResolutionAttempted),
			"", "L", false)
		pdf.Ln(3)
	}

	// Demand
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Demand", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(fmt.Sprintf(
		"I hereby demand payment of %s to be received no later than "+
			"%s (thirty days from the date of this letter). "+
			"Payment should be made by certified check or money order payable to "+
			"%s and mailed to the address listed above.",
		amountStr, deadline.Format("January 2, 2006"), claimantName)),
		"", "L", false)
	pdf.Ln(3)

	// Consequences
	courtName := "the appropriate court"
	if known && state.CourtName != "" {
		courtName = state.CourtName
	}
	maxClaimNote := ""
	if known && state.MaxClaimAmount > 0 {
		maxClaimNote = fmt.Sprintf(
			" Under %s law, small claims court handles claims up to %s.",
			stateName, currencyPrinter.Sprintf("$%d", state.MaxClaimAmount))
	}
	pdf.MultiCell(0, 6, tr(fmt.Sprintf(
		"If I do not receive payment by the deadline stated above, I intend to "+
			"file a claim in %s in the State of %s "+
			"to recover the amount owed, plus any applicable court costs and fees.%s "+
			"I reserve all rights and remedies available to me under the law.",
		courtName, stateName, maxClaimNote)),
		"", "L", false)
	pdf.Ln(3)

	// Closing
	pdf.MultiCell(0, 6, tr(
		"I hope we can resolve this matter without the need for litigation. "+
			"Please contact me at the address above to discuss resolution."),
		"", "L", false)
	pdf.Ln(5)

	pdf.CellFormat(0, 7, "Sincerely,", "", 1, "L", false, 0, "")
	pdf.Ln(12)
	pdf.CellFormat(0, 7, "________________________________________", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr(claimantName), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Enclosures
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, "Enclosures: [List supporting documents]", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "cc: [Your records]", "", 1, "L", false, 0, "")

	g.coverageFooter(pdf, tr, coverage, today)

	return pdfBytes(pdf)
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
