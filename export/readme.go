package export

import (
	"fmt"

	"github.com/claimpilot/backend/states"
)

// ReadMe generates the plain-text manifest: package contents,
// disclaimers, next steps, and the support contact.
func (g *Generator) ReadMe(stateAbbr string) string {
	coverage := states.TierLabel(stateAbbr)
	today := g.now().Format("2006-01-02")

	return fmt.Sprintf(`ClaimPilot Case Binder
=====================
Version: %s
Generated: %s
Coverage Status: %s

CONTENTS OF THIS PACKAGE
-------------------------
1. DemandLetter.pdf    - Draft demand letter based on your intake information.
2. ClaimForm.pdf       - Draft small claims court form for your state.
3. EvidenceIndex.pdf   - Index of all evidence items you uploaded.
4. CaseSummary.json    - Machine-readable case metadata (no raw file contents).
5. Sources.json        - Source URLs, quality ratings, and review dates for
                         the legal information used in this package.
6. ReadMe.txt          - This file.

DISCLAIMERS
-----------
%s

%s

NEXT STEPS
----------
1. Review all documents carefully for accuracy and completeness.
2. If your state coverage is "Guidance-only (Tier 2)", verify that the
   generated forms meet your local court's requirements before filing.
3. Consider having a licensed attorney review your documents.
4. Make copies of everything before submitting to the court.
5. File your claim with the appropriate court clerk.
6. Serve the respondent according to your state's rules.

SUPPORT
-------
Email: %s

Thank you for using ClaimPilot.
`, g.app.Version, today, coverage, g.app.ExportDisclaimer, g.app.LegalDisclaimer, g.app.SupportEmail)
}
