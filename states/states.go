// Package states holds the per-state coverage registry.
//
// Tier 1 ("Supported"): state-specific form mapping verified by legal review.
// Tier 2 ("Guidance-only"): general template; user must verify local requirements.
//
// The registry is built once at init and never mutated, so concurrent
// reads need no synchronization.
package states

import (
	"fmt"
	"sort"
	"strings"
)

// Source is a single reference backing a state's legal guidance.
type Source struct {
	URL             string
	Label           string
	SourceQuality   string // "official" | "aggregator"
	LastReviewedISO string // ISO-8601 date, empty when never reviewed
}

// Coverage is the immutable coverage entry for a single US state.
type Coverage struct {
	Name            string
	Abbreviation    string
	Tier            int // 1 or 2
	Sources         []Source
	OfficialFormURL string // only set for tier 1
	Notes           string

	// Court metadata, tier 1 states only.
	CourtName      string
	CourtDivision  string
	FormNumber     string
	MaxClaimAmount int
	FilingFeeRange string
}

var tier1 = []Coverage{
	{
		Name:         "California",
		Abbreviation: "CA",
		Tier:         1,
		Sources: []Source{
			{
				URL:             "https://www.courts.ca.gov/selfhelp-smallclaims.htm",
				Label:           "California Courts - Small Claims Self-Help",
				SourceQuality:   "official",
				LastReviewedISO: "2025-12-15",
			},
			{
				URL:             "https://www.courts.ca.gov/1062.htm",
				Label:           "California Courts - Small Claims Forms",
				SourceQuality:   "official",
				LastReviewedISO: "2025-12-15",
			},
		},
		OfficialFormURL: "https://www.courts.ca.gov/documents/sc100.pdf",
		Notes:           "SC-100 Plaintiff's Claim and ORDER to Go to Small Claims Court.",
		CourtName:       "Superior Court of California",
		CourtDivision:   "Small Claims Division",
		FormNumber:      "SC-100",
		MaxClaimAmount:  12500,
		FilingFeeRange:  "$30 - $75",
	},
	{
		Name:         "Florida",
		Abbreviation: "FL",
		Tier:         1,
		Sources: []Source{
			{
				URL:             "https://www.flcourts.gov/Resources-Services/Court-Improvement/Self-Help-Information",
				Label:           "Florida Courts - Self-Help Information",
				SourceQuality:   "official",
				LastReviewedISO: "2025-11-20",
			},
			{
				URL:             "https://www.flcourts.gov/content/download/403225/3459633/form7.010.pdf",
				Label:           "Florida Small Claims Rules - Form 7.010",
				SourceQuality:   "official",
				LastReviewedISO: "2025-11-20",
			},
		},
		OfficialFormURL: "https://www.flcourts.gov/content/download/403225/3459633/form7.010.pdf",
		Notes:           "Form 7.010 Statement of Claim (Small Claims).",
		CourtName:       "County Court",
		CourtDivision:   "Small Claims Division",
		FormNumber:      "Form 7.010",
		MaxClaimAmount:  8000,
		FilingFeeRange:  "$55 - $300",
	},
	{
		Name:         "Georgia",
		Abbreviation: "GA",
		Tier:         1,
		Sources: []Source{
			{
				URL:             "https://georgiacourts.gov/magistrate-court/",
				Label:           "Georgia Courts - Magistrate Court",
				SourceQuality:   "official",
				LastReviewedISO: "2025-10-15",
			},
			{
				URL:             "https://georgiacourts.gov/wp-content/uploads/2019/07/CIVIL_CASE_FILING_INFORMATION_FORM.pdf",
				Label:           "Georgia Magistrate Court - Civil Case Filing Form",
				SourceQuality:   "official",
				LastReviewedISO: "2025-10-15",
			},
		},
		OfficialFormURL: "https://georgiacourts.gov/wp-content/uploads/2019/07/CIVIL_CASE_FILING_INFORMATION_FORM.pdf",
		Notes:           "Magistrate Court Statement of Claim. Georgia uses county-level magistrate courts.",
		CourtName:       "Magistrate Court",
		CourtDivision:   "Small Claims Division",
		FormNumber:      "Statement of Claim",
		MaxClaimAmount:  15000,
		FilingFeeRange:  "$45 - $75",
	},
	{
		Name:         "Illinois",
		Abbreviation: "IL",
		Tier:         1,
		Sources: []Source{
			{
				URL:             "https://www.illinoiscourts.gov/forms/approved-forms/",
				Label:           "Illinois Courts - Approved Forms",
				SourceQuality:   "official",
				LastReviewedISO: "2025-09-10",
			},
			{
				URL:             "https://www.illinoiscourts.gov/Resources/1f27c27c-32b8-4e57-87c0-8f3e2ad657a4/SC_2_0_Small_Claims_Complaint.pdf",
				Label:           "Illinois - Small Claims Complaint Form SC 2-1",
				SourceQuality:   "official",
				LastReviewedISO: "2025-09-10",
			},
		},
		OfficialFormURL: "https://www.illinoiscourts.gov/Resources/1f27c27c-32b8-4e57-87c0-8f3e2ad657a4/SC_2_0_Small_Claims_Complaint.pdf",
		Notes:           "Form SC 2-1 Small Claims Complaint. Filed in Circuit Court.",
		CourtName:       "Circuit Court of Illinois",
		CourtDivision:   "Small Claims Division",
		FormNumber:      "SC 2-1",
		MaxClaimAmount:  10000,
		FilingFeeRange:  "$20 - $75",
	},
	{
		Name:         "New Jersey",
		Abbreviation: "NJ",
		Tier:         1,
		Sources: []Source{
			{
				URL:             "https://www.njcourts.gov/self-help/small-claims",
				Label:           "New Jersey Courts - Small Claims",
				SourceQuality:   "official",
				LastReviewedISO: "2025-10-01",
			},
			{
				URL:             "https://www.njcourts.gov/sites/default/files/forms/11789/dc_sm_clmntgd_0.pdf",
				Label:           "New Jersey - Small Claims Plaintiff Guide",
				SourceQuality:   "official",
				LastReviewedISO: "2025-10-01",
			},
		},
		OfficialFormURL: "https://www.njcourts.gov/self-help/small-claims",
		Notes:           "Small Claims Complaint. Filed in Superior Court, Special Civil Part.",
		CourtName:       "Superior Court of New Jersey",
		CourtDivision:   "Special Civil Part, Small Claims Section",
		FormNumber:      "Small Claims Complaint",
		MaxClaimAmount:  5000,
		FilingFeeRange:  "$15 - $50",
	},
	{
		Name:         "New York",
		Abbreviation: "NY",
		Tier:         1,
		Sources: []Source{
			{
				URL:             "https://nycourts.gov/courts/nyc/smallclaims/index.shtml",
				Label:           "NYC Small Claims Court",
				SourceQuality:   "official",
				LastReviewedISO: "2025-11-01",
			},
			{
				URL:             "https://www.nycourts.gov/courts/nyc/smallclaims/startingcase.shtml",
				Label:           "NYC - How to Start a Small Claims Case",
				SourceQuality:   "official",
				LastReviewedISO: "2025-11-01",
			},
		},
		OfficialFormURL: "https://nycourts.gov/courts/nyc/smallclaims/forms.shtml",
		Notes:           "Small Claims Application. Filed in City/District/Town/Village Court.",
		CourtName:       "Small Claims Court",
		CourtDivision:   "Small Claims Part",
		FormNumber:      "Small Claims Application",
		MaxClaimAmount:  10000,
		FilingFeeRange:  "$15 - $20",
	},
	{
		Name:         "Ohio",
		Abbreviation: "OH",
		Tier:         1,
		Sources: []Source{
			{
				URL:             "https://www.supremecourt.ohio.gov/public/small-claims/",
				Label:           "Ohio Supreme Court - Small Claims Information",
				SourceQuality:   "official",
				LastReviewedISO: "2025-09-25",
			},
			{
				URL:             "https://www.ohiolegalhelp.org/topic/small-claims",
				Label:           "Ohio Legal Help - Small Claims Guide",
				SourceQuality:   "aggregator",
				LastReviewedISO: "2025-09-25",
			},
		},
		OfficialFormURL: "https://www.supremecourt.ohio.gov/public/small-claims/",
		Notes:           "Small Claims Complaint. Filed in Municipal or County Court.",
		CourtName:       "Municipal Court / County Court",
		CourtDivision:   "Small Claims Division",
		FormNumber:      "Small Claims Complaint",
		MaxClaimAmount:  6000,
		FilingFeeRange:  "$30 - $65",
	},
	{
		Name:         "Pennsylvania",
		Abbreviation: "PA",
		Tier:         1,
		Sources: []Source{
			{
				URL:             "https://www.pacourts.us/learn/minor-courts",
				Label:           "Pennsylvania Courts - Minor Courts",
				SourceQuality:   "official",
				LastReviewedISO: "2025-08-30",
			},
			{
				URL:             "https://www.pacourts.us/forms/for-the-public",
				Label:           "Pennsylvania Courts - Public Forms",
				SourceQuality:   "official",
				LastReviewedISO: "2025-08-30",
			},
		},
		OfficialFormURL: "https://www.pacourts.us/forms/for-the-public",
		Notes:           "Civil Complaint (Statement of Claim). Filed in Magisterial District Court.",
		CourtName:       "Magisterial District Court",
		CourtDivision:   "Civil Division",
		FormNumber:      "Statement of Claim",
		MaxClaimAmount:  12000,
		FilingFeeRange:  "$45 - $125",
	},
	{
		Name:         "Texas",
		Abbreviation: "TX",
		Tier:         1,
		Sources: []Source{
			{
				URL:             "https://www.txcourts.gov/rules-forms/forms/small-claims-forms/",
				Label:           "Texas Courts - Small Claims Forms",
				SourceQuality:   "official",
				LastReviewedISO: "2025-11-10",
			},
			{
				URL:             "https://www.texasattorneygeneral.gov/consumer-protection/file-complaint",
				Label:           "Texas Attorney General - Consumer Protection",
				SourceQuality:   "official",
				LastReviewedISO: "2025-11-10",
			},
		},
		OfficialFormURL: "https://www.txcourts.gov/rules-forms/forms/small-claims-forms/",
		Notes:           "Petition in Justice Court (Small Claims). Filed in Justice Court (JP Court).",
		CourtName:       "Justice Court",
		CourtDivision:   "Small Claims",
		FormNumber:      "Petition in Small Claims Court",
		MaxClaimAmount:  20000,
		FilingFeeRange:  "$31 - $54",
	},
	{
		Name:         "Washington",
		Abbreviation: "WA",
		Tier:         1,
		Sources: []Source{
			{
				URL:             "https://www.courts.wa.gov/newsinfo/resources/?fa=newsinfo_jury.smallclaims",
				Label:           "Washington Courts - Small Claims Information",
				SourceQuality:   "official",
				LastReviewedISO: "2025-10-20",
			},
			{
				URL:             "https://www.atg.wa.gov/small-claims-court",
				Label:           "Washington Attorney General - Small Claims Guide",
				SourceQuality:   "official",
				LastReviewedISO: "2025-10-20",
			},
		},
		OfficialFormURL: "https://www.courts.wa.gov/forms/?fa=forms.contribute&formID=31",
		Notes:           "Notice of Small Claim. Filed in District Court.",
		CourtName:       "District Court",
		CourtDivision:   "Small Claims Department",
		FormNumber:      "Notice of Small Claim",
		MaxClaimAmount:  10000,
		FilingFeeRange:  "$14 - $29",
	},
}

var tier2Names = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"HI": "Hawaii", "ID": "Idaho", "IN": "Indiana", "IA": "Iowa",
	"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine",
	"MD": "Maryland", "MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota",
	"MS": "Mississippi", "MO": "Missouri", "MT": "Montana", "NE": "Nebraska",
	"NV": "Nevada", "NH": "New Hampshire", "NM": "New Mexico",
	"NC": "North Carolina", "ND": "North Dakota", "OK": "Oklahoma",
	"OR": "Oregon", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "UT": "Utah", "VT": "Vermont",
	"VA": "Virginia", "WV": "West Virginia", "WI": "Wisconsin",
	"WY": "Wyoming", "DC": "District of Columbia",
}

var (
	all map[string]Coverage

	// Tier1Codes and Tier2Codes are sorted abbreviation lists. Together
	// they partition the full code space with no overlap.
	Tier1Codes []string
	Tier2Codes []string
)

func init() {
	all = make(map[string]Coverage, len(tier1)+len(tier2Names))
	for _, sc := range tier1 {
		all[sc.Abbreviation] = sc
		Tier1Codes = append(Tier1Codes, sc.Abbreviation)
	}
	for abbr, name := range tier2Names {
		all[abbr] = Coverage{
			Name:         name,
			Abbreviation: abbr,
			Tier:         2,
			Sources: []Source{
				{
					URL:           fmt.Sprintf("https://www.nolo.com/legal-encyclopedia/small-claims-court-%s.html", strings.ReplaceAll(strings.ToLower(name), " ", "-")),
					Label:         fmt.Sprintf("Nolo: %s Small Claims Guide", name),
					SourceQuality: "aggregator",
				},
			},
			Notes: "General template only. User must verify local court requirements.",
		}
		Tier2Codes = append(Tier2Codes, abbr)
	}
	sort.Strings(Tier1Codes)
	sort.Strings(Tier2Codes)
}

// Get returns the coverage entry for an abbreviation (case-insensitive).
// The second return value is false for unknown codes; callers treat that
// as guidance-only with no sources, not as an error.
func Get(abbreviation string) (Coverage, bool) {
	sc, ok := all[strings.ToUpper(abbreviation)]
	return sc, ok
}

// IsVerified reports whether a state has tier 1 (verified) coverage.
func IsVerified(abbreviation string) bool {
	sc, ok := Get(abbreviation)
	return ok && sc.Tier == 1
}

// TierLabel returns the human-readable coverage label. The wording is a
// pure function of the tier: every unverified or unknown code gets the
// guidance-only label.
func TierLabel(abbreviation string) string {
	if IsVerified(abbreviation) {
		return "Supported (Tier 1)"
	}
	return "Guidance-only (Tier 2)"
}
