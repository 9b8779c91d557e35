package export

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/claimpilot/backend/model"
)

// BinderFiles is the exact member list of every binder ZIP, in write
// order. No binder is ever produced with more, fewer, or renamed
// members.
var BinderFiles = []string{
	"DemandLetter.pdf",
	"ClaimForm.pdf",
	"EvidenceIndex.pdf",
	"CaseSummary.json",
	"Sources.json",
	"ReadMe.txt",
}

// Binder assembles the complete case binder ZIP. Degenerate case data
// never fails the assembly; the only error path is an export safety
// violation from a metadata generator, which indicates a bug and must
// reach the caller.
func (g *Generator) Binder(record *model.CaseRecord, items []model.EvidenceItem, stateAbbr string) ([]byte, error) {
	letter, err := g.DemandLetter(record, stateAbbr)
	if err != nil {
		return nil, err
	}
	form, err := g.ClaimForm(record, stateAbbr)
	if err != nil {
		return nil, err
	}
	index, err := g.EvidenceIndex(items, stateAbbr)
	if err != nil {
		return nil, err
	}
	summary, err := g.CaseSummary(record, items, stateAbbr)
	if err != nil {
		return nil, err
	}
	sources, err := g.Sources(stateAbbr)
	if err != nil {
		return nil, err
	}
	readme := g.ReadMe(stateAbbr)

	members := [][]byte{letter, form, index, summary, sources, []byte(readme)}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, name := range BinderFiles {
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("failed to add %s to binder: %w", name, err)
		}
		if _, err := w.Write(members[i]); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize binder: %w", err)
	}

	return buf.Bytes(), nil
}
