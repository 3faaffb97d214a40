package curriculum

import (
	"slices"

	"github.com/alexanderramin/fluxo/internal/domain"
)

// StatusReader is a read-only view of completion state.
type StatusReader interface {
	StatusOf(code string) domain.ProgressStatus
}

// PrerequisitesOf returns the stored direct prerequisites of code, in
// dataset order. Unknown codes have none.
func (g *Graph) PrerequisitesOf(code string) []string {
	d, ok := g.byCode[code]
	if !ok {
		return nil
	}
	return slices.Clone(d.Prerequisites)
}

// SuccessorsOf returns the disciplines that list code as a direct
// prerequisite. code need not be a known discipline.
func (g *Graph) SuccessorsOf(code string) []string {
	return slices.Clone(g.successors[code])
}

// DisplayName returns the discipline name, or the code itself when the code
// does not resolve.
func (g *Graph) DisplayName(code string) string {
	if d, ok := g.byCode[code]; ok {
		return d.Name
	}
	return code
}

// CreditsPerSemester sums mandatory credits per semester column.
func (g *Graph) CreditsPerSemester() []int {
	return slices.Clone(g.creditsPerSemester)
}

// TotalMandatoryCredits sums credits over the mandatory grid.
func (g *Graph) TotalMandatoryCredits() int {
	return g.totalMandatory
}

// CompletedCredits sums credits of mandatory disciplines marked completed.
func (g *Graph) CompletedCredits(progress StatusReader) int {
	total := 0
	for _, code := range g.mandatory {
		if progress.StatusOf(code) == domain.StatusCompleted {
			total += g.byCode[code].Credits
		}
	}
	return total
}

// CompletionPercentage returns completed mandatory credits as a percentage
// of all mandatory credits, 0 for an empty grid.
func (g *Graph) CompletionPercentage(progress StatusReader) float64 {
	if g.totalMandatory == 0 {
		return 0
	}
	return float64(g.CompletedCredits(progress)) / float64(g.totalMandatory) * 100
}

// SemesterCredits is the credit breakdown of one semester column.
type SemesterCredits struct {
	Total      int
	Completed  int
	InProgress int
}

// SemesterBreakdown returns per-semester totals split by status.
func (g *Graph) SemesterBreakdown(progress StatusReader) []SemesterCredits {
	out := make([]SemesterCredits, g.semesters)
	for _, row := range g.grid {
		for c, code := range row {
			if code == "" {
				continue
			}
			credits := g.byCode[code].Credits
			out[c].Total += credits
			switch progress.StatusOf(code) {
			case domain.StatusCompleted:
				out[c].Completed += credits
			case domain.StatusInProgress:
				out[c].InProgress += credits
			}
		}
	}
	return out
}

// ReferenceKind distinguishes prerequisite from corequisite references.
type ReferenceKind string

const (
	RefPrerequisite ReferenceKind = "prerequisite"
	RefCorequisite  ReferenceKind = "corequisite"
)

// UnresolvedRef is a reference to a code missing from the dataset.
type UnresolvedRef struct {
	From string
	Code string
	Kind ReferenceKind
}

// UnresolvedReferences lists every prerequisite or corequisite code that
// does not resolve, in dataset order.
func (g *Graph) UnresolvedReferences() []UnresolvedRef {
	var refs []UnresolvedRef
	for _, code := range g.allCodes() {
		d := g.byCode[code]
		for _, p := range d.Prerequisites {
			if !g.Has(p) {
				refs = append(refs, UnresolvedRef{From: code, Code: p, Kind: RefPrerequisite})
			}
		}
		for _, p := range d.Corequisites {
			if !g.Has(p) {
				refs = append(refs, UnresolvedRef{From: code, Code: p, Kind: RefCorequisite})
			}
		}
	}
	return refs
}
