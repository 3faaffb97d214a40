// Package planner checks a proposed set of enrollments against completion
// state. It only reports; nothing is ever blocked.
package planner

import (
	"fmt"

	"github.com/alexanderramin/fluxo/internal/curriculum"
	"github.com/alexanderramin/fluxo/internal/domain"
)

// Violation is one planned discipline whose direct prerequisite is not
// completed.
type Violation struct {
	Discipline   string
	Prerequisite string
	Status       domain.ProgressStatus
}

// Result is the planning report.
type Result struct {
	TotalCredits int
	Disciplines  []domain.Discipline
	Violations   []Violation
	Warnings     []string
}

// HasWarnings reports whether any prerequisite is unmet.
func (r Result) HasWarnings() bool { return len(r.Warnings) > 0 }

// Validate walks planned in order. Unknown codes are skipped. Each
// prerequisite not marked completed yields one warning, with no
// de-duplication across planned disciplines. Planned disciplines do not
// satisfy each other's prerequisites.
func Validate(planned []string, g *curriculum.Graph, progress curriculum.StatusReader) Result {
	res := Result{
		Disciplines: []domain.Discipline{},
		Violations:  []Violation{},
		Warnings:    []string{},
	}
	for _, code := range planned {
		d, ok := g.Lookup(code)
		if !ok {
			continue
		}
		res.TotalCredits += d.Credits
		res.Disciplines = append(res.Disciplines, d)

		for _, prereq := range d.Prerequisites {
			st := progress.StatusOf(prereq)
			if st == domain.StatusCompleted {
				continue
			}
			res.Violations = append(res.Violations, Violation{Discipline: d.Code, Prerequisite: prereq, Status: st})
			res.Warnings = append(res.Warnings, WarningText(d.Name, g.DisplayName(prereq)))
		}
	}
	return res
}

// WarningText formats the user-facing message for an unmet prerequisite.
func WarningText(name, prereqName string) string {
	return fmt.Sprintf("'%s' requer '%s', que não está marcada como concluída.", name, prereqName)
}
