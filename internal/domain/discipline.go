package domain

import "fmt"

// GridPosition places a mandatory discipline in the flowchart grid.
// Row and Semester are zero-based.
type GridPosition struct {
	Row      int
	Semester int
}

// Label returns the flowchart cell label, e.g. "A1" for row 0, semester 0.
func (p GridPosition) Label() string {
	return fmt.Sprintf("%s%d", p.RowLetter(), p.Semester+1)
}

// RowLetter returns the row part of the label.
func (p GridPosition) RowLetter() string {
	return rowLetters(p.Row)
}

// rowLetters turns 0 -> A, 25 -> Z, 26 -> AA.
func rowLetters(row int) string {
	s := ""
	for n := row; n >= 0; n = n/26 - 1 {
		s = string(rune('A'+n%26)) + s
	}
	return s
}

// Discipline is one course of the curriculum. Values are immutable once the
// curriculum graph has been built.
type Discipline struct {
	Code          string
	Name          string
	Credits       int
	Prerequisites []string
	Corequisites  []string
	Category      Category

	// Position is nil for optional disciplines.
	Position *GridPosition
}

// IsMandatory reports whether the discipline sits on the mandatory grid.
func (d Discipline) IsMandatory() bool {
	return d.Position != nil
}

// HasPrerequisites reports whether the discipline lists any prerequisite.
func (d Discipline) HasPrerequisites() bool {
	return len(d.Prerequisites) > 0
}

// Label returns the grid label, or "OPT" for optional disciplines.
func (d Discipline) Label() string {
	if d.Position == nil {
		return "OPT"
	}
	return d.Position.Label()
}
