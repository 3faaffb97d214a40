package app

import (
	"github.com/alexanderramin/fluxo/internal/curriculum"
	"github.com/alexanderramin/fluxo/internal/domain"
)

// Overview summarises completion of the mandatory grid.
type Overview struct {
	TotalCredits     int
	CompletedCredits int
	Percentage       float64
	Semesters        []curriculum.SemesterCredits
	CompletedCount   int
	InProgressCount  int
	MandatoryCount   int
}

// RelatedDiscipline is a neighbour shown in a details view. Unresolved codes
// carry the code as Name and Resolved=false.
type RelatedDiscipline struct {
	Code     string
	Name     string
	Status   domain.ProgressStatus
	Resolved bool
}

// DisciplineDetails is everything shown for a single discipline.
type DisciplineDetails struct {
	Discipline    domain.Discipline
	Status        domain.ProgressStatus
	Planned       bool
	Prerequisites []RelatedDiscipline
	Successors    []RelatedDiscipline
	Corequisites  []RelatedDiscipline
	PortalURL     string
}

// PortalURL links the course page on the university portal.
const PortalURL = "https://sigaa.ufpb.br/sigaa/public/curso/portal.jsf?lc=pt_BR&id=1626809"
