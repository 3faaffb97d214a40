package curriculum

import (
	"errors"
	"fmt"
	"slices"

	"github.com/alexanderramin/fluxo/internal/domain"
)

// ErrDuplicateCode marks a dataset in which two disciplines share a code.
var ErrDuplicateCode = errors.New("duplicate discipline code")

// DuplicateCodeError reports where a colliding code was found.
type DuplicateCodeError struct {
	Code   string
	First  string
	Second string
}

func (e *DuplicateCodeError) Error() string {
	return fmt.Sprintf("%s: %q appears at %s and %s", ErrDuplicateCode, e.Code, e.First, e.Second)
}

func (e *DuplicateCodeError) Unwrap() error { return ErrDuplicateCode }

// Graph is the immutable curriculum: disciplines indexed by code plus the
// reverse prerequisite (successor) index. Build it once with NewGraph.
type Graph struct {
	semesters int
	grid      [][]string // row-major codes, "" for empty cells
	mandatory []string
	optional  []string

	byCode     map[string]domain.Discipline
	successors map[string][]string

	creditsPerSemester []int
	totalMandatory     int
}

// NewGraph validates the dataset and builds the graph. It fails on schema
// violations and on duplicate codes; unresolved prerequisite codes are
// accepted and surface only at query time.
func NewGraph(ds *Dataset) (*Graph, error) {
	if errs := ValidateDataset(ds); len(errs) > 0 {
		return nil, fmt.Errorf("invalid dataset: %w", errors.Join(errs...))
	}

	g := &Graph{
		semesters:          ds.SemesterCount(),
		byCode:             make(map[string]domain.Discipline),
		successors:         make(map[string][]string),
		creditsPerSemester: make([]int, ds.SemesterCount()),
	}
	seenAt := make(map[string]string)

	add := func(cfg *DisciplineConfig, pos *domain.GridPosition, where string) error {
		if first, dup := seenAt[cfg.Code]; dup {
			return &DuplicateCodeError{Code: cfg.Code, First: first, Second: where}
		}
		seenAt[cfg.Code] = where
		category, _ := domain.ParseCategory(cfg.Category)
		g.byCode[cfg.Code] = domain.Discipline{
			Code:          cfg.Code,
			Name:          cfg.Name,
			Credits:       cfg.Credits,
			Prerequisites: slices.Clone(cfg.Prerequisites),
			Corequisites:  slices.Clone(cfg.Corequisites),
			Category:      category,
			Position:      pos,
		}
		return nil
	}

	for r, row := range ds.Grid {
		codes := make([]string, g.semesters)
		for c, cell := range row {
			if cell == nil {
				continue
			}
			pos := &domain.GridPosition{Row: r, Semester: c}
			if err := add(cell, pos, pos.Label()); err != nil {
				return nil, err
			}
			codes[c] = cell.Code
			g.mandatory = append(g.mandatory, cell.Code)
			g.creditsPerSemester[c] += cell.Credits
			g.totalMandatory += cell.Credits
		}
		g.grid = append(g.grid, codes)
	}

	for i := range ds.Optional {
		cfg := &ds.Optional[i]
		if err := add(cfg, nil, fmt.Sprintf("OP%d", i+1)); err != nil {
			return nil, err
		}
		g.optional = append(g.optional, cfg.Code)
	}

	for _, code := range g.allCodes() {
		for _, p := range g.byCode[code].Prerequisites {
			if !slices.Contains(g.successors[p], code) {
				g.successors[p] = append(g.successors[p], code)
			}
		}
	}

	return g, nil
}

// allCodes returns mandatory codes in grid order followed by optional codes.
func (g *Graph) allCodes() []string {
	out := make([]string, 0, len(g.mandatory)+len(g.optional))
	out = append(out, g.mandatory...)
	return append(out, g.optional...)
}

// Semesters returns the number of semester columns in the grid.
func (g *Graph) Semesters() int { return g.semesters }

// Rows returns the number of grid rows.
func (g *Graph) Rows() int { return len(g.grid) }

// Cell returns the discipline at row r, semester c, or false for an empty
// or out-of-range cell.
func (g *Graph) Cell(r, c int) (domain.Discipline, bool) {
	if r < 0 || r >= len(g.grid) || c < 0 || c >= g.semesters {
		return domain.Discipline{}, false
	}
	code := g.grid[r][c]
	if code == "" {
		return domain.Discipline{}, false
	}
	return g.Lookup(code)
}

// Lookup resolves a code. The returned value does not alias graph state.
func (g *Graph) Lookup(code string) (domain.Discipline, bool) {
	d, ok := g.byCode[code]
	if !ok {
		return domain.Discipline{}, false
	}
	d.Prerequisites = slices.Clone(d.Prerequisites)
	d.Corequisites = slices.Clone(d.Corequisites)
	if d.Position != nil {
		pos := *d.Position
		d.Position = &pos
	}
	return d, true
}

// Has reports whether code names a known discipline.
func (g *Graph) Has(code string) bool {
	_, ok := g.byCode[code]
	return ok
}

// Mandatory returns the grid disciplines in row-major order.
func (g *Graph) Mandatory() []domain.Discipline {
	return g.resolve(g.mandatory)
}

// Optional returns the optional disciplines in dataset order.
func (g *Graph) Optional() []domain.Discipline {
	return g.resolve(g.optional)
}

// All returns every discipline, mandatory first.
func (g *Graph) All() []domain.Discipline {
	return g.resolve(g.allCodes())
}

// Len returns the number of disciplines in the graph.
func (g *Graph) Len() int { return len(g.byCode) }

func (g *Graph) resolve(codes []string) []domain.Discipline {
	out := make([]domain.Discipline, 0, len(codes))
	for _, code := range codes {
		d, _ := g.Lookup(code)
		out = append(out, d)
	}
	return out
}
