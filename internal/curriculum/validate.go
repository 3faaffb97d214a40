package curriculum

import (
	"fmt"

	"github.com/alexanderramin/fluxo/internal/domain"
)

// ValidateDataset checks the dataset shape before graph construction and
// returns every problem found. Duplicate codes are reported by NewGraph.
func ValidateDataset(ds *Dataset) []error {
	var errs []error

	if ds.Semesters < 0 {
		errs = append(errs, fmt.Errorf("semesters must not be negative (got %d)", ds.Semesters))
	}
	width := ds.SemesterCount()

	for r, row := range ds.Grid {
		if len(row) != width {
			errs = append(errs, fmt.Errorf("grid row %d: expected %d cells, got %d", r+1, width, len(row)))
		}
		for c, cell := range row {
			if cell == nil {
				continue
			}
			prefix := fmt.Sprintf("grid[%d][%d]", r, c)
			errs = append(errs, validateDiscipline(prefix, cell)...)
		}
	}

	for i := range ds.Optional {
		prefix := fmt.Sprintf("optional[%d]", i)
		errs = append(errs, validateDiscipline(prefix, &ds.Optional[i])...)
	}

	return errs
}

func validateDiscipline(prefix string, d *DisciplineConfig) []error {
	var errs []error

	if d.Code == "" {
		errs = append(errs, fmt.Errorf("%s.code is required", prefix))
	} else {
		prefix = fmt.Sprintf("%s (%s)", prefix, d.Code)
	}
	if d.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	}
	if d.Credits <= 0 {
		errs = append(errs, fmt.Errorf("%s.credits must be positive (got %d)", prefix, d.Credits))
	}
	if _, ok := domain.ParseCategory(d.Category); !ok {
		errs = append(errs, fmt.Errorf("%s.category: invalid value %q", prefix, d.Category))
	}
	for i, p := range d.Prerequisites {
		if p == "" {
			errs = append(errs, fmt.Errorf("%s.prerequisites[%d] is empty", prefix, i))
		}
	}

	return errs
}
