package testutil

import (
	"testing"

	"github.com/alexanderramin/fluxo/internal/curriculum"
)

// Discipline options
type DisciplineOption func(*curriculum.DisciplineConfig)

func WithName(name string) DisciplineOption {
	return func(d *curriculum.DisciplineConfig) {
		d.Name = name
	}
}

func WithCredits(n int) DisciplineOption {
	return func(d *curriculum.DisciplineConfig) {
		d.Credits = n
	}
}

func WithPrerequisites(codes ...string) DisciplineOption {
	return func(d *curriculum.DisciplineConfig) {
		d.Prerequisites = codes
	}
}

func WithCorequisites(codes ...string) DisciplineOption {
	return func(d *curriculum.DisciplineConfig) {
		d.Corequisites = codes
	}
}

func WithCategory(c string) DisciplineOption {
	return func(d *curriculum.DisciplineConfig) {
		d.Category = c
	}
}

// NewTestDiscipline returns a 4-credit core-department discipline whose name
// equals its code unless overridden.
func NewTestDiscipline(code string, opts ...DisciplineOption) *curriculum.DisciplineConfig {
	d := &curriculum.DisciplineConfig{
		Code:     code,
		Name:     code,
		Credits:  4,
		Category: "core-department",
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewTestDataset builds a dataset with the given grid width. A nil cell is an
// empty grid slot.
func NewTestDataset(semesters int, grid [][]*curriculum.DisciplineConfig, optional ...*curriculum.DisciplineConfig) *curriculum.Dataset {
	ds := &curriculum.Dataset{Semesters: semesters, Grid: grid}
	for _, o := range optional {
		ds.Optional = append(ds.Optional, *o)
	}
	return ds
}

// NewTestGraph builds a graph and fails the test on error.
func NewTestGraph(t *testing.T, ds *curriculum.Dataset) *curriculum.Graph {
	t.Helper()
	g, err := curriculum.NewGraph(ds)
	if err != nil {
		t.Fatalf("failed to build curriculum graph: %v", err)
	}
	return g
}

// NewPrereqChainGraph returns the two-discipline curriculum X -> Y used across
// planner and service tests: Y has no prerequisites, X requires Y, and Z
// (optional) also requires Y.
func NewPrereqChainGraph(t *testing.T) *curriculum.Graph {
	t.Helper()
	return NewTestGraph(t, NewTestDataset(2,
		[][]*curriculum.DisciplineConfig{
			{NewTestDiscipline("Y"), NewTestDiscipline("X", WithPrerequisites("Y"))},
		},
		NewTestDiscipline("Z", WithCredits(2), WithPrerequisites("Y")),
	))
}
