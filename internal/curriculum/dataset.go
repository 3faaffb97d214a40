package curriculum

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSemesters is the grid width of a standard ten-semester program.
const DefaultSemesters = 10

//go:embed data/ufpb_materials.yaml
var defaultDatasetYAML []byte

// Dataset is the static curriculum document: the mandatory grid plus the
// optional-discipline list. JSON documents decode as well, JSON being a
// subset of YAML.
type Dataset struct {
	Semesters int                   `yaml:"semesters,omitempty"`
	Grid      [][]*DisciplineConfig `yaml:"grid"`
	Optional  []DisciplineConfig    `yaml:"optional,omitempty"`
}

// DisciplineConfig is one discipline entry as written in a dataset file.
type DisciplineConfig struct {
	Code          string   `yaml:"code"`
	Name          string   `yaml:"name"`
	Credits       int      `yaml:"credits"`
	Prerequisites []string `yaml:"prerequisites,omitempty"`
	Corequisites  []string `yaml:"corequisites,omitempty"`
	Category      string   `yaml:"category"`
}

// SemesterCount returns the grid width, defaulting to DefaultSemesters.
func (ds *Dataset) SemesterCount() int {
	if ds.Semesters <= 0 {
		return DefaultSemesters
	}
	return ds.Semesters
}

// ParseDataset decodes a YAML or JSON dataset. Unknown fields are rejected.
func ParseDataset(data []byte) (*Dataset, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing dataset: empty document")
		}
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	return &ds, nil
}

// LoadDataset reads and parses a dataset file.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	return ParseDataset(data)
}

// DefaultDataset returns the embedded Materials Engineering curriculum.
func DefaultDataset() (*Dataset, error) {
	return ParseDataset(defaultDatasetYAML)
}

// Load builds a graph from the dataset at path, or from the embedded
// dataset when path is empty.
func Load(path string) (*Graph, error) {
	var (
		ds  *Dataset
		err error
	)
	if path == "" {
		ds, err = DefaultDataset()
	} else {
		ds, err = LoadDataset(path)
	}
	if err != nil {
		return nil, err
	}
	return NewGraph(ds)
}

// MustDefault builds the embedded curriculum and panics if it is broken.
func MustDefault() *Graph {
	g, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("embedded curriculum dataset: %v", err))
	}
	return g
}
