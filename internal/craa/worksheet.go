package craa

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrRowNotFound is returned when no row carries the given ID.
	ErrRowNotFound = errors.New("craa row not found")
	// ErrLastRow is returned when removing the only remaining row.
	ErrLastRow = errors.New("cannot remove the last row")
)

// RowField names an editable column of a row.
type RowField string

const (
	FieldName    RowField = "name"
	FieldCredits RowField = "credits"
	FieldGrade   RowField = "grade"
)

// NewRow returns an empty row with a fresh ID.
func NewRow() Row {
	return Row{ID: uuid.NewString()}
}

// NewWorksheet returns the initial worksheet: no current values and a single
// empty row.
func NewWorksheet() Worksheet {
	return Worksheet{Rows: []Row{NewRow()}}
}

// AddRow appends an empty row and returns it.
func (ws *Worksheet) AddRow() Row {
	r := NewRow()
	ws.Rows = append(ws.Rows, r)
	return r
}

// FindRow resolves a row by ID, or by its 1-based position when ref is a
// number within range.
func (ws *Worksheet) FindRow(ref string) (int, error) {
	if i := slices.IndexFunc(ws.Rows, func(r Row) bool { return r.ID == ref }); i >= 0 {
		return i, nil
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(ws.Rows) {
		return n - 1, nil
	}
	return -1, fmt.Errorf("%w: %s", ErrRowNotFound, ref)
}

// RemoveRow deletes the referenced row. The last row cannot be removed.
func (ws *Worksheet) RemoveRow(ref string) error {
	i, err := ws.FindRow(ref)
	if err != nil {
		return err
	}
	if len(ws.Rows) <= 1 {
		return ErrLastRow
	}
	ws.Rows = slices.Delete(ws.Rows, i, i+1)
	return nil
}

// UpdateRow sets one field of the referenced row.
func (ws *Worksheet) UpdateRow(ref string, field RowField, value string) error {
	i, err := ws.FindRow(ref)
	if err != nil {
		return err
	}
	switch field {
	case FieldName:
		ws.Rows[i].Name = value
	case FieldCredits:
		ws.Rows[i].Credits = value
	case FieldGrade:
		ws.Rows[i].Grade = value
	default:
		return fmt.Errorf("unknown row field %q", field)
	}
	return nil
}

// Blank reports whether none of the row's fields were filled in.
func (r Row) Blank() bool {
	return strings.TrimSpace(r.Name) == "" && strings.TrimSpace(r.Credits) == "" && strings.TrimSpace(r.Grade) == ""
}

// Clone returns a deep copy.
func (ws Worksheet) Clone() Worksheet {
	ws.Rows = slices.Clone(ws.Rows)
	return ws
}
