package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidStatus is returned when a status string does not name a known
// ProgressStatus.
var ErrInvalidStatus = errors.New("invalid progress status")

// ProgressStatus is the completion state of a discipline for the current user.
// The zero value is StatusPending, which is never stored: absence of an entry
// means pending.
type ProgressStatus int

const (
	StatusPending ProgressStatus = iota
	StatusInProgress
	StatusCompleted
)

// String returns the persisted spelling of the status.
func (s ProgressStatus) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusInProgress:
		return "in_progress"
	default:
		return "pending"
	}
}

// Label returns the Portuguese label shown to users.
func (s ProgressStatus) Label() string {
	switch s {
	case StatusCompleted:
		return "Concluída"
	case StatusInProgress:
		return "Cursando"
	default:
		return "Pendente"
	}
}

// ParseProgressStatus accepts the persisted spellings plus "in-progress".
func ParseProgressStatus(s string) (ProgressStatus, error) {
	switch s {
	case "pending", "":
		return StatusPending, nil
	case "in_progress", "in-progress":
		return StatusInProgress, nil
	case "completed":
		return StatusCompleted, nil
	}
	return StatusPending, fmt.Errorf("%w: %q (expected completed, in_progress or pending)", ErrInvalidStatus, s)
}

// Category groups disciplines for display. It carries no graph semantics.
type Category string

const (
	CategoryCoreDepartment  Category = "core-department"
	CategoryOtherDepartment Category = "other-department"
)

// categoryAliases maps dataset spellings onto canonical categories.
var categoryAliases = map[string]Category{
	"core-department":  CategoryCoreDepartment,
	"demat":            CategoryCoreDepartment,
	"other-department": CategoryOtherDepartment,
	"other":            CategoryOtherDepartment,
}

// ParseCategory normalises a dataset category string.
func ParseCategory(s string) (Category, bool) {
	c, ok := categoryAliases[s]
	return c, ok
}

// Label returns the legend text for the category.
func (c Category) Label() string {
	if c == CategoryCoreDepartment {
		return "DEMAT"
	}
	return "Outros Deptos."
}

// AllProgressStatuses lists every status in display order.
func AllProgressStatuses() []ProgressStatus {
	return []ProgressStatus{StatusPending, StatusInProgress, StatusCompleted}
}
