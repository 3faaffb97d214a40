package progress

import (
	"maps"
	"slices"

	"github.com/alexanderramin/fluxo/internal/domain"
)

// Snapshot is an immutable copy of the progress mapping. Only non-pending
// statuses appear as entries.
type Snapshot map[string]domain.ProgressStatus

// StatusOf returns the recorded status, or StatusPending when absent.
func (s Snapshot) StatusOf(code string) domain.ProgressStatus {
	return s[code]
}

// With returns a copy of s with code set to status. Used to evaluate
// what-if scenarios without touching the store.
func (s Snapshot) With(code string, status domain.ProgressStatus) Snapshot {
	out := maps.Clone(s)
	if out == nil {
		out = make(Snapshot)
	}
	if status == domain.StatusPending {
		delete(out, code)
	} else {
		out[code] = status
	}
	return out
}

// Codes returns the recorded codes in ascending order.
func (s Snapshot) Codes() []string {
	return slices.Sorted(maps.Keys(s))
}

// Count returns how many codes hold the given status.
func (s Snapshot) Count(status domain.ProgressStatus) int {
	n := 0
	for _, st := range s {
		if st == status {
			n++
		}
	}
	return n
}
