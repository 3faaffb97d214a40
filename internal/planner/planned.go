package planner

import "slices"

// PlannedSet is the ordered set of disciplines the user intends to take
// next. Insertion order is preserved. The zero value is an empty set.
type PlannedSet struct {
	codes []string
}

// NewPlannedSet returns a set seeded with codes, duplicates dropped.
func NewPlannedSet(codes ...string) *PlannedSet {
	p := &PlannedSet{}
	for _, c := range codes {
		p.Add(c)
	}
	return p
}

// Toggle removes code if present, otherwise appends it. It reports whether
// code is planned afterwards.
func (p *PlannedSet) Toggle(code string) bool {
	if p.Remove(code) {
		return false
	}
	p.codes = append(p.codes, code)
	return true
}

// Add appends code unless it is already planned.
func (p *PlannedSet) Add(code string) bool {
	if p.Contains(code) {
		return false
	}
	p.codes = append(p.codes, code)
	return true
}

// Remove drops code, reporting whether it was present.
func (p *PlannedSet) Remove(code string) bool {
	i := slices.Index(p.codes, code)
	if i < 0 {
		return false
	}
	p.codes = slices.Delete(p.codes, i, i+1)
	return true
}

func (p *PlannedSet) Contains(code string) bool {
	return slices.Contains(p.codes, code)
}

// Codes returns the planned codes in insertion order.
func (p *PlannedSet) Codes() []string {
	return slices.Clone(p.codes)
}

func (p *PlannedSet) Len() int { return len(p.codes) }

// Clear empties the set.
func (p *PlannedSet) Clear() { p.codes = nil }
