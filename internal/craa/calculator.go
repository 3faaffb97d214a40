// Package craa projects the cumulative weighted grade average (CRAA) at the
// end of the current term from the grades expected in its disciplines.
package craa

import (
	"math"
	"strconv"
	"strings"
)

// MaxGrade is the top of the grading scale.
const MaxGrade = 10.0

// Row is one discipline of the current term, as typed by the user.
type Row struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Credits string `json:"credits"`
	Grade   string `json:"grade"`
}

// Worksheet holds the calculator inputs. Values stay as entered so partially
// typed numbers survive a reload.
type Worksheet struct {
	CurrentCRAA    string
	CurrentCredits string
	Rows           []Row
}

// Projection is the outcome of a calculation.
type Projection struct {
	Value float64
	// Valid is false when the inputs do not allow a result.
	Valid bool
	// TermCredits and CountedRows cover only rows that passed validation.
	TermCredits int
	CountedRows int
}

// String renders the projected CRAA with four decimals, or "---".
func (p Projection) String() string {
	if !p.Valid {
		return "---"
	}
	return strconv.FormatFloat(p.Value, 'f', 4, 64)
}

// Project computes the projected CRAA:
//
//	(craa*credits + sum(c_i*g_i)) / (credits + sum(c_i))
//
// over rows with integer credits > 0 and a grade in [0, MaxGrade]. Invalid
// rows are ignored. With no valid row the current CRAA is returned as is.
func Project(ws Worksheet) Projection {
	current, ok := parseDecimal(ws.CurrentCRAA)
	if !ok {
		return Projection{}
	}
	taken, err := strconv.Atoi(strings.TrimSpace(ws.CurrentCredits))
	if err != nil || taken < 0 {
		return Projection{}
	}

	var p Projection
	weighted := 0.0
	for _, r := range ws.Rows {
		credits, grade, ok := r.parse()
		if !ok {
			continue
		}
		p.TermCredits += credits
		weighted += float64(credits) * grade
		p.CountedRows++
	}

	if p.CountedRows == 0 {
		p.Value, p.Valid = current, true
		return p
	}

	total := taken + p.TermCredits
	if total == 0 {
		return Projection{}
	}
	p.Value = (current*float64(taken) + weighted) / float64(total)
	p.Valid = true
	return p
}

// Valid reports whether the row takes part in the projection.
func (r Row) Valid() bool {
	_, _, ok := r.parse()
	return ok
}

func (r Row) parse() (int, float64, bool) {
	credits, err := strconv.Atoi(strings.TrimSpace(r.Credits))
	if err != nil || credits <= 0 {
		return 0, 0, false
	}
	grade, ok := parseDecimal(r.Grade)
	if !ok || grade < 0 || grade > MaxGrade {
		return 0, 0, false
	}
	return credits, grade, true
}

// parseDecimal accepts a dot or a comma as decimal separator.
func parseDecimal(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
