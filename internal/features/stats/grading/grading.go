// Package grading maps raw numeric metrics onto the five-step A–E scale.
// Every function here is pure and total: any float64, including NaN and the
// infinities, resolves to a grade.
package grading

import (
	"fmt"
	"math"

	"standcast-backend/internal/features/stats/models"
)

// Thresholds is a strictly descending grade ladder. A value strictly greater
// than A earns an A, strictly greater than B earns a B, and so on; anything
// at or below D is an E. Sitting exactly on a threshold lands on the lower
// grade.
type Thresholds struct {
	A float64
	B float64
	C float64
	D float64
}

// NewThresholds builds a ladder from a descending quadruple.
func NewThresholds(a, b, c, d float64) Thresholds {
	return Thresholds{A: a, B: b, C: c, D: d}
}

// FromSlice builds a ladder from a four-element slice, as produced by the
// env-driven config. Returns an error for wrong length or a non-descending
// ladder so a bad override fails at startup rather than skewing grades.
func FromSlice(v []float64) (Thresholds, error) {
	if len(v) != 4 {
		return Thresholds{}, fmt.Errorf("thresholds: want 4 values, got %d", len(v))
	}
	t := Thresholds{A: v[0], B: v[1], C: v[2], D: v[3]}
	if !t.Valid() {
		return Thresholds{}, fmt.Errorf("thresholds: not strictly descending: %v", v)
	}
	return t, nil
}

// Valid reports whether the ladder is strictly descending with a
// non-negative floor.
func (t Thresholds) Valid() bool {
	return t.A > t.B && t.B > t.C && t.C > t.D && t.D >= 0
}

// Grade resolves a raw metric against a ladder. NaN and negative values sit
// below every threshold and grade E. Monotonic: for a fixed ladder a larger
// value never grades worse.
func Grade(value float64, t Thresholds) models.Grade {
	if math.IsNaN(value) {
		return models.GradeE
	}
	switch {
	case value > t.A:
		return models.GradeA
	case value > t.B:
		return models.GradeB
	case value > t.C:
		return models.GradeC
	case value > t.D:
		return models.GradeD
	}
	return models.GradeE
}

// PotentialForFID grades the fid itself on an inverted registration scale:
// the larger (newer) the fid, the higher the remaining potential. The fid is
// always known, so Potential never needs live data.
func PotentialForFID(fid int64) models.Grade {
	switch {
	case fid > 400000:
		return models.GradeA
	case fid > 200000:
		return models.GradeB
	case fid > 15000:
		return models.GradeC
	case fid > 2000:
		return models.GradeD
	}
	return models.GradeE
}

// Sanitize coerces a non-finite metric to 0 before grading or arithmetic.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
