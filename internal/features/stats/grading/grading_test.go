package grading

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"standcast-backend/internal/features/stats/models"
)

func TestGrade(t *testing.T) {
	ladder := NewThresholds(90, 70, 50, 30)

	tests := []struct {
		name  string
		value float64
		want  models.Grade
	}{
		{"well above top", 150, models.GradeA},
		{"just above top", 90.01, models.GradeA},
		{"exactly top threshold lands lower", 90.0, models.GradeB},
		{"mid B", 75, models.GradeB},
		{"exactly B threshold", 70.0, models.GradeC},
		{"mid C", 60, models.GradeC},
		{"exactly C threshold", 50.0, models.GradeD},
		{"mid D", 31, models.GradeD},
		{"exactly D threshold", 30.0, models.GradeE},
		{"zero", 0, models.GradeE},
		{"negative", -5, models.GradeE},
		{"NaN", math.NaN(), models.GradeE},
		{"negative infinity", math.Inf(-1), models.GradeE},
		{"positive infinity", math.Inf(1), models.GradeA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Grade(tt.value, ladder))
		})
	}
}

func TestGradeNegativeLadderFromSpec(t *testing.T) {
	assert.Equal(t, models.GradeE, Grade(-5, NewThresholds(10, 7, 4, 1)))
}

func TestGradeMonotonic(t *testing.T) {
	ladder := NewThresholds(500, 100, 20, 5)

	values := []float64{-100, -1, 0, 1, 4.9, 5, 5.1, 19, 20, 21, 99, 100, 101, 499, 500, 501, 1e6}
	for i := 1; i < len(values); i++ {
		lower := Grade(values[i-1], ladder)
		higher := Grade(values[i], ladder)
		assert.GreaterOrEqual(t, higher.Rank(), lower.Rank(),
			"grade(%v)=%s must not beat grade(%v)=%s", values[i-1], lower, values[i], higher)
	}
}

func TestFromSlice(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ladder, err := FromSlice([]float64{90, 70, 50, 30})
		require.NoError(t, err)
		assert.Equal(t, NewThresholds(90, 70, 50, 30), ladder)
	})
	t.Run("fractional floor", func(t *testing.T) {
		_, err := FromSlice([]float64{5, 2, 1, 0.5})
		assert.NoError(t, err)
	})
	t.Run("wrong length", func(t *testing.T) {
		_, err := FromSlice([]float64{90, 70, 50})
		assert.Error(t, err)
	})
	t.Run("not descending", func(t *testing.T) {
		_, err := FromSlice([]float64{70, 90, 50, 30})
		assert.Error(t, err)
	})
	t.Run("negative floor", func(t *testing.T) {
		_, err := FromSlice([]float64{90, 70, 50, -1})
		assert.Error(t, err)
	})
}

func TestPotentialForFID(t *testing.T) {
	tests := []struct {
		fid  int64
		want models.Grade
	}{
		{400001, models.GradeA},
		{400000, models.GradeB},
		{200001, models.GradeB},
		{200000, models.GradeC},
		{15001, models.GradeC},
		{15000, models.GradeD},
		{2001, models.GradeD},
		{2000, models.GradeE},
		{3, models.GradeE},
		{1, models.GradeE},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PotentialForFID(tt.fid), "fid %d", tt.fid)
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, 0.0, Sanitize(math.NaN()))
	assert.Equal(t, 0.0, Sanitize(math.Inf(1)))
	assert.Equal(t, 0.0, Sanitize(math.Inf(-1)))
	assert.Equal(t, 28.0, Sanitize(28.0))
	assert.Equal(t, -3.0, Sanitize(-3.0))
}

func TestDefaultPolicyValid(t *testing.T) {
	assert.True(t, DefaultPolicy().Valid())
}
