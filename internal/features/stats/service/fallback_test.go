package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"standcast-backend/internal/features/stats/models"
)

func TestSynthesizeDeterministic(t *testing.T) {
	first := Synthesize(4217)
	second := Synthesize(4217)
	assert.Equal(t, first, second, "synthesis is a pure function of fid")
}

func TestSynthesizeShape(t *testing.T) {
	result := Synthesize(4217) // seed 17

	require.NotNil(t, result.Profile)
	assert.Equal(t, int64(4217), result.Profile.FID)
	assert.Equal(t, "user_4217", result.Profile.Username)
	assert.Equal(t, int64(170), result.Profile.FollowerCount)
	assert.Equal(t, int64(85), result.Profile.FollowingCount)
	assert.Equal(t, int64(340), result.Profile.CastCount)
	assert.Equal(t, models.QualitySynthetic, result.DataQuality)

	// seed 17: grades cycle with per-stat offsets.
	assert.Equal(t, models.GradeC, result.Stats.Power)     // 17 % 5 = 2
	assert.Equal(t, models.GradeD, result.Stats.Speed)     // 18 % 5 = 3
	assert.Equal(t, models.GradeE, result.Stats.Range)     // 19 % 5 = 4
	assert.Equal(t, models.GradeA, result.Stats.Durability) // 20 % 5 = 0
	assert.Equal(t, models.GradeB, result.Stats.Precision) // 21 % 5 = 1

	// Potential still comes from the real fid, never from the seed.
	assert.Equal(t, models.GradeD, result.Stats.Potential)
	assert.Equal(t, "FID: 4217", result.Details.Potential)
}

func TestSynthesizePotentialTracksFID(t *testing.T) {
	assert.Equal(t, models.GradeA, Synthesize(500000).Stats.Potential)
	assert.Equal(t, models.GradeE, Synthesize(3).Stats.Potential)
}
