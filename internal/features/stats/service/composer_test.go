package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"standcast-backend/internal/features/stats/grading"
	"standcast-backend/internal/features/stats/models"
)

func sampleProfile() *models.Profile {
	p := models.NewProfile(3, "degen", "Degen", "", "")
	p.SetCounts(1200, 400, 2600)
	p.SetEngagement(400, 100, 50, 25)
	p.SetScore(0.82)
	return p
}

func TestComposeReferenceScenario(t *testing.T) {
	pol := grading.DefaultPolicy()
	stats, details := Compose(sampleProfile(), TxCount{}, pol)

	assert.Equal(t, models.GradeB, stats.Power)
	assert.Equal(t, "Score: 82%", details.Power)

	// No linked address: Speed falls back to the lifetime cast count.
	assert.Equal(t, models.GradeB, stats.Speed)
	assert.Equal(t, "2600 Casts", details.Speed)

	assert.Equal(t, models.GradeB, stats.Durability)
	assert.Equal(t, "2600 Casts", details.Durability)

	assert.Equal(t, models.GradeA, stats.Range)
	assert.Equal(t, "Engage: 500", details.Range)

	// (400 + 100*1.5 + 50*3) / 25 = 28
	assert.Equal(t, models.GradeA, stats.Precision)
	assert.Equal(t, "Quality: 28.0", details.Precision)

	assert.Equal(t, models.GradeE, stats.Potential)
	assert.Equal(t, "FID: 3", details.Potential)
}

func TestComposeSpeedFallbackPrecedence(t *testing.T) {
	pol := grading.DefaultPolicy()

	p := models.NewProfile(10, "u", "U", "", "")
	p.SetCounts(0, 0, 2500)

	stats, details := Compose(p, TxCount{}, pol)
	assert.Equal(t, models.GradeB, stats.Speed, "grade(2500, [5000,2000,500,100])")
	assert.Equal(t, "2500 Casts", details.Speed, "detail must report casts, not transactions")
}

func TestComposeSpeedUsesChainWhenAvailable(t *testing.T) {
	pol := grading.DefaultPolicy()

	p := models.NewProfile(10, "u", "U", "", "")
	p.Verifications = []string{"0xabc"}
	p.SetCounts(0, 0, 9000)

	stats, details := Compose(p, TxCount{Count: 140, OK: true}, pol)
	assert.Equal(t, models.GradeB, stats.Speed)
	assert.Equal(t, "140 Txns", details.Speed)

	// A reachable chain with zero transactions is a real zero, not a
	// missing metric: no cast fallback.
	stats, details = Compose(p, TxCount{Count: 0, OK: true}, pol)
	assert.Equal(t, models.GradeE, stats.Speed)
	assert.Equal(t, "0 Txns", details.Speed)
}

func TestComposePowerFallbacks(t *testing.T) {
	pol := grading.DefaultPolicy()

	t.Run("badge wins when score absent", func(t *testing.T) {
		p := models.NewProfile(10, "u", "U", "", "")
		p.PowerBadge = true
		p.SetCounts(10, 10, 0)
		stats, details := Compose(p, TxCount{}, pol)
		assert.Equal(t, models.GradeA, stats.Power)
		assert.Equal(t, "Power Badge", details.Power)
	})

	t.Run("followers when no score and no badge", func(t *testing.T) {
		p := models.NewProfile(10, "u", "U", "", "")
		p.SetCounts(1200, 10, 0)
		stats, details := Compose(p, TxCount{}, pol)
		assert.Equal(t, models.GradeB, stats.Power)
		assert.Equal(t, "Followers: 1200", details.Power)
	})

	t.Run("zero score is treated as absent", func(t *testing.T) {
		p := models.NewProfile(10, "u", "U", "", "")
		p.SetCounts(60, 10, 0)
		p.SetScore(0)
		stats, details := Compose(p, TxCount{}, pol)
		assert.Equal(t, models.GradeD, stats.Power)
		assert.Equal(t, "Followers: 60", details.Power)
	})
}

func TestComposePrecisionDivisionSafety(t *testing.T) {
	pol := grading.DefaultPolicy()

	// Nothing sampled: quality is structurally absent, so Precision grades
	// the follower/following ratio with the denominator clamped to 1.
	p := models.NewProfile(10, "u", "U", "", "")
	p.SetCounts(10, 0, 0)
	p.SetEngagement(0, 0, 0, 0)

	stats, details := Compose(p, TxCount{}, pol)
	assert.Equal(t, models.GradeA, stats.Precision, "ratio 10/max(0,1)=10 > 5")
	assert.Equal(t, "Ratio: 10.0", details.Precision)
}

func TestComposeEmptyProfileIsTotal(t *testing.T) {
	pol := grading.DefaultPolicy()

	p := models.NewProfile(1, "", "", "", "")
	stats, details := Compose(p, TxCount{}, pol)

	for _, g := range []models.Grade{
		stats.Power, stats.Speed, stats.Range,
		stats.Durability, stats.Precision, stats.Potential,
	} {
		assert.Equal(t, models.GradeE, g)
	}
	for _, d := range []string{
		details.Power, details.Speed, details.Range,
		details.Durability, details.Precision, details.Potential,
	} {
		assert.NotEmpty(t, d, "every graded field has a detail string")
	}
}
