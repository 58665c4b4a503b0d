package service

import (
	"fmt"

	"standcast-backend/internal/features/stats/grading"
	"standcast-backend/internal/features/stats/models"
)

// fallbackGrades is the cycle used to spread synthetic grades across fids.
var fallbackGrades = []models.Grade{
	models.GradeA, models.GradeB, models.GradeC, models.GradeD, models.GradeE,
}

// Synthesize builds a plausible result from the fid alone, used when no live
// data is obtainable. Pure function of fid: the same fid always yields the
// same profile and grades. Potential is still computed from the real fid,
// since id-based grading never needs live data.
func Synthesize(fid int64) *models.StatsResult {
	seed := fid % 100
	if seed < 0 {
		seed = -seed
	}

	profile := models.NewProfile(fid,
		fmt.Sprintf("user_%d", fid),
		fmt.Sprintf("User %d", fid),
		"", "")
	profile.SetCounts(seed*10, seed*5, seed*20)
	profile.SetEngagement(seed*15, seed*5, seed*3, 0)
	profile.SetScore(float64(seed) / 100)

	stats := models.StandStats{
		Power:      fallbackGrades[seed%5],
		Speed:      fallbackGrades[(seed+1)%5],
		Range:      fallbackGrades[(seed+2)%5],
		Durability: fallbackGrades[(seed+3)%5],
		Precision:  fallbackGrades[(seed+4)%5],
		Potential:  grading.PotentialForFID(fid),
	}

	details := models.StatDetails{
		Power:      fmt.Sprintf("Score: %d%%", seed),
		Speed:      fmt.Sprintf("%d Txns", seed),
		Range:      fmt.Sprintf("Engage: %d", seed*20),
		Durability: fmt.Sprintf("%d Casts", seed*20),
		Precision:  fmt.Sprintf("Quality: %.1f", float64(seed)/10),
		Potential:  fmt.Sprintf("FID: %d", fid),
	}

	return &models.StatsResult{
		Profile:     profile,
		Stats:       stats,
		Details:     details,
		DataQuality: models.QualitySynthetic,
	}
}
