package service

import (
	"fmt"

	"standcast-backend/internal/features/stats/grading"
	"standcast-backend/internal/features/stats/models"
)

// TxCount is the outcome of the on-chain lookup for the profile's primary
// address. OK is false when the user has no linked address or the lookup
// failed, which routes Speed onto its cast-count fallback; a genuine zero
// from a reachable source grades normally.
type TxCount struct {
	Count int64
	OK    bool
}

// Compose derives the six grades and their detail strings from one Profile.
// Pure: no I/O, total for any input. Each detail string reports the literal
// number the grade was derived from, and when a fallback metric was used it
// reports the fallback, not the primary.
func Compose(p *models.Profile, tx TxCount, pol grading.Policy) (models.StandStats, models.StatDetails) {
	var stats models.StandStats
	var details models.StatDetails

	stats.Power, details.Power = composePower(p, pol)
	stats.Speed, details.Speed = composeSpeed(p, tx, pol)
	stats.Durability = grading.Grade(float64(p.CastCount), pol.Durability)
	details.Durability = fmt.Sprintf("%d Casts", p.CastCount)
	stats.Range, details.Range = composeRange(p, pol)
	stats.Precision, details.Precision = composePrecision(p, pol)
	stats.Potential = grading.PotentialForFID(p.FID)
	details.Potential = fmt.Sprintf("FID: %d", p.FID)

	return stats, details
}

// composePower grades the reputation score as a percentage. Users without a
// score fall back to the trust badge, then to raw follower count.
func composePower(p *models.Profile, pol grading.Policy) (models.Grade, string) {
	if p.Score != nil {
		scorePercent := grading.Sanitize(*p.Score) * 100
		if scorePercent > 0 {
			return grading.Grade(scorePercent, pol.PowerScore),
				fmt.Sprintf("Score: %.0f%%", scorePercent)
		}
	}
	if p.PowerBadge {
		return models.GradeA, "Power Badge"
	}
	return grading.Grade(float64(p.FollowerCount), pol.PowerFollowers),
		fmt.Sprintf("Followers: %d", p.FollowerCount)
}

// composeSpeed grades on-chain activity, falling back to lifetime cast count
// when the chain gave no answer.
func composeSpeed(p *models.Profile, tx TxCount, pol grading.Policy) (models.Grade, string) {
	if tx.OK {
		return grading.Grade(float64(tx.Count), pol.SpeedTxns),
			fmt.Sprintf("%d Txns", tx.Count)
	}
	return grading.Grade(float64(p.CastCount), pol.SpeedCasts),
		fmt.Sprintf("%d Casts", p.CastCount)
}

func composeRange(p *models.Profile, pol grading.Policy) (models.Grade, string) {
	engagement := p.LikesReceived + p.RecastsReceived
	return grading.Grade(float64(engagement), pol.Range),
		fmt.Sprintf("Engage: %d", engagement)
}

// composePrecision grades the weighted engagement quality per sampled cast.
// With nothing sampled there is no quality signal, so it grades the
// follower/following ratio instead.
func composePrecision(p *models.Profile, pol grading.Policy) (models.Grade, string) {
	if p.SampledCastCount > 0 {
		denominator := p.SampledCastCount
		if denominator < 1 {
			denominator = 1
		}
		weighted := (float64(p.LikesReceived) +
			float64(p.RecastsReceived)*1.5 +
			float64(p.RepliesReceived)*3) / float64(denominator)
		weighted = grading.Sanitize(weighted)
		return grading.Grade(weighted, pol.PrecisionQuality),
			fmt.Sprintf("Quality: %.1f", weighted)
	}

	following := p.FollowingCount
	if following < 1 {
		following = 1
	}
	ratio := grading.Sanitize(float64(p.FollowerCount) / float64(following))
	return grading.Grade(ratio, pol.PrecisionRatio),
		fmt.Sprintf("Ratio: %.1f", ratio)
}
