package models

// Grade is an ordinal rating for one stat, A (best) through E (worst).
// GradeNA is reserved for downstream consumers that decline to produce a
// number; the stats engine itself never emits it.
type Grade string

const (
	GradeA  Grade = "A"
	GradeB  Grade = "B"
	GradeC  Grade = "C"
	GradeD  Grade = "D"
	GradeE  Grade = "E"
	GradeNA Grade = "N/A"
)

// Rank returns the grade as a number, 4 for A down to 0 for E. GradeNA and
// unknown values rank below E.
func (g Grade) Rank() int {
	switch g {
	case GradeA:
		return 4
	case GradeB:
		return 3
	case GradeC:
		return 2
	case GradeD:
		return 1
	case GradeE:
		return 0
	}
	return -1
}

// StandStats is the six-stat character sheet derived from one Profile.
// Immutable once composed.
type StandStats struct {
	Power      Grade `json:"power"`
	Speed      Grade `json:"speed"`
	Range      Grade `json:"range"`
	Durability Grade `json:"durability"`
	Precision  Grade `json:"precision"`
	Potential  Grade `json:"potential"`
}

// StatDetails carries a human-readable explanation of the metric behind each
// grade, e.g. "Score: 72%" or "140 Txns". When a fallback metric was used
// the detail reports the fallback, not the primary. Every graded field has a
// detail; none is ever empty.
type StatDetails struct {
	Power      string `json:"power"`
	Speed      string `json:"speed"`
	Range      string `json:"range"`
	Durability string `json:"durability"`
	Precision  string `json:"precision"`
	Potential  string `json:"potential"`
}

// DataQuality marks how much of a StatsResult came from live upstream data.
type DataQuality string

const (
	// QualityLive means the profile and every secondary fetch succeeded.
	QualityLive DataQuality = "live"
	// QualityPartial means the profile was fetched but the engagement
	// sample or the on-chain lookup failed and a fallback metric was used.
	QualityPartial DataQuality = "partial"
	// QualitySynthetic means no live data was obtainable and the whole
	// result was synthesized from the fid alone.
	QualitySynthetic DataQuality = "synthetic"
)

// StatsResult is the immutable assembly handed to the presentation and
// image-generation layers, and the unit stored in the cache.
type StatsResult struct {
	Profile     *Profile    `json:"profile"`
	Stats       StandStats  `json:"stats"`
	Details     StatDetails `json:"details"`
	DataQuality DataQuality `json:"dataQuality"`
}
