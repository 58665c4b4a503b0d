package models

import "math"

// Profile holds the raw social and on-chain facts about a single Farcaster
// user, assembled once per request cycle. It is never mutated after
// construction; a new fetch produces a new Profile.
//
// LikesReceived, RecastsReceived and RepliesReceived are aggregated over a
// bounded sample of recent casts, not the full history. SampledCastCount is
// the size of that sample and is the denominator for quality ratios;
// CastCount is the lifetime total and must not be used for ratios.
type Profile struct {
	FID              int64    `json:"fid"`
	Username         string   `json:"username"`
	DisplayName      string   `json:"displayName"`
	Bio              string   `json:"bio"`
	PfpURL           string   `json:"pfpUrl"`
	FollowerCount    int64    `json:"followerCount"`
	FollowingCount   int64    `json:"followingCount"`
	CastCount        int64    `json:"castCount"`
	SampledCastCount int64    `json:"sampledCastCount"`
	LikesReceived    int64    `json:"likesReceived"`
	RecastsReceived  int64    `json:"recastsReceived"`
	RepliesReceived  int64    `json:"repliesReceived"`
	Verifications    []string `json:"verifications"`
	PowerBadge       bool     `json:"powerBadge"`
	// Score is the platform reputation score in [0,1]; nil when the
	// upstream source did not provide one.
	Score *float64 `json:"score,omitempty"`
}

// NewProfile returns an empty Profile for the given identity fields.
// Counters are filled in through the setters, which clamp bad values.
func NewProfile(fid int64, username, displayName, bio, pfpURL string) *Profile {
	return &Profile{
		FID:           fid,
		Username:      username,
		DisplayName:   displayName,
		Bio:           bio,
		PfpURL:        pfpURL,
		Verifications: []string{},
	}
}

// SetCounts sets the lifetime counters, clamping negatives to zero.
func (p *Profile) SetCounts(followers, following, casts int64) *Profile {
	p.FollowerCount = clampCount(followers)
	p.FollowingCount = clampCount(following)
	p.CastCount = clampCount(casts)
	return p
}

// SetEngagement sets the sampled engagement counters, clamping negatives to
// zero.
func (p *Profile) SetEngagement(likes, recasts, replies, sampled int64) *Profile {
	p.LikesReceived = clampCount(likes)
	p.RecastsReceived = clampCount(recasts)
	p.RepliesReceived = clampCount(replies)
	p.SampledCastCount = clampCount(sampled)
	return p
}

// SetScore stores the reputation score, ignoring non-finite values.
func (p *Profile) SetScore(score float64) *Profile {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return p
	}
	p.Score = &score
	return p
}

// PrimaryAddress returns the first verified address, or "" when the user has
// no linked wallet.
func (p *Profile) PrimaryAddress() string {
	if len(p.Verifications) == 0 {
		return ""
	}
	return p.Verifications[0]
}

func clampCount(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}
