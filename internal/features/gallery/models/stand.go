package models

import (
	"time"

	stats "standcast-backend/internal/features/stats/models"
)

// Stand is one generated character sheet saved for the public gallery. Each
// user keeps a single stand: saving again overwrites the previous one. The
// image itself lives on a CDN; only its URL is stored here.
type Stand struct {
	ID               string            `json:"id"`
	FID              int64             `json:"fid"`
	Username         string            `json:"username"`
	DisplayName      string            `json:"displayName"`
	PfpURL           string            `json:"pfpUrl"`
	StandName        string            `json:"standName"`
	Gender           string            `json:"gender"`
	UserAnalysis     string            `json:"userAnalysis"`
	StandDescription string            `json:"standDescription"`
	Ability          string            `json:"ability"`
	BattleCry        string            `json:"battleCry"`
	Stats            stats.StandStats  `json:"stats"`
	StatDetails      stats.StatDetails `json:"statDetails"`
	StandImageURL    string            `json:"standImageUrl"`
	VisualPrompt     string            `json:"visualPrompt,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// StandData is the client-generated part of a save request.
type StandData struct {
	StandName        string            `json:"standName" binding:"required"`
	Gender           string            `json:"gender"`
	UserAnalysis     string            `json:"userAnalysis"`
	StandDescription string            `json:"standDescription"`
	Ability          string            `json:"ability"`
	BattleCry        string            `json:"battleCry"`
	Stats            stats.StandStats  `json:"stats"`
	StatDetails      stats.StatDetails `json:"statDetails"`
	StandImageURL    string            `json:"standImageUrl"`
	VisualPrompt     string            `json:"visualPrompt"`
}

// FarcasterUser identifies the stand's owner in a save request.
type FarcasterUser struct {
	FID         int64  `json:"fid" binding:"required"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	PfpURL      string `json:"pfpUrl"`
}

// SaveStandRequest mirrors the wire shape the web client sends.
type SaveStandRequest struct {
	StandData     StandData     `json:"standData" binding:"required"`
	FarcasterUser FarcasterUser `json:"farcasterUser" binding:"required"`
}

// GalleryPage is one page of the recency-ordered gallery.
type GalleryPage struct {
	Stands  []*Stand `json:"stands"`
	Total   int64    `json:"total"`
	Limit   int      `json:"limit"`
	Offset  int      `json:"offset"`
	HasMore bool     `json:"hasMore"`
}
