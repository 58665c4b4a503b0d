// Package neynar is the HTTP client for the Neynar Farcaster API. It covers
// the two lookups the stats engine needs: the bulk user profile and a
// bounded sample of recent casts for engagement aggregation. The API key is
// server-held and never reaches a browser client.
package neynar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"standcast-backend/internal/common/logger"
)

const defaultBaseURL = "https://api.neynar.com"

// MaxSampleLimit bounds the engagement sample to keep API cost predictable.
const MaxSampleLimit = 150

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// User is the subset of the bulk-user payload the engine consumes.
type User struct {
	FID            int64
	Username       string
	DisplayName    string
	Bio            string
	PfpURL         string
	FollowerCount  int64
	FollowingCount int64
	CastCount      int64
	Verifications  []string
	PowerBadge     bool
	// Score is nil when neither the experimental score nor the plain
	// score field was present.
	Score *float64
}

// EngagementSample holds reaction totals summed over a sample of recent
// casts. SampledCasts is the number of casts actually inspected and may be
// smaller than the requested limit, including zero.
type EngagementSample struct {
	Likes        int64
	Recasts      int64
	Replies      int64
	SampledCasts int64
}

type bulkUserResponse struct {
	Users []struct {
		FID            int64  `json:"fid"`
		Username       string `json:"username"`
		DisplayName    string `json:"display_name"`
		PfpURL         string `json:"pfp_url"`
		FollowerCount  int64  `json:"follower_count"`
		FollowingCount int64  `json:"following_count"`
		CastCount      int64  `json:"cast_count"`
		Profile        struct {
			Bio struct {
				Text string `json:"text"`
			} `json:"bio"`
		} `json:"profile"`
		Verifications []string `json:"verifications"`
		PowerBadge    bool     `json:"power_badge"`
		Score         *float64 `json:"score"`
		Experimental  struct {
			NeynarUserScore *float64 `json:"neynar_user_score"`
		} `json:"experimental"`
	} `json:"users"`
}

type userCastsResponse struct {
	Casts []struct {
		Reactions struct {
			LikesCount   int64 `json:"likes_count"`
			RecastsCount int64 `json:"recasts_count"`
		} `json:"reactions"`
		Replies struct {
			Count int64 `json:"count"`
		} `json:"replies"`
	} `json:"casts"`
}

// FetchUser looks up one user by fid. A non-2xx response, transport error or
// malformed payload is returned as an error; the caller falls back rather
// than failing the request.
func (c *Client) FetchUser(ctx context.Context, fid int64) (*User, error) {
	q := url.Values{}
	q.Set("fids", strconv.FormatInt(fid, 10))
	q.Set("viewer_fid", strconv.FormatInt(fid, 10))
	endpoint := fmt.Sprintf("%s/v2/farcaster/user/bulk?%s", c.baseURL, q.Encode())

	var payload bulkUserResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	if len(payload.Users) == 0 {
		return nil, fmt.Errorf("neynar: fid %d not found", fid)
	}

	u := payload.Users[0]
	user := &User{
		FID:            u.FID,
		Username:       u.Username,
		DisplayName:    u.DisplayName,
		Bio:            u.Profile.Bio.Text,
		PfpURL:         u.PfpURL,
		FollowerCount:  u.FollowerCount,
		FollowingCount: u.FollowingCount,
		CastCount:      u.CastCount,
		Verifications:  u.Verifications,
		PowerBadge:     u.PowerBadge,
	}
	if u.Experimental.NeynarUserScore != nil {
		user.Score = u.Experimental.NeynarUserScore
	} else if u.Score != nil {
		user.Score = u.Score
	}
	if user.Verifications == nil {
		user.Verifications = []string{}
	}
	return user, nil
}

// FetchEngagementSample fetches up to limit recent casts and sums their
// reaction counters. Partial pages are not an error: whatever was obtained
// is returned, and only an unreachable endpoint produces an error.
func (c *Client) FetchEngagementSample(ctx context.Context, fid int64, limit int) (*EngagementSample, error) {
	if limit <= 0 || limit > MaxSampleLimit {
		limit = MaxSampleLimit
	}
	q := url.Values{}
	q.Set("fid", strconv.FormatInt(fid, 10))
	q.Set("limit", strconv.Itoa(limit))
	endpoint := fmt.Sprintf("%s/v2/farcaster/feed/user/casts?%s", c.baseURL, q.Encode())

	var payload userCastsResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	sample := &EngagementSample{SampledCasts: int64(len(payload.Casts))}
	for _, cast := range payload.Casts {
		sample.Likes += cast.Reactions.LikesCount
		sample.Recasts += cast.Reactions.RecastsCount
		sample.Replies += cast.Replies.Count
	}
	return sample, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("x-neynar-experimental", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn().Int("status", resp.StatusCode).Str("endpoint", req.URL.Path).Msg("Neynar API returned non-OK status")
		return fmt.Errorf("neynar: API returned %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
