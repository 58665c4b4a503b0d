package service

import (
	"context"
	"sync"
	"time"

	"standcast-backend/internal/common/logger"
	"standcast-backend/internal/features/stats/cache"
	"standcast-backend/internal/features/stats/grading"
	"standcast-backend/internal/features/stats/models"
	"standcast-backend/internal/platform/neynar"
)

// SocialClient is the profile and engagement source.
type SocialClient interface {
	FetchUser(ctx context.Context, fid int64) (*neynar.User, error)
	FetchEngagementSample(ctx context.Context, fid int64, limit int) (*neynar.EngagementSample, error)
}

// ChainClient is the on-chain activity source.
type ChainClient interface {
	TransactionCount(ctx context.Context, address string) (int64, error)
}

// StatsService derives the character sheet for a fid. GetStats never fails:
// a cache hit is returned verbatim, a miss runs the pipeline, and when the
// profile is entirely unobtainable the result is synthesized from the fid.
type StatsService interface {
	GetStats(ctx context.Context, fid int64) *models.StatsResult
}

type statsService struct {
	social       SocialClient
	chain        ChainClient
	cache        cache.Cache
	policy       grading.Policy
	sampleLimit  int
	chainTimeout time.Duration

	mu       sync.Mutex
	inflight map[int64]*inflightCall
}

// inflightCall coalesces concurrent misses for one fid into a single
// upstream burst; late callers wait for the first one's result.
type inflightCall struct {
	done   chan struct{}
	result *models.StatsResult
}

func NewStatsService(social SocialClient, chain ChainClient, c cache.Cache, policy grading.Policy, sampleLimit int, chainTimeout time.Duration) StatsService {
	if chainTimeout <= 0 {
		chainTimeout = 6 * time.Second
	}
	return &statsService{
		social:       social,
		chain:        chain,
		cache:        c,
		policy:       policy,
		sampleLimit:  sampleLimit,
		chainTimeout: chainTimeout,
		inflight:     make(map[int64]*inflightCall),
	}
}

func (s *statsService) GetStats(ctx context.Context, fid int64) *models.StatsResult {
	if result, ok := s.cache.Get(ctx, fid); ok {
		return result
	}

	s.mu.Lock()
	if call, ok := s.inflight[fid]; ok {
		s.mu.Unlock()
		select {
		case <-call.done:
			return call.result
		case <-ctx.Done():
			// The waiter's request is gone; answer with the synthetic
			// sheet rather than blocking on someone else's fetch.
			return Synthesize(fid)
		}
	}
	call := &inflightCall{done: make(chan struct{})}
	s.inflight[fid] = call
	s.mu.Unlock()

	result := s.compute(ctx, fid)
	s.cache.Set(ctx, fid, result)

	s.mu.Lock()
	delete(s.inflight, fid)
	s.mu.Unlock()
	call.result = result
	close(call.done)

	return result
}

// compute runs the full pipeline: profile fetch, then the engagement sample
// and on-chain lookup concurrently, then composition. Any upstream failure
// degrades, never propagates.
func (s *statsService) compute(ctx context.Context, fid int64) *models.StatsResult {
	user, err := s.social.FetchUser(ctx, fid)
	if err != nil {
		logger.Warn().Err(err).Int64("fid", fid).Msg("Profile fetch failed, synthesizing stats")
		return Synthesize(fid)
	}

	profile := models.NewProfile(user.FID, user.Username, user.DisplayName, user.Bio, user.PfpURL)
	profile.SetCounts(user.FollowerCount, user.FollowingCount, user.CastCount)
	if len(user.Verifications) > 0 {
		profile.Verifications = append([]string{}, user.Verifications...)
	}
	profile.PowerBadge = user.PowerBadge
	if user.Score != nil {
		profile.SetScore(*user.Score)
	}

	var (
		wg        sync.WaitGroup
		sample    *neynar.EngagementSample
		sampleErr error
		tx        TxCount
		txErr     error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		sample, sampleErr = s.social.FetchEngagementSample(ctx, fid, s.sampleLimit)
	}()

	address := profile.PrimaryAddress()
	if address != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			txCtx, cancel := context.WithTimeout(ctx, s.chainTimeout)
			defer cancel()
			var count int64
			count, txErr = s.chain.TransactionCount(txCtx, address)
			if txErr == nil {
				tx = TxCount{Count: count, OK: true}
			}
		}()
	}
	wg.Wait()

	quality := models.QualityLive
	if sampleErr != nil {
		logger.Warn().Err(sampleErr).Int64("fid", fid).Msg("Engagement sample unavailable")
		quality = models.QualityPartial
	} else {
		profile.SetEngagement(sample.Likes, sample.Recasts, sample.Replies, sample.SampledCasts)
	}
	if address != "" && txErr != nil {
		logger.Warn().Err(txErr).Int64("fid", fid).Msg("On-chain lookup unavailable")
		quality = models.QualityPartial
	}

	stats, details := Compose(profile, tx, s.policy)
	return &models.StatsResult{
		Profile:     profile,
		Stats:       stats,
		Details:     details,
		DataQuality: quality,
	}
}
