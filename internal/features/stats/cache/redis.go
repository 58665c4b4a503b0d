package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"standcast-backend/internal/common/logger"
	"standcast-backend/internal/features/stats/models"
)

// Redis is the shared cache used when multiple instances serve the same
// traffic. Values are stored as JSON with TTL enforced by redis expiry.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) key(fid int64) string {
	return fmt.Sprintf("stand_stats:%d", fid)
}

func (r *Redis) Get(ctx context.Context, fid int64) (*models.StatsResult, bool) {
	data, err := r.client.Get(ctx, r.key(fid)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn().Err(err).Int64("fid", fid).Msg("Stats cache read failed")
		}
		return nil, false
	}

	var result models.StatsResult
	if err := json.Unmarshal(data, &result); err != nil {
		logger.Warn().Err(err).Int64("fid", fid).Msg("Stats cache entry malformed, dropping")
		r.client.Del(ctx, r.key(fid))
		return nil, false
	}
	return &result, true
}

func (r *Redis) Set(ctx context.Context, fid int64, result *models.StatsResult) {
	data, err := json.Marshal(result)
	if err != nil {
		logger.Error().Err(err).Int64("fid", fid).Msg("Stats result not serializable")
		return
	}
	if err := r.client.Set(ctx, r.key(fid), data, r.ttl).Err(); err != nil {
		// A failed write only costs a recomputation after the next miss.
		logger.Warn().Err(err).Int64("fid", fid).Msg("Stats cache write failed")
	}
}
