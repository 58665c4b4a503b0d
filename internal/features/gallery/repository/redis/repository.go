package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"standcast-backend/internal/common/logger"
	"standcast-backend/internal/features/gallery/models"
	"standcast-backend/internal/features/gallery/repository"
)

const recentIndexKey = "stands:recent"

// StandRepository stores one stand per fid as a JSON value plus a sorted-set
// recency index scored by creation time, so the gallery lists newest first
// without scanning keys.
type StandRepository struct {
	client *redis.Client
}

func NewStandRepository(client *redis.Client) *StandRepository {
	return &StandRepository{client: client}
}

func (r *StandRepository) key(fid int64) string {
	return fmt.Sprintf("stand:%d", fid)
}

func (r *StandRepository) Upsert(ctx context.Context, stand *models.Stand) error {
	data, err := json.Marshal(stand)
	if err != nil {
		return fmt.Errorf("marshal stand: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.key(stand.FID), data, 0)
	pipe.ZAdd(ctx, recentIndexKey, redis.Z{
		Score:  float64(stand.CreatedAt.Unix()),
		Member: stand.FID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store stand: %w", err)
	}
	return nil
}

func (r *StandRepository) GetByFID(ctx context.Context, fid int64) (*models.Stand, error) {
	data, err := r.client.Get(ctx, r.key(fid)).Bytes()
	if err == redis.Nil {
		return nil, repository.ErrStandNotFound
	}
	if err != nil {
		return nil, err
	}

	var stand models.Stand
	if err := json.Unmarshal(data, &stand); err != nil {
		return nil, fmt.Errorf("unmarshal stand %d: %w", fid, err)
	}
	return &stand, nil
}

func (r *StandRepository) List(ctx context.Context, limit, offset int) ([]*models.Stand, int64, error) {
	total, err := r.client.ZCard(ctx, recentIndexKey).Result()
	if err != nil {
		return nil, 0, err
	}
	if total == 0 || offset >= int(total) {
		return []*models.Stand{}, total, nil
	}

	fids, err := r.client.ZRevRange(ctx, recentIndexKey, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, 0, err
	}
	if len(fids) == 0 {
		return []*models.Stand{}, total, nil
	}

	keys := make([]string, len(fids))
	for i, fid := range fids {
		keys[i] = "stand:" + fid
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, 0, err
	}

	stands := make([]*models.Stand, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Index entry without a value; skip rather than failing the page.
			logger.Warn().Str("key", keys[i]).Msg("Stand index entry missing its value")
			continue
		}
		var stand models.Stand
		if err := json.Unmarshal([]byte(raw), &stand); err != nil {
			logger.Warn().Err(err).Str("key", keys[i]).Msg("Skipping malformed stand entry")
			continue
		}
		stands = append(stands, &stand)
	}
	return stands, total, nil
}
