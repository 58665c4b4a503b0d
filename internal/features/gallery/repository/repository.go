package repository

import (
	"context"
	"errors"

	"standcast-backend/internal/features/gallery/models"
)

var ErrStandNotFound = errors.New("stand not found")

// StandRepository persists stands keyed by fid, one stand per user, with a
// recency index for gallery listing.
type StandRepository interface {
	Upsert(ctx context.Context, stand *models.Stand) error
	GetByFID(ctx context.Context, fid int64) (*models.Stand, error)
	// List returns stands newest-first along with the total count.
	List(ctx context.Context, limit, offset int) ([]*models.Stand, int64, error)
}
