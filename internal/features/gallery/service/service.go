package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"standcast-backend/internal/features/gallery/models"
	"standcast-backend/internal/features/gallery/repository"
)

var (
	ErrStandNotFound = repository.ErrStandNotFound
	ErrInvalidStand  = errors.New("stand is missing required fields")
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

type GalleryService interface {
	SaveStand(ctx context.Context, req *models.SaveStandRequest) (*models.Stand, error)
	GetStand(ctx context.Context, fid int64) (*models.Stand, error)
	ListStands(ctx context.Context, limit, offset int) (*models.GalleryPage, error)
}

type galleryService struct {
	repo repository.StandRepository
}

func NewGalleryService(repo repository.StandRepository) GalleryService {
	return &galleryService{
		repo: repo,
	}
}

// SaveStand upserts the caller's stand. A user keeps one stand; a repeated
// save keeps the original id and creation time and bumps UpdatedAt.
func (s *galleryService) SaveStand(ctx context.Context, req *models.SaveStandRequest) (*models.Stand, error) {
	if req.FarcasterUser.FID <= 0 || req.StandData.StandName == "" {
		return nil, ErrInvalidStand
	}

	gender := req.StandData.Gender
	if gender == "" {
		gender = "MALE"
	}

	now := time.Now().UTC()
	stand := &models.Stand{
		ID:               uuid.New().String(),
		FID:              req.FarcasterUser.FID,
		Username:         req.FarcasterUser.Username,
		DisplayName:      req.FarcasterUser.DisplayName,
		PfpURL:           req.FarcasterUser.PfpURL,
		StandName:        req.StandData.StandName,
		Gender:           gender,
		UserAnalysis:     req.StandData.UserAnalysis,
		StandDescription: req.StandData.StandDescription,
		Ability:          req.StandData.Ability,
		BattleCry:        req.StandData.BattleCry,
		Stats:            req.StandData.Stats,
		StatDetails:      req.StandData.StatDetails,
		StandImageURL:    req.StandData.StandImageURL,
		VisualPrompt:     req.StandData.VisualPrompt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if existing, err := s.repo.GetByFID(ctx, stand.FID); err == nil {
		stand.ID = existing.ID
		stand.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.Upsert(ctx, stand); err != nil {
		return nil, err
	}
	return stand, nil
}

func (s *galleryService) GetStand(ctx context.Context, fid int64) (*models.Stand, error) {
	return s.repo.GetByFID(ctx, fid)
}

func (s *galleryService) ListStands(ctx context.Context, limit, offset int) (*models.GalleryPage, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	stands, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	return &models.GalleryPage{
		Stands:  stands,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+limit) < total,
	}, nil
}
