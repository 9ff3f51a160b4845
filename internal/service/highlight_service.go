package service

import (
	"context"

	"github.com/redis/go-redis/v9"

	"kentkonut/internal/model"
	"kentkonut/internal/repository"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
)

const highlightCacheKey = "highlights:public"

// HighlightService homepage highlight cards
type HighlightService struct {
	repo   repository.HighlightRepository
	cache  responseCache
	logger *logger.Logger
}

// NewHighlightService creates the highlight service
func NewHighlightService(repo repository.HighlightRepository, redisClient *redis.Client, logger *logger.Logger) *HighlightService {
	return &HighlightService{repo: repo, cache: newResponseCache(redisClient, logger), logger: logger}
}

// List returns every card, or only active ones (cached) for the public site
func (s *HighlightService) List(ctx context.Context, activeOnly bool) ([]model.Highlight, error) {
	var items []model.Highlight
	if activeOnly && s.cache.get(ctx, highlightCacheKey, &items) {
		return items, nil
	}
	items, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	if activeOnly {
		s.cache.set(ctx, highlightCacheKey, items, defaultCacheTTL)
	}
	return items, nil
}

func (s *HighlightService) Get(ctx context.Context, id int64) (*model.Highlight, error) {
	return s.repo.GetByID(ctx, id)
}

func applyHighlight(h *model.Highlight, req types.HighlightRequest) {
	setIf(&h.Title, req.Title)
	setIf(&h.Subtitle, req.Subtitle)
	setIf(&h.ImageURL, req.ImageURL)
	setIf(&h.RedirectURL, req.RedirectURL)
	setIf(&h.SourceType, req.SourceType)
	if req.SourceID != nil {
		h.SourceID = nullableID(req.SourceID)
	}
	setIf(&h.DisplayOrder, req.Order)
	setIf(&h.IsActive, req.IsActive)
}

// Create title is required; the source defaults to CUSTOM
func (s *HighlightService) Create(ctx context.Context, req types.HighlightRequest) (*model.Highlight, error) {
	if _, err := required(req.Title, "title"); err != nil {
		return nil, err
	}
	h := &model.Highlight{SourceType: "CUSTOM", IsActive: true}
	applyHighlight(h, req)
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	s.cache.invalidate(ctx, highlightCacheKey)
	return h, nil
}

func (s *HighlightService) Update(ctx context.Context, id int64, req types.HighlightRequest) (*model.Highlight, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyHighlight(h, req)
	if err := s.repo.Update(ctx, h); err != nil {
		return nil, err
	}
	s.cache.invalidate(ctx, highlightCacheKey)
	return h, nil
}

func (s *HighlightService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.invalidate(ctx, highlightCacheKey)
	return nil
}

// Reorder applies new display orders atomically
func (s *HighlightService) Reorder(ctx context.Context, items []types.ReorderItem) error {
	if err := s.repo.Reorder(ctx, items); err != nil {
		return err
	}
	s.cache.invalidate(ctx, highlightCacheKey)
	return nil
}
