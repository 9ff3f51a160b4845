package service

import (
	"context"

	"github.com/redis/go-redis/v9"

	"kentkonut/internal/model"
	"kentkonut/internal/repository"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
)

// CorporateService vision, mission and other corporate blocks
type CorporateService struct {
	repo   repository.CorporateContentRepository
	cache  responseCache
	logger *logger.Logger
}

// NewCorporateService creates the corporate content service
func NewCorporateService(repo repository.CorporateContentRepository, redisClient *redis.Client, logger *logger.Logger) *CorporateService {
	return &CorporateService{repo: repo, cache: newResponseCache(redisClient, logger), logger: logger}
}

// List filters by type when typ is non-empty; public callers get cached active rows
func (s *CorporateService) List(ctx context.Context, typ model.CorporateType, activeOnly bool) ([]model.CorporateContent, error) {
	cacheKey := "corporate:" + string(typ)
	var items []model.CorporateContent
	if activeOnly && s.cache.get(ctx, cacheKey, &items) {
		return items, nil
	}
	items, err := s.repo.List(ctx, typ, activeOnly)
	if err != nil {
		return nil, err
	}
	if activeOnly {
		s.cache.set(ctx, cacheKey, items, defaultCacheTTL)
	}
	return items, nil
}

// Get by id
func (s *CorporateService) Get(ctx context.Context, id int64) (*model.CorporateContent, error) {
	return s.repo.GetByID(ctx, id)
}

func applyCorporate(c *model.CorporateContent, req types.CorporateContentRequest) {
	if req.Type != nil {
		c.Type = model.CorporateType(*req.Type)
	}
	setIf(&c.Title, req.Title)
	setIf(&c.Subtitle, req.Subtitle)
	setIf(&c.Content, req.Content)
	setIf(&c.ImageURL, req.ImageURL)
	setIf(&c.Icon, req.Icon)
	setIf(&c.DisplayOrder, req.Order)
	setIf(&c.IsActive, req.IsActive)
}

// Create type and title are required
func (s *CorporateService) Create(ctx context.Context, req types.CorporateContentRequest) (*model.CorporateContent, error) {
	if _, err := required(req.Type, "type"); err != nil {
		return nil, err
	}
	if _, err := required(req.Title, "title"); err != nil {
		return nil, err
	}
	c := &model.CorporateContent{IsActive: true}
	applyCorporate(c, req)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.cache.invalidate(ctx, "corporate:*")
	return c, nil
}

// Update applies the non-nil fields of req
func (s *CorporateService) Update(ctx context.Context, id int64, req types.CorporateContentRequest) (*model.CorporateContent, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyCorporate(c, req)
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.cache.invalidate(ctx, "corporate:*")
	return c, nil
}

// Delete removes a block
func (s *CorporateService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.invalidate(ctx, "corporate:*")
	return nil
}

// Reorder applies new display orders atomically
func (s *CorporateService) Reorder(ctx context.Context, items []types.ReorderItem) error {
	if err := s.repo.Reorder(ctx, items); err != nil {
		return err
	}
	s.cache.invalidate(ctx, "corporate:*")
	return nil
}
