package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"kentkonut/internal/model"
	"kentkonut/internal/repository"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
)

// PageService static pages and their categories
type PageService struct {
	pageRepo     repository.PageRepository
	categoryRepo repository.PageCategoryRepository
	cache        responseCache
	logger       *logger.Logger
	now          func() time.Time
}

// NewPageService creates the page service
func NewPageService(pageRepo repository.PageRepository, categoryRepo repository.PageCategoryRepository, redisClient *redis.Client, logger *logger.Logger) *PageService {
	return &PageService{
		pageRepo:     pageRepo,
		categoryRepo: categoryRepo,
		cache:        newResponseCache(redisClient, logger),
		logger:       logger,
		now:          time.Now,
	}
}

func (s *PageService) invalidate(ctx context.Context) {
	s.cache.invalidate(ctx, "pages:*")
}

// List admin listing
func (s *PageService) List(ctx context.Context, q types.PageQuery) (*model.Paginated[model.Page], error) {
	q.Pagination = normalize(q.Pagination)
	items, total, err := s.pageRepo.List(ctx, model.PageFilter{
		CategoryID: q.CategoryID,
		Query:      q.Query,
		Offset:     q.Offset(),
		Limit:      q.PageSize,
	})
	if err != nil {
		return nil, err
	}
	return model.NewPaginated(items, total, q.Page, q.PageSize), nil
}

// Get by id
func (s *PageService) Get(ctx context.Context, id int64) (*model.Page, error) {
	return s.pageRepo.GetByID(ctx, id)
}

// GetPublicBySlug active pages only
func (s *PageService) GetPublicBySlug(ctx context.Context, slug string) (*model.Page, error) {
	cacheKey := "pages:detail:" + slug
	var p model.Page
	if s.cache.get(ctx, cacheKey, &p) {
		return &p, nil
	}

	found, err := s.pageRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !found.IsActive {
		return nil, notFound("page")
	}

	s.cache.set(ctx, cacheKey, found, defaultCacheTTL)
	return found, nil
}

func (s *PageService) applyPage(ctx context.Context, p *model.Page, req types.PageRequest) error {
	setIf(&p.Title, req.Title)
	setIf(&p.Content, req.Content)
	setIf(&p.Excerpt, req.Excerpt)
	setIf(&p.ImageURL, req.ImageURL)
	setIf(&p.MetaTitle, req.MetaTitle)
	setIf(&p.MetaDescription, req.MetaDescription)
	setIf(&p.IsActive, req.IsActive)
	setIf(&p.DisplayOrder, req.Order)
	if req.PublishedAt != nil {
		t := req.PublishedAt.UTC()
		p.PublishedAt = &t
	}
	if req.CategoryID != nil {
		p.CategoryID = nullableID(req.CategoryID)
		if p.CategoryID != nil {
			if _, err := s.categoryRepo.GetByID(ctx, *p.CategoryID); err != nil {
				return err
			}
		}
	}
	if req.Slug != nil || p.Slug == "" {
		slug, err := resolveSlug(ctx, req.Slug, p.Title, p.ID, s.pageRepo.SlugTaken)
		if err != nil {
			return err
		}
		p.Slug = slug
	}
	return nil
}

// Create title is required; an active page without a publish date is stamped now
func (s *PageService) Create(ctx context.Context, req types.PageRequest) (*model.Page, error) {
	if _, err := required(req.Title, "title"); err != nil {
		return nil, err
	}
	p := &model.Page{IsActive: true}
	if err := s.applyPage(ctx, p, req); err != nil {
		return nil, err
	}
	if p.IsActive && p.PublishedAt == nil {
		t := s.now().UTC()
		p.PublishedAt = &t
	}
	if err := s.pageRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return p, nil
}

// Update applies the non-nil fields of req
func (s *PageService) Update(ctx context.Context, id int64, req types.PageRequest) (*model.Page, error) {
	p, err := s.pageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyPage(ctx, p, req); err != nil {
		return nil, err
	}
	if err := s.pageRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return p, nil
}

// Delete removes a page
func (s *PageService) Delete(ctx context.Context, id int64) error {
	if err := s.pageRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// ListCategories active only when activeOnly is set
func (s *PageService) ListCategories(ctx context.Context, activeOnly bool) ([]model.PageCategory, error) {
	return s.categoryRepo.List(ctx, activeOnly)
}

// GetCategory by id
func (s *PageService) GetCategory(ctx context.Context, id int64) (*model.PageCategory, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *PageService) applyCategory(ctx context.Context, c *model.PageCategory, req types.CategoryRequest) error {
	setIf(&c.Name, req.Name)
	setIf(&c.Description, req.Description)
	setIf(&c.DisplayOrder, req.Order)
	setIf(&c.IsActive, req.IsActive)
	if req.Slug != nil || c.Slug == "" {
		slug, err := resolveSlug(ctx, req.Slug, c.Name, c.ID, s.categoryRepo.SlugTaken)
		if err != nil {
			return err
		}
		c.Slug = slug
	}
	return nil
}

// CreateCategory name is required
func (s *PageService) CreateCategory(ctx context.Context, req types.CategoryRequest) (*model.PageCategory, error) {
	if _, err := required(req.Name, "name"); err != nil {
		return nil, err
	}
	c := &model.PageCategory{IsActive: true}
	if err := s.applyCategory(ctx, c, req); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCategory applies the non-nil fields of req
func (s *PageService) UpdateCategory(ctx context.Context, id int64, req types.CategoryRequest) (*model.PageCategory, error) {
	c, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyCategory(ctx, c, req); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory removes the category and its pages
func (s *PageService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}
