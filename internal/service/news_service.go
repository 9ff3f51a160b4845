package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"kentkonut/internal/constants"
	"kentkonut/internal/model"
	"kentkonut/internal/repository"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
)

// NewsService news articles, categories and tags
type NewsService struct {
	newsRepo     repository.TransactionalNewsRepository
	categoryRepo repository.NewsCategoryRepository
	tagRepo      repository.TagRepository
	tasks        TaskQueue
	cache        responseCache
	logger       *logger.Logger
	now          func() time.Time
}

// NewNewsService creates the news service
func NewNewsService(
	newsRepo repository.TransactionalNewsRepository,
	categoryRepo repository.NewsCategoryRepository,
	tagRepo repository.TagRepository,
	tasks TaskQueue,
	redisClient *redis.Client,
	logger *logger.Logger,
) *NewsService {
	return &NewsService{
		newsRepo:     newsRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		tasks:        tasks,
		cache:        newResponseCache(redisClient, logger),
		logger:       logger,
		now:          time.Now,
	}
}

// InvalidateCache drops every cached news response
func (s *NewsService) InvalidateCache(ctx context.Context) {
	s.cache.invalidate(ctx, "news:*")
}

// List admin listing with every status
func (s *NewsService) List(ctx context.Context, q types.NewsQuery) (*model.Paginated[model.News], error) {
	q.Pagination = normalize(q.Pagination)
	filter := model.NewsFilter{
		CategoryID:   q.CategoryID,
		CategorySlug: q.CategorySlug,
		TagSlug:      q.TagSlug,
		Status:       model.NewsStatus(q.Status),
		Query:        q.Query,
		Offset:       q.Offset(),
		Limit:        q.PageSize,
	}
	return s.list(ctx, filter, q.Pagination)
}

// ListPublished public listing, cached per query
func (s *NewsService) ListPublished(ctx context.Context, q types.NewsQuery) (*model.Paginated[model.News], error) {
	q.Pagination = normalize(q.Pagination)
	cacheKey := fmt.Sprintf("news:list:%s:%s:%s:%d:%d",
		q.CategorySlug, q.TagSlug, strings.ToLower(q.Query), q.Page, q.PageSize)

	var cached model.Paginated[model.News]
	if s.cache.get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	result, err := s.list(ctx, model.NewsFilter{
		CategorySlug: q.CategorySlug,
		TagSlug:      q.TagSlug,
		Status:       model.NewsPublished,
		Query:        q.Query,
		Offset:       q.Offset(),
		Limit:        q.PageSize,
	}, q.Pagination)
	if err != nil {
		return nil, err
	}

	s.cache.set(ctx, cacheKey, result, defaultCacheTTL)
	return result, nil
}

func (s *NewsService) list(ctx context.Context, filter model.NewsFilter, p types.Pagination) (*model.Paginated[model.News], error) {
	items, total, err := s.newsRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := s.attachRelations(ctx, items); err != nil {
		return nil, err
	}
	return model.NewPaginated(items, total, p.Page, p.PageSize), nil
}

// attachRelations fills Category and Tags
func (s *NewsService) attachRelations(ctx context.Context, items []model.News) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]int64, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	tags, err := s.newsRepo.TagsByNews(ctx, ids)
	if err != nil {
		return err
	}
	categories, err := s.categoryRepo.List(ctx, false)
	if err != nil {
		return err
	}
	byID := make(map[int64]*model.NewsCategory, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}
	for i := range items {
		items[i].Category = byID[items[i].CategoryID]
		items[i].Tags = tags[items[i].ID]
		if items[i].Tags == nil {
			items[i].Tags = []model.Tag{}
		}
	}
	return nil
}

// Get admin view of one article
func (s *NewsService) Get(ctx context.Context, id int64) (*model.News, error) {
	n, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items := []model.News{*n}
	if err := s.attachRelations(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

// GetPublishedBySlug public article page. The view counter is bumped in the background.
func (s *NewsService) GetPublishedBySlug(ctx context.Context, slug string) (*model.News, error) {
	cacheKey := "news:detail:" + slug
	var n model.News
	if !s.cache.get(ctx, cacheKey, &n) {
		found, err := s.newsRepo.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if found.Status != model.NewsPublished {
			return nil, notFound("news")
		}
		items := []model.News{*found}
		if err := s.attachRelations(ctx, items); err != nil {
			return nil, err
		}
		n = items[0]
		s.cache.set(ctx, cacheKey, n, defaultCacheTTL)
	}

	id := n.ID
	s.tasks.AddTask("news_view", func(ctx context.Context) error {
		return s.newsRepo.IncrementViews(ctx, id)
	})
	return &n, nil
}

func (s *NewsService) applyNews(ctx context.Context, n *model.News, req types.NewsRequest) error {
	setIf(&n.Title, req.Title)
	setIf(&n.Summary, req.Summary)
	setIf(&n.Content, req.Content)
	setIf(&n.ImageURL, req.ImageURL)
	setIf(&n.ReadTime, req.ReadTime)
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *req.CategoryID); err != nil {
			return err
		}
		n.CategoryID = *req.CategoryID
	}
	if req.PublishedAt != nil {
		t := req.PublishedAt.UTC()
		n.PublishedAt = &t
	}
	if req.Status != nil {
		n.Status = model.NewsStatus(*req.Status)
	}

	switch n.Status {
	case model.NewsPublished:
		if n.PublishedAt == nil {
			t := s.now().UTC()
			n.PublishedAt = &t
		}
	case model.NewsScheduled:
		if n.PublishedAt == nil {
			return constants.NewError(constants.ErrBadRequest, "Zamanlanmış haber için yayın tarihi gerekli")
		}
	}

	if len(req.TagIDs) > 0 {
		found, err := s.tagRepo.CountExisting(ctx, req.TagIDs)
		if err != nil {
			return err
		}
		if found != countDistinct(req.TagIDs) {
			return constants.NewError(constants.ErrBadRequest, "Geçersiz etiket")
		}
	}

	if req.Slug != nil || n.Slug == "" {
		slug, err := resolveSlug(ctx, req.Slug, n.Title, n.ID, s.newsRepo.SlugTaken)
		if err != nil {
			return err
		}
		n.Slug = slug
	}
	return nil
}

func countDistinct(ids []int64) int {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return len(seen)
}

// Create title and category are required; authorID may be 0
func (s *NewsService) Create(ctx context.Context, authorID int64, req types.NewsRequest) (*model.News, error) {
	if _, err := required(req.Title, "title"); err != nil {
		return nil, err
	}
	if _, err := required(req.CategoryID, "categoryId"); err != nil {
		return nil, err
	}

	n := &model.News{Status: model.NewsDraft, AuthorID: nullableID(&authorID)}
	if err := s.applyNews(ctx, n, req); err != nil {
		return nil, err
	}

	err := s.newsRepo.InTx(ctx, func(tx *sqlx.Tx) error {
		repo := s.newsRepo.WithTx(tx)
		if err := repo.Create(ctx, n); err != nil {
			return err
		}
		return repo.SetTags(ctx, n.ID, req.TagIDs)
	})
	if err != nil {
		return nil, err
	}

	s.InvalidateCache(ctx)
	return s.Get(ctx, n.ID)
}

// Update applies the non-nil fields of req; a non-nil TagIDs replaces the tag set
func (s *NewsService) Update(ctx context.Context, id int64, req types.NewsRequest) (*model.News, error) {
	n, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyNews(ctx, n, req); err != nil {
		return nil, err
	}

	err = s.newsRepo.InTx(ctx, func(tx *sqlx.Tx) error {
		repo := s.newsRepo.WithTx(tx)
		if err := repo.Update(ctx, n); err != nil {
			return err
		}
		if req.TagIDs != nil {
			return repo.SetTags(ctx, n.ID, req.TagIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.InvalidateCache(ctx)
	return s.Get(ctx, n.ID)
}

// Delete removes an article and its tag links
func (s *NewsService) Delete(ctx context.Context, id int64) error {
	if err := s.newsRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.InvalidateCache(ctx)
	return nil
}

// PublishScheduled publishes scheduled articles that are due. Called by the scheduler.
func (s *NewsService) PublishScheduled(ctx context.Context) (int64, error) {
	n, err := s.newsRepo.PublishDue(ctx, s.now().UTC())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("scheduled news published", "count", n)
		s.InvalidateCache(ctx)
	}
	return n, nil
}

// ListCategories active only when activeOnly is set
func (s *NewsService) ListCategories(ctx context.Context, activeOnly bool) ([]model.NewsCategory, error) {
	cacheKey := "news:categories"
	var items []model.NewsCategory
	if activeOnly && s.cache.get(ctx, cacheKey, &items) {
		return items, nil
	}
	items, err := s.categoryRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	if activeOnly {
		s.cache.set(ctx, cacheKey, items, defaultCacheTTL)
	}
	return items, nil
}

// GetCategory by id
func (s *NewsService) GetCategory(ctx context.Context, id int64) (*model.NewsCategory, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *NewsService) applyCategory(ctx context.Context, c *model.NewsCategory, req types.CategoryRequest) error {
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
func (s *NewsService) CreateCategory(ctx context.Context, req types.CategoryRequest) (*model.NewsCategory, error) {
	if _, err := required(req.Name, "name"); err != nil {
		return nil, err
	}
	c := &model.NewsCategory{IsActive: true}
	if err := s.applyCategory(ctx, c, req); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.InvalidateCache(ctx)
	return c, nil
}

// UpdateCategory applies the non-nil fields of req
func (s *NewsService) UpdateCategory(ctx context.Context, id int64, req types.CategoryRequest) (*model.NewsCategory, error) {
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
	s.InvalidateCache(ctx)
	return c, nil
}

// DeleteCategory removes the category and all of its news
func (s *NewsService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.InvalidateCache(ctx)
	return nil
}

// ListTags alphabetically
func (s *NewsService) ListTags(ctx context.Context) ([]model.Tag, error) {
	return s.tagRepo.List(ctx)
}

// CreateTag slug is derived from the name when omitted
func (s *NewsService) CreateTag(ctx context.Context, req types.TagRequest) (*model.Tag, error) {
	tag := &model.Tag{Name: strings.TrimSpace(req.Name)}
	slug, err := resolveSlug(ctx, &req.Slug, tag.Name, 0, s.tagRepo.SlugTaken)
	if err != nil {
		return nil, err
	}
	tag.Slug = slug
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// UpdateTag renames a tag; an empty slug keeps the current one
func (s *NewsService) UpdateTag(ctx context.Context, id int64, req types.TagRequest) (*model.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tag.Name = strings.TrimSpace(req.Name)
	if req.Slug != "" && req.Slug != tag.Slug {
		if tag.Slug, err = resolveSlug(ctx, &req.Slug, tag.Name, tag.ID, s.tagRepo.SlugTaken); err != nil {
			return nil, err
		}
	}
	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, err
	}
	s.InvalidateCache(ctx)
	return tag, nil
}

// DeleteTag removes the tag from every article
func (s *NewsService) DeleteTag(ctx context.Context, id int64) error {
	if err := s.tagRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.InvalidateCache(ctx)
	return nil
}
