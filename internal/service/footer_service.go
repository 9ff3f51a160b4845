package service

import (
	"context"

	"github.com/redis/go-redis/v9"

	"kentkonut/internal/model"
	"kentkonut/internal/repository"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
)

const footerCacheKey = "footer:public"

// FooterService footer sections and items
type FooterService struct {
	repo   repository.FooterRepository
	cache  responseCache
	logger *logger.Logger
}

// NewFooterService creates the footer service
func NewFooterService(repo repository.FooterRepository, redisClient *redis.Client, logger *logger.Logger) *FooterService {
	return &FooterService{repo: repo, cache: newResponseCache(redisClient, logger), logger: logger}
}

func (s *FooterService) invalidate(ctx context.Context) {
	s.cache.invalidate(ctx, "footer:*")
}

// Public active sections with active items, cached
func (s *FooterService) Public(ctx context.Context) ([]model.FooterSection, error) {
	var sections []model.FooterSection
	if s.cache.get(ctx, footerCacheKey, &sections) {
		return sections, nil
	}
	sections, err := s.repo.ListActiveWithItems(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.set(ctx, footerCacheKey, sections, defaultCacheTTL)
	return sections, nil
}

// ListSections every section with all of its items
func (s *FooterService) ListSections(ctx context.Context) ([]model.FooterSection, error) {
	sections, err := s.repo.ListSections(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sections {
		if sections[i].Items, err = s.repo.ListItems(ctx, sections[i].ID); err != nil {
			return nil, err
		}
	}
	return sections, nil
}

// GetSection with its items
func (s *FooterService) GetSection(ctx context.Context, id int64) (*model.FooterSection, error) {
	section, err := s.repo.GetSection(ctx, id)
	if err != nil {
		return nil, err
	}
	if section.Items, err = s.repo.ListItems(ctx, id); err != nil {
		return nil, err
	}
	return section, nil
}

func applySection(sec *model.FooterSection, req types.FooterSectionRequest) {
	setIf(&sec.SectionKey, req.Key)
	setIf(&sec.Title, req.Title)
	setIf(&sec.Type, req.Type)
	setIf(&sec.DisplayOrder, req.Order)
	setIf(&sec.IsActive, req.IsActive)
}

// CreateSection key and title are required
func (s *FooterService) CreateSection(ctx context.Context, req types.FooterSectionRequest) (*model.FooterSection, error) {
	if _, err := required(req.Key, "key"); err != nil {
		return nil, err
	}
	if _, err := required(req.Title, "title"); err != nil {
		return nil, err
	}
	sec := &model.FooterSection{Type: "LINKS", IsActive: true, Items: []model.FooterItem{}}
	applySection(sec, req)
	if err := s.repo.CreateSection(ctx, sec); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return sec, nil
}

// UpdateSection applies the non-nil fields of req
func (s *FooterService) UpdateSection(ctx context.Context, id int64, req types.FooterSectionRequest) (*model.FooterSection, error) {
	sec, err := s.repo.GetSection(ctx, id)
	if err != nil {
		return nil, err
	}
	applySection(sec, req)
	if err := s.repo.UpdateSection(ctx, sec); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.GetSection(ctx, id)
}

// DeleteSection removes the section and its items
func (s *FooterService) DeleteSection(ctx context.Context, id int64) error {
	if err := s.repo.DeleteSection(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// ReorderSections applies new display orders atomically
func (s *FooterService) ReorderSections(ctx context.Context, items []types.ReorderItem) error {
	if err := s.repo.ReorderSections(ctx, items); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func applyItem(it *model.FooterItem, req types.FooterItemRequest) {
	setIf(&it.SectionID, req.SectionID)
	setIf(&it.Label, req.Label)
	setIf(&it.URL, req.URL)
	setIf(&it.Icon, req.Icon)
	setIf(&it.Type, req.Type)
	setIf(&it.DisplayOrder, req.Order)
	setIf(&it.IsActive, req.IsActive)
}

// CreateItem section and label are required
func (s *FooterService) CreateItem(ctx context.Context, req types.FooterItemRequest) (*model.FooterItem, error) {
	sectionID, err := required(req.SectionID, "sectionId")
	if err != nil {
		return nil, err
	}
	if _, err := required(req.Label, "label"); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetSection(ctx, sectionID); err != nil {
		return nil, err
	}
	it := &model.FooterItem{Type: "LINK", IsActive: true}
	applyItem(it, req)
	if err := s.repo.CreateItem(ctx, it); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return it, nil
}

// UpdateItem applies the non-nil fields of req; the item may move to another section
func (s *FooterService) UpdateItem(ctx context.Context, id int64, req types.FooterItemRequest) (*model.FooterItem, error) {
	it, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.SectionID != nil && *req.SectionID != it.SectionID {
		if _, err := s.repo.GetSection(ctx, *req.SectionID); err != nil {
			return nil, err
		}
	}
	applyItem(it, req)
	if err := s.repo.UpdateItem(ctx, it); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return it, nil
}

// DeleteItem removes one item
func (s *FooterService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// ReorderItems applies new display orders atomically
func (s *FooterService) ReorderItems(ctx context.Context, items []types.ReorderItem) error {
	if err := s.repo.ReorderItems(ctx, items); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}
