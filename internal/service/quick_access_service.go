package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"kentkonut/internal/constants"
	"kentkonut/internal/model"
	"kentkonut/internal/repository"
	"kentkonut/internal/types"
	"kentkonut/pkg/cache"
	"kentkonut/pkg/logger"
)

// QuickAccessCache in-process memo of active links keyed by module type and id.
// Entries expire after their TTL and are removed by Sweep.
type QuickAccessCache struct {
	entries *cache.TTLCache[string, []model.QuickAccessLink]
}

// NewQuickAccessCache creates a cache whose entries live for ttl
func NewQuickAccessCache(ttl time.Duration) *QuickAccessCache {
	return &QuickAccessCache{entries: cache.New[string, []model.QuickAccessLink](ttl)}
}

func quickAccessKey(moduleType model.ModuleType, moduleID int64) string {
	return string(moduleType) + ":" + strconv.FormatInt(moduleID, 10)
}

// Get returns the cached links, or false when absent or expired
func (c *QuickAccessCache) Get(moduleType model.ModuleType, moduleID int64) ([]model.QuickAccessLink, bool) {
	return c.entries.Get(quickAccessKey(moduleType, moduleID))
}

// Set stores links; ttl <= 0 uses the cache default
func (c *QuickAccessCache) Set(moduleType model.ModuleType, moduleID int64, links []model.QuickAccessLink, ttl time.Duration) {
	c.entries.SetWithTTL(quickAccessKey(moduleType, moduleID), links, ttl)
}

// Invalidate drops one module's entry
func (c *QuickAccessCache) Invalidate(moduleType model.ModuleType, moduleID int64) {
	c.entries.Delete(quickAccessKey(moduleType, moduleID))
}

// InvalidateModuleType drops every entry of a module type and returns how many were removed
func (c *QuickAccessCache) InvalidateModuleType(moduleType model.ModuleType) int {
	prefix := string(moduleType) + ":"
	return c.entries.DeleteFunc(func(key string) bool {
		return strings.HasPrefix(key, prefix)
	})
}

// Sweep evicts expired entries
func (c *QuickAccessCache) Sweep() int {
	return c.entries.EvictExpired()
}

// Len number of stored entries, expired ones included
func (c *QuickAccessCache) Len() int {
	return c.entries.Len()
}

// QuickAccessService links attached to content modules
type QuickAccessService struct {
	repo   repository.QuickAccessRepository
	cache  *QuickAccessCache
	logger *logger.Logger
}

// NewQuickAccessService creates the quick access service
func NewQuickAccessService(repo repository.QuickAccessRepository, cache *QuickAccessCache, logger *logger.Logger) *QuickAccessService {
	return &QuickAccessService{repo: repo, cache: cache, logger: logger}
}

// Cache exposes the link cache to the scheduler
func (s *QuickAccessService) Cache() *QuickAccessCache {
	return s.cache
}

// ListByModule active links of one module, served from memory when fresh
func (s *QuickAccessService) ListByModule(ctx context.Context, moduleType model.ModuleType, moduleID int64) ([]model.QuickAccessLink, error) {
	if !moduleType.Valid() {
		return nil, constants.NewError(constants.ErrBadRequest, "Geçersiz modül türü")
	}
	if links, ok := s.cache.Get(moduleType, moduleID); ok {
		return links, nil
	}
	links, err := s.repo.ListByModule(ctx, moduleType, moduleID, true)
	if err != nil {
		return nil, err
	}
	s.cache.Set(moduleType, moduleID, links, 0)
	return links, nil
}

// List every link for the admin panel
func (s *QuickAccessService) List(ctx context.Context) ([]model.QuickAccessLink, error) {
	return s.repo.List(ctx)
}

// Get by id
func (s *QuickAccessService) Get(ctx context.Context, id int64) (*model.QuickAccessLink, error) {
	return s.repo.GetByID(ctx, id)
}

func applyQuickAccess(l *model.QuickAccessLink, req types.QuickAccessLinkRequest) {
	if req.ModuleType != nil {
		l.ModuleType = model.ModuleType(*req.ModuleType)
	}
	setIf(&l.ModuleID, req.ModuleID)
	setIf(&l.Title, req.Title)
	setIf(&l.URL, req.URL)
	setIf(&l.Icon, req.Icon)
	setIf(&l.DisplayOrder, req.Order)
	setIf(&l.IsActive, req.IsActive)
}

// Create module type, module id, title and url are required
func (s *QuickAccessService) Create(ctx context.Context, req types.QuickAccessLinkRequest) (*model.QuickAccessLink, error) {
	if _, err := required(req.ModuleType, "moduleType"); err != nil {
		return nil, err
	}
	if _, err := required(req.ModuleID, "moduleId"); err != nil {
		return nil, err
	}
	if _, err := required(req.Title, "title"); err != nil {
		return nil, err
	}
	if _, err := required(req.URL, "url"); err != nil {
		return nil, err
	}
	l := &model.QuickAccessLink{IsActive: true}
	applyQuickAccess(l, req)
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	s.cache.Invalidate(l.ModuleType, l.ModuleID)
	return l, nil
}

// Update applies req; a link moved to another module invalidates both entries
func (s *QuickAccessService) Update(ctx context.Context, id int64, req types.QuickAccessLinkRequest) (*model.QuickAccessLink, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldType, oldID := l.ModuleType, l.ModuleID
	applyQuickAccess(l, req)
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	s.cache.Invalidate(oldType, oldID)
	s.cache.Invalidate(l.ModuleType, l.ModuleID)
	return l, nil
}

// Delete removes a link
func (s *QuickAccessService) Delete(ctx context.Context, id int64) error {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(l.ModuleType, l.ModuleID)
	return nil
}

// Reorder applies new display orders and drops the cache of every module type touched
func (s *QuickAccessService) Reorder(ctx context.Context, items []types.ReorderItem) error {
	touched := make(map[model.ModuleType]struct{})
	for _, it := range items {
		l, err := s.repo.GetByID(ctx, it.ID)
		if err != nil {
			return err
		}
		touched[l.ModuleType] = struct{}{}
	}
	if err := s.repo.Reorder(ctx, items); err != nil {
		return err
	}
	for t := range touched {
		s.cache.InvalidateModuleType(t)
	}
	return nil
}
