package service

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"kentkonut/internal/constants"
	"kentkonut/internal/model"
	"kentkonut/internal/repository"
	"kentkonut/internal/types"
	"kentkonut/internal/utils"
	"kentkonut/pkg/logger"
)

// GalleryService nested photo galleries
type GalleryService struct {
	repo      repository.GalleryRepository
	mediaRepo repository.MediaRepository
	cache     responseCache
	logger    *logger.Logger
}

// NewGalleryService creates the gallery service
func NewGalleryService(repo repository.GalleryRepository, mediaRepo repository.MediaRepository, redisClient *redis.Client, logger *logger.Logger) *GalleryService {
	return &GalleryService{repo: repo, mediaRepo: mediaRepo, cache: newResponseCache(redisClient, logger), logger: logger}
}

// Tree galleries as a forest ordered by display order. Inactive galleries are
// skipped for public callers, which also hides their descendants.
func (s *GalleryService) Tree(ctx context.Context, activeOnly bool) ([]*model.GalleryNode, error) {
	var roots []*model.GalleryNode
	if activeOnly && s.cache.get(ctx, "galleries:tree", &roots) {
		return roots, nil
	}

	galleries, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	nodes := make([]*model.GalleryNode, len(galleries))
	present := make(map[int64]bool, len(galleries))
	for i := range galleries {
		nodes[i] = &model.GalleryNode{Gallery: galleries[i], Children: []*model.GalleryNode{}}
		present[galleries[i].ID] = true
	}
	if activeOnly {
		nodes = pruneOrphans(nodes, present)
	}

	roots = utils.BuildTree(nodes,
		func(n *model.GalleryNode) int64 { return n.ID },
		func(n *model.GalleryNode) *int64 { return n.ParentID },
		func(parent, child *model.GalleryNode) { parent.Children = append(parent.Children, child) },
	)
	if activeOnly {
		s.cache.set(ctx, "galleries:tree", roots, defaultCacheTTL)
	}
	return roots, nil
}

// pruneOrphans drops nodes whose parent was filtered out, transitively
func pruneOrphans(nodes []*model.GalleryNode, present map[int64]bool) []*model.GalleryNode {
	for changed := true; changed; {
		changed = false
		kept := nodes[:0]
		for _, n := range nodes {
			if n.ParentID != nil && !present[*n.ParentID] {
				delete(present, n.ID)
				changed = true
				continue
			}
			kept = append(kept, n)
		}
		nodes = kept
	}
	return nodes
}

// Get gallery with its items
func (s *GalleryService) Get(ctx context.Context, id int64) (*model.Gallery, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.Items, err = s.repo.ListItems(ctx, id); err != nil {
		return nil, err
	}
	return g, nil
}

// GetPublicBySlug active gallery with its items
func (s *GalleryService) GetPublicBySlug(ctx context.Context, slug string) (*model.Gallery, error) {
	cacheKey := "galleries:slug:" + slug
	g := &model.Gallery{}
	if s.cache.get(ctx, cacheKey, g) {
		return g, nil
	}
	g, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !g.IsActive {
		return nil, notFound("gallery")
	}
	if g.Items, err = s.repo.ListItems(ctx, g.ID); err != nil {
		return nil, err
	}
	s.cache.set(ctx, cacheKey, g, defaultCacheTTL)
	return g, nil
}

func (s *GalleryService) checkParent(ctx context.Context, id int64, parentID *int64) error {
	if parentID == nil {
		return nil
	}
	if _, err := s.repo.GetByID(ctx, *parentID); err != nil {
		if errors.Is(err, constants.ErrNotFound) {
			return constants.NewError(constants.ErrBadRequest, "Üst galeri bulunamadı")
		}
		return err
	}
	if id == 0 {
		return nil
	}
	parents, err := s.repo.ParentMap(ctx)
	if err != nil {
		return err
	}
	if utils.CreatesCycle(parents, id, *parentID) {
		return constants.NewError(constants.ErrBadRequest, constants.MsgGalleryCycle)
	}
	return nil
}

func applyGallery(g *model.Gallery, req types.GalleryRequest) {
	if req.ParentID != nil {
		g.ParentID = nullableID(req.ParentID)
	}
	setIf(&g.Title, req.Title)
	setIf(&g.Description, req.Description)
	setIf(&g.CoverImageURL, req.CoverImageURL)
	setIf(&g.DisplayOrder, req.Order)
	setIf(&g.IsActive, req.IsActive)
}

// Create title is required; the slug is derived from it when not given
func (s *GalleryService) Create(ctx context.Context, req types.GalleryRequest) (*model.Gallery, error) {
	title, err := required(req.Title, "title")
	if err != nil {
		return nil, err
	}
	g := &model.Gallery{IsActive: true}
	applyGallery(g, req)
	if err := s.checkParent(ctx, 0, g.ParentID); err != nil {
		return nil, err
	}
	if g.Slug, err = resolveSlug(ctx, req.Slug, title, 0, s.repo.SlugTaken); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	s.cache.invalidate(ctx, "galleries:*")
	return g, nil
}

// Update rejects moving a gallery under itself or one of its descendants
func (s *GalleryService) Update(ctx context.Context, id int64, req types.GalleryRequest) (*model.Gallery, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyGallery(g, req)
	if req.ParentID != nil {
		if err := s.checkParent(ctx, id, g.ParentID); err != nil {
			return nil, err
		}
	}
	if req.Slug != nil {
		if g.Slug, err = resolveSlug(ctx, req.Slug, g.Title, id, s.repo.SlugTaken); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	s.cache.invalidate(ctx, "galleries:*")
	return g, nil
}

// Delete removes the gallery and everything below it
func (s *GalleryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.invalidate(ctx, "galleries:*")
	return nil
}

// AddItem places an uploaded media file in the gallery
func (s *GalleryService) AddItem(ctx context.Context, galleryID int64, req types.GalleryItemRequest) (*model.GalleryItem, error) {
	if _, err := s.repo.GetByID(ctx, galleryID); err != nil {
		return nil, err
	}
	m, err := s.mediaRepo.GetByID(ctx, req.MediaID)
	if err != nil {
		if errors.Is(err, constants.ErrNotFound) {
			return nil, constants.NewError(constants.ErrBadRequest, "Medya dosyası bulunamadı")
		}
		return nil, err
	}
	it := &model.GalleryItem{
		GalleryID:    galleryID,
		MediaID:      m.ID,
		Title:        req.Title,
		DisplayOrder: req.Order,
		URL:          m.URL,
		MimeType:     m.MimeType,
		AltText:      m.AltText,
	}
	if err := s.repo.AddItem(ctx, it); err != nil {
		return nil, err
	}
	s.cache.invalidate(ctx, "galleries:*")
	return it, nil
}

// DeleteItem removes an item; it must belong to the gallery
func (s *GalleryService) DeleteItem(ctx context.Context, galleryID, itemID int64) error {
	if err := s.repo.DeleteItem(ctx, galleryID, itemID); err != nil {
		return err
	}
	s.cache.invalidate(ctx, "galleries:*")
	return nil
}
