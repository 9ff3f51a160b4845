package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"kentkonut/internal/constants"
	"kentkonut/internal/model"
	"kentkonut/internal/repository"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
)

// BannerService banner groups, slides and positions
type BannerService struct {
	groupRepo    repository.BannerGroupRepository
	bannerRepo   repository.BannerRepository
	positionRepo repository.BannerPositionRepository
	tasks        TaskQueue
	cache        responseCache
	logger       *logger.Logger
	now          func() time.Time
}

// NewBannerService creates the banner service
func NewBannerService(
	groupRepo repository.BannerGroupRepository,
	bannerRepo repository.BannerRepository,
	positionRepo repository.BannerPositionRepository,
	tasks TaskQueue,
	redisClient *redis.Client,
	logger *logger.Logger,
) *BannerService {
	return &BannerService{
		groupRepo:    groupRepo,
		bannerRepo:   bannerRepo,
		positionRepo: positionRepo,
		tasks:        tasks,
		cache:        newResponseCache(redisClient, logger),
		logger:       logger,
		now:          time.Now,
	}
}

func (s *BannerService) invalidate(ctx context.Context) {
	s.cache.invalidate(ctx, "banners:*")
}

// positionSnapshot cached state of a position: both groups with every active banner.
// Schedules are applied on read so a cached entry never outlives a start or end date.
type positionSnapshot struct {
	PositionUUID    string             `json:"positionUuid"`
	PositionName    string             `json:"positionName"`
	Primary         *model.BannerGroup `json:"primary"`
	PrimaryBanners  []model.Banner     `json:"primaryBanners"`
	Fallback        *model.BannerGroup `json:"fallback"`
	FallbackBanners []model.Banner     `json:"fallbackBanners"`
}

// resolve picks the primary group when it has live banners at now, the fallback otherwise
func (p *positionSnapshot) resolve(now time.Time) *model.PositionBanners {
	result := &model.PositionBanners{
		PositionUUID: p.PositionUUID,
		PositionName: p.PositionName,
		Banners:      []model.Banner{},
	}
	if p.Primary != nil {
		if live := model.LiveBanners(p.PrimaryBanners, now); len(live) > 0 {
			result.Group, result.Banners = p.Primary, live
			return result
		}
	}
	if p.Fallback != nil {
		if live := model.LiveBanners(p.FallbackBanners, now); len(live) > 0 {
			result.Group, result.Banners = p.Fallback, live
			result.UsedFallback = true
			return result
		}
	}
	result.Group = p.Primary
	return result
}

// ResolvePosition live banners for a position, falling back to the secondary group
// when the primary group is inactive or has nothing to show
func (s *BannerService) ResolvePosition(ctx context.Context, positionUUID string) (*model.PositionBanners, error) {
	cacheKey := "banners:position:" + positionUUID

	var snap positionSnapshot
	if s.cache.get(ctx, cacheKey, &snap) {
		return snap.resolve(s.now().UTC()), nil
	}

	pos, err := s.positionRepo.GetByUUID(ctx, positionUUID)
	if err != nil {
		return nil, err
	}
	if !pos.IsActive {
		return nil, notFound("banner position")
	}

	snap = positionSnapshot{PositionUUID: pos.PositionUUID, PositionName: pos.Name}
	if snap.Primary, snap.PrimaryBanners, err = s.activeGroup(ctx, pos.BannerGroupID); err != nil {
		return nil, err
	}
	if snap.Fallback, snap.FallbackBanners, err = s.activeGroup(ctx, pos.FallbackGroupID); err != nil {
		return nil, err
	}

	s.cache.set(ctx, cacheKey, snap, defaultCacheTTL)
	return snap.resolve(s.now().UTC()), nil
}

// activeGroup loads an active group and its active banners; a missing or inactive group yields nothing
func (s *BannerService) activeGroup(ctx context.Context, groupID *int64) (*model.BannerGroup, []model.Banner, error) {
	if groupID == nil {
		return nil, nil, nil
	}
	group, err := s.groupRepo.GetByID(ctx, *groupID)
	if errors.Is(err, constants.ErrNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	if !group.IsActive {
		return nil, nil, nil
	}
	banners, err := s.bannerRepo.ListActiveByGroup(ctx, group.ID)
	if err != nil {
		return nil, nil, err
	}
	return group, banners, nil
}

// RecordView counts an impression in the background
func (s *BannerService) RecordView(id int64) {
	s.tasks.AddTask("banner_view", func(ctx context.Context) error {
		return s.bannerRepo.IncrementViews(ctx, id)
	})
}

// RecordClick counts a click in the background
func (s *BannerService) RecordClick(id int64) {
	s.tasks.AddTask("banner_click", func(ctx context.Context) error {
		return s.bannerRepo.IncrementClicks(ctx, id)
	})
}

// ListGroups all groups without their banners
func (s *BannerService) ListGroups(ctx context.Context) ([]model.BannerGroup, error) {
	return s.groupRepo.List(ctx)
}

// GetGroup with every banner of the group
func (s *BannerService) GetGroup(ctx context.Context, id int64) (*model.BannerGroup, error) {
	g, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.Banners, err = s.bannerRepo.ListByGroup(ctx, id); err != nil {
		return nil, err
	}
	return g, nil
}

func applyGroup(g *model.BannerGroup, req types.BannerGroupRequest) {
	setIf(&g.Name, req.Name)
	setIf(&g.Description, req.Description)
	setIf(&g.Width, req.Width)
	setIf(&g.Height, req.Height)
	setIf(&g.Animation, req.Animation)
	setIf(&g.DurationMs, req.DurationMs)
	setIf(&g.IsActive, req.IsActive)
}

// CreateGroup name is required
func (s *BannerService) CreateGroup(ctx context.Context, req types.BannerGroupRequest) (*model.BannerGroup, error) {
	if _, err := required(req.Name, "name"); err != nil {
		return nil, err
	}
	g := &model.BannerGroup{Animation: "FADE", DurationMs: 5000, IsActive: true}
	applyGroup(g, req)
	if err := s.groupRepo.Create(ctx, g); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return g, nil
}

// UpdateGroup applies the non-nil fields of req
func (s *BannerService) UpdateGroup(ctx context.Context, id int64, req types.BannerGroupRequest) (*model.BannerGroup, error) {
	g, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyGroup(g, req)
	if err := s.groupRepo.Update(ctx, g); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return g, nil
}

// DeleteGroup removes the group and its banners
func (s *BannerService) DeleteGroup(ctx context.Context, id int64) error {
	if err := s.groupRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// GetBanner by id
func (s *BannerService) GetBanner(ctx context.Context, id int64) (*model.Banner, error) {
	return s.bannerRepo.GetByID(ctx, id)
}

func (s *BannerService) applyBanner(ctx context.Context, b *model.Banner, req types.BannerRequest) error {
	if req.BannerGroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *req.BannerGroupID); err != nil {
			return err
		}
		b.BannerGroupID = *req.BannerGroupID
	}
	setIf(&b.Title, req.Title)
	setIf(&b.Description, req.Description)
	setIf(&b.ImageURL, req.ImageURL)
	setIf(&b.LinkURL, req.LinkURL)
	setIf(&b.AltText, req.AltText)
	setIf(&b.DisplayOrder, req.Order)
	setIf(&b.IsActive, req.IsActive)

	if req.ClearSchedule {
		b.StartDate, b.EndDate = nil, nil
	}
	if req.StartDate != nil {
		t := req.StartDate.UTC()
		b.StartDate = &t
	}
	if req.EndDate != nil {
		t := req.EndDate.UTC()
		b.EndDate = &t
	}
	if b.StartDate != nil && b.EndDate != nil && b.EndDate.Before(*b.StartDate) {
		return constants.NewError(constants.ErrBadRequest, "Bitiş tarihi başlangıç tarihinden önce olamaz")
	}
	return nil
}

// CreateBanner group, title and image are required
func (s *BannerService) CreateBanner(ctx context.Context, req types.BannerRequest) (*model.Banner, error) {
	if _, err := required(req.BannerGroupID, "bannerGroupId"); err != nil {
		return nil, err
	}
	if _, err := required(req.Title, "title"); err != nil {
		return nil, err
	}
	if _, err := required(req.ImageURL, "imageUrl"); err != nil {
		return nil, err
	}
	b := &model.Banner{IsActive: true}
	if err := s.applyBanner(ctx, b, req); err != nil {
		return nil, err
	}
	if err := s.bannerRepo.Create(ctx, b); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return b, nil
}

// UpdateBanner applies the non-nil fields of req
func (s *BannerService) UpdateBanner(ctx context.Context, id int64, req types.BannerRequest) (*model.Banner, error) {
	b, err := s.bannerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyBanner(ctx, b, req); err != nil {
		return nil, err
	}
	if err := s.bannerRepo.Update(ctx, b); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return b, nil
}

// DeleteBanner removes one slide
func (s *BannerService) DeleteBanner(ctx context.Context, id int64) error {
	if err := s.bannerRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// ListPositions all positions
func (s *BannerService) ListPositions(ctx context.Context) ([]model.BannerPosition, error) {
	return s.positionRepo.List(ctx)
}

// GetPosition by id
func (s *BannerService) GetPosition(ctx context.Context, id int64) (*model.BannerPosition, error) {
	return s.positionRepo.GetByID(ctx, id)
}

func (s *BannerService) applyPosition(ctx context.Context, p *model.BannerPosition, req types.BannerPositionRequest) error {
	setIf(&p.PositionUUID, req.PositionUUID)
	setIf(&p.Name, req.Name)
	setIf(&p.Description, req.Description)
	setIf(&p.IsActive, req.IsActive)
	if req.BannerGroupID != nil {
		p.BannerGroupID = nullableID(req.BannerGroupID)
	}
	if req.FallbackGroupID != nil {
		p.FallbackGroupID = nullableID(req.FallbackGroupID)
	}
	for _, id := range []*int64{p.BannerGroupID, p.FallbackGroupID} {
		if id == nil {
			continue
		}
		if _, err := s.groupRepo.GetByID(ctx, *id); err != nil {
			return err
		}
	}
	if p.PositionUUID == "" {
		p.PositionUUID = uuid.NewString()
	}
	return nil
}

// CreatePosition name is required; the UUID is generated when omitted
func (s *BannerService) CreatePosition(ctx context.Context, req types.BannerPositionRequest) (*model.BannerPosition, error) {
	if _, err := required(req.Name, "name"); err != nil {
		return nil, err
	}
	p := &model.BannerPosition{IsActive: true}
	if err := s.applyPosition(ctx, p, req); err != nil {
		return nil, err
	}
	if err := s.positionRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return p, nil
}

// UpdatePosition applies the non-nil fields of req. A group id of 0 clears that group.
func (s *BannerService) UpdatePosition(ctx context.Context, id int64, req types.BannerPositionRequest) (*model.BannerPosition, error) {
	p, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyPosition(ctx, p, req); err != nil {
		return nil, err
	}
	if err := s.positionRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return p, nil
}

// DeletePosition removes a position
func (s *BannerService) DeletePosition(ctx context.Context, id int64) error {
	if err := s.positionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}
