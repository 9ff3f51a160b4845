package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"kentkonut/internal/model"
	"kentkonut/internal/repository"
	"kentkonut/internal/types"
	"kentkonut/internal/utils"
	"kentkonut/pkg/logger"
)

// DepartmentService departments, personnel and executives
type DepartmentService struct {
	departmentRepo repository.DepartmentRepository
	personnelRepo  repository.PersonnelRepository
	executiveRepo  repository.ExecutiveRepository
	cache          responseCache
	logger         *logger.Logger
}

// NewDepartmentService creates the department service
func NewDepartmentService(
	departmentRepo repository.DepartmentRepository,
	personnelRepo repository.PersonnelRepository,
	executiveRepo repository.ExecutiveRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		personnelRepo:  personnelRepo,
		executiveRepo:  executiveRepo,
		cache:          newResponseCache(redisClient, logger),
		logger:         logger,
	}
}

func (s *DepartmentService) invalidate(ctx context.Context) {
	s.cache.invalidate(ctx, "departments:*")
	s.cache.invalidate(ctx, "executives:*")
}

func decodeServices(d *model.Department) error {
	services, err := utils.ParseStringList(d.ServicesRaw)
	if err != nil {
		return err
	}
	d.Services = services
	return nil
}

// ListDepartments active only when activeOnly is set
func (s *DepartmentService) ListDepartments(ctx context.Context, activeOnly bool) ([]model.Department, error) {
	cacheKey := fmt.Sprintf("departments:list:%t", activeOnly)
	var items []model.Department
	if activeOnly && s.cache.get(ctx, cacheKey, &items) {
		return items, nil
	}

	items, err := s.departmentRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if err := decodeServices(&items[i]); err != nil {
			return nil, err
		}
	}

	if activeOnly {
		s.cache.set(ctx, cacheKey, items, defaultCacheTTL)
	}
	return items, nil
}

// GetDepartment by id
func (s *DepartmentService) GetDepartment(ctx context.Context, id int64) (*model.Department, error) {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return d, decodeServices(d)
}

// GetDepartmentDetail public department page with its active director and chiefs
func (s *DepartmentService) GetDepartmentDetail(ctx context.Context, slug string) (*model.DepartmentDetail, error) {
	cacheKey := "departments:detail:" + slug
	var detail model.DepartmentDetail
	if s.cache.get(ctx, cacheKey, &detail) {
		return &detail, nil
	}

	d, err := s.departmentRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !d.IsActive {
		return nil, notFound("department")
	}
	if err := decodeServices(d); err != nil {
		return nil, err
	}

	staff, err := s.personnelRepo.List(ctx, model.PersonnelFilter{DepartmentID: d.ID, ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	detail = model.DepartmentDetail{Department: *d, Chiefs: []model.Personnel{}}
	for i := range staff {
		switch staff[i].Type {
		case model.PersonnelDirector:
			if detail.Director == nil {
				detail.Director = &staff[i]
			}
		case model.PersonnelChief:
			detail.Chiefs = append(detail.Chiefs, staff[i])
		}
	}

	s.cache.set(ctx, cacheKey, detail, defaultCacheTTL)
	return &detail, nil
}

func (s *DepartmentService) applyDepartment(ctx context.Context, d *model.Department, req types.DepartmentRequest) error {
	setIf(&d.Name, req.Name)
	setIf(&d.Description, req.Description)
	setIf(&d.Content, req.Content)
	setIf(&d.ImageURL, req.ImageURL)
	setIf(&d.Icon, req.Icon)
	setIf(&d.Phone, req.Phone)
	setIf(&d.Email, req.Email)
	setIf(&d.Address, req.Address)
	setIf(&d.IsActive, req.IsActive)
	setIf(&d.DisplayOrder, req.Order)

	if req.Services != nil || d.ServicesRaw == "" {
		raw, err := utils.FormatStringList(req.Services)
		if err != nil {
			return err
		}
		d.ServicesRaw = raw
	}

	if req.Slug != nil || d.Slug == "" {
		slug, err := resolveSlug(ctx, req.Slug, d.Name, d.ID, s.departmentRepo.SlugTaken)
		if err != nil {
			return err
		}
		d.Slug = slug
	}
	return decodeServices(d)
}

// CreateDepartment name is required, slug is derived when omitted
func (s *DepartmentService) CreateDepartment(ctx context.Context, req types.DepartmentRequest) (*model.Department, error) {
	if _, err := required(req.Name, "name"); err != nil {
		return nil, err
	}
	d := &model.Department{IsActive: true}
	if err := s.applyDepartment(ctx, d, req); err != nil {
		return nil, err
	}
	if err := s.departmentRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return d, nil
}

// UpdateDepartment applies the non-nil fields of req
func (s *DepartmentService) UpdateDepartment(ctx context.Context, id int64, req types.DepartmentRequest) (*model.Department, error) {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyDepartment(ctx, d, req); err != nil {
		return nil, err
	}
	if err := s.departmentRepo.Update(ctx, d); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return d, nil
}

// DeleteDepartment detaches its personnel
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id int64) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// ListPersonnel filtered by department and type
func (s *DepartmentService) ListPersonnel(ctx context.Context, filter model.PersonnelFilter) ([]model.Personnel, error) {
	return s.personnelRepo.List(ctx, filter)
}

// GetPersonnel by id
func (s *DepartmentService) GetPersonnel(ctx context.Context, id int64) (*model.Personnel, error) {
	return s.personnelRepo.GetByID(ctx, id)
}

func (s *DepartmentService) applyPersonnel(ctx context.Context, p *model.Personnel, req types.PersonnelRequest) error {
	setIf(&p.Name, req.Name)
	setIf(&p.Title, req.Title)
	setIf(&p.Content, req.Content)
	setIf(&p.Phone, req.Phone)
	setIf(&p.Email, req.Email)
	setIf(&p.ImageURL, req.ImageURL)
	setIf(&p.IsActive, req.IsActive)
	setIf(&p.DisplayOrder, req.Order)
	if req.Type != nil {
		p.Type = model.PersonnelType(*req.Type)
	}
	if req.DepartmentID != nil {
		p.DepartmentID = nullableID(req.DepartmentID)
		if p.DepartmentID != nil {
			if _, err := s.departmentRepo.GetByID(ctx, *p.DepartmentID); err != nil {
				return err
			}
		}
	}
	if req.Slug != nil || p.Slug == "" {
		slug, err := resolveSlug(ctx, req.Slug, p.Name, p.ID, s.personnelRepo.SlugTaken)
		if err != nil {
			return err
		}
		p.Slug = slug
	}
	return nil
}

// CreatePersonnel name and type are required
func (s *DepartmentService) CreatePersonnel(ctx context.Context, req types.PersonnelRequest) (*model.Personnel, error) {
	if _, err := required(req.Name, "name"); err != nil {
		return nil, err
	}
	if _, err := required(req.Type, "type"); err != nil {
		return nil, err
	}
	p := &model.Personnel{IsActive: true}
	if err := s.applyPersonnel(ctx, p, req); err != nil {
		return nil, err
	}
	if err := s.personnelRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return p, nil
}

// UpdatePersonnel applies the non-nil fields of req. departmentId 0 detaches the person.
func (s *DepartmentService) UpdatePersonnel(ctx context.Context, id int64, req types.PersonnelRequest) (*model.Personnel, error) {
	p, err := s.personnelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyPersonnel(ctx, p, req); err != nil {
		return nil, err
	}
	if err := s.personnelRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return p, nil
}

// DeletePersonnel removes a person
func (s *DepartmentService) DeletePersonnel(ctx context.Context, id int64) error {
	if err := s.personnelRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// ListExecutives filters by type when typ is non-empty
func (s *DepartmentService) ListExecutives(ctx context.Context, typ model.ExecutiveType, activeOnly bool) ([]model.Executive, error) {
	cacheKey := "executives:list:" + strings.ToLower(string(typ))
	var items []model.Executive
	if activeOnly && s.cache.get(ctx, cacheKey, &items) {
		return items, nil
	}
	items, err := s.executiveRepo.List(ctx, typ, activeOnly)
	if err != nil {
		return nil, err
	}
	if activeOnly {
		s.cache.set(ctx, cacheKey, items, defaultCacheTTL)
	}
	return items, nil
}

// GetExecutive by id
func (s *DepartmentService) GetExecutive(ctx context.Context, id int64) (*model.Executive, error) {
	return s.executiveRepo.GetByID(ctx, id)
}

func (s *DepartmentService) applyExecutive(ctx context.Context, e *model.Executive, req types.ExecutiveRequest) error {
	setIf(&e.Name, req.Name)
	setIf(&e.Title, req.Title)
	setIf(&e.Biography, req.Biography)
	setIf(&e.ImageURL, req.ImageURL)
	setIf(&e.Email, req.Email)
	setIf(&e.Phone, req.Phone)
	setIf(&e.IsActive, req.IsActive)
	setIf(&e.DisplayOrder, req.Order)
	if req.Type != nil {
		e.Type = model.ExecutiveType(*req.Type)
	}
	if req.Slug != nil || e.Slug == "" {
		slug, err := resolveSlug(ctx, req.Slug, e.Name, e.ID, s.executiveRepo.SlugTaken)
		if err != nil {
			return err
		}
		e.Slug = slug
	}
	return nil
}

// CreateExecutive name and type are required
func (s *DepartmentService) CreateExecutive(ctx context.Context, req types.ExecutiveRequest) (*model.Executive, error) {
	if _, err := required(req.Name, "name"); err != nil {
		return nil, err
	}
	if _, err := required(req.Type, "type"); err != nil {
		return nil, err
	}
	e := &model.Executive{IsActive: true}
	if err := s.applyExecutive(ctx, e, req); err != nil {
		return nil, err
	}
	if err := s.executiveRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return e, nil
}

// UpdateExecutive applies the non-nil fields of req
func (s *DepartmentService) UpdateExecutive(ctx context.Context, id int64, req types.ExecutiveRequest) (*model.Executive, error) {
	e, err := s.executiveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyExecutive(ctx, e, req); err != nil {
		return nil, err
	}
	if err := s.executiveRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return e, nil
}

// DeleteExecutive removes a board member
func (s *DepartmentService) DeleteExecutive(ctx context.Context, id int64) error {
	if err := s.executiveRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}
