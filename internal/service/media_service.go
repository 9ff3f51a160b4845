package service

import (
	"context"
	"errors"
	"io"

	"github.com/redis/go-redis/v9"

	"kentkonut/internal/constants"
	"kentkonut/internal/model"
	"kentkonut/internal/repository"
	"kentkonut/internal/types"
	"kentkonut/pkg/logger"
	"kentkonut/pkg/storage"
)

// FileStore where uploaded bytes live, satisfied by *storage.LocalStorage
type FileStore interface {
	Save(folder, originalName string, r io.Reader) (*storage.StoredFile, error)
	Delete(relPath string) error
}

// UploadInput multipart upload fields
type UploadInput struct {
	File         io.Reader
	OriginalName string
	CategoryID   *int64
	AltText      string
	Caption      string
	UploadedBy   int64
}

// MediaService media library
type MediaService struct {
	mediaRepo    repository.MediaRepository
	categoryRepo repository.MediaCategoryRepository
	store        FileStore
	cache        responseCache
	logger       *logger.Logger
}

// NewMediaService creates the media service
func NewMediaService(mediaRepo repository.MediaRepository, categoryRepo repository.MediaCategoryRepository, store FileStore, redisClient *redis.Client, logger *logger.Logger) *MediaService {
	return &MediaService{
		mediaRepo:    mediaRepo,
		categoryRepo: categoryRepo,
		store:        store,
		cache:        newResponseCache(redisClient, logger),
		logger:       logger,
	}
}

// Upload stores the file under its category folder and records it.
// The file is removed again when the row cannot be written.
func (s *MediaService) Upload(ctx context.Context, in UploadInput) (*model.Media, error) {
	folder := "genel"
	categoryID := nullableID(in.CategoryID)
	if categoryID != nil {
		c, err := s.categoryRepo.GetByID(ctx, *categoryID)
		if err != nil {
			return nil, err
		}
		folder = c.Slug
	}

	stored, err := s.store.Save(folder, in.OriginalName, in.File)
	if err != nil {
		return nil, uploadError(err)
	}

	m := &model.Media{
		CategoryID:   categoryID,
		Filename:     stored.Filename,
		OriginalName: stored.OriginalName,
		MimeType:     stored.MimeType,
		Size:         stored.Size,
		Path:         stored.Path,
		URL:          stored.URL,
		AltText:      in.AltText,
		Caption:      in.Caption,
		UploadedBy:   nullableID(&in.UploadedBy),
	}
	if err := s.mediaRepo.Create(ctx, m); err != nil {
		if rmErr := s.store.Delete(stored.Path); rmErr != nil {
			s.logger.Error("failed to remove orphaned upload", "path", stored.Path, "error", rmErr)
		}
		return nil, err
	}

	s.logger.Info("media uploaded", "id", m.ID, "path", m.Path, "mime", m.MimeType, "size", m.Size)
	return m, nil
}

func uploadError(err error) error {
	switch {
	case errors.Is(err, storage.ErrFileTooLarge):
		return constants.NewError(constants.ErrBadRequest, constants.MsgFileTooLarge)
	case errors.Is(err, storage.ErrUnsupportedType):
		return constants.NewError(constants.ErrBadRequest, constants.MsgUnsupportedFile)
	case errors.Is(err, storage.ErrEmptyFile):
		return constants.NewError(constants.ErrBadRequest, constants.MsgFileRequired)
	default:
		return err
	}
}

// List paginated, newest first
func (s *MediaService) List(ctx context.Context, q types.MediaQuery) (*model.Paginated[model.Media], error) {
	q.Pagination = normalize(q.Pagination)
	items, total, err := s.mediaRepo.List(ctx, model.MediaFilter{
		CategoryID: q.CategoryID,
		MimePrefix: q.MimePrefix,
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
func (s *MediaService) Get(ctx context.Context, id int64) (*model.Media, error) {
	return s.mediaRepo.GetByID(ctx, id)
}

// Update changes metadata only; the file stays where it is.
// Gallery items show the media alt text, so cached galleries are dropped.
func (s *MediaService) Update(ctx context.Context, id int64, req types.MediaUpdateRequest) (*model.Media, error) {
	m, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	setIf(&m.AltText, req.AltText)
	setIf(&m.Caption, req.Caption)
	if req.CategoryID != nil {
		m.CategoryID = nullableID(req.CategoryID)
		if m.CategoryID != nil {
			if _, err := s.categoryRepo.GetByID(ctx, *m.CategoryID); err != nil {
				return nil, err
			}
		}
	}
	if err := s.mediaRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	s.cache.invalidate(ctx, "galleries:*")
	return m, nil
}

// Delete removes the row, then the file. Gallery items of the media go with the row.
func (s *MediaService) Delete(ctx context.Context, id int64) error {
	m, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.mediaRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.invalidate(ctx, "galleries:*")
	if err := s.store.Delete(m.Path); err != nil {
		s.logger.Warn("failed to delete media file", "path", m.Path, "error", err)
	}
	return nil
}

// ListCategories built-ins first
func (s *MediaService) ListCategories(ctx context.Context) ([]model.MediaCategory, error) {
	return s.categoryRepo.List(ctx)
}

// GetCategory by id
func (s *MediaService) GetCategory(ctx context.Context, id int64) (*model.MediaCategory, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

// CreateCategory name is required
func (s *MediaService) CreateCategory(ctx context.Context, req types.MediaCategoryRequest) (*model.MediaCategory, error) {
	name, err := required(req.Name, "name")
	if err != nil {
		return nil, err
	}
	c := &model.MediaCategory{Name: name}
	setIf(&c.DisplayOrder, req.Order)
	if c.Slug, err = resolveSlug(ctx, req.Slug, c.Name, 0, s.categoryRepo.SlugTaken); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCategory renames a category. Built-in slugs are fixed because stored paths depend on them.
func (s *MediaService) UpdateCategory(ctx context.Context, id int64, req types.MediaCategoryRequest) (*model.MediaCategory, error) {
	c, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	setIf(&c.Name, req.Name)
	setIf(&c.DisplayOrder, req.Order)
	if req.Slug != nil && *req.Slug != c.Slug {
		if c.IsBuiltIn {
			return nil, constants.NewError(constants.ErrBadRequest, "Yerleşik kategorinin kısa adı değiştirilemez")
		}
		if c.Slug, err = resolveSlug(ctx, req.Slug, c.Name, c.ID, s.categoryRepo.SlugTaken); err != nil {
			return nil, err
		}
	}
	if err := s.categoryRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory leaves its media uncategorized. Built-in categories cannot be deleted.
func (s *MediaService) DeleteCategory(ctx context.Context, id int64) error {
	c, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.IsBuiltIn {
		return constants.NewError(constants.ErrBadRequest, constants.MsgBuiltInCategory)
	}
	return s.categoryRepo.Delete(ctx, id)
}
