package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kentkonut/internal/constants"
	"kentkonut/internal/model"
	"kentkonut/internal/repository"
	"kentkonut/internal/types"
	"kentkonut/pkg/database/databasetest"
	"kentkonut/pkg/logger"
	"kentkonut/pkg/storage"
)

var testPNG = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4, 0x89,
}

type mockFileStore struct {
	mock.Mock
}

func (m *mockFileStore) Save(folder, originalName string, r io.Reader) (*storage.StoredFile, error) {
	args := m.Called(folder, originalName, r)
	f, _ := args.Get(0).(*storage.StoredFile)
	return f, args.Error(1)
}

func (m *mockFileStore) Delete(relPath string) error {
	return m.Called(relPath).Error(0)
}

// failingMediaRepo rejects every insert
type failingMediaRepo struct {
	repository.MediaRepository
}

func (failingMediaRepo) Create(context.Context, *model.Media) error {
	return errors.New("disk full")
}

func TestMediaService_UploadToCategoryFolder(t *testing.T) {
	ctx := context.Background()
	db := databasetest.NewDB(t)
	store, err := storage.NewLocalStorage(t.TempDir(), "/uploads", 1<<20)
	require.NoError(t, err)
	categories := repository.NewMediaCategoryRepository(db)
	svc := NewMediaService(repository.NewMediaRepository(db), categories, store, nil, logger.NewNop())

	list, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	var banners *model.MediaCategory
	for i := range list {
		if list[i].Slug == "bannerlar" {
			banners = &list[i]
		}
	}
	require.NotNil(t, banners)

	m, err := svc.Upload(ctx, UploadInput{
		File: bytes.NewReader(testPNG), OriginalName: "kapak.png", CategoryID: &banners.ID, AltText: "Kapak", UploadedBy: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, "image/png", m.MimeType)
	assert.True(t, strings.HasPrefix(m.URL, "/uploads/bannerlar/"))
	assert.True(t, store.Exists(m.Path))
	assert.Nil(t, m.UploadedBy)

	generic, err := svc.Upload(ctx, UploadInput{File: bytes.NewReader(testPNG), OriginalName: "a.png"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(generic.Path, "genel/"))

	page, err := svc.List(ctx, types.MediaQuery{MimePrefix: "image/"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	_, err = svc.Upload(ctx, UploadInput{File: strings.NewReader("düz metin"), OriginalName: "a.txt"})
	assert.ErrorIs(t, err, constants.ErrBadRequest)
	assert.Equal(t, constants.MsgUnsupportedFile, constants.ClientMessage(err, ""))

	require.NoError(t, svc.Delete(ctx, m.ID))
	assert.False(t, store.Exists(m.Path))
	_, err = svc.Get(ctx, m.ID)
	assert.ErrorIs(t, err, constants.ErrNotFound)
}

func TestMediaService_UploadCleansUpWhenInsertFails(t *testing.T) {
	ctx := context.Background()
	db := databasetest.NewDB(t)
	store := &mockFileStore{}
	stored := &storage.StoredFile{Filename: "x.png", Path: "genel/x.png", URL: "/uploads/genel/x.png", MimeType: "image/png", Size: 10}
	store.On("Save", "genel", "x.png", mock.Anything).Return(stored, nil)
	store.On("Delete", "genel/x.png").Return(nil)

	svc := NewMediaService(failingMediaRepo{}, repository.NewMediaCategoryRepository(db), store, nil, logger.NewNop())

	_, err := svc.Upload(ctx, UploadInput{File: bytes.NewReader(testPNG), OriginalName: "x.png"})
	require.Error(t, err)
	store.AssertExpectations(t)
}

func TestMediaService_BuiltInCategories(t *testing.T) {
	ctx := context.Background()
	db := databasetest.NewDB(t)
	categories := repository.NewMediaCategoryRepository(db)
	svc := NewMediaService(repository.NewMediaRepository(db), categories, &mockFileStore{}, nil, logger.NewNop())

	list, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	builtIn := list[0]
	require.True(t, builtIn.IsBuiltIn)

	err = svc.DeleteCategory(ctx, builtIn.ID)
	assert.ErrorIs(t, err, constants.ErrBadRequest)
	assert.Equal(t, constants.MsgBuiltInCategory, constants.ClientMessage(err, ""))

	_, err = svc.UpdateCategory(ctx, builtIn.ID, types.MediaCategoryRequest{Slug: strPtr("baska")})
	assert.ErrorIs(t, err, constants.ErrBadRequest)

	renamed, err := svc.UpdateCategory(ctx, builtIn.ID, types.MediaCategoryRequest{Name: strPtr("Slaytlar")})
	require.NoError(t, err)
	assert.Equal(t, builtIn.Slug, renamed.Slug)

	custom, err := svc.CreateCategory(ctx, types.MediaCategoryRequest{Name: strPtr("Etkinlik Fotoğrafları")})
	require.NoError(t, err)
	assert.Equal(t, "etkinlik-fotograflari", custom.Slug)
	assert.False(t, custom.IsBuiltIn)
	require.NoError(t, svc.DeleteCategory(ctx, custom.ID))
}
