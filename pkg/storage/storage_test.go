package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallest valid PNG header plus IHDR chunk
var pngBytes = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4, 0x89,
}

func newStorage(t *testing.T, maxSize int64) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(t.TempDir(), "/uploads/", maxSize)
	require.NoError(t, err)
	return s
}

func TestLocalStorage_Save(t *testing.T) {
	s := newStorage(t, 1<<20)

	f, err := s.Save("bannerlar", "../../etc/kapak.png", bytes.NewReader(pngBytes))
	require.NoError(t, err)

	assert.Equal(t, "image/png", f.MimeType)
	assert.Equal(t, "kapak.png", f.OriginalName)
	assert.True(t, strings.HasSuffix(f.Filename, ".png"))
	assert.Equal(t, "bannerlar/"+f.Filename, f.Path)
	assert.Equal(t, "/uploads/bannerlar/"+f.Filename, f.URL)
	assert.Equal(t, int64(len(pngBytes)), f.Size)

	data, err := os.ReadFile(filepath.Join(s.Dir(), "bannerlar", f.Filename))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)

	require.NoError(t, s.Delete(f.Path))
	assert.False(t, s.Exists(f.Path))
	assert.NoError(t, s.Delete(f.Path), "deleting twice is fine")
}

func TestLocalStorage_SaveRejects(t *testing.T) {
	s := newStorage(t, 16)

	_, err := s.Save("x", "a.png", bytes.NewReader(pngBytes))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = s.Save("x", "a.txt", strings.NewReader("hello"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = s.Save("x", "a.png", bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestLocalStorage_DeleteRejectsEscapes(t *testing.T) {
	s := newStorage(t, 1<<20)

	assert.ErrorIs(t, s.Delete("../secret"), ErrInvalidPath)
	assert.ErrorIs(t, s.Delete("/etc/passwd"), ErrInvalidPath)
	assert.ErrorIs(t, s.Delete(""), ErrInvalidPath)
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"rapor.pdf":             "rapor.pdf",
		"C:\\Users\\ali\\a.pdf": "a.pdf",
		"../../x.png":           "x.png",
		"":                      "unnamed",
		"..":                    "unnamed",
	}
	for in, want := range tests {
		assert.Equal(t, want, SanitizeFilename(in), in)
	}
}
