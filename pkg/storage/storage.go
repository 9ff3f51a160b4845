// Package storage keeps uploaded media files on the local disk.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	// ErrFileTooLarge upload exceeds the configured limit
	ErrFileTooLarge = errors.New("file too large")
	// ErrUnsupportedType content is not an allowed media type
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrEmptyFile upload has no content
	ErrEmptyFile = errors.New("empty file")
	// ErrInvalidPath path escapes the upload directory
	ErrInvalidPath = errors.New("invalid storage path")
)

// DefaultAllowedTypes media types accepted by the admin upload form
var DefaultAllowedTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/svg+xml",
	"application/pdf",
	"video/mp4",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// StoredFile describes a file written to disk
type StoredFile struct {
	Filename     string
	OriginalName string
	Path         string // relative to the upload dir, forward slashes
	URL          string
	MimeType     string
	Size         int64
}

// LocalStorage writes files under dir and exposes them below urlPrefix
type LocalStorage struct {
	dir          string
	urlPrefix    string
	maxSize      int64
	allowedTypes []string
}

// NewLocalStorage creates the upload directory when missing
func NewLocalStorage(dir, urlPrefix string, maxSize int64) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStorage{
		dir:          dir,
		urlPrefix:    "/" + strings.Trim(urlPrefix, "/"),
		maxSize:      maxSize,
		allowedTypes: DefaultAllowedTypes,
	}, nil
}

// Dir upload root on disk
func (s *LocalStorage) Dir() string { return s.dir }

// URLPrefix public URL root
func (s *LocalStorage) URLPrefix() string { return s.urlPrefix }

// MaxSize upload limit in bytes
func (s *LocalStorage) MaxSize() int64 { return s.maxSize }

// Save sniffs the content type, then writes r to <dir>/<folder>/<uuid><ext>
func (s *LocalStorage) Save(folder, originalName string, r io.Reader) (*StoredFile, error) {
	folder = sanitizeFolder(folder)

	data, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if int64(len(data)) > s.maxSize {
		return nil, ErrFileTooLarge
	}

	mt := mimetype.Detect(data)
	if !s.allowed(mt) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
	}

	filename := uuid.NewString() + mt.Extension()
	targetDir := filepath.Join(s.dir, folder)
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	if err := writeFile(filepath.Join(targetDir, filename), data); err != nil {
		return nil, err
	}

	rel := path.Join(folder, filename)
	return &StoredFile{
		Filename:     filename,
		OriginalName: SanitizeFilename(originalName),
		Path:         rel,
		URL:          s.urlPrefix + "/" + rel,
		MimeType:     baseMime(mt.String()),
		Size:         int64(len(data)),
	}, nil
}

// Delete removes a stored file; a missing file is not an error
func (s *LocalStorage) Delete(relPath string) error {
	full, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Exists reports whether relPath is on disk
func (s *LocalStorage) Exists(relPath string) bool {
	full, err := s.resolve(relPath)
	if err != nil {
		return false
	}
	_, err = os.Stat(full)
	return err == nil
}

func (s *LocalStorage) resolve(relPath string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(relPath))
	if clean == "." || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", ErrInvalidPath
	}
	return filepath.Join(s.dir, clean), nil
}

func (s *LocalStorage) allowed(mt *mimetype.MIME) bool {
	for _, t := range s.allowedTypes {
		if mt.Is(t) {
			return true
		}
	}
	return false
}

func writeFile(name string, data []byte) error {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(f, bytes.NewReader(data)); err != nil {
		f.Close()
		os.Remove(name)
		return fmt.Errorf("failed to write file: %w", err)
	}
	return f.Close()
}

// SanitizeFilename strips directories and separators from a client-supplied name
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == '\x00' {
			return -1
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." {
		return "unnamed"
	}
	return name
}

func sanitizeFolder(folder string) string {
	folder = SanitizeFilename(folder)
	if folder == "unnamed" {
		return "genel"
	}
	return folder
}

// baseMime drops parameters such as "; charset=utf-8"
func baseMime(m string) string {
	if i := strings.IndexByte(m, ';'); i >= 0 {
		return strings.TrimSpace(m[:i])
	}
	return m
}
