package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxImageSize is the upload limit for post images.
const MaxImageSize = 5 << 20

// ImageUpload is a locally staged file waiting to be stored. The
// operation that receives it owns the temp file and removes it on
// every path.
type ImageUpload struct {
	Path        string
	ContentType string
}

// Valid reports whether the staged file is an acceptable image.
func (u *ImageUpload) Valid() error {
	if !strings.HasPrefix(u.ContentType, "image/") {
		return ErrNotImage
	}
	info, err := os.Stat(u.Path)
	if err != nil {
		return fmt.Errorf("failed to stat upload: %v", err)
	}
	if info.Size() > MaxImageSize {
		return ErrImageTooLarge
	}
	return nil
}

// MediaUploader stores a local file durably and returns its URL.
type MediaUploader interface {
	Upload(ctx context.Context, localPath, contentType string) (string, error)
}

// LocalUploader stores images on the local disk under a directory
// served statically at /uploads/. Used when no cloud bucket is
// configured.
type LocalUploader struct {
	dir string
}

// NewLocalUploader creates the uploads directory if needed.
func NewLocalUploader(dir string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %v", err)
	}
	return &LocalUploader{dir: dir}, nil
}

// Upload copies the staged file into the uploads directory under a
// random name and returns its public path.
func (l *LocalUploader) Upload(ctx context.Context, localPath, contentType string) (string, error) {
	src, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %v", err)
	}
	defer src.Close()

	name := uuid.New().String() + filepath.Ext(localPath)
	dst, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create stored file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to store upload: %v", err)
	}

	return "/uploads/" + name, nil
}
