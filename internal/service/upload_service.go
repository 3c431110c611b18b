package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/errors"
	"portfolio/internal/media"
	"portfolio/internal/model"
)

const (
	// MaxUploadFiles caps the number of files per media upload batch.
	MaxUploadFiles = 10
	// MaxFileSize caps a single uploaded file at 50 MB.
	MaxFileSize = 50 << 20
)

var (
	allowedImageTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}
	allowedVideoTypes = map[string]bool{
		"video/mp4":  true,
		"video/webm": true,
		"video/ogg":  true,
	}
)

// UploadService accepts multipart uploads, stores originals in the non-public
// secure directory and derives watermarked previews under the public
// thumbnails directory.
type UploadService interface {
	ProcessFiles(ctx context.Context, files []*multipart.FileHeader) ([]model.MediaFile, error)
	ProcessCV(ctx context.Context, file *multipart.FileHeader) (*model.CVInfo, error)
	Remove(ctx context.Context, filename string) error
}

type uploadService struct {
	secureDir   string
	thumbsDir   string
	thumbnailer *media.Thumbnailer
}

// Ensure uploadService satisfies the cascade-deletion dependency
var _ FileRemover = (*uploadService)(nil)

// NewUploadService creates the storage directories if needed.
func NewUploadService(secureDir, thumbsDir string, thumbnailer *media.Thumbnailer) (UploadService, error) {
	for _, dir := range []string{secureDir, thumbsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
		}
	}
	return &uploadService{
		secureDir:   secureDir,
		thumbsDir:   thumbsDir,
		thumbnailer: thumbnailer,
	}, nil
}

// ProcessFiles validates the whole batch before persisting anything, then
// stores each original and derives its preview.
func (s *uploadService) ProcessFiles(ctx context.Context, files []*multipart.FileHeader) ([]model.MediaFile, error) {
	if len(files) > MaxUploadFiles {
		return nil, errors.ErrTooManyFiles
	}
	for _, fh := range files {
		if err := validateMediaFile(fh); err != nil {
			return nil, err
		}
	}

	processed := make([]model.MediaFile, 0, len(files))
	for _, fh := range files {
		info, err := s.store(fh, "files")
		if err != nil {
			// A failed batch must not leave unreferenced originals behind.
			for _, p := range processed {
				if rmErr := s.Remove(ctx, p.Filename); rmErr != nil {
					log.Printf("cleanup %s: %v", p.Filename, rmErr)
				}
			}
			return nil, err
		}
		s.derivePreview(info)
		processed = append(processed, *info)
	}
	return processed, nil
}

// ProcessCV accepts a single PDF.
func (s *uploadService) ProcessCV(ctx context.Context, file *multipart.FileHeader) (*model.CVInfo, error) {
	if contentType(file) != "application/pdf" {
		return nil, errors.ErrFileTypeNotAllowed
	}
	if file.Size > MaxFileSize {
		return nil, errors.ErrFileTooLarge
	}

	info, err := s.store(file, "cv")
	if err != nil {
		return nil, err
	}
	return &model.CVInfo{
		Filename:     info.Filename,
		OriginalName: info.OriginalName,
		UploadedAt:   &info.UploadedAt,
	}, nil
}

// Remove deletes the original and its preview, tolerating missing files.
func (s *uploadService) Remove(_ context.Context, filename string) error {
	// Stored names never contain separators; reject anything that does.
	if filename == "" || filename != filepath.Base(filename) {
		return errors.ErrFileNotFound
	}
	if err := os.Remove(filepath.Join(s.secureDir, filename)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove original: %w", err)
	}
	if err := os.Remove(filepath.Join(s.thumbsDir, thumbName(filename))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove thumbnail: %w", err)
	}
	return nil
}

// store copies the upload into the secure directory under a generated,
// collision-resistant name.
func (s *uploadService) store(fh *multipart.FileHeader, field string) (*model.MediaFile, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(filepath.Base(fh.Filename)))
	name := fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixMilli(), uuid.NewString(), ext)

	dst, err := os.Create(filepath.Join(s.secureDir, name))
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("write file: %w", err)
	}

	return &model.MediaFile{
		OriginalName: fh.Filename,
		Filename:     name,
		MimeType:     contentType(fh),
		Size:         fh.Size,
		UploadedAt:   time.Now(),
	}, nil
}

// derivePreview renders the watermarked thumbnail. Preview failure is logged
// but does not fail the upload; the original is already stored.
func (s *uploadService) derivePreview(info *model.MediaFile) {
	out := filepath.Join(s.thumbsDir, thumbName(info.Filename))
	var err error
	switch {
	case strings.HasPrefix(info.MimeType, "image/"):
		err = s.thumbnailer.ImageThumbnail(filepath.Join(s.secureDir, info.Filename), out)
	case strings.HasPrefix(info.MimeType, "video/"):
		err = s.thumbnailer.VideoThumbnail(out)
	default:
		return
	}
	if err != nil {
		log.Printf("thumbnail %s: %v", info.Filename, err)
		return
	}
	info.ThumbnailPath = "/thumbnails/" + thumbName(info.Filename)
}

func validateMediaFile(fh *multipart.FileHeader) error {
	ct := contentType(fh)
	if !allowedImageTypes[ct] && !allowedVideoTypes[ct] {
		return errors.ErrFileTypeNotAllowed
	}
	if fh.Size > MaxFileSize {
		return errors.ErrFileTooLarge
	}
	return nil
}

func contentType(fh *multipart.FileHeader) string {
	ct := fh.Header.Get("Content-Type")
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(strings.ToLower(ct))
}

func thumbName(filename string) string {
	return "thumb_" + filename + ".jpg"
}
