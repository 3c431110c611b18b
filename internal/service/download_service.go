package service

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"portfolio/internal/auth"
	"portfolio/internal/errors"
)

// Resource classes with distinct signed-URL lifetimes.
const (
	DownloadClassMedia = "media"
	DownloadClassCV    = "cv"
)

// DownloadService issues signed download URLs and resolves redeemed ones to
// files in the secure directory.
type DownloadService interface {
	GenerateURL(filename, class string) string
	Verify(resourcePath, expires, signature string) bool
	Resolve(resourcePath string) (string, error)
}

type downloadService struct {
	signer    *auth.URLSigner
	secureDir string
	mediaTTL  time.Duration
	cvTTL     time.Duration
}

// NewDownloadService creates a new download service.
func NewDownloadService(signer *auth.URLSigner, secureDir string, mediaTTL, cvTTL time.Duration) DownloadService {
	return &downloadService{
		signer:    signer,
		secureDir: secureDir,
		mediaTTL:  mediaTTL,
		cvTTL:     cvTTL,
	}
}

// GenerateURL signs a download path for the file. The resource class only
// selects the TTL; CV-class documents get the longer window.
func (s *downloadService) GenerateURL(filename, class string) string {
	ttl := s.mediaTTL
	if class == DownloadClassCV {
		ttl = s.cvTTL
	}
	return s.signer.Generate(filename, ttl)
}

func (s *downloadService) Verify(resourcePath, expires, signature string) bool {
	return s.signer.Verify(resourcePath, expires, signature)
}

// Resolve maps a verified resource path to an absolute file path, rejecting
// traversal outside the secure directory.
func (s *downloadService) Resolve(resourcePath string) (string, error) {
	clean := filepath.Clean("/" + resourcePath)
	if strings.Contains(clean, "..") {
		return "", errors.ErrFileNotFound
	}
	path := filepath.Join(s.secureDir, clean)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", errors.ErrFileNotFound
	}
	return path, nil
}
