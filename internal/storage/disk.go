package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spec-kit/fooddelivery-service/internal/config"
)

// DiskStorage writes objects under a local directory and serves them from a
// configured public base URL.
type DiskStorage struct {
	root    string
	baseURL string
}

// NewDiskStorage builds a disk-backed object store.
func NewDiskStorage(cfg config.StorageConfig) *DiskStorage {
	return &DiskStorage{
		root:    cfg.UploadDir,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

// Put writes the object and returns its public URL. Keys may contain
// slash-separated prefixes; intermediate directories are created.
func (s *DiskStorage) Put(_ context.Context, key, _ string, data []byte) (string, error) {
	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write object %s: %w", key, err)
	}
	return s.baseURL + "/" + key, nil
}
