package repositories

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
)

// ErrCatalogNotFound is returned when a catalog has never been written.
var ErrCatalogNotFound = errors.New("catalog not found")

// FileCatalogRepository stores catalogs as files inside a directory
type FileCatalogRepository struct {
	dir string
}

func NewFileCatalogRepository(dir string) *FileCatalogRepository {
	return &FileCatalogRepository{dir: dir}
}

// Read returns the raw contents of the named catalog
func (r *FileCatalogRepository) Read(ctx context.Context, name string) ([]byte, error) {
	path := filepath.Join(r.dir, name)
	data, err := os.ReadFile(path)

	logger.Log.Infow("catalog read",
		"path", path,
		"size", len(data),
		"error", err,
	)

	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrCatalogNotFound
	}
	return data, err
}

// Write replaces the named catalog. The directory is created when missing and
// the file is swapped in with a rename so readers never see a partial write.
func (r *FileCatalogRepository) Write(ctx context.Context, name string, data []byte) error {
	path := filepath.Join(r.dir, name)
	err := r.write(path, data)

	logger.Log.Infow("catalog write",
		"path", path,
		"size", len(data),
		"error", err,
	)

	return err
}

func (r *FileCatalogRepository) write(path string, data []byte) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create catalog dir: %w", err)
	}

	tmp, err := os.CreateTemp(r.dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp catalog: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp catalog: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod temp catalog: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace catalog: %w", err)
	}
	return nil
}
