package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// fileBlobStorage keeps blob bytes as files under a root directory and their
// generations in a [BlobRepository]. Writes go to a temporary file that is
// renamed over the target, so readers never see a partial blob.
type fileBlobStorage struct {
	root       string
	repository BlobRepository
	logger     *logger.Logger
}

// NewFileBlobStorage constructs a [BlobStorage] rooted at dir, creating the
// directory if needed.
func NewFileBlobStorage(dir string, repository BlobRepository, logger *logger.Logger) (BlobStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating blob directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating file blob storage")
	return &fileBlobStorage{
		root:       dir,
		repository: repository,
		logger:     logger,
	}, nil
}

func (s *fileBlobStorage) Put(ctx context.Context, path string, data []byte, contentType string) (models.BlobRef, error) {
	log := logger.FromContext(ctx)

	target, err := s.resolve(path)
	if err != nil {
		return models.BlobRef{}, err
	}

	if err = os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return models.BlobRef{}, fmt.Errorf("error creating blob directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return models.BlobRef{}, fmt.Errorf("error creating temp blob: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return models.BlobRef{}, fmt.Errorf("error writing blob: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return models.BlobRef{}, fmt.Errorf("error writing blob: %w", err)
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		log.Err(err).Str("func", "fileBlobStorage.Put").Str("path", path).Msg("error replacing blob")
		return models.BlobRef{}, fmt.Errorf("error replacing blob: %w", err)
	}

	generation, err := s.repository.Bump(ctx, path, contentType)
	if err != nil {
		return models.BlobRef{}, err
	}

	log.Debug().Str("path", path).Int64("generation", generation).Int("size", len(data)).Msg("blob stored")
	return models.BlobRef{Path: path, Generation: strconv.FormatInt(generation, 10)}, nil
}

func (s *fileBlobStorage) Open(ctx context.Context, path string) (io.ReadCloser, BlobInfo, error) {
	target, err := s.resolve(path)
	if err != nil {
		return nil, BlobInfo{}, err
	}

	info, err := s.repository.Find(ctx, path)
	if err != nil {
		return nil, BlobInfo{}, err
	}

	f, err := os.Open(target)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, BlobInfo{}, ErrBlobNotFound
	}
	if err != nil {
		return nil, BlobInfo{}, fmt.Errorf("error opening blob: %w", err)
	}

	return f, info, nil
}

// resolve maps a blob path onto a file below root.
func (s *fileBlobStorage) resolve(path string) (string, error) {
	if err := ValidateBlobPath(path); err != nil {
		return "", err
	}
	return filepath.Join(s.root, filepath.FromSlash(path)), nil
}

// ValidateBlobPath rejects paths that could escape the blob root.
func ValidateBlobPath(path string) error {
	if path == "" || strings.HasPrefix(path, "/") || strings.Contains(path, `\`) {
		return fmt.Errorf("%w: %q", ErrInvalidBlobPath, path)
	}
	for _, segment := range strings.Split(path, "/") {
		if segment == "" || segment == "." || segment == ".." || strings.HasPrefix(segment, ".upload-") {
			return fmt.Errorf("%w: %q", ErrInvalidBlobPath, path)
		}
	}
	return nil
}
