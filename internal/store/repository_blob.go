package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

// BlobInfo is the metadata of a stored blob.
type BlobInfo struct {
	Path        string
	Generation  int64
	ContentType string
	UpdatedAt   time.Time
}

type blobRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewBlobRepository(db *DB, logger *logger.Logger) BlobRepository {
	logger.Debug().Msg("creating blob repository")
	return &blobRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *blobRepository) Bump(ctx context.Context, path, contentType string) (int64, error) {
	query, args, err := buildBumpBlobQuery(r.db.builder(), path, contentType, r.now())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var generation int64
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&generation)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "blobRepository.Bump").Str("path", path).Msg("error bumping blob generation")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return generation, nil
}

func (r *blobRepository) Find(ctx context.Context, path string) (BlobInfo, error) {
	query, args, err := buildFindBlobQuery(r.db.builder(), path)
	if err != nil {
		return BlobInfo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var info BlobInfo
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&info.Path, &info.Generation, &info.ContentType, &info.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return BlobInfo{}, ErrBlobNotFound
	}
	if err != nil {
		return BlobInfo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return info, nil
}
