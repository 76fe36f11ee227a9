package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
)

type Storages struct {
	UserRepository     UserRepository
	DocumentRepository DocumentRepository
	BlobStorage        BlobStorage

	db *DB
}

// NewStorages connects to the database, applies migrations and wires every
// repository.
func NewStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	blobs, err := NewFileBlobStorage(cfg.Files.BlobDir, NewBlobRepository(db, logger), logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		DocumentRepository: NewDocumentRepository(db, logger),
		BlobStorage:        blobs,
		db:                 db,
	}, nil
}

func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
