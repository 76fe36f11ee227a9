package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// DocumentRepository persists records grouped by scope. Fields are stored as
// one JSON object per record.
type DocumentRepository interface {
	Insert(ctx context.Context, scope models.Scope, record models.Record) error

	// Patch merges patch into the stored fields of id inside one
	// transaction. Keys absent from patch keep their stored value.
	Patch(ctx context.Context, scope models.Scope, id string, patch models.Fields) error

	Delete(ctx context.Context, scope models.Scope, id string) error
	Get(ctx context.Context, scope models.Scope, id string) (models.Record, error)

	// List returns every record of scope in creation order.
	List(ctx context.Context, scope models.Scope) (models.Snapshot, error)
}

// BlobRepository tracks the generation of every stored blob path.
type BlobRepository interface {
	// Bump records a write to path and returns its new generation, starting
	// at 1.
	Bump(ctx context.Context, path, contentType string) (int64, error)
	Find(ctx context.Context, path string) (BlobInfo, error)
}

// BlobStorage stores blob bytes addressed by slash-separated paths. Writing
// an existing path overwrites it.
type BlobStorage interface {
	Put(ctx context.Context, path string, data []byte, contentType string) (models.BlobRef, error)
	Open(ctx context.Context, path string) (io.ReadCloser, BlobInfo, error)
}

// ErrorClassificator decides how a failed database operation is handled.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
