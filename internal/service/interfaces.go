package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// DocumentService owns the server side of the document store. Every
// committed write is followed by a fresh snapshot pushed to the watchers of
// its scope.
type DocumentService interface {
	Insert(ctx context.Context, scope models.Scope, fields models.Fields) (string, error)

	// InsertWithID creates a record under a caller-chosen id. Used for
	// singleton records such as the profile.
	InsertWithID(ctx context.Context, scope models.Scope, id string, fields models.Fields) error

	Patch(ctx context.Context, scope models.Scope, id string, patch models.Fields) error
	Delete(ctx context.Context, scope models.Scope, id string) error
	Get(ctx context.Context, scope models.Scope, id string) (models.Record, error)
	List(ctx context.Context, scope models.Scope) (models.Snapshot, error)

	// Watch subscribes to scope. The first value on the channel is the
	// current membership; later values follow every commit. The channel is
	// never closed, cancel the token to stop receiving.
	Watch(ctx context.Context, scope models.Scope) (<-chan models.Snapshot, models.CancelToken, error)
}

type BlobService interface {
	Put(ctx context.Context, path string, data []byte, contentType string) (models.BlobRef, error)

	// URLFor returns a durable, signed retrieval URL for ref.
	URLFor(ctx context.Context, ref models.BlobRef) (string, error)

	// Open verifies token against path and returns the blob contents.
	Open(ctx context.Context, path, token string) (io.ReadCloser, store.BlobInfo, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
