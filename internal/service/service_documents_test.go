package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const docScope = models.Scope("users/u1/notes")

func newTestDocumentService(t *testing.T) (DocumentService, *mock.MockDocumentRepository) {
	t.Helper()
	repo := mock.NewMockDocumentRepository(gomock.NewController(t))
	return NewDocumentService(repo, logger.Nop()), repo
}

// ── Insert ──

func TestDocumentService_InsertAssignsID(t *testing.T) {
	svc, repo := newTestDocumentService(t)
	fields := models.Fields{"title": "a"}

	var stored models.Record
	repo.EXPECT().Insert(gomock.Any(), docScope, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Scope, r models.Record) error {
			stored = r
			return nil
		})

	id, err := svc.Insert(context.Background(), docScope, fields)

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, stored.ID)
	assert.Equal(t, fields, stored.Fields)
}

func TestDocumentService_InsertIDsAreUnique(t *testing.T) {
	svc, repo := newTestDocumentService(t)
	repo.EXPECT().Insert(gomock.Any(), docScope, gomock.Any()).Return(nil).Times(2)

	first, err := svc.Insert(context.Background(), docScope, models.Fields{"title": "a"})
	require.NoError(t, err)
	second, err := svc.Insert(context.Background(), docScope, models.Fields{"title": "a"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDocumentService_InsertRejectsNestedValues(t *testing.T) {
	svc, _ := newTestDocumentService(t)

	_, err := svc.Insert(context.Background(), docScope, models.Fields{"title": map[string]any{"x": 1}})

	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestDocumentService_InsertWithIDRequiresID(t *testing.T) {
	svc, _ := newTestDocumentService(t)

	err := svc.InsertWithID(context.Background(), docScope, "", models.Fields{})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestDocumentService_InsertStorageError(t *testing.T) {
	svc, repo := newTestDocumentService(t)
	repo.EXPECT().Insert(gomock.Any(), docScope, gomock.Any()).Return(store.ErrRecordAlreadyExists)

	err := svc.InsertWithID(context.Background(), docScope, "u1", models.Fields{"name": ""})

	assert.ErrorIs(t, err, store.ErrRecordAlreadyExists)
}

// ── Patch / Delete / Get ──

func TestDocumentService_PatchPassesThrough(t *testing.T) {
	svc, repo := newTestDocumentService(t)
	repo.EXPECT().Patch(gomock.Any(), docScope, "r1", models.Fields{"title": "b"}).Return(nil)

	require.NoError(t, svc.Patch(context.Background(), docScope, "r1", models.Fields{"title": "b"}))
}

func TestDocumentService_PatchRejectsEmptyPatch(t *testing.T) {
	svc, _ := newTestDocumentService(t)

	err := svc.Patch(context.Background(), docScope, "r1", models.Fields{})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestDocumentService_PatchNotFound(t *testing.T) {
	svc, repo := newTestDocumentService(t)
	repo.EXPECT().Patch(gomock.Any(), docScope, "gone", gomock.Any()).Return(store.ErrRecordNotFound)

	err := svc.Patch(context.Background(), docScope, "gone", models.Fields{"title": "b"})

	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestDocumentService_DeleteNotFound(t *testing.T) {
	svc, repo := newTestDocumentService(t)
	repo.EXPECT().Delete(gomock.Any(), docScope, "gone").Return(store.ErrRecordNotFound)

	err := svc.Delete(context.Background(), docScope, "gone")

	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestDocumentService_GetAndList(t *testing.T) {
	svc, repo := newTestDocumentService(t)
	record := models.Record{ID: "r1", Fields: models.Fields{"title": "a"}}
	repo.EXPECT().Get(gomock.Any(), docScope, "r1").Return(record, nil)
	repo.EXPECT().List(gomock.Any(), docScope).Return(models.Snapshot{record}, nil)

	got, err := svc.Get(context.Background(), docScope, "r1")
	require.NoError(t, err)
	assert.Equal(t, record, got)

	list, err := svc.List(context.Background(), docScope)
	require.NoError(t, err)
	assert.Equal(t, models.Snapshot{record}, list)
}

func TestDocumentService_ListError(t *testing.T) {
	svc, repo := newTestDocumentService(t)
	repo.EXPECT().List(gomock.Any(), docScope).Return(nil, errors.New("db down"))

	_, err := svc.List(context.Background(), docScope)

	assert.Error(t, err)
}

// ── Watch ──

func TestDocumentService_WatchSeesOwnWrites(t *testing.T) {
	svc, repo := newTestDocumentService(t)
	record := models.Record{ID: "r1", Fields: models.Fields{"title": "a"}}
	gomock.InOrder(
		repo.EXPECT().List(gomock.Any(), docScope).Return(models.Snapshot{}, nil),
		repo.EXPECT().Insert(gomock.Any(), docScope, gomock.Any()).Return(nil),
		repo.EXPECT().List(gomock.Any(), docScope).Return(models.Snapshot{record}, nil),
	)

	snapshots, token, err := svc.Watch(context.Background(), docScope)
	require.NoError(t, err)
	defer token.Cancel()
	assert.Empty(t, receive(t, snapshots))

	_, err = svc.Insert(context.Background(), docScope, models.Fields{"title": "a"})
	require.NoError(t, err)

	assert.Equal(t, models.Snapshot{record}, receive(t, snapshots))
}

func TestDocumentService_WatchPublishesAfterCancelledRequest(t *testing.T) {
	svc, repo := newTestDocumentService(t)
	repo.EXPECT().List(gomock.Any(), docScope).Return(models.Snapshot{}, nil)
	repo.EXPECT().Delete(gomock.Any(), docScope, "r1").Return(nil)
	repo.EXPECT().List(gomock.Any(), docScope).
		DoAndReturn(func(ctx context.Context, _ models.Scope) (models.Snapshot, error) {
			assert.NoError(t, ctx.Err())
			return models.Snapshot{}, nil
		})

	snapshots, token, err := svc.Watch(context.Background(), docScope)
	require.NoError(t, err)
	defer token.Cancel()
	receive(t, snapshots)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, svc.Delete(ctx, docScope, "r1"))

	select {
	case <-snapshots:
	case <-time.After(time.Second):
		t.Fatal("no snapshot after delete")
	}
}

func TestDocumentService_WatchListError(t *testing.T) {
	svc, repo := newTestDocumentService(t)
	repo.EXPECT().List(gomock.Any(), docScope).Return(nil, errors.New("db down"))

	_, _, err := svc.Watch(context.Background(), docScope)

	assert.Error(t, err)
}
