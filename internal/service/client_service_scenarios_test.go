package service

import (
	"context"
	"os"
	"slices"
	"strconv"
	"sync"
	"testing"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/gateway"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memoryStore is an in-process adapter.DocumentStore with merge-patch
// semantics that re-broadcasts the scope after every write.
type memoryStore struct {
	mu       sync.Mutex
	docs     map[models.Scope][]models.Record
	watchers map[models.Scope][]func(models.Snapshot)
	nextID   int
	calls    []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		docs:     make(map[models.Scope][]models.Record),
		watchers: make(map[models.Scope][]func(models.Snapshot)),
	}
}

func (m *memoryStore) record(call string) {
	m.calls = append(m.calls, call)
}

func (m *memoryStore) broadcast(scope models.Scope) {
	snapshot := models.Snapshot(m.docs[scope]).Clone()
	for _, fn := range m.watchers[scope] {
		fn(snapshot)
	}
}

func (m *memoryStore) Insert(_ context.Context, scope models.Scope, fields models.Fields) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("insert")
	m.nextID++
	id := strconv.Itoa(m.nextID)
	m.docs[scope] = append(m.docs[scope], models.Record{ID: id, Fields: fields.Clone()})
	m.broadcast(scope)
	return id, nil
}

func (m *memoryStore) Patch(_ context.Context, scope models.Scope, id string, patch models.Fields) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("patch")
	for _, r := range m.docs[scope] {
		if r.ID == id {
			for k, v := range patch {
				r.Fields[k] = v
			}
			m.broadcast(scope)
			return nil
		}
	}
	return adapter.ErrNotFound
}

func (m *memoryStore) Remove(_ context.Context, scope models.Scope, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("remove")
	docs := m.docs[scope]
	for i, r := range docs {
		if r.ID == id {
			m.docs[scope] = append(docs[:i], docs[i+1:]...)
			m.broadcast(scope)
			return nil
		}
	}
	return adapter.ErrNotFound
}

func (m *memoryStore) Get(_ context.Context, scope models.Scope, id string) (models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("get")
	if r, ok := models.Snapshot(m.docs[scope]).Find(id); ok {
		return r.Clone(), nil
	}
	return models.Record{}, adapter.ErrNotFound
}

func (m *memoryStore) Watch(_ context.Context, scope models.Scope, onSnapshot func(models.Snapshot), _ func(error)) (models.CancelToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("watch")
	m.watchers[scope] = append(m.watchers[scope], onSnapshot)
	onSnapshot(models.Snapshot(m.docs[scope]).Clone())
	return models.NewCancelToken(nil), nil
}

func (m *memoryStore) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// switchableIdentity is an identity.Provider whose identity tests flip by hand.
type switchableIdentity struct {
	mu      sync.Mutex
	current models.Identity
	fns     []func(models.Identity)
}

func (s *switchableIdentity) Current() models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *switchableIdentity) OnChange(fn func(models.Identity)) models.CancelToken {
	s.mu.Lock()
	s.fns = append(s.fns, fn)
	current := s.current
	s.mu.Unlock()
	fn(current)
	return models.NewCancelToken(nil)
}

func (s *switchableIdentity) Set(id models.Identity) {
	s.mu.Lock()
	s.current = id
	fns := slices.Clone(s.fns)
	s.mu.Unlock()
	for _, fn := range fns {
		fn(id)
	}
}

type scenario struct {
	store    *memoryStore
	blobs    *mock.MockBlobStore
	identity *switchableIdentity
	notes    ClientSyncService
	records  gateway.CollectionGateway
}

func newScenario(t *testing.T) *scenario {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := newMemoryStore()
	blobs := mock.NewMockBlobStore(ctrl)
	ident := &switchableIdentity{current: models.NewIdentity("u1")}

	records := gateway.NewCollectionGateway(store, ident, models.Notes, logger.Nop())
	assets := gateway.NewAssetGateway(blobs, ident, models.Notes.AssetPrefix, logger.Nop())

	return &scenario{
		store:    store,
		blobs:    blobs,
		identity: ident,
		notes:    NewClientSyncService(records, assets, logger.Nop()),
		records:  records,
	}
}

func TestScenario_CreateWithoutAsset(t *testing.T) {
	sc := newScenario(t)
	_, err := sc.notes.Subscribe(context.Background(), nil, nil)
	require.NoError(t, err)

	sc.notes.Stage("title", "x")
	sc.notes.Stage("content", "y")
	id, err := sc.notes.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"watch", "insert"}, sc.store.Calls())
	view := sc.notes.View()
	require.Len(t, view, 1, "own write is echoed back through the subscription")
	assert.Equal(t, models.Record{ID: id, Fields: models.Fields{"title": "x", "content": "y", "imageUrl": ""}}, view[0])
}

func TestScenario_PatchOmissionPreservesAsset(t *testing.T) {
	sc := newScenario(t)
	ctx := context.Background()
	_, err := sc.notes.Subscribe(ctx, nil, nil)
	require.NoError(t, err)

	path := t.TempDir() + "/photo.png"
	require.NoError(t, writeFile(path, []byte{0x89, 'P', 'N', 'G'}))
	ref := models.BlobRef{Path: "notes/u1/1", Generation: "1"}
	sc.blobs.EXPECT().Put(gomock.Any(), "notes/u1/1", gomock.Any(), gomock.Any()).Return(ref, nil)
	sc.blobs.EXPECT().URLFor(gomock.Any(), ref).Return("http://blobs/notes/u1/1?v=1", nil)

	sc.notes.Stage("title", "with photo")
	sc.notes.PickAsset(path)
	id, err := sc.notes.Submit(ctx)
	require.NoError(t, err)

	before, err := sc.records.Get(ctx, id)
	require.NoError(t, err)

	require.NoError(t, sc.notes.Select(id))
	sc.notes.Stage("content", "unrelated change")
	_, err = sc.notes.Submit(ctx)
	require.NoError(t, err)

	after, err := sc.records.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, before.Fields["imageUrl"], after.Fields["imageUrl"])
	assert.Equal(t, "unrelated change", after.Fields["content"])
}

func TestScenario_SignOutMidSession(t *testing.T) {
	sc := newScenario(t)
	ctx := context.Background()
	_, err := sc.notes.Subscribe(ctx, nil, nil)
	require.NoError(t, err)

	sc.notes.Stage("title", "first")
	id, err := sc.notes.Submit(ctx)
	require.NoError(t, err)
	callsBefore := len(sc.store.Calls())

	sc.identity.Set(models.NoIdentity)

	sc.notes.Stage("title", "second")
	sc.notes.PickAsset("/tmp/photo.png")
	_, err = sc.notes.Submit(ctx)
	assert.ErrorIs(t, err, gateway.ErrUnauthenticated)

	require.NoError(t, sc.notes.Select(id))
	sc.notes.Stage("title", "renamed")
	_, err = sc.notes.Submit(ctx)
	assert.ErrorIs(t, err, gateway.ErrUnauthenticated)

	sc.notes.PickAsset("/tmp/photo.png")
	_, err = sc.notes.Submit(ctx)
	assert.ErrorIs(t, err, gateway.ErrUnauthenticated)

	assert.ErrorIs(t, sc.notes.Delete(ctx, id), gateway.ErrUnauthenticated)
	assert.Len(t, sc.store.Calls(), callsBefore, "no remote call after sign-out")
}

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o600)
}
