package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

type listFunc func(ctx context.Context, scope models.Scope) (models.Snapshot, error)

// snapshotHub fans committed snapshots out to the watchers of each scope.
//
// Listing and delivery for a scope run under that scope's lock, so watchers
// observe snapshots in commit order and never see one older than the
// snapshot they received on subscribe.
type snapshotHub struct {
	list listFunc

	mu     sync.Mutex
	scopes map[models.Scope]*scopeWatchers

	logger *logger.Logger
}

type scopeWatchers struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]chan models.Snapshot
}

func newSnapshotHub(list listFunc, logger *logger.Logger) *snapshotHub {
	return &snapshotHub{
		list:   list,
		scopes: make(map[models.Scope]*scopeWatchers),
		logger: logger,
	}
}

// Subscribe registers a watcher of scope and queues the current membership
// as its first snapshot. The channel holds at most one pending snapshot; an
// undelivered snapshot is replaced by a newer one.
func (h *snapshotHub) Subscribe(ctx context.Context, scope models.Scope) (<-chan models.Snapshot, models.CancelToken, error) {
	h.mu.Lock()
	watchers, ok := h.scopes[scope]
	if !ok {
		watchers = &scopeWatchers{subs: make(map[uint64]chan models.Snapshot)}
		h.scopes[scope] = watchers
	}
	watchers.mu.Lock()
	h.mu.Unlock()

	snapshot, err := h.list(ctx, scope)
	if err != nil {
		watchers.mu.Unlock()
		h.detach(scope, watchers, nil)
		return nil, nil, err
	}

	ch := make(chan models.Snapshot, 1)
	ch <- snapshot

	id := watchers.nextID
	watchers.nextID++
	watchers.subs[id] = ch
	watchers.mu.Unlock()

	return ch, models.NewCancelToken(func() { h.detach(scope, watchers, &id) }), nil
}

// detach removes watcher id (when given) and forgets the scope once it has
// no watchers left.
func (h *snapshotHub) detach(scope models.Scope, watchers *scopeWatchers, id *uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	watchers.mu.Lock()
	defer watchers.mu.Unlock()

	if id != nil {
		delete(watchers.subs, *id)
	}
	if len(watchers.subs) == 0 && h.scopes[scope] == watchers {
		delete(h.scopes, scope)
	}
}

// Publish lists scope and delivers the result to its watchers. Scopes with
// no watchers are skipped without touching the store.
func (h *snapshotHub) Publish(ctx context.Context, scope models.Scope) {
	h.mu.Lock()
	watchers, ok := h.scopes[scope]
	if !ok {
		h.mu.Unlock()
		return
	}
	watchers.mu.Lock()
	h.mu.Unlock()
	defer watchers.mu.Unlock()

	if len(watchers.subs) == 0 {
		return
	}

	snapshot, err := h.list(ctx, scope)
	if err != nil {
		h.logger.Err(err).Str("func", "snapshotHub.Publish").Str("scope", scope.String()).Msg("error listing scope for watchers")
		return
	}

	for _, ch := range watchers.subs {
		offerSnapshot(ch, snapshot)
	}
}

// watcherCount is used by tests.
func (h *snapshotHub) watcherCount(scope models.Scope) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	watchers, ok := h.scopes[scope]
	if !ok {
		return 0
	}
	watchers.mu.Lock()
	defer watchers.mu.Unlock()
	return len(watchers.subs)
}

// offerSnapshot replaces any pending snapshot in ch with snapshot. Senders
// are serialized by the scope lock.
func offerSnapshot(ch chan models.Snapshot, snapshot models.Snapshot) {
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snapshot:
	default:
	}
}
