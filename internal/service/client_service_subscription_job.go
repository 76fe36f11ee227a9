package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-note-sync/internal/identity"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

type clientSubscriptionJob struct {
	identity identity.Provider
	services []ClientSyncService
	onView   ViewHandler
	onError  StreamErrorHandler
	logger   *logger.Logger

	mu       sync.Mutex
	cancel   context.CancelFunc
	listener models.CancelToken
	wg       sync.WaitGroup
}

// NewClientSubscriptionJob creates a job binding services to the identity
// reported by provider. The job is idle until Start is called.
func NewClientSubscriptionJob(provider identity.Provider, onView ViewHandler, onError StreamErrorHandler, logger *logger.Logger, services ...ClientSyncService) ClientSubscriptionJob {
	return &clientSubscriptionJob{
		identity: provider,
		services: services,
		onView:   onView,
		onError:  onError,
		logger:   logger,
	}
}

// Start implements ClientSubscriptionJob. Identity changes are handed to a
// single goroutine through a one-slot channel; a newer identity replaces one
// that has not been processed yet.
func (j *clientSubscriptionJob) Start(ctx context.Context) {
	j.Stop()

	changes := make(chan models.Identity, 1)

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go j.loop(jobCtx, changes)

	listener := j.identity.OnChange(func(id models.Identity) {
		offerLatest(changes, id)
	})

	j.mu.Lock()
	j.listener = listener
	j.mu.Unlock()
}

func offerLatest(ch chan models.Identity, id models.Identity) {
	for {
		select {
		case ch <- id:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

func (j *clientSubscriptionJob) loop(ctx context.Context, changes <-chan models.Identity) {
	defer j.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case id := <-changes:
			j.apply(ctx, id)
		}
	}
}

// apply tears down every subscription and, for a signed-in identity, opens
// new ones under its scope.
func (j *clientSubscriptionJob) apply(ctx context.Context, id models.Identity) {
	for _, svc := range j.services {
		svc.Reset()
	}

	if id.IsNone() {
		j.logger.Debug().Msg("signed out: subscriptions released")
		return
	}

	for _, svc := range j.services {
		collection := svc.Collection()
		_, err := svc.Subscribe(ctx,
			func(view models.Snapshot) {
				if j.onView != nil {
					j.onView(collection, view)
				}
			},
			func(err error) {
				if j.onError != nil {
					j.onError(collection, err)
				}
			},
		)
		if err != nil {
			j.logger.Err(err).Str("collection", collection.Name).Msg("subscribe failed")
			if j.onError != nil {
				j.onError(collection, err)
			}
			continue
		}
		j.logger.Debug().Str("collection", collection.Name).Str("subject", id.String()).Msg("subscribed")
	}
}

// Stop implements ClientSubscriptionJob. Safe to call when the job is not
// running.
func (j *clientSubscriptionJob) Stop() {
	j.mu.Lock()
	cancel, listener := j.cancel, j.listener
	j.cancel, j.listener = nil, nil
	j.mu.Unlock()

	if listener != nil {
		listener.Cancel()
	}
	if cancel == nil {
		return
	}

	cancel()
	j.wg.Wait()

	for _, svc := range j.services {
		svc.Reset()
	}
}
