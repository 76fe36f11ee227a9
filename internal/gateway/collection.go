// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/identity"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

type collectionGateway struct {
	store      adapter.DocumentStore
	identity   identity.Provider
	collection models.Collection
	logger     *logger.Logger
}

// NewCollectionGateway binds a document store to collection under the
// scope of whoever provider reports as signed in at call time.
func NewCollectionGateway(store adapter.DocumentStore, provider identity.Provider, collection models.Collection, logger *logger.Logger) CollectionGateway {
	return &collectionGateway{
		store:      store,
		identity:   provider,
		collection: collection,
		logger:     logger.WithStr("collection", collection.Name),
	}
}

func (g *collectionGateway) Collection() models.Collection {
	return g.collection
}

func (g *collectionGateway) scope() (models.Scope, error) {
	subject, ok := g.identity.Current().Subject()
	if !ok {
		return "", ErrUnauthenticated
	}
	return g.collection.Scope(subject), nil
}

func (g *collectionGateway) Subscribe(ctx context.Context, onSnapshot func(models.Snapshot), onError func(error)) (models.CancelToken, error) {
	scope, err := g.scope()
	if err != nil {
		return nil, err
	}

	token, err := g.store.Watch(ctx, scope, onSnapshot, onError)
	if err != nil {
		g.logger.Err(err).Str("scope", scope.String()).Msg("subscribe failed")
		return nil, mapStoreError(err, ErrSubscribeFailed)
	}

	g.logger.Debug().Str("scope", scope.String()).Msg("subscribed")
	return token, nil
}

func (g *collectionGateway) Create(ctx context.Context, fields models.Fields) (string, error) {
	scope, err := g.scope()
	if err != nil {
		return "", err
	}

	payload := g.collection.TextFields(fields)
	if g.collection.HasAsset() {
		payload[g.collection.AssetField] = ""
	}

	id, err := g.store.Insert(ctx, scope, payload)
	if err != nil {
		g.logger.Err(err).Str("scope", scope.String()).Msg("create failed")
		return "", mapStoreError(err, ErrRemoteWriteFailed)
	}

	return id, nil
}

func (g *collectionGateway) Update(ctx context.Context, id string, patch models.Fields) error {
	scope, err := g.scope()
	if err != nil {
		return err
	}

	if err = g.store.Patch(ctx, scope, id, patch); err != nil {
		g.logger.Err(err).Str("scope", scope.String()).Str("id", id).Msg("update failed")
		return mapStoreError(err, ErrRemoteWriteFailed)
	}

	return nil
}

func (g *collectionGateway) Delete(ctx context.Context, id string) error {
	scope, err := g.scope()
	if err != nil {
		return err
	}

	if err = g.store.Remove(ctx, scope, id); err != nil {
		g.logger.Err(err).Str("scope", scope.String()).Str("id", id).Msg("delete failed")
		return mapStoreError(err, ErrRemoteWriteFailed)
	}

	return nil
}

func (g *collectionGateway) Get(ctx context.Context, id string) (models.Record, error) {
	scope, err := g.scope()
	if err != nil {
		return models.Record{}, err
	}

	record, err := g.store.Get(ctx, scope, id)
	if err != nil {
		return models.Record{}, mapStoreError(err, ErrRemoteReadFailed)
	}

	return record, nil
}
