// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gateway translates record and asset operations into remote store
// calls scoped to the signed-in identity.
//
// Every scoped call resolves the identity first and fails with
// [ErrUnauthenticated] without touching the network when nobody is signed
// in. Transport errors are mapped onto the gateway taxonomy (errors.go) so
// callers never need to know about HTTP.
package gateway

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// CollectionGateway reads and writes one collection of the current identity.
type CollectionGateway interface {
	// Subscribe opens a push subscription. onSnapshot is called with the full
	// collection once the stream is up and after every remote change,
	// including changes made by this client. onError receives stream
	// interruptions and may be nil.
	Subscribe(ctx context.Context, onSnapshot func(models.Snapshot), onError func(error)) (models.CancelToken, error)

	// Create inserts a record with the given text fields and an empty asset
	// field, returning the id the store assigned.
	Create(ctx context.Context, fields models.Fields) (string, error)

	// Update merges patch into record id. Omitted fields are left as stored.
	Update(ctx context.Context, id string, patch models.Fields) error

	// Delete removes record id.
	Delete(ctx context.Context, id string) error

	// Get fetches record id.
	Get(ctx context.Context, id string) (models.Record, error)

	// Collection returns the schema the gateway is bound to.
	Collection() models.Collection
}

// AssetGateway uploads local files to the blob store.
type AssetGateway interface {
	// Upload reads localRef and stores it at the path derived from the
	// current identity and recordID, overwriting any previous upload for the
	// same pair. An empty recordID addresses the identity's singleton asset.
	// It returns a durable retrieval URL.
	Upload(ctx context.Context, localRef string, recordID string) (string, error)
}
