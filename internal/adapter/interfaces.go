// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the note-sync remote store.
//
// The remote store exposes three capabilities: a document store
// ([DocumentStore]), a blob store ([BlobStore]) and token-based
// authentication ([AuthAdapter]). The package ships one HTTP/websocket
// implementation of all three ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// DocumentStore is the remote document database. Every operation is
// addressed by a scope ("users/{subject}/{collection}"); the store's
// authorization layer decides whether the caller may touch it.
type DocumentStore interface {
	// Insert creates a record with the given fields and returns the id the
	// store assigned to it.
	Insert(ctx context.Context, scope models.Scope, fields models.Fields) (string, error)

	// Patch merges the supplied fields into record id. Fields absent from
	// patch keep their stored value.
	Patch(ctx context.Context, scope models.Scope, id string, patch models.Fields) error

	// Remove deletes record id.
	Remove(ctx context.Context, scope models.Scope, id string) error

	// Get fetches a single record.
	Get(ctx context.Context, scope models.Scope, id string) (models.Record, error)

	// Watch opens a push subscription to scope. onSnapshot receives the full
	// membership once the stream is established and again after every
	// committed change. onError is told about stream interruptions; the
	// adapter reconnects on its own until the returned token is cancelled.
	Watch(ctx context.Context, scope models.Scope, onSnapshot func(models.Snapshot), onError func(error)) (models.CancelToken, error)
}

// BlobStore is the remote binary store.
type BlobStore interface {
	// Put writes data at path, replacing whatever was stored there.
	Put(ctx context.Context, path string, data []byte, contentType string) (models.BlobRef, error)

	// URLFor returns a durable retrieval URL for ref.
	URLFor(ctx context.Context, ref models.BlobRef) (string, error)
}

// AuthAdapter talks to the store's account endpoints and holds the bearer
// token attached to every other request.
type AuthAdapter interface {
	// SignUp registers a new account and installs the issued token.
	SignUp(ctx context.Context, creds models.Credentials) (models.Token, error)

	// SignIn authenticates an existing account and installs the issued token.
	SignIn(ctx context.Context, creds models.Credentials) (models.Token, error)

	// SetToken replaces the bearer token. An empty string clears it.
	SetToken(token string)

	// Token returns the bearer token currently held, or "".
	Token() string
}

// ServerAdapter bundles all capabilities of the remote store behind one
// connection.
type ServerAdapter interface {
	DocumentStore
	BlobStore
	AuthAdapter
}
