// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InsertResponse is returned by the document store after an insert.
type InsertResponse struct {
	ID string `json:"id"`
}

// ListResponse carries the current membership of a scope.
type ListResponse struct {
	Records []Record `json:"records"`
	Length  int      `json:"length"`
}

// SnapshotEvent is one message of a watch stream: the full membership of
// Scope after the latest committed change.
type SnapshotEvent struct {
	Scope   Scope    `json:"scope"`
	Records []Record `json:"records"`
}

// BlobRef is the opaque handle returned by a blob store write. Generation
// changes on every overwrite of the same path.
type BlobRef struct {
	Path       string `json:"path"`
	Generation string `json:"generation"`
}

// BlobURLResponse holds a durable retrieval URL for a blob.
type BlobURLResponse struct {
	URL string `json:"url"`
}
