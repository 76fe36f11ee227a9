// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

type documentService struct {
	documents store.DocumentRepository
	hub       *snapshotHub
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewDocumentService(documents store.DocumentRepository, logger *logger.Logger) DocumentService {
	return &documentService{
		documents: documents,
		hub:       newSnapshotHub(documents.List, logger),
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// Insert stores fields under a newly generated id and returns it.
func (s *documentService) Insert(ctx context.Context, scope models.Scope, fields models.Fields) (string, error) {
	id := s.ids.Generate()
	if err := s.InsertWithID(ctx, scope, id, fields); err != nil {
		return "", err
	}

	return id, nil
}

func (s *documentService) InsertWithID(ctx context.Context, scope models.Scope, id string, fields models.Fields) error {
	log := logger.FromContext(ctx)

	if id == "" {
		return fmt.Errorf("%w: empty record id", ErrInvalidDataProvided)
	}
	if err := validateScalarFields(fields); err != nil {
		log.Error().Err(err).Str("scope", scope.String()).Msg("invalid record fields")
		return err
	}

	if err := s.documents.Insert(ctx, scope, models.Record{ID: id, Fields: fields.Clone()}); err != nil {
		log.Err(err).Str("func", "documentService.InsertWithID").Str("scope", scope.String()).Str("id", id).Msg("error inserting record")
		return fmt.Errorf("error inserting record: %w", err)
	}

	s.publish(ctx, scope)
	return nil
}

func (s *documentService) Patch(ctx context.Context, scope models.Scope, id string, patch models.Fields) error {
	log := logger.FromContext(ctx)

	if len(patch) == 0 {
		return fmt.Errorf("%w: empty patch", ErrInvalidDataProvided)
	}
	if err := validateScalarFields(patch); err != nil {
		log.Error().Err(err).Str("scope", scope.String()).Str("id", id).Msg("invalid patch fields")
		return err
	}

	if err := s.documents.Patch(ctx, scope, id, patch); err != nil {
		log.Err(err).Str("func", "documentService.Patch").Str("scope", scope.String()).Str("id", id).Msg("error patching record")
		return fmt.Errorf("error patching record: %w", err)
	}

	s.publish(ctx, scope)
	return nil
}

func (s *documentService) Delete(ctx context.Context, scope models.Scope, id string) error {
	if err := s.documents.Delete(ctx, scope, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "documentService.Delete").Str("scope", scope.String()).Str("id", id).Msg("error deleting record")
		return fmt.Errorf("error deleting record: %w", err)
	}

	s.publish(ctx, scope)
	return nil
}

func (s *documentService) Get(ctx context.Context, scope models.Scope, id string) (models.Record, error) {
	record, err := s.documents.Get(ctx, scope, id)
	if err != nil {
		return models.Record{}, fmt.Errorf("error getting record: %w", err)
	}
	return record, nil
}

func (s *documentService) List(ctx context.Context, scope models.Scope) (models.Snapshot, error) {
	snapshot, err := s.documents.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("error listing records: %w", err)
	}
	return snapshot, nil
}

func (s *documentService) Watch(ctx context.Context, scope models.Scope) (<-chan models.Snapshot, models.CancelToken, error) {
	snapshots, token, err := s.hub.Subscribe(ctx, scope)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "documentService.Watch").Str("scope", scope.String()).Msg("error opening watch")
		return nil, nil, fmt.Errorf("error opening watch: %w", err)
	}
	return snapshots, token, nil
}

// publish notifies watchers after a commit. The request may already be done
// by then, so cancellation of ctx is ignored.
func (s *documentService) publish(ctx context.Context, scope models.Scope) {
	s.hub.Publish(context.WithoutCancel(ctx), scope)
}

// validateScalarFields rejects nested objects and arrays.
func validateScalarFields(fields models.Fields) error {
	for name, value := range fields {
		if name == "" {
			return fmt.Errorf("%w: empty field name", ErrInvalidRecord)
		}
		switch value.(type) {
		case nil, string, bool, float64, float32, int, int32, int64:
		default:
			return fmt.Errorf("%w: field %q has type %T", ErrInvalidRecord, name, value)
		}
	}
	return nil
}
