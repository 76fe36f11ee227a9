// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-note-sync/internal/gateway"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/validators"
	"github.com/MKhiriev/go-note-sync/models"
)

type clientSyncService struct {
	records    gateway.CollectionGateway
	assets     gateway.AssetGateway
	validator  validators.Validator
	collection models.Collection
	logger     *logger.Logger

	mu        sync.Mutex
	view      models.Snapshot
	selection *models.Selection
	draft     models.Draft

	// edits changes whenever the selection or the draft does, so a finished
	// submit only clears the state it actually committed.
	edits uint64

	// subGen identifies the live subscription. Callbacks of any older
	// subscription are dropped.
	subGen uint64
	sub    models.CancelToken
}

// NewClientSyncService creates the sync core for the collection records is
// bound to. assets may be nil for collections without an asset field.
func NewClientSyncService(records gateway.CollectionGateway, assets gateway.AssetGateway, logger *logger.Logger) ClientSyncService {
	collection := records.Collection()
	return &clientSyncService{
		records:    records,
		assets:     assets,
		validator:  validators.NewRecordValidator(collection),
		collection: collection,
		logger:     logger.WithStr("collection", collection.Name),
		view:       models.Snapshot{},
		draft:      newDraft(),
	}
}

func newDraft() models.Draft {
	return models.Draft{Fields: models.Fields{}}
}

func (s *clientSyncService) Collection() models.Collection {
	return s.collection
}

func (s *clientSyncService) Subscribe(ctx context.Context, onView func(models.Snapshot), onError func(error)) (models.CancelToken, error) {
	s.mu.Lock()
	prev := s.sub
	s.sub = nil
	s.subGen++
	gen := s.subGen
	s.mu.Unlock()

	if prev != nil {
		prev.Cancel()
	}

	token, err := s.records.Subscribe(ctx,
		func(snapshot models.Snapshot) {
			if view, ok := s.replaceView(gen, snapshot); ok && onView != nil {
				onView(view)
			}
		},
		func(err error) {
			if s.isLive(gen) && onError != nil {
				onError(err)
			}
		},
	)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSyncService.Subscribe").Msg("subscription failed")
		return nil, err
	}

	s.mu.Lock()
	if s.subGen != gen {
		// superseded while the stream was opening
		s.mu.Unlock()
		token.Cancel()
		return models.NewCancelToken(nil), nil
	}
	s.sub = token
	s.mu.Unlock()

	return models.NewCancelToken(func() { s.release(gen) }), nil
}

func (s *clientSyncService) replaceView(gen uint64, snapshot models.Snapshot) (models.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subGen != gen {
		return nil, false
	}
	s.view = snapshot.Clone()
	return s.view.Clone(), true
}

func (s *clientSyncService) isLive(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subGen == gen
}

func (s *clientSyncService) release(gen uint64) {
	s.mu.Lock()
	if s.subGen != gen {
		s.mu.Unlock()
		return
	}
	sub := s.sub
	s.sub = nil
	s.subGen++
	s.mu.Unlock()

	if sub != nil {
		sub.Cancel()
	}
}

func (s *clientSyncService) Reset() {
	s.mu.Lock()
	sub := s.sub
	s.sub = nil
	s.subGen++
	s.view = models.Snapshot{}
	s.clearLocked()
	s.mu.Unlock()

	if sub != nil {
		sub.Cancel()
	}
}

func (s *clientSyncService) View() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.Clone()
}

func (s *clientSyncService) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.view.Find(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotInView, id)
	}

	selection := models.Selection{ID: record.ID, Fields: record.Fields.Clone(), Original: record.Fields.Clone()}
	if s.collection.HasAsset() {
		selection.OriginalAsset = record.Fields.String(s.collection.AssetField)
	}
	s.selection = &selection
	s.edits++
	return nil
}

func (s *clientSyncService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

func (s *clientSyncService) clearLocked() {
	s.selection = nil
	s.draft = newDraft()
	s.edits++
}

func (s *clientSyncService) Selection() (models.Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selection == nil {
		return models.Selection{}, false
	}
	return s.selection.Clone(), true
}

func (s *clientSyncService) Draft() models.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Clone()
}

func (s *clientSyncService) Stage(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selection != nil {
		s.selection.Fields[name] = value
	} else {
		s.draft.Fields[name] = value
	}
	s.edits++
}

func (s *clientSyncService) PickAsset(localRef string) {
	if !s.collection.HasAsset() || localRef == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	edit := models.AssetEdit{Action: models.AssetReplace, LocalRef: localRef}
	if s.selection != nil {
		if localRef == s.selection.OriginalAsset {
			edit = models.AssetEdit{}
		}
		s.selection.Asset = edit
	} else {
		s.draft.Asset = edit
	}
	s.edits++
}

func (s *clientSyncService) RemoveAsset() {
	if !s.collection.HasAsset() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selection != nil {
		s.selection.Asset = models.AssetEdit{Action: models.AssetRemove}
	} else {
		s.draft.Asset = models.AssetEdit{}
	}
	s.edits++
}

func (s *clientSyncService) KeepAsset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selection != nil {
		s.selection.Asset = models.AssetEdit{}
	} else {
		s.draft.Asset = models.AssetEdit{}
	}
	s.edits++
}

func (s *clientSyncService) Submit(ctx context.Context) (string, error) {
	s.mu.Lock()
	edits := s.edits
	var selection *models.Selection
	if s.selection != nil {
		c := s.selection.Clone()
		selection = &c
	}
	draft := s.draft.Clone()
	s.mu.Unlock()

	var (
		id  string
		err error
	)
	if selection != nil {
		id, err = s.update(ctx, *selection)
	} else {
		id, err = s.create(ctx, draft)
	}
	if err != nil {
		return id, err
	}

	s.mu.Lock()
	if s.edits == edits {
		s.clearLocked()
	}
	s.mu.Unlock()

	return id, nil
}

// create inserts the draft, then uploads and links its asset. The record must
// exist before the upload so the blob lands under its id.
func (s *clientSyncService) create(ctx context.Context, draft models.Draft) (string, error) {
	if err := s.validator.Validate(ctx, draft); err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	id, err := s.records.Create(ctx, draft.Fields)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSyncService.create").Msg("insert failed")
		return "", err
	}

	if !s.collection.HasAsset() || draft.Asset.Action != models.AssetReplace {
		return id, nil
	}

	url, err := s.upload(ctx, draft.Asset.LocalRef, id)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSyncService.create").Str("id", id).Msg("asset upload failed")
		return id, &PartialCommitError{ID: id, Err: err}
	}

	if err = s.records.Update(ctx, id, models.Fields{s.collection.AssetField: url}); err != nil {
		s.logger.Err(err).Str("func", "clientSyncService.create").Str("id", id).Msg("asset link failed")
		return id, &PartialCommitError{ID: id, Err: err}
	}

	return id, nil
}

// update patches the selected record with the fields the user changed. The
// asset field is only part of the patch when the user replaced or removed it.
// A selection with no changes commits without a remote write.
func (s *clientSyncService) update(ctx context.Context, selection models.Selection) (string, error) {
	if err := s.validator.Validate(ctx, selection); err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	patch := s.changedFields(selection)
	if s.collection.HasAsset() {
		switch selection.Asset.Action {
		case models.AssetReplace:
			url, err := s.upload(ctx, selection.Asset.LocalRef, selection.ID)
			if err != nil {
				s.logger.Err(err).Str("func", "clientSyncService.update").Str("id", selection.ID).Msg("asset upload failed")
				return selection.ID, err
			}
			patch[s.collection.AssetField] = url
		case models.AssetRemove:
			patch[s.collection.AssetField] = ""
		}
	}

	if len(patch) == 0 {
		s.logger.Debug().Str("func", "clientSyncService.update").Str("id", selection.ID).Msg("nothing changed")
		return selection.ID, nil
	}

	if err := s.records.Update(ctx, selection.ID, patch); err != nil {
		s.logger.Err(err).Str("func", "clientSyncService.update").Str("id", selection.ID).Msg("patch failed")
		return selection.ID, err
	}

	return selection.ID, nil
}

// changedFields returns the declared fields whose staged value differs from
// the value at select time. Values are compared in their display form, so an
// int staged over a decoded float64 of the same number is no change.
func (s *clientSyncService) changedFields(selection models.Selection) models.Fields {
	patch := models.Fields{}
	for name, value := range s.collection.TextFields(selection.Fields) {
		original, ok := selection.Original[name]
		if ok && s.collection.FormatValue(name, original) == s.collection.FormatValue(name, value) {
			continue
		}
		patch[name] = value
	}
	return patch
}

func (s *clientSyncService) upload(ctx context.Context, localRef, recordID string) (string, error) {
	if s.assets == nil {
		return "", fmt.Errorf("%w: no asset store for %s", gateway.ErrUploadFailed, s.collection.Name)
	}
	return s.assets.Upload(ctx, localRef, recordID)
}

func (s *clientSyncService) Delete(ctx context.Context, id string) error {
	if err := s.records.Delete(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "clientSyncService.Delete").Str("id", id).Msg("delete failed")
		return err
	}

	s.mu.Lock()
	if s.selection != nil && s.selection.ID == id {
		s.selection = nil
		s.edits++
	}
	s.mu.Unlock()

	return nil
}
