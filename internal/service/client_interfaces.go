package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

// ClientSyncService keeps a live local view of one remote collection and runs
// the create/update protocols for the record being edited.
//
// The service is either idle (a draft for a new record is being filled in) or
// editing (one record of the view is selected). Submit dispatches on that
// state alone: idle creates, editing updates.
type ClientSyncService interface {
	// Collection returns the schema the service is bound to.
	Collection() models.Collection

	// Subscribe opens the push subscription, releasing any previous one
	// first. Every delivered snapshot replaces the view wholesale before
	// onView is called with a copy of it. onError receives stream
	// interruptions and may be nil.
	Subscribe(ctx context.Context, onView func(models.Snapshot), onError func(error)) (models.CancelToken, error)

	// Reset releases the subscription and empties the view, the selection
	// and the draft. Called when the identity goes away.
	Reset()

	// View returns a copy of the last delivered snapshot.
	View() models.Snapshot

	// Select stages a value copy of record id for editing, replacing any
	// prior selection. The id must be present in the current view.
	Select(id string) error

	// Clear drops the selection and the draft.
	Clear()

	// Selection returns a copy of the active selection.
	Selection() (models.Selection, bool)

	// Draft returns a copy of the pending new record.
	Draft() models.Draft

	// Stage sets a field on the selection, or on the draft when idle.
	Stage(name string, value any)

	// PickAsset stages localRef to be uploaded on the next submit.
	PickAsset(localRef string)

	// RemoveAsset stages removal of the asset on the next submit.
	RemoveAsset()

	// KeepAsset drops any staged asset change, so the next submit leaves
	// the remote asset as it is.
	KeepAsset()

	// Submit validates the staged values and commits them, returning the id
	// of the created or updated record. On success the selection and draft
	// are cleared; on failure both are left untouched so the user can retry.
	Submit(ctx context.Context) (string, error)

	// Delete removes record id remotely.
	Delete(ctx context.Context, id string) error
}

// ClientProfileService manages the singleton profile record of the signed-in
// identity. The record id equals the identity subject.
type ClientProfileService interface {
	Get(ctx context.Context) (models.Record, error)

	// Update patches name and phone number; both are required.
	Update(ctx context.Context, fields models.Fields) error

	// UploadPhoto uploads localRef over the identity's previous photo and
	// links the resulting URL, returning it.
	UploadPhoto(ctx context.Context, localRef string) (string, error)

	// RemovePhoto unlinks the photo.
	RemovePhoto(ctx context.Context) error
}

// ViewHandler receives the refreshed view of a collection.
type ViewHandler func(collection models.Collection, view models.Snapshot)

// StreamErrorHandler receives subscription failures of a collection.
type StreamErrorHandler func(collection models.Collection, err error)

// ClientSubscriptionJob keeps every sync service subscribed under the current
// identity: it resubscribes on sign-in and resets on sign-out.
type ClientSubscriptionJob interface {
	// Start registers for identity changes and processes them in the
	// background until ctx is cancelled or Stop is called.
	Start(ctx context.Context)

	// Stop unregisters, waits for the background goroutine to exit and
	// releases every subscription.
	Stop()
}
