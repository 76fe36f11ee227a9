package service

import (
	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/gateway"
	"github.com/MKhiriev/go-note-sync/internal/identity"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/validators"
	"github.com/MKhiriev/go-note-sync/models"
)

type ClientServices struct {
	Session *identity.Session

	Notes   ClientSyncService
	People  ClientSyncService
	Profile ClientProfileService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	session := identity.NewSession(serverAdapter, validators.NewCredentialsValidator(), logger)

	notes := gateway.NewCollectionGateway(serverAdapter, session, models.Notes, logger)
	noteAssets := gateway.NewAssetGateway(serverAdapter, session, models.Notes.AssetPrefix, logger)
	people := gateway.NewCollectionGateway(serverAdapter, session, models.People, logger)
	profiles := gateway.NewCollectionGateway(serverAdapter, session, models.Profiles, logger)
	profileAssets := gateway.NewAssetGateway(serverAdapter, session, models.Profiles.AssetPrefix, logger)

	return &ClientServices{
		Session: session,
		Notes:   NewClientSyncService(notes, noteAssets, logger),
		People:  NewClientSyncService(people, nil, logger),
		Profile: NewClientProfileService(profiles, profileAssets, session, logger),
	}
}

// SyncServices lists the collections kept live by the subscription job.
func (s *ClientServices) SyncServices() []ClientSyncService {
	return []ClientSyncService{s.Notes, s.People}
}
