package service

import (
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

// Services bundles the server-side services used by the HTTP handlers.
type Services struct {
	AuthService     AuthService
	DocumentService DocumentService
	BlobService     BlobService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, info models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(info, logger)
	if err != nil {
		return nil, err
	}

	documents := NewDocumentService(storages.DocumentRepository, logger)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, documents, cfg.App, logger),
		DocumentService: documents,
		BlobService:     NewBlobService(storages.BlobStorage, cfg.App.HashKey, cfg.Server.PublicURL, logger),
		AppInfoService:  appInfo,
	}, nil
}
