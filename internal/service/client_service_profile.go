package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/gateway"
	"github.com/MKhiriev/go-note-sync/internal/identity"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/validators"
	"github.com/MKhiriev/go-note-sync/models"
)

type clientProfileService struct {
	records   gateway.CollectionGateway
	assets    gateway.AssetGateway
	identity  identity.Provider
	validator validators.Validator
	logger    *logger.Logger
}

// NewClientProfileService creates a ClientProfileService. records must be
// bound to [models.Profiles].
func NewClientProfileService(records gateway.CollectionGateway, assets gateway.AssetGateway, provider identity.Provider, logger *logger.Logger) ClientProfileService {
	return &clientProfileService{
		records:   records,
		assets:    assets,
		identity:  provider,
		validator: validators.NewRecordValidator(records.Collection()),
		logger:    logger,
	}
}

func (p *clientProfileService) subject() (string, error) {
	subject, ok := p.identity.Current().Subject()
	if !ok {
		return "", gateway.ErrUnauthenticated
	}
	return subject, nil
}

func (p *clientProfileService) Get(ctx context.Context) (models.Record, error) {
	subject, err := p.subject()
	if err != nil {
		return models.Record{}, err
	}
	return p.records.Get(ctx, subject)
}

func (p *clientProfileService) Update(ctx context.Context, fields models.Fields) error {
	if err := p.validator.Validate(ctx, fields); err != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	subject, err := p.subject()
	if err != nil {
		return err
	}

	patch := p.records.Collection().TextFields(fields)
	if err = p.records.Update(ctx, subject, patch); err != nil {
		p.logger.Err(err).Str("func", "clientProfileService.Update").Msg("profile update failed")
		return err
	}
	return nil
}

func (p *clientProfileService) UploadPhoto(ctx context.Context, localRef string) (string, error) {
	subject, err := p.subject()
	if err != nil {
		return "", err
	}

	url, err := p.assets.Upload(ctx, localRef, "")
	if err != nil {
		p.logger.Err(err).Str("func", "clientProfileService.UploadPhoto").Msg("photo upload failed")
		return "", err
	}

	field := p.records.Collection().AssetField
	if err = p.records.Update(ctx, subject, models.Fields{field: url}); err != nil {
		p.logger.Err(err).Str("func", "clientProfileService.UploadPhoto").Msg("photo link failed")
		return "", &PartialCommitError{ID: subject, Err: err}
	}

	return url, nil
}

func (p *clientProfileService) RemovePhoto(ctx context.Context) error {
	subject, err := p.subject()
	if err != nil {
		return err
	}

	field := p.records.Collection().AssetField
	return p.records.Update(ctx, subject, models.Fields{field: ""})
}
