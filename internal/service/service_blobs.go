package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

// blobService stores uploaded bytes and hands out retrieval URLs signed with
// an HMAC of the blob path. The URL carries the generation as a cache
// buster, so an overwrite produces a different URL for the same path.
type blobService struct {
	blobs  store.BlobStorage
	signer *utils.Signer

	// publicURL is the base of every retrieval URL, without a trailing slash.
	publicURL string

	logger *logger.Logger
}

func NewBlobService(blobs store.BlobStorage, hashKey, publicURL string, logger *logger.Logger) BlobService {
	return &blobService{
		blobs:     blobs,
		signer:    utils.NewSigner(hashKey),
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}
}

func (s *blobService) Put(ctx context.Context, path string, data []byte, contentType string) (models.BlobRef, error) {
	log := logger.FromContext(ctx)

	if err := store.ValidateBlobPath(path); err != nil {
		log.Error().Err(err).Str("path", path).Msg("invalid blob path")
		return models.BlobRef{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if len(data) == 0 {
		return models.BlobRef{}, fmt.Errorf("%w: empty blob", ErrInvalidDataProvided)
	}

	ref, err := s.blobs.Put(ctx, path, data, contentType)
	if err != nil {
		log.Err(err).Str("func", "blobService.Put").Str("path", path).Msg("error storing blob")
		return models.BlobRef{}, fmt.Errorf("error storing blob: %w", err)
	}

	return ref, nil
}

func (s *blobService) URLFor(ctx context.Context, ref models.BlobRef) (string, error) {
	if err := store.ValidateBlobPath(ref.Path); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	query := url.Values{}
	if ref.Generation != "" {
		query.Set("v", ref.Generation)
	}
	query.Set("token", s.signer.Sign(ref.Path))

	return s.publicURL + "/api/blobs/" + escapeBlobPath(ref.Path) + "?" + query.Encode(), nil
}

func (s *blobService) Open(ctx context.Context, path, token string) (io.ReadCloser, store.BlobInfo, error) {
	if token == "" || !s.signer.Verify(path, token) {
		logger.FromContext(ctx).Warn().Str("path", path).Msg("blob token mismatch")
		return nil, store.BlobInfo{}, ErrInvalidBlobToken
	}

	rc, info, err := s.blobs.Open(ctx, path)
	if err != nil {
		return nil, store.BlobInfo{}, fmt.Errorf("error opening blob: %w", err)
	}

	return rc, info, nil
}

func escapeBlobPath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
