package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/identity"
	"github.com/MKhiriev/go-note-sync/internal/logger"
)

type assetGateway struct {
	blobs    adapter.BlobStore
	identity identity.Provider
	prefix   string
	readFile func(string) ([]byte, error)
	logger   *logger.Logger
}

// NewAssetGateway returns an AssetGateway writing under prefix, e.g.
// "notes" yields notes/{subject}/{recordID}.
func NewAssetGateway(blobs adapter.BlobStore, provider identity.Provider, prefix string, logger *logger.Logger) AssetGateway {
	return &assetGateway{
		blobs:    blobs,
		identity: provider,
		prefix:   prefix,
		readFile: os.ReadFile,
		logger:   logger.WithStr("asset_prefix", prefix),
	}
}

func (g *assetGateway) Upload(ctx context.Context, localRef string, recordID string) (string, error) {
	subject, ok := g.identity.Current().Subject()
	if !ok {
		return "", ErrUnauthenticated
	}

	path, err := AssetPath(g.prefix, subject, recordID)
	if err != nil {
		return "", err
	}

	data, err := g.readFile(localPath(localRef))
	if err != nil {
		g.logger.Err(err).Str("path", path).Msg("reading local asset failed")
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	ref, err := g.blobs.Put(ctx, path, data, http.DetectContentType(data))
	if err != nil {
		g.logger.Err(err).Str("path", path).Msg("blob put failed")
		return "", mapStoreError(err, ErrUploadFailed)
	}

	assetURL, err := g.blobs.URLFor(ctx, ref)
	if err != nil {
		g.logger.Err(err).Str("path", path).Msg("blob url failed")
		return "", mapStoreError(err, ErrUploadFailed)
	}

	g.logger.Debug().Str("path", path).Int("size", len(data)).Msg("asset uploaded")
	return assetURL, nil
}

// AssetPath derives the blob path of an asset. Distinct (subject, recordID)
// pairs never share a path; the same pair always maps to the same one.
func AssetPath(prefix, subject, recordID string) (string, error) {
	segments := []string{prefix, subject}
	if recordID != "" {
		segments = append(segments, recordID)
	}

	for _, s := range segments {
		if s == "" || s == "." || s == ".." || strings.ContainsAny(s, `/\`) {
			return "", fmt.Errorf("%w: %q", ErrInvalidAssetKey, s)
		}
	}

	return strings.Join(segments, "/"), nil
}

// localPath turns a picker reference into a filesystem path. Both bare paths
// and file:// URLs are accepted.
func localPath(ref string) string {
	if !strings.HasPrefix(ref, "file://") {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil || u.Path == "" {
		return strings.TrimPrefix(ref, "file://")
	}
	return u.Path
}
