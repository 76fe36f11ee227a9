package gateway

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
)

// mapStoreError folds transport errors into the gateway taxonomy. fallback
// is the class reported for anything that is neither an auth nor a lookup
// failure.
func mapStoreError(err error, fallback error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	case errors.Is(err, adapter.ErrNotFound), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return fmt.Errorf("%w: %w", fallback, err)
	}
}
