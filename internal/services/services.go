// package services defines interface Catalog for external music catalogs
package services

import (
	"context"

	"github.com/desertthunder/mixtape/internal/models"
)

// Catalog defines the interface for external track catalogs the search
// flow can query (Spotify today).
type Catalog interface {
	// Authenticate performs credential exchange with the catalog.
	// Implementations cache the resulting token for the process
	// lifetime; callers may skip this and rely on lazy exchange on
	// the first search.
	Authenticate(ctx context.Context) error

	// SearchTracks performs a free-text track search. A failed search
	// yields a nil slice alongside the error so callers can render an
	// empty result set.
	SearchTracks(ctx context.Context, query string) ([]models.Track, error)

	// Name returns the catalog's display name (e.g. "Spotify")
	Name() string
}
