package storage

import (
	"context"

	"github.com/campusgrid/campusgrid/core"
)

// CatalogRepository provides access to the raw catalog documents.
// Implementations must be safe for concurrent use.
type CatalogRepository interface {
	// AddInstitutes stores one or more institute documents, keyed by id.
	// Documents with Id == 0 get a content-based id derived from their name.
	// Returns the documents with ids populated.
	AddInstitutes(ctx context.Context, docs ...*core.RawInstitute) ([]*core.RawInstitute, error)

	// GetInstitute retrieves a single document by id.
	// Returns ErrNotFound if it does not exist.
	GetInstitute(ctx context.Context, id core.ID) (*core.RawInstitute, error)

	// GetAllInstitutes performs a full scan of the catalog collection.
	// This is the engine's one bulk read at build time; it is neither
	// filtered nor paginated.
	GetAllInstitutes(ctx context.Context) ([]*core.RawInstitute, error)

	// CountInstitutes returns the number of stored documents.
	CountInstitutes(ctx context.Context) (int, error)

	// Close releases the repository's resources.
	Close() error
}
