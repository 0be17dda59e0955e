// Package source abstracts where TCC documents come from: an HTTP list
// endpoint, an HTML directory index, or a local directory. The loader only
// sees the Source interface.
package source

import (
	"context"
	"errors"
)

// ErrEnumeration marks a failure to list the available documents. It is fatal
// to a load operation, unlike a per-document fetch failure.
var ErrEnumeration = errors.New("document enumeration failed")

// Source enumerates and fetches raw TCC documents.
type Source interface {
	// ID identifies the source for cache keying. Two sources with the same
	// ID are assumed to serve the same corpus.
	ID() string

	// List returns the identifiers of the available documents. A transport
	// failure or an in-band error from the endpoint wraps ErrEnumeration.
	List(ctx context.Context) ([]string, error)

	// Get returns the raw JSON body of one document. Failures here are
	// per-document: the loader skips and continues.
	Get(ctx context.Context, name string) ([]byte, error)
}
