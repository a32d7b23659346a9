package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound indicates a local lookup missed
	ErrNotFound = errors.New("entry not found")

	// ErrDuplicateEntry indicates the release is already in the collection
	ErrDuplicateEntry = errors.New("release already in collection")

	// ErrInvalidRating indicates a rating outside the 0..MaxRating range
	ErrInvalidRating = errors.New("rating out of range")

	// ErrInvalidReleaseID indicates a non-positive release identifier
	ErrInvalidReleaseID = errors.New("invalid release id")

	// ErrCatalogOffline indicates the catalog service is unreachable
	ErrCatalogOffline = errors.New("catalog service is unreachable")
)

// RemoteError is a non-2xx response from the catalog service.
type RemoteError struct {
	StatusCode int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("catalog request failed: status %d", e.StatusCode)
}

// IsRemoteNotFound reports whether err is a remote 404, i.e. the catalog
// does not know the requested release.
func IsRemoteNotFound(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.StatusCode == 404
}
