package domain

import (
	"fmt"
	"strings"
)

// MaxRating is the upper bound of the star rating scale.
// A rating of 0 means "unrated"; there is no zero-star rating.
const MaxRating = 5

// ReleaseSummary is one row of a catalog search result page.
type ReleaseSummary struct {
	ID         int      // Catalog-assigned release identifier
	Title      string   // "Artist - Title" display string
	Thumb      string   // Small thumbnail URL
	CoverImage string   // Full-size cover URL
	Year       int      // Release year (0 if unknown)
	Country    string   // Country of release
	Genres     []string // Genre names
	Styles     []string // Style names (sub-genres)
}

// Release is the full catalog record for a single release.
// It is read-only from this application's perspective.
type Release struct {
	ID        int      // Catalog-assigned release identifier
	Title     string   // Release title
	Year      int      // Release year (0 if unknown)
	Country   string   // Country of release
	Released  string   // Full release date as reported by the catalog
	Genres    []string // Genre names
	Styles    []string // Style names
	Artists   []Artist // Credited artists
	Tracklist []Track  // Ordered track listing
	Labels    []Label  // Issuing labels
	Formats   []Format // Physical format descriptors
	Images    []Image  // Cover and additional images
	Thumb     string   // Small thumbnail URL
}

// ArtistLine returns the credited artists joined for display.
func (r Release) ArtistLine() string {
	names := make([]string, 0, len(r.Artists))
	for _, a := range r.Artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

// PrimaryImage returns the best cover image URL, falling back to the thumbnail.
func (r Release) PrimaryImage() string {
	for _, img := range r.Images {
		if img.Type == "primary" && img.URI != "" {
			return img.URI
		}
	}
	if len(r.Images) > 0 && r.Images[0].URI != "" {
		return r.Images[0].URI
	}
	return r.Thumb
}

// Artist is a credited artist on a release.
type Artist struct {
	ID   int    // Catalog artist identifier (0 if unknown)
	Name string // Display name
}

// Track is one entry of a release tracklist.
type Track struct {
	Position string // Side/track position, e.g. "A1" (empty for headings)
	Title    string // Track or heading title
	Duration string // "mm:ss" as reported by the catalog (may be empty)
	Heading  bool   // True for section headings rather than playable tracks
}

// Label is an issuing label credit.
type Label struct {
	Name  string // Label name
	CatNo string // Catalog number (may be empty)
}

// Format describes one physical format of a release.
type Format struct {
	Name         string   // e.g. "Vinyl"
	Descriptions []string // e.g. "LP", "Album", "Reissue"
}

// String renders the format for display, e.g. `Vinyl (LP, Album)`.
func (f Format) String() string {
	if len(f.Descriptions) == 0 {
		return f.Name
	}
	return fmt.Sprintf("%s (%s)", f.Name, strings.Join(f.Descriptions, ", "))
}

// Image is a catalog-hosted release image.
type Image struct {
	Type   string // "primary" or "secondary"
	URI    string // Full-size URL
	URI150 string // 150px thumbnail URL
}

// Pagination describes the paging state reported with a search response.
type Pagination struct {
	Page    int    // Current page (1-based)
	Pages   int    // Total page count
	PerPage int    // Page size used by the server
	Items   int    // Total matching item count
	NextURL string // Server-provided URL of the next page (may be empty)
	LastURL string // Server-provided URL of the last page (may be empty)
}

// HasMore reports whether pages beyond the current one exist.
// The strict comparison decides the final page: page == pages is the end.
func (p Pagination) HasMore() bool {
	return p.Page < p.Pages
}

// SearchResult is one page of search results plus its paging descriptor.
type SearchResult struct {
	Results    []ReleaseSummary
	Pagination Pagination
}

// SearchFilters narrows a catalog search. Zero-value fields are omitted
// from the request.
type SearchFilters struct {
	Type         string // "release", "master", "artist", "label"
	Title        string
	ReleaseTitle string
	Credit       string
	Artist       string
	Genre        string
	Style        string
	Country      string
	Format       string // e.g. "vinyl"
	Track        string
}

// CollectionEntry is the user's local annotation for one release.
// Rating 0 means the entry is unrated; valid ratings are 1..MaxRating.
type CollectionEntry struct {
	ID     int    // Matches a Release.ID
	Rating int    // Star rating, 0 = unrated
	Review string // Free-text review (may be empty)
}

// Rated reports whether the user has assigned a star rating.
func (e CollectionEntry) Rated() bool {
	return e.Rating > 0
}

// Validate checks entry invariants before persistence.
func (e CollectionEntry) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidReleaseID, e.ID)
	}
	if e.Rating < 0 || e.Rating > MaxRating {
		return fmt.Errorf("%w: %d", ErrInvalidRating, e.Rating)
	}
	return nil
}

// EntryUpdate is a typed partial update for a collection entry.
// Nil fields are left untouched; set fields overwrite.
type EntryUpdate struct {
	Rating *int
	Review *string
}

// WishlistEntry marks a release the user wants. Membership semantics:
// an id is present or absent, nothing else.
type WishlistEntry struct {
	ID int // Matches a Release.ID
}
