package domain

// EnrichedRelease is a catalog release joined with the user's local
// annotation, ready for display.
type EnrichedRelease struct {
	Release

	Rating       int    // User's star rating, 0 = unrated
	Review       string // User's review text
	InCollection bool   // True when a collection entry exists
}

// Enrich joins a release with its collection entry, if any. Pure and
// total: a nil entry yields the release with no rating or review.
func Enrich(rel Release, entry *CollectionEntry) EnrichedRelease {
	enriched := EnrichedRelease{Release: rel}
	if entry != nil {
		enriched.Rating = entry.Rating
		enriched.Review = entry.Review
		enriched.InCollection = true
	}
	return enriched
}
