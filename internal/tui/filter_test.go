package tui

import (
	"testing"

	"wax/internal/domain"
)

func enriched(id int, artist, title string) domain.EnrichedRelease {
	return domain.EnrichedRelease{
		Release: domain.Release{
			ID:      id,
			Title:   title,
			Artists: []domain.Artist{{Name: artist}},
		},
	}
}

func TestFilterItemsEmptyQueryKeepsOrder(t *testing.T) {
	items := []domain.EnrichedRelease{
		enriched(1, "Miles Davis", "Kind Of Blue"),
		enriched(2, "John Coltrane", "Blue Train"),
	}

	results := filterItems(items, "  ")
	if len(results) != 2 {
		t.Fatalf("expected all items, got %d", len(results))
	}
	for i, res := range results {
		if res.Index != i {
			t.Errorf("expected index %d, got %d", i, res.Index)
		}
		if len(res.MatchedIndexes) != 0 {
			t.Errorf("empty query must carry no highlights: %#v", res)
		}
	}
}

func TestFilterItemsMatchesAcrossArtistAndTitle(t *testing.T) {
	items := []domain.EnrichedRelease{
		enriched(1, "Miles Davis", "Kind Of Blue"),
		enriched(2, "John Coltrane", "Blue Train"),
		enriched(3, "Alice Coltrane", "Journey In Satchidananda"),
	}

	results := filterItems(items, "coltrane")
	if len(results) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(results))
	}
	for _, res := range results {
		if items[res.Index].ID == 1 {
			t.Error("non-matching item leaked through the filter")
		}
		if len(res.MatchedIndexes) == 0 {
			t.Errorf("match must carry highlight positions: %#v", res)
		}
	}
}
