package domain_test

import (
	"reflect"
	"testing"

	"wax/internal/domain"
)

func TestEnrichWithoutEntry(t *testing.T) {
	rel := domain.Release{
		ID:      101,
		Title:   "Kind Of Blue",
		Year:    1959,
		Country: "US",
		Artists: []domain.Artist{{ID: 23755, Name: "Miles Davis"}},
	}

	enriched := domain.Enrich(rel, nil)

	if enriched.InCollection {
		t.Error("expected InCollection to be false without an entry")
	}
	if enriched.Rating != 0 || enriched.Review != "" {
		t.Errorf("expected absent rating and review, got %d %q", enriched.Rating, enriched.Review)
	}
	if !reflect.DeepEqual(enriched.Release, rel) {
		t.Errorf("release fields changed during enrichment: %#v", enriched.Release)
	}
}

func TestEnrichWithEntry(t *testing.T) {
	rel := domain.Release{ID: 101, Title: "Kind Of Blue"}
	entry := &domain.CollectionEntry{ID: 101, Rating: 5, Review: "great"}

	enriched := domain.Enrich(rel, entry)

	if !enriched.InCollection {
		t.Error("expected InCollection to be true")
	}
	if enriched.Rating != 5 {
		t.Errorf("expected rating 5, got %d", enriched.Rating)
	}
	if enriched.Review != "great" {
		t.Errorf("expected review to carry over, got %q", enriched.Review)
	}
	if enriched.Title != "Kind Of Blue" {
		t.Errorf("expected release fields to be preserved, got %q", enriched.Title)
	}
}

func TestEntryValidate(t *testing.T) {
	cases := []struct {
		name    string
		entry   domain.CollectionEntry
		wantErr bool
	}{
		{"unrated", domain.CollectionEntry{ID: 1}, false},
		{"max rating", domain.CollectionEntry{ID: 1, Rating: 5}, false},
		{"rating too high", domain.CollectionEntry{ID: 1, Rating: 6}, true},
		{"negative rating", domain.CollectionEntry{ID: 1, Rating: -1}, true},
		{"zero id", domain.CollectionEntry{ID: 0, Rating: 3}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.entry.Validate()
			if tc.wantErr && err == nil {
				t.Errorf("expected error for %#v", tc.entry)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error for %#v: %v", tc.entry, err)
			}
		})
	}
}

func TestPaginationHasMore(t *testing.T) {
	if (domain.Pagination{Page: 3, Pages: 3}).HasMore() {
		t.Error("page 3 of 3 must not report more pages")
	}
	if !(domain.Pagination{Page: 2, Pages: 3}).HasMore() {
		t.Error("page 2 of 3 must report more pages")
	}
	if (domain.Pagination{Page: 1, Pages: 0}).HasMore() {
		t.Error("empty result set must not report more pages")
	}
}
