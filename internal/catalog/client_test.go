package catalog_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wax/internal/catalog"
	"wax/internal/domain"
)

const searchPayload = `{
	"results": [
		{"id": 101, "title": "Miles Davis - Kind Of Blue", "thumb": "http://img/t.jpg",
		 "cover_image": "http://img/c.jpg", "year": 1959, "country": "US",
		 "genre": ["Jazz"], "style": ["Modal"]},
		{"id": 202, "title": "John Coltrane - Blue Train", "year": 1958}
	],
	"pagination": {"perPage": 10, "pages": 3, "page": 1, "items": 23,
		"urls": {"next": "http://proxy/api/search?page=2", "last": "http://proxy/api/search?page=3"}}
}`

const releasePayload = `{
	"id": 101, "title": "Kind Of Blue", "year": "1959", "country": "US",
	"released": "1959-08-17",
	"genres": ["Jazz"], "styles": ["Modal"],
	"artists": [{"id": 23755, "name": "Miles Davis"}],
	"tracklist": [
		{"position": "", "title": "Side A", "type_": "heading"},
		{"position": "A1", "title": "So What", "duration": "9:22"},
		{"position": "A2", "title": "Freddie Freeloader", "duration": "9:46"}
	],
	"labels": [{"name": "Columbia", "catno": "CL 1355"}],
	"formats": [{"name": "Vinyl", "descriptions": ["LP", "Album"]}],
	"images": [{"type": "primary", "uri": "http://img/full.jpg", "uri150": "http://img/150.jpg"}]
}`

func TestSearchMapsResponse(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/search" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchPayload))
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL, nil)
	filters := domain.SearchFilters{Type: "release", Format: "vinyl"}

	result, err := client.Search(context.Background(), "Kind of Blue", filters, 1, 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if gotQuery["q"] != "Kind of Blue" {
		t.Errorf("expected q param, got %q", gotQuery["q"])
	}
	if gotQuery["type"] != "release" || gotQuery["format"] != "vinyl" {
		t.Errorf("filter params not forwarded: %v", gotQuery)
	}
	if gotQuery["page"] != "1" || gotQuery["perPage"] != "10" {
		t.Errorf("paging params not forwarded: %v", gotQuery)
	}
	if _, ok := gotQuery["artist"]; ok {
		t.Error("empty filter fields must be omitted from the query")
	}

	if len(result.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(result.Results))
	}
	first := result.Results[0]
	if first.ID != 101 || first.Year != 1959 || first.Country != "US" {
		t.Errorf("unexpected first result: %#v", first)
	}
	if len(first.Genres) != 1 || first.Genres[0] != "Jazz" {
		t.Errorf("genres not mapped: %#v", first.Genres)
	}

	p := result.Pagination
	if p.Page != 1 || p.Pages != 3 || p.PerPage != 10 || p.Items != 23 {
		t.Errorf("pagination not mapped: %#v", p)
	}
	if p.NextURL == "" || p.LastURL == "" {
		t.Errorf("pagination urls not mapped: %#v", p)
	}
}

func TestGetReleaseMapsResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/releases/101" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(releasePayload))
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL, nil)
	rel, err := client.GetRelease(context.Background(), 101)
	if err != nil {
		t.Fatalf("GetRelease failed: %v", err)
	}

	if rel.ID != 101 || rel.Title != "Kind Of Blue" {
		t.Errorf("unexpected release: %#v", rel)
	}
	if rel.Year != 1959 {
		t.Errorf("string year not parsed, got %d", rel.Year)
	}
	if rel.ArtistLine() != "Miles Davis" {
		t.Errorf("unexpected artist line %q", rel.ArtistLine())
	}
	if len(rel.Tracklist) != 3 {
		t.Fatalf("expected 3 tracklist rows, got %d", len(rel.Tracklist))
	}
	if !rel.Tracklist[0].Heading {
		t.Error("type_=heading row must map to a heading track")
	}
	if rel.Tracklist[1].Heading || rel.Tracklist[1].Position != "A1" {
		t.Errorf("unexpected track row: %#v", rel.Tracklist[1])
	}
	if len(rel.Labels) != 1 || rel.Labels[0].CatNo != "CL 1355" {
		t.Errorf("labels not mapped: %#v", rel.Labels)
	}
	if got := rel.Formats[0].String(); got != "Vinyl (LP, Album)" {
		t.Errorf("unexpected format rendering %q", got)
	}
	if rel.PrimaryImage() != "http://img/full.jpg" {
		t.Errorf("unexpected primary image %q", rel.PrimaryImage())
	}
}

func TestGetReleaseRejectsInvalidID(t *testing.T) {
	client := catalog.NewClient("http://localhost:0", nil)
	if _, err := client.GetRelease(context.Background(), 0); !errors.Is(err, domain.ErrInvalidReleaseID) {
		t.Errorf("expected ErrInvalidReleaseID, got %v", err)
	}
}

func TestRemoteErrorCarriesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := catalog.NewClient(server.URL, nil)
	_, err := client.GetRelease(context.Background(), 999)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var remoteErr *domain.RemoteError
	if !errors.As(err, &remoteErr) || remoteErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected RemoteError with 404, got %v", err)
	}
	if !domain.IsRemoteNotFound(err) {
		t.Error("IsRemoteNotFound must recognize the 404")
	}
}

func TestTransportFailureIsCatalogOffline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all connections

	client := catalog.NewClient(server.URL, nil)
	_, err := client.Search(context.Background(), "anything", domain.SearchFilters{}, 1, 10)
	if !errors.Is(err, domain.ErrCatalogOffline) {
		t.Errorf("expected ErrCatalogOffline, got %v", err)
	}
}
