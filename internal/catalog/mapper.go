package catalog

import (
	"strconv"
	"strings"

	"wax/internal/domain"
)

// mapSearchResult converts a search response to the domain result.
func mapSearchResult(resp searchResponse) domain.SearchResult {
	results := make([]domain.ReleaseSummary, 0, len(resp.Results))
	for _, item := range resp.Results {
		results = append(results, mapSummary(item))
	}
	return domain.SearchResult{
		Results:    results,
		Pagination: mapPagination(resp.Pagination),
	}
}

func mapSummary(item searchResultItem) domain.ReleaseSummary {
	return domain.ReleaseSummary{
		ID:         item.ID,
		Title:      item.Title,
		Thumb:      item.Thumb,
		CoverImage: item.CoverImage,
		Year:       item.Year,
		Country:    item.Country,
		Genres:     item.Genre,
		Styles:     item.Style,
	}
}

func mapPagination(p paginationDTO) domain.Pagination {
	return domain.Pagination{
		Page:    p.Page,
		Pages:   p.Pages,
		PerPage: p.PerPage,
		Items:   p.Items,
		NextURL: p.URLs.Next,
		LastURL: p.URLs.Last,
	}
}

// mapRelease converts a release detail response to the domain release.
func mapRelease(resp releaseResponse) domain.Release {
	rel := domain.Release{
		ID:       resp.ID,
		Title:    resp.Title,
		Year:     parseYear(resp.Year),
		Country:  resp.Country,
		Released: resp.Released,
		Genres:   resp.Genres,
		Styles:   resp.Styles,
		Thumb:    resp.Thumb,
	}

	for _, a := range resp.Artists {
		rel.Artists = append(rel.Artists, domain.Artist{ID: a.ID, Name: a.Name})
	}
	for _, t := range resp.Tracklist {
		rel.Tracklist = append(rel.Tracklist, domain.Track{
			Position: t.Position,
			Title:    t.Title,
			Duration: t.Duration,
			Heading:  t.Type == "heading",
		})
	}
	for _, l := range resp.Labels {
		rel.Labels = append(rel.Labels, domain.Label{Name: l.Name, CatNo: l.CatNo})
	}
	for _, f := range resp.Formats {
		rel.Formats = append(rel.Formats, domain.Format{Name: f.Name, Descriptions: f.Descriptions})
	}
	for _, img := range resp.Images {
		rel.Images = append(rel.Images, domain.Image{Type: img.Type, URI: img.URI, URI150: img.URI150})
	}

	return rel
}

// parseYear tolerates the detail endpoint's string-typed year field.
func parseYear(year string) int {
	year = strings.TrimSpace(year)
	if year == "" {
		return 0
	}
	n, err := strconv.Atoi(year)
	if err != nil {
		return 0
	}
	return n
}
