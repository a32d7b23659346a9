package tui

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"wax/internal/domain"
	"wax/internal/tui/styles"
)

// filterResult is one filtered row with match metadata for highlighting
type filterResult struct {
	Index          int   // position in the unfiltered list
	MatchedIndexes []int // character positions that matched
}

// filterIndex implements sahilm/fuzzy.Source over enriched releases,
// matching against pre-computed lowercase "artist - title" lines.
type filterIndex struct {
	lines []string
}

func newFilterIndex(items []domain.EnrichedRelease) *filterIndex {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = strings.ToLower(item.ArtistLine() + " - " + item.Title)
	}
	return &filterIndex{lines: lines}
}

// String returns the lowercase line at index i (implements fuzzy.Source)
func (idx *filterIndex) String(i int) string { return idx.lines[i] }

// Len returns the number of items (implements fuzzy.Source)
func (idx *filterIndex) Len() int { return len(idx.lines) }

// filterItems ranks items against the query. An empty query keeps every
// row, in order, with no highlights.
func filterItems(items []domain.EnrichedRelease, query string) []filterResult {
	if strings.TrimSpace(query) == "" {
		results := make([]filterResult, len(items))
		for i := range items {
			results[i] = filterResult{Index: i}
		}
		return results
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), newFilterIndex(items))
	results := make([]filterResult, len(matches))
	for i, match := range matches {
		results[i] = filterResult{Index: match.Index, MatchedIndexes: match.MatchedIndexes}
	}
	return results
}

// highlightMatches styles the matched characters of a display line. The
// matched indexes refer to the lowercase line the filter ran against,
// which shares character positions with the display line.
func highlightMatches(line string, matched []int, selected bool) string {
	if len(matched) == 0 {
		return line
	}

	highlight := styles.MatchHighlightStyle
	if selected {
		highlight = styles.MatchHighlightSelectedStyle
	}

	matchSet := make(map[int]bool, len(matched))
	for _, idx := range matched {
		matchSet[idx] = true
	}

	var b strings.Builder
	for i, r := range []rune(line) {
		if matchSet[i] {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
