package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wax/internal/domain"
	"wax/internal/search"
	"wax/internal/tui/styles"
)

// View renders the whole application
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderTabBar())
	b.WriteString("\n")

	switch {
	case m.focus == focusReview:
		b.WriteString(m.renderReviewEditor())
	case m.focus == focusConfirm:
		b.WriteString(m.renderConfirm())
	case m.detail != nil:
		b.WriteString(m.renderDetail())
	default:
		switch m.tab {
		case TabSearch:
			b.WriteString(m.renderSearchTab())
		case TabCollection:
			b.WriteString(m.renderCollectionTab())
		case TabWishlist:
			b.WriteString(m.renderWishlistTab())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m Model) renderTabBar() string {
	tabs := make([]string, 0, 3)
	for _, tab := range []Tab{TabSearch, TabCollection, TabWishlist} {
		label := tab.String()
		if tab == TabCollection && len(m.collectionItems) > 0 {
			label = fmt.Sprintf("%s (%d)", label, len(m.collectionItems))
		}
		if tab == TabWishlist && len(m.wishlistItems) > 0 {
			label = fmt.Sprintf("%s (%d)", label, len(m.wishlistItems))
		}
		if tab == m.tab {
			tabs = append(tabs, styles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, styles.InactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderSearchTab() string {
	var b strings.Builder
	b.WriteString(m.queryInput.View())
	b.WriteString("\n")

	switch m.session.State() {
	case search.StateIdle:
		b.WriteString(styles.DimStyle.Render("  press / and type a query to search the catalog"))
		b.WriteString(m.fillLines(1))

	case search.StateSearching:
		b.WriteString(styles.SpinnerStyle.Render(m.spinner()) +
			styles.SubtitleStyle.Render(" searching "+m.session.Query()+"..."))
		b.WriteString(m.fillLines(1))

	case search.StateError:
		b.WriteString(styles.ErrorStyle.Render("  search failed: " + m.session.Err()))
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render("  press / to search again"))
		b.WriteString(m.fillLines(2))

	default:
		b.WriteString(m.renderSearchResults())
	}
	return b.String()
}

func (m Model) renderSearchResults() string {
	results := m.session.Results()
	if len(results) == 0 {
		out := styles.DimStyle.Render("  no results for " + m.session.Query())
		return out + m.fillLines(1)
	}

	var b strings.Builder
	visible := m.maxVisible()
	end := min(m.searchOffset+visible, len(results))
	for i := m.searchOffset; i < end; i++ {
		b.WriteString(m.renderSummaryRow(results[i], i == m.searchCursor))
		b.WriteString("\n")
	}
	b.WriteString(m.fillLines(end - m.searchOffset))
	b.WriteString(m.renderPaginationLine())
	return b.String()
}

func (m Model) renderSummaryRow(r domain.ReleaseSummary, selected bool) string {
	line := r.Title
	if r.Year > 0 {
		line = fmt.Sprintf("%s (%d)", line, r.Year)
	}
	if len(r.Genres) > 0 {
		line += "  " + styles.DimStyle.Render(strings.Join(r.Genres, ", "))
	}
	line = styles.Truncate(line, m.width-4)
	if selected {
		return styles.SelectedItemStyle.Render("> " + line)
	}
	return styles.NormalItemStyle.Render("  " + line)
}

func (m Model) renderPaginationLine() string {
	p := m.session.Pagination()
	loaded := len(m.session.Results())

	var line string
	switch {
	case m.session.State() == search.StateLoadingMore:
		line = styles.SpinnerStyle.Render(m.spinner()) +
			styles.SubtitleStyle.Render(fmt.Sprintf(" loading page %d...", p.Page+1))
	case m.session.HasMore():
		line = styles.SubtitleStyle.Render(
			fmt.Sprintf("%d of %d results · page %d/%d · ", loaded, p.Items, p.Page, p.Pages)) +
			styles.HelpKeyStyle.Render("m") + styles.HelpDescStyle.Render(" load more")
	default:
		line = styles.SubtitleStyle.Render(fmt.Sprintf("%d results · end of list", loaded))
	}
	return line
}

func (m Model) renderCollectionTab() string {
	var b strings.Builder

	filtering := m.focus == focusFilter || m.filterInput.Value() != ""
	if filtering {
		b.WriteString(m.filterInput.View())
	} else {
		b.WriteString(styles.DimStyle.Render("press f to filter"))
	}
	b.WriteString("\n")

	if m.loading && !m.collectionLoaded {
		b.WriteString(styles.SpinnerStyle.Render(m.spinner()) +
			styles.SubtitleStyle.Render(" loading collection..."))
		b.WriteString(m.fillLines(1))
		return b.String()
	}
	if len(m.collectionItems) == 0 {
		b.WriteString(styles.DimStyle.Render("  your collection is empty — add releases from the search tab"))
		b.WriteString(m.fillLines(1))
		return b.String()
	}
	if len(m.filtered) == 0 {
		b.WriteString(styles.DimStyle.Render("  no matches for " + m.filterInput.Value()))
		b.WriteString(m.fillLines(1))
		return b.String()
	}

	visible := m.maxVisible()
	end := min(m.collectionOffset+visible, len(m.filtered))
	for i := m.collectionOffset; i < end; i++ {
		res := m.filtered[i]
		item := m.collectionItems[res.Index]
		selected := i == m.collectionCursor

		line := item.ArtistLine() + " - " + item.Title
		line = highlightMatches(styles.Truncate(line, m.width-14), res.MatchedIndexes, selected)
		row := styles.RenderStars(item.Rating, domain.MaxRating) + " " + line

		if selected {
			b.WriteString(styles.SelectedItemStyle.Render("> " + row))
		} else {
			b.WriteString(styles.NormalItemStyle.Render("  " + row))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.fillLines(end - m.collectionOffset))
	b.WriteString(styles.SubtitleStyle.Render(
		fmt.Sprintf("%d of %d releases", len(m.filtered), len(m.collectionItems))))
	return b.String()
}

func (m Model) renderWishlistTab() string {
	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render("releases you want"))
	b.WriteString("\n")

	if m.loading && !m.wishlistLoaded {
		b.WriteString(styles.SpinnerStyle.Render(m.spinner()) +
			styles.SubtitleStyle.Render(" loading wishlist..."))
		b.WriteString(m.fillLines(1))
		return b.String()
	}
	if len(m.wishlistItems) == 0 {
		b.WriteString(styles.DimStyle.Render("  wishlist is empty — press w on a search result to add one"))
		b.WriteString(m.fillLines(1))
		return b.String()
	}

	visible := m.maxVisible()
	end := min(m.wishlistOffset+visible, len(m.wishlistItems))
	for i := m.wishlistOffset; i < end; i++ {
		item := m.wishlistItems[i]
		line := item.ArtistLine() + " - " + item.Title
		if item.Year > 0 {
			line = fmt.Sprintf("%s (%d)", line, item.Year)
		}
		line = styles.Truncate(line, m.width-4)
		if i == m.wishlistCursor {
			b.WriteString(styles.SelectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(styles.NormalItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.fillLines(end - m.wishlistOffset))
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%d releases", len(m.wishlistItems))))
	return b.String()
}

func (m Model) renderDetail() string {
	item := m.detail

	var b strings.Builder
	title := item.Title
	if artists := item.ArtistLine(); artists != "" {
		title = artists + " - " + item.Title
	}
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n\n")

	writeField := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(styles.FieldLabelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	if item.Year > 0 {
		writeField("Year", fmt.Sprintf("%d", item.Year))
	}
	writeField("Released", item.Released)
	writeField("Country", item.Country)
	writeField("Genres", strings.Join(item.Genres, ", "))
	writeField("Styles", strings.Join(item.Styles, ", "))

	formats := make([]string, 0, len(item.Formats))
	for _, f := range item.Formats {
		formats = append(formats, f.String())
	}
	writeField("Format", strings.Join(formats, "; "))

	labels := make([]string, 0, len(item.Labels))
	for _, l := range item.Labels {
		if l.CatNo != "" {
			labels = append(labels, fmt.Sprintf("%s (%s)", l.Name, l.CatNo))
		} else {
			labels = append(labels, l.Name)
		}
	}
	writeField("Label", strings.Join(labels, "; "))

	if len(item.Tracklist) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.SubtitleStyle.Render("Tracklist"))
		b.WriteString("\n")
		for _, t := range item.Tracklist {
			if t.Heading {
				b.WriteString(styles.DimStyle.Render("  — " + t.Title))
			} else {
				row := fmt.Sprintf("  %-4s %s", t.Position, t.Title)
				if t.Duration != "" {
					row += styles.DimStyle.Render("  " + t.Duration)
				}
				b.WriteString(row)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if item.InCollection {
		b.WriteString(styles.SuccessStyle.Render("✓ in collection") + "  " +
			styles.RenderStars(item.Rating, domain.MaxRating))
		b.WriteString("\n")
		if item.Review != "" {
			b.WriteString(styles.SubtitleStyle.Render(item.Review))
			b.WriteString("\n")
		}
	}
	if m.detailWishlisted {
		b.WriteString(styles.AccentStyle.Render("♥ on wishlist"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderReviewEditor() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Review: " + m.detail.Title))
	b.WriteString("\n\n")
	b.WriteString(m.reviewInput.View())
	b.WriteString("\n\n")
	b.WriteString(styles.HelpKeyStyle.Render("ctrl+s") + styles.HelpDescStyle.Render(" save  ") +
		styles.HelpKeyStyle.Render("esc") + styles.HelpDescStyle.Render(" cancel"))
	return b.String()
}

func (m Model) renderConfirm() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(styles.ErrorStyle.Render(
		fmt.Sprintf("  remove release %d from your collection?", m.confirmRemoveID)))
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("  the rating and review for it will be deleted"))
	b.WriteString("\n\n")
	b.WriteString("  " + styles.HelpKeyStyle.Render("y") + styles.HelpDescStyle.Render(" remove  ") +
		styles.HelpKeyStyle.Render("n") + styles.HelpDescStyle.Render(" keep"))
	return b.String()
}

func (m Model) renderStatusBar() string {
	if m.statusMsg != "" {
		if m.statusIsErr {
			return styles.StatusErrorStyle.Render(" " + m.statusMsg)
		}
		return styles.StatusStyle.Render(" " + m.statusMsg)
	}
	return m.renderHelpLine()
}

func (m Model) renderHelpLine() string {
	type hint struct{ key, desc string }
	var hints []hint

	switch {
	case m.focus == focusQuery:
		hints = []hint{{"enter", "search"}, {"esc", "cancel"}}
	case m.focus == focusFilter:
		hints = []hint{{"enter", "apply"}, {"esc", "clear"}}
	case m.detail != nil:
		hints = []hint{{"a", "add"}, {"x", "remove"}, {"0-5", "rate"}, {"e", "review"}, {"w", "wishlist"}, {"esc", "back"}}
	case m.tab == TabSearch:
		hints = []hint{{"/", "search"}, {"enter", "open"}, {"m", "more"}, {"a", "add"}, {"w", "wishlist"}, {"tab", "next tab"}, {"q", "quit"}}
	case m.tab == TabCollection:
		hints = []hint{{"enter", "open"}, {"f", "filter"}, {"x", "remove"}, {"r", "refresh"}, {"tab", "next tab"}, {"q", "quit"}}
	default:
		hints = []hint{{"enter", "open"}, {"x", "remove"}, {"r", "refresh"}, {"tab", "next tab"}, {"q", "quit"}}
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, styles.HelpKeyStyle.Render(h.key)+" "+styles.HelpDescStyle.Render(h.desc))
	}
	return " " + strings.Join(parts, styles.DimStyle.Render(" · "))
}

func (m Model) spinner() string {
	return spinnerFrames[m.spinnerFrame%len(spinnerFrames)]
}

// fillLines pads the body with blank lines so the status bar stays at
// the bottom of the screen.
func (m Model) fillLines(used int) string {
	remaining := m.maxVisible() - used
	if remaining <= 0 {
		return ""
	}
	return strings.Repeat("\n", remaining)
}
