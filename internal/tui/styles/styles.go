package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	VinylOrange = lipgloss.Color("#F3571A")
	SlateDark   = lipgloss.Color("#1F2937")
	SlateLight  = lipgloss.Color("#374151")
	DimGray     = lipgloss.Color("#6B7280")
	LightGray   = lipgloss.Color("#9CA3AF")
	White       = lipgloss.Color("#F9FAFB")
	Green       = lipgloss.Color("#10B981")
	Red         = lipgloss.Color("#EF4444")
)

// SetAccent overrides the accent color, typically from config.
func SetAccent(hex string) {
	if hex == "" {
		return
	}
	VinylOrange = lipgloss.Color(hex)
	rebuildAccentStyles()
}

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(VinylOrange)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)
)

// Tab bar styles
var (
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(VinylOrange).
			Padding(0, 2).
			Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(LightGray).
				Background(SlateDark).
				Padding(0, 2)
)

// List item styles
var (
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight).
				Padding(0, 1)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)
)

// Detail pane styles
var (
	DetailBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(DimGray).
				Padding(1, 2)

	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(DimGray).
			Width(10)
)

// Status bar styles
var (
	StatusStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(Red)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(VinylOrange)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Filter and match highlight styles
var (
	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(VinylOrange).
				Bold(true)

	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(VinylOrange).
				Bold(true)

	MatchHighlightSelectedStyle = lipgloss.NewStyle().
					Foreground(VinylOrange).
					Background(SlateLight).
					Bold(true)
)

// Spinner style
var (
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(VinylOrange)
)

func rebuildAccentStyles() {
	AccentStyle = AccentStyle.Foreground(VinylOrange)
	ActiveTabStyle = ActiveTabStyle.Background(VinylOrange)
	FilterPromptStyle = FilterPromptStyle.Foreground(VinylOrange)
	MatchHighlightStyle = MatchHighlightStyle.Foreground(VinylOrange)
	MatchHighlightSelectedStyle = MatchHighlightSelectedStyle.Foreground(VinylOrange)
	HelpKeyStyle = HelpKeyStyle.Foreground(VinylOrange)
	SpinnerStyle = SpinnerStyle.Foreground(VinylOrange)
	StarStyle = StarStyle.Foreground(VinylOrange)
}

// Raw star characters (unstyled)
const (
	StarFilledChar = "★"
	StarEmptyChar  = "☆"
)

var StarStyle = lipgloss.NewStyle().Foreground(VinylOrange)

// RenderStars renders a 0..max star rating. A zero rating renders as
// "unrated" rather than an empty row of stars.
func RenderStars(rating, max int) string {
	if rating <= 0 {
		return DimStyle.Render("unrated")
	}
	if rating > max {
		rating = max
	}
	out := ""
	for i := 0; i < rating; i++ {
		out += StarFilledChar
	}
	for i := rating; i < max; i++ {
		out += StarEmptyChar
	}
	return StarStyle.Render(out)
}

// Truncate truncates a string to the given width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// Pad pads a string to the given width
func Pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + spaces(width-len(runes))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
