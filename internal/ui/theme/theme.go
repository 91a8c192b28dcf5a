package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/rekishi/internal/progress"
)

// Palette is one named color scheme.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
}

// Ocean — bright daytime blues.
var Ocean = Palette{
	Primary:   lipgloss.Color("#0EA5E9"), // Sky Blue
	Secondary: lipgloss.Color("#14B8A6"), // Teal
	Accent:    lipgloss.Color("#F59E0B"), // Amber
	Success:   lipgloss.Color("#22C55E"), // Green
	Error:     lipgloss.Color("#F43F5E"), // Rose
	Text:      lipgloss.Color("#F0F9FF"), // Near White
	TextDim:   lipgloss.Color("#7DD3FC"), // Pale Blue
	BgDark:    lipgloss.Color("#0C4A6E"), // Deep Ocean
	BgCard:    lipgloss.Color("#075985"), // Ocean Slate
	Border:    lipgloss.Color("#0369A1"), // Blue Border
}

// Night — muted indigo darks.
var Night = Palette{
	Primary:   lipgloss.Color("#8B5CF6"), // Violet
	Secondary: lipgloss.Color("#6366F1"), // Indigo
	Accent:    lipgloss.Color("#F97316"), // Orange
	Success:   lipgloss.Color("#22C55E"), // Green
	Error:     lipgloss.Color("#F43F5E"), // Rose
	Text:      lipgloss.Color("#F8FAFC"), // White
	TextDim:   lipgloss.Color("#94A3B8"), // Slate
	BgDark:    lipgloss.Color("#0F172A"), // Deep Navy
	BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
	Border:    lipgloss.Color("#334155"), // Slate
}

// Current color values, swapped wholesale by Apply. Render code reads these
// at draw time, so a theme change takes effect on the next frame.
var (
	Primary   = Ocean.Primary
	Secondary = Ocean.Secondary
	Accent    = Ocean.Accent
	Success   = Ocean.Success
	Error     = Ocean.Error
	Text      = Ocean.Text
	TextDim   = Ocean.TextDim
	BgDark    = Ocean.BgDark
	BgCard    = Ocean.BgCard
	Border    = Ocean.Border
)

// Apply switches the active palette.
func Apply(name progress.Theme) {
	p := Ocean
	if name == progress.ThemeNight {
		p = Night
	}
	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Success = p.Success
	Error = p.Error
	Text = p.Text
	TextDim = p.TextDim
	BgDark = p.BgDark
	BgCard = p.BgCard
	Border = p.Border
}
