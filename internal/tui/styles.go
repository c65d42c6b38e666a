package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles for every board glyph and chrome
// element. Two palettes exist; "auto" picks one from the terminal
// background via termenv.
type Styles struct {
	Header  lipgloss.Style
	Status  lipgloss.Style
	Help    lipgloss.Style
	Event   lipgloss.Style
	WinBan  lipgloss.Style
	LossBan lipgloss.Style

	Covered lipgloss.Style
	Flag    lipgloss.Style
	Blank   lipgloss.Style
	Mine    lipgloss.Style
	Hover   lipgloss.Style

	// Numbers indexes adjacency counts 1..6; index 0 is unused.
	Numbers [7]lipgloss.Style
}

// NewStyles builds the style set for the requested theme: "light", "dark"
// or "auto" (detect from the terminal background).
func NewStyles(theme string) Styles {
	dark := theme == "dark"
	if theme == "auto" {
		dark = termenv.HasDarkBackground()
	}
	if dark {
		return newPalette(darkPalette)
	}
	return newPalette(lightPalette)
}

type palette struct {
	header  string
	text    string
	muted   string
	covered string
	flag    string
	mine    string
	hover   string
	win     string
	loss    string
	numbers [7]string
}

var darkPalette = palette{
	header:  "#7D56F4",
	text:    "#FAFAFA",
	muted:   "#626262",
	covered: "#8A8F98",
	flag:    "#FF6B6B",
	mine:    "#FF5858",
	hover:   "#FFD700",
	win:     "#96CEB4",
	loss:    "#FF6B6B",
	numbers: [7]string{"", "#6BC7FF", "#96CEB4", "#FF6B6B", "#B39DDB", "#FFAB91", "#80CBC4"},
}

var lightPalette = palette{
	header:  "#7D56F4",
	text:    "#1A1A1A",
	muted:   "#767676",
	covered: "#5A5F68",
	flag:    "#D22020",
	mine:    "#B00000",
	hover:   "#2080FF",
	win:     "#008200",
	loss:    "#D22020",
	numbers: [7]string{"", "#1919DC", "#008200", "#D21414", "#000087", "#820000", "#008080"},
}

func newPalette(p palette) Styles {
	s := Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color(p.header)).
			Padding(0, 1).
			Bold(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		Event:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		WinBan:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.win)).Bold(true),
		LossBan: lipgloss.NewStyle().Foreground(lipgloss.Color(p.loss)).Bold(true),
		Covered: lipgloss.NewStyle().Foreground(lipgloss.Color(p.covered)),
		Flag:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.flag)).Bold(true),
		Blank:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		Mine:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.mine)).Bold(true),
		Hover:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.hover)).Bold(true).Underline(true),
	}
	for i := 1; i < 7; i++ {
		s.Numbers[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.numbers[i])).Bold(true)
	}
	return s
}
