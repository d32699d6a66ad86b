package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha, https://catppuccin.com/palette
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorOverlay0 lipgloss.Color = "#6c7086"
)

// ColorMode selects when section headers are coloured.
type ColorMode int

const (
	// ColorAuto colours headers only when the output is a colour terminal.
	ColorAuto ColorMode = iota
	// ColorAlways colours headers regardless of the output.
	ColorAlways
	// ColorNever always writes plain text.
	ColorNever
)

// String returns the name accepted by ParseColorMode.
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorMode accepts "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q", s)
}

type styles struct {
	header lipgloss.Style
	rule   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().Foreground(colorPink).Bold(true),
		rule:   r.NewStyle().Foreground(colorOverlay0),
	}
}
