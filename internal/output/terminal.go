package output

import (
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/screa/vanity-address-miner/internal/config"
)

// Color names a foreground color used in the search output
type Color int

const (
	Plain Color = iota
	Cyan
	Yellow
	Red
	Green
)

var palette = map[Color]lipgloss.ANSIColor{
	Cyan:   6,
	Yellow: 3,
	Red:    1,
	Green:  2,
}

// Terminal is the output device. It accepts pre-formatted text and
// serializes concurrent writers; styling is decided by the color mode.
type Terminal struct {
	mu     sync.Mutex
	w      io.Writer
	styles map[Color]lipgloss.Style
}

// NewTerminal creates a terminal writing to w
func NewTerminal(w io.Writer, mode config.ColorMode) *Terminal {
	r := lipgloss.NewRenderer(w)
	if profile, ok := profileFor(mode); ok {
		r.SetColorProfile(profile)
	}

	styles := make(map[Color]lipgloss.Style, len(palette))
	for c, ansi := range palette {
		styles[c] = r.NewStyle().Foreground(ansi)
	}

	return &Terminal{
		w:      w,
		styles: styles,
	}
}

// profileFor maps a color mode to a fixed profile. auto leaves detection
// to the renderer.
func profileFor(mode config.ColorMode) (termenv.Profile, bool) {
	switch mode {
	case config.ColorAlways:
		return termenv.TrueColor, true
	case config.ColorAlwaysANSI:
		return termenv.ANSI, true
	case config.ColorNever:
		return termenv.Ascii, true
	default:
		return termenv.Ascii, false
	}
}

// Paint styles s with the given color. s should not contain newlines.
func (t *Terminal) Paint(c Color, s string) string {
	style, ok := t.styles[c]
	if !ok || s == "" {
		return s
	}
	return style.Render(s)
}

// Write writes s in full or returns the error
func (t *Terminal) Write(s string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := io.WriteString(t.w, s)
	return err
}
