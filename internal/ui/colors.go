package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// LineKind is the role a line of narration plays, which decides its color.
type LineKind int

const (
	LinePlain LineKind = iota
	LineHeading
	LineAlert
	LineSpeech
	LineHint
	LinePrompt
)

// Classify works out a line's role from its shape: "[BRIDGE]" is a heading,
// " - YOU ARE HURT -" an alert, " Phil: Cheers" speech.
func Classify(line string) LineKind {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return LinePlain
	case strings.HasPrefix(line, Prompt):
		return LinePrompt
	case strings.HasPrefix(trimmed, "[HINT]"):
		return LineHint
	case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
		return LineHeading
	case strings.HasPrefix(trimmed, "- ") && strings.HasSuffix(trimmed, " -"):
		return LineAlert
	case strings.HasPrefix(line, " ") && strings.Contains(trimmed, ": "):
		return LineSpeech
	default:
		return LinePlain
	}
}

// Theme holds the hex color of each line kind.
type Theme struct {
	Text    string
	Heading string
	Alert   string
	Speech  string
	Hint    string
	Prompt  string
}

// DefaultTheme is a night-at-sea palette.
var DefaultTheme = Theme{
	Text:    "#D0D0D0",
	Heading: "#5FAFFF",
	Alert:   "#FF5F5F",
	Speech:  "#FFD75F",
	Hint:    "#87AF87",
	Prompt:  "#FFFFFF",
}

// Hex returns the hex color for a line kind.
func (t Theme) Hex(kind LineKind) string {
	switch kind {
	case LineHeading:
		return t.Heading
	case LineAlert:
		return t.Alert
	case LineSpeech:
		return t.Speech
	case LineHint:
		return t.Hint
	case LinePrompt:
		return t.Prompt
	default:
		return t.Text
	}
}

// CellStyle returns the tcell style for a line kind.
func (t Theme) CellStyle(kind LineKind) tcell.Style {
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(MustParseHexColor(t.Hex(kind)))
	if kind == LineHeading || kind == LineAlert {
		style = style.Bold(true)
	}
	return style
}

// TextStyle returns the lipgloss style for a line kind, bound to renderer r.
func (t Theme) TextStyle(r *lipgloss.Renderer, kind LineKind) lipgloss.Style {
	style := r.NewStyle().Foreground(lipgloss.Color(t.Hex(kind)))
	if kind == LineHeading || kind == LineAlert {
		style = style.Bold(true)
	}
	return style
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	var rgb [3]int32
	for i, name := range []string{"red", "green", "blue"} {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid %s component in %s: %w", name, hex, err)
		}
		rgb[i] = int32(v)
	}
	return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}
