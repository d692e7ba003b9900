package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer draws a transcript and prompt to a tcell screen.
type Renderer struct {
	screen tcell.Screen
	theme  Theme
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws the tail of the transcript above the prompt on the bottom row.
func (r *Renderer) Render(transcript []string, prompt string) {
	r.screen.Clear()
	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	rows := wrapLines(transcript, width)
	if room := height - 1; len(rows) > room {
		rows = rows[len(rows)-room:]
	}
	for y, row := range rows {
		r.drawText(0, y, row.text, r.theme.CellStyle(row.kind))
	}

	x := r.drawText(0, height-1, prompt, r.theme.CellStyle(LinePrompt))
	r.screen.ShowCursor(min(x, width-1), height-1)
	r.screen.Show()
}

type row struct {
	text string
	kind LineKind
}

// wrapLines wraps each line to width; wrapped rows keep their line's kind.
func wrapLines(lines []string, width int) []row {
	var rows []row
	for _, line := range lines {
		kind := Classify(line)
		for _, part := range strings.Split(ansi.Wordwrap(line, width, ""), "\n") {
			rows = append(rows, row{text: part, kind: kind})
		}
	}
	return rows
}

// drawText draws text at (x, y) and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}
