// Package ui provides the frontends that play the game in a terminal: a plain
// line console and a full-screen tcell transcript.
package ui

import (
	"context"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/zombiecruise/internal/game"
)

// maxTranscript is how many lines of narration the screen keeps.
const maxTranscript = 500

// Screen wraps tcell.Screen as a scrolling transcript with a prompt line.
type Screen struct {
	screen     tcell.Screen
	renderer   *Renderer
	transcript []string
	input      []rune
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(s)
}

func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s, renderer: NewRenderer(s, DefaultTheme)}, nil
}

// ReadLine edits a command on the prompt line until Enter. Escape or Ctrl-C
// give io.EOF.
func (s *Screen) ReadLine(ctx context.Context) (string, error) {
	s.input = s.input[:0]
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		s.draw()

		switch ev := s.screen.PollEvent().(type) {
		case nil:
			// Screen finalized
			return "", io.EOF
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				line := string(s.input)
				s.append(Prompt + line)
				s.input = s.input[:0]
				return line, nil
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", io.EOF
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if n := len(s.input); n > 0 {
					s.input = s.input[:n-1]
				}
			case tcell.KeyRune:
				s.input = append(s.input, ev.Rune())
			}
		}
	}
}

// Write adds narration to the transcript.
func (s *Screen) Write(text string) error {
	s.append(strings.Split(text, "\n")...)
	s.append("")
	s.draw()
	return nil
}

// ShowScore shows the score card and waits for a key.
func (s *Screen) ShowScore(card game.ScoreCard) error {
	s.append(strings.Split(ScoreTable(lipgloss.NewRenderer(io.Discard), DefaultTheme, card), "\n")...)
	s.append("", "[PRESS ANY KEY TO END]")
	s.draw()
	for {
		switch s.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			s.screen.Sync()
			s.draw()
		}
	}
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() error {
	s.screen.Fini()
	return nil
}

// Transcript returns the lines shown so far.
func (s *Screen) Transcript() []string {
	return s.transcript
}

func (s *Screen) append(lines ...string) {
	s.transcript = append(s.transcript, lines...)
	if over := len(s.transcript) - maxTranscript; over > 0 {
		s.transcript = slices.Delete(s.transcript, 0, over)
	}
}

func (s *Screen) draw() {
	s.renderer.Render(s.transcript, Prompt+string(s.input))
}
