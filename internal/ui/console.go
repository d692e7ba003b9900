package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/samdwyer/zombiecruise/internal/game"
)

// Prompt is shown before each command.
const Prompt = "[Your Turn] > "

// Console is a line-at-a-time frontend over a reader and a writer.
type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	theme    Theme
	renderer *lipgloss.Renderer
}

// NewConsole creates a console reading commands from in and writing to out.
// Colors are used only when out is a terminal that supports them.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:       bufio.NewScanner(in),
		out:      out,
		theme:    DefaultTheme,
		renderer: lipgloss.NewRenderer(out),
	}
}

// ReadLine prompts for and returns the next command.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(c.out, c.style(LinePrompt).Render(Prompt)); err != nil {
		return "", err
	}
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}

// Write prints narration, coloring each line by its kind.
func (c *Console) Write(text string) error {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if line != "" {
			line = c.style(Classify(line)).Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(c.out, b.String())
	return err
}

// ShowScore prints the end-of-game tally as a table.
func (c *Console) ShowScore(card game.ScoreCard) error {
	_, err := fmt.Fprintln(c.out, ScoreTable(c.renderer, c.theme, card))
	return err
}

// Close does nothing; the console does not own its streams.
func (c *Console) Close() error { return nil }

func (c *Console) style(kind LineKind) lipgloss.Style {
	return c.theme.TextStyle(c.renderer, kind)
}

// ScoreTable renders the score card.
func ScoreTable(r *lipgloss.Renderer, theme Theme, card game.ScoreCard) string {
	heading := theme.TextStyle(r, LineHeading)
	text := theme.TextStyle(r, LinePlain)
	border := r.NewStyle().Foreground(lipgloss.Color(theme.Hint))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		BorderHeader(true).
		BorderRow(false).
		Headers("FINAL TALLY", "").
		Rows(
			[]string{"Total zombies onboard", strconv.Itoa(card.Hostiles)},
			[]string{"Total survivors onboard", strconv.Itoa(card.Survivors)},
			[]string{"Final score", fmt.Sprintf("%d/%d", card.Score, game.MaxScore)},
			[]string{"Rank", card.Rank.String()},
		).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return heading
			}
			return text
		})

	return t.Render()
}
