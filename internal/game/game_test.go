package game

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// scriptedFrontend replays commands and records everything written.
type scriptedFrontend struct {
	commands []string
	readErr  error
	written  []string
	card     *ScoreCard
	closed   bool
}

func (f *scriptedFrontend) ReadLine(context.Context) (string, error) {
	if len(f.commands) == 0 {
		if f.readErr != nil {
			return "", f.readErr
		}
		return "", io.EOF
	}
	line := f.commands[0]
	f.commands = f.commands[1:]
	return line, nil
}

func (f *scriptedFrontend) Write(text string) error {
	f.written = append(f.written, text)
	return nil
}

func (f *scriptedFrontend) ShowScore(card ScoreCard) error {
	f.card = &card
	return nil
}

func (f *scriptedFrontend) Close() error {
	f.closed = true
	return nil
}

func TestRunUntilQuit(t *testing.T) {
	front := &scriptedFrontend{commands: []string{"help", "look", "quit", "wait"}}
	g := New(Config{Seed: 42}, front)

	card, err := g.Run(context.Background())
	require.NoError(t, err)

	require.NotNil(t, front.card)
	assert.Equal(t, card, *front.card)
	assert.Equal(t, []string{"wait"}, front.commands, "nothing is read after quit")
	assert.Equal(t, 1, g.Session().Turns())
	assert.True(t, strings.HasPrefix(front.written[0], "ZOMBIE CRUISE"))
	assert.Equal(t, " . GAME OVER .", front.written[len(front.written)-1])

	require.NoError(t, g.Close())
	assert.True(t, front.closed)
}

func TestRunEndsAtEndOfInput(t *testing.T) {
	front := &scriptedFrontend{commands: []string{"wait"}}
	g := New(Config{Seed: 1}, front)

	_, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, g.Session().Over())
	assert.NotNil(t, front.card)
}

func TestRunReportsReadErrors(t *testing.T) {
	boom := errors.New("terminal gone")
	front := &scriptedFrontend{readErr: boom}
	g := New(Config{Seed: 1}, front)

	_, err := g.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, front.card)
}

func TestSameSeedSameGame(t *testing.T) {
	commands := []string{"wait", "take all", "go to lounge", "wait", "wait", "wait", "look", "wait", "wait", "wait"}
	play := func() []string {
		front := &scriptedFrontend{commands: append([]string(nil), commands...)}
		_, err := New(Config{Seed: 99}, front).Run(context.Background())
		require.NoError(t, err)
		return front.written
	}

	assert.Equal(t, play(), play())
}

func TestSessionSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	front := &scriptedFrontend{commands: []string{"wait"}}
	_, err := New(Config{Seed: 5}, front).Run(context.Background())
	require.NoError(t, err)

	names := map[string]int{}
	for _, span := range sr.Ended() {
		names[span.Name()]++
	}
	assert.Equal(t, 1, names["session.start"])
	assert.Equal(t, 1, names["command.apply"])
	assert.Equal(t, 1, names["turn.advance"])
	assert.Equal(t, 1, names["session.end"])
}
