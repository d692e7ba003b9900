package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// Frontend is where the game reads commands and writes narration.
type Frontend interface {
	// ReadLine blocks for the next command. io.EOF ends the game.
	ReadLine(ctx context.Context) (string, error)
	Write(text string) error
	ShowScore(card ScoreCard) error
	Close() error
}

// Game binds a session to a frontend.
type Game struct {
	session *Session
	front   Frontend
	seed    int64
}

// New creates a game. A zero seed is replaced with one from the clock.
func New(cfg Config, front Frontend) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return &Game{
		session: NewSession(cfg, rng),
		front:   front,
		seed:    seed,
	}
}

// Session returns the running session.
func (g *Game) Session() *Session { return g.session }

// Run executes the main game loop until the game ends, the player quits or
// input runs out, then shows the score card.
func (g *Game) Run(ctx context.Context) (ScoreCard, error) {
	s := g.session

	// Start session (traced)
	ctx, span := s.tracer.Start(ctx, "session.start")
	span.SetAttributes(
		attribute.String("session.id", s.id.String()),
		attribute.Int64("session.seed", g.seed),
	)
	span.End()

	if err := g.front.Write(s.Intro(ctx)); err != nil {
		return ScoreCard{}, fmt.Errorf("failed to write intro: %w", err)
	}

	// Main game loop
	for !s.Over() {
		line, err := g.front.ReadLine(ctx)
		if errors.Is(err, io.EOF) {
			s.state.End()
			break
		}
		if err != nil {
			return ScoreCard{}, fmt.Errorf("failed to read command: %w", err)
		}

		text, _ := s.ApplyCommand(ctx, line)
		if err := g.front.Write(text); err != nil {
			return ScoreCard{}, fmt.Errorf("failed to write narration: %w", err)
		}
	}

	if err := g.front.Write(" . GAME OVER ."); err != nil {
		return ScoreCard{}, fmt.Errorf("failed to write narration: %w", err)
	}
	card := s.FinalScore(ctx)
	if err := g.front.ShowScore(card); err != nil {
		return card, fmt.Errorf("failed to show score: %w", err)
	}
	return card, nil
}

// Close cleans up frontend resources.
func (g *Game) Close() error {
	if g.front != nil {
		return g.front.Close()
	}
	return nil
}
