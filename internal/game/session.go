package game

import (
	"context"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/zombiecruise/internal/chance"
	"github.com/samdwyer/zombiecruise/internal/combat"
	"github.com/samdwyer/zombiecruise/internal/gamedata"
	"github.com/samdwyer/zombiecruise/internal/telemetry"
)

// Session is one playthrough: the world, the dice and the text it is narrated
// with. A Session is not safe for concurrent use.
type Session struct {
	id       uuid.UUID
	cfg      Config
	tables   *gamedata.Tables
	balance  gamedata.Balance
	rng      chance.Roller
	state    *State
	resolver *combat.Resolver
	tracer   trace.Tracer

	turns    int // Turns advanced so far
	prologue int // Prologue stages told so far
	lines    []string
}

// NewSession lays out a fresh ship and draws every random value from rng.
func NewSession(cfg Config, rng chance.Roller) *Session {
	cfg = cfg.withDefaults()
	return &Session{
		id:      uuid.New(),
		cfg:     cfg,
		tables:  cfg.Tables,
		balance: cfg.Balance,
		rng:     rng,
		state:   NewState(rng),
		resolver: combat.NewResolver(rng, combat.Rules{
			HitBand:     cfg.Balance.Combat.HitBand,
			AttackSides: cfg.Balance.Combat.AttackSides,
		}),
		tracer: telemetry.Tracer("game"),
	}
}

// ID returns the session identifier used in traces.
func (s *Session) ID() uuid.UUID { return s.id }

// State returns the world. Callers outside the package should treat it as
// read-only.
func (s *Session) State() *State { return s.state }

// Turns returns the number of turns advanced.
func (s *Session) Turns() int { return s.turns }

// Over reports whether the game has ended.
func (s *Session) Over() bool { return s.state.Over() }

// Intro returns the title, the help text, the opening of the story and the
// first look around.
func (s *Session) Intro(ctx context.Context) string {
	_, span := s.tracer.Start(ctx, "session.intro")
	defer span.End()

	s.say(s.tables.Story.Title)
	s.blank()
	s.help()
	s.blank()
	s.tellPrologue()
	s.notices()
	return s.flush()
}

// ApplyCommand interprets one line of player input and, when the action takes
// time, advances the world one turn. It returns the narration and whether a
// turn was consumed.
func (s *Session) ApplyCommand(ctx context.Context, raw string) (string, bool) {
	ctx, span := s.tracer.Start(ctx, "command.apply")
	defer span.End()

	if s.state.Over() {
		return "", false
	}

	words := tokenize(raw)
	verb := ""
	if len(words) > 0 {
		verb = words[0]
	}
	consumed := s.dispatch(ctx, words)
	if consumed {
		s.AdvanceTurn(ctx)
	}

	span.SetAttributes(
		attribute.String("command.verb", verb),
		attribute.Bool("command.turn_consumed", consumed),
		attribute.Bool("game.over", s.state.Over()),
	)
	return s.flush(), consumed
}

// FinalScore tallies the score and stores it in the score word.
func (s *Session) FinalScore(ctx context.Context) ScoreCard {
	_, span := s.tracer.Start(ctx, "session.end")
	defer span.End()

	card := s.state.Tally()
	s.state.setScore(card.Score)
	span.SetAttributes(
		attribute.String("session.id", s.id.String()),
		attribute.Int("score.total", card.Score),
		attribute.String("score.rank", card.Rank.String()),
		attribute.Int("score.hostiles", card.Hostiles),
		attribute.Int("score.survivors", card.Survivors),
		attribute.Int("session.turns", s.turns),
	)
	return card
}

// say appends one line of narration.
func (s *Session) say(line string) {
	s.lines = append(s.lines, line)
}

func (s *Session) blank() {
	s.lines = append(s.lines, "")
}

// flush wraps and returns the narration gathered since the last flush.
func (s *Session) flush() string {
	text := strings.Join(s.lines, "\n")
	s.lines = s.lines[:0]
	return ansi.Wordwrap(text, s.cfg.WrapWidth, "")
}

func (s *Session) help() {
	for _, line := range s.tables.Story.Help {
		s.say(line)
	}
}
