// Package game provides the world state, the turn pipeline, the command
// interpreter and the session loop that ties them to a frontend.
package game

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samdwyer/zombiecruise/internal/bitfield"
	"github.com/samdwyer/zombiecruise/internal/chance"
	"github.com/samdwyer/zombiecruise/internal/entity"
	"github.com/samdwyer/zombiecruise/internal/world"
)

// Stage is the phase of the story the game has reached.
type Stage int

const (
	// StageCalm is before the first infection.
	StageCalm Stage = iota
	// StageOutbreak is after an infection, before any SOS.
	StageOutbreak
	// StageAwaitingRescue is after the mayday.
	StageAwaitingRescue
	// StageRescued is after the coast guard has arrived.
	StageRescued
	// StageOver is the end of the game.
	StageOver
)

// String returns a human-readable stage name.
func (s Stage) String() string {
	switch s {
	case StageCalm:
		return "calm"
	case StageOutbreak:
		return "outbreak"
	case StageAwaitingRescue:
		return "awaiting_rescue"
	case StageRescued:
		return "rescued"
	case StageOver:
		return "over"
	default:
		return "unknown"
	}
}

const (
	maxCountdown     = 7
	maxTurnsSinceSOS = 31
	maxScore         = 7
)

// State is the whole mutable world. It is owned by one Session.
type State struct {
	// Game word.
	countdown     int
	released      bool
	radioUsed     bool
	sosCalled     bool
	rescueArrived bool
	over          bool

	// Score word.
	turnsSinceSOS int
	score         int

	player     entity.Player
	locations  [world.NumLocations]world.Location
	characters [entity.NumCharacters]entity.Character
	items      [entity.NumItems]entity.Item
}

// NewState lays out a fresh ship: lights on, the cast and the player on the
// fore deck, one of each item in its place and four extra items whose type
// and place are drawn from rng.
func NewState(rng chance.Roller) *State {
	s := &State{player: entity.NewPlayer(world.ForeDeck)}
	for i := range s.locations {
		s.locations[i] = world.NewLocation()
	}
	for i := range s.characters {
		s.characters[i] = entity.NewCharacter(world.ForeDeck)
	}
	for i := 0; i < entity.NumItemTypes; i++ {
		kind := entity.ItemType(i)
		s.items[i] = entity.NewItem(kind, kind.StartLocation())
	}
	for i := entity.NumItemTypes; i < entity.NumItems; i++ {
		kind := entity.ItemType(rng.Intn(entity.NumItemTypes))
		loc := world.LocationID(rng.Intn(world.NumLocations))
		s.items[i] = entity.NewItem(kind, loc)
	}
	return s
}

// Player returns the player record.
func (s *State) Player() *entity.Player { return &s.player }

// Location returns a location record.
func (s *State) Location(id world.LocationID) *world.Location { return &s.locations[id] }

// Character returns a character record.
func (s *State) Character(id entity.CharacterID) *entity.Character { return &s.characters[id] }

// Item returns an item record.
func (s *State) Item(id entity.ItemID) *entity.Item { return &s.items[id] }

// Countdown returns the turns counted toward the next release.
func (s *State) Countdown() int { return s.countdown }

// Released reports whether an infection is loose.
func (s *State) Released() bool { return s.released }

// RadioUsed reports whether the mayday has been sent.
func (s *State) RadioUsed() bool { return s.radioUsed }

// SOSCalled reports whether the coast guard acknowledged the mayday.
func (s *State) SOSCalled() bool { return s.sosCalled }

// RescueArrived reports whether the coast guard is alongside.
func (s *State) RescueArrived() bool { return s.rescueArrived }

// Over reports whether the game has ended.
func (s *State) Over() bool { return s.over }

// TurnsSinceSOS returns the rescue clock.
func (s *State) TurnsSinceSOS() int { return s.turnsSinceSOS }

// Score returns the last tallied score.
func (s *State) Score() int { return s.score }

// Stage derives the story stage from the flags.
func (s *State) Stage() Stage {
	switch {
	case s.over:
		return StageOver
	case s.rescueArrived:
		return StageRescued
	case s.radioUsed:
		return StageAwaitingRescue
	case s.released:
		return StageOutbreak
	default:
		return StageCalm
	}
}

func (s *State) setCountdown(n int) {
	if n < 0 || n > maxCountdown {
		panic(fmt.Sprintf("game: release countdown %d out of range", n))
	}
	s.countdown = n
}

func (s *State) setTurnsSinceSOS(n int) {
	if n < 0 || n > maxTurnsSinceSOS {
		panic(fmt.Sprintf("game: turns since SOS %d out of range", n))
	}
	s.turnsSinceSOS = n
}

func (s *State) setScore(n int) {
	if n < 0 || n > maxScore {
		panic(fmt.Sprintf("game: score %d out of range", n))
	}
	s.score = n
}

// End marks the game over. It never clears.
func (s *State) End() { s.over = true }

// IsDark reports whether a location is an unlit interior with no fire to see by.
func (s *State) IsDark(id world.LocationID) bool {
	loc := &s.locations[id]
	return !id.Outdoor() && !loc.LightsOn() && !loc.Burning()
}

// PlayerHere reports whether the player is at a location.
func (s *State) PlayerHere(id world.LocationID) bool {
	return s.player.Location() == id
}

// CharactersAt returns the characters at a location matching keep, in
// identifier order.
func (s *State) CharactersAt(id world.LocationID, keep func(*entity.Character) bool) []entity.CharacterID {
	var ids []entity.CharacterID
	for i := range s.characters {
		c := &s.characters[i]
		if c.Location() == id && keep(c) {
			ids = append(ids, entity.CharacterID(i))
		}
	}
	return ids
}

// Characters returns every character matching keep, in identifier order.
func (s *State) Characters(keep func(*entity.Character) bool) []entity.CharacterID {
	var ids []entity.CharacterID
	for i := range s.characters {
		if keep(&s.characters[i]) {
			ids = append(ids, entity.CharacterID(i))
		}
	}
	return ids
}

// Predicates for Characters and CharactersAt.
var (
	isEligible = (*entity.Character).IsEligible
	isHostile  = (*entity.Character).IsHostile
	isAlive    = (*entity.Character).Alive
)

// InfectCharacter starts the infection in a character.
func (s *State) InfectCharacter(id entity.CharacterID) {
	s.characters[id].Infect()
}

// Validate checks every cross-record invariant and reports all breaches.
func (s *State) Validate() error {
	var errs []error

	held := 0
	for i := range s.items {
		it := &s.items[i]
		if it.Held() {
			held++
		}
		if it.Used() && it.Held() {
			errs = append(errs, fmt.Errorf("item %d (%v) is spent but held", i, it.Type()))
		}
	}
	if held != s.player.Carried() {
		errs = append(errs, fmt.Errorf("carried count %d but %d items held", s.player.Carried(), held))
	}
	if held > entity.MaxCarried {
		errs = append(errs, fmt.Errorf("%d items held, limit %d", held, entity.MaxCarried))
	}

	right, left := s.player.Equipped(entity.RightHand), s.player.Equipped(entity.LeftHand)
	if right != entity.NoItem && right == left {
		errs = append(errs, fmt.Errorf("item %d equipped in both hands", right))
	}
	for _, h := range []entity.Hand{entity.RightHand, entity.LeftHand} {
		id := s.player.Equipped(h)
		if id == entity.NoItem {
			continue
		}
		if !id.Valid() || !s.items[id].Held() {
			errs = append(errs, fmt.Errorf("%v holds item %d which the player does not carry", h, id))
		}
	}

	for i := range s.locations {
		if err := s.locations[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("location %v: %w", world.LocationID(i), err))
		}
	}

	if s.turnsSinceSOS > 0 && !s.sosCalled {
		errs = append(errs, fmt.Errorf("rescue clock at %d before any SOS", s.turnsSinceSOS))
	}
	if s.sosCalled && !s.radioUsed {
		errs = append(errs, errors.New("SOS acknowledged without a radio call"))
	}
	if s.rescueArrived && !s.sosCalled {
		errs = append(errs, errors.New("rescue arrived without an SOS"))
	}

	return errors.Join(errs...)
}

// Game word layout: [countdown(3) released(1) radio(1) sos(1) rescue(1) over(1)].
// Score word layout: [turnsSinceSOS(5) score(3)].
const (
	gameCountdownStart = 5
	gameCountdownWidth = 3
	gameReleasedBit    = 4
	gameRadioBit       = 3
	gameSOSBit         = 2
	gameRescueBit      = 1
	gameOverBit        = 0

	scoreTurnsStart = 3
	scoreTurnsWidth = 5
	scoreValueStart = 0
	scoreValueWidth = 3
)

// SnapshotSize is the length of a packed world snapshot.
const SnapshotSize = 2 + 2 + world.NumLocations + entity.NumCharacters + entity.NumItems

func (s *State) gameWord() uint8 {
	var w uint8
	w = bitfield.Set(w, s.countdown, gameCountdownStart, gameCountdownWidth)
	w = bitfield.SetFlag(w, gameReleasedBit, s.released)
	w = bitfield.SetFlag(w, gameRadioBit, s.radioUsed)
	w = bitfield.SetFlag(w, gameSOSBit, s.sosCalled)
	w = bitfield.SetFlag(w, gameRescueBit, s.rescueArrived)
	w = bitfield.SetFlag(w, gameOverBit, s.over)
	return w
}

func (s *State) scoreWord() uint8 {
	var w uint8
	w = bitfield.Set(w, s.turnsSinceSOS, scoreTurnsStart, scoreTurnsWidth)
	w = bitfield.Set(w, s.score, scoreValueStart, scoreValueWidth)
	return w
}

// MarshalBinary packs the world into a SnapshotSize-byte snapshot: the game
// and score words, the player word big-endian, then one byte per location,
// character and item.
func (s *State) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, SnapshotSize)
	buf = append(buf, s.gameWord(), s.scoreWord())
	pw := s.player.Pack()
	buf = append(buf, byte(pw>>8), byte(pw))
	for i := range s.locations {
		buf = append(buf, s.locations[i].Pack())
	}
	for i := range s.characters {
		buf = append(buf, s.characters[i].Pack())
	}
	for i := range s.items {
		buf = append(buf, s.items[i].Pack())
	}
	return buf, nil
}

// UnmarshalBinary restores a snapshot written by MarshalBinary.
func (s *State) UnmarshalBinary(data []byte) error {
	if len(data) != SnapshotSize {
		return fmt.Errorf("snapshot is %d bytes, want %d", len(data), SnapshotSize)
	}
	g, sc := data[0], data[1]
	s.countdown = bitfield.Get(g, gameCountdownStart, gameCountdownWidth)
	s.released = bitfield.Flag(g, gameReleasedBit)
	s.radioUsed = bitfield.Flag(g, gameRadioBit)
	s.sosCalled = bitfield.Flag(g, gameSOSBit)
	s.rescueArrived = bitfield.Flag(g, gameRescueBit)
	s.over = bitfield.Flag(g, gameOverBit)
	s.turnsSinceSOS = bitfield.Get(sc, scoreTurnsStart, scoreTurnsWidth)
	s.score = bitfield.Get(sc, scoreValueStart, scoreValueWidth)

	s.player = entity.UnpackPlayer(uint16(data[2])<<8 | uint16(data[3]))
	off := 4
	for i := range s.locations {
		s.locations[i] = world.UnpackLocation(data[off+i])
	}
	off += world.NumLocations
	for i := range s.characters {
		s.characters[i] = entity.UnpackCharacter(data[off+i])
	}
	off += entity.NumCharacters
	for i := range s.items {
		s.items[i] = entity.UnpackItem(data[off+i])
	}
	return nil
}

// DebugDump renders the packed words as bit strings. The section names game,
// score, player, locations, characters or items; anything else dumps them all.
func (s *State) DebugDump(section string) []string {
	snap, _ := s.MarshalBinary()
	row := func(name string, bits string, label string) string {
		return strings.TrimRight(fmt.Sprintf("%-10s %s  %s", name, bits, label), " ")
	}

	var game, score, player, locs, chars, items []string
	game = append(game, row("gameBits", bitfield.Format(snap[0]), s.Stage().String()))
	score = append(score, row("scoreBits", bitfield.Format(snap[1]), ""))
	player = append(player, row("playerBits", bitfield.Format(s.player.Pack()), ""))
	off := 4
	for i := range s.locations {
		locs = append(locs, row("locBits", bitfield.Format(snap[off+i]), world.LocationID(i).String()))
	}
	off += world.NumLocations
	for i := range s.characters {
		chars = append(chars, row("charBits", bitfield.Format(snap[off+i]), entity.CharacterID(i).String()))
	}
	off += entity.NumCharacters
	for i := range s.items {
		items = append(items, row("itemBits", bitfield.Format(snap[off+i]), s.items[i].Type().String()))
	}

	switch section {
	case "game":
		return game
	case "score":
		return score
	case "player":
		return player
	case "locations", "locs", "loc":
		return locs
	case "characters", "chars", "char":
		return chars
	case "items", "item":
		return items
	}
	return slices.Concat(player, game, score, locs, chars, items)
}
