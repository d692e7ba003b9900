package entity

import (
	"fmt"

	"github.com/samdwyer/zombiecruise/internal/bitfield"
	"github.com/samdwyer/zombiecruise/internal/world"
)

// CharacterID identifies one of the eight people aboard.
type CharacterID int

const (
	CaptainSwell CharacterID = iota
	FirstMatePole
	ChefRotisserie
	Phil
	MrRich
	MrsRich
	ProfSmart
	MsSass
)

const (
	// NumCharacters is the size of the cast.
	NumCharacters = 8
	// MaxHealth is the health of an unhurt person.
	MaxHealth = 3
	// InfectedHealth is the health a bite leaves a character with.
	InfectedHealth = 2
)

// Valid reports whether the identifier names a character.
func (id CharacterID) Valid() bool {
	return id >= 0 && id < NumCharacters
}

// String returns the character identifier.
func (id CharacterID) String() string {
	switch id {
	case CaptainSwell:
		return "captain_swell"
	case FirstMatePole:
		return "first_mate_pole"
	case ChefRotisserie:
		return "chef_rotisserie"
	case Phil:
		return "phil"
	case MrRich:
		return "mr_rich"
	case MrsRich:
		return "mrs_rich"
	case ProfSmart:
		return "prof_smart"
	case MsSass:
		return "ms_sass"
	default:
		return "unknown"
	}
}

// Lifecycle is where a character is on the road from guest to corpse.
type Lifecycle int

const (
	Healthy Lifecycle = iota
	Infected
	Turning
	Hostile
	Dead
)

// String returns the lifecycle name.
func (l Lifecycle) String() string {
	switch l {
	case Healthy:
		return "healthy"
	case Infected:
		return "infected"
	case Turning:
		return "turning"
	case Hostile:
		return "hostile"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Character is the state of one member of the cast.
//
// Infection runs infected -> infected+hostile -> hostile, one step per turn.
// Health 0 is terminal.
type Character struct {
	location world.LocationID
	waitHere bool
	health   int
	infected bool
	hostile  bool
}

// NewCharacter returns an unhurt character waiting at the given location.
func NewCharacter(loc world.LocationID) Character {
	c := Character{waitHere: true, health: MaxHealth}
	c.SetLocation(loc)
	return c
}

// Location returns where the character is.
func (c *Character) Location() world.LocationID { return c.location }

// Waiting reports whether the character has been told to stay put.
func (c *Character) Waiting() bool { return c.waitHere }

// Health returns remaining health.
func (c *Character) Health() int { return c.health }

// Infected reports the raw infection flag.
func (c *Character) Infected() bool { return c.infected }

// HostileFlag reports the raw hostile flag.
func (c *Character) HostileFlag() bool { return c.hostile }

// SetLocation moves the character.
func (c *Character) SetLocation(loc world.LocationID) {
	if !loc.Valid() {
		panic(fmt.Sprintf("entity: character location %d out of range", loc))
	}
	c.location = loc
}

// SetWaiting sets the stay-put flag.
func (c *Character) SetWaiting(wait bool) { c.waitHere = wait }

// SetHealth sets health, panicking outside 0..MaxHealth.
func (c *Character) SetHealth(h int) {
	if h < 0 || h > MaxHealth {
		panic(fmt.Sprintf("entity: character health %d out of range", h))
	}
	c.health = h
}

// Alive reports whether the character has health left.
func (c *Character) Alive() bool { return c.health > 0 }

// Lifecycle derives the lifecycle state from the flags.
func (c *Character) Lifecycle() Lifecycle {
	switch {
	case !c.Alive():
		return Dead
	case c.infected && c.hostile:
		return Turning
	case c.infected:
		return Infected
	case c.hostile:
		return Hostile
	default:
		return Healthy
	}
}

// IsEligible reports whether the character is alive, uninfected and not
// hostile, so able to act and talk normally.
func (c *Character) IsEligible() bool { return c.Lifecycle() == Healthy }

// IsHostile reports whether the character is a fully turned, living zombie.
func (c *Character) IsHostile() bool { return c.Lifecycle() == Hostile }

// IsTurning reports whether the character is on its last turn before turning.
func (c *Character) IsTurning() bool { return c.Lifecycle() == Turning }

// Infect starts the infection and pins the character in place.
func (c *Character) Infect() {
	if !c.Alive() {
		return
	}
	c.infected = true
	c.waitHere = true
}

// Bite infects the character and leaves it at InfectedHealth.
func (c *Character) Bite() {
	if !c.Alive() {
		return
	}
	c.Infect()
	c.health = InfectedHealth
}

// AdvanceInfection moves an infected character one step toward hostility and
// reports the lifecycle state it left.
func (c *Character) AdvanceInfection() Lifecycle {
	from := c.Lifecycle()
	switch from {
	case Infected:
		c.hostile = true
		c.waitHere = true
	case Turning:
		c.infected = false
		c.waitHere = true
	}
	return from
}

// TakeDamage removes health and reports whether this killed the character.
func (c *Character) TakeDamage(amount int) bool {
	if !c.Alive() || amount <= 0 {
		return false
	}
	c.health -= amount
	if c.health <= 0 {
		c.health = 0
		return true
	}
	return false
}

// Character word layout: [location(3) waitHere(1) health(2) infected(1) hostile(1)].
const (
	charLocStart    = 5
	charLocWidth    = 3
	charWaitBit     = 4
	charHealthStart = 2
	charHealthWidth = 2
	charInfectedBit = 1
	charHostileBit  = 0
)

// Pack encodes the character into its one-byte form.
func (c *Character) Pack() uint8 {
	var w uint8
	w = bitfield.Set(w, int(c.location), charLocStart, charLocWidth)
	w = bitfield.SetFlag(w, charWaitBit, c.waitHere)
	w = bitfield.Set(w, c.health, charHealthStart, charHealthWidth)
	w = bitfield.SetFlag(w, charInfectedBit, c.infected)
	w = bitfield.SetFlag(w, charHostileBit, c.hostile)
	return w
}

// UnpackCharacter decodes a character from its one-byte form.
func UnpackCharacter(w uint8) Character {
	return Character{
		location: world.LocationID(bitfield.Get(w, charLocStart, charLocWidth)),
		waitHere: bitfield.Flag(w, charWaitBit),
		health:   bitfield.Get(w, charHealthStart, charHealthWidth),
		infected: bitfield.Flag(w, charInfectedBit),
		hostile:  bitfield.Flag(w, charHostileBit),
	}
}
