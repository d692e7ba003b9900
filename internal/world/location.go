package world

import (
	"fmt"

	"github.com/samdwyer/zombiecruise/internal/bitfield"
)

// FireState is the fire condition of a location.
type FireState int

const (
	FireNone FireState = iota
	FireFlammable
	FireOnFire
	FireBurnt
)

// MaxFireTimer is the timer value at which a fire burns out.
const MaxFireTimer = 15

// String returns a human-readable fire state.
func (f FireState) String() string {
	switch f {
	case FireNone:
		return "none"
	case FireFlammable:
		return "flammable"
	case FireOnFire:
		return "on_fire"
	case FireBurnt:
		return "burnt"
	default:
		return "unknown"
	}
}

// SpillResult describes what a flammable liquid did to a location.
type SpillResult int

const (
	// SpillSoaked made the location flammable.
	SpillSoaked SpillResult = iota
	// SpillFedFire restarted an active fire's timer.
	SpillFedFire
	// SpillNoEffect landed on burnt-out wreckage.
	SpillNoEffect
)

// Location is the mutable state of one location.
// The fire timer is 0 while there is no fire, counts 1..14 while burning and
// stays at MaxFireTimer once the location is burnt.
type Location struct {
	lightsOn  bool
	visited   bool
	fire      FireState
	fireTimer int
}

// NewLocation returns an unvisited location with its lights on.
func NewLocation() Location {
	return Location{lightsOn: true}
}

// LightsOn reports whether the lights work and are switched on.
func (l *Location) LightsOn() bool { return l.lightsOn }

// SetLights switches the lights.
func (l *Location) SetLights(on bool) { l.lightsOn = on }

// Visited reports whether the player has been here.
func (l *Location) Visited() bool { return l.visited }

// MarkVisited records the player's first visit.
func (l *Location) MarkVisited() { l.visited = true }

// Fire returns the fire state.
func (l *Location) Fire() FireState { return l.fire }

// FireTimer returns the fire timer.
func (l *Location) FireTimer() int { return l.fireTimer }

// Burning reports whether the location is on fire.
func (l *Location) Burning() bool { return l.fire == FireOnFire }

// SetFire forces a fire state and timer. It panics on values outside their fields.
func (l *Location) SetFire(state FireState, timer int) {
	if state < FireNone || state > FireBurnt {
		panic(fmt.Sprintf("world: fire state %d out of range", state))
	}
	if timer < 0 || timer > MaxFireTimer {
		panic(fmt.Sprintf("world: fire timer %d out of range", timer))
	}
	l.fire = state
	l.fireTimer = timer
}

// Spill pours fuel or alcohol over the location.
func (l *Location) Spill() SpillResult {
	switch l.fire {
	case FireOnFire:
		l.fireTimer = 1
		return SpillFedFire
	case FireBurnt:
		return SpillNoEffect
	default:
		l.fire = FireFlammable
		l.fireTimer = 0
		return SpillSoaked
	}
}

// Ignite sets a flammable location on fire.
func (l *Location) Ignite() bool {
	if l.fire != FireFlammable {
		return false
	}
	l.fire = FireOnFire
	l.fireTimer = 1
	return true
}

// Extinguish puts out an active fire, leaving the location burnt.
func (l *Location) Extinguish() bool {
	if l.fire != FireOnFire {
		return false
	}
	l.fire = FireBurnt
	l.fireTimer = MaxFireTimer
	return true
}

// AdvanceFire moves an active fire one turn along and reports whether it
// burnt out on this turn.
func (l *Location) AdvanceFire() bool {
	if l.fire != FireOnFire {
		return false
	}
	l.fireTimer++
	if l.fireTimer >= MaxFireTimer {
		l.fireTimer = MaxFireTimer
		l.fire = FireBurnt
		return true
	}
	return false
}

// Validate checks the fire timer against the fire state.
func (l *Location) Validate() error {
	switch l.fire {
	case FireNone, FireFlammable:
		if l.fireTimer != 0 {
			return fmt.Errorf("fire timer %d without an active fire", l.fireTimer)
		}
	case FireOnFire:
		if l.fireTimer >= MaxFireTimer {
			return fmt.Errorf("active fire with spent timer %d", l.fireTimer)
		}
	case FireBurnt:
		if l.fireTimer != MaxFireTimer {
			return fmt.Errorf("burnt location with timer %d", l.fireTimer)
		}
	}
	return nil
}

// Location word layout: [lightsOn(1) visited(1) fireState(2) fireTimer(4)].
const (
	locLightsBit  = 7
	locVisitedBit = 6
	locFireStart  = 4
	locFireWidth  = 2
	locTimerStart = 0
	locTimerWidth = 4
)

// Pack encodes the location into its one-byte form.
func (l *Location) Pack() uint8 {
	var w uint8
	w = bitfield.SetFlag(w, locLightsBit, l.lightsOn)
	w = bitfield.SetFlag(w, locVisitedBit, l.visited)
	w = bitfield.Set(w, int(l.fire), locFireStart, locFireWidth)
	w = bitfield.Set(w, l.fireTimer, locTimerStart, locTimerWidth)
	return w
}

// UnpackLocation decodes a location from its one-byte form.
func UnpackLocation(w uint8) Location {
	return Location{
		lightsOn:  bitfield.Flag(w, locLightsBit),
		visited:   bitfield.Flag(w, locVisitedBit),
		fire:      FireState(bitfield.Get(w, locFireStart, locFireWidth)),
		fireTimer: bitfield.Get(w, locTimerStart, locTimerWidth),
	}
}
