package entity

import (
	"fmt"

	"github.com/samdwyer/zombiecruise/internal/bitfield"
	"github.com/samdwyer/zombiecruise/internal/world"
)

// Hand names an equipment slot.
type Hand int

const (
	RightHand Hand = iota
	LeftHand
)

// NumHands is the number of equipment slots.
const NumHands = 2

// MaxCarried is the most items the player can hold.
const MaxCarried = 7

// String returns the hand as used in narration.
func (h Hand) String() string {
	switch h {
	case RightHand:
		return "right hand"
	case LeftHand:
		return "left hand"
	default:
		return "unknown hand"
	}
}

// Player is the reporter's state.
type Player struct {
	location world.LocationID
	health   int
	hands    [NumHands]ItemID
	carried  int
}

// NewPlayer returns an unhurt, empty-handed player at the given location.
func NewPlayer(loc world.LocationID) Player {
	p := Player{health: MaxHealth, hands: [NumHands]ItemID{NoItem, NoItem}}
	p.SetLocation(loc)
	return p
}

// Location returns where the player is.
func (p *Player) Location() world.LocationID { return p.location }

// Health returns remaining health.
func (p *Player) Health() int { return p.health }

// Alive reports whether the player has health left.
func (p *Player) Alive() bool { return p.health > 0 }

// Equipped returns the item in a hand, or NoItem.
func (p *Player) Equipped(h Hand) ItemID { return p.hands[h] }

// EquippedCount returns how many hands hold something.
func (p *Player) EquippedCount() int {
	n := 0
	for _, id := range p.hands {
		if id != NoItem {
			n++
		}
	}
	return n
}

// HandHolding returns the hand an item is equipped in.
func (p *Player) HandHolding(id ItemID) (Hand, bool) {
	for h, held := range p.hands {
		if held == id && id != NoItem {
			return Hand(h), true
		}
	}
	return 0, false
}

// Carried returns the number of items held.
func (p *Player) Carried() int { return p.carried }

// SetLocation moves the player.
func (p *Player) SetLocation(loc world.LocationID) {
	if !loc.Valid() {
		panic(fmt.Sprintf("entity: player location %d out of range", loc))
	}
	p.location = loc
}

// SetHealth sets health, panicking outside 0..MaxHealth.
func (p *Player) SetHealth(h int) {
	if h < 0 || h > MaxHealth {
		panic(fmt.Sprintf("entity: player health %d out of range", h))
	}
	p.health = h
}

// Hurt removes one point of health and reports whether the player died.
func (p *Player) Hurt() bool {
	if p.health == 0 {
		return false
	}
	p.health--
	return p.health == 0
}

// Heal restores one point of health up to MaxHealth.
func (p *Player) Heal() bool {
	if p.health >= MaxHealth {
		return false
	}
	p.health++
	return true
}

// SetEquipped puts an item, or NoItem, in a hand.
func (p *Player) SetEquipped(h Hand, id ItemID) {
	if h < RightHand || h > LeftHand {
		panic(fmt.Sprintf("entity: hand %d out of range", h))
	}
	if id != NoItem && !id.Valid() {
		panic(fmt.Sprintf("entity: equipped item %d out of range", id))
	}
	other := p.hands[1-h]
	if id != NoItem && other == id {
		panic(fmt.Sprintf("entity: item %d equipped in both hands", id))
	}
	p.hands[h] = id
}

// SetCarried sets the carried count, panicking outside 0..MaxCarried.
func (p *Player) SetCarried(n int) {
	if n < 0 || n > MaxCarried {
		panic(fmt.Sprintf("entity: carried count %d out of range", n))
	}
	p.carried = n
}

// Player word layout: [location(3) health(2) right(4) left(4) carried(3)].
const (
	playerLocStart     = 13
	playerLocWidth     = 3
	playerHealthStart  = 11
	playerHealthWidth  = 2
	playerRightStart   = 7
	playerLeftStart    = 3
	playerHandWidth    = 4
	playerCarriedStart = 0
	playerCarriedWidth = 3
)

// Pack encodes the player into its two-byte form.
func (p *Player) Pack() uint16 {
	var w uint16
	w = bitfield.Set(w, int(p.location), playerLocStart, playerLocWidth)
	w = bitfield.Set(w, p.health, playerHealthStart, playerHealthWidth)
	w = bitfield.Set(w, int(p.hands[RightHand]), playerRightStart, playerHandWidth)
	w = bitfield.Set(w, int(p.hands[LeftHand]), playerLeftStart, playerHandWidth)
	w = bitfield.Set(w, p.carried, playerCarriedStart, playerCarriedWidth)
	return w
}

// UnpackPlayer decodes a player from its two-byte form.
func UnpackPlayer(w uint16) Player {
	return Player{
		location: world.LocationID(bitfield.Get(w, playerLocStart, playerLocWidth)),
		health:   bitfield.Get(w, playerHealthStart, playerHealthWidth),
		hands: [NumHands]ItemID{
			ItemID(bitfield.Get(w, playerRightStart, playerHandWidth)),
			ItemID(bitfield.Get(w, playerLeftStart, playerHandWidth)),
		},
		carried: bitfield.Get(w, playerCarriedStart, playerCarriedWidth),
	}
}
