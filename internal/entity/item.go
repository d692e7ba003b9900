// Package entity provides the player, the cast of characters and the items
// aboard, each as a range-checked record with a packed form.
package entity

import (
	"fmt"

	"github.com/samdwyer/zombiecruise/internal/bitfield"
	"github.com/samdwyer/zombiecruise/internal/world"
)

// ItemType is one of the eight kinds of item aboard.
type ItemType int

const (
	FlareGun ItemType = iota
	FireExtinguisher
	AlcoholBottle
	DivingKnife
	SpearGun
	Wrench
	Cleaver
	FuelCan
)

const (
	// NumItemTypes is the number of item kinds.
	NumItemTypes = 8
	// NumItems is the number of item slots: one of each kind plus four extras.
	NumItems = 12
)

// ItemID indexes an item slot.
type ItemID int

// NoItem marks an empty hand.
const NoItem ItemID = 15

// Valid reports whether the identifier names an item slot.
func (id ItemID) Valid() bool {
	return id >= 0 && id < NumItems
}

// String returns the item type identifier.
func (t ItemType) String() string {
	switch t {
	case FlareGun:
		return "flare_gun"
	case FireExtinguisher:
		return "fire_extinguisher"
	case AlcoholBottle:
		return "alcohol_bottle"
	case DivingKnife:
		return "diving_knife"
	case SpearGun:
		return "spear_gun"
	case Wrench:
		return "wrench"
	case Cleaver:
		return "cleaver"
	case FuelCan:
		return "fuel_can"
	default:
		return "unknown"
	}
}

// Valid reports whether the type is a known item kind.
func (t ItemType) Valid() bool {
	return t >= 0 && t < NumItemTypes
}

// Damage returns the damage the item does as a weapon.
func (t ItemType) Damage() int {
	switch t {
	case FlareGun, SpearGun:
		return 3
	case FireExtinguisher, DivingKnife, Wrench, Cleaver:
		return 2
	case AlcoholBottle, FuelCan:
		return 1
	default:
		return 0
	}
}

// Usable reports whether the item has an effect when used.
func (t ItemType) Usable() bool {
	switch t {
	case FlareGun, FireExtinguisher, AlcoholBottle, SpearGun, FuelCan:
		return true
	default:
		return false
	}
}

// SingleUse reports whether using the item spends it.
func (t ItemType) SingleUse() bool {
	return t.Usable() && t != FireExtinguisher
}

// StartLocation returns where the first item of each type is placed.
func (t ItemType) StartLocation() world.LocationID {
	switch t {
	case FlareGun:
		return world.Bridge
	case FireExtinguisher:
		return world.Ballroom
	case AlcoholBottle:
		return world.Lounge
	case DivingKnife:
		return world.ForeDeck
	case SpearGun:
		return world.AftDeck
	case Wrench:
		return world.EngineRoom
	case Cleaver:
		return world.Kitchen
	default:
		return world.StoreRoom
	}
}

// Item is the state of one item slot.
// A used item is never held.
type Item struct {
	kind     ItemType
	location world.LocationID
	held     bool
	used     bool
}

// NewItem places an unused item of the given type.
func NewItem(kind ItemType, loc world.LocationID) Item {
	if !kind.Valid() {
		panic(fmt.Sprintf("entity: item type %d out of range", kind))
	}
	if !loc.Valid() {
		panic(fmt.Sprintf("entity: item location %d out of range", loc))
	}
	return Item{kind: kind, location: loc}
}

// Type returns the item type.
func (it *Item) Type() ItemType { return it.kind }

// Location returns where the item lies, or where it was last dropped.
func (it *Item) Location() world.LocationID { return it.location }

// Held reports whether the player carries the item.
func (it *Item) Held() bool { return it.held }

// Used reports whether the item has been spent.
func (it *Item) Used() bool { return it.used }

// SetLocation moves the item.
func (it *Item) SetLocation(loc world.LocationID) {
	if !loc.Valid() {
		panic(fmt.Sprintf("entity: item location %d out of range", loc))
	}
	it.location = loc
}

// SetHeld marks the item carried or not. Picking up a spent item panics.
func (it *Item) SetHeld(held bool) {
	if held && it.used {
		panic(fmt.Sprintf("entity: spent %v cannot be held", it.kind))
	}
	it.held = held
}

// MarkUsed spends the item. The caller drops it first.
func (it *Item) MarkUsed() {
	if it.held {
		panic(fmt.Sprintf("entity: %v spent while held", it.kind))
	}
	it.used = true
}

// Item word layout: [type(3) location(3) held(1) used(1)].
const (
	itemTypeStart = 5
	itemTypeWidth = 3
	itemLocStart  = 2
	itemLocWidth  = 3
	itemHeldBit   = 1
	itemUsedBit   = 0
)

// Pack encodes the item into its one-byte form.
func (it *Item) Pack() uint8 {
	var w uint8
	w = bitfield.Set(w, int(it.kind), itemTypeStart, itemTypeWidth)
	w = bitfield.Set(w, int(it.location), itemLocStart, itemLocWidth)
	w = bitfield.SetFlag(w, itemHeldBit, it.held)
	w = bitfield.SetFlag(w, itemUsedBit, it.used)
	return w
}

// UnpackItem decodes an item from its one-byte form.
func UnpackItem(w uint8) Item {
	return Item{
		kind:     ItemType(bitfield.Get(w, itemTypeStart, itemTypeWidth)),
		location: world.LocationID(bitfield.Get(w, itemLocStart, itemLocWidth)),
		held:     bitfield.Flag(w, itemHeldBit),
		used:     bitfield.Flag(w, itemUsedBit),
	}
}
