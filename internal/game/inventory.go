package game

import (
	"github.com/samdwyer/zombiecruise/internal/entity"
	"github.com/samdwyer/zombiecruise/internal/world"
)

// TakeResult is the outcome of trying to pick up an item.
type TakeResult int

const (
	Taken TakeResult = iota
	TakeAlreadyHeld
	TakeNotHere
	TakeSpent
	TakeFull
)

// String returns a human-readable result name.
func (r TakeResult) String() string {
	switch r {
	case Taken:
		return "taken"
	case TakeAlreadyHeld:
		return "already_held"
	case TakeNotHere:
		return "not_here"
	case TakeSpent:
		return "spent"
	case TakeFull:
		return "full"
	default:
		return "unknown"
	}
}

// Drop records one item leaving the player's hands.
type Drop struct {
	Item       entity.ItemID
	Unequipped bool        // The item was equipped when dropped
	Hand       entity.Hand // Hand it was equipped in, if Unequipped
}

// EquipResult is the outcome of an equip request.
type EquipResult int

const (
	EquipOK EquipResult = iota
	EquipSwapped
	EquipAlready
	EquipMissing
)

// Equip records one equip request.
type Equip struct {
	Result    EquipResult
	Item      entity.ItemID
	Hand      entity.Hand
	Displaced entity.ItemID // Item pushed out of the left hand by a swap, or NoItem
}

// UseEffect is what using an item did to the player's location.
type UseEffect int

const (
	UseUnusable UseEffect = iota
	UseNoEffect
	UseSpilled
	UseFedFire
	UseIgnited
	UseExtinguished
	UseRetardant
)

// String returns a human-readable effect name.
func (e UseEffect) String() string {
	switch e {
	case UseUnusable:
		return "unusable"
	case UseNoEffect:
		return "no_effect"
	case UseSpilled:
		return "spilled"
	case UseFedFire:
		return "fed_fire"
	case UseIgnited:
		return "ignited"
	case UseExtinguished:
		return "extinguished"
	case UseRetardant:
		return "retardant"
	default:
		return "unknown"
	}
}

// HeldOfType returns the held items of a type, in slot order.
func (s *State) HeldOfType(kind entity.ItemType) []entity.ItemID {
	var ids []entity.ItemID
	for i := range s.items {
		if s.items[i].Held() && s.items[i].Type() == kind {
			ids = append(ids, entity.ItemID(i))
		}
	}
	return ids
}

// Held returns every item the player carries, in slot order.
func (s *State) Held() []entity.ItemID {
	var ids []entity.ItemID
	for i := range s.items {
		if s.items[i].Held() {
			ids = append(ids, entity.ItemID(i))
		}
	}
	return ids
}

// ItemsAt returns the items lying at a location, spent or not, in slot order.
func (s *State) ItemsAt(loc world.LocationID) []entity.ItemID {
	var ids []entity.ItemID
	for i := range s.items {
		it := &s.items[i]
		if !it.Held() && it.Location() == loc {
			ids = append(ids, entity.ItemID(i))
		}
	}
	return ids
}

// TakeItem picks up an unspent item of the given type from the player's
// location. The player carries at most one of each type.
func (s *State) TakeItem(kind entity.ItemType) (entity.ItemID, TakeResult) {
	if held := s.HeldOfType(kind); len(held) > 0 {
		return held[0], TakeAlreadyHeld
	}
	spent := entity.NoItem
	for _, id := range s.ItemsAt(s.player.Location()) {
		it := &s.items[id]
		if it.Type() != kind {
			continue
		}
		if it.Used() {
			spent = id
			continue
		}
		if s.player.Carried() >= entity.MaxCarried {
			return id, TakeFull
		}
		s.take(id)
		return id, Taken
	}
	if spent != entity.NoItem {
		return spent, TakeSpent
	}
	return entity.NoItem, TakeNotHere
}

// TakeAll picks up every unspent item at the player's location whose type the
// player does not already carry. Items left behind for lack of room are
// returned as refused.
func (s *State) TakeAll() (taken, refused []entity.ItemID) {
	for _, id := range s.ItemsAt(s.player.Location()) {
		it := &s.items[id]
		if it.Used() || len(s.HeldOfType(it.Type())) > 0 {
			continue
		}
		if s.player.Carried() >= entity.MaxCarried {
			refused = append(refused, id)
			continue
		}
		s.take(id)
		taken = append(taken, id)
	}
	return taken, refused
}

func (s *State) take(id entity.ItemID) {
	s.items[id].SetHeld(true)
	s.player.SetCarried(s.player.Carried() + 1)
}

// DropItem puts down the first held item of a type at the player's location.
func (s *State) DropItem(kind entity.ItemType) (Drop, bool) {
	held := s.HeldOfType(kind)
	if len(held) == 0 {
		return Drop{Item: entity.NoItem}, false
	}
	return s.drop(held[0]), true
}

// DropAll puts down everything the player carries.
func (s *State) DropAll() []Drop {
	var drops []Drop
	for _, id := range s.Held() {
		drops = append(drops, s.drop(id))
	}
	return drops
}

// drop clears the item's hand before it leaves the inventory.
func (s *State) drop(id entity.ItemID) Drop {
	d := Drop{Item: id}
	if h, ok := s.player.HandHolding(id); ok {
		s.player.SetEquipped(h, entity.NoItem)
		d.Unequipped, d.Hand = true, h
	}
	it := &s.items[id]
	it.SetHeld(false)
	it.SetLocation(s.player.Location())
	s.player.SetCarried(s.player.Carried() - 1)
	return d
}

// EquipItem puts a held item of the given type in hand: the right hand if it
// is free, else the left. With both hands full the right-hand item moves to
// the left and the left-hand item goes back into the inventory.
func (s *State) EquipItem(kind entity.ItemType) Equip {
	held := s.HeldOfType(kind)
	if len(held) == 0 {
		return Equip{Result: EquipMissing, Item: entity.NoItem, Displaced: entity.NoItem}
	}
	for _, id := range held {
		if _, ok := s.player.HandHolding(id); !ok {
			return s.equip(id)
		}
	}
	h, _ := s.player.HandHolding(held[0])
	return Equip{Result: EquipAlready, Item: held[0], Hand: h, Displaced: entity.NoItem}
}

// EquipAny fills empty hands with unequipped held items in slot order.
func (s *State) EquipAny() []Equip {
	var out []Equip
	for _, id := range s.Held() {
		if s.player.EquippedCount() == entity.NumHands {
			break
		}
		if _, ok := s.player.HandHolding(id); ok {
			continue
		}
		out = append(out, s.equip(id))
	}
	return out
}

func (s *State) equip(id entity.ItemID) Equip {
	p := &s.player
	switch {
	case p.Equipped(entity.RightHand) == entity.NoItem:
		p.SetEquipped(entity.RightHand, id)
		return Equip{Result: EquipOK, Item: id, Hand: entity.RightHand, Displaced: entity.NoItem}
	case p.Equipped(entity.LeftHand) == entity.NoItem:
		p.SetEquipped(entity.LeftHand, id)
		return Equip{Result: EquipOK, Item: id, Hand: entity.LeftHand, Displaced: entity.NoItem}
	}
	displaced := p.Equipped(entity.LeftHand)
	right := p.Equipped(entity.RightHand)
	p.SetEquipped(entity.RightHand, entity.NoItem)
	p.SetEquipped(entity.LeftHand, right)
	p.SetEquipped(entity.RightHand, id)
	return Equip{Result: EquipSwapped, Item: id, Hand: entity.RightHand, Displaced: displaced}
}

// UseItem applies a held item to the player's location. Single-use items are
// dropped there and spent.
func (s *State) UseItem(id entity.ItemID) UseEffect {
	it := &s.items[id]
	kind := it.Type()
	if !kind.Usable() {
		return UseUnusable
	}

	here := s.player.Location()
	loc := &s.locations[here]
	it.SetLocation(here)

	effect := UseNoEffect
	switch kind {
	case entity.AlcoholBottle, entity.FuelCan:
		switch loc.Spill() {
		case world.SpillSoaked:
			effect = UseSpilled
		case world.SpillFedFire:
			effect = UseFedFire
		}
	case entity.FlareGun:
		if loc.Ignite() {
			effect = UseIgnited
		}
	case entity.FireExtinguisher:
		if loc.Extinguish() {
			effect = UseExtinguished
		} else {
			effect = UseRetardant
		}
	}

	if kind.SingleUse() {
		if it.Held() {
			s.drop(id)
		}
		it.MarkUsed()
	}
	return effect
}
