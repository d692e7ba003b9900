// Package world provides the ship's fixed deck plan and per-location state.
package world

// LocationID identifies one of the eight fixed locations aboard.
type LocationID int

const (
	Bridge LocationID = iota
	ForeDeck
	AftDeck
	Ballroom
	Lounge
	Kitchen
	StoreRoom
	EngineRoom
)

const (
	// NumLocations is the number of locations aboard.
	NumLocations = 8
	// ExitsPerLocation is the number of exits every location has.
	ExitsPerLocation = 3
)

//	      +-----+
//	      |  0  |
//	+-----+-----+-----+
//	|  2 | 4 | 3 | 1 /
//	 \---+---+---+--/
//	 x\  7 | 5 | 6 /
//	   +---+---+--+
var exits = [NumLocations][ExitsPerLocation]LocationID{
	Bridge:     {ForeDeck, AftDeck, Lounge},
	ForeDeck:   {Bridge, Ballroom, StoreRoom},
	AftDeck:    {Bridge, Lounge, EngineRoom},
	Ballroom:   {ForeDeck, Lounge, Kitchen},
	Lounge:     {Bridge, AftDeck, Ballroom},
	Kitchen:    {Ballroom, StoreRoom, EngineRoom},
	StoreRoom:  {ForeDeck, Kitchen, EngineRoom},
	EngineRoom: {AftDeck, Kitchen, StoreRoom},
}

// ExitTarget returns the location reached through the given exit.
// The exit index is taken modulo ExitsPerLocation.
func ExitTarget(from LocationID, exitIndex int) LocationID {
	i := exitIndex % ExitsPerLocation
	if i < 0 {
		i += ExitsPerLocation
	}
	return exits[from][i]
}

// Exits returns the three neighbours of a location in exit order.
func Exits(from LocationID) [ExitsPerLocation]LocationID {
	return exits[from]
}

// Adjacent reports whether an exit leads from one location to the other.
func Adjacent(from, to LocationID) bool {
	for _, e := range exits[from] {
		if e == to {
			return true
		}
	}
	return false
}

// All returns every location in identifier order.
func All() []LocationID {
	ids := make([]LocationID, NumLocations)
	for i := range ids {
		ids[i] = LocationID(i)
	}
	return ids
}

// Valid reports whether the identifier names a location.
func (id LocationID) Valid() bool {
	return id >= 0 && id < NumLocations
}

// Outdoor reports whether the location is open deck, which is never dark.
func (id LocationID) Outdoor() bool {
	return id == ForeDeck || id == AftDeck
}

// String returns the location's identifier name.
func (id LocationID) String() string {
	switch id {
	case Bridge:
		return "bridge"
	case ForeDeck:
		return "fore_deck"
	case AftDeck:
		return "aft_deck"
	case Ballroom:
		return "ballroom"
	case Lounge:
		return "lounge"
	case Kitchen:
		return "kitchen"
	case StoreRoom:
		return "store_room"
	case EngineRoom:
		return "engine_room"
	default:
		return "unknown"
	}
}
