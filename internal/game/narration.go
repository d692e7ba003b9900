package game

import (
	"fmt"

	"github.com/samdwyer/zombiecruise/internal/entity"
	"github.com/samdwyer/zombiecruise/internal/gamedata"
	"github.com/samdwyer/zombiecruise/internal/world"
)

func (s *Session) locationDef(id world.LocationID) *gamedata.LocationDef {
	return s.tables.Locations.At(int(id))
}

func (s *Session) itemDef(kind entity.ItemType) *gamedata.ItemDef {
	return s.tables.Items.At(int(kind))
}

func (s *Session) characterDef(id entity.CharacterID) *gamedata.CharacterDef {
	return s.tables.Characters.At(int(id))
}

// itemName returns the item with its article, e.g. "a wrench".
func (s *Session) itemName(id entity.ItemID) string {
	return s.itemDef(s.state.Item(id).Type()).Name
}

// characterName is the zombie name once the character has fully turned.
func (s *Session) characterName(id entity.CharacterID) string {
	c := s.state.Character(id)
	def := s.characterDef(id)
	if c.HostileFlag() && !c.Infected() {
		return def.ZombieName()
	}
	return def.Name
}

// speak narrates a character's line.
func (s *Session) speak(name, line string) {
	s.say(fmt.Sprintf(" %s: %s", name, line))
}

func (s *Session) describeLocation(id world.LocationID) {
	def := s.locationDef(id)
	s.say(def.Banner())
	for _, p := range def.Description {
		s.say(p)
	}
}

// lookAround is the area look: the description if there is light to see by.
func (s *Session) lookAround() {
	here := s.state.Player().Location()
	if s.state.IsDark(here) {
		s.say("It's too dark here to see.")
		return
	}
	s.describeLocation(here)
}

// tellPrologue tells the next prologue passage and sets the scene for it.
func (s *Session) tellPrologue() {
	stage := s.prologue
	text := s.tables.Story.PrologueStage(stage)
	if text == "" {
		return
	}
	s.prologue++
	s.say(text)
	s.blank()
	s.state.stageScene(stage)
}

// notices describes the player's surroundings after a turn.
func (s *Session) notices() {
	here := s.state.Player().Location()
	loc := s.state.Location(here)
	dark := s.state.IsDark(here)

	s.blank()
	switch {
	case dark:
		s.say(s.locationDef(here).Banner())
		s.say("The lights are off and it is dark here.")
	case !loc.Visited():
		s.describeLocation(here)
		loc.MarkVisited()
	default:
		s.say(s.locationDef(here).Banner())
	}

	switch loc.Fire() {
	case world.FireFlammable:
		s.say("The area smells of flammable fumes.")
	case world.FireOnFire:
		switch t := loc.FireTimer(); {
		case t < 6:
			s.say("A large fire has started here.")
		case t < 13:
			s.say("This area is engulfed in flames and smoke.")
		default:
			s.say("The fire in this area is now more smoke than fire.")
		}
	case world.FireBurnt:
		if !dark {
			s.say("This area has been ravaged by fire, and is thoroughly burnt.")
		}
	}

	if dark {
		return
	}
	for _, id := range s.state.ItemsAt(here) {
		it := s.state.Item(id)
		def := s.itemDef(it.Type())
		if it.Used() && def.Spent != "" {
			s.say(def.Spent)
			continue
		}
		s.say(fmt.Sprintf("There is %s here.", def.Name))
	}
	for _, id := range s.state.CharactersAt(here, func(*entity.Character) bool { return true }) {
		if s.state.Character(id).Alive() {
			s.say(fmt.Sprintf("%s is here.", s.characterName(id)))
		} else {
			s.say(fmt.Sprintf("The corpse of %s lies here.", s.characterName(id)))
		}
	}
}

// inventory lists what the player carries and holds.
func (s *Session) inventory() {
	held := s.state.Held()
	if len(held) == 0 {
		s.say("You have nothing of use.")
	} else {
		s.say("You have")
		for _, id := range held {
			s.say("  " + s.itemName(id))
		}
	}
	p := s.state.Player()
	for _, h := range []entity.Hand{entity.RightHand, entity.LeftHand} {
		if id := p.Equipped(h); id != entity.NoItem {
			s.say(fmt.Sprintf("You hold %s in your %v.", s.itemName(id), h))
		}
	}
}

// selfAssessment describes the player's health.
func (s *Session) selfAssessment() {
	switch s.state.Player().Health() {
	case 0:
		s.say("You are dying.")
	case 1:
		s.say("You are in very rough shape.")
	case 2:
		s.say("You are hurt, but still okay.")
	default:
		s.say("You are looking good.")
	}
}
