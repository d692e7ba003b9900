package game

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/samdwyer/zombiecruise/internal/entity"
	"github.com/samdwyer/zombiecruise/internal/world"
)

// maxWords is the most words of a command that are read.
const maxWords = 5

// commandHandler runs one verb and reports whether it took a turn.
type commandHandler func(s *Session, ctx context.Context, words []string) bool

type commandEntry struct {
	verbs   []string
	handler commandHandler
	debug   bool // Only available with Config.DebugCommands
}

var commands = []commandEntry{
	{verbs: []string{"quit"}, handler: (*Session).cmdQuit},
	{verbs: []string{"help", "h", "?"}, handler: (*Session).cmdHelp},
	{verbs: []string{"wait", "..."}, handler: (*Session).cmdWait},
	{verbs: []string{"look"}, handler: (*Session).cmdLook},
	{verbs: []string{"inventory", "inv", "i"}, handler: (*Session).cmdInventory},
	{verbs: []string{"take"}, handler: (*Session).cmdTake},
	{verbs: []string{"drop"}, handler: (*Session).cmdDrop},
	{verbs: []string{"equip"}, handler: (*Session).cmdEquip},
	{verbs: []string{"attack"}, handler: (*Session).cmdAttack},
	{verbs: []string{"use"}, handler: (*Session).cmdUse},
	{verbs: []string{"talk"}, handler: (*Session).cmdTalk},
	{verbs: []string{"go", "move", "walk", "run"}, handler: (*Session).cmdGo},
	{verbs: []string{"leave", "exit"}, handler: (*Session).cmdLeave},
	{verbs: []string{"debug"}, handler: (*Session).cmdDebug, debug: true},
	{verbs: []string{"cheat"}, handler: (*Session).cmdCheat, debug: true},
}

// tokenize case-folds a line and splits it into at most maxWords words.
func tokenize(raw string) []string {
	words := strings.Fields(cases.Fold().String(raw))
	if len(words) > maxWords {
		words = words[:maxWords]
	}
	return words
}

// word returns the i'th word, or "" past the end.
func word(words []string, i int) string {
	if i < len(words) {
		return words[i]
	}
	return ""
}

// rest returns the words from i on.
func rest(words []string, i int) []string {
	if i < len(words) {
		return words[i:]
	}
	return nil
}

func (s *Session) dispatch(ctx context.Context, words []string) bool {
	verb := word(words, 0)
	for _, c := range commands {
		if c.debug && !s.cfg.DebugCommands {
			continue
		}
		if slices.Contains(c.verbs, verb) {
			return c.handler(s, ctx, words)
		}
	}
	s.say("It's not clear what you mean to do. (Try 'help' for a list of commands)")
	return false
}

// resolveItem maps nouns to an item type.
func (s *Session) resolveItem(nouns []string) (entity.ItemType, bool) {
	i, ok := s.tables.Items.Resolve(nouns)
	return entity.ItemType(i), ok
}

// resolveCharacter maps nouns to a member of the cast.
func (s *Session) resolveCharacter(nouns []string) (entity.CharacterID, bool) {
	i, ok := s.tables.Characters.Resolve(nouns)
	return entity.CharacterID(i), ok
}

// resolveLocation maps nouns to a location.
func (s *Session) resolveLocation(nouns []string) (world.LocationID, bool) {
	i, ok := s.tables.Locations.Resolve(nouns)
	return world.LocationID(i), ok
}

func isSelf(nouns []string) bool {
	w := word(nouns, 0)
	return w == "me" || w == "myself"
}

func isEverything(nouns []string, extra ...string) bool {
	w := word(nouns, 0)
	return w == "all" || w == "everything" || slices.Contains(extra, w)
}

func (s *Session) cmdQuit(_ context.Context, _ []string) bool {
	s.state.End()
	return false
}

func (s *Session) cmdHelp(_ context.Context, _ []string) bool {
	s.help()
	return false
}

func (s *Session) cmdWait(_ context.Context, _ []string) bool {
	s.say("...")
	return true
}

func (s *Session) cmdLook(_ context.Context, words []string) bool {
	if word(words, 1) != "at" {
		s.lookAround()
		return true
	}

	nouns := rest(words, 2)
	switch word(nouns, 0) {
	case "me", "myself":
		s.selfAssessment()
		return true
	case "room", "area", "around":
		s.lookAround()
		return true
	}

	st := s.state
	here := st.Player().Location()
	if id, ok := s.resolveCharacter(nouns); ok {
		c := st.Character(id)
		if c.Location() != here {
			s.say("That person is not here.")
			return false
		}
		if c.IsEligible() {
			s.say(s.characterDef(id).Description)
		} else {
			s.say(s.characterName(id) + " is not looking well.")
		}
		return true
	}
	if kind, ok := s.resolveItem(nouns); ok {
		if len(st.HeldOfType(kind)) == 0 && !s.itemLiesHere(kind) {
			s.say("You do not see that item.")
			return false
		}
		s.say(s.itemDef(kind).Description)
		return true
	}
	if id, ok := s.resolveLocation(nouns); ok {
		if id != here {
			s.say("You can only see the place you are in.")
			return false
		}
		s.lookAround()
		return true
	}
	s.say("You do not see that here.")
	return false
}

func (s *Session) itemLiesHere(kind entity.ItemType) bool {
	for _, id := range s.state.ItemsAt(s.state.Player().Location()) {
		if s.state.Item(id).Type() == kind {
			return true
		}
	}
	return false
}

func (s *Session) cmdInventory(_ context.Context, _ []string) bool {
	s.inventory()
	return true
}

func (s *Session) cmdTake(_ context.Context, words []string) bool {
	nouns := rest(words, 1)
	if kind, ok := s.resolveItem(nouns); ok {
		name := s.itemDef(kind).Name
		_, result := s.state.TakeItem(kind)
		switch result {
		case Taken:
			s.say("You take " + name)
			return true
		case TakeAlreadyHeld:
			s.say("You already have " + name + ".")
		case TakeFull:
			s.say(fmt.Sprintf("You hold too much, so %s is not taken.", name))
		case TakeSpent:
			s.say("That item is used and cannot be taken.")
		default:
			s.say("That item is not here.")
		}
		return false
	}
	if isEverything(nouns) {
		taken, refused := s.state.TakeAll()
		for _, id := range taken {
			s.say("You take " + s.itemName(id))
		}
		for _, id := range refused {
			s.say(fmt.Sprintf("You hold too much, so %s is not taken.", s.itemName(id)))
		}
		if len(taken) == 0 && len(refused) == 0 {
			s.say("There is nothing here to take.")
		}
		return true
	}
	s.say("It is not clear what item you want to take from here.")
	s.say("(Name the item you see here or try 'take all' to take everything)")
	return false
}

func (s *Session) narrateDrop(d Drop) {
	name := s.itemName(d.Item)
	if d.Unequipped {
		s.say(fmt.Sprintf("Now %s is no longer equipped in your %v.", name, d.Hand))
	}
	s.say("You drop " + name)
}

func (s *Session) cmdDrop(_ context.Context, words []string) bool {
	nouns := rest(words, 1)
	if kind, ok := s.resolveItem(nouns); ok {
		d, ok := s.state.DropItem(kind)
		if !ok {
			s.say("You do not have that item.")
			return false
		}
		s.narrateDrop(d)
		return true
	}
	if isEverything(nouns) {
		drops := s.state.DropAll()
		for _, d := range drops {
			s.narrateDrop(d)
		}
		if len(drops) == 0 {
			s.say("You have nothing to drop.")
		}
		return true
	}
	s.say("It is not clear what item in your inventory you want to drop.")
	s.say("(Name the item you have taken or try 'drop all' to drop everything)")
	return false
}

func (s *Session) narrateEquip(e Equip) {
	name := s.itemName(e.Item)
	switch e.Result {
	case EquipOK:
		s.say(fmt.Sprintf("Now %s is equipped in your %v.", name, e.Hand))
	case EquipSwapped:
		left := s.state.Player().Equipped(entity.LeftHand)
		s.say(fmt.Sprintf("You keep %s, but ...", s.itemName(e.Displaced)))
		s.say(fmt.Sprintf("In your right hand, you now hold %s ...", name))
		s.say(fmt.Sprintf("and %s is equipped in your left hand.", s.itemName(left)))
	case EquipAlready:
		s.say(fmt.Sprintf("You already have that item equipped in your %v.", e.Hand))
	}
}

func (s *Session) cmdEquip(_ context.Context, words []string) bool {
	nouns := rest(words, 1)
	if kind, ok := s.resolveItem(nouns); ok {
		e := s.state.EquipItem(kind)
		if e.Result == EquipMissing {
			s.say("You do not have that item.")
			return true
		}
		s.narrateEquip(e)
		return true
	}
	if isEverything(nouns, "any", "anything") {
		equips := s.state.EquipAny()
		for _, e := range equips {
			s.narrateEquip(e)
		}
		if len(equips) == 0 {
			s.say("You have nothing more to equip.")
		}
		return true
	}
	s.say("It is not clear what item you want to equip in your hand.")
	s.say("(Name the item you have taken to equip or try 'equip any' to grab anything)")
	return false
}

func (s *Session) cmdAttack(ctx context.Context, _ []string) bool {
	return s.attack(ctx)
}

// narrateEffect describes what an item did to the location.
func (s *Session) narrateEffect(e UseEffect) {
	switch e {
	case UseSpilled:
		s.say(" ... flammable liquid spills everywhere.")
	case UseFedFire:
		s.say(" ... and fuel is added to the fire.")
	case UseIgnited:
		s.say(" ... and the area bursts into flames.")
	case UseExtinguished:
		s.say("With some work, the fire is extinguished.")
	case UseRetardant:
		s.say("White fire retardant coats the area, and slowly disappears.")
	}
}

func (s *Session) cmdUse(_ context.Context, words []string) bool {
	st := s.state
	nouns := rest(words, 1)
	kind, resolved := s.resolveItem(nouns)

	if resolved {
		if held := st.HeldOfType(kind); len(held) > 0 {
			id := held[0]
			name := s.itemName(id)
			effect := st.UseItem(id)
			if effect == UseUnusable {
				s.say("There is nothing this item can do.")
				return false
			}
			s.say("You use " + name)
			if effect == UseNoEffect {
				s.say(s.noEffectLine(kind))
			}
			s.narrateEffect(effect)
			return true
		}
	}

	switch {
	case word(nouns, 0) == "radio":
		return s.useRadio()
	case slices.ContainsFunc(nouns, func(w string) bool { return w == "first" || w == "aid" || w == "kit" }):
		return s.useFirstAid()
	case word(nouns, 0) == "lights" || word(nouns, 0) == "light":
		return s.useLights()
	case resolved:
		s.say("You do not have that item.")
		return false
	}
	s.say("It is not clear what you want to use.")
	s.say("(Name the item you have taken or the usable feature you see here)")
	return false
}

func (s *Session) noEffectLine(kind entity.ItemType) string {
	switch kind {
	case entity.FlareGun:
		return " ... and the flare arcs away over the water."
	case entity.SpearGun:
		return " ... and the spear clatters away, lost."
	default:
		return " ... but the charred wreckage here will not burn again."
	}
}

func (s *Session) useRadio() bool {
	st := s.state
	if !st.PlayerHere(world.Bridge) {
		s.say("There is no radio here. (Do you think there might be one on the bridge?)")
		return false
	}
	if st.radioUsed {
		s.say("You have already called for help and the coast guard is on the way.")
		return false
	}

	emergency := len(st.Characters(func(c *entity.Character) bool {
		return !c.Alive() || c.HostileFlag()
	})) > 0
	if !emergency {
		s.say(s.tables.Story.Radio.Reserved)
		return true
	}

	st.radioUsed = true
	if len(st.Characters(func(c *entity.Character) bool { return c.Alive() && !c.HostileFlag() })) > 0 {
		s.say(s.tables.Story.Radio.MaydayWithSurvivors)
	} else {
		s.say(s.tables.Story.Radio.MaydayAlone)
	}
	// The call itself takes no turn; the coast guard answers on the next one.
	return false
}

func (s *Session) useFirstAid() bool {
	st := s.state
	if !st.PlayerHere(world.Bridge) && !st.PlayerHere(world.Kitchen) {
		s.say("There is no first aid kit here. (There is one on the bridge, and another in the kitchen)")
		return false
	}
	if st.Player().Heal() {
		s.say("You're able to heal your wounds somewhat, and you feel better.")
	} else {
		s.say("After rummaging through the first aid kit, you decide you're feeling fine.")
	}
	return true
}

func (s *Session) useLights() bool {
	st := s.state
	here := st.Player().Location()
	if here.Outdoor() {
		s.say("There are no lights to switch out here on the open deck.")
		return false
	}
	loc := st.Location(here)
	if loc.Fire() == world.FireBurnt {
		s.say("The wiring here has burnt out, and the lights do not respond.")
		return true
	}
	loc.SetLights(!loc.LightsOn())
	if loc.LightsOn() {
		s.say("You switch the lights on.")
	} else {
		s.say("You switch the lights off.")
	}
	return true
}

func (s *Session) cmdTalk(_ context.Context, words []string) bool {
	if word(words, 1) != "to" {
		s.say("No one notices you are talking to yourself.")
		return true
	}
	nouns := rest(words, 2)
	if id, ok := s.resolveCharacter(nouns); ok {
		c := s.state.Character(id)
		switch {
		case c.Location() != s.state.Player().Location():
			s.say("There is no one here by that name.")
			return false
		case !c.IsEligible():
			s.say(s.characterName(id) + " is in no state to talk.")
			return false
		}
		def := s.characterDef(id)
		s.speak(def.Name, def.Responses[s.rng.Intn(len(def.Responses))])
		return true
	}
	if isSelf(nouns) {
		s.say("No one notices you are talking to yourself.")
		return true
	}
	s.say("There is no one here by that name.")
	return false
}

func (s *Session) goHint() {
	s.say("Try the command words 'go to' followed by an area, to move around.")
	s.say("(or try 'help' for a list of commands)")
	s.describeLocation(s.state.Player().Location())
}

func (s *Session) cmdGo(_ context.Context, words []string) bool {
	nouns := rest(words, 1)
	if word(nouns, 0) == "to" {
		nouns = rest(nouns, 1)
	}
	if len(nouns) == 0 {
		s.goHint()
		return false
	}

	target, ok := s.resolveLocation(nouns)
	if !ok {
		s.say("That is not a place you can go to. (Try 'look' to see the exits from here)")
		return false
	}
	p := s.state.Player()
	if !world.Adjacent(p.Location(), target) {
		s.say("You cannot get there from here.")
		s.describeLocation(p.Location())
		return true
	}
	p.SetLocation(target)
	return true
}

func (s *Session) cmdLeave(_ context.Context, _ []string) bool {
	s.goHint()
	return false
}

func (s *Session) cmdDebug(_ context.Context, words []string) bool {
	for _, line := range s.state.DebugDump(word(words, 1)) {
		s.say(line)
	}
	return false
}

func (s *Session) cmdCheat(_ context.Context, words []string) bool {
	p := s.state.Player()
	switch word(words, 1) {
	case "health", "heal":
		if p.Health() < entity.MaxHealth {
			p.SetHealth(entity.MaxHealth)
			s.say("-cheat- You feel much better.")
		}
	case "teleport", "tport":
		if loc, ok := s.resolveLocation(rest(words, 2)); ok && loc != p.Location() {
			p.SetLocation(loc)
			s.say("-cheat- You have been transported to a new location.")
		}
	}
	return false
}
