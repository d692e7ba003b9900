package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/zombiecruise/internal/chance"
	"github.com/samdwyer/zombiecruise/internal/entity"
	"github.com/samdwyer/zombiecruise/internal/gamedata"
	"github.com/samdwyer/zombiecruise/internal/world"
)

// playerVictim stands for the player in a hostile's list of victims.
const playerVictim entity.CharacterID = -1

// phase is one step of a turn.
type phase struct {
	name string
	run  func(*Session)
}

// turnPhases run in this order every turn. Notices come after the story and
// radio so the player reads the scene they are now in.
var turnPhases = []phase{
	{"story", (*Session).progressStory},
	{"rescue", (*Session).progressRescue},
	{"notices", (*Session).notices},
	{"fire_spread", (*Session).spreadFire},
	{"fire_damage", (*Session).burn},
	{"chatter", (*Session).chatter},
	{"hostile_attacks", (*Session).hostileAttacks},
	{"hostile_moves", (*Session).hostileMoves},
	{"infection", (*Session).progressInfection},
	{"character_moves", (*Session).characterMoves},
}

// AdvanceTurn runs every phase of one turn. Once the game is over no phase
// runs, and a phase that ends the game stops the rest.
func (s *Session) AdvanceTurn(ctx context.Context) {
	_, span := s.tracer.Start(ctx, "turn.advance")
	defer span.End()

	if s.state.Over() {
		return
	}
	s.turns++
	for _, p := range turnPhases {
		p.run(s)
		if s.state.Over() {
			span.AddEvent("game over", trace.WithAttributes(attribute.String("phase", p.name)))
			break
		}
	}

	span.SetAttributes(
		attribute.Int("turn.number", s.turns),
		attribute.Bool("game.over", s.state.Over()),
		attribute.Bool("game.released", s.state.Released()),
		attribute.Bool("game.sos", s.state.SOSCalled()),
		attribute.Int("characters.hostile", len(s.state.Characters(isHostile))),
		attribute.Int("player.health", s.state.Player().Health()),
	)
}

// stageScene places the cast for a prologue stage.
func (s *State) stageScene(stage int) {
	switch stage {
	case 0:
		s.player.SetLocation(world.ForeDeck)
		for i := range s.characters {
			s.characters[i].SetLocation(world.ForeDeck)
		}
	case 1:
		s.player.SetLocation(world.Ballroom)
		for i := range s.characters {
			loc := world.Ballroom
			switch entity.CharacterID(i) {
			case entity.FirstMatePole:
				loc = world.Bridge
			case entity.ChefRotisserie:
				loc = world.Kitchen
			case entity.Phil:
				loc = world.Lounge
			}
			s.characters[i].SetLocation(loc)
		}
	case 2:
		s.player.SetLocation(world.Lounge)
		for i := range s.characters {
			loc := world.Lounge
			switch entity.CharacterID(i) {
			case entity.CaptainSwell, entity.FirstMatePole:
				loc = world.Bridge
			case entity.ChefRotisserie:
				loc = world.Kitchen
			}
			s.characters[i].SetLocation(loc)
		}
	}
}

// progressStory counts down to the next release and, when the count is
// reached, infects one eligible character. With nobody eligible the release
// waits.
func (s *Session) progressStory() {
	st := s.state
	if st.released {
		return
	}
	if st.countdown < s.balance.Release.Countdown {
		st.setCountdown(st.countdown + 1)
		if st.countdown == s.prologue {
			s.tellPrologue()
		}
		return
	}
	eligible := st.Characters(isEligible)
	if len(eligible) == 0 {
		return
	}
	st.InfectCharacter(chance.Pick(s.rng, eligible))
	st.released = true
	st.setCountdown(s.balance.Release.Rearm)
}

// progressRescue walks the radio call through acknowledgement, the wait for
// the coast guard, their arrival and, one turn later, the end. The clock only
// runs while an outbreak is under way.
func (s *Session) progressRescue() {
	st := s.state
	if !st.released || !st.radioUsed {
		return
	}
	switch {
	case !st.sosCalled:
		st.sosCalled = true
		if st.PlayerHere(world.Bridge) {
			s.blank()
			s.say(s.tables.Story.Radio.Acknowledged)
		}
	case st.turnsSinceSOS < s.balance.Rescue.Turns:
		st.setTurnsSinceSOS(st.turnsSinceSOS + 1)
	case !st.rescueArrived:
		st.rescueArrived = true
		s.blank()
		s.say(s.tables.Story.RescueArrived)
	default:
		st.End()
		s.blank()
		s.say(s.tables.Story.Ending)
	}
}

// spreadFire ages every fire and lets a mature one jump through an exit into
// a flammable neighbour.
func (s *Session) spreadFire() {
	st := s.state
	odds := s.balance.Fire
	for _, id := range world.All() {
		loc := st.Location(id)
		if !loc.Burning() {
			continue
		}
		loc.AdvanceFire()
		spread := chance.OneIn(s.rng, odds.SpreadOdds)
		if !spread || !loc.Burning() || loc.FireTimer() <= odds.SpreadAfter {
			continue
		}
		target := s.randomExit(id)
		if st.Location(target).Ignite() && st.PlayerHere(target) {
			s.say("Fire has spread into this room.")
		}
	}
}

// burn hurts everyone inside a fire at its height and may knock out the lights.
func (s *Session) burn() {
	st := s.state
	odds := s.balance.Fire
	for _, id := range world.All() {
		loc := st.Location(id)
		t := loc.FireTimer()
		if !loc.Burning() || t <= odds.DamageAfter || t >= odds.DamageUntil {
			continue
		}
		if t > odds.LightsAfter && chance.OneIn(s.rng, odds.LightsOdds) {
			loc.SetLights(false)
		}

		present := st.PlayerHere(id)
		if present && st.player.Alive() {
			s.blank()
			if st.player.Hurt() {
				s.say(" - You have died in the flames -")
				st.End()
			} else {
				s.say("You have been burned by the flames.")
			}
		}

		for _, cid := range st.CharactersAt(id, isAlive) {
			c := st.Character(cid)
			name := s.characterName(cid)
			hostile := c.IsHostile()
			if c.TakeDamage(1) {
				if present {
					s.say(name + " is killed by fire.")
				}
			} else if present && !hostile {
				s.speak(name, s.characterDef(cid).Exclamation)
			}
		}
	}
}

// chatter lets zombies near the player mumble and two people near the player
// trade a question and an answer.
func (s *Session) chatter() {
	st := s.state
	here := st.player.Location()

	first := true
	for _, id := range st.CharactersAt(here, isHostile) {
		if !chance.CoinFlip(s.rng) {
			continue
		}
		if first {
			s.blank()
			first = false
		}
		s.speak(s.characterName(id), s.characterDef(id).Garbled)
	}

	group := st.CharactersAt(here, isEligible)
	if len(group) < 2 {
		return
	}
	i := s.rng.Intn(len(group))
	j := s.rng.Intn(len(group) - 1)
	if j >= i {
		j++
	}
	asker, replier := group[i], group[j]
	s.blank()
	s.speak(s.characterName(asker), s.characterDef(asker).Question)
	s.speak(s.characterName(replier), chance.Pick(s.rng, s.characterDef(replier).Answers[:]))
}

// hostileAttacks has every zombie attack one victim where it stands.
func (s *Session) hostileAttacks() {
	st := s.state
	for _, zid := range st.Characters(isHostile) {
		here := st.Character(zid).Location()

		var victims []entity.CharacterID
		if st.PlayerHere(here) && st.player.Alive() {
			victims = append(victims, playerVictim)
		}
		victims = append(victims, st.CharactersAt(here, isEligible)...)
		if len(victims) == 0 {
			continue
		}

		victim := chance.Pick(s.rng, victims)
		if victim == playerVictim {
			s.attackPlayer(zid)
			if st.Over() {
				return
			}
			continue
		}
		st.Character(victim).Bite()
		if st.PlayerHere(here) {
			s.speak(s.characterName(victim), s.characterDef(victim).Exclamation)
		}
	}
}

func (s *Session) attackPlayer(zid entity.CharacterID) {
	st := s.state
	line := fmt.Sprintf("%s attacks you", s.characterName(zid))
	if !s.resolver.HostileHitsPlayer(st.player.EquippedCount()) {
		s.say(line + " and misses.")
		return
	}
	s.say(line + ".")
	if st.player.Hurt() {
		s.blank()
		s.say(" - YOU HAVE TURNED ZOMBIE -")
		st.End()
		return
	}
	s.say(" - YOU ARE HURT -")
}

// hostileMoves sends zombies with nobody to attack through a random exit.
// Under MoveFirst only the first zombie to move does so.
func (s *Session) hostileMoves() {
	st := s.state
	for _, zid := range st.Characters(isHostile) {
		z := st.Character(zid)
		here := z.Location()
		if st.PlayerHere(here) || len(st.CharactersAt(here, isEligible)) > 0 {
			z.SetWaiting(true)
			continue
		}

		target := s.randomExit(here)
		z.SetWaiting(false)
		z.SetLocation(target)
		if st.PlayerHere(target) && !st.IsDark(target) {
			s.blank()
			s.say(s.characterName(zid) + " arrives here.")
		}
		if s.balance.Hostiles.Movement == gamedata.MoveFirst {
			return
		}
	}
}

// progressInfection moves the infected one step on: they rest, then turn.
func (s *Session) progressInfection() {
	st := s.state
	for _, id := range st.Characters(isAlive) {
		c := st.Character(id)
		present := st.PlayerHere(c.Location())
		def := s.characterDef(id)
		switch c.Lifecycle() {
		case entity.Infected:
			if present {
				s.speak(def.Name, def.Resting)
			}
		case entity.Turning:
			if present {
				s.say(def.Name + " has turned zombie.")
			}
		default:
			continue
		}
		c.AdvanceInfection()
	}
}

// characterMoves moves the healthy cast. They flee fire and zombies, stay with
// the player, and otherwise drift: alone they may wander, in company one may
// split off or the group may leave together through a shared exit.
func (s *Session) characterMoves() {
	st := s.state
	odds := s.balance.Characters
	groupExit := chance.OneIn(s.rng, odds.GroupExitOdds)
	groupExitIndex := s.rng.Intn(world.ExitsPerLocation)

	for i := range st.characters {
		id := entity.CharacterID(i)
		c := &st.characters[i]
		switch c.Lifecycle() {
		case entity.Infected, entity.Turning:
			c.SetWaiting(true)
			continue
		case entity.Healthy:
		default:
			continue
		}

		here := c.Location()
		target := here
		company := false
		for _, other := range st.CharactersAt(here, isAlive) {
			if other != id && !st.Character(other).IsHostile() {
				company = true
			}
		}

		switch {
		case st.Location(here).Burning() || len(st.CharactersAt(here, isHostile)) > 0:
			target = s.randomExit(here)
		case st.PlayerHere(here):
		case !company:
			if chance.OneIn(s.rng, odds.WanderOdds) {
				target = s.randomExit(here)
			}
		default:
			if chance.OneIn(s.rng, odds.SplitOdds) {
				target = s.randomExit(here)
			} else if groupExit {
				target = world.ExitTarget(here, groupExitIndex)
			}
		}

		c.SetWaiting(target == here)
		if target == here {
			continue
		}
		playerAt := st.player.Location()
		visible := !st.IsDark(playerAt)
		if here == playerAt && visible {
			s.say(s.characterName(id) + " leaves.")
		}
		c.SetLocation(target)
		if target == playerAt && visible {
			s.say(s.characterName(id) + " arrives here.")
		}
	}
}

func (s *Session) randomExit(from world.LocationID) world.LocationID {
	return world.ExitTarget(from, s.rng.Intn(world.ExitsPerLocation))
}
