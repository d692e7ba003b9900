package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/zombiecruise/internal/chance"
	"github.com/samdwyer/zombiecruise/internal/combat"
	"github.com/samdwyer/zombiecruise/internal/entity"
)

const combatHint = "[HINT] Equip yourself with items you take to be more effective in combat."

// weapon returns what the player holds in a hand, or nil.
func (s *Session) weapon(h entity.Hand) *combat.Weapon {
	id := s.state.Player().Equipped(h)
	if id == entity.NoItem {
		return nil
	}
	return &combat.Weapon{Item: id, Type: s.state.Item(id).Type(), Hand: h}
}

// attack swings at one zombie in the player's location. Single-use weapons are
// spent by the attempt: always on a hit, and on a miss when the balance table
// says so.
func (s *Session) attack(ctx context.Context) bool {
	_, span := s.tracer.Start(ctx, "combat.player_attack")
	defer span.End()

	st := s.state
	targets := st.CharactersAt(st.Player().Location(), isHostile)
	if len(targets) == 0 {
		s.say("There is no threat to attack here.")
		return false
	}
	target := chance.Pick(s.rng, targets)
	name := s.characterName(target)

	result := s.resolver.PlayerAttack(s.weapon(entity.RightHand), s.weapon(entity.LeftHand), st.Character(target))
	span.SetAttributes(
		attribute.String("combat.target", target.String()),
		attribute.Int("combat.roll", result.Roll),
		attribute.Bool("combat.armed", result.Armed()),
		attribute.Bool("combat.hit", result.Hit),
		attribute.Int("combat.damage", result.Damage),
		attribute.Bool("combat.killed", result.Killed),
	)

	if !result.Armed() {
		s.say("Your unarmed attack is ineffective against the undead.")
		s.say(combatHint)
		return true
	}

	w := result.Weapon
	span.SetAttributes(attribute.String("combat.weapon", w.Type.String()))
	weaponName := s.itemName(w.Item)
	switch {
	case result.Killed:
		s.say(fmt.Sprintf(" - %s is killed with %s -", name, weaponName))
		if st.rearmRelease() {
			span.AddEvent("release rearmed")
		}
	case result.Hit:
		s.say(fmt.Sprintf("You hit %s with %s for %d damage.", name, weaponName, result.Damage))
	default:
		s.say(fmt.Sprintf("Your attempt to hit %s missed.", name))
	}

	if w.Type.SingleUse() && (result.Hit || s.balance.Combat.ConsumeWeaponOnMiss) {
		s.narrateEffect(st.UseItem(w.Item))
	}
	return true
}

// rearmRelease clears the release once no zombie or infection is left while
// someone remains to be infected, so the countdown runs again.
func (s *State) rearmRelease() bool {
	if !s.released {
		return false
	}
	threats := s.Characters(func(c *entity.Character) bool {
		return c.Alive() && (c.Infected() || c.HostileFlag())
	})
	if len(threats) > 0 || len(s.Characters(isEligible)) == 0 {
		return false
	}
	s.released = false
	return true
}
