// Package combat resolves blows between the player and the zombies.
package combat

import (
	"github.com/samdwyer/zombiecruise/internal/chance"
	"github.com/samdwyer/zombiecruise/internal/entity"
)

// Combatant is anything a blow can land on.
// entity.Character implements this interface.
type Combatant interface {
	Alive() bool
	Health() int
	TakeDamage(amount int) bool // Reports whether the blow killed
}

// Weapon is an item in one of the player's hands.
type Weapon struct {
	Item entity.ItemID
	Type entity.ItemType
	Hand entity.Hand
}

// Rules are the dice the resolver rolls.
type Rules struct {
	HitBand     int // Rolls below this land
	AttackSides int // Sides of the attack die
}

// DefaultRules is a 3-in-4 hit chance.
var DefaultRules = Rules{HitBand: 3, AttackSides: 4}

// AttackResult is the outcome of one player attack.
type AttackResult struct {
	Roll   int
	Weapon *Weapon // nil when unarmed
	Hit    bool
	Damage int
	Killed bool
}

// Armed reports whether the attack was made with a weapon.
func (a AttackResult) Armed() bool { return a.Weapon != nil }

// Resolver rolls and applies combat outcomes.
type Resolver struct {
	rng   chance.Roller
	rules Rules
}

// NewResolver creates a resolver drawing from rng.
func NewResolver(rng chance.Roller, rules Rules) *Resolver {
	return &Resolver{rng: rng, rules: rules}
}

// PlayerAttack rolls the attack die, picks the weapon and applies the blow to
// target. With both hands full a coin flip picks the right hand or the left;
// with neither the attack always fails.
func (r *Resolver) PlayerAttack(right, left *Weapon, target Combatant) AttackResult {
	result := AttackResult{Roll: r.rng.Intn(r.rules.AttackSides)}

	switch {
	case right != nil && left != nil:
		if chance.CoinFlip(r.rng) {
			result.Weapon = right
		} else {
			result.Weapon = left
		}
	case right != nil:
		result.Weapon = right
	case left != nil:
		result.Weapon = left
	}
	if result.Weapon == nil {
		return result
	}

	damage := result.Weapon.Type.Damage()
	if result.Roll >= r.rules.HitBand || damage <= 0 || !target.Alive() {
		return result
	}
	result.Hit = true
	result.Damage = damage
	result.Killed = target.TakeDamage(damage)
	return result
}

// HostileHitsPlayer rolls a zombie's attack on the player. The lowest face
// always misses and each equipped item blocks one more.
func (r *Resolver) HostileHitsPlayer(equipped int) bool {
	roll := r.rng.Intn(r.rules.AttackSides)
	return roll >= 1+equipped
}
