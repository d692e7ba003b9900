package gamedata

import (
	"errors"
	"fmt"
	"os"
)

// HostileMovement selects how many hostiles may move in one turn.
type HostileMovement string

const (
	// MoveFirst stops after the first hostile that moves.
	MoveFirst HostileMovement = "first"
	// MoveAll moves every hostile that is free to.
	MoveAll HostileMovement = "all"
)

// Balance is the pacing and odds table. Odds fields are "one in N".
type Balance struct {
	Release struct {
		Countdown int `yaml:"countdown"` // Turns before the first infection
		Rearm     int `yaml:"rearm"`     // Countdown value after each release
	} `yaml:"release"`
	Rescue struct {
		Turns int `yaml:"turns"` // Turns after the SOS before the coast guard arrives
	} `yaml:"rescue"`
	Fire struct {
		SpreadOdds  int `yaml:"spread_odds"`
		SpreadAfter int `yaml:"spread_after"` // Spread only when the timer exceeds this
		DamageAfter int `yaml:"damage_after"` // Damage when the timer is in (after, until)
		DamageUntil int `yaml:"damage_until"`
		LightsAfter int `yaml:"lights_after"` // Lights may fail once the timer exceeds this
		LightsOdds  int `yaml:"lights_odds"`
	} `yaml:"fire"`
	Combat struct {
		HitBand             int  `yaml:"hit_band"`     // Rolls below this hit
		AttackSides         int  `yaml:"attack_sides"` // Sides of the attack die
		ConsumeWeaponOnMiss bool `yaml:"consume_weapon_on_miss"`
	} `yaml:"combat"`
	Hostiles struct {
		Movement HostileMovement `yaml:"movement"`
	} `yaml:"hostiles"`
	Characters struct {
		GroupExitOdds int `yaml:"group_exit_odds"`
		WanderOdds    int `yaml:"wander_odds"`
		SplitOdds     int `yaml:"split_odds"`
	} `yaml:"characters"`
}

// Field limits imposed by the packed game and score words.
const (
	maxReleaseCountdown = 7
	maxRescueTurns      = 31
)

// LoadBalance loads the embedded balance table and, when overridePath is set,
// applies the YAML file at that path on top of it.
func LoadBalance(overridePath string) (Balance, error) {
	var b Balance
	if err := loadInto("balance.yaml", &b); err != nil {
		return Balance{}, err
	}
	if overridePath != "" {
		content, err := os.ReadFile(overridePath)
		if err != nil {
			return Balance{}, fmt.Errorf("failed to read balance override: %w", err)
		}
		if err := decode(overridePath, content, &b); err != nil {
			return Balance{}, fmt.Errorf("balance override: %w", err)
		}
	}
	if err := b.Validate(); err != nil {
		return Balance{}, err
	}
	return b, nil
}

// DefaultBalance returns the embedded balance table, panicking on error.
func DefaultBalance() Balance {
	b, err := LoadBalance("")
	if err != nil {
		panic(err)
	}
	return b
}

// Validate checks that every value fits the packed state and every odds
// value is a usable die.
func (b *Balance) Validate() error {
	var errs []error
	if b.Release.Countdown < 1 || b.Release.Countdown > maxReleaseCountdown {
		errs = append(errs, fmt.Errorf("release.countdown %d outside 1..%d", b.Release.Countdown, maxReleaseCountdown))
	}
	if b.Release.Rearm < 0 || b.Release.Rearm > b.Release.Countdown {
		errs = append(errs, fmt.Errorf("release.rearm %d outside 0..%d", b.Release.Rearm, b.Release.Countdown))
	}
	if b.Rescue.Turns < 1 || b.Rescue.Turns > maxRescueTurns {
		errs = append(errs, fmt.Errorf("rescue.turns %d outside 1..%d", b.Rescue.Turns, maxRescueTurns))
	}
	if b.Combat.AttackSides < 1 || b.Combat.HitBand < 0 || b.Combat.HitBand > b.Combat.AttackSides {
		errs = append(errs, fmt.Errorf("combat hit band %d of %d is not a valid die", b.Combat.HitBand, b.Combat.AttackSides))
	}
	for name, odds := range map[string]int{
		"fire.spread_odds":           b.Fire.SpreadOdds,
		"fire.lights_odds":           b.Fire.LightsOdds,
		"characters.group_exit_odds": b.Characters.GroupExitOdds,
		"characters.wander_odds":     b.Characters.WanderOdds,
		"characters.split_odds":      b.Characters.SplitOdds,
	} {
		if odds < 1 {
			errs = append(errs, fmt.Errorf("%s must be at least 1, got %d", name, odds))
		}
	}
	switch b.Hostiles.Movement {
	case MoveFirst, MoveAll:
	default:
		errs = append(errs, fmt.Errorf("hostiles.movement %q is not %q or %q", b.Hostiles.Movement, MoveFirst, MoveAll))
	}
	return errors.Join(errs...)
}
