package game

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/zombiecruise/internal/chance"
	"github.com/samdwyer/zombiecruise/internal/entity"
	"github.com/samdwyer/zombiecruise/internal/world"
)

func countCharacters(st *State, keep func(*entity.Character) bool) int {
	return len(st.Characters(keep))
}

func TestReleaseCountdown(t *testing.T) {
	ctx := context.Background()
	s := newQuietSession(t, Config{})
	s.Intro(ctx)
	st := s.State()

	for i := 0; i < s.balance.Release.Countdown; i++ {
		s.ApplyCommand(ctx, "wait")
	}
	assert.Equal(t, s.balance.Release.Countdown, st.Countdown())
	assert.False(t, st.Released())
	assert.Equal(t, entity.NumCharacters, countCharacters(st, isEligible))

	s.ApplyCommand(ctx, "wait")
	assert.True(t, st.Released())
	assert.Equal(t, s.balance.Release.Rearm, st.Countdown())
	assert.Equal(t, entity.NumCharacters-1, countCharacters(st, isEligible), "exactly one infection")
}

func TestPrologueMovesTheCast(t *testing.T) {
	ctx := context.Background()
	// Fixed(1) fails every one-in-N draw, so nobody wanders off.
	s := NewSession(Config{}, chance.Fixed(1))
	st := s.State()

	s.Intro(ctx)
	assert.Equal(t, world.ForeDeck, st.Player().Location())

	s.ApplyCommand(ctx, "wait")
	assert.Equal(t, world.Ballroom, st.Player().Location())
	assert.Equal(t, world.Kitchen, st.Character(entity.ChefRotisserie).Location())

	s.ApplyCommand(ctx, "wait")
	assert.Equal(t, world.Lounge, st.Player().Location())
	assert.Equal(t, world.Bridge, st.Character(entity.CaptainSwell).Location())
	assert.Equal(t, 3, s.prologue)
}

func TestInfectionTurnsInTwoTurns(t *testing.T) {
	s := newQuietSession(t, Config{})
	st := s.State()
	c := st.Character(entity.MsSass)
	st.InfectCharacter(entity.MsSass)

	s.progressInfection()
	assert.Equal(t, entity.Turning, c.Lifecycle())
	s.progressInfection()
	assert.Equal(t, entity.Hostile, c.Lifecycle())
	s.progressInfection()
	assert.Equal(t, entity.Hostile, c.Lifecycle())
}

func TestRescueTimeline(t *testing.T) {
	ctx := context.Background()
	s := newQuietSession(t, Config{})
	st := s.State()
	st.Player().SetLocation(world.Bridge)
	st.Character(entity.Phil).SetHealth(0)
	st.released = true

	_, consumed := s.ApplyCommand(ctx, "use radio")
	require.False(t, consumed)
	require.True(t, st.RadioUsed())
	require.False(t, st.SOSCalled())

	s.ApplyCommand(ctx, "wait")
	require.True(t, st.SOSCalled())
	assert.Zero(t, st.TurnsSinceSOS())

	for i := 0; i < s.balance.Rescue.Turns; i++ {
		s.ApplyCommand(ctx, "wait")
	}
	assert.Equal(t, s.balance.Rescue.Turns, st.TurnsSinceSOS())
	assert.False(t, st.RescueArrived())

	s.ApplyCommand(ctx, "wait")
	assert.True(t, st.RescueArrived())
	assert.False(t, st.Over())

	s.ApplyCommand(ctx, "wait")
	assert.True(t, st.Over())
	// Fixed(0) never lands a zombie blow on the player.
	assert.True(t, st.Player().Alive())

	card := s.FinalScore(ctx)
	assert.GreaterOrEqual(t, card.Score, 3)
	assert.Equal(t, card.Score, st.Score())
}

func TestRescueWaitsForAnOutbreak(t *testing.T) {
	ctx := context.Background()
	s := newQuietSession(t, Config{})
	st := s.State()
	st.released = true
	st.radioUsed = true
	st.sosCalled = true
	st.setTurnsSinceSOS(5)
	zombie := st.Character(entity.Phil)
	zombie.Infect()
	zombie.AdvanceInfection()
	zombie.AdvanceInfection()

	s.progressRescue()
	require.Equal(t, 6, st.TurnsSinceSOS())

	zombie.SetHealth(0)
	require.True(t, st.rearmRelease())

	for i := 0; !st.Released(); i++ {
		require.Less(t, i, 10, "the outbreak never came back")
		assert.Equal(t, 6, st.TurnsSinceSOS(), "turn %d", i)
		s.AdvanceTurn(ctx)
	}
	assert.Equal(t, 7, st.TurnsSinceSOS(), "the clock restarts with the outbreak")
}

func TestHostileAttacksPlayer(t *testing.T) {
	tests := []struct {
		name     string
		roll     chance.Fixed
		equipped int
		hurt     bool
	}{
		{"lowest face misses", 0, 0, false},
		{"hit when unarmed", 1, 0, true},
		{"one item blocks a low roll", 1, 1, false},
		{"top face always hits", 3, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(Config{}, tt.roll)
			st := s.State()
			st.Player().SetLocation(world.Kitchen)
			zombie := st.Character(entity.Phil)
			zombie.SetLocation(world.Kitchen)
			zombie.Infect()
			zombie.AdvanceInfection()
			zombie.AdvanceInfection()
			require.True(t, zombie.IsHostile())
			for _, kind := range []entity.ItemType{entity.Wrench, entity.DivingKnife}[:tt.equipped] {
				st.Item(entity.ItemID(kind)).SetLocation(world.Kitchen)
				st.TakeItem(kind)
				st.EquipItem(kind)
			}

			s.hostileAttacks()
			out := s.flush()

			if tt.hurt {
				assert.Equal(t, entity.MaxHealth-1, st.Player().Health())
				assert.Contains(t, out, "- YOU ARE HURT -")
			} else {
				assert.Equal(t, entity.MaxHealth, st.Player().Health())
				assert.Contains(t, out, "attacks you and misses.")
			}
		})
	}
}

func TestZombieBitesAPerson(t *testing.T) {
	s := newQuietSession(t, Config{})
	st := s.State()
	st.Player().SetLocation(world.Bridge)
	zombie := st.Character(entity.Phil)
	zombie.Infect()
	zombie.AdvanceInfection()
	zombie.AdvanceInfection()

	s.hostileAttacks()

	// Fixed(0) picks the first eligible victim on the fore deck.
	victim := st.Character(entity.CaptainSwell)
	assert.Equal(t, entity.Infected, victim.Lifecycle())
	assert.Equal(t, entity.InfectedHealth, victim.Health())
}

func TestFireBurnsOutAndHurts(t *testing.T) {
	s := newQuietSession(t, Config{})
	st := s.State()
	here := world.Lounge
	st.Player().SetLocation(here)
	loc := st.Location(here)
	loc.SetFire(world.FireOnFire, s.balance.Fire.DamageAfter)

	s.spreadFire()
	s.burn()
	assert.Equal(t, entity.MaxHealth-1, st.Player().Health())
	assert.Contains(t, s.flush(), "You have been burned by the flames.")

	for loc.Burning() {
		s.spreadFire()
	}
	assert.Equal(t, world.FireBurnt, loc.Fire())
	require.NoError(t, st.Validate())
}

func TestFireSpreadsToFlammableNeighbour(t *testing.T) {
	s := newQuietSession(t, Config{})
	st := s.State()
	st.Location(world.Lounge).SetFire(world.FireOnFire, s.balance.Fire.SpreadAfter)
	// Fixed(0) always takes the first exit: the bridge.
	st.Location(world.Bridge).Spill()

	s.spreadFire()
	assert.True(t, st.Location(world.Bridge).Burning())
	assert.Equal(t, 1, st.Location(world.Bridge).FireTimer())
}

func TestCorpsesStayPut(t *testing.T) {
	ctx := context.Background()
	s := newQuietSession(t, Config{})
	st := s.State()
	st.Player().SetLocation(world.Kitchen)
	st.Location(world.Lounge).SetFire(world.FireOnFire, 1)

	corpse := st.Character(entity.MsSass)
	corpse.SetLocation(world.Lounge)
	corpse.SetHealth(0)
	zombie := st.Character(entity.Phil)
	zombie.SetLocation(world.Lounge)
	zombie.Infect()
	zombie.AdvanceInfection()
	zombie.AdvanceInfection()
	before := corpse.Pack()

	for i := 0; i < 8; i++ {
		s.AdvanceTurn(ctx)
		require.Equal(t, before, corpse.Pack(), "turn %d", i)
	}
	assert.Equal(t, world.Lounge, corpse.Location())
	assert.Equal(t, entity.Dead, corpse.Lifecycle())
}

func TestCharactersFleeZombies(t *testing.T) {
	s := newQuietSession(t, Config{})
	st := s.State()
	st.Player().SetLocation(world.Bridge)
	zombie := st.Character(entity.Phil)
	zombie.Infect()
	zombie.AdvanceInfection()
	zombie.AdvanceInfection()

	s.characterMoves()

	for _, id := range st.Characters(isEligible) {
		assert.NotEqual(t, world.ForeDeck, st.Character(id).Location(), "%v stayed with the zombie", id)
	}
	assert.Equal(t, world.ForeDeck, zombie.Location())
}

func TestAttackKillsZombie(t *testing.T) {
	ctx := context.Background()
	s := newQuietSession(t, Config{})
	st := s.State()
	st.Player().SetLocation(world.Kitchen)
	st.Item(entity.ItemID(entity.Wrench)).SetLocation(world.Kitchen)
	_, result := st.TakeItem(entity.Wrench)
	require.Equal(t, Taken, result)
	st.EquipItem(entity.Wrench)

	zombie := st.Character(entity.Phil)
	zombie.SetLocation(world.Kitchen)
	zombie.Infect()
	zombie.AdvanceInfection()
	zombie.AdvanceInfection()
	zombie.SetHealth(2)

	out, consumed := s.ApplyCommand(ctx, "attack")
	assert.True(t, consumed)
	assert.Contains(t, out, "is killed with a wrench")
	assert.False(t, zombie.Alive())
	assert.True(t, st.Item(entity.ItemID(entity.Wrench)).Held(), "a wrench is not spent")
}

func TestUnarmedAttack(t *testing.T) {
	ctx := context.Background()
	s := newQuietSession(t, Config{})
	st := s.State()
	zombie := st.Character(entity.Phil)
	zombie.Infect()
	zombie.AdvanceInfection()
	zombie.AdvanceInfection()

	out, consumed := s.ApplyCommand(ctx, "attack")
	assert.True(t, consumed)
	assert.Contains(t, out, "[HINT]")
	assert.Equal(t, entity.MaxHealth, zombie.Health())
}

func TestSingleUseWeaponIsSpent(t *testing.T) {
	ctx := context.Background()
	s := newQuietSession(t, Config{})
	st := s.State()
	st.Player().SetLocation(world.AftDeck)
	_, result := st.TakeItem(entity.SpearGun)
	require.Equal(t, Taken, result)
	st.EquipItem(entity.SpearGun)

	zombie := st.Character(entity.Phil)
	zombie.SetLocation(world.AftDeck)
	zombie.Infect()
	zombie.AdvanceInfection()
	zombie.AdvanceInfection()

	s.ApplyCommand(ctx, "attack")
	spear := st.Item(entity.ItemID(entity.SpearGun))
	assert.True(t, spear.Used())
	assert.False(t, spear.Held())
	assert.Equal(t, entity.NoItem, st.Player().Equipped(entity.RightHand))
	require.NoError(t, st.Validate())
}

func TestRearmAfterLastZombieFalls(t *testing.T) {
	s := newQuietSession(t, Config{})
	st := s.State()
	st.released = true
	zombie := st.Character(entity.Phil)
	zombie.Infect()
	zombie.AdvanceInfection()
	zombie.AdvanceInfection()

	assert.False(t, st.rearmRelease(), "a zombie is still loose")
	zombie.SetHealth(0)
	assert.True(t, st.rearmRelease())
	assert.False(t, st.Released())
}

var sweepCommands = []string{
	"wait", "look", "inventory", "take all", "drop all", "equip any",
	"attack", "use fuel", "use alcohol", "use flare", "use extinguisher",
	"use spear", "use radio", "use lights", "use first aid", "talk to phil",
	"go to bridge", "go to fore", "go to aft", "go to ballroom", "go to lounge",
	"go to kitchen", "go to store", "go to engine", "take knife", "take wrench",
	"take cleaver", "take fuel", "take flare", "drop knife", "equip wrench",
	"equip cleaver", "look at me", "help",
}

// Random play must never break a cross-record invariant.
func TestRandomPlayKeepsInvariants(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s := NewSession(Config{}, rng)
		s.Intro(ctx)
		picker := rand.New(rand.NewSource(-seed))

		for turn := 0; turn < 300 && !s.Over(); turn++ {
			cmd := sweepCommands[picker.Intn(len(sweepCommands))]
			s.ApplyCommand(ctx, cmd)
			if err := s.State().Validate(); err != nil {
				t.Fatalf("seed %d, command %d %q: %v", seed, turn, cmd, err)
			}
			if _, err := s.State().MarshalBinary(); err != nil {
				t.Fatalf("seed %d: MarshalBinary() error = %v", seed, err)
			}
		}
		card := s.FinalScore(ctx)
		if card.Score < 0 || card.Score > MaxScore {
			t.Errorf("seed %d: score %d outside 0..%d", seed, card.Score, MaxScore)
		}
	}
}
