package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/zombiecruise/internal/chance"
	"github.com/samdwyer/zombiecruise/internal/entity"
	"github.com/samdwyer/zombiecruise/internal/gamedata"
	"github.com/samdwyer/zombiecruise/internal/world"
)

func TestNewState(t *testing.T) {
	s := NewState(chance.Fixed(0))

	assert.Equal(t, world.ForeDeck, s.Player().Location())
	assert.Equal(t, entity.MaxHealth, s.Player().Health())
	assert.Equal(t, StageCalm, s.Stage())
	for _, id := range world.All() {
		assert.True(t, s.Location(id).LightsOn(), "%v lights", id)
		assert.Equal(t, world.FireNone, s.Location(id).Fire(), "%v fire", id)
	}
	for i := 0; i < entity.NumCharacters; i++ {
		c := s.Character(entity.CharacterID(i))
		assert.Equal(t, world.ForeDeck, c.Location())
		assert.True(t, c.IsEligible())
	}
	for i := 0; i < entity.NumItemTypes; i++ {
		kind := entity.ItemType(i)
		it := s.Item(entity.ItemID(i))
		assert.Equal(t, kind, it.Type())
		assert.Equal(t, kind.StartLocation(), it.Location())
	}
	// Fixed(0) draws type 0 at location 0 for every extra.
	for i := entity.NumItemTypes; i < entity.NumItems; i++ {
		it := s.Item(entity.ItemID(i))
		assert.Equal(t, entity.FlareGun, it.Type())
		assert.Equal(t, world.Bridge, it.Location())
	}
	require.NoError(t, s.Validate())
}

func TestStageFollowsFlags(t *testing.T) {
	s := NewState(chance.Fixed(0))
	steps := []struct {
		apply func()
		want  Stage
	}{
		{func() {}, StageCalm},
		{func() { s.released = true }, StageOutbreak},
		{func() { s.radioUsed = true }, StageAwaitingRescue},
		{func() { s.sosCalled, s.rescueArrived = true, true }, StageRescued},
		{s.End, StageOver},
	}

	for _, step := range steps {
		step.apply()
		if got := s.Stage(); got != step.want {
			t.Errorf("Stage() = %v, want %v", got, step.want)
		}
	}
}

func TestRangeCheckedSetters(t *testing.T) {
	s := NewState(chance.Fixed(0))

	assert.Panics(t, func() { s.setCountdown(8) })
	assert.Panics(t, func() { s.setCountdown(-1) })
	assert.Panics(t, func() { s.setTurnsSinceSOS(32) })
	assert.Panics(t, func() { s.setScore(8) })
	assert.NotPanics(t, func() {
		s.setCountdown(maxCountdown)
		s.setTurnsSinceSOS(maxTurnsSinceSOS)
		s.setScore(maxScore)
	})
}

func TestIsDark(t *testing.T) {
	s := NewState(chance.Fixed(0))

	s.Location(world.Lounge).SetLights(false)
	assert.True(t, s.IsDark(world.Lounge))

	s.Location(world.Lounge).SetFire(world.FireOnFire, 3)
	assert.False(t, s.IsDark(world.Lounge), "a fire lights the room")

	s.Location(world.ForeDeck).SetLights(false)
	assert.False(t, s.IsDark(world.ForeDeck), "decks are never dark")
}

func TestValidateCatchesBrokenInventory(t *testing.T) {
	s := NewState(chance.Fixed(0))
	s.Player().SetCarried(2)

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carried count 2 but 0 items held")
}

func TestSnapshotRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewState(rng)
	s.released = true
	s.radioUsed = true
	s.sosCalled = true
	s.setCountdown(2)
	s.setTurnsSinceSOS(19)
	s.setScore(4)
	s.Location(world.Kitchen).SetFire(world.FireOnFire, 9)
	s.Location(world.Lounge).SetLights(false)
	s.Character(entity.Phil).Bite()
	s.Player().SetLocation(world.ForeDeck)
	_, result := s.TakeItem(entity.DivingKnife)
	require.Equal(t, Taken, result)
	s.EquipItem(entity.DivingKnife)

	data, err := s.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, SnapshotSize)

	var got State
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, *s, got)
}

func TestUnmarshalRejectsShortSnapshot(t *testing.T) {
	var s State
	assert.Error(t, s.UnmarshalBinary(make([]byte, SnapshotSize-1)))
}

func TestDebugDumpSections(t *testing.T) {
	s := NewState(chance.Fixed(0))

	tests := []struct {
		section string
		want    int
	}{
		{"game", 1},
		{"score", 1},
		{"player", 1},
		{"locs", world.NumLocations},
		{"chars", entity.NumCharacters},
		{"items", entity.NumItems},
		{"", 3 + world.NumLocations + entity.NumCharacters + entity.NumItems},
	}

	for _, tt := range tests {
		if got := len(s.DebugDump(tt.section)); got != tt.want {
			t.Errorf("DebugDump(%q) returned %d rows, want %d", tt.section, got, tt.want)
		}
	}
	assert.Contains(t, s.DebugDump("game")[0], "calm")
}

// The numeric identifiers index the text tables, so each table row must name
// the identifier at its position.
func TestTablesMatchIdentifiers(t *testing.T) {
	tables := gamedata.MustLoadTables()

	for i := 0; i < world.NumLocations; i++ {
		assert.Equal(t, world.LocationID(i).String(), tables.Locations.At(i).ID)
	}
	for i := 0; i < entity.NumItemTypes; i++ {
		assert.Equal(t, entity.ItemType(i).String(), tables.Items.At(i).ID)
	}
	for i := 0; i < entity.NumCharacters; i++ {
		assert.Equal(t, entity.CharacterID(i).String(), tables.Characters.At(i).ID)
	}
}
