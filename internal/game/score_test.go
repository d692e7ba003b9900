package game

import (
	"testing"

	"github.com/samdwyer/zombiecruise/internal/chance"
	"github.com/samdwyer/zombiecruise/internal/entity"
)

func TestRankFor(t *testing.T) {
	tests := []struct {
		score int
		want  Rank
	}{
		{0, RankZombieMeat},
		{2, RankZombieMeat},
		{3, RankSurvivor},
		{4, RankSurvivor},
		{5, RankHero},
		{6, RankHero},
		{7, RankZombieKiller},
	}

	for _, tt := range tests {
		if got := RankFor(tt.score); got != tt.want {
			t.Errorf("RankFor(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestTally(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *State)
		want  ScoreCard
	}{
		{
			name:  "no call for help",
			setup: func(s *State) {},
			want:  ScoreCard{Hostiles: 0, Survivors: 9, Score: 0, Rank: RankZombieMeat},
		},
		{
			name: "called but not rescued",
			setup: func(s *State) {
				s.radioUsed, s.sosCalled = true, true
			},
			want: ScoreCard{Hostiles: 0, Survivors: 9, Score: 1, Rank: RankZombieMeat},
		},
		{
			name: "perfect rescue",
			setup: func(s *State) {
				s.radioUsed, s.sosCalled, s.rescueArrived = true, true, true
			},
			want: ScoreCard{Hostiles: 0, Survivors: 9, Score: 7, Rank: RankZombieKiller},
		},
		{
			name: "dead player counts as a zombie",
			setup: func(s *State) {
				s.radioUsed, s.sosCalled, s.rescueArrived = true, true, true
				s.player.SetHealth(0)
				for _, id := range []entity.CharacterID{entity.Phil, entity.MrRich, entity.MrsRich} {
					c := s.Character(id)
					c.Infect()
					c.AdvanceInfection()
					c.AdvanceInfection()
				}
				s.Character(entity.MsSass).SetHealth(0)
			},
			want: ScoreCard{Hostiles: 4, Survivors: 4, Score: 3, Rank: RankSurvivor},
		},
	}

	for _, tt := range tests {
		s := NewState(chance.Fixed(0))
		tt.setup(s)
		if got := s.Tally(); got != tt.want {
			t.Errorf("%s: Tally() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}
