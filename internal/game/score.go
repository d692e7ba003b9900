package game

// Rank classifies a final score.
type Rank int

const (
	RankZombieMeat Rank = iota
	RankSurvivor
	RankHero
	RankZombieKiller
)

// String returns the rank as shown on the score card.
func (r Rank) String() string {
	switch r {
	case RankZombieMeat:
		return "Zombie Meat"
	case RankSurvivor:
		return "Survivor"
	case RankHero:
		return "Hero"
	case RankZombieKiller:
		return "Zombie Killer"
	default:
		return "Unknown"
	}
}

// RankFor returns the rank for a score out of 7.
func RankFor(score int) Rank {
	switch {
	case score < 3:
		return RankZombieMeat
	case score < 5:
		return RankSurvivor
	case score < 7:
		return RankHero
	default:
		return RankZombieKiller
	}
}

// ScoreCard is the end-of-game tally.
type ScoreCard struct {
	Hostiles  int // Living zombies aboard, plus the player if dead
	Survivors int // Living people aboard, including the player
	Score     int // Out of MaxScore
	Rank      Rank
}

// MaxScore is the best possible score.
const MaxScore = maxScore

// Tally counts the living aboard and scores the game.
func (s *State) Tally() ScoreCard {
	var card ScoreCard
	for i := range s.characters {
		c := &s.characters[i]
		switch {
		case !c.Alive():
		case c.HostileFlag():
			card.Hostiles++
		default:
			card.Survivors++
		}
	}
	if s.player.Alive() {
		card.Survivors++
	} else {
		card.Hostiles++
	}

	if s.sosCalled {
		card.Score++
	}
	if s.rescueArrived {
		card.Score++
		if s.player.Alive() {
			card.Score++
		}
		if card.Survivors > 3 {
			card.Score++
		}
		if card.Hostiles < 4 {
			card.Score += 3
		}
	}
	card.Rank = RankFor(card.Score)
	return card
}
