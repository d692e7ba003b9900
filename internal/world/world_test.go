package world

import "testing"

func TestTopologySymmetric(t *testing.T) {
	for _, from := range All() {
		for _, to := range Exits(from) {
			if to == from {
				t.Errorf("%v has an exit to itself", from)
			}
			if !Adjacent(to, from) {
				t.Errorf("exit %v -> %v has no way back", from, to)
			}
		}
	}
}

func TestExitTarget(t *testing.T) {
	tests := []struct {
		from LocationID
		exit int
		want LocationID
	}{
		{Bridge, 0, ForeDeck},
		{Bridge, 2, Lounge},
		{Bridge, 3, ForeDeck},
		{Kitchen, 1, StoreRoom},
		{EngineRoom, -1, StoreRoom},
	}

	for _, tt := range tests {
		if got := ExitTarget(tt.from, tt.exit); got != tt.want {
			t.Errorf("ExitTarget(%v, %d) = %v, want %v", tt.from, tt.exit, got, tt.want)
		}
	}
}

func TestLocationString(t *testing.T) {
	if Lounge.String() != "lounge" {
		t.Errorf("Lounge.String() = %q", Lounge.String())
	}
	if LocationID(99).String() != "unknown" {
		t.Error("out of range location should be unknown")
	}
	if !ForeDeck.Outdoor() || Lounge.Outdoor() {
		t.Error("only the decks are outdoor")
	}
}

func TestFireBurnsOut(t *testing.T) {
	l := NewLocation()
	l.SetFire(FireOnFire, 14)

	if !l.AdvanceFire() {
		t.Fatal("AdvanceFire() at 14 should burn out")
	}
	if l.Fire() != FireBurnt || l.FireTimer() != MaxFireTimer {
		t.Fatalf("after burn out: state %v timer %d", l.Fire(), l.FireTimer())
	}

	// Burnt is terminal.
	for i := 0; i < 5; i++ {
		l.AdvanceFire()
		l.Spill()
		l.Ignite()
		l.Extinguish()
	}
	if l.Fire() != FireBurnt || l.FireTimer() != MaxFireTimer {
		t.Errorf("burnt location changed: state %v timer %d", l.Fire(), l.FireTimer())
	}
	if err := l.Validate(); err != nil {
		t.Error(err)
	}
}

func TestFireLifecycle(t *testing.T) {
	l := NewLocation()
	if l.Ignite() {
		t.Error("a dry location should not ignite")
	}
	if got := l.Spill(); got != SpillSoaked {
		t.Errorf("Spill() = %v, want SpillSoaked", got)
	}
	if !l.Ignite() || l.FireTimer() != 1 {
		t.Fatalf("Ignite() on flammable: state %v timer %d", l.Fire(), l.FireTimer())
	}
	l.AdvanceFire()
	l.AdvanceFire()
	if got := l.Spill(); got != SpillFedFire || l.FireTimer() != 1 {
		t.Errorf("Spill() on fire = %v timer %d, want SpillFedFire timer 1", got, l.FireTimer())
	}
	if !l.Extinguish() || l.Fire() != FireBurnt {
		t.Error("Extinguish() should leave the location burnt")
	}
}

func TestLocationPackRoundTrip(t *testing.T) {
	l := NewLocation()
	l.MarkVisited()
	l.SetFire(FireOnFire, 9)
	l.SetLights(false)

	w := l.Pack()
	if w != 0b0110_1001 {
		t.Errorf("Pack() = %08b, want %08b", w, 0b0110_1001)
	}
	if got := UnpackLocation(w); got != l {
		t.Errorf("UnpackLocation(Pack()) = %+v, want %+v", got, l)
	}
}
