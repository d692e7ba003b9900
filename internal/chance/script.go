package chance

// Fixed is a Roller that always draws the same value, capped at n-1.
type Fixed int

// Intn implements Roller.
func (f Fixed) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	if f < 0 {
		return 0
	}
	return int(f)
}

// Script is a Roller that replays a list of draws, each capped at n-1, and
// then draws Rest forever.
type Script struct {
	Draws []int
	Rest  Fixed
	// Calls counts draws made so far.
	Calls int
}

// Intn implements Roller.
func (s *Script) Intn(n int) int {
	s.Calls++
	if len(s.Draws) == 0 {
		return s.Rest.Intn(n)
	}
	v := s.Draws[0]
	s.Draws = s.Draws[1:]
	return Fixed(v).Intn(n)
}
