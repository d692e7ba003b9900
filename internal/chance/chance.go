// Package chance centralizes the random draws the simulation makes.
package chance

// Roller is the random source every phase draws from. *rand.Rand satisfies it.
type Roller interface {
	Intn(n int) int
}

// OneIn reports a 1-in-n event. n <= 1 always succeeds but still draws, so the
// number of draws per turn does not depend on balance values.
func OneIn(r Roller, n int) bool {
	if n <= 1 {
		r.Intn(1)
		return true
	}
	return r.Intn(n) == 0
}

// Pick returns a uniformly chosen element of options. It panics on an empty slice.
func Pick[T any](r Roller, options []T) T {
	return options[r.Intn(len(options))]
}

// CoinFlip is an even chance.
func CoinFlip(r Roller) bool {
	return r.Intn(2) == 0
}
