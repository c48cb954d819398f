package game

import "math/rand/v2"

// mathRandomizer backs role assignment and the quality draw. Non-crypto
// randomness is fine here; what matters is that every player is equally
// likely to end up as the sender.
type mathRandomizer struct{}

func newMathRandomizer() mathRandomizer {
	return mathRandomizer{}
}

func (mathRandomizer) Perm(n int) []int {
	return rand.Perm(n)
}

func (mathRandomizer) CoinFlip() bool {
	return rand.IntN(2) == 0
}
