package services

import "math/rand/v2"

// IDSource draws upstream resource identifiers.
// Implementations must be safe for concurrent use.
type IDSource interface {
	// Intn returns a uniformly distributed identifier in [0, n).
	Intn(n int) int
}

// randomIDSource draws from the runtime's global generator, which is safe for
// concurrent use and never shares a sequence between callers
type randomIDSource struct{}

// NewRandomIDSource returns the default identifier source
func NewRandomIDSource() IDSource {
	return randomIDSource{}
}

func (randomIDSource) Intn(n int) int {
	return rand.IntN(n)
}

// IDSourceFunc adapts a function to IDSource
type IDSourceFunc func(n int) int

// Intn implements IDSource
func (f IDSourceFunc) Intn(n int) int {
	return f(n)
}
