package booking

import (
	"math/rand"
	"sync"
	"time"
)

// Locator codes are the public PNR-like booking identifiers. The alphabet
// drops I, O, 0 and 1 so codes survive being read over the phone.
const (
	locatorAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	locatorLength   = 6
)

// LocatorGenerator produces booking codes from an injected random source so
// tests can seed it. Uniqueness is probabilistic; the bookings table carries
// the unique constraint.
type LocatorGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewLocatorGenerator(src rand.Source) *LocatorGenerator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &LocatorGenerator{rng: rand.New(src)}
}

func (g *LocatorGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	code := make([]byte, locatorLength)
	for i := range code {
		code[i] = locatorAlphabet[g.rng.Intn(len(locatorAlphabet))]
	}
	return string(code)
}
