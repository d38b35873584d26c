package services

import (
	"fmt"
	"math/rand"
	"sync"
)

// Word lists for generating fun anonymous commenter names (Google Docs style).
var (
	adjectives = []string{
		"Anonymous", "Silent", "Mysterious", "Hidden", "Quiet", "Shy",
		"Curious", "Brave", "Swift", "Gentle", "Wise", "Happy",
		"Clever", "Bold", "Calm", "Bright", "Jolly", "Lucky",
	}

	animals = []string{
		"Penguin", "Koala", "Dolphin", "Panda", "Tiger", "Eagle",
		"Elephant", "Fox", "Wolf", "Bear", "Owl", "Rabbit",
		"Lion", "Deer", "Otter", "Hawk", "Seal", "Cheetah",
	}
)

// NameGenerator produces pseudo-random display names like "Silent Koala".
// The randomness source is injected so tests can seed deterministically.
// Names are cosmetic identity only: with 324 combinations, collisions across
// comments are expected and fine.
//
// A single generator is shared across all requests and *rand.Rand is not safe
// for concurrent use, so Generate serializes access with a mutex.
type NameGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewNameGenerator(src rand.Source) *NameGenerator {
	return &NameGenerator{rng: rand.New(src)}
}

// Generate picks one adjective and one animal, each uniformly and independently
func (g *NameGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	adjective := adjectives[g.rng.Intn(len(adjectives))]
	animal := animals[g.rng.Intn(len(animals))]
	return fmt.Sprintf("%s %s", adjective, animal)
}
