package dino

import (
	"fmt"
	"math/rand/v2"
)

// Category is one comparison dimension.
type Category int

const (
	CategoryWeight Category = 1
	CategoryHeight Category = 2
	CategoryDiet   Category = 3
)

// Categories lists every comparison dimension in selection order.
var Categories = []Category{CategoryWeight, CategoryHeight, CategoryDiet}

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryWeight:
		return "weight"
	case CategoryHeight:
		return "height"
	case CategoryDiet:
		return "diet"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Rand is the randomness source used for fact selection.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a source seeded with seed. A zero seed picks a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SelectCategory draws one category uniformly at random.
func SelectCategory(r Rand) Category {
	return Categories[r.IntN(len(Categories))]
}

// Compare runs the comparator for category c.
func Compare(d Dinosaur, h Human, c Category) string {
	switch c {
	case CategoryWeight:
		return CompareWeight(d, h)
	case CategoryHeight:
		return CompareHeight(d, h)
	case CategoryDiet:
		return CompareDiet(d, h)
	default:
		return d.Fact
	}
}

// ApplyFact returns a copy of d whose fact is the comparison for category c.
func ApplyFact(d Dinosaur, h Human, c Category) Dinosaur {
	d.Fact = Compare(d, h, c)
	return d
}
