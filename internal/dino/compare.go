package dino

import (
	"fmt"
	"math"
)

// CompareWeight compares the dinosaur's weight with the human's.
// A zero weight on either side is not guarded and yields Inf or NaN text.
func CompareWeight(d Dinosaur, h Human) string {
	if d.Weight > h.Weight {
		return fmt.Sprintf("%s is %s times fatter than human.", d.Species, ratio(d.Weight, h.Weight))
	}
	return fmt.Sprintf("%s is %s times lighter than human.", d.Species, ratio(h.Weight, d.Weight))
}

// CompareHeight compares the dinosaur's height with the human's, both in inches.
func CompareHeight(d Dinosaur, h Human) string {
	humanHeight := h.HeightInches()
	if d.Height > humanHeight {
		return fmt.Sprintf("%s is %s times taller than human.", d.Species, ratio(d.Height, humanHeight))
	}
	return fmt.Sprintf("%s is %s times shorter than human.", d.Species, ratio(humanHeight, d.Height))
}

// CompareDiet compares diets with an exact, case-sensitive match.
func CompareDiet(d Dinosaur, h Human) string {
	if d.Diet != h.Diet {
		return fmt.Sprintf("%s is %s while human is %s.", d.Species, d.Diet, h.Diet)
	}
	return fmt.Sprintf("%s and human are both %s.", d.Species, d.Diet)
}

// ratio formats a/b with two decimals, rounding halves away from zero
// (7.125 prints as 7.13). Inf and NaN pass through unchanged.
func ratio(a, b float64) string {
	return fmt.Sprintf("%.2f", math.Round(a/b*100)/100)
}
