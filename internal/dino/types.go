// Package dino provides the records and comparison logic for the dinosaur
// comparison grid.
package dino

import "encoding/json"

// Human is the person being compared. It is built in one step from
// validated form input and never mutated afterwards.
type Human struct {
	Name   string  `json:"name"`
	Feet   float64 `json:"feet"`
	Inches float64 `json:"inches"`
	Weight float64 `json:"weight"` // pounds
	Diet   string  `json:"diet"`
}

// HeightInches returns the human's total height in inches.
func (h Human) HeightInches() float64 {
	return h.Feet*12 + h.Inches
}

// Entry is a single record from the static dataset.
type Entry struct {
	Species       string  `json:"species" yaml:"species"`
	Weight        float64 `json:"weight" yaml:"weight"` // pounds
	Height        float64 `json:"height" yaml:"height"` // inches
	Diet          string  `json:"diet" yaml:"diet"`
	Where         string  `json:"where" yaml:"where"`
	When          string  `json:"when" yaml:"when"`
	Fact          string  `json:"fact" yaml:"fact"`
	NonComparable bool    `json:"non_comparable,omitempty" yaml:"non_comparable,omitempty"` // keeps its own fact
}

// Dinosaur is a dataset entry prepared for display.
type Dinosaur struct {
	Species string  `json:"species"`
	Weight  float64 `json:"weight"`
	Height  float64 `json:"height"`
	Diet    string  `json:"diet"`
	Where   string  `json:"where"`
	When    string  `json:"when"`
	Fact    string  `json:"fact"`
}

// NewDinosaur copies an entry into a Dinosaur.
func NewDinosaur(e Entry) Dinosaur {
	return Dinosaur{
		Species: e.Species,
		Weight:  e.Weight,
		Height:  e.Height,
		Diet:    e.Diet,
		Where:   e.Where,
		When:    e.When,
		Fact:    e.Fact,
	}
}

// TileKind tells a human tile from a dinosaur tile.
type TileKind string

const (
	TileHuman    TileKind = "human"
	TileDinosaur TileKind = "dinosaur"
)

// HumanImageKey is the image key used for the human tile.
const HumanImageKey = "human"

// Tile is one cell of the 3x3 grid.
type Tile struct {
	Kind     TileKind  `json:"kind"`
	Name     string    `json:"name"`      // species or human name
	ImageKey string    `json:"image_key"` // lower-cased species or "human"
	Fact     string    `json:"fact"`
	Human    *Human    `json:"-"`
	Dinosaur *Dinosaur `json:"-"`
}

// HasFact reports whether the tile carries a fact line.
func (t Tile) HasFact() bool {
	return t.Kind == TileDinosaur
}

// MarshalJSON writes the fact key for dinosaur tiles only, even when the
// fact is empty. Human tiles never carry one.
func (t Tile) MarshalJSON() ([]byte, error) {
	type plain Tile
	out := struct {
		plain
		Fact *string `json:"fact,omitempty"`
	}{plain: plain(t)}
	if t.HasFact() {
		out.Fact = &t.Fact
	}
	return json.Marshal(out)
}
