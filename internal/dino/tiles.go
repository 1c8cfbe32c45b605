package dino

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// GridSize is the number of tiles in the 3x3 grid.
	GridSize = 9
	// HumanPosition is the grid index of the human tile.
	HumanPosition = 4
	// DinosaurCount is the number of dataset entries shown per grid.
	DinosaurCount = GridSize - 1
)

// ErrDatasetTooSmall is returned when fewer than DinosaurCount entries are given.
var ErrDatasetTooSmall = errors.New("dataset has fewer than 8 entries")

// GenerateTiles builds the nine grid tiles. The human sits at HumanPosition,
// the first eight entries fill the rest in order. Every comparable entry gets
// a freshly selected fact; non-comparable entries keep their own.
func GenerateTiles(entries []Entry, h Human, r Rand) ([]Tile, error) {
	if len(entries) < DinosaurCount {
		return nil, fmt.Errorf("%w: got %d", ErrDatasetTooSmall, len(entries))
	}

	tiles := make([]Tile, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		if i == HumanPosition {
			tiles = append(tiles, HumanTile(h))
			continue
		}

		idx := i
		if i > HumanPosition {
			idx = i - 1
		}

		e := entries[idx]
		d := NewDinosaur(e)
		if !e.NonComparable {
			d = ApplyFact(d, h, SelectCategory(r))
		}
		tiles = append(tiles, DinosaurTile(d))
	}

	return tiles, nil
}

// HumanTile wraps a human for display.
func HumanTile(h Human) Tile {
	return Tile{
		Kind:     TileHuman,
		Name:     h.Name,
		ImageKey: HumanImageKey,
		Human:    &h,
	}
}

// DinosaurTile wraps a dinosaur for display.
func DinosaurTile(d Dinosaur) Tile {
	return Tile{
		Kind:     TileDinosaur,
		Name:     d.Species,
		ImageKey: strings.ToLower(d.Species),
		Fact:     d.Fact,
		Dinosaur: &d,
	}
}

// MarkNonComparable returns a copy of entries with NonComparable set on every
// entry whose species exactly matches one of species.
func MarkNonComparable(entries []Entry, species []string) []Entry {
	skip := make(map[string]bool, len(species))
	for _, s := range species {
		skip[s] = true
	}

	out := make([]Entry, len(entries))
	for i, e := range entries {
		if skip[e.Species] {
			e.NonComparable = true
		}
		out[i] = e
	}
	return out
}
