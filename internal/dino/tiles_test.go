package dino

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always returns the same index.
type fixedRand int

func (f fixedRand) IntN(n int) int { return int(f) % n }

func testEntries() []Entry {
	entries := make([]Entry, 0, 8)
	for i := 0; i < 7; i++ {
		entries = append(entries, Entry{
			Species: fmt.Sprintf("Saur%d", i),
			Weight:  float64(1000 * (i + 1)),
			Height:  float64(50 * (i + 1)),
			Diet:    "herbavor",
			Fact:    fmt.Sprintf("fact %d", i),
		})
	}
	entries = append(entries, Entry{
		Species: "Pigeon", Weight: 0.5, Height: 9, Diet: "herbavor",
		Fact: "All birds are dinosaurs.", NonComparable: true,
	})
	return entries
}

func testHuman() Human {
	return Human{Name: "Ann", Feet: 5, Inches: 6, Weight: 150, Diet: "omnivor"}
}

func TestGenerateTiles_Layout(t *testing.T) {
	entries := testEntries()
	tiles, err := GenerateTiles(entries, testHuman(), NewRand(42))
	require.NoError(t, err)
	require.Len(t, tiles, GridSize)

	assert.Equal(t, TileHuman, tiles[HumanPosition].Kind)
	assert.Equal(t, "Ann", tiles[HumanPosition].Name)
	assert.Equal(t, HumanImageKey, tiles[HumanPosition].ImageKey)
	assert.False(t, tiles[HumanPosition].HasFact())

	var species []string
	for i, tile := range tiles {
		if i == HumanPosition {
			continue
		}
		assert.Equal(t, TileDinosaur, tile.Kind)
		assert.Equal(t, strings.ToLower(tile.Name), tile.ImageKey)
		species = append(species, tile.Name)
	}

	var want []string
	for _, e := range entries {
		want = append(want, e.Species)
	}
	assert.Equal(t, want, species)
}

func TestGenerateTiles_FactWording(t *testing.T) {
	wordings := map[Category][]string{
		CategoryWeight: {"fatter", "lighter"},
		CategoryHeight: {"taller", "shorter"},
		CategoryDiet:   {"while human is", "are both"},
	}

	for seed := uint64(1); seed <= 50; seed++ {
		tiles, err := GenerateTiles(testEntries(), testHuman(), NewRand(seed))
		require.NoError(t, err)

		for _, tile := range tiles {
			if tile.Kind != TileDinosaur {
				continue
			}
			if tile.Name == "Pigeon" {
				assert.Equal(t, "All birds are dinosaurs.", tile.Fact)
				continue
			}

			matched := 0
			for _, words := range wordings {
				for _, w := range words {
					if strings.Contains(tile.Fact, w) {
						matched++
						break
					}
				}
			}
			assert.Equal(t, 1, matched, "fact %q should match exactly one comparator", tile.Fact)
		}
	}
}

func TestGenerateTiles_CategoryDispatch(t *testing.T) {
	h := testHuman()
	for i, c := range Categories {
		tiles, err := GenerateTiles(testEntries(), h, fixedRand(i))
		require.NoError(t, err)

		d := NewDinosaur(testEntries()[0])
		assert.Equal(t, Compare(d, h, c), tiles[0].Fact, "category %s", c)
	}
}

func TestGenerateTiles_DoesNotMutateEntries(t *testing.T) {
	entries := testEntries()
	before := append([]Entry(nil), entries...)

	_, err := GenerateTiles(entries, testHuman(), NewRand(7))
	require.NoError(t, err)
	assert.Equal(t, before, entries)
}

func TestGenerateTiles_IgnoresExtraEntries(t *testing.T) {
	entries := append(testEntries(), Entry{Species: "Extra", Weight: 1, Height: 1})
	tiles, err := GenerateTiles(entries, testHuman(), NewRand(3))
	require.NoError(t, err)
	require.Len(t, tiles, GridSize)
	for _, tile := range tiles {
		assert.NotEqual(t, "Extra", tile.Name)
	}
}

func TestGenerateTiles_TooSmall(t *testing.T) {
	_, err := GenerateTiles(testEntries()[:7], testHuman(), NewRand(1))
	assert.ErrorIs(t, err, ErrDatasetTooSmall)
}

func TestSelectCategory_CoversAll(t *testing.T) {
	r := NewRand(99)
	seen := map[Category]int{}
	for i := 0; i < 300; i++ {
		seen[SelectCategory(r)]++
	}
	assert.Len(t, seen, 3)
	for _, c := range Categories {
		assert.Greater(t, seen[c], 50, "category %s", c)
	}
}

func TestMarkNonComparable(t *testing.T) {
	entries := []Entry{{Species: "Pigeon"}, {Species: "pigeon"}, {Species: "Rex"}}
	marked := MarkNonComparable(entries, []string{"Pigeon"})

	assert.True(t, marked[0].NonComparable)
	assert.False(t, marked[1].NonComparable)
	assert.False(t, marked[2].NonComparable)
	assert.False(t, entries[0].NonComparable)
}

func TestTileJSON_FactOnlyOnDinosaurs(t *testing.T) {
	tests := []struct {
		name     string
		tile     Tile
		wantFact bool
	}{
		{"human", HumanTile(Human{Name: "Ann"}), false},
		{"dinosaur with fact", DinosaurTile(Dinosaur{Species: "Rex", Fact: "Big."}), true},
		{"dinosaur with empty fact", DinosaurTile(Dinosaur{Species: "Rex"}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.tile)
			require.NoError(t, err)

			var decoded map[string]any
			require.NoError(t, json.Unmarshal(data, &decoded))
			fact, ok := decoded["fact"]
			assert.Equal(t, tt.wantFact, ok)
			if ok {
				assert.Equal(t, tt.tile.Fact, fact)
			}
			assert.Equal(t, tt.tile.Name, decoded["name"])
		})
	}
}
