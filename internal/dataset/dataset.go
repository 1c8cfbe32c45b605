// Package dataset loads the static dinosaur dataset.
package dataset

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/f3rmion/dinocompare/internal/dino"
)

//go:embed dino.json
var embedded []byte

// ErrTooFewEntries is returned when a dataset cannot fill a grid.
var ErrTooFewEntries = errors.New("dataset must contain at least 8 entries")

// file mirrors the on-disk JSON layout.
type file struct {
	Dinos []dino.Entry `json:"Dinos"`
}

// Dataset is an ordered, read-only collection of dataset entries.
type Dataset struct {
	source  string
	entries []dino.Entry
}

// Default returns the dataset compiled into the binary.
func Default() (*Dataset, error) {
	return Parse(embedded, "embedded")
}

// Parse decodes a JSON dataset. source names where the data came from.
func Parse(data []byte, source string) (*Dataset, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", source, err)
	}
	return New(f.Dinos, source)
}

// New wraps entries in a Dataset, enforcing the minimum size.
func New(entries []dino.Entry, source string) (*Dataset, error) {
	if len(entries) < dino.DinosaurCount {
		return nil, fmt.Errorf("%w: %s has %d", ErrTooFewEntries, source, len(entries))
	}
	cp := make([]dino.Entry, len(entries))
	copy(cp, entries)
	return &Dataset{source: source, entries: cp}, nil
}

// LoadFromFile loads a dataset from path. Paths ending in .db, .sqlite or
// .sqlite3 are read as SQLite databases, anything else as JSON.
func LoadFromFile(path string) (*Dataset, error) {
	if IsSQLitePath(path) {
		return LoadSQLite(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset file: %w", err)
	}
	return Parse(data, path)
}

// Load returns the dataset at path, or the embedded one when path is empty.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	return LoadFromFile(path)
}

// IsSQLitePath reports whether path names a SQLite dataset.
func IsSQLitePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// Entries returns a copy of the entries in dataset order.
func (d *Dataset) Entries() []dino.Entry {
	cp := make([]dino.Entry, len(d.entries))
	copy(cp, d.entries)
	return cp
}

// Size returns the number of entries.
func (d *Dataset) Size() int {
	return len(d.entries)
}

// Source describes where the dataset was loaded from.
func (d *Dataset) Source() string {
	return d.source
}

// WithNonComparable returns a dataset whose entries matching species keep
// their own fact during tile generation.
func (d *Dataset) WithNonComparable(species []string) *Dataset {
	return &Dataset{
		source:  d.source,
		entries: dino.MarkNonComparable(d.entries, species),
	}
}

// MarshalJSON encodes the dataset in its file layout.
func (d *Dataset) MarshalJSON() ([]byte, error) {
	return json.Marshal(file{Dinos: d.entries})
}
