package dataset

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/f3rmion/dinocompare/internal/dino"

	_ "modernc.org/sqlite"
)

const createTable = `
	CREATE TABLE dinos (
		position       INTEGER PRIMARY KEY,
		species        TEXT NOT NULL,
		weight         REAL NOT NULL,
		height         REAL NOT NULL,
		diet           TEXT NOT NULL,
		location       TEXT NOT NULL,
		era            TEXT NOT NULL,
		fact           TEXT NOT NULL,
		non_comparable INTEGER NOT NULL DEFAULT 0
	)
`

// LoadSQLite reads a dataset from the dinos table of a SQLite database.
// Rows are returned in position order.
func LoadSQLite(path string) (*Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening dataset database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT species, weight, height, diet, location, era, fact, non_comparable
		FROM dinos
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying dinos: %w", err)
	}
	defer rows.Close()

	var entries []dino.Entry
	for rows.Next() {
		var e dino.Entry
		if err := rows.Scan(
			&e.Species, &e.Weight, &e.Height, &e.Diet,
			&e.Where, &e.When, &e.Fact, &e.NonComparable,
		); err != nil {
			return nil, fmt.Errorf("scanning dino: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading dinos: %w", err)
	}

	return New(entries, path)
}

// ExportSQLite writes the dataset to a new SQLite database at path.
// An existing file is replaced.
func (d *Dataset) ExportSQLite(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing old database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(createTable); err != nil {
		return fmt.Errorf("creating dinos table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	for i, e := range d.entries {
		_, err := tx.Exec(`
			INSERT INTO dinos (position, species, weight, height, diet, location, era, fact, non_comparable)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, i, e.Species, e.Weight, e.Height, e.Diet, e.Where, e.When, e.Fact, e.NonComparable)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting %s: %w", e.Species, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing dinos: %w", err)
	}
	return nil
}
