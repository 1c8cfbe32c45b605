// Package clipboard provides cross-platform clipboard support.
package clipboard

import (
	"bytes"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/f3rmion/dinocompare/internal/dino"
	"github.com/f3rmion/dinocompare/internal/render"
)

// Write copies text to the system clipboard.
func Write(text string) error {
	if !Available() {
		return fmt.Errorf("no clipboard utility found")
	}
	return clipboard.WriteAll(text)
}

// WriteTiles copies the text rendering of tiles to the clipboard.
func WriteTiles(tiles []dino.Tile) error {
	var buf bytes.Buffer
	if err := render.Text(&buf, tiles); err != nil {
		return err
	}
	return Write(buf.String())
}

// Available checks if clipboard functionality is available.
func Available() bool {
	return !clipboard.Unsupported
}
