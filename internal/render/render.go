// Package render writes comparison tiles as HTML, plain text or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"path"
	"strings"

	"github.com/f3rmion/dinocompare/internal/dino"
)

// Format is an output format name.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatHTML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json or html)", s)
}

// Options configures rendering.
type Options struct {
	ImagesDir string // prefix for image paths, "images" when empty
	Title     string
}

func (o Options) imagesDir() string {
	if o.ImagesDir == "" {
		return "images"
	}
	return o.ImagesDir
}

// ImagePath returns the image reference for a tile.
func ImagePath(dir string, t dino.Tile) string {
	if dir == "" {
		dir = "images"
	}
	return path.Join(dir, t.ImageKey+".png")
}

// Write renders tiles in format f.
func Write(w io.Writer, f Format, tiles []dino.Tile, opts Options) error {
	switch f {
	case FormatText:
		return Text(w, tiles)
	case FormatJSON:
		return JSON(w, tiles)
	case FormatHTML:
		return HTML(w, tiles, opts)
	}
	return fmt.Errorf("unknown format %q", f)
}

// Text writes the grid row by row.
func Text(w io.Writer, tiles []dino.Tile) error {
	for i, t := range tiles {
		if i > 0 && i%3 == 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		line := fmt.Sprintf("[%d] %s", i, t.Name)
		if t.HasFact() {
			line += ": " + t.Fact
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes the tiles as an indented JSON array.
func JSON(w io.Writer, tiles []dino.Tile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tiles); err != nil {
		return fmt.Errorf("encoding tiles: %w", err)
	}
	return nil
}

type htmlTile struct {
	Name    string
	Alt     string
	Src     string
	Fact    string
	HasFact bool
}

type htmlPage struct {
	Title string
	Tiles []htmlTile
}

// HTML writes a static page with one grid item per tile.
func HTML(w io.Writer, tiles []dino.Tile, opts Options) error {
	page := htmlPage{Title: opts.Title}
	if page.Title == "" {
		page.Title = "Dinosaurs"
	}

	for _, t := range tiles {
		alt := "Dinosaur"
		if t.Kind == dino.TileHuman {
			alt = "Human"
		}
		page.Tiles = append(page.Tiles, htmlTile{
			Name:    t.Name,
			Alt:     alt + "'s silhouette",
			Src:     ImagePath(opts.imagesDir(), t),
			Fact:    t.Fact,
			HasFact: t.HasFact(),
		})
	}

	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}
	return nil
}

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="utf-8">
	<title>{{.Title}}</title>
	<style>
		#grid { display: grid; grid-template-columns: repeat(3, 1fr); }
		.grid-item { text-align: center; padding: 1em; }
		.grid-item img { max-width: 100%; }
	</style>
</head>
<body>
	<h1>{{.Title}}</h1>
	<main id="grid">
{{- range .Tiles}}
		<div class="grid-item">
			<h3>{{.Name}}</h3>
			<img alt="{{.Alt}}" src="{{.Src}}"/>
			{{- if .HasFact}}
			<p>{{.Fact}}</p>
			{{- end}}
		</div>
{{- end}}
	</main>
</body>
</html>
`
