package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/dinocompare/internal/clipboard"
	"github.com/f3rmion/dinocompare/internal/dino"
	"github.com/f3rmion/dinocompare/internal/tui/silhouette"
	"github.com/mattn/go-runewidth"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(0, 1).
			Align(lipgloss.Center)

	humanCardStyle = cardStyle.
			BorderForeground(lipgloss.Color("#ffe66d"))

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff6b6b"))

	humanTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d"))

	artStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf"))

	factStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)
)

// NewFormMsg asks the app to return to an empty form.
type NewFormMsg struct{}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// GridModel shows the nine comparison tiles.
type GridModel struct {
	entries  []dino.Entry
	rng      dino.Rand
	renderer *silhouette.Renderer

	human dino.Human
	tiles []dino.Tile
	err   error

	copied  bool
	copyErr error

	width  int
	height int
}

// NewGridModel creates a grid drawing from entries.
func NewGridModel(entries []dino.Entry, rng dino.Rand, renderer *silhouette.Renderer) GridModel {
	return GridModel{
		entries:  entries,
		rng:      rng,
		renderer: renderer,
	}
}

// SetSize updates the view dimensions.
func (m *GridModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetHuman generates a fresh set of tiles for h.
func (m *GridModel) SetHuman(h dino.Human) error {
	m.human = h
	return m.Reroll()
}

// Reroll draws new facts for the current human.
func (m *GridModel) Reroll() error {
	m.tiles, m.err = dino.GenerateTiles(m.entries, m.human, m.rng)
	m.copied = false
	m.copyErr = nil
	return m.err
}

// SetEntries swaps the dataset and redraws any tiles already shown.
func (m *GridModel) SetEntries(entries []dino.Entry) error {
	m.entries = entries
	if len(m.tiles) == 0 && m.err == nil {
		return nil
	}
	return m.Reroll()
}

// Tiles returns the current tiles.
func (m GridModel) Tiles() []dino.Tile {
	return m.tiles
}

// Update handles messages.
func (m GridModel) Update(msg tea.Msg) (GridModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			// A failure stays in m.err and is shown by View.
			_ = m.Reroll()
			return m, nil
		case "n":
			return m, func() tea.Msg { return NewFormMsg{} }
		case "y":
			if len(m.tiles) == 0 {
				return m, nil
			}
			if err := clipboard.WriteTiles(m.tiles); err != nil {
				m.copyErr = err
				return m, nil
			}
			m.copied = true
			return m, clearCopiedAfter(2 * time.Second)
		}

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	return m, nil
}

// View renders the 3x3 grid.
func (m GridModel) View() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}
	if len(m.tiles) == 0 {
		return helpStyle.Render("Fill in the form to see how you compare")
	}

	cardWidth := 26
	if m.width > 0 {
		cardWidth = (m.width - 6) / 3
	}
	if cardWidth < 18 {
		cardWidth = 18
	}
	// border and padding
	inner := cardWidth - 4

	var rows []string
	for r := 0; r < 3; r++ {
		var cards []string
		for c := 0; c < 3; c++ {
			cards = append(cards, m.renderCard(m.tiles[r*3+c], cardWidth, inner))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s vs. the dinosaurs", m.human.Name)))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n")

	if m.copied {
		b.WriteString(copiedStyle.Render("Copied!"))
		b.WriteString("\n")
	} else if m.copyErr != nil {
		b.WriteString(errorStyle.Render("Copy failed: " + m.copyErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("r: new facts • y: copy • n: start over • esc: menu"))
	return b.String()
}

func (m GridModel) renderCard(t dino.Tile, width, inner int) string {
	title := cardTitleStyle
	style := cardStyle
	if t.Kind == dino.TileHuman {
		title = humanTitleStyle
		style = humanCardStyle
	}

	parts := []string{title.Render(runewidth.Truncate(t.Name, inner, "…"))}

	if m.renderer != nil {
		artCols := inner
		artRows := m.artRows()
		if art := m.renderer.Render(t.ImageKey, t.Name, artCols, artRows); art != "" {
			parts = append(parts, artStyle.Render(art))
		}
	}

	if t.HasFact() {
		parts = append(parts, factStyle.Render(wordWrap(t.Fact, inner)))
	}

	return style.Width(width).Render(strings.Join(parts, "\n"))
}

// artRows sizes the silhouettes so three card rows fit the view height.
func (m GridModel) artRows() int {
	if m.height <= 0 {
		return 4
	}
	rows := (m.height-6)/3 - 6
	if rows < 2 {
		return 2
	}
	if rows > 8 {
		return 8
	}
	return rows
}

func wordWrap(s string, width int) string {
	if width <= 0 {
		width = 60
	}
	var lines []string
	var currentLine strings.Builder
	currentWidth := 0

	for _, word := range strings.Fields(s) {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth+wordWidth+1 > width && currentWidth > 0 {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			currentLine.WriteString(" ")
			currentWidth++
		}
		currentLine.WriteString(word)
		currentWidth += wordWidth
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}
	return strings.Join(lines, "\n")
}
