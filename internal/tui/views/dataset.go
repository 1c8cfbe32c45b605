package views

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/dinocompare/internal/dino"
)

var (
	datasetPathStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Italic(true).
				MarginBottom(1)

	datasetHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#a8dadc"))

	datasetRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	datasetMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))
)

// DatasetModel lists the loaded dataset entries. Pressing o opens a file
// picker for loading another dataset.
type DatasetModel struct {
	entries []dino.Entry
	source  string
	detail  bool
	scrollY int

	picker  FilePickerModel
	picking bool
	err     error

	width  int
	height int
}

// NewDatasetModel creates a dataset view.
func NewDatasetModel(entries []dino.Entry, source string) DatasetModel {
	return DatasetModel{
		entries: entries,
		source:  source,
	}
}

// SetSize updates the view dimensions.
func (m *DatasetModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.picker.SetSize(width, height)
}

// SetEntries replaces the listed dataset and closes the picker.
func (m *DatasetModel) SetEntries(entries []dino.Entry, source string) {
	m.entries = entries
	m.source = source
	m.scrollY = 0
	m.picking = false
	m.err = nil
}

// SetError shows a dataset load failure.
func (m *DatasetModel) SetError(err error) {
	m.err = err
	m.picking = false
}

// Picking reports whether the file picker is open.
func (m DatasetModel) Picking() bool {
	return m.picking
}

// ClosePicker returns to the entry list.
func (m *DatasetModel) ClosePicker() {
	m.picking = false
}

func (m *DatasetModel) openPicker() {
	dir := ""
	if _, err := os.Stat(m.source); err == nil {
		dir = filepath.Dir(m.source)
	}
	m.picker = NewFilePickerModel(dir, DatasetExtensions)
	m.picker.SetSize(m.width, m.height)
	m.picking = true
	m.err = nil
}

// Update handles messages.
func (m DatasetModel) Update(msg tea.Msg) (DatasetModel, tea.Cmd) {
	if m.picking {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "o":
			m.openPicker()
			return m, nil
		case "j", "down":
			if m.scrollY < len(m.entries)-1 {
				m.scrollY++
			}
			return m, nil
		case "k", "up":
			if m.scrollY > 0 {
				m.scrollY--
			}
			return m, nil
		case "g":
			m.scrollY = 0
			return m, nil
		case "f", "enter":
			m.detail = !m.detail
			return m, nil
		}
	}
	return m, nil
}

// View renders the dataset view.
func (m DatasetModel) View() string {
	var b strings.Builder

	if m.picking {
		b.WriteString(titleStyle.Render("Open dataset (.json, .db)"))
		b.WriteString("\n")
		b.WriteString(m.picker.View())
		return b.String()
	}

	b.WriteString(titleStyle.Render("Dataset"))
	b.WriteString("\n")
	b.WriteString(datasetPathStyle.Render("Source: " + m.source))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n\n")
	}

	if len(m.entries) == 0 {
		b.WriteString(datasetMutedStyle.Render("No entries loaded"))
		return b.String()
	}

	b.WriteString(datasetHeaderStyle.Render(fmt.Sprintf("Dinosaurs (%d entries)", len(m.entries))))
	b.WriteString("\n\n")

	header := fmt.Sprintf("%-20s %10s %8s %-10s %s", "Species", "Weight", "Height", "Diet", "When")
	b.WriteString(datasetMutedStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(datasetMutedStyle.Render(strings.Repeat("─", max(min(m.width-4, 72), 0))))
	b.WriteString("\n")

	visibleHeight := m.height - 12
	if visibleHeight < 5 {
		visibleHeight = 5
	}
	start := m.scrollY
	end := start + visibleHeight
	if end > len(m.entries) {
		end = len(m.entries)
	}

	for i := start; i < end; i++ {
		e := m.entries[i]
		species := e.Species
		if e.NonComparable {
			species += " *"
		}
		row := fmt.Sprintf("%-20s %10.1f %8.1f %-10s %s", species, e.Weight, e.Height, e.Diet, e.When)
		b.WriteString(datasetRowStyle.Render(row))
		b.WriteString("\n")
		if m.detail {
			b.WriteString(datasetMutedStyle.Render(fmt.Sprintf("    └─ %s: %s", e.Where, e.Fact)))
			b.WriteString("\n")
		}
	}

	if len(m.entries) > visibleHeight {
		b.WriteString("\n")
		b.WriteString(datasetMutedStyle.Render(fmt.Sprintf("Showing %d-%d of %d", start+1, end, len(m.entries))))
	}

	b.WriteString("\n")
	b.WriteString(datasetMutedStyle.Render("* keeps its own fact"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k: scroll • f: facts • o: open dataset"))

	return b.String()
}
