package views

import (
	"cmp"
	"os"
	"path/filepath"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DatasetExtensions are the file types the dataset picker offers.
var DatasetExtensions = []string{".json", ".db", ".sqlite", ".sqlite3"}

// FileSelectedMsg is sent when a dataset file is chosen.
type FileSelectedMsg struct {
	Path string
}

var (
	pickerDirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Bold(true)

	pickerFileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	pickerCursorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436"))
)

// pickerItem is one row of the picker.
type pickerItem struct {
	name string
	path string
	dir  bool
}

// FilePickerModel browses directories for dataset files.
type FilePickerModel struct {
	dir    string
	items  []pickerItem // ".." first when dir has a parent
	found  int          // items besides ".."
	cursor int
	top    int

	exts map[string]bool
	err  error

	width  int
	height int
}

// NewFilePickerModel opens a picker in dir listing subdirectories and files
// with one of exts. An empty dir means the working directory.
func NewFilePickerModel(dir string, exts []string) FilePickerModel {
	if dir == "" {
		dir, _ = os.Getwd()
	}
	m := FilePickerModel{exts: make(map[string]bool, len(exts))}
	for _, e := range exts {
		m.exts[strings.ToLower(e)] = true
	}
	m.open(cmp.Or(dir, string(filepath.Separator)))
	return m
}

// SetSize updates the view dimensions.
func (m *FilePickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Dir returns the directory being listed.
func (m FilePickerModel) Dir() string {
	return m.dir
}

// Names returns the listed names in display order.
func (m FilePickerModel) Names() []string {
	names := make([]string, len(m.items))
	for i, it := range m.items {
		names[i] = it.name
	}
	return names
}

// open lists dir, hiding dotfiles and files of other types.
func (m *FilePickerModel) open(dir string) {
	m.dir = dir
	m.items = nil
	m.found = 0
	m.cursor = 0
	m.top = 0

	entries, err := os.ReadDir(dir)
	m.err = err

	if parent := filepath.Dir(dir); parent != dir {
		m.items = append(m.items, pickerItem{name: "..", path: parent, dir: true})
	}

	var listed []pickerItem
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !e.IsDir() && !m.exts[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		listed = append(listed, pickerItem{name: name, path: filepath.Join(dir, name), dir: e.IsDir()})
	}

	// Directories before files, each group by name.
	slices.SortFunc(listed, func(a, b pickerItem) int {
		if a.dir != b.dir {
			if a.dir {
				return -1
			}
			return 1
		}
		return strings.Compare(strings.ToLower(a.name), strings.ToLower(b.name))
	})

	m.found = len(listed)
	m.items = append(m.items, listed...)
}

// Update handles messages.
func (m FilePickerModel) Update(msg tea.Msg) (FilePickerModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "j", "down":
		m.moveTo(m.cursor + 1)
	case "k", "up":
		m.moveTo(m.cursor - 1)
	case "g":
		m.moveTo(0)
	case "G":
		m.moveTo(len(m.items) - 1)
	case "backspace", "h":
		if parent := filepath.Dir(m.dir); parent != m.dir {
			m.open(parent)
		}
	case "~":
		if home, err := os.UserHomeDir(); err == nil {
			m.open(home)
		}
	case "enter", "l", "right":
		if m.cursor >= len(m.items) {
			return m, nil
		}
		it := m.items[m.cursor]
		if it.dir {
			m.open(it.path)
			return m, nil
		}
		return m, func() tea.Msg { return FileSelectedMsg{Path: it.path} }
	}

	return m, nil
}

func (m *FilePickerModel) moveTo(i int) {
	m.cursor = max(min(i, len(m.items)-1), 0)

	rows := m.rows()
	if m.cursor < m.top {
		m.top = m.cursor
	} else if m.cursor >= m.top+rows {
		m.top = m.cursor - rows + 1
	}
}

// rows is how many items fit under the header and help lines.
func (m FilePickerModel) rows() int {
	return max(m.height-10, 5)
}

// View renders the picker.
func (m FilePickerModel) View() string {
	var b strings.Builder

	b.WriteString(datasetPathStyle.Render(m.dir))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	end := min(m.top+m.rows(), len(m.items))
	for i := m.top; i < end; i++ {
		it := m.items[i]

		label, style := it.name, pickerFileStyle
		if it.dir {
			label, style = it.name+"/", pickerDirStyle
		}
		cursor := "  "
		if i == m.cursor {
			cursor, style = "› ", pickerCursorStyle
		}
		b.WriteString(cursor + style.Render(label) + "\n")
	}

	if m.found == 0 {
		b.WriteString(datasetMutedStyle.Render("  (no dataset files found)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: open • backspace: parent • ~: home • esc: cancel"))
	return b.String()
}
