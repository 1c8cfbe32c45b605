// Package tui provides the interactive terminal UI for dinocompare.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/dinocompare/internal/config"
	"github.com/f3rmion/dinocompare/internal/dataset"
	"github.com/f3rmion/dinocompare/internal/dino"
	"github.com/f3rmion/dinocompare/internal/tui/silhouette"
	"github.com/f3rmion/dinocompare/internal/tui/views"
	"go.uber.org/zap"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewForm ViewType = iota
	ViewGrid
	ViewDataset
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// AppModel is the main TUI model
type AppModel struct {
	logger *zap.Logger
	cfg    *config.Config

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool
	compared      bool

	// Sub-models (views)
	formView    views.FormModel
	gridView    views.GridModel
	datasetView views.DatasetModel

	// Help overlay
	showHelp bool
}

// NewApp creates the TUI application for a dataset.
func NewApp(ds *dataset.Dataset, cfg *config.Config, rng dino.Rand, renderer *silhouette.Renderer, logger *zap.Logger) AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = config.Default()
	}

	entries := ds.Entries()

	return AppModel{
		logger:       logger,
		cfg:          cfg,
		sidebarWidth: 16,
		currentView:  ViewForm,
		menuItems: []MenuItem{
			{Label: "Compare", View: ViewForm, Shortcut: "1"},
			{Label: "Dataset", View: ViewDataset, Shortcut: "2"},
		},

		formView:    views.NewFormModel(cfg.Diets),
		gridView:    views.NewGridModel(entries, rng, renderer),
		datasetView: views.NewDatasetModel(entries, ds.Source()),
	}
}

// CurrentView returns the active view.
func (m AppModel) CurrentView() ViewType {
	return m.currentView
}

// Tiles returns the tiles of the last comparison.
func (m AppModel) Tiles() []dino.Tile {
	return m.gridView.Tiles()
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if !m.sidebarActive && m.currentView == ViewDataset && m.datasetView.Picking() {
				m.datasetView.ClosePicker()
				return m, nil
			}
			// Esc goes to the sidebar, a second esc quits
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		}

		// The form takes every other key so typing is never hijacked.
		if m.sidebarActive || m.currentView != ViewForm {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			}
		}

		if m.sidebarActive {
			switch msg.String() {
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
				return m, nil
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
				return m, nil
			case "1", "2":
				m.selectedMenu = int(msg.String()[0] - '1')
				m.switchTo(m.menuItems[m.selectedMenu].View)
				return m, nil
			case "enter", "l", "right", "tab":
				m.switchTo(m.menuItems[m.selectedMenu].View)
				return m, nil
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.formView.SetSize(contentWidth, contentHeight)
		m.gridView.SetSize(contentWidth, contentHeight)
		m.datasetView.SetSize(contentWidth, contentHeight)
		return m, nil

	case views.SubmitMsg:
		if err := m.gridView.SetHuman(msg.Human); err != nil {
			m.logger.Error("generating tiles", zap.Error(err))
		} else {
			m.logger.Info("comparison generated",
				zap.String("name", msg.Human.Name),
				zap.Float64("height_inches", msg.Human.HeightInches()),
				zap.Float64("weight", msg.Human.Weight),
				zap.String("diet", msg.Human.Diet))
		}
		m.compared = true
		m.currentView = ViewGrid
		return m, nil

	case views.FileSelectedMsg:
		m.loadDataset(msg.Path)
		return m, nil

	case views.NewFormMsg:
		m.logger.Debug("starting new comparison")
		m.formView.Reset()
		m.compared = false
		m.currentView = ViewForm
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewForm:
		before := m.formView.Alert()
		m.formView, cmd = m.formView.Update(msg)
		if alert := m.formView.Alert(); alert != "" && before == "" {
			m.logger.Debug("form rejected", zap.String("alert", alert))
		}
	case ViewGrid:
		m.gridView, cmd = m.gridView.Update(msg)
	case ViewDataset:
		m.datasetView, cmd = m.datasetView.Update(msg)
	}

	return m, cmd
}

// loadDataset replaces the dataset behind the grid and the dataset view.
func (m *AppModel) loadDataset(path string) {
	ds, err := dataset.LoadFromFile(path)
	if err != nil {
		m.logger.Warn("loading dataset", zap.String("path", path), zap.Error(err))
		m.datasetView.SetError(err)
		return
	}
	ds = ds.WithNonComparable(m.cfg.NonComparable)

	entries := ds.Entries()
	m.datasetView.SetEntries(entries, ds.Source())
	if err := m.gridView.SetEntries(entries); err != nil {
		m.logger.Error("redrawing tiles", zap.Error(err))
	}
	m.logger.Info("dataset loaded", zap.String("path", path), zap.Int("entries", ds.Size()))
}

func (m *AppModel) switchTo(v ViewType) {
	if v == ViewForm && m.compared {
		v = ViewGrid
	}
	m.currentView = v
	m.sidebarActive = false
	for i, item := range m.menuItems {
		if item.View == v || (v == ViewGrid && item.View == ViewForm) {
			m.selectedMenu = i
			break
		}
	}
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewForm:
		content = m.formView.View()
	case ViewGrid:
		content = m.gridView.View()
	case ViewDataset:
		content = m.datasetView.View()
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, SidebarTitleStyle.Render(" DINO "))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				// Indicate current view but not focused
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}

		items = append(items, style.Render(label))
	}

	usedHeight := len(items) + 4
	if m.height > usedHeight {
		for i := 0; i < m.height-usedHeight-2; i++ {
			items = append(items, "")
		}
	}

	items = append(items, SidebarHelpStyle.Render("esc Menu"))

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	helpText := HelpTitleStyle.Render("Dinosaur comparison") + "\n\n"

	helpText += HelpSectionStyle.Render("Global Keys") + "\n"
	helpText += HelpKeyStyle.Render("esc") + HelpDescStyle.Render("Menu (twice to quit)") + "\n"
	helpText += HelpKeyStyle.Render("ctrl+c") + HelpDescStyle.Render("Quit") + "\n"
	helpText += HelpKeyStyle.Render("?") + HelpDescStyle.Render("Show this help") + "\n"

	helpText += HelpSectionStyle.Render("Form") + "\n"
	helpText += HelpKeyStyle.Render("tab/↑↓") + HelpDescStyle.Render("Move between fields") + "\n"
	helpText += HelpKeyStyle.Render("←/→ +/-") + HelpDescStyle.Render("Change numbers and diet") + "\n"
	helpText += HelpKeyStyle.Render("pgup/pgdn") + HelpDescStyle.Render("Big steps") + "\n"
	helpText += HelpKeyStyle.Render("enter") + HelpDescStyle.Render("Compare") + "\n"

	helpText += HelpSectionStyle.Render("Dataset") + "\n"
	helpText += HelpKeyStyle.Render("f") + HelpDescStyle.Render("Show facts") + "\n"
	helpText += HelpKeyStyle.Render("o") + HelpDescStyle.Render("Open a .json or .db dataset") + "\n"

	helpText += HelpSectionStyle.Render("Grid") + "\n"
	helpText += HelpKeyStyle.Render("r") + HelpDescStyle.Render("Draw new facts") + "\n"
	helpText += HelpKeyStyle.Render("y") + HelpDescStyle.Render("Copy facts") + "\n"
	helpText += HelpKeyStyle.Render("n") + HelpDescStyle.Render("Start over") + "\n"

	helpText += "\n" + HelpCloseStyle.Render("Press any key to close")

	helpBox := HelpBoxStyle.Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
