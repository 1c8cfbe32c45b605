package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/dinocompare/internal/config"
	"github.com/f3rmion/dinocompare/internal/dataset"
	"github.com/f3rmion/dinocompare/internal/dino"
	"github.com/f3rmion/dinocompare/internal/intake"
	"github.com/f3rmion/dinocompare/internal/tui/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) AppModel {
	t.Helper()
	ds, err := dataset.Default()
	require.NoError(t, err)

	cfg := config.Default()
	m := NewApp(ds.WithNonComparable(cfg.NonComparable), cfg, dino.NewRand(3), nil, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 50})
	return next.(AppModel)
}

func send(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	app, ok := next.(AppModel)
	require.True(t, ok)
	return app, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestApp_LoadingUntilSized(t *testing.T) {
	ds, err := dataset.Default()
	require.NoError(t, err)
	m := NewApp(ds, nil, dino.NewRand(1), nil, nil)
	assert.Equal(t, "Loading...", m.View())

	m = newTestApp(t)
	assert.Contains(t, m.View(), "1. Compare")
	assert.Equal(t, ViewForm, m.CurrentView())
}

func TestApp_IncompleteSubmitStaysOnForm(t *testing.T) {
	m := newTestApp(t)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, ViewForm, m.CurrentView())
	assert.Contains(t, m.View(), intake.RequiredMessage)
}

func TestApp_TypingQDoesNotQuitForm(t *testing.T) {
	m := newTestApp(t)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.False(t, isQuit(cmd))
	assert.Equal(t, ViewForm, m.CurrentView())
}

func TestApp_SubmitShowsGrid(t *testing.T) {
	m := newTestApp(t)
	human := dino.Human{Name: "Ann", Feet: 5, Inches: 6, Weight: 150, Diet: "omnivor"}

	m, _ = send(t, m, views.SubmitMsg{Human: human})
	assert.Equal(t, ViewGrid, m.CurrentView())

	tiles := m.Tiles()
	require.Len(t, tiles, dino.GridSize)
	assert.Equal(t, "Ann", tiles[dino.HumanPosition].Name)
	assert.Contains(t, m.View(), "Ann vs. the dinosaurs")

	// The menu's Compare entry keeps showing the grid.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	assert.Equal(t, ViewDataset, m.CurrentView())
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	assert.Equal(t, ViewGrid, m.CurrentView())

	m, _ = send(t, m, views.NewFormMsg{})
	assert.Equal(t, ViewForm, m.CurrentView())
}

func TestApp_EscTwiceQuits(t *testing.T) {
	m := newTestApp(t)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, isQuit(cmd))

	_, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, isQuit(cmd))
}

func TestApp_HelpOverlay(t *testing.T) {
	m := newTestApp(t)
	m, _ = send(t, m, views.SubmitMsg{Human: dino.Human{Name: "Ann", Feet: 5, Weight: 150, Diet: "omnivor"}})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.Contains(t, m.View(), "Dinosaur comparison")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Contains(t, m.View(), "Ann vs. the dinosaurs")
}

func TestApp_OpenDataset(t *testing.T) {
	ds, err := dataset.Default()
	require.NoError(t, err)
	dbPath := filepath.Join(t.TempDir(), "dinos.db")
	require.NoError(t, ds.ExportSQLite(dbPath))

	m := newTestApp(t)
	m, _ = send(t, m, views.SubmitMsg{Human: dino.Human{Name: "Ann", Feet: 5, Weight: 150, Diet: "omnivor"}})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	require.Equal(t, ViewDataset, m.CurrentView())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	assert.Contains(t, m.View(), "Open dataset")

	// Esc closes the picker instead of opening the menu.
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, isQuit(cmd))
	assert.Contains(t, m.View(), "Source: embedded")

	m, _ = send(t, m, views.FileSelectedMsg{Path: dbPath})
	assert.Contains(t, m.View(), "Source: "+dbPath)
	require.Len(t, m.Tiles(), dino.GridSize)
	assert.Equal(t, "All birds are dinosaurs.", m.Tiles()[8].Fact)

	m, _ = send(t, m, views.FileSelectedMsg{Path: filepath.Join(t.TempDir(), "missing.json")})
	assert.Contains(t, m.View(), "missing.json")
}
