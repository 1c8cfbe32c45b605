// Package views provides the individual views for the unified TUI.
package views

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/dinocompare/internal/dino"
	"github.com/f3rmion/dinocompare/internal/intake"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true).
			Width(10)

	labelActiveStyle = labelStyle.
				Foreground(lipgloss.Color("#ffe66d"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	unsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)

	stepperStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee")).
			Background(lipgloss.Color("#3d5a80")).
			Padding(0, 3).
			MarginTop(1)

	buttonActiveStyle = buttonStyle.
				Bold(true).
				Foreground(lipgloss.Color("#1a1a2e")).
				Background(lipgloss.Color("#ffe66d"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true)

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#ff6b6b")).
			Padding(1, 3)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(1, 2)
)

// SubmitMsg is sent when the form holds a complete human.
type SubmitMsg struct {
	Human dino.Human
}

// stepper is a numeric field that only changes through step keys.
type stepper struct {
	value float64
	set   bool
	step  float64
	big   float64
	min   float64
	max   float64
}

func (s *stepper) add(delta float64) {
	if !s.set {
		s.set = true
		s.value = s.min
		if delta < 0 {
			return
		}
	}
	s.value += delta
	if s.value < s.min {
		s.value = s.min
	}
	if s.max > 0 && s.value > s.max {
		s.value = s.max
	}
}

func (s stepper) String() string {
	if !s.set {
		return ""
	}
	return strconv.FormatFloat(s.value, 'f', -1, 64)
}

// focus positions in form order; the last one is the submit button.
const (
	focusName = iota
	focusFeet
	focusInches
	focusWeight
	focusDiet
	focusSubmit
	focusCount
)

// FormModel collects the human's details.
type FormModel struct {
	name     textinput.Model
	steppers map[string]*stepper
	diets    []string
	diet     int // -1 until chosen

	focus int
	alert string
	err   error

	title  cases.Caser
	width  int
	height int
}

// NewFormModel creates an empty form offering the given diet choices.
func NewFormModel(diets []string) FormModel {
	ti := textinput.New()
	ti.Placeholder = "Your name"
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 30
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	return FormModel{
		name: ti,
		steppers: map[string]*stepper{
			intake.FieldFeet:   {step: 1, big: 1, max: 9},
			intake.FieldInches: {step: 1, big: 6, max: 11},
			intake.FieldWeight: {step: 1, big: 10, max: 2000},
		},
		diets: diets,
		diet:  -1,
		title: cases.Title(language.English),
	}
}

// SetSize updates the view dimensions.
func (m *FormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Values returns the current field values keyed by field name.
// Unset fields are empty strings.
func (m FormModel) Values() map[string]string {
	values := map[string]string{
		intake.FieldName: m.name.Value(),
	}
	for field, s := range m.steppers {
		values[field] = s.String()
	}
	if m.diet >= 0 && m.diet < len(m.diets) {
		values[intake.FieldDiet] = m.diets[m.diet]
	} else {
		values[intake.FieldDiet] = ""
	}
	return values
}

// Alert returns the blocking alert text, if any.
func (m FormModel) Alert() string {
	return m.alert
}

// Update handles messages.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.focus == focusName {
			var cmd tea.Cmd
			m.name, cmd = m.name.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// The alert blocks everything until dismissed.
	if m.alert != "" {
		m.alert = ""
		return m, nil
	}

	switch keyMsg.String() {
	case "enter":
		return m.submit()
	case "tab", "down":
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	}

	switch m.focus {
	case focusName:
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	case focusFeet, focusInches, focusWeight:
		m.stepFocused(keyMsg.String())
	case focusDiet:
		m.cycleDiet(keyMsg.String())
	}

	// Typed characters never reach numeric fields.
	return m, nil
}

func (m *FormModel) setFocus(f int) {
	m.focus = f
	if f == focusName {
		m.name.Focus()
	} else {
		m.name.Blur()
	}
}

func (m FormModel) focusedField() string {
	switch m.focus {
	case focusFeet:
		return intake.FieldFeet
	case focusInches:
		return intake.FieldInches
	case focusWeight:
		return intake.FieldWeight
	}
	return ""
}

func (m *FormModel) stepFocused(key string) {
	s := m.steppers[m.focusedField()]
	if s == nil {
		return
	}
	switch key {
	case "right", "l", "+", "=":
		s.add(s.step)
	case "left", "h", "-":
		s.add(-s.step)
	case "pgup", "shift+right":
		s.add(s.big)
	case "pgdown", "shift+left":
		s.add(-s.big)
	}
}

func (m *FormModel) cycleDiet(key string) {
	if len(m.diets) == 0 {
		return
	}
	switch key {
	case "right", "l", " ":
		m.diet = (m.diet + 1) % len(m.diets)
	case "left", "h":
		if m.diet <= 0 {
			m.diet = len(m.diets) - 1
		} else {
			m.diet--
		}
	}
}

func (m FormModel) submit() (FormModel, tea.Cmd) {
	h, err := intake.Parse(m.Values())
	if errors.Is(err, intake.ErrIncomplete) {
		m.alert = intake.RequiredMessage
		m.err = err
		return m, nil
	}
	if err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	return m, func() tea.Msg {
		return SubmitMsg{Human: h}
	}
}

// Reset clears every field.
func (m *FormModel) Reset() {
	diets := m.diets
	width, height := m.width, m.height
	*m = NewFormModel(diets)
	m.SetSize(width, height)
}

// View renders the form.
func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Dinosaurs"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("How do you compare?"))
	b.WriteString("\n\n")

	var rows []string
	rows = append(rows, m.renderRow(focusName, "Name", m.name.View()))
	rows = append(rows, m.renderRow(focusFeet, "Feet", m.renderStepper(intake.FieldFeet)))
	rows = append(rows, m.renderRow(focusInches, "Inches", m.renderStepper(intake.FieldInches)))
	rows = append(rows, m.renderRow(focusWeight, "Weight", m.renderStepper(intake.FieldWeight)+valueStyle.Render(" lbs")))
	rows = append(rows, m.renderRow(focusDiet, "Diet", m.renderDiet()))

	button := buttonStyle.Render("Compare Me!")
	if m.focus == focusSubmit {
		button = buttonActiveStyle.Render("Compare Me!")
	}
	rows = append(rows, button)

	b.WriteString(boxStyle.Render(strings.Join(rows, "\n")))
	b.WriteString("\n")

	if m.alert != "" {
		b.WriteString("\n")
		b.WriteString(alertStyle.Render(errorStyle.Render(m.alert) + "\n\n" + helpStyle.Render("Press any key")))
		b.WriteString("\n")
	} else if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/↑↓: move • ←/→ or +/-: change value • pgup/pgdn: big step • enter: compare"))

	return b.String()
}

func (m FormModel) renderRow(focus int, label, value string) string {
	style := labelStyle
	if m.focus == focus {
		style = labelActiveStyle
	}
	return style.Render(label+":") + " " + value
}

func (m FormModel) renderStepper(field string) string {
	s := m.steppers[field]
	v := unsetStyle.Render("--")
	if s.set {
		v = valueStyle.Render(s.String())
	}
	return stepperStyle.Render("◀ ") + v + stepperStyle.Render(" ▶")
}

func (m FormModel) renderDiet() string {
	if m.diet < 0 || m.diet >= len(m.diets) {
		return stepperStyle.Render("◀ ") + unsetStyle.Render("choose") + stepperStyle.Render(" ▶")
	}
	return stepperStyle.Render("◀ ") + valueStyle.Render(m.title.String(m.diets[m.diet])) + stepperStyle.Render(" ▶")
}
