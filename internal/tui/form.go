package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeanpaul/roster/internal/people"
)

const (
	fieldFirstName = iota
	fieldLastName
	fieldAge
	fieldJobTitle
	fieldCity
	fieldState
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"First Name", "Last Name", "Age", "Job Title", "City", "State",
}

var fieldPlaceholders = [fieldCount]string{
	"Enter first name",
	"Enter last name",
	"1-120",
	"e.g., Software Engineer",
	"Enter city",
	"Enter state",
}

// form holds the six entry inputs and the focus cursor.
type form struct {
	inputs     [fieldCount]textinput.Model
	focus      int
	defaultAge int
}

func newForm(defaultAge int) form {
	f := form{defaultAge: defaultAge}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[i]
		ti.Prompt = ""
		ti.CharLimit = 64
		ti.Width = 28
		if i == fieldAge {
			ti.CharLimit = 3
			ti.Width = 6
			ti.SetValue(strconv.Itoa(defaultAge))
		}
		f.inputs[i] = ti
	}
	f.inputs[fieldFirstName].Focus()
	return f
}

func (f *form) next() tea.Cmd {
	return f.setFocus((f.focus + 1) % fieldCount)
}

func (f *form) prev() tea.Cmd {
	return f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f *form) setFocus(idx int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = idx
	return f.inputs[f.focus].Focus()
}

// submit validates the current field values and builds the record. The
// store is untouched on failure; the caller surfaces the error.
func (f *form) submit() (people.Record, error) {
	ageRaw := strings.TrimSpace(f.inputs[fieldAge].Value())
	age, err := strconv.Atoi(ageRaw)
	if err != nil {
		return people.Record{}, fmt.Errorf("age must be a whole number")
	}
	return people.New(
		f.inputs[fieldFirstName].Value(),
		f.inputs[fieldLastName].Value(),
		age,
		f.inputs[fieldJobTitle].Value(),
		f.inputs[fieldCity].Value(),
		f.inputs[fieldState].Value(),
	)
}

// reset clears the form back to its initial state after a successful add.
func (f *form) reset() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.inputs[fieldAge].SetValue(strconv.Itoa(f.defaultAge))
	return f.setFocus(fieldFirstName)
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view() string {
	var b strings.Builder
	for i := range f.inputs {
		label := LabelStyle.Render(fieldLabels[i])
		if i == f.focus {
			label = FocusedLabelStyle.Render(fieldLabels[i])
		}
		b.WriteString(label + "\n")
		b.WriteString(f.inputs[i].View())
		if i < fieldCount-1 {
			b.WriteString("\n")
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		SectionStyle.Render("Add Person"),
		b.String(),
	)
}
