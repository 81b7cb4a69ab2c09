package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeanpaul/roster/internal/config"
	"github.com/jeanpaul/roster/internal/export"
	"github.com/jeanpaul/roster/internal/people"
)

// clearState models the two-step confirm-then-clear flow. Arming happens on
// the first ctrl+x; any action other than a second ctrl+x disarms, so a
// stale confirmation can never silently destroy data.
type clearState int

const (
	clearIdle clearState = iota
	clearArmed
)

type statusKind int

const (
	statusNone statusKind = iota
	statusInfo
	statusSuccess
	statusError
	statusWarning
)

type Model struct {
	width, height int
	form          form
	viewport      viewport.Model
	store         *people.Store
	exporter      export.Exporter
	exportDir     string
	clear         clearState
	status        string
	statusKind    statusKind
}

func NewModel(store *people.Store, cfg *config.Config) Model {
	vp := viewport.New(44, 18)
	vp.MouseWheelEnabled = true

	m := Model{
		form:     newForm(cfg.Form.DefaultAge),
		viewport: vp,
		store:    store,
		exporter: export.Exporter{
			SheetName:      cfg.Export.SheetName,
			MaxColumnWidth: cfg.Export.MaxColumnWidth,
		},
		exportDir:  cfg.ExportDir,
		status:     "Fill in the form and press Enter to add your first person.",
		statusKind: statusInfo,
	}
	m.rebuildList()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listWidth := m.width/2 - 6
		if listWidth < 30 {
			listWidth = 30
		}
		listHeight := m.height - 14
		if listHeight < 6 {
			listHeight = 6
		}
		m.viewport.Width = listWidth
		m.viewport.Height = listHeight
		m.rebuildList()
		return m, nil

	case tea.KeyMsg:
		// A pending clear is cancelled by anything that is not the
		// confirming second ctrl+x.
		if m.clear == clearArmed && msg.Type != tea.KeyCtrlX {
			m.clear = clearIdle
			m.setStatus(statusInfo, "Clear cancelled.")
		}

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyTab, tea.KeyDown:
			return m, m.form.next()

		case tea.KeyShiftTab, tea.KeyUp:
			return m, m.form.prev()

		case tea.KeyEnter:
			return m.submitForm()

		case tea.KeyCtrlE:
			m.exportSpreadsheet()
			return m, nil

		case tea.KeyCtrlD:
			m.exportDocument()
			return m, nil

		case tea.KeyCtrlX:
			return m.handleClear()

		case tea.KeyPgUp:
			m.viewport.HalfViewUp()
			return m, nil

		case tea.KeyPgDown:
			m.viewport.HalfViewDown()
			return m, nil
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, m.form.update(msg)
}

// submitForm validates the form and appends the record on success. On
// failure the store is left untouched and the message is surfaced for
// correction.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	rec, err := m.form.submit()
	if err != nil {
		m.setStatus(statusError, err.Error())
		return m, nil
	}

	m.store.Append(rec)
	m.setStatus(statusSuccess, fmt.Sprintf("Added %s successfully!", rec.FullName()))
	m.rebuildList()
	m.viewport.GotoBottom()
	return m, m.form.reset()
}

func (m *Model) handleClear() (tea.Model, tea.Cmd) {
	if m.store.Len() == 0 {
		m.setStatus(statusInfo, "Nothing to clear.")
		return *m, nil
	}
	if m.clear == clearIdle {
		m.clear = clearArmed
		m.setStatus(statusWarning, "Press ctrl+x again to delete all records!")
		return *m, nil
	}
	m.clear = clearIdle
	m.store.Clear()
	m.rebuildList()
	m.setStatus(statusSuccess, "All records cleared.")
	return *m, nil
}

func (m *Model) exportSpreadsheet() {
	buf, err := m.exporter.Spreadsheet(m.store.All())
	if err != nil {
		m.setStatus(statusError, "Export failed: "+err.Error())
		return
	}
	if buf == nil {
		m.setStatus(statusInfo, "Nothing to export yet.")
		return
	}
	m.writeExport(export.SpreadsheetFilename(time.Now()), buf)
}

func (m *Model) exportDocument() {
	buf, err := m.exporter.Document(m.store.All())
	if err != nil {
		m.setStatus(statusError, "Export failed: "+err.Error())
		return
	}
	if buf == nil {
		m.setStatus(statusInfo, "Nothing to export yet.")
		return
	}
	m.writeExport(export.DocumentFilename(time.Now()), buf)
}

func (m *Model) writeExport(name string, buf []byte) {
	path := filepath.Join(m.exportDir, name)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		m.setStatus(statusError, "Export failed: "+err.Error())
		return
	}
	m.setStatus(statusSuccess, "Saved "+path)
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

func (m *Model) rebuildList() {
	records := m.store.All()
	if len(records) == 0 {
		m.viewport.SetContent(HelpStyle.Render("No people added yet."))
		return
	}

	var sb strings.Builder
	for i, r := range records {
		card := lipgloss.JoinVertical(lipgloss.Left,
			CardNameStyle.Render(r.FullName()),
			CardDetailStyle.Render(fmt.Sprintf("Age: %d • %s", r.Age, r.JobTitle)),
			CardDetailStyle.Render(fmt.Sprintf("%s, %s", r.City, r.State)),
		)
		sb.WriteString(CardBorderStyle.Render(card))
		if i < len(records)-1 {
			sb.WriteString("\n\n")
		}
	}
	m.viewport.SetContent(sb.String())
}

func (m Model) statsView() string {
	stats := m.store.Stats()
	stat := func(value, label string) string {
		return lipgloss.JoinVertical(lipgloss.Center,
			StatValueStyle.Render(value),
			StatLabelStyle.Render(label),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		stat(fmt.Sprintf("%d", stats.Count), "Total People"),
		"    ",
		stat(fmt.Sprintf("%.1f", stats.AverageAge), "Average Age"),
		"    ",
		stat(fmt.Sprintf("%d", stats.DistinctStates), "Unique States"),
	)
}

func (m Model) statusView() string {
	switch m.statusKind {
	case statusSuccess:
		return SuccessStyle.Render("  ✓ " + m.status)
	case statusError:
		return ErrorStyle.Render("  ✗ " + m.status)
	case statusWarning:
		return WarningStyle.Render("  ⚠ " + m.status)
	case statusInfo:
		return InfoStyle.Render("  ℹ " + m.status)
	}
	return ""
}

func (m Model) View() string {
	header := lipgloss.JoinVertical(lipgloss.Center,
		BannerStyle.Render("ROSTER"),
		HelpStyle.Render("people information manager"),
	)

	left := PanelStyle.Render(m.form.view())
	right := PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		SectionStyle.Render("Directory"),
		m.statsView(),
		"",
		m.viewport.View(),
	))

	help := HelpStyle.Render(
		"Enter: add  •  Tab: next field  •  Ctrl+E: export xlsx  •  Ctrl+D: export docx  •  Ctrl+X: clear all  •  Esc: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right),
		m.statusView(),
		lipgloss.NewStyle().PaddingLeft(2).Render(help),
	)
}
