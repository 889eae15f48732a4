// package ui implements the interactive program editor on bubbletea.
//
// The view owns one [editor.Model] for its lifetime. All mutation happens in
// Update; asynchronous work (load, availability check, save) runs in
// [tea.Cmd] functions that hand results back as messages.
package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/trainpartner/tpx/internal/editor"
	"github.com/trainpartner/tpx/internal/models"
	"github.com/trainpartner/tpx/internal/validate"
)

// focusArea marks which surface owns keystrokes.
type focusArea int

const (
	focusTitle focusArea = iota
	focusTable
)

// editorColumns is the cell navigation order.
var editorColumns = []editor.Column{editor.ColDay, editor.ColExercise, editor.ColSeries, editor.ColRepeats}

type programLoadedMsg struct {
	err error
}

type titleCheckedMsg editor.Outcome

type programSavedMsg struct {
	program *models.Program
	err     error
}

// Model is the bubbletea model for the program editor.
type Model struct {
	ctx       context.Context
	program   *editor.Model
	programID int64

	focus      focusArea
	titleInput textinput.Model
	cellInput  textinput.Model
	cursor     int
	colIdx     int
	editing    bool
	editErr    string

	loading bool
	saving  bool
	notice  string
	failed  bool

	width  int
	height int
	help   help.Model
	keys   keyMap
}

// NewModel creates the editor view. A zero programID starts a new program;
// otherwise the existing program is loaded on Init.
func NewModel(ctx context.Context, program *editor.Model, programID int64) *Model {
	ti := textinput.New()
	ti.Placeholder = "Program title"
	ti.CharLimit = validate.ProgramTitleMaxLength + 5
	ti.Focus()

	ci := textinput.New()
	ci.CharLimit = 64

	return &Model{
		ctx:        ctx,
		program:    program,
		programID:  programID,
		titleInput: ti,
		cellInput:  ci,
		loading:    programID != 0,
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

// Init kicks off the program load in edit mode.
func (m *Model) Init() tea.Cmd {
	if m.programID != 0 {
		return tea.Batch(m.loadProgram(), textinput.Blink)
	}
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case programLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.notice = "Program could not be loaded"
			m.failed = true
			return m, nil
		}
		m.titleInput.SetValue(m.program.Title.Value)
		return m, nil

	case titleCheckedMsg:
		m.program.ApplyTitle(editor.Outcome(msg))
		return m, nil

	case programSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.notice = validate.Undefined
			m.failed = true
			return m, nil
		}
		m.notice = "Program successfully saved!"
		m.failed = false
		return m, tea.Quit

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) && !m.editing && m.focus != focusTitle {
			return m, tea.Quit
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.loading || m.saving {
			return m, nil
		}
		if m.editing {
			return m.handleCellKeys(msg)
		}
		if m.focus == focusTitle {
			return m.handleTitleKeys(msg)
		}
		return m.handleTableKeys(msg)
	}

	return m, nil
}

func (m *Model) handleTitleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.focus), msg.String() == "enter":
		// Leaving the title field is the blur: run the availability check.
		m.focus = focusTable
		m.titleInput.Blur()
		if m.program.BeginTitleCheck() {
			return m, m.checkTitle()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	m.program.SetTitle(m.titleInput.Value())
	return m, cmd
}

func (m *Model) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.program.Rows.Rows()

	switch {
	case key.Matches(msg, m.keys.focus):
		m.focus = focusTitle
		return m, m.titleInput.Focus()

	case key.Matches(msg, m.keys.up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.left):
		if m.colIdx > 0 {
			m.colIdx--
		}

	case key.Matches(msg, m.keys.right):
		if m.colIdx < len(editorColumns)-1 {
			m.colIdx++
		}

	case key.Matches(msg, m.keys.edit):
		m.startCellEdit()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.add):
		m.program.Rows.AddRow()
		m.cursor = m.program.Rows.Len() - 1

	case key.Matches(msg, m.keys.del):
		if m.program.Rows.CanDelete() {
			m.program.Rows.DeleteRow(rows[m.cursor].Key)
			if m.cursor >= m.program.Rows.Len() {
				m.cursor = m.program.Rows.Len() - 1
			}
		}

	case key.Matches(msg, m.keys.save):
		if m.program.Valid() {
			m.saving = true
			return m, m.save()
		}
		m.notice = "Program title must be validated before saving"
		m.failed = true
	}

	return m, nil
}

func (m *Model) handleCellKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.cancel):
		// Cancel discards the draft and returns the cell to viewing.
		m.editing = false
		m.editErr = ""
		return m, nil

	case key.Matches(msg, m.keys.commit):
		rows := m.program.Rows.Rows()
		rowKey := rows[m.cursor].Key
		err := m.program.Rows.CommitCell(rowKey, editorColumns[m.colIdx], m.cellInput.Value())
		if err != nil {
			// Validation gate: the cell stays in editing with an inline error.
			m.editErr = err.Error()
			return m, nil
		}
		m.editing = false
		m.editErr = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.cellInput, cmd = m.cellInput.Update(msg)
	return m, cmd
}

func (m *Model) startCellEdit() {
	rows := m.program.Rows.Rows()
	if m.cursor >= len(rows) {
		return
	}

	row := rows[m.cursor]
	var current string
	switch editorColumns[m.colIdx] {
	case editor.ColDay:
		current = strconv.Itoa(row.Day)
	case editor.ColExercise:
		current = row.Name
	case editor.ColSeries:
		current = strconv.Itoa(row.Series)
	case editor.ColRepeats:
		current = strconv.Itoa(row.RepeatsPerSeries)
	}

	m.cellInput.SetValue(current)
	m.cellInput.CursorEnd()
	m.cellInput.Focus()
	m.editing = true
	m.editErr = ""
}

func (m *Model) loadProgram() tea.Cmd {
	return func() tea.Msg {
		return programLoadedMsg{err: m.program.Load(m.ctx, m.programID)}
	}
}

func (m *Model) checkTitle() tea.Cmd {
	value := m.program.Title.Value
	return func() tea.Msg {
		return titleCheckedMsg(m.program.CheckTitle(m.ctx, value))
	}
}

func (m *Model) save() tea.Cmd {
	return func() tea.Msg {
		program, err := m.program.Save(m.ctx)
		return programSavedMsg{program: program, err: err}
	}
}

// View renders the editor.
func (m *Model) View() string {
	if m.loading {
		return "Loading program...\n"
	}

	var b strings.Builder

	pageTitle := "New program"
	if m.programID != 0 {
		pageTitle = "Edit program"
	}
	b.WriteString(styles.title.Render(pageTitle))
	b.WriteString("\n")

	b.WriteString(m.renderTitleField())
	b.WriteString("\n\n")
	b.WriteString(m.renderTable())
	b.WriteString("\n")

	if m.editErr != "" {
		b.WriteString(styles.err.Render(m.editErr))
		b.WriteString("\n")
	}
	if m.notice != "" {
		if m.failed {
			b.WriteString(styles.err.Render(m.notice))
		} else {
			b.WriteString(styles.ok.Render(m.notice))
		}
		b.WriteString("\n")
	}
	if m.saving {
		b.WriteString("Saving...\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m *Model) renderTitleField() string {
	label := "Program title: "
	field := m.titleInput.View()
	if m.focus != focusTitle {
		field = m.program.Title.Value
	}

	var status string
	switch m.program.Title.Status {
	case models.StatusValidating:
		status = styles.warn.Render(" (checking...)")
	case models.StatusSuccess:
		status = styles.ok.Render(" ✓")
	case models.StatusError:
		status = styles.err.Render(" ✗ " + m.program.Title.Message)
	}

	return label + field + status
}

func (m *Model) renderTable() string {
	var b strings.Builder

	headers := make([]string, 0, len(editorColumns)+2)
	for _, col := range editorColumns {
		headers = append(headers, col.Title())
	}
	headers = append(headers, "Total Repeats", "Action")
	b.WriteString(styles.header.Render(strings.Join(headers, " | ")))
	b.WriteString("\n")

	for i, row := range m.program.Rows.Rows() {
		cells := []string{
			strconv.Itoa(row.Day),
			row.Name,
			strconv.Itoa(row.Series),
			strconv.Itoa(row.RepeatsPerSeries),
		}

		for j := range cells {
			if m.focus == focusTable && i == m.cursor && j == m.colIdx {
				if m.editing {
					cells[j] = styles.editing.Render(m.cellInput.View())
				} else {
					cells[j] = styles.selected.Render(cells[j])
				}
			}
		}

		cells = append(cells, strconv.Itoa(row.TotalRepeats()))
		if m.program.Rows.CanDelete() {
			cells = append(cells, "Delete")
		} else {
			cells = append(cells, "")
		}

		b.WriteString(strings.Join(cells, " | "))
		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) renderHelp() string {
	if m.editing {
		return m.help.ShortHelpView([]key.Binding{m.keys.commit, m.keys.cancel})
	}
	if m.focus == focusTitle {
		blur := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "check title"))
		return m.help.ShortHelpView([]key.Binding{blur, m.keys.focus})
	}
	return m.help.ShortHelpView([]key.Binding{
		m.keys.edit, m.keys.add, m.keys.del, m.keys.save, m.keys.focus, m.keys.quit,
	})
}

// Failed reports whether the last load or save surfaced an error; the CLI
// uses it for its exit status.
func (m *Model) Failed() bool {
	return m.failed
}
