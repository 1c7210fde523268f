package students

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/edusync/internal/models"
)

type MarkAttendanceMsg struct {
	ID   int
	Name string
}

// ListMsg carries a result produced by the student list back to it, so it
// reaches this list even when another tab is active.
type ListMsg struct {
	Msg tea.Msg
}

type Item struct {
	Student models.Student
	Days    int
	Marking bool
}

func (i Item) Title() string {
	action := "✅ Mark Present"
	if i.Marking {
		action = "⏳ Marking..."
	}
	return fmt.Sprintf("%s  [%s]", i.Student.Name, action)
}

func (i Item) Description() string {
	interest := i.Student.Interest()
	if interest == "" {
		interest = "-"
	}
	return fmt.Sprintf("Roll: %s | Class: %s | Career Interest: %s | Total Attendance: %d days",
		i.Student.RollNumber, i.Student.ClassName, interest, i.Days)
}

func (i Item) FilterValue() string { return i.Student.Name }

type KeyMap struct {
	Mark key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Mark: key.NewBinding(
			key.WithKeys("m", "enter"),
			key.WithHelp("m/enter", "mark present"),
		),
	}
}

type Model struct {
	list     list.Model
	keys     KeyMap
	inFlight bool
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "👥 Student Attendance Management"
	l.SetShowHelp(false)
	l.SetStatusBarItemName("student", "students")

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Mark}
	}

	return Model{
		list: l,
		keys: keys,
	}
}

// SetStudents rebuilds the rows. days is evaluated for every student on
// every call so totals follow the attendance cache.
func (m *Model) SetStudents(students []models.Student, days func(studentID int) int, inFlight bool) tea.Cmd {
	m.inFlight = inFlight
	items := make([]list.Item, len(students))
	for i, s := range students {
		items[i] = Item{Student: s, Days: days(s.ID), Marking: inFlight}
	}
	return wrap(m.list.SetItems(items))
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case ListMsg:
		m.list, cmd = m.list.Update(msg.Msg)
		return m, wrap(cmd)

	case tea.KeyMsg:
		if m.Filtering() {
			break
		}

		if key.Matches(msg, m.keys.Mark) {
			// The control is disabled while a mark is outstanding
			if m.inFlight {
				return m, nil
			}
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg {
					return MarkAttendanceMsg{ID: item.Student.ID, Name: item.Student.Name}
				}
			}
			return m, nil
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, wrap(cmd)
}

func (m Model) View() string {
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func wrap(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		switch msg := cmd().(type) {
		case nil:
			return nil
		case tea.QuitMsg:
			return msg
		case tea.BatchMsg:
			out := make(tea.BatchMsg, len(msg))
			for i, c := range msg {
				out[i] = wrap(c)
			}
			return out
		default:
			return ListMsg{Msg: msg}
		}
	}
}
