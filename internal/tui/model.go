package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/edusync/internal/constants"
	"github.com/julianstephens/edusync/internal/dashboard"
	"github.com/julianstephens/edusync/internal/tui/components/records"
	"github.com/julianstephens/edusync/internal/tui/components/recommend"
	"github.com/julianstephens/edusync/internal/tui/components/students"
)

// Rows taken by everything around the active tab's body
const chromeHeight = 9

// Model renders the Synchronizer's state and turns keys into its operations
type Model struct {
	sync *dashboard.Synchronizer

	keys      KeyMap
	help      help.Model
	students  students.Model
	records   records.Model
	recommend recommend.Model

	quitting bool
	width    int
	height   int
}

func NewModel(sync *dashboard.Synchronizer) Model {
	m := Model{
		sync:      sync,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		students:  students.New(0, 0),
		records:   records.New(),
		recommend: recommend.New(0, 0),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.sync.LoadInitialState()
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Refresh, m.keys.Quit, m.keys.Help}
	if m.sync.State().HasMessage() {
		keys = append(keys, m.keys.Dismiss)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Refresh, m.keys.Dismiss, m.keys.Help, m.keys.Quit}

	var actions []key.Binding
	switch m.sync.State().ActiveTab {
	case constants.TabAttendance:
		actions = []key.Binding{students.DefaultKeyMap().Mark}
	case constants.TabTasks:
		actions = m.recommend.KeyBindings()
	}

	return [][]key.Binding{global, actions}
}

// refresh rebuilds every component from the current state. Derived values
// such as per-student totals are recomputed here on each call.
func (m *Model) refresh() tea.Cmd {
	st := m.sync.State()

	days := func(id int) int { return len(st.AttendanceHistoryFor(id)) }
	cmds := []tea.Cmd{
		m.students.SetStudents(st.Students, days, st.InFlight),
		m.recommend.SetRecommendation(st.Recommendation),
		m.recommend.SetStudents(st.Students),
	}
	m.records.SetRecords(st.RecentAttendance(constants.RecentAttendanceLimit), st.StudentName)

	return tea.Batch(cmds...)
}

func (m *Model) resize() {
	h := m.height - chromeHeight
	if h < 4 {
		h = 4
	}
	w := m.width - 4
	// The attendance tab splits its body between students and recent records
	m.students.SetSize(w, h-m.recordsHeight())
	m.recommend.SetSize(w, h)
}

func (m Model) recordsHeight() int {
	return m.records.Len() + 3
}

func (m Model) filtering() bool {
	switch m.sync.State().ActiveTab {
	case constants.TabAttendance:
		return m.students.Filtering()
	case constants.TabTasks:
		return m.recommend.Filtering()
	}
	return false
}
