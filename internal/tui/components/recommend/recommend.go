package recommend

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/edusync/internal/models"
)

type SelectStudentMsg struct {
	ID int
}

type AssignTaskMsg struct {
	StudentID int
	TaskID    int
}

type Pane int

const (
	PaneStudents Pane = iota
	PaneTasks
)

// ListMsg carries a result produced by one pane's list back to that list
type ListMsg struct {
	Pane Pane
	Msg  tea.Msg
}

type StudentItem struct {
	Student  models.Student
	Selected bool
}

func (i StudentItem) Title() string {
	if i.Selected {
		return "▶ " + i.Student.Name
	}
	return i.Student.Name
}

func (i StudentItem) Description() string {
	interest := i.Student.Interest()
	if interest == "" {
		return "No career interest"
	}
	return "Interest: " + interest
}

func (i StudentItem) FilterValue() string { return i.Student.Name }

type TaskItem struct {
	Task models.Task
}

func (i TaskItem) Title() string { return i.Task.Title }

func (i TaskItem) Description() string {
	return fmt.Sprintf("%s | %s | %s | ⏱ %d min",
		i.Task.Subject, i.Task.DifficultyLevel, i.Task.TaskType, i.Task.EstimatedTime)
}

func (i TaskItem) FilterValue() string { return i.Task.Title }

type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Assign key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "students"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "tasks"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select student"),
		),
		Assign: key.NewBinding(
			key.WithKeys("a", "enter"),
			key.WithHelp("a", "assign task"),
		),
	}
}

var (
	focusedPane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205"))

	blurredPane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true).Padding(1, 2)
)

type Model struct {
	students list.Model
	tasks    list.Model
	keys     KeyMap
	focus    Pane
	current  *models.Recommendation
}

func New(width, height int) Model {
	sl := list.New(nil, list.NewDefaultDelegate(), width/2, height)
	sl.Title = "👥 Select a Student"
	sl.SetShowHelp(false)
	sl.SetStatusBarItemName("student", "students")

	tl := list.New(nil, list.NewDefaultDelegate(), width/2, height)
	tl.Title = "📚 Recommended Tasks"
	tl.SetShowHelp(false)
	tl.SetFilteringEnabled(false)
	tl.SetStatusBarItemName("task", "tasks")

	return Model{
		students: sl,
		tasks:    tl,
		keys:     DefaultKeyMap(),
		focus:    PaneStudents,
	}
}

func (m Model) Focus() Pane {
	return m.focus
}

func (m Model) Filtering() bool {
	return m.students.FilterState() == list.Filtering
}

func (m Model) KeyBindings() []key.Binding {
	if m.focus == PaneTasks {
		return []key.Binding{m.keys.Left, m.keys.Assign}
	}
	return []key.Binding{m.keys.Right, m.keys.Select}
}

// SetStudents rebuilds the student pane, marking the student whose
// recommendations are shown.
func (m *Model) SetStudents(students []models.Student) tea.Cmd {
	selected := -1
	if m.current != nil {
		selected = m.current.StudentID
	}
	items := make([]list.Item, len(students))
	for i, s := range students {
		items[i] = StudentItem{Student: s, Selected: s.ID == selected}
	}
	return wrap(PaneStudents, m.students.SetItems(items))
}

// SetRecommendation replaces the task pane with rec. A nil rec clears it.
func (m *Model) SetRecommendation(rec *models.Recommendation) tea.Cmd {
	m.current = rec
	if rec == nil {
		m.tasks.Title = "📚 Recommended Tasks"
		return wrap(PaneTasks, m.tasks.SetItems(nil))
	}

	title := "📚 Recommended Tasks for " + rec.StudentName
	if interest := rec.Interest(); interest != "" {
		title += fmt.Sprintf(" (%s)", interest)
	}
	m.tasks.Title = title

	items := make([]list.Item, len(rec.RecommendedTasks))
	for i, t := range rec.RecommendedTasks {
		items[i] = TaskItem{Task: t}
	}
	return wrap(PaneTasks, m.tasks.SetItems(items))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(ListMsg); ok {
		if msg.Pane == PaneTasks {
			m.tasks, cmd = m.tasks.Update(msg.Msg)
		} else {
			m.students, cmd = m.students.Update(msg.Msg)
		}
		return m, wrap(msg.Pane, cmd)
	}

	if msg, ok := msg.(tea.KeyMsg); ok && !m.Filtering() {
		switch {
		case key.Matches(msg, m.keys.Left):
			m.focus = PaneStudents
			return m, nil
		case key.Matches(msg, m.keys.Right):
			m.focus = PaneTasks
			return m, nil
		case m.focus == PaneStudents && key.Matches(msg, m.keys.Select):
			if item, ok := m.students.SelectedItem().(StudentItem); ok {
				id := item.Student.ID
				return m, func() tea.Msg { return SelectStudentMsg{ID: id} }
			}
			return m, nil
		case m.focus == PaneTasks && key.Matches(msg, m.keys.Assign):
			item, ok := m.tasks.SelectedItem().(TaskItem)
			if !ok || m.current == nil {
				return m, nil
			}
			studentID, taskID := m.current.StudentID, item.Task.ID
			return m, func() tea.Msg { return AssignTaskMsg{StudentID: studentID, TaskID: taskID} }
		}
	}

	if m.focus == PaneTasks {
		m.tasks, cmd = m.tasks.Update(msg)
	} else {
		m.students, cmd = m.students.Update(msg)
	}
	return m, wrap(m.focus, cmd)
}

func (m Model) View() string {
	left, right := blurredPane, blurredPane
	if m.focus == PaneStudents {
		left = focusedPane
	} else {
		right = focusedPane
	}

	var tasks string
	if m.current == nil {
		tasks = hintStyle.Render("Select a student to see recommended tasks.")
	} else {
		tasks = m.tasks.View()
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		left.Render(m.students.View()),
		right.Render(tasks),
	)
}

func (m *Model) SetSize(width, height int) {
	// Borders take two cells in each direction
	half := width/2 - 2
	m.students.SetSize(half, height-2)
	m.tasks.SetSize(half, height-2)
}

func wrap(pane Pane, cmd tea.Cmd) tea.Cmd {
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
				out[i] = wrap(pane, c)
			}
			return out
		default:
			return ListMsg{Pane: pane, Msg: msg}
		}
	}
}
