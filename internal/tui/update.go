package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/edusync/internal/constants"
	"github.com/julianstephens/edusync/internal/tui/components/recommend"
	"github.com/julianstephens/edusync/internal/tui/components/students"
)

var tabs = []constants.Tab{constants.TabAttendance, constants.TabTasks}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	// set when synchronizer state may have changed and the lists need rebuilding
	changed := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.filtering() {
			cmds = append(cmds, m.updateActive(msg))
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Tab):
			m.sync.SetActiveTab(nextTab(m.sync.State().ActiveTab, 1))
			changed = true
		case key.Matches(msg, m.keys.ShiftTab):
			m.sync.SetActiveTab(nextTab(m.sync.State().ActiveTab, -1))
			changed = true
		case key.Matches(msg, m.keys.Dismiss):
			m.sync.ClearMessage()
			changed = true
		case key.Matches(msg, m.keys.Refresh):
			cmds = append(cmds, m.sync.LoadInitialState())
		default:
			cmds = append(cmds, m.updateActive(msg))
		}

	// List results go back to the list that produced them, whichever tab is showing
	case students.ListMsg:
		var cmd tea.Cmd
		m.students, cmd = m.students.Update(msg)
		cmds = append(cmds, cmd)

	case recommend.ListMsg:
		var cmd tea.Cmd
		m.recommend, cmd = m.recommend.Update(msg)
		cmds = append(cmds, cmd)

	case students.MarkAttendanceMsg:
		cmds = append(cmds, m.sync.MarkAttendance(msg.ID, msg.Name))
		changed = true

	case recommend.SelectStudentMsg:
		cmds = append(cmds, m.sync.SelectStudentForRecommendations(msg.ID))
		changed = true

	case recommend.AssignTaskMsg:
		cmds = append(cmds, m.sync.AssignTask(msg.StudentID, msg.TaskID))
		changed = true

	default:
		if handled, cmd := m.sync.Update(msg); handled {
			cmds = append(cmds, cmd)
			changed = true
		} else {
			cmds = append(cmds, m.updateActive(msg))
		}
	}

	if changed {
		cmds = append(cmds, m.refresh())
		m.resize()
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.sync.State().ActiveTab {
	case constants.TabAttendance:
		m.students, cmd = m.students.Update(msg)
	case constants.TabTasks:
		m.recommend, cmd = m.recommend.Update(msg)
	}
	return cmd
}

func nextTab(current constants.Tab, step int) constants.Tab {
	for i, t := range tabs {
		if t == current {
			return tabs[(i+step+len(tabs))%len(tabs)]
		}
	}
	return tabs[0]
}
