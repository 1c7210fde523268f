package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/edusync/internal/constants"
	"github.com/julianstephens/edusync/internal/tui/components/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.sync.State()

	var content string
	switch st.ActiveTab {
	case constants.TabAttendance:
		content = lipgloss.JoinVertical(lipgloss.Left,
			m.students.View(),
			"",
			m.records.View(),
		)
	case constants.TabTasks:
		content = m.recommend.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("🎓 EduSync Dashboard"),
		stats.View(st.Stats),
		m.viewTabs(st.ActiveTab),
		m.viewMessage(st.Message),
		docStyle.Render(content),
		m.help.View(m),
	)
}

func (m Model) viewTabs(active constants.Tab) string {
	var out []string
	for _, t := range tabs {
		title := tabTitle(t)
		if t == active {
			out = append(out, activeTabStyle.Render(title))
		} else {
			out = append(out, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

func (m Model) viewMessage(msg string) string {
	if msg == "" {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		messageStyle.Render(msg),
		" ",
		hintStyle.Render("[x] dismiss"),
	)
}

func tabTitle(t constants.Tab) string {
	switch t {
	case constants.TabAttendance:
		return "📋 Attendance"
	case constants.TabTasks:
		return "📚 Task Recommendations"
	}
	return strings.ToUpper(t.String())
}
