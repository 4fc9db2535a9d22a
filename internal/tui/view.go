package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	term := m.imageArea()

	var body string
	switch {
	case m.loading:
		body = lipgloss.Place(term.Cols, term.Rows, lipgloss.Center, lipgloss.Center,
			m.spin.View()+" loading...")
	case m.showInfo:
		body = lipgloss.Place(term.Cols, term.Rows, lipgloss.Center, lipgloss.Center,
			boxStyle.Render(m.tbl.View()))
	default:
		f := composeFrame(m.engine, m.comic, m.grid, m.caption, m.messages, term)
		f.header = m.renderHeader()
		f.footer = m.renderFooter(term.Cols)
		body = f.String()
	}

	if m.showSidebar {
		sidebar := lipgloss.NewStyle().Width(sidebarWidth).Height(m.height).Render(m.l.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", body)
	}
	return appStyle.Render(body)
}

func (m Model) renderHeader() string {
	left := strings.Repeat(" ", m.engine.Config().MarginLeft)
	if m.jumpMode {
		return left + m.ti.View()
	}
	return left + dimStyle.Render("xkcdterm ─ terminal comic viewer")
}

func (m Model) renderFooter(width int) string {
	pos := ""
	if !m.grid.Empty() {
		s := m.engine.State()
		pos = fmt.Sprintf(" %d,%d of %dx%d ", s.Row, s.Col, m.grid.Rows(), m.grid.Cols())
	}
	status := dimStyle.Render(pos)
	if !m.helpVisible {
		return status
	}
	h := m.help
	h.Width = max(0, width-lipgloss.Width(status)-1)
	return lipgloss.JoinHorizontal(lipgloss.Bottom, status, " ", h.View(m.keys))
}
