package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/homemaint/internal/commands"
	"github.com/sandeepkv93/homemaint/internal/store"
	"github.com/sandeepkv93/homemaint/internal/views"
)

func (m Model) handleTasksKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Screen = ScreenMenu
	case "up", "k":
		if m.Tasks.Cursor > 0 {
			m.Tasks.Cursor--
		}
	case "down", "j":
		if m.Tasks.Cursor < m.tracker.Len()-1 {
			m.Tasks.Cursor++
		}
	case "d", "delete":
		if _, err := m.tracker.Delete(m.ctx, m.selectedPosition()); err != nil {
			m.LastError = err
			m.Status = StatusBar{Text: commands.Explain(err, "delete"), IsError: true}
			break
		}
		m.Status = StatusBar{Text: commands.MsgDeleted}
	case "c":
		task, err := m.tracker.Complete(m.ctx, m.selectedPosition())
		if err != nil {
			m.LastError = err
			m.Status = StatusBar{Text: commands.Explain(err, "mark as complete"), IsError: true}
			break
		}
		m.completed++
		m.Status = StatusBar{Text: commands.CompletedMessage(task)}
	}
	m.clampTaskCursor()
	return m
}

// selectedPosition is unset when the list is empty, which the store reports
// as no selection.
func (m Model) selectedPosition() store.Position {
	if m.tracker.Len() == 0 {
		return store.Position{}
	}
	return store.At(m.Tasks.Cursor)
}

func (m *Model) clampTaskCursor() {
	n := m.tracker.Len()
	if m.Tasks.Cursor >= n {
		m.Tasks.Cursor = n - 1
	}
	if m.Tasks.Cursor < 0 {
		m.Tasks.Cursor = 0
	}
}

func (m Model) renderTaskList() string {
	return views.RenderTaskList(views.TaskListData{
		Lines:  m.tracker.Lines(),
		Cursor: m.Tasks.Cursor,
	})
}
