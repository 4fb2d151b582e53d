package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/homemaint/internal/commands"
)

func (m Model) handleActivityKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Screen = ScreenMenu
	case "r":
		m.loadActivity()
	}
	return m
}

func (m *Model) loadActivity() {
	items, err := m.tracker.Activity(m.ctx, m.activityLimit)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: "activity unavailable: " + err.Error(), IsError: true}
		return
	}
	m.ActivityLines = make([]string, 0, len(items))
	for _, item := range items {
		m.ActivityLines = append(m.ActivityLines, commands.FormatActivity(item))
	}
}
