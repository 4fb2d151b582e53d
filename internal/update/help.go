package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/homemaint/internal/commands"
	"github.com/sandeepkv93/homemaint/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) openHelp() Model {
	m.Screen = ScreenHelp
	m.helpViewport.SetContent(views.RenderMarkdown(m.helpMarkdown()))
	m.helpViewport.GotoTop()
	return m
}

func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.Screen = ScreenMenu
		return m, nil
	}
	var cmd tea.Cmd
	m.helpViewport, cmd = m.helpViewport.Update(msg)
	return m, cmd
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	return views.RenderHelpPanel(
		m.helpViewport.View(),
		m.helpModel.View(helpKeyMap{short: bindings, full: [][]key.Binding{bindings}}),
	)
}

func (m Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# " + appTitle + "\n\n")
	b.WriteString("Welcome to " + appTitle + "! Tasks live for this session only.\n\n")
	b.WriteString("## Features\n\n")
	b.WriteString("- Schedule new maintenance tasks.\n")
	b.WriteString("- View and manage scheduled tasks.\n")
	b.WriteString("- Mark tasks as complete or delete them.\n\n")
	b.WriteString("## Instructions\n\n")
	b.WriteString(fmt.Sprintf("1. Press `%s` to schedule a maintenance task.\n", m.Keys.Schedule))
	b.WriteString("2. Enter the task details and press `enter` to save it.\n")
	b.WriteString(fmt.Sprintf("3. Press `%s` to see your tasks.\n", m.Keys.Tasks))
	b.WriteString("4. Select a task and press `d` to delete it or `c` to mark it complete.\n\n")
	b.WriteString("For support, please contact [obhomemaintence@gmail.com](mailto:obhomemaintence@gmail.com).\n\n")
	b.WriteString("## Keys\n\n")
	for _, kb := range m.globalBindings() {
		b.WriteString(fmt.Sprintf("- `%s` %s\n", kb.Key, kb.Action))
	}
	for _, s := range []Screen{ScreenSchedule, ScreenTasks} {
		b.WriteString(fmt.Sprintf("\n### %s\n\n", s))
		for _, kb := range screenBindings(s) {
			b.WriteString(fmt.Sprintf("- `%s` %s\n", kb.Key, kb.Action))
		}
	}
	b.WriteString("\n## Commands\n\n```\n")
	b.WriteString(strings.Join(commands.Usage(), "\n"))
	b.WriteString("\n```\n\nDue dates use `YYYY-MM-DD`. Task numbers are the ones shown by `list`.\n")
	return b.String()
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Schedule, Action: "schedule a task"},
		{Key: m.Keys.Tasks, Action: "view tasks"},
		{Key: m.Keys.Activity, Action: "recent activity"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func screenBindings(s Screen) []KeyBinding {
	switch s {
	case ScreenSchedule:
		return []KeyBinding{
			{Key: "tab", Action: "next field"},
			{Key: "left/right", Action: "change frequency"},
			{Key: "enter", Action: "save task"},
			{Key: "esc", Action: "cancel"},
		}
	case ScreenTasks:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "d", Action: "delete selected task"},
			{Key: "c", Action: "mark selected task complete"},
			{Key: "esc", Action: "back to menu"},
		}
	case ScreenActivity:
		return []KeyBinding{
			{Key: "r", Action: "refresh"},
			{Key: "esc", Action: "back to menu"},
		}
	case ScreenHelp:
		return []KeyBinding{
			{Key: "j/k", Action: "scroll"},
			{Key: "esc", Action: "back to menu"},
		}
	default:
		return nil
	}
}

func (m Model) helpBindings() []key.Binding {
	all := append(m.globalBindings(), screenBindings(m.Screen)...)
	out := make([]key.Binding, 0, len(all))
	for _, kb := range all {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
