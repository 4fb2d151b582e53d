package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/homemaint/internal/views"
)

func (m Model) Init() tea.Cmd {
	return waitForNoticeCmd(m.notices)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		keyStr := typed.String()
		if keyStr == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		if m.Screen == ScreenSchedule {
			return m.handleScheduleKey(typed), nil
		}

		switch keyStr {
		case "/":
			return m.openPalette(), nil
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		case m.Keys.Help:
			if m.Screen == ScreenHelp {
				m.Screen = ScreenMenu
				return m, nil
			}
			return m.openHelp(), nil
		case m.Keys.Schedule:
			return m.switchScreen(ScreenSchedule), nil
		case m.Keys.Tasks:
			return m.switchScreen(ScreenTasks), nil
		case m.Keys.Activity:
			return m.switchScreen(ScreenActivity), nil
		}

		switch m.Screen {
		case ScreenTasks:
			return m.handleTasksKey(typed), nil
		case ScreenActivity:
			return m.handleActivityKey(typed), nil
		case ScreenHelp:
			return m.handleHelpKey(typed)
		}
	case SwitchScreenMsg:
		return m.switchScreen(typed.Screen), nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case DueNoticeMsg:
		m.applyDueNotice(typed.Notice)
		return m, waitForNoticeCmd(m.notices)
	}
	return m, nil
}

func (m Model) switchScreen(s Screen) Model {
	switch s {
	case ScreenMenu:
		m.Screen = ScreenMenu
	case ScreenSchedule:
		m = m.openScheduleForm()
	case ScreenTasks:
		m.Screen = ScreenTasks
		m.clampTaskCursor()
	case ScreenActivity:
		m.Screen = ScreenActivity
		m.loadActivity()
	case ScreenHelp:
		m = m.openHelp()
	}
	return m
}

func (m Model) View() string {
	var body string
	switch m.Screen {
	case ScreenSchedule:
		body = m.renderScheduleForm()
	case ScreenTasks:
		body = m.renderTaskList()
	case ScreenActivity:
		body = views.RenderActivity(views.ActivityData{Lines: m.ActivityLines, Limit: m.activityLimit})
	case ScreenHelp:
		body = m.renderHelpView()
	default:
		body = m.renderMenu()
	}

	return views.RenderApp(views.AppData{
		Header:        fmt.Sprintf("homemaint | screen: %s | tasks: %d", m.Screen, m.tracker.Len()),
		Body:          body,
		Side:          m.renderCommandPalette(),
		StatusLine:    m.Status.Text,
		StatusIsError: m.Status.IsError,
		Notification:  m.renderNotificationsView(),
		Footer:        m.footer(),
	})
}

func (m Model) renderMenu() string {
	return views.RenderMenu(views.MenuData{
		Title:   appTitle,
		Welcome: "Welcome! Keep track of recurring chores around the house.",
		Items: []views.MenuItem{
			{Key: m.Keys.Schedule, Label: "Schedule Task"},
			{Key: m.Keys.Tasks, Label: "View Tasks"},
			{Key: m.Keys.Activity, Label: "Recent Activity"},
			{Key: m.Keys.Help, Label: "Help"},
			{Key: m.Keys.Quit, Label: "Exit"},
		},
		Scheduled: m.tracker.Len(),
		Completed: m.completed,
	})
}

func (m Model) footer() string {
	if m.Screen == ScreenSchedule {
		return "keys: tab field | left/right frequency | enter save | esc cancel"
	}
	parts := []string{
		m.Keys.Schedule + " schedule",
		m.Keys.Tasks + " tasks",
		m.Keys.Activity + " activity",
		"/ cmd",
		m.Keys.Help + " help",
		m.Keys.Quit + " quit",
	}
	return "keys: " + strings.Join(parts, " | ")
}
