package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/homemaint/internal/scheduler"
	"github.com/sandeepkv93/homemaint/internal/views"
)

const maxNotifications = 40

func waitForNoticeCmd(ch <-chan scheduler.DueNotice) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return DueNoticeMsg{Notice: ev}
	}
}

// applyDueNotice ignores notices for tasks already removed; a cancel can
// race with a notice that was sent before it.
func (m *Model) applyDueNotice(n scheduler.DueNotice) {
	scheduled := false
	for _, task := range m.tracker.List() {
		if task.ID == n.TaskID {
			scheduled = true
			break
		}
	}
	if !scheduled {
		return
	}
	body := fmt.Sprintf("'%s' is due %s", n.Description, n.Due)
	m.Status = StatusBar{Text: body}
	m.notify("Due", body, "info")
}

func (m *Model) notify(title, body, level string) {
	if body == "" {
		return
	}
	m.Notifications = append(m.Notifications, Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	})
	if len(m.Notifications) > maxNotifications {
		m.Notifications = m.Notifications[len(m.Notifications)-maxNotifications:]
	}
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}
