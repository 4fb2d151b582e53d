package views

import (
	"fmt"
	"strings"
)

type MenuItem struct {
	Key   string
	Label string
}

type MenuData struct {
	Title     string
	Welcome   string
	Items     []MenuItem
	Scheduled int
	Completed int
}

type ScheduleFormData struct {
	DescriptionView string
	DueView         string
	Frequencies     []string
	Frequency       string
	FrequencyFocus  bool
	Preview         []string
}

type TaskListData struct {
	Lines  []string
	Cursor int
}

type ActivityData struct {
	Lines []string
	Limit int
}

func RenderMenu(data MenuData) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(data.Title) + "\n\n")
	if data.Welcome != "" {
		b.WriteString(data.Welcome + "\n\n")
	}
	for _, item := range data.Items {
		b.WriteString(fmt.Sprintf("  [%s] %s\n", item.Key, item.Label))
	}
	b.WriteString(fmt.Sprintf("\nscheduled: %d | completed this session: %d", data.Scheduled, data.Completed))
	return b.String()
}

func RenderScheduleForm(data ScheduleFormData) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Schedule Maintenance Task") + "\n\n")
	b.WriteString("Task Description:\n" + data.DescriptionView + "\n\n")
	b.WriteString("Due Date (YYYY-MM-DD):\n" + data.DueView + "\n\n")
	b.WriteString("Frequency:\n")
	choices := make([]string, 0, len(data.Frequencies))
	for _, f := range data.Frequencies {
		if f == data.Frequency {
			f = "[" + f + "]"
			if data.FrequencyFocus {
				f = cursorStyle.Render(f)
			}
		}
		choices = append(choices, f)
	}
	b.WriteString("  " + strings.Join(choices, "  ") + "\n")
	if len(data.Preview) > 0 {
		b.WriteString("  following: " + strings.Join(data.Preview, ", ") + "\n")
	}
	b.WriteString("\nactions: [tab]next field [left/right]frequency [enter]save [esc]cancel")
	return b.String()
}

// RenderTaskList numbers lines from 1, matching the numbers commands accept.
func RenderTaskList(data TaskListData) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Scheduled Tasks") + "\n\n")
	if len(data.Lines) == 0 {
		b.WriteString("(no tasks scheduled)\n")
	}
	for i, line := range data.Lines {
		row := fmt.Sprintf("%d. %s", i+1, line)
		if i == data.Cursor {
			b.WriteString(cursorStyle.Render("> "+row) + "\n")
			continue
		}
		b.WriteString("  " + row + "\n")
	}
	b.WriteString("\nactions: [j/k]move [d]delete [c]complete [esc]back")
	return b.String()
}

func RenderActivity(data ActivityData) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Recent Activity (last %d)", data.Limit)) + "\n\n")
	if len(data.Lines) == 0 {
		b.WriteString("(no activity yet)\n")
	}
	for _, line := range data.Lines {
		b.WriteString(line + "\n")
	}
	b.WriteString("\nactions: [r]refresh [esc]back")
	return b.String()
}

func RenderCommandPalette(active bool, input string, output []string) string {
	var b strings.Builder
	if active {
		b.WriteString("command: " + input + "\n")
	}
	for _, line := range output {
		b.WriteString(line + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(markdownView string, keysView string) string {
	return strings.TrimSpace(markdownView + "\n\n" + keysView)
}
