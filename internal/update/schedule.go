package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/homemaint/internal/commands"
	"github.com/sandeepkv93/homemaint/internal/model"
	"github.com/sandeepkv93/homemaint/internal/views"
)

const previewCount = 3

func (m Model) openScheduleForm() Model {
	m.Screen = ScreenSchedule
	m.Form = ScheduleFormState{Focus: fieldDescription, Frequency: m.defaultFrequency}
	m.descriptionInput.SetValue("")
	m.dueInput.SetValue("")
	m.focusFormField()
	return m
}

func (m Model) handleScheduleKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.descriptionInput.Blur()
		m.dueInput.Blur()
		m.Screen = ScreenMenu
		m.Status = StatusBar{Text: "scheduling cancelled"}
		return m
	case "enter":
		return m.saveScheduleForm()
	case "tab", "down":
		m.Form.Focus = (m.Form.Focus + 1) % 3
		m.focusFormField()
		return m
	case "shift+tab", "up":
		m.Form.Focus = (m.Form.Focus + 2) % 3
		m.focusFormField()
		return m
	}

	if m.Form.Focus == fieldFrequency {
		switch msg.String() {
		case "left", "h":
			m.Form.Frequency = m.Form.Frequency.Cycle(-1)
		case "right", "l", " ":
			m.Form.Frequency = m.Form.Frequency.Cycle(1)
		}
		m.refreshPreview()
		return m
	}

	input := &m.descriptionInput
	if m.Form.Focus == fieldDue {
		input = &m.dueInput
	}
	switch msg.Type {
	case tea.KeyRunes:
		input.SetValue(input.Value() + string(msg.Runes))
		input.CursorEnd()
	case tea.KeySpace:
		input.SetValue(input.Value() + " ")
		input.CursorEnd()
	default:
		var cmd tea.Cmd
		*input, cmd = input.Update(msg)
		_ = cmd
	}
	m.refreshPreview()
	return m
}

// saveScheduleForm hands the raw field text to the tracker. On failure the
// form stays open with its contents so the user can fix them.
func (m Model) saveScheduleForm() Model {
	_, err := m.tracker.Add(m.ctx, m.descriptionInput.Value(), m.dueInput.Value(), m.Form.Frequency)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: commands.Explain(err, ""), IsError: true}
		return m
	}
	m.LastError = nil
	m.Status = StatusBar{Text: commands.MsgSaved}
	m.descriptionInput.Blur()
	m.dueInput.Blur()
	m.Screen = ScreenMenu
	return m
}

func (m *Model) focusFormField() {
	m.descriptionInput.Blur()
	m.dueInput.Blur()
	switch m.Form.Focus {
	case fieldDescription:
		m.descriptionInput.Focus()
	case fieldDue:
		m.dueInput.Focus()
	}
}

func (m *Model) refreshPreview() {
	m.Form.Preview = nil
	due, err := model.ParseDate(m.dueInput.Value())
	if err != nil {
		return
	}
	dates, err := m.Form.Frequency.Preview(due, previewCount)
	if err != nil {
		return
	}
	for _, d := range dates {
		m.Form.Preview = append(m.Form.Preview, d.String())
	}
}

func (m Model) renderScheduleForm() string {
	freqs := make([]string, 0, len(model.Frequencies()))
	for _, f := range model.Frequencies() {
		freqs = append(freqs, string(f))
	}
	return views.RenderScheduleForm(views.ScheduleFormData{
		DescriptionView: m.descriptionInput.View(),
		DueView:         m.dueInput.View(),
		Frequencies:     freqs,
		Frequency:       string(m.Form.Frequency),
		FrequencyFocus:  m.Form.Focus == fieldFrequency,
		Preview:         m.Form.Preview,
	})
}
