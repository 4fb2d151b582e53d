package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/homemaint/internal/commands"
	"github.com/sandeepkv93/homemaint/internal/model"
	"github.com/sandeepkv93/homemaint/internal/scheduler"
	"github.com/sandeepkv93/homemaint/internal/tracker"
)

const appTitle = "OB Home Maintenance Scheduler"

type Screen string

const (
	ScreenMenu     Screen = "Menu"
	ScreenSchedule Screen = "Schedule"
	ScreenTasks    Screen = "Tasks"
	ScreenActivity Screen = "Activity"
	ScreenHelp     Screen = "Help"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Schedule string
	Tasks    string
	Activity string
	Help     string
	Quit     string
}

type formField int

const (
	fieldDescription formField = iota
	fieldDue
	fieldFrequency
)

type ScheduleFormState struct {
	Focus     formField
	Frequency model.Frequency
	Preview   []string
}

type TaskListState struct {
	Cursor int
}

type CommandPaletteState struct {
	Active bool
	Input  string
	Output []string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type Options struct {
	Context          context.Context
	Notices          <-chan scheduler.DueNotice
	DefaultFrequency model.Frequency
	ActivityLimit    int
}

type Model struct {
	Screen        Screen
	Form          ScheduleFormState
	Tasks         TaskListState
	ActivityLines []string
	Palette       CommandPaletteState
	Notifications []Notification
	Status        StatusBar
	Keys          GlobalKeyMap
	Quitting      bool
	LastError     error

	ctx              context.Context
	tracker          *tracker.Tracker
	handlers         commands.Handlers
	notices          <-chan scheduler.DueNotice
	defaultFrequency model.Frequency
	activityLimit    int
	completed        int

	descriptionInput textinput.Model
	dueInput         textinput.Model
	commandInput     textinput.Model
	helpModel        help.Model
	helpViewport     viewport.Model
}

type SwitchScreenMsg struct {
	Screen Screen
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type DueNoticeMsg struct {
	Notice scheduler.DueNotice
}

func NewModel(tr *tracker.Tracker, opts Options) Model {
	if tr == nil {
		tr = tracker.New(nil, tracker.Deps{})
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if !opts.DefaultFrequency.IsValid() {
		opts.DefaultFrequency = model.FrequencyMonthly
	}
	if opts.ActivityLimit <= 0 {
		opts.ActivityLimit = 10
	}
	m := Model{
		Screen: ScreenMenu,
		Form: ScheduleFormState{
			Frequency: opts.DefaultFrequency,
		},
		Keys: GlobalKeyMap{
			Schedule: "s",
			Tasks:    "v",
			Activity: "a",
			Help:     "?",
			Quit:     "q",
		},
		ctx:              opts.Context,
		tracker:          tr,
		notices:          opts.Notices,
		defaultFrequency: opts.DefaultFrequency,
		activityLimit:    opts.ActivityLimit,
	}
	m.handlers = commands.Bind(opts.Context, tr, commands.BindOptions{
		DefaultFrequency: opts.DefaultFrequency,
		ActivityLimit:    opts.ActivityLimit,
	})
	if n, err := tr.CompletedCount(opts.Context); err == nil {
		m.completed = n
	}
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.descriptionInput = textinput.New()
	m.descriptionInput.Prompt = "> "
	m.descriptionInput.Placeholder = "e.g. Clean gutters"
	m.descriptionInput.CharLimit = 256
	m.descriptionInput.Width = 48

	m.dueInput = textinput.New()
	m.dueInput.Prompt = "> "
	m.dueInput.Placeholder = "YYYY-MM-DD"
	m.dueInput.CharLimit = 32
	m.dueInput.Width = 12

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 40

	m.helpModel = help.New()
	m.helpViewport = viewport.New(70, 18)
}
