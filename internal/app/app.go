// Package app wires the screens, router and shared services into the
// root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathpech/mathpech/internal/content"
	"github.com/mathpech/mathpech/internal/mathtext"
	"github.com/mathpech/mathpech/internal/profile"
	"github.com/mathpech/mathpech/internal/router"
	"github.com/mathpech/mathpech/internal/screen"
	"github.com/mathpech/mathpech/internal/screens/courses"
	"github.com/mathpech/mathpech/internal/screens/exercises"
	"github.com/mathpech/mathpech/internal/screens/home"
	"github.com/mathpech/mathpech/internal/screens/lab"
	"github.com/mathpech/mathpech/internal/screens/lesson"
	"github.com/mathpech/mathpech/internal/screens/login"
	"github.com/mathpech/mathpech/internal/screens/me"
	"github.com/mathpech/mathpech/internal/tutor"
	"github.com/mathpech/mathpech/internal/ui/layout"
)

// Options carries the shared services the screens depend on.
type Options struct {
	Profiles *profile.Store

	// Tutor is nil when no AI provider is configured; AI features
	// degrade gracefully.
	Tutor *tutor.Service

	Renderer *mathtext.Renderer
}

// streakRefreshedMsg is sent after the startup streak evaluation.
type streakRefreshedMsg struct{}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	profiles *profile.Store
	width    int
	height   int
}

// newAppModel builds the screen graph and picks the start screen.
func newAppModel(opts Options) AppModel {
	if opts.Renderer == nil {
		opts.Renderer = mathtext.NewRenderer(mathtext.UnicodeTypesetter{})
	}

	var loginFactory, homeFactory func() screen.Screen

	exercisesFor := func(ls content.Lesson) screen.Screen {
		return exercises.New(ls, opts.Profiles, opts.Tutor, opts.Renderer)
	}
	lessonFor := func(ls content.Lesson) screen.Screen {
		return lesson.New(ls, opts.Tutor, opts.Renderer, exercisesFor)
	}
	coursesFactory := func() screen.Screen {
		return courses.New(opts.Profiles, lessonFor)
	}
	labFactory := func() screen.Screen {
		return lab.New(opts.Profiles, opts.Tutor, opts.Renderer)
	}
	meFactory := func() screen.Screen {
		return me.New(opts.Profiles, loginFactory)
	}
	homeFactory = func() screen.Screen {
		return home.New(opts.Profiles, coursesFactory, labFactory, meFactory)
	}
	loginFactory = func() screen.Screen {
		return login.New(opts.Profiles, homeFactory)
	}

	initial := loginFactory()
	if opts.Profiles.LoggedIn() {
		initial = homeFactory()
	}

	return AppModel{
		router:   router.New(initial),
		profiles: opts.Profiles,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}
	if m.profiles.LoggedIn() {
		profiles := m.profiles
		cmds = append(cmds, func() tea.Msg {
			// Opening the app counts as activity for the streak.
			_ = profiles.RefreshStreak(context.Background())
			return streakRefreshedMsg{}
		})
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case streakRefreshedMsg:
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	streak, xp := 0, 0
	if p := m.profiles.Active(); p != nil {
		streak, xp = p.Streak, p.XP
	}
	header := layout.RenderHeader(title, streak, xp, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "Ctrl+C", Description: "Quitter"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
