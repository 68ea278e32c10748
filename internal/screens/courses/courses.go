// Package courses lists the lessons available for the student's class.
package courses

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/mathpech/mathpech/internal/content"
	"github.com/mathpech/mathpech/internal/profile"
	"github.com/mathpech/mathpech/internal/router"
	"github.com/mathpech/mathpech/internal/screen"
	"github.com/mathpech/mathpech/internal/ui/components"
	"github.com/mathpech/mathpech/internal/ui/layout"
	"github.com/mathpech/mathpech/internal/ui/theme"
)

// CoursesScreen shows the lesson catalog for the active level.
type CoursesScreen struct {
	profiles *profile.Store
	menu     components.Menu
	empty    bool
}

var _ screen.Screen = (*CoursesScreen)(nil)
var _ screen.KeyHintProvider = (*CoursesScreen)(nil)

// New creates the course list. lessonFor builds the detail screen for
// a selected lesson.
func New(profiles *profile.Store, lessonFor func(content.Lesson) screen.Screen) *CoursesScreen {
	level := content.Sixieme
	if p := profiles.Active(); p != nil {
		level = p.Level
	}

	lessons := content.LessonsForLevel(level)
	items := make([]components.MenuItem, 0, len(lessons))
	for _, ls := range lessons {
		ls := ls
		detail := fmt.Sprintf("%s · %d exercice(s)", ls.Category, len(content.ExercisesForLesson(ls.ID)))
		items = append(items, components.MenuItem{
			Label:  ls.Title,
			Detail: detail,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: lessonFor(ls)}
				}
			},
		})
	}

	return &CoursesScreen{
		profiles: profiles,
		menu:     components.NewMenu(items),
		empty:    len(items) == 0,
	}
}

func (c *CoursesScreen) Title() string {
	return "Mes cours"
}

func (c *CoursesScreen) Init() tea.Cmd {
	return nil
}

func (c *CoursesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "Enter", Description: "Ouvrir"},
		{Key: "Esc", Description: "Retour"},
	}
}

func (c *CoursesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	c.menu, cmd = c.menu.Update(msg)
	return c, cmd
}

func (c *CoursesScreen) View(width, height int) string {
	if c.empty {
		return layout.Center(
			theme.Hint.Render("Aucune leçon disponible pour ta classe pour le moment."),
			width, height)
	}

	level := ""
	if p := c.profiles.Active(); p != nil {
		level = p.Level.Label()
	}

	body := theme.Title.Render("Leçons · "+level) + "\n\n" + c.menu.View()
	return layout.Center(theme.Card.Render(body), width, height)
}
