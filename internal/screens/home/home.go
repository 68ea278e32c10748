// Package home implements the dashboard: progress summary, strengths
// and navigation to the app's features.
package home

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathpech/mathpech/internal/profile"
	"github.com/mathpech/mathpech/internal/router"
	"github.com/mathpech/mathpech/internal/screen"
	"github.com/mathpech/mathpech/internal/ui/components"
	"github.com/mathpech/mathpech/internal/ui/layout"
	"github.com/mathpech/mathpech/internal/ui/theme"
)

// HomeScreen is the dashboard shown after login.
type HomeScreen struct {
	profiles *profile.Store
	menu     components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the dashboard. The factories build the destination
// screens so navigation stays decoupled from construction.
func New(profiles *profile.Store, courses, lab, me func() screen.Screen) *HomeScreen {
	push := func(f func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: f()} }
		}
	}

	menu := components.NewMenu([]components.MenuItem{
		{Label: "Mes cours", Detail: "Leçons et exercices de ta classe", Action: push(courses)},
		{Label: "Laboratoire IA", Detail: "Discute avec ton tuteur ou scanne un énoncé", Action: push(lab)},
		{Label: "Mon profil", Detail: "Progression, badges et réglages", Action: push(me)},
		{Label: "Quitter", Detail: "", Action: func() tea.Cmd { return tea.Quit }},
	})

	return &HomeScreen{profiles: profiles, menu: menu}
}

func (h *HomeScreen) Title() string {
	return "Accueil"
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Naviguer"},
		{Key: "Enter", Description: "Choisir"},
		{Key: "Ctrl+C", Description: "Quitter"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	p := h.profiles.Active()
	if p == nil {
		return layout.Center(theme.Hint.Render("Aucun profil actif."), width, height)
	}

	var b strings.Builder

	b.WriteString(theme.Title.Render(fmt.Sprintf("Salut %s !", p.Name)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Classe de %s", p.Level.Label())))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("⚡ %d XP    ★ %d jour(s) de suite    🏅 %d badge(s)",
		p.XP, p.Streak, len(p.Badges))
	b.WriteString(theme.Body.Render(stats))
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Render("Points forts"))
	b.WriteString("\n")
	b.WriteString(renderStrengths(p))
	b.WriteString("\n")

	b.WriteString(h.menu.View())

	return layout.Center(theme.Card.Render(b.String()), width, height)
}

// renderStrengths draws one bar per subject, strongest first.
func renderStrengths(p *profile.UserProfile) string {
	subjects := make([]string, 0, len(p.Strengths))
	for s := range p.Strengths {
		subjects = append(subjects, s)
	}
	sort.Slice(subjects, func(i, j int) bool {
		if p.Strengths[subjects[i]] != p.Strengths[subjects[j]] {
			return p.Strengths[subjects[i]] > p.Strengths[subjects[j]]
		}
		return subjects[i] < subjects[j]
	})

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	var b strings.Builder
	for _, s := range subjects {
		v := p.Strengths[s]
		bar := components.ProgressBar(20, float64(v)/100)
		b.WriteString(fmt.Sprintf("  %-14s %s %s\n", s, bar, dim.Render(fmt.Sprintf("%d%%", v))))
	}
	return b.String()
}
