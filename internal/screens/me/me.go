// Package me implements the profile screen: progress review, badges,
// and the account actions (rename, change class, logout).
package me

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathpech/mathpech/internal/content"
	"github.com/mathpech/mathpech/internal/profile"
	"github.com/mathpech/mathpech/internal/router"
	"github.com/mathpech/mathpech/internal/screen"
	"github.com/mathpech/mathpech/internal/ui/components"
	"github.com/mathpech/mathpech/internal/ui/layout"
	"github.com/mathpech/mathpech/internal/ui/theme"
)

type mode int

const (
	modeView mode = iota
	modeRename
	modeLevel
)

// savedMsg reports the outcome of a profile mutation.
type savedMsg struct {
	err error
}

// loggedOutMsg is sent once the session is cleared.
type loggedOutMsg struct {
	err error
}

// MeScreen shows and edits the active profile.
type MeScreen struct {
	profiles *profile.Store
	login    func() screen.Screen

	mode     mode
	input    components.TextInput
	selected int
	errMsg   string
}

var _ screen.Screen = (*MeScreen)(nil)
var _ screen.KeyHintProvider = (*MeScreen)(nil)

// New creates the profile screen. login builds the screen shown after
// logout.
func New(profiles *profile.Store, login func() screen.Screen) *MeScreen {
	return &MeScreen{
		profiles: profiles,
		login:    login,
		input:    components.NewTextInput("Ton prénom", 32),
	}
}

func (m *MeScreen) Title() string {
	return "Mon profil"
}

func (m *MeScreen) Init() tea.Cmd {
	return nil
}

func (m *MeScreen) KeyHints() []layout.KeyHint {
	switch m.mode {
	case modeRename:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Enregistrer"},
			{Key: "Esc", Description: "Annuler"},
		}
	case modeLevel:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Classe"},
			{Key: "Enter", Description: "Enregistrer"},
			{Key: "Esc", Description: "Annuler"},
		}
	default:
		return []layout.KeyHint{
			{Key: "N", Description: "Nom"},
			{Key: "C", Description: "Classe"},
			{Key: "D", Description: "Déconnexion"},
			{Key: "Esc", Description: "Retour"},
		}
	}
}

func (m *MeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.err != nil {
			m.errMsg = "Enregistrement impossible : " + msg.err.Error()
		}
		return m, nil

	case loggedOutMsg:
		next := m.login()
		return m, func() tea.Msg { return router.ResetScreenMsg{Screen: next} }

	case tea.KeyMsg:
		switch m.mode {
		case modeRename:
			switch msg.String() {
			case "esc":
				m.mode = modeView
				m.input.Reset()
				return m, nil
			case "enter":
				name := strings.TrimSpace(m.input.Value())
				m.mode = modeView
				m.input.Reset()
				if name == "" {
					return m, nil
				}
				return m, m.save(func(ctx context.Context) error {
					return m.profiles.ChangeName(ctx, name)
				})
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd

		case modeLevel:
			switch msg.String() {
			case "up", "k":
				if m.selected > 0 {
					m.selected--
				}
			case "down", "j":
				if m.selected < len(content.Levels)-1 {
					m.selected++
				}
			case "esc":
				m.mode = modeView
			case "enter":
				level := content.Levels[m.selected].Value
				m.mode = modeView
				return m, m.save(func(ctx context.Context) error {
					return m.profiles.ChangeLevel(ctx, level)
				})
			}
			return m, nil

		default:
			switch msg.String() {
			case "n":
				m.mode = modeRename
				m.errMsg = ""
				return m, m.input.Init()
			case "c":
				m.mode = modeLevel
				m.errMsg = ""
				m.selected = m.currentLevelIndex()
				return m, nil
			case "d":
				return m, m.logout()
			}
		}
	}

	return m, nil
}

func (m *MeScreen) currentLevelIndex() int {
	p := m.profiles.Active()
	if p == nil {
		return 0
	}
	for i, info := range content.Levels {
		if info.Value == p.Level {
			return i
		}
	}
	return 0
}

func (m *MeScreen) save(op func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{err: op(context.Background())}
	}
}

func (m *MeScreen) logout() tea.Cmd {
	profiles := m.profiles
	return func() tea.Msg {
		return loggedOutMsg{err: profiles.Logout(context.Background())}
	}
}

func (m *MeScreen) View(width, height int) string {
	p := m.profiles.Active()
	if p == nil {
		return layout.Center(theme.Hint.Render("Aucun profil actif."), width, height)
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(theme.Title.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(p.Identity))
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Render(fmt.Sprintf("Classe      %s", p.Level.Label())))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Expérience  %d XP", p.XP)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Assiduité   %d jour(s) de suite", p.Streak)))
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Render("Badges"))
	b.WriteString("\n")
	if len(p.Badges) == 0 {
		b.WriteString(dim.Render("  Aucun badge pour l'instant."))
		b.WriteString("\n")
	}
	for _, badge := range p.Badges {
		b.WriteString("  🏅 " + theme.Body.Render(badge))
		b.WriteString("\n")
	}

	switch m.mode {
	case modeRename:
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("Nouveau prénom : "))
		b.WriteString(m.input.View())
	case modeLevel:
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("Nouvelle classe :"))
		b.WriteString("\n")
		for i, info := range content.Levels {
			if i == m.selected {
				b.WriteString(theme.Selected.Render("  ▸ " + info.Label))
			} else {
				b.WriteString("    " + theme.Unselected.Render(info.Label))
			}
			b.WriteString("\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(m.errMsg))
	}

	return layout.Center(theme.Card.Render(b.String()), width, height)
}
