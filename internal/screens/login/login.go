// Package login implements the sign-in screen: email identity plus
// class level selection for first-time students.
package login

import (
	"context"
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

type phase int

const (
	phaseEmail phase = iota
	phaseLevel
)

// loginDoneMsg is sent when the login attempt completes.
type loginDoneMsg struct {
	err error
}

// LoginScreen collects the student's identity and level.
type LoginScreen struct {
	profiles *profile.Store
	home     func() screen.Screen

	input    components.TextInput
	phase    phase
	selected int
	busy     bool
	errMsg   string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates the login screen. home builds the screen shown after a
// successful login.
func New(profiles *profile.Store, home func() screen.Screen) *LoginScreen {
	return &LoginScreen{
		profiles: profiles,
		home:     home,
		input:    components.NewTextInput("ton.email@exemple.fr", 64),
	}
}

func (l *LoginScreen) Title() string {
	return "Connexion"
}

func (l *LoginScreen) Init() tea.Cmd {
	return l.input.Init()
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	if l.phase == phaseEmail {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Valider"},
			{Key: "Ctrl+C", Description: "Quitter"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Niveau"},
		{Key: "Enter", Description: "Commencer"},
		{Key: "Esc", Description: "Changer d'email"},
	}
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		l.busy = false
		if msg.err != nil {
			l.errMsg = "Connexion impossible : " + msg.err.Error()
			return l, nil
		}
		next := l.home()
		return l, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case tea.KeyMsg:
		if l.busy {
			return l, nil
		}
		switch l.phase {
		case phaseEmail:
			if msg.String() == "enter" {
				identity := strings.TrimSpace(l.input.Value())
				if identity == "" || !strings.Contains(identity, "@") {
					l.errMsg = "Entre une adresse email valide."
					return l, nil
				}
				l.errMsg = ""
				l.phase = phaseLevel
				return l, nil
			}
			var cmd tea.Cmd
			l.input, cmd = l.input.Update(msg)
			return l, cmd

		case phaseLevel:
			switch msg.String() {
			case "up", "k":
				if l.selected > 0 {
					l.selected--
				}
			case "down", "j":
				if l.selected < len(content.Levels)-1 {
					l.selected++
				}
			case "esc":
				l.phase = phaseEmail
			case "enter":
				l.busy = true
				l.errMsg = ""
				return l, l.doLogin()
			}
			return l, nil
		}

	default:
		if l.phase == phaseEmail && !l.busy {
			var cmd tea.Cmd
			l.input, cmd = l.input.Update(msg)
			return l, cmd
		}
	}

	return l, nil
}

func (l *LoginScreen) doLogin() tea.Cmd {
	identity := strings.TrimSpace(l.input.Value())
	level := content.Levels[l.selected].Value
	return func() tea.Msg {
		_, err := l.profiles.Login(context.Background(), identity, level)
		return loginDoneMsg{err: err}
	}
}

func (l *LoginScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Bienvenue sur MathPech"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Ton compagnon de maths, de la 6ème à la Terminale"))
	b.WriteString("\n\n")

	switch l.phase {
	case phaseEmail:
		b.WriteString(theme.Body.Render("Ton adresse email :"))
		b.WriteString("\n\n")
		b.WriteString(l.input.View())

	case phaseLevel:
		if l.busy {
			b.WriteString(theme.Hint.Render("Connexion en cours..."))
			break
		}
		b.WriteString(theme.Body.Render("Ta classe :"))
		b.WriteString("\n\n")
		dim := lipgloss.NewStyle().Foreground(theme.TextDim)
		for i, info := range content.Levels {
			line := info.Label
			if i == l.selected {
				b.WriteString(theme.Selected.Render("  ▸ " + line))
			} else {
				b.WriteString("    " + theme.Unselected.Render(line))
			}
			b.WriteString("  " + dim.Render(info.Cycle))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Si tu as déjà un compte, ta classe enregistrée sera conservée."))
	}

	if l.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(l.errMsg))
	}

	return layout.Center(theme.Card.Render(b.String()), width, height)
}
