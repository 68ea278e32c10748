// Package lesson shows a lesson's content with typeset formulas and
// offers AI narration plus the jump into its exercises.
package lesson

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/mathpech/mathpech/internal/content"
	"github.com/mathpech/mathpech/internal/mathtext"
	"github.com/mathpech/mathpech/internal/router"
	"github.com/mathpech/mathpech/internal/screen"
	"github.com/mathpech/mathpech/internal/tutor"
	"github.com/mathpech/mathpech/internal/ui/layout"
	"github.com/mathpech/mathpech/internal/ui/theme"
)

// audioReadyMsg is sent when lesson narration finished (or failed).
type audioReadyMsg struct {
	path string
	ok   bool
}

// LessonScreen displays a single lesson.
type LessonScreen struct {
	lesson   content.Lesson
	tutorSvc *tutor.Service
	renderer *mathtext.Renderer

	exerciseFor func(content.Lesson) screen.Screen

	narrating  bool
	audioPath  string
	audioNotes string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates the lesson screen. tutorSvc may be nil when no AI
// provider is configured; narration is then unavailable.
func New(ls content.Lesson, tutorSvc *tutor.Service, renderer *mathtext.Renderer, exerciseFor func(content.Lesson) screen.Screen) *LessonScreen {
	return &LessonScreen{
		lesson:      ls,
		tutorSvc:    tutorSvc,
		renderer:    renderer,
		exerciseFor: exerciseFor,
	}
}

func (l *LessonScreen) Title() string {
	return l.lesson.Title
}

func (l *LessonScreen) Init() tea.Cmd {
	return nil
}

func (l *LessonScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "E", Description: "Exercices"},
	}
	if l.tutorSvc != nil && !l.narrating {
		hints = append(hints, layout.KeyHint{Key: "A", Description: "Écouter"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Retour"})
	return hints
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case audioReadyMsg:
		l.narrating = false
		if msg.ok {
			l.audioPath = msg.path
			l.audioNotes = ""
		} else {
			l.audioNotes = "Narration indisponible pour le moment."
		}
		return l, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "e":
			next := l.exerciseFor(l.lesson)
			return l, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		case "a":
			if l.tutorSvc == nil || l.narrating {
				return l, nil
			}
			l.narrating = true
			l.audioNotes = ""
			return l, l.narrate()
		}
	}

	return l, nil
}

// narrate fetches the audio off the UI loop and saves it as a WAV
// file the student can play.
func (l *LessonScreen) narrate() tea.Cmd {
	svc, ls := l.tutorSvc, l.lesson
	return func() tea.Msg {
		pcm, ok := svc.LessonAudio(context.Background(), ls.Title, ls.Content)
		if !ok {
			return audioReadyMsg{}
		}

		f, err := os.CreateTemp("", "mathpech-lecon-*.wav")
		if err != nil {
			return audioReadyMsg{}
		}
		defer f.Close()
		if _, err := f.Write(tutor.WrapPCM(pcm)); err != nil {
			return audioReadyMsg{}
		}
		return audioReadyMsg{path: f.Name(), ok: true}
	}
}

func (l *LessonScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(l.lesson.Title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%s · %s", l.lesson.Category, l.lesson.Level.Label())))
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.Render(l.renderer.Render(l.lesson.Summary, false)))
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Render(l.renderer.Render(l.lesson.Content, false)))
	b.WriteString("\n")

	switch {
	case l.narrating:
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Narration en cours de génération..."))
	case l.audioPath != "":
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Narration enregistrée : " + l.audioPath))
	case l.audioNotes != "":
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(l.audioNotes))
	}

	return layout.Center(theme.Card.Render(b.String()), width, height)
}
