// Package exercises runs a practice session for one lesson: answer
// input, verdicts, AI remediation and the final score.
package exercises

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathpech/mathpech/internal/content"
	"github.com/mathpech/mathpech/internal/exercise"
	"github.com/mathpech/mathpech/internal/mathtext"
	"github.com/mathpech/mathpech/internal/profile"
	"github.com/mathpech/mathpech/internal/router"
	"github.com/mathpech/mathpech/internal/screen"
	"github.com/mathpech/mathpech/internal/tutor"
	"github.com/mathpech/mathpech/internal/ui/components"
	"github.com/mathpech/mathpech/internal/ui/layout"
	"github.com/mathpech/mathpech/internal/ui/theme"
)

// explanationMsg carries the AI analysis of a wrong answer.
type explanationMsg struct {
	text string
}

// xpGrantedMsg is sent once the session score has been persisted.
type xpGrantedMsg struct {
	err error
}

// ExercisesScreen runs the session for one lesson.
type ExercisesScreen struct {
	lesson   content.Lesson
	flow     *exercise.Flow
	profiles *profile.Store
	tutorSvc *tutor.Service
	renderer *mathtext.Renderer

	input   components.TextInput
	granted bool
	saveErr string
}

var _ screen.Screen = (*ExercisesScreen)(nil)
var _ screen.KeyHintProvider = (*ExercisesScreen)(nil)

// New starts a session over the lesson's exercises. tutorSvc may be
// nil; the static explanation is then the only feedback.
func New(ls content.Lesson, profiles *profile.Store, tutorSvc *tutor.Service, renderer *mathtext.Renderer) *ExercisesScreen {
	return &ExercisesScreen{
		lesson:   ls,
		flow:     exercise.NewFlow(content.ExercisesForLesson(ls.ID)),
		profiles: profiles,
		tutorSvc: tutorSvc,
		renderer: renderer,
		input:    components.NewTextInput("Ta réponse...", 64),
	}
}

func (e *ExercisesScreen) Title() string {
	return "Exercices"
}

func (e *ExercisesScreen) Init() tea.Cmd {
	return e.input.Init()
}

func (e *ExercisesScreen) KeyHints() []layout.KeyHint {
	switch e.flow.Phase() {
	case exercise.PhaseAnswering:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Valider"},
			{Key: "Esc", Description: "Abandonner"},
		}
	case exercise.PhaseFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continuer"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Retour"},
		}
	}
}

func (e *ExercisesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explanationMsg:
		e.flow.AttachAnalysis(msg.text)
		return e, nil

	case xpGrantedMsg:
		if msg.err != nil {
			e.saveErr = "Score non sauvegardé : " + msg.err.Error()
		}
		return e, nil

	case tea.KeyMsg:
		switch e.flow.Phase() {
		case exercise.PhaseAnswering:
			if msg.String() == "enter" {
				return e.submit()
			}
			var cmd tea.Cmd
			e.input, cmd = e.input.Update(msg)
			return e, cmd

		case exercise.PhaseFeedback:
			if msg.String() == "enter" {
				e.flow.Next()
				e.input.Reset()
				if e.flow.Phase() == exercise.PhaseFinished {
					return e, e.grantXP()
				}
				return e, nil
			}

		case exercise.PhaseFinished, exercise.PhaseEmpty:
			if msg.String() == "enter" {
				return e, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	return e, nil
}

func (e *ExercisesScreen) submit() (screen.Screen, tea.Cmd) {
	answer := e.input.Value()
	if strings.TrimSpace(answer) == "" {
		return e, nil
	}

	correct, ok := e.flow.Submit(answer)
	if !ok {
		return e, nil
	}
	e.input.Submit(correct)

	if !correct && e.tutorSvc != nil && e.flow.BeginAnalysis() {
		return e, e.fetchExplanation(answer)
	}
	return e, nil
}

// fetchExplanation asks the tutor why the answer was wrong.
func (e *ExercisesScreen) fetchExplanation(answer string) tea.Cmd {
	ex, ok := e.flow.Current()
	if !ok {
		return nil
	}
	level := content.Sixieme
	if p := e.profiles.Active(); p != nil {
		level = p.Level
	}
	svc := e.tutorSvc
	return func() tea.Msg {
		text := svc.ExplainMistake(context.Background(), level, ex.Question, ex.Solution, answer)
		return explanationMsg{text: text}
	}
}

// grantXP persists the session score once.
func (e *ExercisesScreen) grantXP() tea.Cmd {
	if e.granted || e.flow.Score() == 0 {
		return nil
	}
	e.granted = true
	profiles, score := e.profiles, e.flow.Score()
	return func() tea.Msg {
		return xpGrantedMsg{err: profiles.AddXP(context.Background(), score)}
	}
}

func (e *ExercisesScreen) View(width, height int) string {
	switch e.flow.Phase() {
	case exercise.PhaseEmpty:
		return layout.Center(theme.Card.Render(
			theme.Hint.Render("Pas encore d'exercices pour cette leçon.\nReviens bientôt !")),
			width, height)
	case exercise.PhaseFinished:
		return e.renderFinished(width, height)
	case exercise.PhaseFeedback:
		return e.renderFeedback(width, height)
	default:
		return e.renderQuestion(width, height)
	}
}

func (e *ExercisesScreen) renderQuestion(width, height int) string {
	ex, ok := e.flow.Current()
	if !ok {
		return ""
	}
	pos, total := e.flow.Progress()

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Exercice %d / %d · %s", pos, total, e.lesson.Title)))
	b.WriteString("\n")
	b.WriteString(components.ProgressBar(30, float64(pos-1)/float64(total)))
	b.WriteString("\n\n")

	b.WriteString(tierStyle(ex.Difficulty).Render(ex.Difficulty.String()))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(e.renderer.Render(ex.Question, false)))
	b.WriteString("\n\n")
	b.WriteString(e.input.View())

	if len(ex.Hints) > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Indice : " + e.renderer.Render(ex.Hints[0], false)))
	}

	return layout.Center(theme.Card.Render(b.String()), width, height)
}

func (e *ExercisesScreen) renderFeedback(width, height int) string {
	ex, ok := e.flow.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	if e.flow.LastCorrect() {
		b.WriteString(theme.Correct.Render(fmt.Sprintf("✓ Bravo ! +%d XP", exercise.XPPerCorrect)))
	} else {
		b.WriteString(theme.Incorrect.Render("✗ Ce n'est pas ça."))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("La bonne réponse : " + e.renderer.Render(ex.Solution, false)))
	}
	b.WriteString("\n\n")

	if ex.Explanation != "" {
		b.WriteString(theme.Body.Render(e.renderer.Render(ex.Explanation, false)))
		b.WriteString("\n")
	}

	if !e.flow.LastCorrect() {
		analysis, pending := e.flow.Analysis()
		switch {
		case pending:
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render("Ton tuteur analyse ton erreur..."))
		case analysis != "":
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render("Tuteur : ") + theme.Body.Render(e.renderer.Render(analysis, false)))
		}
	}

	return layout.Center(theme.Card.Render(b.String()), width, height)
}

func (e *ExercisesScreen) renderFinished(width, height int) string {
	_, total := e.flow.Progress()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Session terminée !"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("%d / %d bonnes réponses", e.flow.CorrectCount(), total)))
	b.WriteString("\n")
	b.WriteString(theme.Correct.Render(fmt.Sprintf("+%d XP", e.flow.Score())))
	if e.saveErr != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render(e.saveErr))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Entrée pour revenir à la leçon"))

	return layout.Center(theme.Card.Render(b.String()), width, height)
}

func tierStyle(t content.Tier) lipgloss.Style {
	switch t {
	case content.Or:
		return theme.TierOr
	case content.Argent:
		return theme.TierArgent
	default:
		return theme.TierBronze
	}
}
