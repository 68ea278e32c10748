// Package lab implements the AI laboratory: free-form chat with the
// tutor and the exercise photo scanner.
package lab

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mathpech/mathpech/internal/content"
	"github.com/mathpech/mathpech/internal/llm"
	"github.com/mathpech/mathpech/internal/mathtext"
	"github.com/mathpech/mathpech/internal/profile"
	"github.com/mathpech/mathpech/internal/screen"
	"github.com/mathpech/mathpech/internal/tutor"
	"github.com/mathpech/mathpech/internal/ui/components"
	"github.com/mathpech/mathpech/internal/ui/layout"
	"github.com/mathpech/mathpech/internal/ui/theme"
)

// replyMsg carries the tutor's answer to the transcript.
type replyMsg struct {
	text string
}

// imageMIMETypes maps accepted scan file extensions.
var imageMIMETypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// LabScreen is the chat surface with the tutor.
type LabScreen struct {
	profiles *profile.Store
	tutorSvc *tutor.Service
	renderer *mathtext.Renderer

	conv      *tutor.Conversation
	input     components.TextInput
	scanMode  bool
	scanInput components.TextInput
}

var _ screen.Screen = (*LabScreen)(nil)
var _ screen.KeyHintProvider = (*LabScreen)(nil)

// New creates the AI lab. tutorSvc may be nil when no provider is
// configured; the lab then only shows how to enable it.
func New(profiles *profile.Store, tutorSvc *tutor.Service, renderer *mathtext.Renderer) *LabScreen {
	level := content.Sixieme
	if p := profiles.Active(); p != nil {
		level = p.Level
	}
	return &LabScreen{
		profiles:  profiles,
		tutorSvc:  tutorSvc,
		renderer:  renderer,
		conv:      tutor.NewConversation(level),
		input:     components.NewTextInput("Pose ta question...", 200),
		scanInput: components.NewTextInput("Chemin de l'image (ex: ~/enonce.png)", 200),
	}
}

func (l *LabScreen) Title() string {
	return "Laboratoire IA"
}

func (l *LabScreen) Init() tea.Cmd {
	return l.input.Init()
}

func (l *LabScreen) KeyHints() []layout.KeyHint {
	if l.scanMode {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Scanner"},
			{Key: "Esc", Description: "Annuler"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Envoyer"},
		{Key: "Ctrl+O", Description: "Scanner une image"},
		{Key: "Esc", Description: "Retour"},
	}
}

func (l *LabScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if l.tutorSvc == nil {
		return l, nil
	}

	switch msg := msg.(type) {
	case replyMsg:
		l.conv.Resolve(msg.text)
		return l, nil

	case tea.KeyMsg:
		if l.scanMode {
			switch msg.String() {
			case "esc":
				l.scanMode = false
				l.scanInput.Reset()
				return l, nil
			case "enter":
				path := strings.TrimSpace(l.scanInput.Value())
				l.scanMode = false
				l.scanInput.Reset()
				if path == "" || !l.conv.BeginScan() {
					return l, nil
				}
				return l, l.scan(path)
			}
			var cmd tea.Cmd
			l.scanInput, cmd = l.scanInput.Update(msg)
			return l, cmd
		}

		switch msg.String() {
		case "enter":
			text := strings.TrimSpace(l.input.Value())
			if !l.conv.Begin(text) {
				return l, nil
			}
			l.input.Reset()
			return l, l.send(text)
		case "ctrl+o":
			if !l.conv.Pending() {
				l.scanMode = true
				return l, l.scanInput.Init()
			}
			return l, nil
		}
		var cmd tea.Cmd
		l.input, cmd = l.input.Update(msg)
		return l, cmd
	}

	return l, nil
}

// send asks the tutor off the UI loop.
func (l *LabScreen) send(text string) tea.Cmd {
	svc, level, history := l.tutorSvc, l.conv.Level, l.conv.History()
	return func() tea.Msg {
		reply, err := svc.ChatResponse(context.Background(), level, history, text)
		if err != nil {
			return replyMsg{text: "Oups, je n'ai pas pu traiter ta demande. Réessaie !"}
		}
		return replyMsg{text: reply}
	}
}

// scan reads the image and asks the tutor for a hint.
func (l *LabScreen) scan(path string) tea.Cmd {
	svc, level := l.tutorSvc, l.conv.Level
	return func() tea.Msg {
		if strings.HasPrefix(path, "~/") {
			if home, err := os.UserHomeDir(); err == nil {
				path = filepath.Join(home, path[2:])
			}
		}

		mime, ok := imageMIMETypes[strings.ToLower(filepath.Ext(path))]
		if !ok {
			return replyMsg{text: "Je ne peux lire que des images PNG, JPEG ou WebP."}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return replyMsg{text: "Je n'ai pas trouvé ce fichier. Vérifie le chemin et réessaie."}
		}

		res, err := svc.ScanProblem(context.Background(), level, llm.Image{MIMEType: mime, Data: data})
		if err != nil {
			return replyMsg{text: "Désolé, je n'ai pas pu analyser cette image. Assure-toi que l'énoncé est bien lisible."}
		}
		return replyMsg{text: formatScan(res)}
	}
}

// formatScan lays the scan result out as a tutor message.
func formatScan(res tutor.ScanResult) string {
	var b strings.Builder
	b.WriteString("D'après ton scan, voici un indice pour t'aider :\n\n")
	b.WriteString(res.Hint)
	if len(res.Formulas) > 0 {
		b.WriteString("\n\nFormules utiles :")
		for _, f := range res.Formulas {
			b.WriteString(fmt.Sprintf("\n- $%s$", f))
		}
	}
	return b.String()
}

func (l *LabScreen) View(width, height int) string {
	if l.tutorSvc == nil {
		return layout.Center(theme.Card.Render(
			theme.Hint.Render("Le laboratoire IA a besoin d'une clé API.\nConfigure GEMINI_API_KEY (ou OPENAI/ANTHROPIC) puis relance MathPech.")),
			width, height)
	}

	you := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	bot := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	var lines []string
	for _, m := range l.conv.Messages {
		prefix := bot.Render("Tuteur · ")
		if m.Role == llm.RoleUser {
			prefix = you.Render("Toi · ")
		}
		lines = append(lines, prefix+theme.Body.Render(l.renderer.Render(m.Text, false)))
		lines = append(lines, "")
	}
	if l.conv.Pending() {
		lines = append(lines, theme.Hint.Render("Le tuteur réfléchit..."), "")
	}

	transcript := strings.Join(lines, "\n")

	// Keep only the tail that fits above the input line.
	maxLines := height - 4
	if maxLines > 0 {
		all := strings.Split(transcript, "\n")
		if len(all) > maxLines {
			transcript = strings.Join(all[len(all)-maxLines:], "\n")
		}
	}

	prompt := l.input.View()
	if l.scanMode {
		prompt = theme.Body.Render("Image à scanner : ") + l.scanInput.View()
	}

	body := transcript + "\n" + prompt
	return lipgloss.NewStyle().Width(width).Padding(0, 2).Render(body)
}
