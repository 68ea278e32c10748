package mathtext

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mathpech/mathpech/internal/ui/theme"
)

// Renderer turns mixed text/LaTeX content into a styled terminal string.
// Each math span is typeset independently: a span that fails to typeset
// becomes an inline error marker carrying its sanitized source, and never
// affects the surrounding spans.
type Renderer struct {
	ts      Typesetter
	inline  lipgloss.Style
	block   lipgloss.Style
	errMark lipgloss.Style
	tooltip lipgloss.Style
}

// NewRenderer creates a Renderer backed by the given typesetting collaborator.
func NewRenderer(ts Typesetter) *Renderer {
	return &Renderer{
		ts:      ts,
		inline:  lipgloss.NewStyle().Foreground(theme.Secondary),
		block:   lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true),
		errMark: lipgloss.NewStyle().Foreground(theme.Error),
		tooltip: lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true),
	}
}

// Render produces the display form of content. blockMode applies only when
// the content carries no delimiter at all, in which case the whole string
// is typeset as a single expression. The result fully replaces any prior
// render: empty input yields empty output.
func (r *Renderer) Render(content string, blockMode bool) string {
	if content == "" {
		return ""
	}

	if !strings.ContainsRune(content, '$') {
		out, err := r.ts.Typeset(content, blockMode)
		if err == nil {
			if blockMode {
				return r.block.Render(out)
			}
			return r.inline.Render(out)
		}
		if looksLikeMath(content) {
			return r.errorMarker(content, err)
		}
		// Plain prose that merely failed the whole-string typeset.
		return Sanitize(content)
	}

	var b strings.Builder
	for _, seg := range Segments(content) {
		switch seg.Kind {
		case KindText:
			b.WriteString(Sanitize(seg.Content))
		case KindInline:
			out, err := r.ts.Typeset(seg.Content, false)
			if err != nil {
				b.WriteString(r.errorMarker(seg.Content, err))
				continue
			}
			b.WriteString(r.inline.Render(out))
		case KindBlock:
			out, err := r.ts.Typeset(seg.Content, true)
			if err != nil {
				b.WriteString(r.errorMarker(seg.Content, err))
				continue
			}
			b.WriteString("\n" + r.block.Render(out) + "\n")
		}
	}
	return b.String()
}

// errorMarker renders a failed span: the faulty source, sanitized, with
// the typeset error as an inline tooltip.
func (r *Renderer) errorMarker(src string, err error) string {
	marker := r.errMark.Render("⚠ " + Sanitize(src))
	return marker + " " + r.tooltip.Render("("+err.Error()+")")
}

// looksLikeMath reports whether a string that failed a whole-string
// typeset was plausibly intended as a formula.
func looksLikeMath(s string) bool {
	return strings.ContainsAny(s, `\^_{}=`)
}

// Sanitize strips control characters from untrusted text so it cannot
// inject terminal escape sequences. Newlines and tabs are kept as visible
// breaks; CRLF collapses to a single newline.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
