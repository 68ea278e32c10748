package mathtext

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Typesetter turns a single math expression into displayable text.
// A failed typeset must be reported as an error; the renderer isolates
// the failure to the span that produced it.
type Typesetter interface {
	Typeset(expr string, display bool) (string, error)
}

// UnicodeTypesetter translates a subset of LaTeX into plain Unicode
// suitable for a terminal: fractions, roots, scripts, arrows, relation
// and set symbols. Malformed input (unbalanced groups, dangling
// commands or scripts, unknown commands) is rejected with an error.
type UnicodeTypesetter struct{}

func (UnicodeTypesetter) Typeset(expr string, display bool) (string, error) {
	p := &texParser{in: []rune(expr)}
	out, err := p.sequence(false)
	if err != nil {
		return "", err
	}
	if display {
		out = strings.TrimSpace(out)
	}
	return out, nil
}

type texParser struct {
	in  []rune
	pos int
}

// sequence consumes runes until the end of input, or until an unconsumed
// '}' when inGroup is set.
func (p *texParser) sequence(inGroup bool) (string, error) {
	var b strings.Builder
	for p.pos < len(p.in) {
		switch r := p.in[p.pos]; r {
		case '}':
			if inGroup {
				return b.String(), nil
			}
			return "", fmt.Errorf("unexpected '}' at offset %d", p.pos)
		case '{':
			inner, err := p.group()
			if err != nil {
				return "", err
			}
			b.WriteString(inner)
		case '\\':
			s, err := p.command()
			if err != nil {
				return "", err
			}
			b.WriteString(s)
		case '^':
			p.pos++
			arg, err := p.scriptArg("superscript")
			if err != nil {
				return "", err
			}
			b.WriteString(script(arg, superscripts, "^"))
		case '_':
			p.pos++
			arg, err := p.scriptArg("subscript")
			if err != nil {
				return "", err
			}
			b.WriteString(script(arg, subscripts, "_"))
		case '$':
			return "", fmt.Errorf("'$' is not allowed inside a math expression")
		default:
			b.WriteRune(r)
			p.pos++
		}
	}
	if inGroup {
		return "", errors.New("unbalanced braces")
	}
	return b.String(), nil
}

// group consumes a braced group, cursor on '{'.
func (p *texParser) group() (string, error) {
	p.pos++ // '{'
	inner, err := p.sequence(true)
	if err != nil {
		return "", err
	}
	if p.pos >= len(p.in) || p.in[p.pos] != '}' {
		return "", errors.New("unbalanced braces")
	}
	p.pos++ // '}'
	return inner, nil
}

// arg consumes a command argument: a braced group or a single token.
func (p *texParser) arg(cmd string) (string, error) {
	for p.pos < len(p.in) && p.in[p.pos] == ' ' {
		p.pos++
	}
	if p.pos >= len(p.in) {
		return "", fmt.Errorf("\\%s: missing argument", cmd)
	}
	if p.in[p.pos] == '{' {
		return p.group()
	}
	if p.in[p.pos] == '\\' {
		return p.command()
	}
	r := p.in[p.pos]
	p.pos++
	return string(r), nil
}

// scriptArg consumes the argument of '^' or '_'.
func (p *texParser) scriptArg(what string) (string, error) {
	if p.pos >= len(p.in) {
		return "", fmt.Errorf("missing %s argument", what)
	}
	switch p.in[p.pos] {
	case '{':
		return p.group()
	case '\\':
		return p.command()
	}
	r := p.in[p.pos]
	p.pos++
	return string(r), nil
}

// command consumes a control sequence, cursor on '\'.
func (p *texParser) command() (string, error) {
	p.pos++ // '\'
	if p.pos >= len(p.in) {
		return "", errors.New("dangling '\\' at end of expression")
	}

	r := p.in[p.pos]
	if !unicode.IsLetter(r) {
		p.pos++
		switch r {
		case '\\':
			return "\n", nil
		case ',', ';', ' ', '!':
			return " ", nil
		default:
			// Escaped literal: \{ \} \$ \% \& \# ...
			return string(r), nil
		}
	}

	start := p.pos
	for p.pos < len(p.in) && unicode.IsLetter(p.in[p.pos]) {
		p.pos++
	}
	name := string(p.in[start:p.pos])

	switch name {
	case "frac", "dfrac", "tfrac":
		num, err := p.arg(name)
		if err != nil {
			return "", err
		}
		den, err := p.arg(name)
		if err != nil {
			return "", err
		}
		return paren(num) + "/" + paren(den), nil
	case "sqrt":
		radicand, err := p.arg(name)
		if err != nil {
			return "", err
		}
		return "√" + paren(radicand), nil
	case "vec", "overrightarrow":
		body, err := p.arg(name)
		if err != nil {
			return "", err
		}
		return body + "⃗", nil
	case "overline", "bar":
		body, err := p.arg(name)
		if err != nil {
			return "", err
		}
		return body + "̅", nil
	case "mathbb":
		letter, err := p.arg(name)
		if err != nil {
			return "", err
		}
		if s, ok := blackboard[letter]; ok {
			return s, nil
		}
		return letter, nil
	case "text", "mathrm", "mathit", "mathbf", "operatorname":
		return p.arg(name)
	case "left", "right", "big", "Big":
		return "", nil
	case "quad", "qquad":
		return " ", nil
	}

	if s, ok := symbols[name]; ok {
		return s, nil
	}
	return "", fmt.Errorf("unknown command \\%s", name)
}

// paren wraps multi-token operands so fractions and roots stay readable.
func paren(s string) string {
	if len([]rune(s)) <= 1 {
		return s
	}
	return "(" + s + ")"
}

// script renders a super/subscript, mapping to combining digits when the
// whole argument is representable and falling back to a caret/underscore
// form otherwise.
func script(arg string, table map[rune]rune, fallback string) string {
	var b strings.Builder
	for _, r := range arg {
		m, ok := table[r]
		if !ok {
			return fallback + paren(arg)
		}
		b.WriteRune(m)
	}
	return b.String()
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '(': '⁽', ')': '⁾',
	'n': 'ⁿ', 'i': 'ⁱ',
}

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'i': 'ᵢ', 'n': 'ₙ', 'x': 'ₓ',
}

var blackboard = map[string]string{
	"R": "ℝ", "N": "ℕ", "Z": "ℤ", "Q": "ℚ", "C": "ℂ",
}

var symbols = map[string]string{
	"times": "×", "div": "÷", "cdot": "·",
	"pm": "±", "mp": "∓",
	"leq": "≤", "le": "≤", "geq": "≥", "ge": "≥",
	"neq": "≠", "ne": "≠", "approx": "≈", "equiv": "≡", "sim": "∼",
	"infty": "∞", "circ": "°",
	"pi": "π", "alpha": "α", "beta": "β", "theta": "θ",
	"lambda": "λ", "mu": "μ", "sigma": "σ", "Delta": "Δ", "Omega": "Ω",
	"int": "∫", "sum": "∑", "prod": "∏",
	"to": "→", "rightarrow": "→", "Rightarrow": "⇒",
	"leftrightarrow": "↔", "Leftrightarrow": "⇔",
	"in": "∈", "notin": "∉", "subset": "⊂", "cup": "∪", "cap": "∩",
	"forall": "∀", "exists": "∃", "emptyset": "∅",
	"ldots": "…", "dots": "…", "cdots": "⋯",
	"perp": "⊥", "parallel": "∥", "angle": "∠", "triangle": "△",
	"propto": "∝",
}
