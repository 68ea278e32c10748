package mathtext

import "strings"

// Kind classifies a segment of mixed content.
type Kind int

const (
	// KindText is plain prose outside any math delimiter.
	KindText Kind = iota
	// KindInline is a math span delimited by single dollars: $...$.
	KindInline
	// KindBlock is a math span delimited by double dollars: $$...$$.
	KindBlock
)

// Segment is a contiguous run of mixed content, either plain text or a
// math expression with its delimiters stripped.
type Segment struct {
	Kind    Kind
	Content string
}

// Segments splits mixed content into text and math spans with an explicit
// two-token scan: at each cursor position the next "$$" or "$" is located,
// block delimiters winning ties so that "$$x$$" is never read as two
// inline spans. Matching is non-greedy — a span ends at the first closing
// delimiter. Block spans may cross line breaks and may contain single "$"
// characters as literal content; inline spans end at the current line.
// An unterminated delimiter leaves the trailing fragment (dangling "$"
// included) as plain text.
func Segments(content string) []Segment {
	var segs []Segment
	rest := content

	text := func(s string) {
		if s == "" {
			return
		}
		if n := len(segs); n > 0 && segs[n-1].Kind == KindText {
			segs[n-1].Content += s
			return
		}
		segs = append(segs, Segment{Kind: KindText, Content: s})
	}

	for len(rest) > 0 {
		open := strings.IndexByte(rest, '$')
		if open < 0 {
			text(rest)
			break
		}

		if strings.HasPrefix(rest[open:], "$$") {
			closer := strings.Index(rest[open+2:], "$$")
			if closer < 0 {
				// Unterminated block opener stays literal; keep scanning.
				text(rest[:open+2])
				rest = rest[open+2:]
				continue
			}
			text(rest[:open])
			segs = append(segs, Segment{Kind: KindBlock, Content: rest[open+2 : open+2+closer]})
			rest = rest[open+2+closer+2:]
			continue
		}

		closer := strings.IndexByte(rest[open+1:], '$')
		if closer < 0 || strings.ContainsRune(rest[open+1:open+1+closer], '\n') {
			// Dangling inline opener stays literal; keep scanning.
			text(rest[:open+1])
			rest = rest[open+1:]
			continue
		}
		text(rest[:open])
		segs = append(segs, Segment{Kind: KindInline, Content: rest[open+1 : open+1+closer]})
		rest = rest[open+1+closer+1:]
	}

	return segs
}
