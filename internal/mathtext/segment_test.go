package mathtext

import (
	"reflect"
	"testing"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Segment
	}{
		{
			name:    "plain text only",
			content: "Bonjour les maths",
			want:    []Segment{{Kind: KindText, Content: "Bonjour les maths"}},
		},
		{
			name:    "single inline span",
			content: "$x$",
			want:    []Segment{{Kind: KindInline, Content: "x"}},
		},
		{
			name:    "single block span",
			content: "$$x^2$$",
			want:    []Segment{{Kind: KindBlock, Content: "x^2"}},
		},
		{
			name:    "text around inline",
			content: "Aire : $\\pi r^2$ environ",
			want: []Segment{
				{Kind: KindText, Content: "Aire : "},
				{Kind: KindInline, Content: "\\pi r^2"},
				{Kind: KindText, Content: " environ"},
			},
		},
		{
			name:    "block wins over inline on ties",
			content: "$$x$ $y$$",
			want:    []Segment{{Kind: KindBlock, Content: "x$ $y"}},
		},
		{
			name:    "block spans line breaks",
			content: "$$a\n+b$$",
			want:    []Segment{{Kind: KindBlock, Content: "a\n+b"}},
		},
		{
			name:    "inline stops at line break",
			content: "$a\nb$",
			want:    []Segment{{Kind: KindText, Content: "$a\nb$"}},
		},
		{
			name:    "dangling inline dollar stays literal",
			content: "prix : 5$ seulement",
			want:    []Segment{{Kind: KindText, Content: "prix : 5$ seulement"}},
		},
		{
			name:    "unterminated block stays literal",
			content: "$$x+1",
			want:    []Segment{{Kind: KindText, Content: "$$x+1"}},
		},
		{
			name:    "dollars pair non-greedily",
			content: "a$b$c$d$e",
			want: []Segment{
				{Kind: KindText, Content: "a"},
				{Kind: KindInline, Content: "b"},
				{Kind: KindText, Content: "c"},
				{Kind: KindInline, Content: "d"},
				{Kind: KindText, Content: "e"},
			},
		},
		{
			name:    "consecutive spans",
			content: "$a$$b$",
			want: []Segment{
				{Kind: KindInline, Content: "a"},
				{Kind: KindInline, Content: "b"},
			},
		},
		{
			name:    "empty input",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segments(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segments(%q) = %#v, want %#v", tt.content, got, tt.want)
			}
		})
	}
}
