package sentence

import (
	"slices"
	"strings"
)

// NoHead is the governor value of a root token that does not point to
// itself.
const NoHead = -1

type Doc struct {
	Id int `json:"id"`

	Title string `json:"title"`

	Labels    []string   `json:"labels,omitempty"`
	Sentences []Sentence `json:"sentences"`
}

// SetIds numbers the sentences of the doc by position and points them to
// the doc id.
func (d *Doc) SetIds() {
	for i := range d.Sentences {
		d.Sentences[i].Id = i
		d.Sentences[i].DocId = d.Id
	}
}

// Clone returns a copy of the doc that shares no slices with d.
func (d Doc) Clone() Doc {
	c := d
	c.Labels = slices.Clone(d.Labels)
	c.Sentences = slices.Clone(d.Sentences)
	for i := range c.Sentences {
		c.Sentences[i].Tokens = slices.Clone(d.Sentences[i].Tokens)
		c.Sentences[i].Ents = slices.Clone(d.Sentences[i].Ents)
	}

	return c
}

// Library is a collection of Doc
type Library []Doc

// Sentence is a dependency parsed sentence, with optional entity spans.
type Sentence struct {
	Id     int      `json:"id"`
	DocId  int      `json:"doc_id"`
	Tokens []Token  `json:"tokens"`
	Ents   []Entity `json:"ents,omitempty"`
}

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	Id         int    `json:"id"`
	Head       int    `json:"head"`
	SentenceId int    `json:"sent"`
	Pos        string `json:"pos"`
	Dep        string `json:"dep"`

	// A string containing detailed POS data
	Tag string `json:"tag"`

	// the index of the start character of the token in the original doc (set by spacy, stanza)
	Idx int `json:"idx"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`
}

// IsRoot reports whether the token has no governor above it.
func (t Token) IsRoot() bool {
	return t.Head == NoHead || t.Head == t.Index
}

// Entity is a named entity span [Start, End) produced by an upstream
// recognizer. Root is the index of the syntactic head of the span.
type Entity struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Root  int    `json:"root"`
	Label string `json:"label,omitempty"`
}

// Len returns the number of tokens of the sentence
func (s *Sentence) Len() int {
	return len(s.Tokens)
}

// Children returns the indexes of the direct dependents of token i in
// ascending order.
func (s *Sentence) Children(i int) []int {
	var children []int
	for _, t := range s.Tokens {
		if t.Index != i && t.Head == i {
			children = append(children, t.Index)
		}
	}

	return children
}

// Rights returns the direct dependents of token i positioned after it, in
// ascending order.
func (s *Sentence) Rights(i int) []int {
	var rights []int
	for j := i + 1; j < len(s.Tokens); j++ {
		if s.Tokens[j].Head == i {
			rights = append(rights, j)
		}
	}

	return rights
}

// RightEdge returns the rightmost token index dominated by token i,
// inclusive.
func (s *Sentence) RightEdge(i int) int {
	edge := i
	stack := []int{i}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur > edge {
			edge = cur
		}

		stack = append(stack, s.Children(cur)...)
	}

	return edge
}

// SpaceBefore reports whether token i is separated from the previous one by
// white space in the original text. Without character offsets every token
// is.
func (s *Sentence) SpaceBefore(i int) bool {
	if i <= 0 || i >= len(s.Tokens) {
		return false
	}

	t, prev := s.Tokens[i], s.Tokens[i-1]
	if t.Idx == 0 && prev.Idx == 0 {
		return true
	}

	return t.Idx > prev.Idx+len([]rune(prev.Text))
}

// Text returns the surface of the tokens [start, end) joined by the
// original spacing.
func (s *Sentence) Text(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(s.Tokens) {
		end = len(s.Tokens)
	}

	var text strings.Builder
	for i := start; i < end; i++ {
		t := s.Tokens[i]
		if i > start {
			// multi token words share the offset and the text
			if t.Idx != 0 && t.Idx == s.Tokens[i-1].Idx {
				continue
			}

			if s.SpaceBefore(i) {
				text.WriteByte(' ')
			}
		}
		text.WriteString(t.Text)
	}

	return text.String()
}
