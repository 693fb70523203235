package bunsetu

import (
	"slices"

	sent "github.com/revelaction/bunsetu/sentence"
)

// PhraseType is the phrase category derived from the POS of a head.
type PhraseType string

const (
	NoPhrase PhraseType = ""
	NP       PhraseType = "NP"
	VP       PhraseType = "VP"
	ADJP     PhraseType = "ADJP"
	ADVP     PhraseType = "ADVP"
	CCONJP   PhraseType = "CCONJP"
)

// PhraseTypeOf maps a universal POS tag to its phrase type.
func PhraseTypeOf(pos string) PhraseType {
	switch pos {
	case "NOUN", "NUM", "PRON", "PROPN":
		return NP
	case "VERB":
		return VP
	case "ADJ":
		return ADJP
	case "ADV":
		return ADVP
	case "CCONJ":
		return CCONJP
	}

	return NoPhrase
}

// Span is a half-open token range [Start, End) of a sentence.
type Span struct {
	Start int        `json:"start"`
	End   int        `json:"end"`
	Head  int        `json:"head"`
	Label PhraseType `json:"label,omitempty"`
}

// Len returns the number of tokens in the span
func (sp Span) Len() int {
	return sp.End - sp.Start
}

// Contains reports whether token i lies inside the span.
func (sp Span) Contains(i int) bool {
	return sp.Start <= i && i < sp.End
}

// PhraseSpan returns the phrase rooted at head: the head plus every
// descendant reachable through dependents that are not heads themselves and
// whose label is one of relations.
func PhraseSpan(s *sent.Sentence, heads []bool, head int, relations []string) Span {
	lo, hi := head, head
	stack := []int{head}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		lo = min(lo, cur)
		hi = max(hi, cur)

		for _, c := range s.Children(cur) {
			if heads[c] || !slices.Contains(relations, s.Tokens[c].Dep) {
				continue
			}
			stack = append(stack, c)
		}
	}

	return Span{
		Start: lo,
		End:   hi + 1,
		Head:  head,
		Label: PhraseTypeOf(s.Tokens[head].Pos),
	}
}
