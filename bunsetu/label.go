package bunsetu

import (
	"fmt"

	sent "github.com/revelaction/bunsetu/sentence"
)

// Label is the boundary tag of a token: Begin opens a chunk, Inside
// continues the current one.
type Label byte

const (
	Inside Label = 'I'
	Begin  Label = 'B'
)

func (l Label) String() string {
	return string(l)
}

func (l Label) MarshalText() ([]byte, error) {
	return []byte{byte(l)}, nil
}

func (l *Label) UnmarshalText(b []byte) error {
	if len(b) != 1 || (Label(b[0]) != Begin && Label(b[0]) != Inside) {
		return fmt.Errorf("invalid bunsetu label %q", b)
	}

	*l = Label(b[0])
	return nil
}

// BILabels tags every token of the sentence with Begin or Inside.
//
// Heads are visited in ascending order. Each one writes Begin at the cursor
// left by the previous head, so the first token of a chunk can be a left
// dependent of its head. The cursor then moves past the chunk right edge:
// the last right dependent of the head, or, when a right dependent is itself
// a head, the right edge of the subtree reached so far.
func BILabels(s *sent.Sentence, heads []bool) []Label {
	n := len(s.Tokens)
	labels := make([]Label, n)
	for i := range labels {
		labels[i] = Inside
	}

	next := 0
	for h, isHead := range heads {
		if !isHead {
			continue
		}

		if next < n {
			labels[next] = Begin
		}

		right := h
		for _, d := range s.Rights(h) {
			if heads[d] {
				right = s.RightEdge(right)
				break
			}
			right = d
		}

		next = right + 1
	}

	return labels
}

// LabelString joins labels into a compact "BIIBI" form.
func LabelString(labels []Label) string {
	b := make([]byte, len(labels))
	for i, l := range labels {
		b[i] = byte(l)
	}

	return string(b)
}

// ParseLabels is the inverse of LabelString.
func ParseLabels(str string) ([]Label, error) {
	labels := make([]Label, len(str))
	for i := 0; i < len(str); i++ {
		if err := labels[i].UnmarshalText([]byte{str[i]}); err != nil {
			return nil, err
		}
	}

	return labels, nil
}
