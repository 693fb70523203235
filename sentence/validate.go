package sentence

import (
	"errors"
	"fmt"
)

// ErrMalformedTree is matched by every MalformedTreeError with errors.Is.
var ErrMalformedTree = errors.New("malformed dependency tree")

// MalformedTreeError reports a sentence whose governor indexes do not form a
// well formed tree.
type MalformedTreeError struct {
	// Index is the token position where the problem was detected.
	Index  int
	Reason string
}

func (e *MalformedTreeError) Error() string {
	return fmt.Sprintf("malformed dependency tree at token %d: %s", e.Index, e.Reason)
}

func (e *MalformedTreeError) Is(target error) bool {
	return target == ErrMalformedTree
}

// Validate checks that the sentence can be chunked: token Index fields match
// their positions, governors are in range, every governor chain reaches a
// root in at most Len() steps and entity spans lie inside the sentence.
func Validate(s *Sentence) error {
	n := len(s.Tokens)

	for i, t := range s.Tokens {
		if t.Index != i {
			return &MalformedTreeError{Index: i, Reason: fmt.Sprintf("index field is %d", t.Index)}
		}

		if t.Head < NoHead || t.Head >= n {
			return &MalformedTreeError{Index: i, Reason: fmt.Sprintf("governor %d out of range [%d, %d)", t.Head, NoHead, n)}
		}
	}

	for i := range s.Tokens {
		cur := i
		steps := 0
		for !s.Tokens[cur].IsRoot() {
			cur = s.Tokens[cur].Head
			steps++
			if steps > n {
				return &MalformedTreeError{Index: i, Reason: "governor chain has a cycle"}
			}
		}
	}

	for _, ent := range s.Ents {
		if ent.Start < 0 || ent.End > n || ent.Start >= ent.End {
			return &MalformedTreeError{Index: ent.Start, Reason: fmt.Sprintf("entity [%d, %d) out of range", ent.Start, ent.End)}
		}

		if ent.Root < ent.Start || ent.Root >= ent.End {
			return &MalformedTreeError{Index: ent.Root, Reason: fmt.Sprintf("entity root outside [%d, %d)", ent.Start, ent.End)}
		}
	}

	return nil
}
