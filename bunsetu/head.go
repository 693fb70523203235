package bunsetu

import (
	"strings"

	sent "github.com/revelaction/bunsetu/sentence"
)

// HeadKind classifies a dependency label with respect to chunk heads.
type HeadKind int

const (
	// Internal labels do not mark a head.
	Internal HeadKind = iota

	// Root is the sentence root label.
	Root

	// BoundaryHead labels carry the head suffix.
	BoundaryHead
)

func (k HeadKind) String() string {
	switch k {
	case Root:
		return "root"
	case BoundaryHead:
		return "boundary"
	default:
		return "internal"
	}
}

// Classify returns the HeadKind of the dependency label dep under the given
// head suffix.
func Classify(dep, suffix string) HeadKind {
	if dep == RootLabel {
		return Root
	}

	if suffix != "" && strings.HasSuffix(dep, suffix) {
		return BoundaryHead
	}

	return Internal
}

// MarkHeads returns the initial head flags of the sentence: the ROOT token
// and every token whose label ends with suffix. The suffix is stripped from
// the label in place, so a second call marks only the root.
func MarkHeads(s *sent.Sentence, suffix string) []bool {
	heads := make([]bool, len(s.Tokens))
	for i := range s.Tokens {
		t := &s.Tokens[i]
		switch Classify(t.Dep, suffix) {
		case Root:
			heads[i] = true
		case BoundaryHead:
			heads[i] = true
			t.Dep = strings.TrimSuffix(t.Dep, suffix)
		}
	}

	return heads
}

// RecoverSubtrees climbs from every head through the governors positioned
// before it, marking each unmarked one until an already marked governor is
// reached. Punctuation met on the way is not promoted. The governor where
// the climb stops is then marked unconditionally.
//
// Governors positioned after a head are never climbed: a token attached to
// the right that no leftward chain reaches stays unmarked.
func RecoverSubtrees(s *sent.Sentence, heads []bool) error {
	n := len(s.Tokens)

	// heads is read live: governors marked to the right of i are visited
	// later in the same loop.
	for i := 0; i < n; i++ {
		if !heads[i] {
			continue
		}

		cur := i
		for steps := 0; ; steps++ {
			if steps > n {
				return &sent.MalformedTreeError{Index: i, Reason: "governor ascent exceeds sentence length"}
			}

			gov := s.Tokens[cur].Head
			if gov == sent.NoHead || gov >= cur || heads[gov] {
				break
			}

			heads[gov] = s.Tokens[gov].Pos != punct
			cur = gov
		}

		if gov := s.Tokens[cur].Head; gov != sent.NoHead {
			heads[gov] = true
		}
	}

	return nil
}

// ResolveEntities leaves at most one head inside each entity span: every
// token of the span but its root is unmarked.
func ResolveEntities(heads []bool, ents []sent.Entity) {
	for _, ent := range ents {
		for i := max(ent.Start, 0); i < ent.End && i < len(heads); i++ {
			if i != ent.Root {
				heads[i] = false
			}
		}
	}
}

// HeadList returns the indexes of the marked heads in ascending order.
func HeadList(heads []bool) []int {
	list := []int{}
	for i, isHead := range heads {
		if isHead {
			list = append(list, i)
		}
	}

	return list
}
