package bunsetu

import (
	"fmt"
	"strings"

	sent "github.com/revelaction/bunsetu/sentence"
)

// AppendHeadSuffix marks the head of the candidate chunk [start, end): the
// first token whose governor lies outside the window gets suffix appended
// to its dependency label, for MarkHeads to pick up later. Nothing changes
// when a root token is met first or suffix is empty.
func AppendHeadSuffix(s *sent.Sentence, start, end int, suffix string) error {
	if suffix == "" {
		return nil
	}

	if start < 0 || end > len(s.Tokens) || start >= end {
		return fmt.Errorf("window [%d, %d) out of range for sentence of %d tokens", start, end, len(s.Tokens))
	}

	for i := start; i < end; i++ {
		t := &s.Tokens[i]
		if strings.ToLower(t.Dep) == "root" {
			return nil
		}

		if t.Head < start || end <= t.Head {
			t.Dep += suffix
			return nil
		}
	}

	return nil
}
