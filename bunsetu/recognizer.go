package bunsetu

import (
	"fmt"

	sent "github.com/revelaction/bunsetu/sentence"
)

// Recognizer runs the chunking passes over sentences.
type Recognizer struct {
	cfg Config
}

// NewRecognizer returns a Recognizer using cfg. A nil PhraseRelations falls
// back to DefaultPhraseRelations.
func NewRecognizer(cfg Config) *Recognizer {
	if cfg.PhraseRelations == nil {
		cfg.PhraseRelations = DefaultPhraseRelations()
	}

	return &Recognizer{cfg: cfg}
}

// Recognize validates the sentence and computes its chunk heads and
// Begin/Inside labels. Suffixed dependency labels of s are stripped in place.
func (r *Recognizer) Recognize(s *sent.Sentence) (*Result, error) {
	if err := sent.Validate(s); err != nil {
		return nil, err
	}

	heads := MarkHeads(s, r.cfg.HeadSuffix)
	if err := RecoverSubtrees(s, heads); err != nil {
		return nil, err
	}

	ResolveEntities(heads, s.Ents)

	return &Result{
		Heads:     HeadList(heads),
		BI:        BILabels(s, heads),
		sentence:  s,
		isHead:    heads,
		relations: r.cfg.PhraseRelations,
	}, nil
}

// Restore rebuilds the Result of a sentence from stored heads and labels,
// without running the passes again.
func (r *Recognizer) Restore(s *sent.Sentence, heads []int, bi []Label) (*Result, error) {
	n := len(s.Tokens)
	if len(bi) != n {
		return nil, fmt.Errorf("got %d labels for a sentence of %d tokens", len(bi), n)
	}

	isHead := make([]bool, n)
	for _, h := range heads {
		if h < 0 || h >= n {
			return nil, fmt.Errorf("head %d out of range for a sentence of %d tokens", h, n)
		}
		isHead[h] = true
	}

	return &Result{
		Heads:     HeadList(isHead),
		BI:        bi,
		sentence:  s,
		isHead:    isHead,
		relations: r.cfg.PhraseRelations,
	}, nil
}

// Result holds the chunking of one sentence.
type Result struct {
	// Heads are the chunk head indexes in ascending order.
	Heads []int `json:"heads"`

	// BI has one label per token.
	BI []Label `json:"bi"`

	sentence  *sent.Sentence
	isHead    []bool
	relations []string
}

// Sentence returns the chunked sentence
func (res *Result) Sentence() *sent.Sentence {
	return res.sentence
}

// IsHead reports whether token i is a chunk head.
func (res *Result) IsHead(i int) bool {
	return i >= 0 && i < len(res.isHead) && res.isHead[i]
}

// HeadsIn returns the heads inside [start, end), relative to start.
func (res *Result) HeadsIn(start, end int) []int {
	list := []int{}
	for _, h := range res.Heads {
		if start <= h && h < end {
			list = append(list, h-start)
		}
	}

	return list
}

// ChunkSpan returns the chunk holding token head: from the nearest Begin at
// or before it to the next Begin after it. A head outside the sentence gives
// an empty Span with Head -1.
func (res *Result) ChunkSpan(head int) Span {
	n := len(res.BI)
	if head < 0 || head >= n {
		return Span{Head: -1}
	}

	begin := 0
	for i := head; i > 0; i-- {
		if res.BI[i] == Begin {
			begin = i
			break
		}
	}

	end := n
	for i := head + 1; i < n; i++ {
		if res.BI[i] == Begin {
			end = i
			break
		}
	}

	return Span{
		Start: begin,
		End:   end,
		Head:  head,
		Label: PhraseTypeOf(res.sentence.Tokens[head].Pos),
	}
}

// Chunks decodes the labels into consecutive spans covering the sentence.
// A chunk without a head inside has Head -1 and no label.
func (res *Result) Chunks() []Span {
	n := len(res.BI)
	var chunks []Span
	start := 0
	for i := 1; i <= n; i++ {
		if i < n && res.BI[i] != Begin {
			continue
		}

		chunk := Span{Start: start, End: i, Head: -1}
		for _, h := range res.Heads {
			if chunk.Contains(h) {
				chunk.Head = h
				chunk.Label = PhraseTypeOf(res.sentence.Tokens[h].Pos)
				break
			}
		}

		chunks = append(chunks, chunk)
		start = i
	}

	return chunks
}

// PhraseSpan returns the phrase rooted at chunk head head, following the
// relations of the recognizer configuration. A head outside the sentence
// gives an empty Span with Head -1.
func (res *Result) PhraseSpan(head int) Span {
	if head < 0 || head >= len(res.isHead) {
		return Span{Head: -1}
	}

	return PhraseSpan(res.sentence, res.isHead, head, res.relations)
}

// Phrases returns the phrase span of every head.
func (res *Result) Phrases() []Span {
	spans := make([]Span, 0, len(res.Heads))
	for _, h := range res.Heads {
		spans = append(spans, res.PhraseSpan(h))
	}

	return spans
}
