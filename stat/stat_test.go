package stat

import (
	"testing"

	"github.com/revelaction/bunsetu/bunsetu"
	sent "github.com/revelaction/bunsetu/sentence"
)

func TestAggregate(t *testing.T) {
	r := bunsetu.NewRecognizer(bunsetu.DefaultConfig())

	sentences := []*sent.Sentence{
		{Tokens: []sent.Token{
			{Index: 0, Head: 2, Pos: "NOUN", Dep: "nsubj_bunsetu"},
			{Index: 1, Head: 0, Pos: "ADP", Dep: "case"},
			{Index: 2, Head: 2, Pos: "VERB", Dep: "ROOT"},
			{Index: 3, Head: 2, Pos: "AUX", Dep: "aux"},
		}},
		{Tokens: []sent.Token{
			{Index: 0, Head: 0, Pos: "INTJ", Dep: "ROOT"},
			{Index: 1, Head: 0, Pos: "PUNCT", Dep: "punct"},
		}},
		{},
	}

	h := NewHandler()
	for _, s := range sentences {
		res, err := r.Recognize(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		h.Aggregate(res)
	}
	h.Skip()

	stats := h.Get()
	if stats.NumSentences != 3 || stats.NumTokens != 6 || stats.NumSkipped != 1 {
		t.Fatalf("unexpected counts %+v", stats)
	}

	// [0,2) [2,4) and [0,2)
	if stats.NumChunks != 3 {
		t.Fatalf("expected 3 chunks, got %d", stats.NumChunks)
	}

	if stats.ChunkLenDis[2] != 3 {
		t.Errorf("unexpected length distribution %v", stats.ChunkLenDis)
	}

	if stats.PhraseTypes[bunsetu.NP] != 1 || stats.PhraseTypes[bunsetu.VP] != 1 || stats.PhraseTypes[bunsetu.NoPhrase] != 1 {
		t.Errorf("unexpected phrase types %v", stats.PhraseTypes)
	}

	if stats.TokensPerChunkMean != 2 {
		t.Errorf("expected 2 tokens per chunk, got %v", stats.TokensPerChunkMean)
	}

	if stats.ChunksPerSentenceMean != 1 {
		t.Errorf("expected 1 chunk per sentence, got %v", stats.ChunksPerSentenceMean)
	}
}

func TestGetEmpty(t *testing.T) {
	stats := NewHandler().Get()
	if stats.TokensPerChunkMean != 0 || stats.NumSentences != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}
