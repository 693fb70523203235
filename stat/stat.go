package stat

import (
	"github.com/revelaction/bunsetu/bunsetu"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences int
	NumTokens    int
	NumChunks    int

	// Sentences skipped because their tree was malformed
	NumSkipped int

	TokensPerSentenceMean float64
	TokensPerChunkMean    float64
	ChunksPerSentenceMean float64

	// chunk length -> number of chunks
	ChunkLenDis map[int]int

	// phrase type of the chunk head -> number of chunks
	PhraseTypes map[bunsetu.PhraseType]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		ChunkLenDis: map[int]int{},
		PhraseTypes: map[bunsetu.PhraseType]int{},
	}
	return &Handler{
		stats: stats,
	}
}

// Skip counts a sentence that could not be chunked.
func (h *Handler) Skip() {
	h.stats.NumSkipped++
}

// Aggregate adds the chunking of one sentence to the stats.
func (h *Handler) Aggregate(res *bunsetu.Result) {
	h.stats.NumSentences++
	h.stats.NumTokens += len(res.BI)

	for _, c := range res.Chunks() {
		h.stats.NumChunks++
		h.stats.ChunkLenDis[c.Len()]++
		h.stats.PhraseTypes[c.Label]++
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = float64(h.stats.NumTokens) / float64(h.stats.NumSentences)
		h.stats.ChunksPerSentenceMean = float64(h.stats.NumChunks) / float64(h.stats.NumSentences)
	}

	if h.stats.NumChunks > 0 {
		h.stats.TokensPerChunkMean = float64(h.stats.NumTokens) / float64(h.stats.NumChunks)
	}
}
