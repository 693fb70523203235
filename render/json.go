package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/bunsetu/bunsetu"
)

// JSONRenderer writes chunked sentences as JSON objects to a writer, one per
// line.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// SentenceRecord is the JSON form of a chunked sentence.
type SentenceRecord struct {
	DocId      int             `json:"doc_id"`
	SentenceId int             `json:"sent_id"`
	Text       string          `json:"text"`
	Heads      []int           `json:"heads"`
	BI         []bunsetu.Label `json:"bi"`
	Chunks     []SpanRecord    `json:"chunks"`
	Phrases    []SpanRecord    `json:"phrases"`
}

// SpanRecord is a span with its surface text.
type SpanRecord struct {
	bunsetu.Span
	Text string `json:"text"`
}

// NewSentenceRecord builds the record of a chunked sentence.
func NewSentenceRecord(res *bunsetu.Result) SentenceRecord {
	s := res.Sentence()
	rec := SentenceRecord{
		DocId:      s.DocId,
		SentenceId: s.Id,
		Text:       s.Text(0, s.Len()),
		Heads:      res.Heads,
		BI:         res.BI,
		Chunks:     []SpanRecord{},
		Phrases:    []SpanRecord{},
	}

	for _, c := range res.Chunks() {
		rec.Chunks = append(rec.Chunks, SpanRecord{Span: c, Text: s.Text(c.Start, c.End)})
	}

	for _, p := range res.Phrases() {
		rec.Phrases = append(rec.Phrases, SpanRecord{Span: p, Text: s.Text(p.Start, p.End)})
	}

	return rec
}

// Render serializes the chunking of one sentence.
func (r *JSONRenderer) Render(res *bunsetu.Result) error {
	return json.NewEncoder(r.W).Encode(NewSentenceRecord(res))
}
