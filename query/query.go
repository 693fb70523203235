package query

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/bunsetu/bunsetu"
	"github.com/revelaction/bunsetu/render"
	sent "github.com/revelaction/bunsetu/sentence"
	"github.com/revelaction/bunsetu/storage"
)

const completionThreshold = 1

type Handler struct {
	DocRepo    storage.DocReader
	Recognizer *bunsetu.Recognizer
	Renderer   *render.Renderer
}

func NewHandler(dr storage.DocReader, rec *bunsetu.Recognizer, r *render.Renderer) *Handler {
	return &Handler{
		DocRepo:    dr,
		Recognizer: rec,
		Renderer:   r,
	}
}

func (h *Handler) Run(ctx context.Context) error {

	fmt.Fprintln(h.Renderer.W, "🔑 Ctrl+X: Toggle prefix, Ctrl+F: next Format, Ctrl+P: phrases, 🔧 quit")

	docs, err := h.DocRepo.List(ctx)
	if err != nil {
		return err
	}

	for _, d := range docs {
		h.Renderer.AddDocName(d.Id, d.Title)
	}

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      ✍  ", h.completer(docs),
			prompt.OptionTitle("bunsetu query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Fprintln(h.Renderer.W, "Format set to: "+h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Fprintln(h.Renderer.W, "Prefix set to "+fmt.Sprintf("%t", h.Renderer.HasPrefix))
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlP,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPhrase()
					fmt.Fprintln(h.Renderer.W, "Phrases set to "+fmt.Sprintf("%t", h.Renderer.Phrase))
				}}),
		)

		if in == "quit" {
			return nil
		}

		history = append(history, in)

		docId, sentId, err := Parse(in)
		if err != nil {
			fmt.Fprintf(h.Renderer.W, "✍  %v\n", err)
			continue
		}

		if err := h.show(ctx, docId, sentId); err != nil {
			fmt.Fprintf(h.Renderer.W, "✍  %v\n", err)
		}
	}
}

func (h *Handler) show(ctx context.Context, docId int, sentId *int) error {
	results, err := DocResults(ctx, h.DocRepo, h.Recognizer, docId)
	if err != nil {
		return err
	}

	if sentId != nil {
		if *sentId < 0 || *sentId >= len(results) {
			return fmt.Errorf("sentence index %d out of bounds (0-%d)", *sentId, len(results)-1)
		}
		results = results[*sentId : *sentId+1]
	}

	for _, res := range results {
		if res == nil {
			continue
		}
		if err := h.Renderer.Render(res); err != nil {
			return err
		}
	}

	return nil
}

// Parse reads a "<doc> [sentence]" line.
func Parse(in string) (int, *int, error) {
	fields := strings.Fields(in)
	if len(fields) == 0 || len(fields) > 2 {
		return 0, nil, errors.New("usage: <docId> [sentenceId]")
	}

	docId, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, nil, fmt.Errorf("invalid doc id %q", fields[0])
	}

	if len(fields) == 1 {
		return docId, nil, nil
	}

	sentId, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, nil, fmt.Errorf("invalid sentence id %q", fields[1])
	}

	return docId, &sentId, nil
}

// DocResults returns the chunking of every sentence of a doc. Chunkings
// stored by the repository are restored; otherwise the sentences are
// recognized. Malformed sentences yield a nil entry.
func DocResults(ctx context.Context, repo storage.DocReader, rec *bunsetu.Recognizer, docId int) ([]*bunsetu.Result, error) {
	doc, err := repo.Read(ctx, docId)
	if err != nil {
		return nil, err
	}

	stored := map[int]storage.Chunking{}
	if cr, ok := repo.(storage.ChunkReader); ok {
		chunks, err := cr.Chunks(ctx, docId)
		if err != nil {
			return nil, err
		}
		for _, c := range chunks {
			stored[c.SentenceId] = c
		}
	}

	results := make([]*bunsetu.Result, len(doc.Sentences))
	for i := range doc.Sentences {
		s := &doc.Sentences[i]
		if c, ok := stored[s.Id]; ok {
			results[i], err = restore(rec, s, c)
		} else {
			results[i], err = rec.Recognize(s)
		}

		if err != nil && !errors.Is(err, sent.ErrMalformedTree) {
			return nil, err
		}
	}

	return results, nil
}

func restore(rec *bunsetu.Recognizer, s *sent.Sentence, c storage.Chunking) (*bunsetu.Result, error) {
	bi, err := bunsetu.ParseLabels(c.BI)
	if err != nil {
		return nil, err
	}

	return rec.Restore(s, c.Heads, bi)
}

func (h *Handler) completer(docs []sent.Doc) prompt.Completer {
	return func(d prompt.Document) []prompt.Suggest {
		w := d.GetWordBeforeCursor()
		if len(w) < completionThreshold || strings.Contains(d.TextBeforeCursor(), " ") {
			return []prompt.Suggest{}
		}

		s := make([]prompt.Suggest, 0, len(docs))
		for _, doc := range docs {
			s = append(s, prompt.Suggest{Text: strconv.Itoa(doc.Id), Description: doc.Title})
		}

		return prompt.FilterHasPrefix(s, w, true)
	}
}
