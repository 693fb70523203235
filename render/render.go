package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/bunsetu/bunsetu"
	sent "github.com/revelaction/bunsetu/sentence"
)

const (
	DefaultFormat = "text"

	// chunkSeparator is written between chunks in the text format
	chunkSeparator = " | "
)

var (
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

func SupportedFormats() []string {
	return []string{"text", "conllu", "json"}
}

// Renderer writes chunked sentences to W.
type Renderer struct {
	W io.Writer

	HasColor bool

	HasPrefix bool

	// Phrase appends the phrase spans of the heads to the text format.
	Phrase bool

	// Format determines the output of Render
	//
	// text: one line per sentence, chunks separated by a bar, heads colored.
	// conllu: one token per line, BI labels and phrases in the MISC column.
	// json: one JSON object per sentence.
	Format string

	DocNames map[int]string
}

func NewRenderer() *Renderer {
	return &Renderer{
		W:        os.Stdout,
		Format:   DefaultFormat,
		DocNames: map[int]string{},
	}
}

func (r *Renderer) AddDocName(docId int, name string) {
	r.DocNames[docId] = name
}

// Render writes the chunking of one sentence in the current Format.
func (r *Renderer) Render(res *bunsetu.Result) error {
	switch r.Format {
	case "conllu":
		return r.conllu(res)
	case "json":
		return NewJSONRenderer(r.W).Render(res)
	case "text", "":
		_, err := fmt.Fprintf(r.W, "%s%s\n", r.prefix(res.Sentence()), r.ChunkString(res))
		return err
	}

	return fmt.Errorf("unsupported format %q, allowed values are %s", r.Format, strings.Join(SupportedFormats(), ", "))
}

// ChunkString returns the sentence text with chunks separated by a bar and,
// when Phrase is set, the phrase spans of the heads appended.
func (r *Renderer) ChunkString(res *bunsetu.Result) string {
	s := res.Sentence()

	parts := []string{}
	for _, c := range res.Chunks() {
		parts = append(parts, r.chunk(s, c))
	}

	line := strings.ReplaceAll(strings.Join(parts, chunkSeparator), "\n", " ")
	if !r.Phrase {
		return line
	}

	phrases := []string{}
	for _, sp := range res.Phrases() {
		if sp.Label == bunsetu.NoPhrase {
			continue
		}
		phrases = append(phrases, fmt.Sprintf("%s(%s)", sp.Label, s.Text(sp.Start, sp.End)))
	}

	if len(phrases) == 0 {
		return line
	}

	return line + "  " + r.color(Yellow256, strings.Join(phrases, " "))
}

func (r *Renderer) chunk(s *sent.Sentence, c bunsetu.Span) string {
	if !r.HasColor || c.Head < 0 {
		return s.Text(c.Start, c.End)
	}

	var str strings.Builder
	if c.Head > c.Start {
		str.WriteString(s.Text(c.Start, c.Head))
		if s.SpaceBefore(c.Head) {
			str.WriteString(" ")
		}
	}

	str.WriteString(Green256 + s.Tokens[c.Head].Text + Off)

	if c.Head+1 < c.End {
		if s.SpaceBefore(c.Head + 1) {
			str.WriteString(" ")
		}
		str.WriteString(s.Text(c.Head+1, c.End))
	}

	return str.String()
}

// conllu writes one line per token with the ten CoNLL-U columns.
func (r *Renderer) conllu(res *bunsetu.Result) error {
	s := res.Sentence()

	if r.HasPrefix {
		fmt.Fprintf(r.W, "# sent_id = %d-%d\n", s.DocId, s.Id)
		fmt.Fprintf(r.W, "# text = %s\n", s.Text(0, s.Len()))
	}

	phraseOf := make([]string, s.Len())
	for _, sp := range res.Phrases() {
		if sp.Label == bunsetu.NoPhrase {
			continue
		}
		for i := sp.Start; i < sp.End; i++ {
			tag := "_I"
			if i == sp.Start {
				tag = "_B"
			}
			phraseOf[i] = string(sp.Label) + tag
		}
	}

	for i, t := range s.Tokens {
		head := t.Head + 1
		if t.IsRoot() {
			head = 0
		}

		misc := "BunsetuBILabel=" + res.BI[i].String()
		if res.IsHead(i) {
			misc += "|BunsetuHead=Yes"
		}
		if phraseOf[i] != "" {
			misc += "|Phrase=" + phraseOf[i]
		}

		_, err := fmt.Fprintf(r.W, "%d\t%s\t%s\t%s\t%s\t_\t%d\t%s\t_\t%s\n",
			i+1, t.Text, orUnderscore(t.Lemma), orUnderscore(t.Pos), orUnderscore(t.Tag), head, orUnderscore(t.Dep), misc)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(r.W)
	return err
}

// Table writes a token table of the sentence with the chunk columns.
func (r *Renderer) Table(res *bunsetu.Result) {
	s := res.Sentence()
	for i, token := range s.Tokens {
		head := ""
		if res.IsHead(i) {
			head = "*"
		}
		fmt.Fprintf(r.W, "%20q %15q %8s %6d %6d %12s %2s %1s %s\n", token.Text, token.Lemma, token.Pos, token.Index, token.Head, token.Dep, res.BI[i], head, token.Tag)
	}
}

func (r *Renderer) prefix(s *sent.Sentence) string {
	if !r.HasPrefix {
		return ""
	}

	return fmt.Sprintf("[%s %2d %5d] ✍  ", r.title(s.DocId), s.DocId, s.Id)
}

func (r *Renderer) title(docId int) string {
	title := r.DocNames[docId]
	var part string
	if len([]rune(title)) <= 20 {
		part = fmt.Sprintf("%-20s", title)
	} else {
		part = string([]rune(title)[:20])
	}

	return r.color(Grey256, part)
}

func (r *Renderer) color(c, text string) string {
	if !r.HasColor {
		return text
	}

	return c + text + Off
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {

	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			switch i {
			case len(supported) - 1:
				r.Format = supported[0]
			default:
				r.Format = supported[i+1]
			}

			break
		}
	}
}

func (r *Renderer) NextPrefix() {

	// toggle
	r.HasPrefix = !r.HasPrefix
}

func (r *Renderer) NextPhrase() {
	r.Phrase = !r.Phrase
}

func orUnderscore(s string) string {
	if s == "" {
		return "_"
	}
	return s
}
