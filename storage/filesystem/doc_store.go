package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	sent "github.com/revelaction/bunsetu/sentence"
	"github.com/revelaction/bunsetu/storage"
)

var ErrReadOnly = errors.New("read-only storage")

// DocStore reads the JSON docs of a directory. Doc ids are the positions of
// the files in name order.
type DocStore struct {
	docDir string

	// In-memory cache
	docs []sent.Doc
}

var _ storage.DocRepository = (*DocStore)(nil)

// NewDocStore creates a filesystem document handler.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, file := range files {
		if !file.IsDir() && filepath.Ext(file.Name()) == ".json" {
			names = append(names, file.Name())
		}
	}
	sort.Strings(names)

	docs := make([]sent.Doc, 0, len(names))
	for idx, name := range names {
		docs = append(docs, sent.Doc{
			Id:    idx,
			Title: name,
		})
	}

	return &DocStore{
		docDir: docDir,
		docs:   docs,
	}, nil
}

// LoadAll preloads all docs into memory.
func (h *DocStore) LoadAll(cb func(total int, name string)) error {
	total := len(h.docs)
	for i := range h.docs {
		doc := &h.docs[i] // pointer to modify in place

		if cb != nil {
			cb(total, doc.Title)
		}

		if doc.Sentences != nil {
			continue
		}

		fullDoc, err := ReadDoc(filepath.Join(h.docDir, doc.Title))
		if err != nil {
			return err
		}

		doc.Sentences = fullDoc.Sentences
		doc.Labels = fullDoc.Labels
		doc.SetIds()
	}

	return nil
}

func (h *DocStore) List(ctx context.Context) ([]sent.Doc, error) {
	list := make([]sent.Doc, len(h.docs))
	for i, d := range h.docs {
		list[i] = sent.Doc{Id: d.Id, Title: d.Title, Labels: d.Labels}
	}
	return list, nil
}

func (h *DocStore) Read(ctx context.Context, id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return sent.Doc{}, fmt.Errorf("doc id out of range: %d", id)
	}

	// callers may rewrite tokens in place; the cache stays intact
	doc := h.docs[id]
	if doc.Sentences != nil {
		return doc.Clone(), nil
	}

	full, err := ReadDoc(filepath.Join(h.docDir, doc.Title))
	if err != nil {
		return sent.Doc{}, err
	}
	full.Id = doc.Id
	full.Title = doc.Title
	full.SetIds()

	return full, nil
}

func (h *DocStore) Write(ctx context.Context, doc sent.Doc) (int, error) {
	return 0, ErrReadOnly
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it. Sentence
// and doc ids missing from the file are filled from positions.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var doc sent.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("JSON decoding error in %s: %w", path, err)
	}

	if doc.Title == "" {
		doc.Title = filepath.Base(path)
	}

	doc.SetIds()
	return doc, nil
}

// WriteDoc writes doc as indented JSON to path.
func WriteDoc(path string, doc sent.Doc) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
