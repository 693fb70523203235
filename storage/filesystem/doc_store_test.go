package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	sent "github.com/revelaction/bunsetu/sentence"
)

func writeDocs(t *testing.T, dir string) {
	t.Helper()

	b := sent.Doc{Title: "b", Sentences: []sent.Sentence{
		{Tokens: []sent.Token{{Index: 0, Head: 0, Dep: "ROOT", Text: "b"}}},
	}}
	a := sent.Doc{Title: "a", Labels: []string{"x"}, Sentences: []sent.Sentence{
		{Tokens: []sent.Token{{Index: 0, Head: 0, Dep: "ROOT", Text: "a"}}},
		{Tokens: []sent.Token{{Index: 0, Head: 0, Dep: "ROOT", Text: "aa"}}},
	}}

	if err := WriteDoc(filepath.Join(dir, "b.json"), b); err != nil {
		t.Fatal(err)
	}
	if err := WriteDoc(filepath.Join(dir, "a.json"), a); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDocStoreRead(t *testing.T) {
	dir := t.TempDir()
	writeDocs(t, dir)

	store, err := NewDocStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, err := store.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Title != "a.json" {
		t.Fatalf("unexpected list %+v", list)
	}

	doc, err := store.Read(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(doc.Sentences))
	}

	if doc.Sentences[1].Id != 1 || doc.Sentences[1].Tokens[0].Text != "aa" {
		t.Errorf("unexpected second sentence %+v", doc.Sentences[1])
	}

	if _, err := store.Read(context.Background(), 5); err == nil {
		t.Error("expected out of range error")
	}
}

func TestDocStoreLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeDocs(t, dir)

	store, err := NewDocStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	err = store.LoadAll(func(total int, name string) {
		if total != 2 {
			t.Errorf("expected total 2, got %d", total)
		}
		names = append(names, name)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(names) != 2 || names[1] != "b.json" {
		t.Errorf("unexpected callback names %v", names)
	}
}

func TestDocStoreReadOnly(t *testing.T) {
	store, err := NewDocStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := store.Write(context.Background(), sent.Doc{}); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("expected ErrReadOnly, got %v", err)
	}
}

func TestReadDocErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := ReadDoc(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected IO error")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadDoc(bad); err == nil {
		t.Error("expected JSON error")
	}
}

func TestDocStoreReadAfterLoadAllIsACopy(t *testing.T) {
	dir := t.TempDir()
	writeDocs(t, dir)

	store, err := NewDocStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.LoadAll(nil); err != nil {
		t.Fatal(err)
	}

	doc, err := store.Read(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	doc.Sentences[0].Tokens[0].Dep = "changed"
	doc.Labels[0] = "changed"

	again, err := store.Read(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if again.Sentences[0].Tokens[0].Dep != "ROOT" {
		t.Errorf("cached token modified: %q", again.Sentences[0].Tokens[0].Dep)
	}
	if again.Labels[0] != "x" {
		t.Errorf("cached labels modified: %v", again.Labels)
	}
}
