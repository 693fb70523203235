package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	sent "github.com/revelaction/bunsetu/sentence"
	"github.com/revelaction/bunsetu/storage/filesystem"
)

// 今日は 蕎麦を 食べた, with the bunsetu heads of the first two chunks
// carrying the suffix.
func writeTestDoc(t *testing.T, dir, name string) string {
	t.Helper()

	doc := sent.Doc{
		Title: name,
		Sentences: []sent.Sentence{
			{Tokens: []sent.Token{
				{Index: 0, Head: 4, Pos: "NOUN", Dep: "obl_bunsetu", Text: "今日", Idx: 0},
				{Index: 1, Head: 0, Pos: "ADP", Dep: "case", Text: "は", Idx: 2},
				{Index: 2, Head: 4, Pos: "NOUN", Dep: "obj_bunsetu", Text: "蕎麦", Idx: 3},
				{Index: 3, Head: 2, Pos: "ADP", Dep: "case", Text: "を", Idx: 5},
				{Index: 4, Head: 4, Pos: "VERB", Dep: "ROOT", Text: "食べ", Idx: 6},
				{Index: 5, Head: 4, Pos: "AUX", Dep: "aux", Text: "た", Idx: 8},
			}},
			// cycle
			{Tokens: []sent.Token{
				{Index: 0, Head: 1, Dep: "nsubj", Text: "a"},
				{Index: 1, Head: 0, Dep: "ROOT", Text: "b", Idx: 2},
			}},
		},
	}

	path := filepath.Join(dir, name)
	if err := filesystem.WriteDoc(path, doc); err != nil {
		t.Fatal(err)
	}

	return path
}

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("BUNSETU_DOC_PATH", "")
	var out, errOut bytes.Buffer
	err := newApp(UI{Out: &out, Err: &errOut}).Run(append([]string{"bunsetu"}, args...))
	return out.String(), errOut.String(), err
}

func TestChunkCommand(t *testing.T) {
	path := writeTestDoc(t, t.TempDir(), "soba.json")

	out, errOut, err := runApp(t, "chunk", "--no-color", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "今日は | 蕎麦を | 食べた\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}

	if !strings.Contains(errOut, "skipping sentence") {
		t.Errorf("expected a warning for the malformed sentence, got %q", errOut)
	}
}

func TestChunkCommandQuiet(t *testing.T) {
	path := writeTestDoc(t, t.TempDir(), "soba.json")

	_, errOut, err := runApp(t, "--log-level", "error", "chunk", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if errOut != "" {
		t.Errorf("expected no log output, got %q", errOut)
	}
}

func TestChunkCommandConllu(t *testing.T) {
	path := writeTestDoc(t, t.TempDir(), "soba.json")

	out, _, err := runApp(t, "chunk", "--format", "conllu", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "BunsetuBILabel=B|BunsetuHead=Yes") {
		t.Errorf("missing MISC column in %q", out)
	}
}

func TestChunkCommandErrors(t *testing.T) {
	if _, _, err := runApp(t, "chunk"); err == nil {
		t.Error("expected error without files")
	}

	if _, _, err := runApp(t, "chunk", filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for a missing file")
	}

	path := writeTestDoc(t, t.TempDir(), "soba.json")
	if _, _, err := runApp(t, "chunk", "--format", "xml", path); err == nil {
		t.Error("expected error for an unsupported format")
	}
}

func TestImportAndSentence(t *testing.T) {
	docDir := t.TempDir()
	writeTestDoc(t, docDir, "soba.json")
	db := filepath.Join(t.TempDir(), "bunsetu.db")

	out, _, err := runApp(t, "import", "--from", docDir, "--to", db, "--workers", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Successfully imported 1 docs") {
		t.Errorf("unexpected import output %q", out)
	}

	out, _, err = runApp(t, "sentence", "--no-color", "--doc-path", db, "1", "0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(out, "\n")
	if lines[0] != "今日は | 蕎麦を | 食べた" {
		t.Errorf("unexpected chunk line %q", lines[0])
	}
	// chunk line, six tokens and the trailing newline
	if len(lines) != 8 {
		t.Errorf("expected 8 lines, got %d: %q", len(lines), out)
	}

	if _, _, err := runApp(t, "sentence", "--doc-path", db, "1", "1"); err == nil {
		t.Error("expected error for the malformed sentence")
	}
}

func TestSentenceFromDirectory(t *testing.T) {
	docDir := t.TempDir()
	writeTestDoc(t, docDir, "soba.json")

	out, _, err := runApp(t, "sentence", "--no-color", "--doc-path", docDir, "0", "0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(out, "今日は | 蕎麦を | 食べた\n") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestStatCommand(t *testing.T) {
	path := writeTestDoc(t, t.TempDir(), "soba.json")

	out, _, err := runApp(t, "stat", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "Num sentences 1, skipped 1, num tokens 6, num chunks 3") {
		t.Errorf("unexpected stats %q", out)
	}
	if !strings.Contains(out, "chunk length   2: 3") {
		t.Errorf("missing chunk length distribution in %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runApp(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(out, "bunsetu version "+BuildTag) {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestRunExitCode(t *testing.T) {
	t.Setenv("BUNSETU_DOC_PATH", "")
	var out, errOut bytes.Buffer
	ui := UI{Out: &out, Err: &errOut}

	if code := run([]string{"bunsetu", "sentence", "0", "0"}, ui); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}

	if !strings.HasPrefix(errOut.String(), "bunsetu: no doc path") {
		t.Errorf("unexpected error output %q", errOut.String())
	}

	errOut.Reset()
	if code := run([]string{"bunsetu", "version"}, ui); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, errOut.String())
	}
}
