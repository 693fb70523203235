package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	sent "github.com/revelaction/bunsetu/sentence"
	"github.com/revelaction/bunsetu/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type DocStore struct {
	pool *sqlitex.Pool
}

var (
	_ storage.DocRepository = (*DocStore)(nil)
	_ storage.ChunkReader   = (*DocStore)(nil)
	_ storage.ChunkWriter   = (*DocStore)(nil)
)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

func (h *DocStore) List(ctx context.Context) ([]sent.Doc, error) {
	conn, err := h.pool.Take(ctx)
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var docs []sent.Doc
	err = sqlitex.Execute(conn, "SELECT id, title, labels FROM docs ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			doc := sent.Doc{
				Id:    stmt.ColumnInt(0),
				Title: stmt.ColumnText(1),
			}
			labelsStr := stmt.ColumnText(2)
			if labelsStr != "" {
				doc.Labels = strings.Split(labelsStr, ",")
			}
			docs = append(docs, doc)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (h *DocStore) Read(ctx context.Context, id int) (sent.Doc, error) {
	conn, err := h.pool.Take(ctx)
	if err != nil {
		return sent.Doc{}, err
	}
	defer h.pool.Put(conn)

	doc := sent.Doc{Id: id}
	found := false

	err = sqlitex.Execute(conn, "SELECT title, labels FROM docs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc.Title = stmt.ColumnText(0)
			if labelsStr := stmt.ColumnText(1); labelsStr != "" {
				doc.Labels = strings.Split(labelsStr, ",")
			}
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}
	if !found {
		return sent.Doc{}, fmt.Errorf("doc not found: %d", id)
	}

	err = sqlitex.Execute(conn, "SELECT data FROM sentences WHERE doc_id = ? ORDER BY sent_id", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var s sent.Sentence
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &s); err != nil {
				return err
			}
			doc.Sentences = append(doc.Sentences, s)
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}

	doc.SetIds()
	return doc, nil
}

func (h *DocStore) Write(ctx context.Context, doc sent.Doc) (docID int, err error) {
	conn, err := h.pool.Take(ctx)
	if err != nil {
		return 0, err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	labels := strings.Join(doc.Labels, ",")
	err = sqlitex.Execute(conn, "INSERT INTO docs (title, labels) VALUES (?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Title, labels},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert doc: %w", err)
	}
	docID = int(conn.LastInsertRowID())

	for i, s := range doc.Sentences {
		s.Id = i
		s.DocId = docID
		data, marshalErr := json.Marshal(s)
		if marshalErr != nil {
			return 0, marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_id, sent_id, data) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{docID, i, string(data)},
		})
		if err != nil {
			return 0, fmt.Errorf("failed to insert sentence: %w", err)
		}
	}

	return docID, nil
}

// WriteChunks replaces the stored chunkings of the given sentences of a doc.
func (h *DocStore) WriteChunks(ctx context.Context, docId int, chunks []storage.Chunking) (err error) {
	conn, err := h.pool.Take(ctx)
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	for _, c := range chunks {
		err = sqlitex.Execute(conn, "INSERT OR REPLACE INTO bunsetu (doc_id, sent_id, heads, bi) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{docId, c.SentenceId, joinInts(c.Heads), c.BI},
		})
		if err != nil {
			return fmt.Errorf("failed to insert bunsetu of sentence %d: %w", c.SentenceId, err)
		}
	}

	return nil
}

func (h *DocStore) Chunks(ctx context.Context, docId int) ([]storage.Chunking, error) {
	conn, err := h.pool.Take(ctx)
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var chunks []storage.Chunking
	err = sqlitex.Execute(conn, "SELECT sent_id, heads, bi FROM bunsetu WHERE doc_id = ? ORDER BY sent_id", &sqlitex.ExecOptions{
		Args: []interface{}{docId},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			heads, err := splitInts(stmt.ColumnText(1))
			if err != nil {
				return err
			}

			chunks = append(chunks, storage.Chunking{
				SentenceId: stmt.ColumnInt(0),
				Heads:      heads,
				BI:         stmt.ColumnText(2),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return chunks, nil
}

func joinInts(ints []int) string {
	strs := make([]string, len(ints))
	for i, n := range ints {
		strs[i] = strconv.Itoa(n)
	}

	return strings.Join(strs, ",")
}

func splitInts(str string) ([]int, error) {
	if str == "" {
		return []int{}, nil
	}

	parts := strings.Split(str, ",")
	ints := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid head list %q: %w", str, err)
		}
		ints[i] = n
	}

	return ints, nil
}
