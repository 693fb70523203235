package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/revelaction/bunsetu/storage"
	"github.com/revelaction/bunsetu/storage/filesystem"
	"github.com/revelaction/bunsetu/storage/sqlite/zombiezen"
)

var errNoDocPath = errors.New("no doc path: use --doc-path, doc_path in the configuration or BUNSETU_DOC_PATH")

// docRepository opens the repository named by --doc-path or the
// configuration: a directory of JSON docs, or a SQLite file written by
// import, which also serves the stored chunkings.
func (e *env) docRepository(c *cli.Context) (storage.DocReader, error) {
	path := e.docPath(c)
	if path == "" {
		return nil, errNoDocPath
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("doc repository: %w", err)
	}

	if info.IsDir() {
		e.log.Debug("reading JSON docs", zap.String("dir", path))
		return filesystem.NewDocStore(path)
	}

	pool, err := e.pool.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}
