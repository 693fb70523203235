package main

import (
	"errors"
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/revelaction/bunsetu/bunsetu"
	sent "github.com/revelaction/bunsetu/sentence"
	"github.com/revelaction/bunsetu/storage"
	"github.com/revelaction/bunsetu/storage/filesystem"
	"github.com/revelaction/bunsetu/storage/sqlite/zombiezen"
)

func importDocCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "chunk a directory of JSON docs and store docs and chunks in a SQLite file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "source docs directory", Required: true},
			&cli.StringFlag{Name: "to", Usage: "destination SQLite file", Required: true},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "number of docs chunked in parallel (default workers of the configuration)",
			},
		},
		Action: func(c *cli.Context) error {
			from, to := c.String("from"), c.String("to")

			workers := e.cfg.Workers
			if c.IsSet("workers") {
				workers = c.Int("workers")
			}
			if workers < 1 {
				return errors.New("workers must be at least 1")
			}

			src, err := filesystem.NewDocStore(from)
			if err != nil {
				return err
			}
			err = src.LoadAll(func(total int, name string) {
				e.log.Debug("loading", zap.String("doc", name), zap.Int("total", total))
			})
			if err != nil {
				return err
			}

			docs, err := src.List(c.Context)
			if err != nil {
				return err
			}
			for i := range docs {
				if docs[i], err = src.Read(c.Context, docs[i].Id); err != nil {
					return fmt.Errorf("failed to read doc %s: %w", docs[i].Title, err)
				}
			}

			fmt.Fprintf(e.ui.Out, "Chunking %d docs from %s...\n", len(docs), from)
			results, err := recognizeDocs(c.Context, docs, e.recognizer(), workers, e.log, func(doc *sent.Doc) {
				e.log.Debug("chunked", zap.String("doc", doc.Title), zap.Int("sentences", len(doc.Sentences)))
			})
			if err != nil {
				return err
			}

			pool, err := e.pool.Open(to)
			if err != nil {
				return err
			}
			if err := zombiezen.CreateSchemas(c.Context, pool); err != nil {
				return fmt.Errorf("failed to create tables: %w", err)
			}
			dst := zombiezen.NewDocStore(pool)

			progress := uiprogress.New()
			progress.SetOut(e.ui.Err)
			progress.Start()
			bar := progress.AddBar(len(docs))
			bar.AppendCompleted()
			bar.PrependElapsed()

			count := 0
			for i, doc := range docs {
				docId, err := dst.Write(c.Context, doc)
				if err != nil {
					progress.Stop()
					return fmt.Errorf("failed to write doc %s: %w", doc.Title, err)
				}

				if err := dst.WriteChunks(c.Context, docId, chunkings(doc, results[i])); err != nil {
					progress.Stop()
					return fmt.Errorf("failed to write chunks of doc %s: %w", doc.Title, err)
				}

				e.log.Debug("imported", zap.String("doc", doc.Title), zap.Int("id", docId))
				count++
				bar.Incr()
			}
			progress.Stop()

			fmt.Fprintf(e.ui.Out, "Successfully imported %d docs from %s to %s\n", count, from, to)
			return nil
		},
	}
}

// chunkings converts the results of a doc into storage records, skipping
// malformed sentences.
func chunkings(doc sent.Doc, results []*bunsetu.Result) []storage.Chunking {
	out := make([]storage.Chunking, 0, len(results))
	for j, res := range results {
		if res == nil {
			continue
		}
		out = append(out, storage.Chunking{
			SentenceId: doc.Sentences[j].Id,
			Heads:      res.Heads,
			BI:         bunsetu.LabelString(res.BI),
		})
	}

	return out
}
