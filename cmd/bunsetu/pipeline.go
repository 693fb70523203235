package main

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/revelaction/bunsetu/bunsetu"
	sent "github.com/revelaction/bunsetu/sentence"
	"github.com/revelaction/bunsetu/storage/filesystem"
)

// recognizeDocs chunks the sentences of docs with at most workers docs in
// flight. results[i][j] is nil when sentence j of doc i is malformed. done,
// if not nil, is called from the worker goroutines after each doc.
func recognizeDocs(ctx context.Context, docs []sent.Doc, rec *bunsetu.Recognizer, workers int, log *zap.Logger, done func(*sent.Doc)) ([][]*bunsetu.Result, error) {
	results := make([][]*bunsetu.Result, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range docs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = recognizeDoc(&docs[i], rec, log)
			if done != nil {
				done(&docs[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func recognizeDoc(doc *sent.Doc, rec *bunsetu.Recognizer, log *zap.Logger) []*bunsetu.Result {
	out := make([]*bunsetu.Result, len(doc.Sentences))
	for j := range doc.Sentences {
		res, err := rec.Recognize(&doc.Sentences[j])
		if err != nil {
			log.Warn("skipping sentence",
				zap.String("doc", doc.Title),
				zap.Int("sent", j),
				zap.Error(err))
			continue
		}
		out[j] = res
	}

	return out
}

func readDocs(paths []string) ([]sent.Doc, error) {
	docs := make([]sent.Doc, 0, len(paths))
	for i, p := range paths {
		doc, err := filesystem.ReadDoc(p)
		if err != nil {
			return nil, err
		}
		doc.Id = i
		doc.SetIds()
		docs = append(docs, doc)
	}

	return docs, nil
}
