package main

import (
	"errors"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/revelaction/bunsetu/render"
)

func chunkCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "chunk",
		Usage:     "chunk the sentences of JSON doc files",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "text, conllu or json (default format of the configuration)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "do not color the chunk heads",
			},
			&cli.BoolFlag{
				Name:  "prefix",
				Usage: "prefix each sentence with its doc and sentence ids",
			},
			&cli.BoolFlag{
				Name:  "phrase",
				Usage: "append the phrase of each chunk head",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "number of docs chunked in parallel (default workers of the configuration)",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("chunk requires at least one FILE")
			}

			docs, err := readDocs(c.Args().Slice())
			if err != nil {
				return err
			}

			workers := e.cfg.Workers
			if c.IsSet("workers") {
				workers = c.Int("workers")
			}
			if workers < 1 {
				return errors.New("workers must be at least 1")
			}

			results, err := recognizeDocs(c.Context, docs, e.recognizer(), workers, e.log, nil)
			if err != nil {
				return err
			}

			r := render.NewRenderer()
			r.W = e.ui.Out
			r.Format = e.cfg.Format
			if c.IsSet("format") {
				r.Format = c.String("format")
			}
			r.HasColor = !c.Bool("no-color")
			r.HasPrefix = c.Bool("prefix")
			r.Phrase = c.Bool("phrase")

			for i, doc := range docs {
				r.AddDocName(doc.Id, doc.Title)
				for _, res := range results[i] {
					if res == nil {
						continue
					}
					if err := r.Render(res); err != nil {
						return err
					}
				}
			}

			e.log.Debug("chunked", zap.Int("docs", len(docs)))
			return nil
		},
	}
}
