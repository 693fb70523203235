package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/bunsetu/query"
	"github.com/revelaction/bunsetu/render"
)

func sentenceCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "sentence",
		Usage:     "show the token table and chunks of a sentence of a doc repository",
		ArgsUsage: "DOC SENT",
		Flags: []cli.Flag{
			docPathFlag(),
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "do not color the chunk heads",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("sentence requires DOC and SENT")
			}

			docId, err := strconv.Atoi(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("invalid doc id %q", c.Args().Get(0))
			}
			sentId, err := strconv.Atoi(c.Args().Get(1))
			if err != nil {
				return fmt.Errorf("invalid sentence id %q", c.Args().Get(1))
			}

			repo, err := e.docRepository(c)
			if err != nil {
				return err
			}

			results, err := query.DocResults(c.Context, repo, e.recognizer(), docId)
			if err != nil {
				return err
			}

			if sentId < 0 || sentId >= len(results) {
				return fmt.Errorf("sentence index %d out of bounds (doc has %d sentences)", sentId, len(results))
			}

			res := results[sentId]
			if res == nil {
				return fmt.Errorf("sentence %d of doc %d has a malformed tree", sentId, docId)
			}

			r := render.NewRenderer()
			r.W = e.ui.Out
			r.HasColor = !c.Bool("no-color")

			fmt.Fprintln(e.ui.Out, r.ChunkString(res))
			r.Table(res)
			return nil
		},
	}
}
