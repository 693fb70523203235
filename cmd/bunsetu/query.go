package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/bunsetu/query"
	"github.com/revelaction/bunsetu/render"
)

func queryCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "browse the chunks of a doc repository interactively",
		Flags: []cli.Flag{
			docPathFlag(),
		},
		Action: func(c *cli.Context) error {
			repo, err := e.docRepository(c)
			if err != nil {
				return err
			}

			r := render.NewRenderer()
			r.W = e.ui.Out
			r.Format = e.cfg.Format
			r.HasColor = true
			r.HasPrefix = true

			return query.NewHandler(repo, e.recognizer(), r).Run(c.Context)
		},
	}
}
