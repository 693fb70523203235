package main

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/revelaction/bunsetu/bunsetu"
	"github.com/revelaction/bunsetu/config"
)

// env is the state shared by the subcommands, built before any of them
// runs.
type env struct {
	ui   UI
	cfg  *config.Config
	log  *zap.Logger
	pool Pool
}

func (e *env) recognizer() *bunsetu.Recognizer {
	return bunsetu.NewRecognizer(e.cfg.Bunsetu())
}

func newApp(ui UI) *cli.App {
	e := &env{ui: ui}

	return &cli.App{
		Name:      "bunsetu",
		Usage:     "split dependency parsed sentences into bunsetu chunks",
		Version:   BuildTag,
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				EnvVars: []string{"BUNSETU_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error (overrides the configuration)",
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			if c.IsSet("log-level") {
				cfg.LogLevel = c.String("log-level")
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			logger, err := newLogger(cfg.LogLevel, ui.Err)
			if err != nil {
				return err
			}

			e.cfg = cfg
			e.log = logger
			return nil
		},
		After: func(c *cli.Context) error {
			if e.log != nil {
				_ = e.log.Sync()
			}
			return e.pool.Close()
		},
		Commands: []*cli.Command{
			chunkCommand(e),
			sentenceCommand(e),
			importDocCommand(e),
			statCommand(e),
			queryCommand(e),
			versionCommand(e),
		},
	}
}

// docPathFlag is shared by the commands reading a doc repository.
func docPathFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "doc-path",
		Aliases: []string{"d"},
		Usage:   "path to a docs directory or SQLite file (default doc_path of the configuration)",
	}
}

func (e *env) docPath(c *cli.Context) string {
	if c.IsSet("doc-path") {
		return c.String("doc-path")
	}

	return e.cfg.DocPath
}
