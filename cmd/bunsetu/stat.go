package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/bunsetu/bunsetu"
	"github.com/revelaction/bunsetu/stat"
)

func statCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "print chunk statistics of JSON doc files",
		ArgsUsage: "FILE...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("stat requires at least one FILE")
			}

			docs, err := readDocs(c.Args().Slice())
			if err != nil {
				return err
			}

			results, err := recognizeDocs(c.Context, docs, e.recognizer(), e.cfg.Workers, e.log, nil)
			if err != nil {
				return err
			}

			hdl := stat.NewHandler()
			for _, docResults := range results {
				for _, res := range docResults {
					if res == nil {
						hdl.Skip()
						continue
					}
					hdl.Aggregate(res)
				}
			}

			printStats(e.ui, hdl.Get())
			return nil
		},
	}
}

func printStats(ui UI, stats stat.Stats) {
	fmt.Fprintf(ui.Out, "Num sentences %d, skipped %d, num tokens %d, num chunks %d\n",
		stats.NumSentences, stats.NumSkipped, stats.NumTokens, stats.NumChunks)
	fmt.Fprintf(ui.Out, "Tokens per sentence %.2f, tokens per chunk %.2f, chunks per sentence %.2f\n",
		stats.TokensPerSentenceMean, stats.TokensPerChunkMean, stats.ChunksPerSentenceMean)

	lens := make([]int, 0, len(stats.ChunkLenDis))
	for l := range stats.ChunkLenDis {
		lens = append(lens, l)
	}
	slices.Sort(lens)
	for _, l := range lens {
		fmt.Fprintf(ui.Out, "chunk length %3d: %d\n", l, stats.ChunkLenDis[l])
	}

	types := make([]bunsetu.PhraseType, 0, len(stats.PhraseTypes))
	for pt := range stats.PhraseTypes {
		types = append(types, pt)
	}
	slices.Sort(types)
	for _, pt := range types {
		name := string(pt)
		if pt == bunsetu.NoPhrase {
			name = "-"
		}
		fmt.Fprintf(ui.Out, "phrase %-6s: %d\n", name, stats.PhraseTypes[pt])
	}
}
