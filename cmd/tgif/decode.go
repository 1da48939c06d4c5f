package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/mrjoshuak/go-tgif/tgif"
)

func decodeCmd() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode a TGIF file to PNG",
		ArgsUsage: "<input.tgif> <output.png>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "workers", Value: 0, Usage: "worker goroutines (0 = all CPUs)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return cli.Exit("usage: tgif decode [flags] <input.tgif> <output.png>", 1)
			}
			log := newLogger(cmd)

			workers := int(cmd.Int("workers"))
			if workers < 0 {
				return cli.Exit(fmt.Sprintf("error: worker count must not be negative, got %d", workers), 1)
			}

			inPath := cmd.Args().Get(0)
			outPath := cmd.Args().Get(1)

			data, err := os.ReadFile(inPath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			start := time.Now()
			opts := tgif.Options{Workers: workers}
			img, err := tgif.DecodeWithOptions(data, &opts)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: decode %s: %v", inPath, err), 1)
			}

			if err := writePNG(outPath, img); err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			log.Info("decoded",
				"output", outPath,
				"width", img.Width,
				"height", img.Height,
				"elapsed", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}
