package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/mrjoshuak/go-tgif/tgif"
)

func encodeCmd() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "Encode an image to TGIF",
		ArgsUsage: "<input-image> <output.tgif>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "remainder-bits", Aliases: []string{"r"}, Value: tgif.DefaultRemainderBits,
				Usage: "Rice remainder bits (0-7)"},
			&cli.IntFlag{Name: "chunk-size", Value: tgif.DefaultChunkSize,
				Usage: "target raw pixel bytes per chunk"},
			&cli.IntFlag{Name: "workers", Value: 0,
				Usage: "worker goroutines (0 = all CPUs)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				return cli.Exit("usage: tgif encode [flags] <input-image> <output.tgif>", 1)
			}
			log := newLogger(cmd)

			opts := codecOptions(cmd)
			if err := checkOptions(opts); err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			inPath := cmd.Args().Get(0)
			outPath := cmd.Args().Get(1)

			img, err := loadImage(inPath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			log.Debug("loaded image", "path", inPath, "width", img.Width, "height", img.Height)

			start := time.Now()
			data, err := tgif.Encode(img, &opts)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: encode: %v", err), 1)
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			log.Info("encoded",
				"output", outPath,
				"ratio", fmt.Sprintf("%.4f", float64(len(data))/float64(len(img.Pix))),
				"elapsed", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}

// codecOptions merges flags with config-file defaults; explicit flags win.
func codecOptions(cmd *cli.Command) tgif.Options {
	opts := tgif.DefaultOptions()
	opts.RemainderBits = int(cmd.Int("remainder-bits"))
	opts.ChunkSize = int(cmd.Int("chunk-size"))
	opts.Workers = int(cmd.Int("workers"))
	loadConfig(cmd).apply(cmd, &opts)
	return opts
}

// checkOptions rejects malformed flag values before they reach the codec.
func checkOptions(opts tgif.Options) error {
	if opts.RemainderBits < 0 || opts.RemainderBits > tgif.MaxRemainderBits {
		return fmt.Errorf("remainder bits must be between 0 and %d, got %d", tgif.MaxRemainderBits, opts.RemainderBits)
	}
	if opts.ChunkSize < 1 {
		return fmt.Errorf("chunk size must be positive, got %d", opts.ChunkSize)
	}
	if opts.Workers < 0 {
		return fmt.Errorf("worker count must not be negative, got %d", opts.Workers)
	}
	return nil
}
