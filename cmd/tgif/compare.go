package main

import (
	"bytes"
	"context"
	"fmt"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/urfave/cli/v3"

	"github.com/mrjoshuak/go-tgif/tgif"
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare TGIF against zstd and flate on the same pixels",
		ArgsUsage: "<input-image>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "remainder-bits", Aliases: []string{"r"}, Value: tgif.DefaultRemainderBits,
				Usage: "Rice remainder bits (0-7)"},
			&cli.IntFlag{Name: "chunk-size", Value: tgif.DefaultChunkSize,
				Usage: "target raw pixel bytes per chunk"},
			&cli.IntFlag{Name: "workers", Value: 0,
				Usage: "worker goroutines (0 = all CPUs)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return cli.Exit("usage: tgif compare [flags] <input-image>", 1)
			}

			opts := codecOptions(cmd)
			if err := checkOptions(opts); err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			img, err := loadImage(cmd.Args().Get(0))
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			tgifData, err := tgif.Encode(img, &opts)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: encode: %v", err), 1)
			}
			zstdLen, err := zstdSize(img.Pix)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: zstd: %v", err), 1)
			}
			flateLen, err := flateSize(img.Pix)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: flate: %v", err), 1)
			}

			raw := len(img.Pix)
			fmt.Printf("raw:   %10d bytes\n", raw)
			fmt.Printf("tgif:  %10d bytes (%.4f, k=%d)\n", len(tgifData), ratio(len(tgifData), raw), opts.RemainderBits)
			fmt.Printf("zstd:  %10d bytes (%.4f)\n", zstdLen, ratio(zstdLen, raw))
			fmt.Printf("flate: %10d bytes (%.4f)\n", flateLen, ratio(flateLen, raw))
			return nil
		},
	}
}

func ratio(compressed, raw int) float64 {
	return float64(compressed) / float64(raw)
}

func zstdSize(raw []byte) (int, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return 0, err
	}
	defer enc.Close()
	return len(enc.EncodeAll(raw, nil)), nil
}

func flateSize(raw []byte) (int, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(raw); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}
