package main

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/mrjoshuak/go-tgif/tgif"
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Show header and chunk directory of a TGIF file",
		ArgsUsage: "<input.tgif>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "machine-readable output"},
			&cli.BoolFlag{Name: "chunks", Usage: "list every chunk directory entry"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return cli.Exit("usage: tgif inspect [flags] <input.tgif>", 1)
			}

			data, err := os.ReadFile(cmd.Args().Get(0))
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			info, err := tgif.Inspect(data)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			if cmd.Bool("json") {
				out, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				fmt.Println(string(out))
				return nil
			}

			fmt.Printf("dimensions:     %dx%d\n", info.Width, info.Height)
			fmt.Printf("remainder bits: %d\n", info.RemainderBits)
			fmt.Printf("rows per chunk: %d\n", info.RowsPerChunk)
			fmt.Printf("chunks:         %d\n", info.ChunkCount)
			fmt.Printf("payload bytes:  %d\n", info.PayloadBytes)
			fmt.Printf("file bytes:     %d (%.4f of raw)\n", info.FileBytes, info.Ratio())

			if cmd.Bool("chunks") {
				for i, c := range info.Chunks {
					fmt.Printf("  chunk %4d: rows [%d, %d) at offset %d, %d bytes\n",
						i, c.RowStart, c.RowEnd, c.Offset, c.Length)
				}
			}
			return nil
		},
	}
}
