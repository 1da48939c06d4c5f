// tgif encodes and decodes TGIF files, a lossless compression format for
// grayscale images with parallel chunk decoding.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mrjoshuak/go-tgif/internal/logger"
)

func main() {
	app := &cli.Command{
		Name:  "tgif",
		Usage: "Lossless grayscale image codec with parallel chunk decoding",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug logging"},
			&cli.StringFlag{Name: "config", Usage: "path to a YAML config file (default: user config dir)"},
		},
		Commands: []*cli.Command{
			encodeCmd(),
			decodeCmd(),
			inspectCmd(),
			compareCmd(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the command logger, honoring the global --verbose flag.
func newLogger(cmd *cli.Command) logger.Logger {
	level := slog.LevelInfo
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	return logger.Default(level)
}
