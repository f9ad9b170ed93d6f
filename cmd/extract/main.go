// Command extract unpacks a zip archive into a directory.
//
//	extract -s ARCHIVE -o DIR
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	libcli "github.com/ZebulonRouseFrantzich/libcc/internal/cli"
	"github.com/ZebulonRouseFrantzich/libcc/internal/libcc"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := run(context.Background(), os.Args, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes the command and prints any error to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var (
		loggerCfg libcli.Logger
		logger    *slog.Logger
		src       string
		output    string
		chdir     string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "src",
			Aliases:     []string{"s"},
			Usage:       "Path of the zip archive",
			Required:    true,
			Destination: &src,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Directory to extract into",
			Required:    true,
			Destination: &output,
		},
		&cli.StringFlag{
			Name:        "chdir",
			Aliases:     []string{"C"},
			Usage:       "Resolve relative paths against `DIR`",
			Destination: &chdir,
		},
	}

	cmd := &cli.Command{
		Name:      "extract",
		Usage:     "Extract a zip archive into a directory",
		UsageText: "extract -s ARCHIVE -o DIR",
		Version:   libcli.Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     append(flags, loggerCfg.Flags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure(stderr)
			if err != nil {
				return nil, err
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 0 {
				return goerr.New("unexpected arguments", goerr.V("args", c.Args().Slice()))
			}

			result, err := libcc.NewExtractor(logger).Extract(ctx, resolve(chdir, src), resolve(chdir, output))
			if err != nil {
				return goerr.Wrap(err, "extract failed", goerr.V("src", src))
			}

			logger.Info("extracted archive",
				slog.String("dest", result.Dest),
				slog.Int("files", result.Files),
			)
			fmt.Fprintf(stdout, "extract complete: %s\n", src)
			return nil
		},
	}

	if err := cmd.Run(ctx, args); err != nil {
		libcli.PrintError(stderr, err, loggerCfg.Verbose())
		return err
	}
	return nil
}

// resolve joins a relative path onto dir. An empty dir leaves path as is.
func resolve(dir, path string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
