// Command show-url prints the libchromiumcontent download URLs for the
// host platform.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	libcli "github.com/ZebulonRouseFrantzich/libcc/internal/cli"
	"github.com/ZebulonRouseFrantzich/libcc/internal/libcc"
	"github.com/ZebulonRouseFrantzich/libcc/internal/platform"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := run(context.Background(), os.Args, os.Stdout, os.Stderr, platform.NewDetector()); err != nil {
		os.Exit(1)
	}
}

// run executes the command and prints any error to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, detector platform.Detector) error {
	var (
		loggerCfg libcli.Logger
		configCfg libcli.Config
		logger    *slog.Logger
	)

	cmd := &cli.Command{
		Name:      "show-url",
		Usage:     "Print the libchromiumcontent download URLs for this platform",
		UsageText: "show-url [--config FILE]",
		Version:   libcli.Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     append(configCfg.Flags(), loggerCfg.Flags()...),
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

			provider, info, err := configCfg.Provider(ctx, detector, logger)
			if err != nil {
				return err
			}

			return libcc.NewReporter(provider, platform.StaticDetector{Info: info}).Report(ctx, stdout)
		},
	}

	if err := cmd.Run(ctx, args); err != nil {
		libcli.PrintError(stderr, err, loggerCfg.Verbose())
		return err
	}
	return nil
}
