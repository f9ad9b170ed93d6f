// Command vendor-libcc installs downloaded libchromiumcontent archives into
// the vendor directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	libcli "github.com/ZebulonRouseFrantzich/libcc/internal/cli"
	"github.com/ZebulonRouseFrantzich/libcc/internal/platform"
	"github.com/ZebulonRouseFrantzich/libcc/internal/vendor"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// DefaultDownloadDir is where the archives are expected unless told otherwise.
const DefaultDownloadDir = "download"

func main() {
	if err := run(context.Background(), os.Args, os.Stdout, os.Stderr, platform.NewDetector()); err != nil {
		os.Exit(1)
	}
}

// run executes the command and prints any error to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, detector platform.Detector) error {
	var (
		loggerCfg   libcli.Logger
		configCfg   libcli.Config
		logger      *slog.Logger
		downloadDir string
		dest        string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "download-dir",
			Usage:       "Directory holding the downloaded archives",
			Value:       DefaultDownloadDir,
			Destination: &downloadDir,
		},
		&cli.StringFlag{
			Name:        "dest",
			Usage:       "Vendor directory (default: vendor_dir from the config)",
			Destination: &dest,
		},
	}
	flags = append(flags, configCfg.Flags()...)
	flags = append(flags, loggerCfg.Flags()...)

	cmd := &cli.Command{
		Name:      "vendor-libcc",
		Usage:     "Extract downloaded libchromiumcontent archives into the vendor directory",
		UsageText: "vendor-libcc [--download-dir DIR] [--dest DIR] [--config FILE]",
		Version:   libcli.Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     flags,
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

			if dest == "" {
				provider, _, err := configCfg.Provider(ctx, detector, logger)
				if err != nil {
					return err
				}
				dest = provider.VendorDir()
			}

			_, err := vendor.New(nil, logger).Run(ctx, vendor.Options{
				DownloadDir: downloadDir,
				Dest:        dest,
			})
			if errors.Is(err, vendor.ErrMissingArchive) {
				return goerr.Wrap(err, "download libchromiumcontent into "+downloadDir+" first")
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(stdout, "vendored libchromiumcontent into %s\n", dest)
			return nil
		},
	}

	if err := cmd.Run(ctx, args); err != nil {
		libcli.PrintError(stderr, err, loggerCfg.Verbose())
		return err
	}
	return nil
}
