package cli

import (
	"context"
	"log/slog"

	"github.com/ZebulonRouseFrantzich/libcc/internal/config"
	"github.com/ZebulonRouseFrantzich/libcc/internal/platform"
	"github.com/urfave/cli/v3"
)

// Config holds the config file flag.
type Config struct {
	Path string
}

// Flags returns CLI flags for config file selection
func (c *Config) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Config file (.lua or .toml); defaults to ./libcc.lua or ./libcc.toml",
			Destination: &c.Path,
			Sources:     cli.EnvVars("LIBCC_CONFIG"),
		},
	}
}

// Provider detects the host platform, loads settings and returns a provider
// together with the detected platform.
func (c *Config) Provider(ctx context.Context, detector platform.Detector, logger *slog.Logger) (*config.Provider, *platform.Info, error) {
	if logger == nil {
		logger = slog.Default()
	}

	info, err := detector.Detect(ctx)
	if err != nil {
		return nil, nil, err
	}

	// The detector is pinned so the Lua platform table and the URL agree
	settings, err := config.NewLoader(platform.StaticDetector{Info: info}).
		WithLogger(logger).
		Load(ctx, c.Path)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("resolved settings",
		slog.String("base_url", settings.BaseURL),
		slog.String("commit", settings.Commit),
		slog.String("vendor_dir", settings.VendorDir),
		slog.String("platform", info.Identifier),
	)

	return config.NewProvider(settings, info), info, nil
}
