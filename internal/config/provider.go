package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZebulonRouseFrantzich/libcc/internal/platform"
)

// Architecture defaults when nothing else is configured.
const (
	ArchIA32 = "ia32"
	ArchX64  = "x64"
)

// Provider exposes Settings to the tools: base URL, commit identifier and
// target architecture.
type Provider struct {
	settings Settings
	info     *platform.Info
	readFile func(string) ([]byte, error)
}

// NewProvider creates a provider for the given settings and host platform.
func NewProvider(settings *Settings, info *platform.Info) *Provider {
	return &Provider{
		settings: *settings,
		info:     info,
		readFile: os.ReadFile,
	}
}

// BaseURL returns the download base URL.
func (p *Provider) BaseURL() string {
	return p.settings.BaseURL
}

// Commit returns the libchromiumcontent commit identifier.
func (p *Provider) Commit() string {
	return p.settings.Commit
}

// VendorDir returns the directory libchromiumcontent is vendored into.
func (p *Provider) VendorDir() string {
	return p.settings.VendorDir
}

// TargetArch returns the configured architecture, else the one recorded in
// the vendor directory, else the platform default.
func (p *Provider) TargetArch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if p.settings.TargetArch != "" {
		return p.settings.TargetArch, nil
	}

	path := filepath.Join(p.settings.VendorDir, TargetArchFile)
	data, err := p.readFile(path)
	switch {
	case err == nil:
		if arch := strings.TrimSpace(string(data)); arch != "" {
			if err := validateSegment(arch); err != nil {
				return "", fmt.Errorf("%s: %w", path, err)
			}
			return arch, nil
		}
	case !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("read target arch: %w", err)
	}

	if p.info == nil {
		return "", fmt.Errorf("platform info is required")
	}
	if p.info.IsWindows() {
		return ArchIA32, nil
	}
	return ArchX64, nil
}
