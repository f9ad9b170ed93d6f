package platform

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using actual platform detection.
type RealDetector struct {
	// getenv is swapped out in tests.
	getenv func(string) string
}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{getenv: os.Getenv}
}

// Detect performs platform detection and returns platform information.
// The OS comes from gopsutil host info, falling back to runtime.GOOS when
// host info cannot be read. A Windows host running under a Cygwin shell
// (OSTYPE=cygwin) is reported with the cygwin identifier.
//
// Detect does not fail for unrecognized operating systems; the identifier is
// passed through and the failure surfaces when the key is looked up.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	goos := runtime.GOOS

	hostInfo, err := host.InfoWithContext(ctx)
	if err != nil {
		// Cancellation is a hard failure, anything else falls back to runtime
		if ctx.Err() != nil {
			return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
		}
	} else if hostInfo.OS != "" {
		goos = hostInfo.OS
	}

	return d.infoFor(goos, runtime.GOARCH), nil
}

func (d *RealDetector) infoFor(goos, goarch string) *Info {
	info := &Info{
		OS:         goos,
		Identifier: IdentifierFor(goos),
		Arch:       goarch,
	}

	getenv := d.getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if goos == "windows" && strings.HasPrefix(strings.ToLower(getenv("OSTYPE")), "cygwin") {
		info.Identifier = IdentifierCygwin
	}

	return info
}

// StaticDetector returns a fixed Info. It is used when the identifier is
// supplied from outside the process, and by tests.
type StaticDetector struct {
	Info *Info
	Err  error
}

// Detect returns the configured info and error.
func (s StaticDetector) Detect(ctx context.Context) (*Info, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Info, nil
}
