package libcc

import (
	"context"
	"fmt"
	"io"

	"github.com/ZebulonRouseFrantzich/libcc/internal/platform"
	"github.com/m-mizutani/goerr/v2"
)

// URL builds the download URL of a package.
// Pattern: {base}/{platform key}/{arch}/{commit}/{filename}
func URL(base string, key platform.Key, arch, commit string, pkg Package) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s", base, key, arch, commit, pkg.Filename())
}

// Reporter resolves and prints the download URLs for the host platform.
type Reporter struct {
	source   Source
	detector platform.Detector
}

// NewReporter creates a reporter.
func NewReporter(source Source, detector platform.Detector) *Reporter {
	return &Reporter{source: source, detector: detector}
}

// Resolve computes the URL of every package. It fails without partial
// results if the platform has no key or the architecture cannot be resolved.
func (r *Reporter) Resolve(ctx context.Context) (*URLs, error) {
	if r.source == nil {
		return nil, fmt.Errorf("config source is required")
	}
	if r.detector == nil {
		return nil, fmt.Errorf("platform detector is required")
	}

	info, err := r.detector.Detect(ctx)
	if err != nil {
		return nil, fmt.Errorf("detect platform: %w", err)
	}

	key, err := info.Key()
	if err != nil {
		return nil, goerr.Wrap(err, "resolve platform key", goerr.V("os", info.OS))
	}

	arch, err := r.source.TargetArch(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve target arch: %w", err)
	}

	base, commit := r.source.BaseURL(), r.source.Commit()
	return &URLs{
		Shared: URL(base, key, arch, commit, PackageShared),
		Static: URL(base, key, arch, commit, PackageStatic),
	}, nil
}

// Report writes the shared URL, a blank line, then the static URL.
// Nothing is written unless every URL resolved.
func (r *Reporter) Report(ctx context.Context, w io.Writer) error {
	urls, err := r.Resolve(ctx)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "shared library url is: %s\n\nstatic library url is: %s\n", urls.Shared, urls.Static); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
