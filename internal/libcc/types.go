package libcc

import "context"

// Package is a packaging form of the prebuilt libchromiumcontent.
type Package string

const (
	// PackageShared is the shared library build
	PackageShared Package = "shared"
	// PackageStatic is the static library build
	PackageStatic Package = "static"
)

// Archive filenames
const (
	SharedLibraryFilename = "libchromiumcontent.zip"
	StaticLibraryFilename = "libchromiumcontent-static.zip"
)

// Packages lists every package in report order.
var Packages = []Package{PackageShared, PackageStatic}

// String returns the string representation of the package
func (p Package) String() string {
	return string(p)
}

// Filename returns the archive filename for the package.
func (p Package) Filename() string {
	switch p {
	case PackageStatic:
		return StaticLibraryFilename
	default:
		return SharedLibraryFilename
	}
}

// Source supplies the configuration a download URL is built from.
type Source interface {
	BaseURL() string
	Commit() string
	TargetArch(ctx context.Context) (string, error)
}

// URLs holds the download URL for each package.
type URLs struct {
	Shared string
	Static string
}

// ExtractResult summarizes a completed extraction.
type ExtractResult struct {
	Source   string
	Dest     string
	Files    int
	Dirs     int
	Symlinks int
	Bytes    uint64
}
