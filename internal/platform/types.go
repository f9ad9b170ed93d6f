// Package platform resolves the host operating system to the platform key
// used in libchromiumcontent download paths.
//
// Detection reports an OS identifier in the vocabulary the download layout
// was designed around ("win32", "cygwin", "darwin", "linux2"). That
// identifier is mapped to a key through a closed lookup table; anything
// outside the table is an explicit error rather than a silent fallback.
// The detected information is also exposed to Lua configuration files as a
// read-only `platform` global.
package platform

import "context"

// Key identifies an operating-system family in a download URL.
type Key string

// Platform keys. These are the only values LookupKey returns.
const (
	KeyWindows Key = "win"
	KeyMacOS   Key = "osx"
	KeyLinux   Key = "linux"
)

// String returns the path segment for the key.
func (k Key) String() string {
	return string(k)
}

// OS identifiers recognized by the lookup table.
const (
	IdentifierCygwin = "cygwin"
	IdentifierWin32  = "win32"
	IdentifierDarwin = "darwin"
	IdentifierLinux2 = "linux2"
)

// Info contains platform detection information.
type Info struct {
	OS         string // GOOS of the host: "linux", "darwin", "windows"
	Identifier string // lookup identifier: "win32", "cygwin", "darwin", "linux2"
	Arch       string // GOARCH of the host
}

// Key resolves the info's identifier to a platform key.
func (i *Info) Key() (Key, error) {
	return LookupKey(i.Identifier)
}

// IsWindows returns true for both native Windows and Cygwin identifiers.
func (i *Info) IsWindows() bool {
	return i.Identifier == IdentifierWin32 || i.Identifier == IdentifierCygwin
}

// IsMacOS returns true if the platform is macOS.
func (i *Info) IsMacOS() bool {
	return i.Identifier == IdentifierDarwin
}

// IsLinux returns true if the platform is Linux.
func (i *Info) IsLinux() bool {
	return i.Identifier == IdentifierLinux2
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}
