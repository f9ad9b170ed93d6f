package platform

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

// ErrUnknownPlatform is returned when an OS identifier has no platform key.
var ErrUnknownPlatform = errors.New("unknown platform identifier")

// keyTable is the closed set of identifiers that have a download key.
var keyTable = map[string]Key{
	IdentifierCygwin: KeyWindows,
	IdentifierWin32:  KeyWindows,
	IdentifierDarwin: KeyMacOS,
	IdentifierLinux2: KeyLinux,
}

// goosIdentifiers maps Go GOOS values onto the lookup vocabulary.
var goosIdentifiers = map[string]string{
	"windows": IdentifierWin32,
	"darwin":  IdentifierDarwin,
	"linux":   IdentifierLinux2,
}

// LookupKey returns the platform key for an OS identifier.
// Matching is exact; there is no case folding or prefix matching.
func LookupKey(identifier string) (Key, error) {
	key, ok := keyTable[identifier]
	if !ok {
		return "", goerr.Wrap(ErrUnknownPlatform, "no platform key for identifier",
			goerr.V("identifier", identifier))
	}
	return key, nil
}

// IdentifierFor converts a GOOS value into a lookup identifier.
// Unmapped values are returned unchanged so that LookupKey rejects them.
func IdentifierFor(goos string) string {
	if id, ok := goosIdentifiers[goos]; ok {
		return id
	}
	return goos
}

// Identifiers returns every identifier the lookup table accepts.
func Identifiers() []string {
	return []string{IdentifierCygwin, IdentifierWin32, IdentifierDarwin, IdentifierLinux2}
}
