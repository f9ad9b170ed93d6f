// Package testutil provides utilities for testing the libcc tools in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// isolatedEnv lists every variable the tools read. Each is cleared for the
// duration of a test.
var isolatedEnv = []string{
	"LIBCC_CONFIG",
	"LIBCC_LOG_LEVEL",
	"LIBCC_LOG_JSON",
	"LIBCHROMIUMCONTENT_MIRROR",
	"LIBCHROMIUMCONTENT_COMMIT",
	"TARGET_ARCH",
}

// SetupTestEnv isolates a test from the developer's environment: every
// variable the tools read is cleared and the working directory moves to a
// fresh temp directory, so no libcc.lua or libcc.toml from the checkout is
// picked up. It returns the new working directory.
//
// Cleanup is handled by the testing framework.
func SetupTestEnv(t *testing.T) string {
	t.Helper()

	for _, key := range isolatedEnv {
		// Setenv registers the restore; the variable is then removed so
		// lookups see it as unset rather than empty
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}

	dir := t.TempDir()
	// Equivalent of t.Chdir (Go 1.24+) for older toolchains
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWd); err != nil {
			t.Errorf("restore working directory %s: %v", oldWd, err)
		}
	})

	// Resolve symlinks (macOS /var -> /private/var) so callers can compare paths
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("resolve test directory %s: %v", dir, err)
	}
	return resolved
}
