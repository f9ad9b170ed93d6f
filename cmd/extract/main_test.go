package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZebulonRouseFrantzich/libcc/internal/libcc"
	"github.com/ZebulonRouseFrantzich/libcc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := testutil.SetupTestEnv(t)
	testutil.WriteZip(t, filepath.Join(dir, "libcc.zip"), []testutil.ZipEntry{
		{Name: "include/"},
		{Name: "include/content.h", Body: "header"},
	})

	tests := []struct {
		name string
		args []string
	}{
		{"short flags", []string{"extract", "-s", "libcc.zip", "-o", "out-short"}},
		{"long flags", []string{"extract", "--src", "libcc.zip", "--output", "out-long"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), tt.args, &stdout, &stderr)
			require.NoError(t, err, stderr.String())

			assert.Equal(t, "extract complete: libcc.zip\n", stdout.String())
			assert.FileExists(t, filepath.Join(dir, tt.args[4], "include", "content.h"))
		})
	}
}

func TestRun_Chdir(t *testing.T) {
	dir := testutil.SetupTestEnv(t)
	root := filepath.Join(dir, "root")
	testutil.WriteZip(t, filepath.Join(root, "a.zip"), []testutil.ZipEntry{{Name: "f.txt", Body: "x"}})

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"extract", "-C", root, "-s", "a.zip", "-o", "out"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	assert.FileExists(t, filepath.Join(root, "out", "f.txt"))
	assert.NoDirExists(t, filepath.Join(dir, "out"))
}

func TestRun_MissingFlags(t *testing.T) {
	dir := testutil.SetupTestEnv(t)
	testutil.WriteZip(t, filepath.Join(dir, "a.zip"), []testutil.ZipEntry{{Name: "f.txt", Body: "x"}})

	tests := []struct {
		name string
		args []string
	}{
		{"no flags", []string{"extract"}},
		{"missing output", []string{"extract", "-s", "a.zip"}},
		{"missing src", []string{"extract", "-o", "out"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), tt.args, &stdout, &stderr)
			require.Error(t, err)

			assert.NotContains(t, stdout.String(), "extract complete")
			assert.Contains(t, stderr.String(), "Error:")
			assert.NoDirExists(t, filepath.Join(dir, "out"))
		})
	}
}

func TestRun_UnexpectedArguments(t *testing.T) {
	dir := testutil.SetupTestEnv(t)
	testutil.WriteZip(t, filepath.Join(dir, "a.zip"), []testutil.ZipEntry{{Name: "f.txt", Body: "x"}})

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"extract", "-s", "a.zip", "-o", "out", "extra"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Empty(t, stdout.String())
	assert.NoDirExists(t, filepath.Join(dir, "out"))
}

func TestRun_ExtractErrors(t *testing.T) {
	dir := testutil.SetupTestEnv(t)
	testutil.WriteZip(t, filepath.Join(dir, "evil.zip"), []testutil.ZipEntry{{Name: "../evil.txt", Body: "x"}})

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"extract", "-s", "evil.zip", "-o", "out"}, &stdout, &stderr)
	require.Error(t, err)
	assert.ErrorIs(t, err, libcc.ErrIllegalPath)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Error: ")

	_, statErr := os.Stat(filepath.Join(dir, "evil.txt"))
	assert.True(t, os.IsNotExist(statErr))

	stdout.Reset()
	err = run(context.Background(), []string{"extract", "-s", "missing.zip", "-o", "out2"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Empty(t, stdout.String())
}

func TestRun_InvalidLogLevel(t *testing.T) {
	dir := testutil.SetupTestEnv(t)
	testutil.WriteZip(t, filepath.Join(dir, "a.zip"), []testutil.ZipEntry{{Name: "f.txt", Body: "x"}})

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"extract", "--log-level", "loud", "-s", "a.zip", "-o", "out"}, &stdout, &stderr)
	require.Error(t, err)
	assert.NoDirExists(t, filepath.Join(dir, "out"))
}

func TestRun_DebugLogsToStderr(t *testing.T) {
	dir := testutil.SetupTestEnv(t)
	testutil.WriteZip(t, filepath.Join(dir, "a.zip"), []testutil.ZipEntry{{Name: "f.txt", Body: "x"}})

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"extract", "--log-level", "debug", "-s", "a.zip", "-o", "out"}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "extract complete: a.zip\n", stdout.String())
	assert.Contains(t, stderr.String(), "extracted archive")
}

func TestResolve(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "a.zip")

	assert.Equal(t, "a.zip", resolve("", "a.zip"))
	assert.Equal(t, filepath.Join("root", "a.zip"), resolve("root", "a.zip"))
	assert.Equal(t, abs, resolve("root", abs))
}
