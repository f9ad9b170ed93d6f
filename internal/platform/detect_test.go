package platform

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealDetector_Detect(t *testing.T) {
	info, err := NewDetector().Detect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, runtime.GOARCH, info.Arch)
	assert.NotEmpty(t, info.Identifier)

	if runtime.GOOS == "linux" {
		assert.Equal(t, IdentifierLinux2, info.Identifier)
		key, err := info.Key()
		require.NoError(t, err)
		assert.Equal(t, KeyLinux, key)
	}
}

func TestRealDetector_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// gopsutil may answer from cached data before noticing cancellation;
	// either way a returned error must carry the context error.
	if _, err := NewDetector().Detect(ctx); err != nil {
		assert.True(t, errors.Is(err, context.Canceled))
	}
}

func TestRealDetector_InfoFor(t *testing.T) {
	tests := []struct {
		name   string
		goos   string
		ostype string
		wantID string
	}{
		{"linux", "linux", "", IdentifierLinux2},
		{"darwin", "darwin", "", IdentifierDarwin},
		{"windows", "windows", "", IdentifierWin32},
		{"windows under cygwin", "windows", "cygwin", IdentifierCygwin},
		{"cygwin ostype ignored off windows", "linux", "cygwin", IdentifierLinux2},
		{"msys is not cygwin", "windows", "msys", IdentifierWin32},
		{"unknown passes through", "solaris", "", "solaris"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &RealDetector{getenv: func(key string) string {
				if key == "OSTYPE" {
					return tt.ostype
				}
				return ""
			}}
			info := d.infoFor(tt.goos, "amd64")
			assert.Equal(t, tt.goos, info.OS)
			assert.Equal(t, tt.wantID, info.Identifier)
			assert.Equal(t, "amd64", info.Arch)
		})
	}
}

func TestStaticDetector(t *testing.T) {
	want := &Info{OS: "darwin", Identifier: IdentifierDarwin, Arch: "arm64"}
	got, err := StaticDetector{Info: want}.Detect(context.Background())
	require.NoError(t, err)
	assert.Same(t, want, got)

	boom := errors.New("boom")
	_, err = StaticDetector{Info: want, Err: boom}.Detect(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestInfo_BooleanMethods(t *testing.T) {
	tests := []struct {
		identifier            string
		windows, macos, linux bool
	}{
		{IdentifierWin32, true, false, false},
		{IdentifierCygwin, true, false, false},
		{IdentifierDarwin, false, true, false},
		{IdentifierLinux2, false, false, true},
		{"aix", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			info := &Info{Identifier: tt.identifier}
			assert.Equal(t, tt.windows, info.IsWindows())
			assert.Equal(t, tt.macos, info.IsMacOS())
			assert.Equal(t, tt.linux, info.IsLinux())
		})
	}
}
