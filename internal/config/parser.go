package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZebulonRouseFrantzich/libcc/internal/platform"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	lua "github.com/yuin/gopher-lua"
)

// Loader resolves Settings from defaults, a config file and the environment.
type Loader struct {
	detector platform.Detector
	dir      string
	getenv   func(string) string
	logger   Logger
}

// NewLoader creates a loader. The detector feeds the Lua platform table and
// may be nil when no Lua config is expected.
func NewLoader(detector platform.Detector) *Loader {
	return &Loader{
		detector: detector,
		dir:      ".",
		getenv:   os.Getenv,
		logger:   defaultLogger(),
	}
}

// WithDir sets the directory searched for default config files.
func (l *Loader) WithDir(dir string) *Loader {
	l.dir = dir
	return l
}

// WithGetenv replaces the environment lookup.
func (l *Loader) WithGetenv(getenv func(string) string) *Loader {
	l.getenv = getenv
	return l
}

// WithLogger sets the logger used for load diagnostics.
func (l *Loader) WithLogger(logger Logger) *Loader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// Load returns validated settings. path names a config file; when empty the
// default files are tried and silently skipped if absent.
func (l *Loader) Load(ctx context.Context, path string) (*Settings, error) {
	settings := Defaults()

	filePath, err := l.resolvePath(path)
	if err != nil {
		return nil, err
	}

	if filePath != "" {
		fromFile, err := l.ParseFile(ctx, filePath)
		if err != nil {
			return nil, err
		}
		settings.merge(fromFile)
		l.logger.Debug("loaded config file", "path", filePath)
	}

	settings.merge(&Settings{
		BaseURL:    l.getenv(EnvMirror),
		Commit:     l.getenv(EnvCommit),
		TargetArch: l.getenv(EnvTargetArch),
	})

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// resolvePath returns the config file to read, or "" for none.
func (l *Loader) resolvePath(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", goerr.Wrap(err, "config file not accessible", goerr.V("path", path))
		}
		return path, nil
	}

	for _, name := range []string{DefaultLuaFile, DefaultTOMLFile} {
		candidate := filepath.Join(l.dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
	}

	l.logger.Debug("no config file found, using defaults", "dir", l.dir)
	return "", nil
}

// ParseFile parses a config file, choosing the format by extension.
func (l *Loader) ParseFile(ctx context.Context, path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".lua":
		return l.ParseLua(ctx, string(data))
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, goerr.New("unsupported config file extension",
			goerr.V("path", path), goerr.V("supported", ".lua, .toml"))
	}
}

// ParseLua runs a Lua config in the sandbox and extracts the libcc table.
func (l *Loader) ParseLua(ctx context.Context, luaCode string) (*Settings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	L := newSandboxedVM()
	defer L.Close()
	L.SetContext(ctx)

	if l.detector != nil {
		info, err := l.detector.Detect(ctx)
		if err != nil {
			return nil, fmt.Errorf("platform detection failed: %w", err)
		}
		if err := platform.InjectPlatformTable(L, info); err != nil {
			return nil, fmt.Errorf("inject platform table: %w", err)
		}
	}

	if err := L.DoString(luaCode); err != nil {
		return nil, &ParseError{
			Message: "Lua error",
			Detail:  err.Error(),
		}
	}

	return extractSettings(L)
}

// ParseTOML decodes a TOML config. Unknown keys are rejected.
func ParseTOML(data []byte) (*Settings, error) {
	var settings Settings
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&settings); err != nil {
		return nil, &ParseError{
			Message: "TOML error",
			Detail:  err.Error(),
		}
	}
	return &settings, nil
}

// ParseError represents a config parsing error with friendly message.
type ParseError struct {
	Message string // User-friendly message
	Detail  string // Technical details (raw parser error)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// extractSettings reads the global "libcc" table from a Lua state.
func extractSettings(L *lua.LState) (*Settings, error) {
	global := L.GetGlobal(luaGlobalLibcc)
	table, ok := global.(*lua.LTable)
	if !ok {
		return nil, &ParseError{
			Message: "missing or invalid 'libcc' table",
			Detail:  fmt.Sprintf("expected table, got %s", global.Type()),
		}
	}

	settings := &Settings{}
	fields := []struct {
		name string
		dst  *string
	}{
		{luaFieldBaseURL, &settings.BaseURL},
		{luaFieldCommit, &settings.Commit},
		{luaFieldArch, &settings.TargetArch},
		{luaFieldVendorDir, &settings.VendorDir},
	}

	for _, f := range fields {
		v := table.RawGetString(f.name)
		switch v.Type() {
		case lua.LTNil:
			// Unset, or a platform conditional that evaluated to nil
		case lua.LTString:
			*f.dst = v.String()
		default:
			return nil, &ParseError{
				Message: "invalid value for '" + f.name + "'",
				Detail:  fmt.Sprintf("expected string, got %s", v.Type()),
			}
		}
	}

	return settings, nil
}

// FormatError formats a ParseError for user display.
// In verbose mode, show the raw error. Otherwise, drop the Lua stack traceback.
func FormatError(err error, verbose bool) string {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if verbose {
			return fmt.Sprintf("%s\n\nDetails:\n%s", parseErr.Message, parseErr.Detail)
		}
		detail := parseErr.Detail
		if idx := strings.Index(detail, "stack traceback"); idx > 0 {
			detail = strings.TrimSpace(detail[:idx])
		}
		return fmt.Sprintf("%s: %s", parseErr.Message, detail)
	}
	return err.Error()
}
