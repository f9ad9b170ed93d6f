package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalid is wrapped by every ValidationError.
var ErrInvalid = errors.New("invalid configuration")

// Settings is the resolved build configuration.
type Settings struct {
	// Base URL that platform/arch/commit/file paths are appended to
	BaseURL string `toml:"base_url"`

	// Commit identifier of the prebuilt libchromiumcontent
	Commit string `toml:"commit"`

	// Target architecture; empty means resolve at use time
	TargetArch string `toml:"target_arch"`

	// Directory libchromiumcontent is vendored into
	VendorDir string `toml:"vendor_dir"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		BaseURL:   DefaultBaseURL,
		Commit:    DefaultCommit,
		VendorDir: DefaultVendorDir,
	}
}

// merge copies every non-empty field of other onto s.
func (s *Settings) merge(other *Settings) {
	if other == nil {
		return
	}
	if other.BaseURL != "" {
		s.BaseURL = other.BaseURL
	}
	if other.Commit != "" {
		s.Commit = other.Commit
	}
	if other.TargetArch != "" {
		s.TargetArch = other.TargetArch
	}
	if other.VendorDir != "" {
		s.VendorDir = other.VendorDir
	}
}

// Validate checks that the settings can produce well-formed URLs.
func (s *Settings) Validate() error {
	if err := validateBaseURL(s.BaseURL); err != nil {
		return &ValidationError{Field: luaFieldBaseURL, Message: err.Error()}
	}

	if err := validateSegment(s.Commit); err != nil {
		return &ValidationError{Field: luaFieldCommit, Message: err.Error()}
	}

	if s.TargetArch != "" {
		if err := validateSegment(s.TargetArch); err != nil {
			return &ValidationError{Field: luaFieldArch, Message: err.Error()}
		}
	}

	if strings.TrimSpace(s.VendorDir) == "" {
		return &ValidationError{Field: luaFieldVendorDir, Message: "cannot be empty"}
	}

	return nil
}

// ValidationError represents a config validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "config validation failed for " + e.Field + ": " + e.Message
	}
	return "config validation failed: " + e.Message
}

// Unwrap lets errors.Is match ErrInvalid.
func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("must not carry a query or fragment")
	}
	return nil
}

// validateSegment checks a value that becomes exactly one URL path segment.
func validateSegment(v string) error {
	if v == "" {
		return fmt.Errorf("cannot be empty")
	}
	if strings.ContainsAny(v, "/\\?# \t\r\n") {
		return fmt.Errorf("%q must be a single path segment", v)
	}
	return nil
}
