package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(s *Settings)
		wantField string
	}{
		{"defaults are valid", func(s *Settings) {}, ""},
		{"http base url", func(s *Settings) { s.BaseURL = "http://localhost:9000/x" }, ""},
		{"target arch set", func(s *Settings) { s.TargetArch = "arm64" }, ""},
		{"empty base url", func(s *Settings) { s.BaseURL = "" }, "base_url"},
		{"relative base url", func(s *Settings) { s.BaseURL = "mirror/libcc" }, "base_url"},
		{"ftp base url", func(s *Settings) { s.BaseURL = "ftp://example.com" }, "base_url"},
		{"base url without host", func(s *Settings) { s.BaseURL = "https:///path" }, "base_url"},
		{"base url with query", func(s *Settings) { s.BaseURL = "https://example.com/?a=b" }, "base_url"},
		{"empty commit", func(s *Settings) { s.Commit = "" }, "commit"},
		{"commit with slash", func(s *Settings) { s.Commit = "abc/def" }, "commit"},
		{"commit with space", func(s *Settings) { s.Commit = "abc def" }, "commit"},
		{"arch with slash", func(s *Settings) { s.TargetArch = "x64/../ia32" }, "target_arch"},
		{"blank vendor dir", func(s *Settings) { s.VendorDir = "  " }, "vendor_dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(s)

			err := s.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestSettings_Merge(t *testing.T) {
	s := Defaults()
	s.merge(&Settings{Commit: "abc", TargetArch: "x64"})
	s.merge(nil)
	s.merge(&Settings{})

	assert.Equal(t, DefaultBaseURL, s.BaseURL)
	assert.Equal(t, "abc", s.Commit)
	assert.Equal(t, "x64", s.TargetArch)
	assert.Equal(t, DefaultVendorDir, s.VendorDir)
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "config validation failed for commit: cannot be empty",
		(&ValidationError{Field: "commit", Message: "cannot be empty"}).Error())
	assert.Equal(t, "config validation failed: bad",
		(&ValidationError{Message: "bad"}).Error())
}
