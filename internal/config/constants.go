package config

// Built-in defaults
const (
	DefaultBaseURL   = "https://s3.amazonaws.com/github-janky-artifacts/libchromiumcontent"
	DefaultCommit    = "cfbe8ec7e14af4cabd1474386f54e197db1f7ac1"
	DefaultVendorDir = "vendor/brightray/vendor/download/libchromiumcontent"

	// DefaultLuaFile and DefaultTOMLFile are looked up when no file is named.
	DefaultLuaFile  = "libcc.lua"
	DefaultTOMLFile = "libcc.toml"

	// TargetArchFile records the architecture of a vendored libchromiumcontent.
	TargetArchFile = ".target_arch"
)

// Environment overrides
const (
	EnvMirror     = "LIBCHROMIUMCONTENT_MIRROR"
	EnvCommit     = "LIBCHROMIUMCONTENT_COMMIT"
	EnvTargetArch = "TARGET_ARCH"
)

// Lua schema field names and globals
const (
	luaGlobalLibcc    = "libcc"
	luaFieldBaseURL   = "base_url"
	luaFieldCommit    = "commit"
	luaFieldArch      = "target_arch"
	luaFieldVendorDir = "vendor_dir"
)
