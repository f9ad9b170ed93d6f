// Package config provides the shared build configuration consumed by the
// libchromiumcontent tools: the download base URL, the pinned commit
// identifier, the vendor directory, and target-architecture resolution.
//
// # Sources
//
// Settings are layered, later sources overriding earlier ones:
//
//  1. Built-in defaults (DefaultBaseURL, DefaultCommit, DefaultVendorDir)
//  2. An optional config file, Lua (.lua) or TOML (.toml)
//  3. Environment overrides: LIBCHROMIUMCONTENT_MIRROR,
//     LIBCHROMIUMCONTENT_COMMIT, TARGET_ARCH
//
// When no file is named explicitly, libcc.lua and then libcc.toml are looked
// up in the loader's directory. A missing default file is not an error; a
// missing explicit file is.
//
// # Lua Configs
//
// Lua files run in a sandboxed gopher-lua VM with the os, io, debug and
// module-loading functions removed. A read-only `platform` table describing
// the host is injected before the file runs, so configs can branch on it:
//
//	libcc = {
//	  base_url    = "https://mirror.example.com/libchromiumcontent",
//	  commit      = "cfbe8ec7e14af4cabd1474386f54e197db1f7ac1",
//	  target_arch = platform.is_windows and "ia32" or "x64",
//	}
//
// # TOML Configs
//
// TOML files use the same keys at the top level. Unknown keys are rejected.
//
//	base_url = "https://mirror.example.com/libchromiumcontent"
//	commit   = "cfbe8ec7e14af4cabd1474386f54e197db1f7ac1"
//
// # Target Architecture
//
// Provider.TargetArch resolves the architecture in order: the configured
// value, the contents of <vendor_dir>/.target_arch, then the platform
// default ("ia32" on Windows, "x64" elsewhere).
package config
