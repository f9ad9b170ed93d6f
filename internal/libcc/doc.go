// Package libcc locates and unpacks prebuilt libchromiumcontent archives.
//
// # Download URLs
//
// Archives are published under
//
//	<base>/<platform key>/<arch>/<commit>/<filename>
//
// with one filename per Package: libchromiumcontent.zip for the shared
// library build and libchromiumcontent-static.zip for the static one.
// Reporter resolves the platform key, architecture and commit through a
// Source and prints both URLs. Every input is resolved before anything is
// written, so an unknown platform produces an error and no output.
//
// # Extraction
//
// Extractor unpacks a zip archive into a directory, recreating every entry:
// directories, regular files with their modes, and symlinks. Existing files
// at the destination are overwritten. Entries whose names would land outside
// the destination are rejected with ErrIllegalPath.
//
//	ext := libcc.NewExtractor(logger)
//	res, err := ext.Extract(ctx, "download/libchromiumcontent.zip", "vendor/libcc")
package libcc
