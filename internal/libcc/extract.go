package libcc

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/m-mizutani/goerr/v2"
)

// ErrIllegalPath is returned for entries that would escape the destination.
var ErrIllegalPath = errors.New("illegal file path in archive")

// Modes for entries that carry no permission bits.
const (
	defaultFileMode fs.FileMode = 0644
	defaultDirMode  fs.FileMode = 0755
)

// Extractor handles zip archive extraction
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates a new extractor. A nil logger uses slog.Default().
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract unpacks every entry of the zip archive at src into dest, creating
// dest if needed. Existing files are overwritten. Directories keep the
// archive's mode with the owner bits forced on so extraction can continue
// inside them.
//
// No entry may be written through a symlink below dest, and symlink entries
// may only use ".." across real directories, so a chain of links cannot
// lead outside dest.
func (e *Extractor) Extract(ctx context.Context, src, dest string) (*ExtractResult, error) {
	reader, err := zip.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer reader.Close()

	if err := os.MkdirAll(dest, 0755); err != nil {
		return nil, fmt.Errorf("create dest dir: %w", err)
	}

	result := &ExtractResult{Source: src, Dest: dest}

	for _, f := range reader.File {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name, err := entryName(f.Name)
		if err != nil {
			return nil, err
		}
		target := filepath.Join(dest, name)
		mode := f.Mode()

		switch {
		case mode.IsDir():
			if err := checkNoSymlinks(dest, name); err != nil {
				return nil, err
			}
			if err := extractDir(target, mode.Perm()); err != nil {
				return nil, err
			}
			result.Dirs++

		case mode&fs.ModeSymlink != 0:
			if err := checkNoSymlinks(dest, filepath.Dir(name)); err != nil {
				return nil, err
			}
			if err := extractSymlink(f, dest, name, target); err != nil {
				return nil, err
			}
			result.Symlinks++

		default:
			if err := checkNoSymlinks(dest, filepath.Dir(name)); err != nil {
				return nil, err
			}
			n, err := extractFile(f, target)
			if err != nil {
				return nil, err
			}
			result.Files++
			result.Bytes += uint64(n)
		}
	}

	e.logger.Debug("extracted archive",
		slog.String("src", src),
		slog.String("dest", dest),
		slog.Int("files", result.Files),
		slog.Int("dirs", result.Dirs),
		slog.Int("symlinks", result.Symlinks),
		slog.String("size", humanize.Bytes(result.Bytes)),
	)

	return result, nil
}

// entryName converts a zip entry name to a local relative path.
func entryName(raw string) (string, error) {
	name := filepath.FromSlash(raw)
	if !filepath.IsLocal(name) {
		return "", goerr.Wrap(ErrIllegalPath, "entry escapes destination", goerr.V("entry", raw))
	}
	return name, nil
}

// extractFile writes a regular file entry, replacing whatever is at target.
func extractFile(f *zip.File, target string) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return 0, fmt.Errorf("create parent dir for %s: %w", target, err)
	}
	if err := removeLink(target); err != nil {
		return 0, err
	}

	perm := f.Mode().Perm()
	if perm == 0 {
		perm = defaultFileMode
	}

	rc, err := f.Open()
	if err != nil {
		return 0, fmt.Errorf("open entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	outFile, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return 0, fmt.Errorf("create file %s: %w", target, err)
	}

	n, err := io.Copy(outFile, rc)
	if err != nil {
		outFile.Close()
		return 0, fmt.Errorf("write file %s: %w", target, err)
	}
	if err := outFile.Close(); err != nil {
		return 0, fmt.Errorf("close file %s: %w", target, err)
	}

	// OpenFile keeps the mode of a file that already existed
	if err := os.Chmod(target, perm); err != nil {
		return 0, fmt.Errorf("chmod %s: %w", target, err)
	}

	return n, nil
}

// extractDir creates a directory entry and applies its mode.
func extractDir(target string, perm fs.FileMode) error {
	if perm == 0 {
		perm = defaultDirMode
	}
	perm |= 0700

	if err := os.MkdirAll(target, perm); err != nil {
		return fmt.Errorf("create directory %s: %w", target, err)
	}
	// MkdirAll is subject to umask and leaves existing directories alone
	if err := os.Chmod(target, perm); err != nil {
		return fmt.Errorf("chmod %s: %w", target, err)
	}
	return nil
}

// extractSymlink recreates a symlink entry. The link body must point inside
// the destination.
func extractSymlink(f *zip.File, dest, name, target string) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open entry %s: %w", f.Name, err)
	}
	body, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return fmt.Errorf("read symlink %s: %w", f.Name, err)
	}

	linkname := filepath.FromSlash(string(body))
	if err := checkLinkTarget(dest, name, linkname); err != nil {
		return goerr.Wrap(err, "invalid symlink", goerr.V("entry", f.Name), goerr.V("link", string(body)))
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("create parent dir for %s: %w", target, err)
	}

	info, err := os.Lstat(target)
	switch {
	case err == nil && info.IsDir():
		// A directory turned into a link would redirect ".." in other links
		return goerr.Wrap(ErrIllegalPath, "symlink would replace a directory", goerr.V("entry", f.Name))
	case err == nil:
		if err := os.Remove(target); err != nil {
			return fmt.Errorf("replace %s: %w", target, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat %s: %w", target, err)
	}
	if err := os.Symlink(linkname, target); err != nil {
		return fmt.Errorf("create symlink %s: %w", target, err)
	}
	return nil
}

// removeLink removes target if it is a symlink so writes do not follow it.
func removeLink(target string) error {
	info, err := os.Lstat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", target, err)
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		if err := os.Remove(target); err != nil {
			return fmt.Errorf("remove symlink %s: %w", target, err)
		}
	}
	return nil
}

// checkNoSymlinks fails if any existing component of rel below dest is a
// symlink. Components that do not exist yet are created as directories.
func checkNoSymlinks(dest, rel string) error {
	if rel == "." {
		return nil
	}

	cur := dest
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		cur = filepath.Join(cur, part)
		info, err := os.Lstat(cur)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("stat %s: %w", cur, err)
		}
		if info.Mode()&fs.ModeSymlink != 0 {
			return goerr.Wrap(ErrIllegalPath, "entry passes through a symlink", goerr.V("symlink", cur))
		}
	}
	return nil
}

// checkLinkTarget validates the body of a symlink entry named name. The
// target is walked from the link's directory; ".." is allowed only while
// every component walked so far is an existing real directory, since a
// symlink or a path created later could change where ".." leads.
func checkLinkTarget(dest, name, linkname string) error {
	if linkname == "" || filepath.IsAbs(linkname) || filepath.VolumeName(linkname) != "" {
		return goerr.Wrap(ErrIllegalPath, "symlink target must be relative")
	}

	cur := filepath.Dir(name)
	settled := true
	for _, part := range strings.Split(linkname, string(filepath.Separator)) {
		switch part {
		case "", ".":
		case "..":
			if cur == "." {
				return goerr.Wrap(ErrIllegalPath, "symlink escapes destination")
			}
			if !settled {
				return goerr.Wrap(ErrIllegalPath, "symlink uses \"..\" after a link or missing path")
			}
			cur = filepath.Dir(cur)
		default:
			cur = filepath.Join(cur, part)
			if settled {
				info, err := os.Lstat(filepath.Join(dest, cur))
				settled = err == nil && info.IsDir()
			}
		}
	}
	return nil
}
