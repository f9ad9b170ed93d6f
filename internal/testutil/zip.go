package testutil

import (
	"archive/zip"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ZipEntry describes one entry of a fixture archive. Names ending in "/"
// are directories; a non-empty Link makes the entry a symlink to Link.
type ZipEntry struct {
	Name string
	Body string
	Mode fs.FileMode
	Link string
}

// WriteZip writes a zip archive containing entries to path and returns path.
func WriteZip(t *testing.T, path string, entries []ZipEntry) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create archive dir: %v", err)
	}

	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("create archive %s: %v", path, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, e := range entries {
		header := &zip.FileHeader{Name: e.Name, Method: zip.Deflate}
		body := e.Body

		switch {
		case strings.HasSuffix(e.Name, "/"):
			mode := e.Mode
			if mode == 0 {
				mode = 0o755
			}
			header.Method = zip.Store
			header.SetMode(fs.ModeDir | mode)
		case e.Link != "":
			header.SetMode(fs.ModeSymlink | 0o777)
			body = e.Link
		default:
			mode := e.Mode
			if mode == 0 {
				mode = 0o644
			}
			header.SetMode(mode)
		}

		w, err := zw.CreateHeader(header)
		if err != nil {
			t.Fatalf("add %s to archive: %v", e.Name, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("write %s to archive: %v", e.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("finish archive: %v", err)
	}
	return path
}
