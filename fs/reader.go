// Package fs provides file-based loading of saved set pages.
package fs

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/tpdb"
	"golang.org/x/net/html/charset"
)

// Ensure PageReader implements tpdb.PageReader at compile time.
var _ tpdb.PageReader = (*PageReader)(nil)

// PageReader reads saved HTML pages from the local filesystem.
// Pages saved in a legacy encoding are decoded to UTF-8 using the
// page's byte order mark or <meta charset> declaration.
type PageReader struct{}

// NewPageReader creates a new PageReader.
func NewPageReader() *PageReader {
	return &PageReader{}
}

// ReadPage returns the page at path decoded to UTF-8.
// Returns ENOTFOUND naming the resolved path if no file exists there.
func (r *PageReader) ReadPage(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", tpdb.Errorf(tpdb.EINVALID, "invalid path %q: %v", path, err)
	}

	f, err := os.Open(abs)
	if errors.Is(err, os.ErrNotExist) {
		return "", tpdb.Errorf(tpdb.ENOTFOUND, "file %q does not exist", abs)
	} else if err != nil {
		return "", tpdb.Errorf(tpdb.EINVALID, "cannot open %q: %v", abs, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", tpdb.Errorf(tpdb.EINVALID, "cannot stat %q: %v", abs, err)
	}
	if info.IsDir() {
		return "", tpdb.Errorf(tpdb.EINVALID, "%q is a directory, not an HTML file", abs)
	}
	if info.Size() == 0 {
		return "", nil
	}

	decoded, err := charset.NewReader(f, "text/html")
	if err != nil {
		return "", tpdb.Errorf(tpdb.EINVALID, "cannot decode %q: %v", abs, err)
	}

	html, err := io.ReadAll(decoded)
	if err != nil {
		return "", tpdb.Errorf(tpdb.EINVALID, "cannot read %q: %v", abs, err)
	}

	return string(html), nil
}
