package report

import (
	"bytes"
	"os"

	"github.com/danmuck/kernelmeta/internal/metadata"
)

// Options controls WriteFile.
type Options struct {
	// Title overrides the title derived from the output path.
	Title string
}

// WriteFile renders rec and writes it to path, replacing any existing file.
// The document is rendered in full before path is touched.
func WriteFile(path string, rec *metadata.Record, opts Options) error {
	title := opts.Title
	if title == "" {
		title = TitleFor(path)
	}
	var buf bytes.Buffer
	renderTo(&buf, rec, title)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &metadata.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
