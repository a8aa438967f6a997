// Package render draws plots onto concrete canvases: a native SVG
// writer and the gonum vg backends for PNG, PDF and SVG.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	plot "github.com/vdobler/socialplot"
)

// Format is an output file format.
type Format string

const (
	SVG   Format = "svg"   // native writer
	VGSVG Format = "vgsvg" // gonum vg SVG backend
	PNG   Format = "png"
	PDF   Format = "pdf"
)

// ErrFormat is returned for unknown output formats.
var ErrFormat = errors.New("unknown output format")

// FormatOf derives the format from the extension of path; unknown
// extensions default to SVG.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG
	case ".pdf":
		return PDF
	}
	return SVG
}

// Write renders p in format f to w.
func Write(w io.Writer, p *plot.Plot, f Format) error {
	switch f {
	case SVG:
		s := NewSVG(w, p.Width, p.Height)
		p.Render(s)
		s.End()
		return nil
	case VGSVG, PNG, PDF:
		c, err := NewVG(p.Width, p.Height, f)
		if err != nil {
			return err
		}
		p.Render(c)
		_, err = c.WriteTo(w)
		return err
	}
	return fmt.Errorf("render %q: %w", f, ErrFormat)
}

// WriteFile renders p to path. An empty format is derived from the
// file extension. The file is only created once rendering succeeded.
func WriteFile(p *plot.Plot, path string, f Format) error {
	if f == "" {
		f = FormatOf(path)
	}
	var buf bytes.Buffer
	if err := Write(&buf, p, f); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
