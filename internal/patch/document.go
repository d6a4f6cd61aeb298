// Package patch locates value-bearing statements in the game's data files
// and rewrites their numeric literals in place. Every pass degrades to a
// silent skip on a lookup or pattern miss; the only errors are file I/O.
package patch

import (
	"fmt"
	"os"
	"strings"
)

// Document is one game data file held in memory as lines. Lines carry no
// terminator; joining with "\n" reproduces the input byte-for-byte (a
// trailing \r from CRLF files stays attached to its line).
type Document struct {
	path  string
	lines []string
	dirty bool
}

// Load reads the file at path into a Document.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &Document{path: path, lines: strings.Split(string(raw), "\n")}, nil
}

// FromString builds an in-memory Document with no backing file.
func FromString(content string) *Document {
	return &Document{lines: strings.Split(content, "\n")}
}

// Path returns the file the document was loaded from, or "" for in-memory
// documents.
func (d *Document) Path() string { return d.path }

// Len returns the number of lines.
func (d *Document) Len() int { return len(d.lines) }

// Line returns line i.
func (d *Document) Line(i int) string { return d.lines[i] }

// SetLine replaces line i, tracking whether anything actually changed.
func (d *Document) SetLine(i int, s string) {
	if d.lines[i] == s {
		return
	}
	d.lines[i] = s
	d.dirty = true
}

// Content returns the document as a single string.
func (d *Document) Content() string { return strings.Join(d.lines, "\n") }

// SetContent replaces the whole document, for whole-file rewrites.
func (d *Document) SetContent(s string) {
	if s == d.Content() {
		return
	}
	d.lines = strings.Split(s, "\n")
	d.dirty = true
}

// Dirty reports whether any line differs from what was loaded.
func (d *Document) Dirty() bool { return d.dirty }

// Save writes the document back to the path it was loaded from. The write
// is skipped when nothing changed, so an idempotent rerun never touches the
// file.
func (d *Document) Save() error {
	if !d.dirty {
		return nil
	}
	if err := os.WriteFile(d.path, []byte(d.Content()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", d.path, err)
	}
	d.dirty = false
	return nil
}
