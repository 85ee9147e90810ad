// Package xlsx opens an .xlsx spreadsheet file (a ZIP archive of XML parts)
// and exposes its cell data as a dense typed grid.
//
// Only cell content is read: the worksheet part named by the package
// relationships and the shared string table its string cells index into.
// Styling, formulas and every other part of the package are ignored.
package xlsx

import (
	"archive/zip"
	"fmt"
	"io"
	"iter"

	"github.com/beeselmane/zhdict/internal/rels"
	"github.com/beeselmane/zhdict/ooxml"
	"github.com/beeselmane/zhdict/stringtable"
	"github.com/beeselmane/zhdict/worksheet"
	"github.com/beeselmane/zhdict/xmltree"
)

// Document is an open .xlsx document: the dense grid of its worksheet plus
// the shared string table the grid's string-reference cells index into.
//
// Construction is all-or-nothing. Open and OpenReader either return a fully
// parsed Document or an error, never a partial handle. All part content is
// copied out of the archive during parsing, so the grid and string table
// are plain memory with no tie to the underlying file.
type Document struct {
	zr      *zip.ReadCloser // non-nil when opened by file name
	zf      *zip.Reader     // always non-nil
	strings *stringtable.Table
	grid    *worksheet.Grid
}

// Open opens the named .xlsx file and parses its cell data.
// The caller must call Close on the returned Document when done to release
// the underlying file handle.
func Open(name string) (*Document, error) {
	rc, err := zip.OpenReader(name)
	if err != nil {
		return nil, fmt.Errorf("xlsx: open %q: %w", name, err)
	}
	doc := &Document{zr: rc, zf: &rc.Reader}
	if err := doc.parse(); err != nil {
		_ = rc.Close()
		return nil, err
	}
	return doc, nil
}

// OpenReader parses an .xlsx document from an in-memory ReaderAt.
// size must be the total byte size of the ZIP data.
func OpenReader(r io.ReaderAt, size int64) (*Document, error) {
	zf, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("xlsx: open reader: %w", err)
	}
	doc := &Document{zf: zf}
	if err := doc.parse(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Close releases the file handle underlying a Document opened by name.
// The grid and string table remain valid after Close. Close is a no-op for
// documents opened via OpenReader and for repeated calls, and returns nil
// in those cases.
func (d *Document) Close() error {
	if d.zr == nil {
		return nil
	}
	err := d.zr.Close()
	d.zr = nil
	return err
}

// ── cell access ────────────────────────────────────────────────────────────

// Grid returns the document's cell grid.
func (d *Document) Grid() *worksheet.Grid {
	return d.grid
}

// Rows returns the number of rows in the grid.
func (d *Document) Rows() int {
	return d.grid.Rows()
}

// Cols returns the number of columns in the grid.
func (d *Document) Cols() int {
	return d.grid.Cols()
}

// Row returns row i of the grid. See [worksheet.Grid.Row].
func (d *Document) Row(i int) ([]worksheet.Value, error) {
	return d.grid.Row(i)
}

// EachRow iterates the grid's rows. See [worksheet.Grid.EachRow].
func (d *Document) EachRow() iter.Seq2[int, []worksheet.Value] {
	return d.grid.EachRow()
}

// Column iterates one grid column. See [worksheet.Grid.Column].
func (d *Document) Column(j int) iter.Seq2[int, worksheet.Value] {
	return d.grid.Column(j)
}

// Cells iterates every cell of the grid. See [worksheet.Grid.Cells].
func (d *Document) Cells() iter.Seq[worksheet.Cell] {
	return d.grid.Cells()
}

// ── string access ──────────────────────────────────────────────────────────

// StringCount returns the number of entries in the shared string table.
func (d *Document) StringCount() int {
	return d.strings.Len()
}

// SharedString returns the shared string at index i. It panics if i is out
// of range, matching the behaviour of a slice index.
func (d *Document) SharedString(i int) string {
	return d.strings.Get(i)
}

// Text resolves v to its string content: the table entry for a shared
// string reference, or the owned text of a literal string. It returns
// ok == false for values of any other kind, and for reference indices
// outside the table, which a malformed document can produce.
func (d *Document) Text(v worksheet.Value) (s string, ok bool) {
	switch v.Kind {
	case worksheet.KindShared:
		if v.Ref < 0 || v.Ref >= d.strings.Len() {
			return "", false
		}
		return d.strings.Get(v.Ref), true
	case worksheet.KindLiteral:
		return v.Str, true
	}
	return "", false
}

// ── internal ───────────────────────────────────────────────────────────────

// parse locates the worksheet and shared-strings parts through the package
// relationships, then parses both. Nothing reads from the archive afterwards.
func (d *Document) parse() error {
	parts, err := d.locateParts()
	if err != nil {
		return err
	}
	if err := d.parseSharedStrings(parts.SharedStrings); err != nil {
		return err
	}
	return d.parseWorksheet(parts.Worksheet)
}

// locateParts reads the fixed relationships part and resolves the archive
// paths of the two parts the reader needs.
func (d *Document) locateParts() (rels.Parts, error) {
	data, err := d.readZipEntry(ooxml.RelsPath)
	if err != nil {
		return rels.Parts{}, fmt.Errorf("xlsx: read relationships: %w", err)
	}
	root, err := xmltree.ParseBytes(data)
	if err != nil {
		return rels.Parts{}, fmt.Errorf("xlsx: relationships: %w", err)
	}
	return rels.Resolve(root)
}

func (d *Document) parseSharedStrings(path string) error {
	data, err := d.readZipEntry(path)
	if err != nil {
		return fmt.Errorf("xlsx: read shared strings: %w", err)
	}
	st, err := stringtable.ParseBytes(data)
	if err != nil {
		return err
	}
	d.strings = st
	return nil
}

func (d *Document) parseWorksheet(path string) error {
	data, err := d.readZipEntry(path)
	if err != nil {
		return fmt.Errorf("xlsx: read worksheet: %w", err)
	}
	root, err := xmltree.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("xlsx: worksheet: %w", err)
	}
	g, err := worksheet.Build(root)
	if err != nil {
		return err
	}
	d.grid = g
	return nil
}

// readZipEntry reads the full contents of a named entry from the ZIP archive.
func (d *Document) readZipEntry(name string) ([]byte, error) {
	for _, f := range d.zf.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			data, readErr := io.ReadAll(rc)
			closeErr := rc.Close()
			if readErr != nil {
				return nil, readErr
			}
			// Decompressor checksum errors surface on close even when the
			// read itself succeeded.
			if closeErr != nil {
				return nil, closeErr
			}
			return data, nil
		}
	}
	return nil, fmt.Errorf("%q not found in archive", name)
}
