// Package zhdict reads the cell data of Excel .xlsx workbooks into a dense
// typed grid.  No cgo is required.
//
// The package was extracted from a tool for processing Chinese dictionary
// spreadsheets, which shows in its priorities: it reads exactly one
// worksheet per document, keeps every cell value, and ignores styling,
// formulas, merged ranges and all other presentation metadata.
//
// # Quick start
//
//	doc, err := zhdict.Open("dict.xlsx")
//	if err != nil { ... }
//	defer doc.Close()
//
//	for i, row := range doc.EachRow() {
//	    for j, v := range row {
//	        if s, ok := doc.Text(v); ok {
//	            fmt.Printf("(%d,%d) = %q\n", i, j, s)
//	        }
//	    }
//	}
//
// # Cell values
//
// Cells are typed [worksheet.Value] entries. Numeric cells are parsed into
// int64 or float64 at load time; string cells either reference the
// document's shared string table or own their text directly. [xlsx.Document.Text]
// resolves both string forms. Cells absent from the source document are
// present in the grid with the zero Value (kind [worksheet.KindEmpty]), so
// every row has exactly [xlsx.Document.Cols] entries.
//
// # Grid shape
//
// The grid's dimensions are fixed once at load time from the worksheet's
// own structure: the first row's cells define the canonical column set, and
// later rows' cells are matched to those columns by the alphabetic part of
// their cell references. Documents whose later rows reference columns the
// first row does not declare are rejected.
package zhdict

import (
	"io"

	"github.com/beeselmane/zhdict/xlsx"
)

// Version is the current version of the zhdict library.
const Version = "0.1.0"

// Open opens the named .xlsx file.  The caller must call Close on the
// returned Document when done.
func Open(name string) (*xlsx.Document, error) {
	return xlsx.Open(name)
}

// OpenReader reads an .xlsx document from an arbitrary [io.ReaderAt].
// size must equal the total byte length of the data.
func OpenReader(r io.ReaderAt, size int64) (*xlsx.Document, error) {
	return xlsx.OpenReader(r, size)
}
