// Package worksheet parses the worksheet part of a spreadsheet package into
// a dense grid of typed cell values.
//
// The source representation is sparse: rows omit cells that hold nothing,
// including interior ones, and a cell's grid column is encoded only as the
// alphabetic prefix of its reference attribute ("B7" → column "B"). The
// builder reconstructs a dense rows×cols grid in two passes, using the first
// row's cells as the canonical column order and matching later rows' derived
// column names against it.
package worksheet

import (
	"fmt"
	"iter"
	"log"
	"strconv"
	"strings"

	"github.com/beeselmane/zhdict/ooxml"
	"github.com/beeselmane/zhdict/xmltree"
)

// Grid is the dense result of parsing one worksheet, stored in row-major
// order. Every row holds exactly Cols entries; cells the source omitted are
// empty. A Grid is immutable once built and safe for concurrent readers.
type Grid struct {
	rows  int
	cols  int
	cells []Value
}

// Build parses the worksheet part rooted at root into a dense Grid.
//
// Pass one sizes the grid: row and column counts are the maximum child
// indices seen plus one, and every reference attribute is validated so pass
// two can assume it. Pass two materializes the cells, recovering each cell's
// canonical column from its derived name and typing its value.
//
// The column name is derived by suffix subtraction: a cell reference is the
// column letters glued to the row number, so stripping the row reference's
// length from the end isolates the letters without parsing them.
func Build(root *xmltree.Node) (*Grid, error) {
	sheet := root.Find("worksheet.sheetData")
	if sheet == nil {
		return nil, fmt.Errorf("worksheet: document has no sheet data")
	}

	var rows, cols int
	var sizeErr error

	stopped := sheet.Visit(func(row *xmltree.Node, _, i int) xmltree.Action {
		if i > rows {
			rows = i
		}
		rowRef, ok := row.Attr("r")
		if !ok {
			sizeErr = fmt.Errorf("worksheet: row %d has no reference attribute", i)
			return xmltree.Stop
		}

		inner := row.Visit(func(cell *xmltree.Node, _, j int) xmltree.Action {
			if j > cols {
				cols = j
			}
			cellRef, ok := cell.Attr("r")
			if !ok {
				sizeErr = fmt.Errorf("worksheet: cell (%d, %d) has no reference attribute", j, i)
				return xmltree.Stop
			}
			if len(cellRef) < len(rowRef) {
				sizeErr = fmt.Errorf("worksheet: cell reference %q is shorter than row reference %q", cellRef, rowRef)
				return xmltree.Stop
			}
			return xmltree.SkipChildren
		})
		if inner {
			return xmltree.Stop
		}
		return xmltree.SkipChildren
	})
	if sizeErr == nil && stopped {
		sizeErr = fmt.Errorf("worksheet: sheet traversal stopped early")
	}
	if sizeErr != nil {
		return nil, sizeErr
	}

	// The maxima are zero-based indices.
	rows++
	cols++

	grid := &Grid{rows: rows, cols: cols, cells: make([]Value, rows*cols)}

	// Canonical column names, established by row 0. Later rows may omit
	// interior or trailing columns, so a cell's position among its siblings
	// is not a reliable grid column.
	names := make([]string, cols)
	var buildErr error

	stopped = sheet.Visit(func(row *xmltree.Node, _, i int) xmltree.Action {
		rowRef, _ := row.Attr("r") // validated in the sizing pass

		inner := row.Visit(func(cell *xmltree.Node, _, rawIdx int) xmltree.Action {
			cellRef, _ := cell.Attr("r")
			name := cellRef[:len(cellRef)-len(rowRef)]

			j := rawIdx
			if i == 0 {
				names[j] = name
			} else {
				found := false
				for j = 0; j < cols; j++ {
					// The comparison is bounded by the derived name's length.
					if strings.HasPrefix(names[j], name) {
						found = true
						break
					}
				}
				if !found {
					buildErr = fmt.Errorf("worksheet: value in row %d has unknown column %q", i, name)
					return xmltree.Stop
				}
			}

			slot := &grid.cells[i*cols+j]

			val := cell.Find("c.v.text")
			if val == nil || val.Content == "" {
				return xmltree.SkipChildren // no value, cell stays empty
			}
			text := val.Content

			if typ, ok := cell.Attr("t"); ok {
				switch typ {
				case ooxml.CellTypeShared:
					ref, err := strconv.ParseInt(text, 10, 64)
					if err != nil || ref < 0 {
						buildErr = fmt.Errorf("worksheet: malformed string table index %q at (%d, %d)", text, j, i)
						return xmltree.Stop
					}
					slot.Kind = KindShared
					slot.Ref = int(ref)
				case ooxml.CellTypeLiteral:
					slot.Kind = KindLiteral
					slot.Str = text
				default:
					// Copying the value as a literal string is always valid.
					log.Printf("worksheet: unknown cell type %q at (%d, %d); treating as literal string", typ, j, i)
					slot.Kind = KindLiteral
					slot.Str = text
				}
				return xmltree.SkipChildren
			}

			// No type attribute: a decimal point picks float over int.
			if strings.Contains(text, ".") {
				f, err := strconv.ParseFloat(text, 64)
				if err != nil {
					buildErr = fmt.Errorf("worksheet: malformed float value %q at (%d, %d)", text, j, i)
					return xmltree.Stop
				}
				slot.Kind = KindFloat
				slot.Float = f
			} else {
				v, err := strconv.ParseInt(text, 10, 64)
				if err != nil {
					buildErr = fmt.Errorf("worksheet: malformed integer value %q at (%d, %d)", text, j, i)
					return xmltree.Stop
				}
				slot.Kind = KindInt
				slot.Int = v
			}
			return xmltree.SkipChildren
		})
		if inner {
			return xmltree.Stop
		}
		return xmltree.SkipChildren
	})
	if buildErr == nil && stopped {
		buildErr = fmt.Errorf("worksheet: sheet traversal stopped early")
	}
	if buildErr != nil {
		return nil, buildErr
	}
	return grid, nil
}

// ── accessors and iteration ───────────────────────────────────────────────────

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	return g.cols
}

// Row returns row i as a view of exactly Cols cells. Callers must treat the
// view as read-only. An out-of-range index returns a non-nil error
// describing the valid range.
func (g *Grid) Row(i int) ([]Value, error) {
	if i < 0 || i >= g.rows {
		return nil, fmt.Errorf("worksheet: row %d out of range [0, %d)", i, g.rows)
	}
	return g.cells[i*g.cols : (i+1)*g.cols : (i+1)*g.cols], nil
}

// EachRow iterates the rows in ascending index order, yielding each row
// index and its row view. Breaking out of the range stops the iteration;
// nothing else can.
func (g *Grid) EachRow() iter.Seq2[int, []Value] {
	return func(yield func(int, []Value) bool) {
		for i := range g.rows {
			row, _ := g.Row(i)
			if !yield(i, row) {
				return
			}
		}
	}
}

// Column iterates column j across all rows in ascending row order. It
// panics if j is out of range, matching the behaviour of a slice index.
func (g *Grid) Column(j int) iter.Seq2[int, Value] {
	if j < 0 || j >= g.cols {
		panic(fmt.Sprintf("worksheet: column %d out of range [0, %d)", j, g.cols))
	}
	return func(yield func(int, Value) bool) {
		for i := range g.rows {
			if !yield(i, g.cells[i*g.cols+j]) {
				return
			}
		}
	}
}

// Cells iterates every cell with its coordinates in row-major order.
func (g *Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i := range g.rows {
			for j := range g.cols {
				if !yield(Cell{R: i, C: j, V: g.cells[i*g.cols+j]}) {
					return
				}
			}
		}
	}
}
