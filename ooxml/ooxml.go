// Package ooxml contains the OOXML spreadsheet-package constants shared by
// the part readers: well-known part paths, relationship types, and cell-type
// attribute values.
package ooxml

import "strings"

const (
	// RelsPath is the fixed location of the workbook relationships part.
	RelsPath = "xl/_rels/workbook.xml.rels"
	// PartsRoot is the directory relationship targets are resolved under.
	PartsRoot = "xl/"
	// ParentEscape marks a relationship target that must not be rebased
	// under [PartsRoot].
	ParentEscape = "../"
)

// Relationship types are compared by their final path segment only.
const (
	// ── Relationship type suffixes ─────────────────────────────────────────────
	TypeWorksheet     = "worksheet"
	TypeSharedStrings = "sharedStrings"

	// ── Full relationship type URIs (as written by Excel) ──────────────────────
	RelTypeWorksheet     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet"
	RelTypeSharedStrings = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/sharedStrings"
)

// Cell-type attribute ("t") values understood by the grid builder. Absence
// of the attribute implies a numeric cell.
const (
	CellTypeShared  = "s"   // shared-string-table index
	CellTypeLiteral = "str" // literal string stored in the cell
)

// PartPath normalizes a relationship target into an archive path. Targets
// are relative to [PartsRoot] unless prefixed with [ParentEscape], in which
// case the escape is stripped and the remainder addresses the archive root.
func PartPath(target string) string {
	if rest, ok := strings.CutPrefix(target, ParentEscape); ok {
		return rest
	}
	return PartsRoot + target
}
