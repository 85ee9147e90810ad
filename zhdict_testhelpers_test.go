package zhdict_test

// zhdict_testhelpers_test.go holds the in-memory .xlsx fixture builders
// shared by the tests in zhdict_test.go.
//
// Part payloads are compact XML (no whitespace between elements), the way
// spreadsheet writers emit them.

import (
	"archive/zip"
	"bytes"
	"testing"
)

// part is one named member of a fixture archive.
type part struct {
	name string
	data string
}

// Fixture parts for the canonical two-by-two document:
//
//	row 0: shared 0 ("甲"), literal "hi"
//	row 1: int 7,           empty
const (
	fixtureRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>` +
		`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/sharedStrings" Target="sharedStrings.xml"/>` +
		`</Relationships>`

	fixtureSST = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" count="2" uniqueCount="2">` +
		`<si><t>甲</t></si><si><t>乙</t></si></sst>`

	fixtureSheet = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">` +
		`<dimension ref="A1:B2"/><sheetData>` +
		`<row r="1"><c r="A1" t="s"><v>0</v></c><c r="B1" t="str"><v>hi</v></c></row>` +
		`<row r="2"><c r="A2"><v>7</v></c></row>` +
		`</sheetData></worksheet>`
)

// defaultParts returns the members of the canonical fixture archive.
func defaultParts() []part {
	return []part{
		{"xl/_rels/workbook.xml.rels", fixtureRels},
		{"xl/sharedStrings.xml", fixtureSST},
		{"xl/worksheets/sheet1.xml", fixtureSheet},
	}
}

// buildXLSX assembles an in-memory .xlsx archive from the given parts.
func buildXLSX(t *testing.T, parts []part) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		zipAddFile(t, zw, p.name, []byte(p.data))
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

// zipAddFile writes data as a new entry named name into zw.
// It calls t.Fatalf on any error.
func zipAddFile(t *testing.T, zw *zip.Writer, name string, data []byte) {
	t.Helper()
	f, err := zw.Create(name)
	if err != nil {
		t.Fatalf("zip create %s: %v", name, err)
	}
	if _, err := f.Write(data); err != nil {
		t.Fatalf("zip write %s: %v", name, err)
	}
}

// replacePart returns parts with the data of the named member swapped out.
func replacePart(parts []part, name, data string) []part {
	out := make([]part, len(parts))
	copy(out, parts)
	for i := range out {
		if out[i].name == name {
			out[i].data = data
		}
	}
	return out
}

// dropPart returns parts without the named member.
func dropPart(parts []part, name string) []part {
	var out []part
	for _, p := range parts {
		if p.name != name {
			out = append(out, p)
		}
	}
	return out
}
