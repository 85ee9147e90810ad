package zhdict_test

// Unit tests for the zhdict document reader.
//
// The tests are intentionally self-contained: every fixture archive is
// built in memory so no external .xlsx file is required.

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/beeselmane/zhdict"
	"github.com/beeselmane/zhdict/worksheet"
	"github.com/beeselmane/zhdict/xlsx"
)

// openFixture assembles the given parts into an archive and opens it.
func openFixture(t *testing.T, parts []part) *xlsx.Document {
	t.Helper()
	data := buildXLSX(t, parts)
	doc, err := zhdict.OpenReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	t.Cleanup(func() { doc.Close() })
	return doc
}

// ── Document ──────────────────────────────────────────────────────────────────

func TestOpenReaderCanonicalDocument(t *testing.T) {
	doc := openFixture(t, defaultParts())

	if doc.Rows() != 2 || doc.Cols() != 2 {
		t.Fatalf("grid is %dx%d, want 2x2", doc.Rows(), doc.Cols())
	}

	row0, err := doc.Row(0)
	if err != nil {
		t.Fatalf("Row(0): %v", err)
	}
	if v := row0[0]; v.Kind != worksheet.KindShared || v.Ref != 0 {
		t.Errorf("cell (0,0) = %+v, want shared ref 0", v)
	}
	if s, ok := doc.Text(row0[0]); !ok || s != "甲" {
		t.Errorf("Text(cell (0,0)) = %q, %v, want %q, true", s, ok, "甲")
	}
	if v := row0[1]; v.Kind != worksheet.KindLiteral || v.Str != "hi" {
		t.Errorf("cell (0,1) = %+v, want literal %q", v, "hi")
	}

	row1, err := doc.Row(1)
	if err != nil {
		t.Fatalf("Row(1): %v", err)
	}
	if v := row1[0]; v.Kind != worksheet.KindInt || v.Int != 7 {
		t.Errorf("cell (1,0) = %+v, want int 7", v)
	}
	if v := row1[1]; v.Kind != worksheet.KindEmpty {
		t.Errorf("cell (1,1) = %+v, want empty for the omitted cell", v)
	}

	if doc.StringCount() != 2 {
		t.Errorf("StringCount() = %d, want 2", doc.StringCount())
	}
	if got := doc.SharedString(1); got != "乙" {
		t.Errorf("SharedString(1) = %q, want %q", got, "乙")
	}

	cells := 0
	for range doc.Cells() {
		cells++
	}
	if cells != 4 {
		t.Errorf("Cells() yielded %d values, want 4", cells)
	}
}

func TestDocumentText(t *testing.T) {
	doc := openFixture(t, defaultParts())

	tests := []struct {
		name string
		v    worksheet.Value
		want string
		ok   bool
	}{
		{"shared", worksheet.Value{Kind: worksheet.KindShared, Ref: 1}, "乙", true},
		{"literal", worksheet.Value{Kind: worksheet.KindLiteral, Str: "x"}, "x", true},
		{"empty", worksheet.Value{}, "", false},
		{"int", worksheet.Value{Kind: worksheet.KindInt, Int: 3}, "", false},
		{"float", worksheet.Value{Kind: worksheet.KindFloat, Float: 0.5}, "", false},
		{"shared beyond table", worksheet.Value{Kind: worksheet.KindShared, Ref: 99}, "", false},
		{"shared negative", worksheet.Value{Kind: worksheet.KindShared, Ref: -1}, "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := doc.Text(tc.v)
			if got != tc.want || ok != tc.ok {
				t.Errorf("Text(%+v) = %q, %v, want %q, %v", tc.v, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestOpenReaderTargetEscape(t *testing.T) {
	// A ../ relationship target addresses the archive root, not xl/.
	rels := `<Relationships>` +
		`<Relationship Id="rId1" Type="worksheet" Target="worksheets/sheet1.xml"/>` +
		`<Relationship Id="rId2" Type="sharedStrings" Target="../strings/sst.xml"/>` +
		`</Relationships>`

	doc := openFixture(t, []part{
		{"xl/_rels/workbook.xml.rels", rels},
		{"strings/sst.xml", fixtureSST},
		{"xl/worksheets/sheet1.xml", fixtureSheet},
	})
	if got := doc.SharedString(0); got != "甲" {
		t.Errorf("SharedString(0) = %q, want %q", got, "甲")
	}
}

// ── Open failures ─────────────────────────────────────────────────────────────

func TestOpenReaderErrors(t *testing.T) {
	tests := []struct {
		name  string
		parts []part
	}{
		{
			"missing relationships part",
			dropPart(defaultParts(), "xl/_rels/workbook.xml.rels"),
		},
		{
			"missing shared strings part",
			dropPart(defaultParts(), "xl/sharedStrings.xml"),
		},
		{
			"missing worksheet part",
			dropPart(defaultParts(), "xl/worksheets/sheet1.xml"),
		},
		{
			"no worksheet relationship",
			replacePart(defaultParts(), "xl/_rels/workbook.xml.rels",
				`<Relationships><Relationship Id="rId2" Type="sharedStrings" Target="sharedStrings.xml"/></Relationships>`),
		},
		{
			"malformed worksheet",
			replacePart(defaultParts(), "xl/worksheets/sheet1.xml", `<worksheet><sheetData>`),
		},
		{
			"string table overflow",
			replacePart(defaultParts(), "xl/sharedStrings.xml",
				`<sst count="1"><si><t>甲</t></si><si><t>乙</t></si></sst>`),
		},
		{
			"unknown column in later row",
			replacePart(defaultParts(), "xl/worksheets/sheet1.xml",
				`<worksheet><sheetData><row r="1"><c r="A1"><v>1</v></c></row><row r="2"><c r="B2"><v>2</v></c></row></sheetData></worksheet>`),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := buildXLSX(t, tc.parts)
			doc, err := zhdict.OpenReader(bytes.NewReader(data), int64(len(data)))
			if err == nil {
				doc.Close()
				t.Fatal("OpenReader succeeded, want error")
			}
			if doc != nil {
				t.Error("OpenReader returned a document alongside an error")
			}
		})
	}
}

func TestOpenReaderNotAnArchive(t *testing.T) {
	data := []byte("this is not a zip archive")
	if _, err := zhdict.OpenReader(bytes.NewReader(data), int64(len(data))); err == nil {
		t.Fatal("OpenReader succeeded, want error")
	}
}

// ── Open by file name ─────────────────────────────────────────────────────────

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	if err := os.WriteFile(path, buildXLSX(t, defaultParts()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	doc, err := zhdict.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if doc.Rows() != 2 || doc.Cols() != 2 {
		t.Errorf("grid is %dx%d, want 2x2", doc.Rows(), doc.Cols())
	}

	if err := doc.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := doc.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	// The parsed data is plain memory and stays readable after Close.
	if got := doc.SharedString(0); got != "甲" {
		t.Errorf("SharedString(0) after Close = %q, want %q", got, "甲")
	}
}

func TestOpenFileMissing(t *testing.T) {
	if _, err := zhdict.Open(filepath.Join(t.TempDir(), "absent.xlsx")); err == nil {
		t.Fatal("Open succeeded for a missing file, want error")
	}
}
